package custdb

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
)

var ErrInvalidSeed = errors.New("invalid seed data")

// LoadDataset reads a json dataset from path. See ParseDataset for the layout.
func LoadDataset(path string) (Dataset, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read seed file %s", path)
	}

	ds, err := ParseDataset(b)
	if err != nil {
		return nil, errors.Wrapf(err, "seed file %s", path)
	}

	return ds, nil
}

// ParseDataset decodes a dataset of the form
//
//	{"one": {"first": {"value": "Yukihiro", "datatype": "string"}, "age": {"value": 48, "datatype": "integer"}}}
//
// A value that does not fit its datatype tag is rejected.
func ParseDataset(b []byte) (Dataset, error) {
	if !gjson.ValidBytes(b) {
		return nil, errors.Wrap(ErrInvalidSeed, "malformed json")
	}

	root := gjson.ParseBytes(b)
	if !root.IsObject() {
		return nil, errors.Wrap(ErrInvalidSeed, "top level must be an object")
	}

	ds := make(Dataset)
	var parseErr error

	root.ForEach(func(key, raw gjson.Result) bool {
		id := NewID(key.String())
		if id.IsZero() {
			parseErr = errors.Wrap(ErrEmptyID, "seed record")
			return false
		}

		if _, exists := ds[id]; exists {
			parseErr = errors.Wrapf(ErrInvalidSeed, "duplicate id %s", id)
			return false
		}

		rec, err := parseRecord(raw)
		if err != nil {
			parseErr = errors.Wrapf(err, "record %s", id)
			return false
		}

		ds[id] = rec
		return true
	})

	if parseErr != nil {
		return nil, parseErr
	}

	return ds, nil
}

func parseRecord(raw gjson.Result) (Record, error) {
	if !raw.IsObject() {
		return Record{}, errors.Wrap(ErrInvalidSeed, "record must be an object")
	}

	fields := make(map[Field]Value)
	var err error

	raw.ForEach(func(name, fv gjson.Result) bool {
		var v Value
		v, err = parseValue(fv)
		if err != nil {
			err = errors.Wrapf(err, "field %s", name.String())
			return false
		}

		fields[Field(name.String())] = v
		return true
	})

	if err != nil {
		return Record{}, err
	}

	return NewRecord(fields), nil
}

func parseValue(fv gjson.Result) (Value, error) {
	tag := fv.Get("datatype")
	if !tag.Exists() {
		return Value{}, errors.Wrap(ErrInvalidSeed, "missing datatype")
	}

	dt, err := ParseDatatype(strings.TrimPrefix(tag.String(), ":"))
	if err != nil {
		return Value{}, err
	}

	raw := fv.Get("value")
	if !raw.Exists() {
		return Value{}, errors.Wrap(ErrInvalidSeed, "missing value")
	}

	switch dt {
	case StringType:
		if raw.Type != gjson.String {
			return Value{}, errors.Wrapf(ErrDatatypeMismatch, "expected string, got %s", raw.Raw)
		}

		return StringValue(raw.Str), nil
	case IntegerType:
		if raw.Type != gjson.Number || float64(raw.Int()) != raw.Num {
			return Value{}, errors.Wrapf(ErrDatatypeMismatch, "expected integer, got %s", raw.Raw)
		}

		return IntegerValue(int(raw.Int())), nil
	}

	return Value{}, errors.Wrapf(ErrUnknownDatatype, "%s", dt)
}
