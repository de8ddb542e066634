package custdb

import (
	"strconv"

	"github.com/pkg/errors"
)

var ErrUnknownDatatype = errors.New("unknown datatype")

type Datatype uint8

const (
	invalidDatatype Datatype = iota
	StringType
	IntegerType
)

func (dt Datatype) String() string {
	switch dt {
	case StringType:
		return "string"
	case IntegerType:
		return "integer"
	}

	return "invalid"
}

// ParseDatatype maps a datatype tag back to its Datatype.
func ParseDatatype(tag string) (Datatype, error) {
	switch tag {
	case "string":
		return StringType, nil
	case "integer":
		return IntegerType, nil
	}

	return invalidDatatype, errors.Wrapf(ErrUnknownDatatype, "tag %q", tag)
}

// Value holds either a string or an integer. The datatype is fixed by the
// constructor, so it can never disagree with the payload.
type Value struct {
	dt Datatype
	s  string
	n  int
}

func StringValue(s string) Value {
	return Value{dt: StringType, s: s}
}

func IntegerValue(n int) Value {
	return Value{dt: IntegerType, n: n}
}

func (v Value) Datatype() Datatype {
	return v.dt
}

func (v Value) IsZero() bool {
	return v.dt == invalidDatatype
}

func (v Value) Str() (string, bool) {
	if v.dt != StringType {
		return "", false
	}

	return v.s, true
}

func (v Value) Int() (int, bool) {
	if v.dt != IntegerType {
		return 0, false
	}

	return v.n, true
}

// String renders the payload without any quoting.
func (v Value) String() string {
	switch v.dt {
	case StringType:
		return v.s
	case IntegerType:
		return strconv.Itoa(v.n)
	}

	return ""
}
