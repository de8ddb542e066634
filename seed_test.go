package custdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDataset(t *testing.T) {
	t.Run("nested value and datatype layout", func(t *testing.T) {
		ds, err := ParseDataset([]byte(`{
			":one": {
				"first": {"value": "Yukihiro", "datatype": ":string"},
				"age": {"value": 48, "datatype": "integer"}
			}
		}`))
		require.NoError(t, err)
		require.Len(t, ds, 1)

		rec, ok := ds[NewID("one")]
		require.True(t, ok)
		assert.Equal(t, 2, rec.Len())

		v, ok := rec.Value(First)
		require.True(t, ok)
		assert.Equal(t, StringValue("Yukihiro"), v)

		v, ok = rec.Value(Age)
		require.True(t, ok)
		assert.Equal(t, IntegerValue(48), v)
	})

	tt := []struct {
		name string
		json string
		err  error
	}{
		{"malformed json", `{"one": `, ErrInvalidSeed},
		{"top level array", `[]`, ErrInvalidSeed},
		{"record is not an object", `{"one": 1}`, ErrInvalidSeed},
		{"empty id", `{" ": {}}`, ErrEmptyID},
		{"duplicate id after normalization", `{"one": {}, ":one": {}}`, ErrInvalidSeed},
		{"missing datatype", `{"one": {"first": {"value": "x"}}}`, ErrInvalidSeed},
		{"missing value", `{"one": {"first": {"datatype": "string"}}}`, ErrInvalidSeed},
		{"unknown datatype", `{"one": {"first": {"value": "x", "datatype": "symbol"}}}`, ErrUnknownDatatype},
		{"integer tagged string", `{"one": {"first": {"value": 1, "datatype": "string"}}}`, ErrDatatypeMismatch},
		{"fraction tagged integer", `{"one": {"age": {"value": 48.5, "datatype": "integer"}}}`, ErrDatatypeMismatch},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			ds, err := ParseDataset([]byte(tc.json))
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.err)
			assert.Nil(t, ds)
		})
	}
}

func TestLoadDataset(t *testing.T) {
	t.Run("fixture", func(t *testing.T) {
		ds, err := LoadDataset("testdata/customers.json")
		require.NoError(t, err)
		assert.Len(t, ds, 2)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadDataset("testdata/does-not-exist.json")
		assert.Error(t, err)
	})

	t.Run("mismatched fixture", func(t *testing.T) {
		_, err := LoadDataset("testdata/mismatch.json")
		assert.ErrorIs(t, err, ErrDatatypeMismatch)
	})
}
