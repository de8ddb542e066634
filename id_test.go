package custdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewID(t *testing.T) {
	tt := []struct {
		raw  string
		want string
	}{
		{"one", "one"},
		{":one", "one"},
		{"  one ", "one"},
		{" :one", "one"},
		{"::one", ":one"},
		{"", ""},
	}

	for _, tc := range tt {
		t.Run(tc.raw, func(t *testing.T) {
			id := NewID(tc.raw)
			assert.Equal(t, tc.want, id.String())
			assert.Equal(t, tc.want == "", id.IsZero())
		})
	}

	assert.True(t, NewID(":one").Equal(NewID("one")))
	assert.Equal(t, NewID(":one"), NewID("one"))
}

func TestID_Less(t *testing.T) {
	tt := []struct {
		key1 string
		key2 string
		less bool
	}{
		{"customer:11", "customer:100", true},
		{"customer:1", "customer:999", true},
		{"customer:100", "customer:11", false},
		{"one", "two", true},
		{"two", "one", false},
		{"customer:a:2", "customer:b:1", true},
		{"customer", "customer:1", true},
		{"customer:1", "customer:1:orders", true},
		{"customer:8976", "customer:8976", false},
		{"customer:1", "customer:+1", true},
		{"customer:+1", "customer:1", false},
		{"customer:01", "customer:1", false},
		{"customer:1", "customer:01", true},
		{"customer:0", "customer:1", true},
		{"customer:99999999999999999999", "customer:100000000000000000000", true},
		{"customer:9", "customer:5x", true},
	}

	for _, tc := range tt {
		t.Run(tc.key1+"_"+tc.key2, func(t *testing.T) {
			assert.Equal(t, tc.less, NewID(tc.key1).Less(NewID(tc.key2)))
		})
	}
}

// mixedKeys mixes canonical numbers, signed numbers, zero padded numbers
// and words, which must all fall into one strict order.
var mixedKeys = []string{
	"+5", "03", "4", "10", "+9", "007", "8", "0", "-1", "5x", "9", "a",
	"customer:1", "customer:+1", "customer:01", "customer", "customer:1:orders",
	"99999999999999999999", "100000000000000000000",
}

func TestID_Less_IsStrictOrder(t *testing.T) {
	ids := make([]ID, len(mixedKeys))
	for i, k := range mixedKeys {
		ids[i] = NewID(k)
	}

	for _, a := range ids {
		assert.Falsef(t, a.Less(a), "%s < %s", a, a)

		for _, b := range ids {
			if a.Equal(b) {
				continue
			}

			assert.Truef(t, a.Less(b) != b.Less(a), "exactly one of %s < %s and %s < %s must hold", a, b, b, a)

			for _, c := range ids {
				if a.Less(b) && b.Less(c) {
					assert.Truef(t, a.Less(c), "%s < %s < %s but not %s < %s", a, b, c, a, c)
				}
			}
		}
	}
}
