package custdb

import "strings"

// ID is the canonical customer identifier. Use NewID to build one
// from raw input, so that every lookup goes through the same normalization.
type ID struct {
	key string
}

// NewID normalizes raw input once: surrounding whitespace and a single
// leading colon are dropped, so ":one", " one" and "one" are the same key.
func NewID(raw string) ID {
	k := strings.TrimSpace(raw)
	k = strings.TrimPrefix(k, ":")

	return ID{key: k}
}

func (id ID) String() string {
	return id.key
}

func (id ID) IsZero() bool {
	return id.key == ""
}

func (id ID) Equal(other ID) bool {
	return id.key == other.key
}

// Less compares segment by segment. Canonical decimal segments ("0" or no
// leading zero, no sign) sort before any other segment and compare by value,
// the rest compare as plain strings.
func (id ID) Less(other ID) bool {
	as, bs := id.segments(), other.segments()
	l := smallestSegmentLen(as, bs)

	for i := 0; i < l; i++ {
		if as[i] == bs[i] {
			continue
		}

		return segmentLess(as[i], bs[i])
	}

	return len(bs) > len(as)
}

func (id ID) segments() []string {
	return strings.Split(id.key, ":")
}

func segmentLess(a, b string) bool {
	aInt, bInt := isDecimal(a), isDecimal(b)

	switch {
	case aInt && bInt:
		// no leading zeros, so the shorter number is the smaller one
		if len(a) != len(b) {
			return len(a) < len(b)
		}

		return a < b
	case aInt:
		return true
	case bInt:
		return false
	}

	return a < b
}

func smallestSegmentLen(a, b []string) int {
	if len(a) > len(b) {
		return len(b)
	}

	return len(a)
}

func isDecimal(s string) bool {
	if s == "" || (s[0] == '0' && len(s) > 1) {
		return false
	}

	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}
