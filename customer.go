package custdb

import (
	"fmt"
	"strings"
)

// Customer formats the fields of one stored record as labeled strings.
// The id is not checked on construction, an unknown id only fails when
// a field is read.
type Customer struct {
	id    ID
	store *Store
}

func NewCustomer(id ID, store *Store) *Customer {
	return &Customer{id: id, store: store}
}

func (c *Customer) ID() ID {
	return c.id
}

func (c *Customer) Store() *Store {
	return c.store
}

// First renders as First: 'Yukihiro'.
func (c *Customer) First() (string, error) {
	return c.render(First, c.quoted("First", c.store.FirstValue))
}

func (c *Customer) Last() (string, error) {
	return c.render(Last, c.quoted("Last", c.store.LastValue))
}

func (c *Customer) Email() (string, error) {
	return c.render(Email, c.quoted("Email", c.store.EmailValue))
}

// Age is numeric, so it is not quoted: Age: 48.
func (c *Customer) Age() (string, error) {
	return c.render(Age, func() (string, error) {
		n, err := c.store.AgeValue(c.id)
		if err != nil {
			return "", err
		}

		return fmt.Sprintf("Age: %d", n), nil
	})
}

// Card renders every field, one per line.
func (c *Customer) Card() (string, error) {
	lines := make([]string, 0, 4)
	for _, fn := range []func() (string, error){c.First, c.Last, c.Email, c.Age} {
		s, err := fn()
		if err != nil {
			return "", err
		}

		lines = append(lines, s)
	}

	return strings.Join(lines, "\n"), nil
}

// render returns the cached string for field f, or builds it with format
// and caches it. Errors are never cached.
func (c *Customer) render(f Field, format func() (string, error)) (string, error) {
	key := renderKey(c.id, f)
	if s, ok := c.store.cache.Get(key); ok {
		return s, nil
	}

	s, err := format()
	if err != nil {
		return "", err
	}

	c.store.cache.Add(key, s)

	return s, nil
}

func (c *Customer) quoted(label string, get func(ID) (string, error)) func() (string, error) {
	return func() (string, error) {
		v, err := get(c.id)
		if err != nil {
			return "", err
		}

		return fmt.Sprintf("%s: '%s'", label, v), nil
	}
}

func renderKey(id ID, f Field) string {
	return id.String() + "\x00" + string(f)
}
