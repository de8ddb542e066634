package custdb

import (
	"testing"

	"github.com/denismitr/custdb/internal/lru"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomer_render(t *testing.T) {
	store, err := New(SeedDataset(), WithRenderCache(2, 1024))
	require.NoError(t, err)

	cache, ok := store.cache.(*lru.Cache)
	require.True(t, ok)

	t.Run("every field goes through the render cache", func(t *testing.T) {
		c := NewCustomer(NewID("one"), store)
		_, err := c.Card()
		require.NoError(t, err)
		assert.Equal(t, 4, cache.Count())

		want := map[Field]string{
			First: "First: 'Yukihiro'",
			Last:  "Last: 'Matsumoto'",
			Email: "Email: 'matz@bostonrb.org'",
			Age:   "Age: 48",
		}

		for f, s := range want {
			cached, ok := cache.Get(renderKey(c.ID(), f))
			require.Truef(t, ok, "field %s", f)
			assert.Equal(t, s, cached)
		}
	})

	t.Run("failures are not cached", func(t *testing.T) {
		before := cache.Count()

		c := NewCustomer(NewID("none"), store)
		for _, fn := range []func() (string, error){c.First, c.Last, c.Email, c.Age} {
			_, err := fn()
			assert.ErrorIs(t, err, ErrRecordNotFound)
		}

		assert.Equal(t, before, cache.Count())
	})
}
