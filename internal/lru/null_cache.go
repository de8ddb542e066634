package lru

// NullCache stores nothing. It stands in when caching is switched off.
type NullCache struct{}

func (NullCache) Add(key, value string) bool { return false }

func (NullCache) Get(key string) (string, bool) { return "", false }

func (NullCache) Remove(key string) {}
