package lru

import (
	"container/list"
	"sync"
)

type lruShard struct {
	mu         sync.RWMutex
	lmu        sync.Mutex
	totalBytes uint64
	maxBytes   uint64
	evictList  *list.List
	elems      map[string]*list.Element
	onEvict    OnEvict
}

func newLruShard(maxBytes uint64, onEvict OnEvict) *lruShard {
	return &lruShard{
		maxBytes:  maxBytes,
		evictList: list.New(),
		elems:     make(map[string]*list.Element),
		onEvict:   onEvict,
	}
}

type entry struct {
	key   string
	value string
}

func (e *entry) size() uint64 {
	return uint64(len(e.key) + len(e.value))
}

func (ls *lruShard) get(key string) (string, bool) {
	ls.mu.RLock()
	defer ls.mu.RUnlock()

	elem, ok := ls.elems[key]
	if !ok {
		return "", false
	}

	ls.lmu.Lock()
	ls.evictList.MoveToFront(elem)
	ls.lmu.Unlock()

	return elem.Value.(*entry).value, true
}

// add stores value under key and returns true if eviction happened
func (ls *lruShard) add(key, value string) bool {
	ls.mu.Lock()
	defer ls.mu.Unlock()

	if elem, ok := ls.elems[key]; ok {
		ls.lmu.Lock()
		ls.evictList.MoveToFront(elem)
		ls.lmu.Unlock()

		ent := elem.Value.(*entry)
		ls.totalBytes -= ent.size()
		ent.value = value
		ls.totalBytes += ent.size()

		return ls.evictOverflowUnderLock(key)
	}

	ent := &entry{key: key, value: value}

	ls.lmu.Lock()
	elem := ls.evictList.PushFront(ent)
	ls.lmu.Unlock()

	ls.totalBytes += ent.size()
	ls.elems[key] = elem

	return ls.evictOverflowUnderLock(key)
}

// evictOverflowUnderLock drops the oldest entries until the shard fits
// into maxBytes again. The entry under keep is never evicted.
func (ls *lruShard) evictOverflowUnderLock(keep string) bool {
	var evicted bool
	for ls.totalBytes > ls.maxBytes {
		ls.lmu.Lock()
		elem := ls.evictList.Back()
		ls.lmu.Unlock()

		if elem == nil || elem.Value.(*entry).key == keep {
			break
		}

		k, v := ls.removeElementUnderLock(elem)
		evicted = true
		if ls.onEvict != nil {
			ls.onEvict(k, v)
		}
	}

	return evicted
}

func (ls *lruShard) purge() {
	ls.mu.Lock()
	defer ls.mu.Unlock()

	ls.elems = make(map[string]*list.Element)
	ls.totalBytes = 0

	ls.lmu.Lock()
	ls.evictList.Init()
	ls.lmu.Unlock()
}

func (ls *lruShard) remove(key string) (string, bool) {
	ls.mu.Lock()
	defer ls.mu.Unlock()

	elem, ok := ls.elems[key]
	if !ok {
		return "", false
	}

	_, value := ls.removeElementUnderLock(elem)
	return value, true
}

func (ls *lruShard) removeElementUnderLock(elem *list.Element) (string, string) {
	ls.lmu.Lock()
	ls.evictList.Remove(elem)
	ls.lmu.Unlock()

	kv := elem.Value.(*entry)
	delete(ls.elems, kv.key)
	ls.totalBytes -= kv.size()
	return kv.key, kv.value
}

func (ls *lruShard) len() int {
	ls.mu.RLock()
	defer ls.mu.RUnlock()

	return len(ls.elems)
}

func (ls *lruShard) keys() []string {
	ls.mu.RLock()
	defer ls.mu.RUnlock()

	keys := make([]string, 0, len(ls.elems))
	for k := range ls.elems {
		keys = append(keys, k)
	}

	return keys
}
