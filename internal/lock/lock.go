package lock

import "sync"

// KeyedMutex serializes check-then-write sequences per table. Mutexes
// are created lazily on first use and never discarded; the table set of
// a single restaurant is small and fixed.
type KeyedMutex struct {
	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{locks: make(map[int64]*sync.Mutex)}
}

func (m *KeyedMutex) Lock(key int64) {
	m.get(key).Lock()
}

func (m *KeyedMutex) Unlock(key int64) {
	m.get(key).Unlock()
}

func (m *KeyedMutex) get(key int64) *sync.Mutex {
	m.mu.Lock()
	defer m.mu.Unlock()
	l, ok := m.locks[key]
	if !ok {
		l = &sync.Mutex{}
		m.locks[key] = l
	}
	return l
}
