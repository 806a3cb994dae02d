package resilience

import "sync"

// KeyedMutex serializes work per key while letting different keys proceed
// concurrently. Entries are reference counted and dropped once unused.
type KeyedMutex struct {
	mu    sync.Mutex
	locks map[string]*keyedLock
}

type keyedLock struct {
	mu   sync.Mutex
	refs int
	held bool
}

// Lock blocks until key is free and returns the matching unlock func.
func (k *KeyedMutex) Lock(key string) func() {
	entry := k.acquire(key)
	entry.mu.Lock()

	k.mu.Lock()
	entry.held = true
	k.mu.Unlock()

	return k.releaseFunc(key, entry)
}

// TryLock reports false without blocking when key is already held.
func (k *KeyedMutex) TryLock(key string) (func(), bool) {
	entry := k.acquire(key)
	if !entry.mu.TryLock() {
		k.drop(key, entry)
		return nil, false
	}

	k.mu.Lock()
	entry.held = true
	k.mu.Unlock()

	return k.releaseFunc(key, entry), true
}

// Held reports whether key is currently locked.
func (k *KeyedMutex) Held(key string) bool {
	k.mu.Lock()
	defer k.mu.Unlock()

	entry, ok := k.locks[key]
	return ok && entry.held
}

func (k *KeyedMutex) acquire(key string) *keyedLock {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.locks == nil {
		k.locks = make(map[string]*keyedLock)
	}
	entry, ok := k.locks[key]
	if !ok {
		entry = &keyedLock{}
		k.locks[key] = entry
	}
	entry.refs++
	return entry
}

func (k *KeyedMutex) drop(key string, entry *keyedLock) {
	k.mu.Lock()
	defer k.mu.Unlock()

	entry.refs--
	if entry.refs == 0 {
		delete(k.locks, key)
	}
}

func (k *KeyedMutex) releaseFunc(key string, entry *keyedLock) func() {
	var once sync.Once
	return func() {
		once.Do(func() {
			k.mu.Lock()
			entry.held = false
			k.mu.Unlock()

			entry.mu.Unlock()
			k.drop(key, entry)
		})
	}
}
