package storage

// MemoryBackend is an in-process map backend for tests. It supports
// injecting failures and pre-seeding raw payloads to exercise the store's
// recovery paths.
type MemoryBackend struct {
	data map[string][]byte

	// GetErr and SetErr, when set, are returned by the corresponding call.
	GetErr error
	SetErr error
}

// NewMemoryBackend creates an empty in-memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{data: make(map[string][]byte)}
}

// Seed stores a raw payload under key, bypassing the store.
func (b *MemoryBackend) Seed(key string, value []byte) {
	b.data[key] = value
}

// Get returns the value under key.
func (b *MemoryBackend) Get(key string) ([]byte, bool, error) {
	if b.GetErr != nil {
		return nil, false, b.GetErr
	}
	value, ok := b.data[key]
	return value, ok, nil
}

// Set stores value under key.
func (b *MemoryBackend) Set(key string, value []byte) error {
	if b.SetErr != nil {
		return b.SetErr
	}
	cp := make([]byte, len(value))
	copy(cp, value)
	b.data[key] = cp
	return nil
}

// Delete removes key if present.
func (b *MemoryBackend) Delete(key string) error {
	delete(b.data, key)
	return nil
}

// Close is a no-op.
func (b *MemoryBackend) Close() error {
	return nil
}

var _ Backend = (*MemoryBackend)(nil)
