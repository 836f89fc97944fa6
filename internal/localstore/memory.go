package localstore

import "context"

// MemoryKV is an in-memory KV used in tests and as a throwaway fallback when
// no database path is configured.
type MemoryKV struct {
	data map[string]string
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: make(map[string]string)}
}

func (m *MemoryKV) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *MemoryKV) Set(_ context.Context, key, value string) error {
	m.data[key] = value
	return nil
}
