// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package namegen

// MemorySet is a UsedSet that lives for one process.
type MemorySet struct {
	names map[string]struct{}
}

// NewMemorySet returns an empty in-memory used set.
func NewMemorySet() *MemorySet {
	return &MemorySet{names: make(map[string]struct{})}
}

func (s *MemorySet) Has(name string) (bool, error) {
	_, ok := s.names[name]
	return ok, nil
}

func (s *MemorySet) Add(name string) error {
	s.names[name] = struct{}{}
	return nil
}

func (s *MemorySet) Reset() error {
	clear(s.names)
	return nil
}
