package store

import "github.com/houseiot/confstore/internal/codec"

// section keeps its keys in insertion order.
type section struct {
	name   string
	keys   []string
	values map[string]string
}

func newSection(name string) *section {
	return &section{name: name, values: make(map[string]string)}
}

func (s *section) set(key, value string) {
	if _, ok := s.values[key]; !ok {
		s.keys = append(s.keys, key)
	}
	s.values[key] = value
}

func (s *section) get(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

func (s *section) remove(key string) {
	if _, ok := s.values[key]; !ok {
		return
	}
	delete(s.values, key)
	for i, k := range s.keys {
		if k == key {
			s.keys = append(s.keys[:i], s.keys[i+1:]...)
			break
		}
	}
}

func (s *section) entries() []codec.Entry {
	entries := make([]codec.Entry, 0, len(s.keys))
	for _, k := range s.keys {
		entries = append(entries, codec.Entry{Key: k, Value: s.values[k]})
	}
	return entries
}

func (s *section) size() int {
	return len(s.keys)
}
