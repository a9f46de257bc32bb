package blob

import (
	"context"
	"sort"
	"strings"
	"sync"
)

// MemoryStore keeps documents in process. Contents are lost on restart.
type MemoryStore struct {
	mu      sync.RWMutex
	objects map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{objects: make(map[string]string)}
}

func (s *MemoryStore) Read(_ context.Context, name string) (string, bool, error) {
	name, err := cleanName(name)
	if err != nil {
		return "", false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	content, ok := s.objects[name]
	return content, ok, nil
}

func (s *MemoryStore) Write(_ context.Context, name, content string) error {
	name, err := cleanName(name)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.objects[name] = content
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) List(_ context.Context, prefix string) ([]string, error) {
	s.mu.RLock()
	out := make([]string, 0, len(s.objects))
	for name := range s.objects {
		if strings.HasPrefix(name, prefix) {
			out = append(out, name)
		}
	}
	s.mu.RUnlock()

	sort.Strings(out)
	return out, nil
}
