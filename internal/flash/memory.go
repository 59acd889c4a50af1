package flash

import (
	"context"
	"sync"
	"time"

	"vet-clinic-admin/internal/ui/dialog"
)

// MemoryStore sirve para una sola instancia. Los vencidos se limpian al escribir.
type MemoryStore struct {
	mu    sync.Mutex
	ttl   time.Duration
	now   func() time.Time
	items map[string]memItem
}

type memItem struct {
	data    []byte
	expires time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &MemoryStore{
		ttl:   ttl,
		now:   time.Now,
		items: make(map[string]memItem),
	}
}

func (s *MemoryStore) Put(_ context.Context, d dialog.Dialog) (string, error) {
	b, err := encode(d)
	if err != nil {
		return "", err
	}
	key := newKey()

	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	for k, it := range s.items {
		if now.After(it.expires) {
			delete(s.items, k)
		}
	}
	s.items[key] = memItem{data: b, expires: now.Add(s.ttl)}
	return key, nil
}

func (s *MemoryStore) Pop(_ context.Context, key string) (dialog.Dialog, bool, error) {
	if key == "" {
		return dialog.Closed(), false, ErrEmptyKey
	}

	s.mu.Lock()
	it, ok := s.items[key]
	delete(s.items, key)
	now := s.now()
	s.mu.Unlock()

	if !ok || now.After(it.expires) {
		return dialog.Closed(), false, nil
	}
	d, err := decode(it.data)
	if err != nil {
		return dialog.Closed(), false, err
	}
	return d, true, nil
}

func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}
