package memory

import (
	"context"
	"sort"
	"sync"

	"vet-clinic-admin/internal/domain/records"
)

type recordRepo struct {
	mu   sync.RWMutex
	seq  map[string]int64
	byID map[string]map[int64]records.Record
}

func NewRecordRepo() records.Repository {
	return &recordRepo{
		seq:  make(map[string]int64),
		byID: make(map[string]map[int64]records.Record),
	}
}

func (r *recordRepo) List(_ context.Context, resource string) ([]records.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]int64, 0, len(r.byID[resource]))
	for id := range r.byID[resource] {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]records.Record, 0, len(ids))
	for _, id := range ids {
		out = append(out, withID(r.byID[resource][id], id))
	}
	return out, nil
}

func (r *recordRepo) Get(_ context.Context, resource string, id int64) (records.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.byID[resource][id]
	if !ok {
		return nil, records.ErrNotFound
	}
	return withID(rec, id), nil
}

func (r *recordRepo) Create(_ context.Context, resource string, rec records.Record) (records.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq[resource]++
	id := r.seq[resource]
	if r.byID[resource] == nil {
		r.byID[resource] = make(map[int64]records.Record)
	}
	r.byID[resource][id] = copyFields(rec)
	return withID(rec, id), nil
}

func (r *recordRepo) Update(_ context.Context, resource string, id int64, rec records.Record) (records.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[resource][id]; !ok {
		return nil, records.ErrNotFound
	}
	r.byID[resource][id] = copyFields(rec)
	return withID(rec, id), nil
}

func (r *recordRepo) Delete(_ context.Context, resource string, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[resource][id]; !ok {
		return records.ErrNotFound
	}
	delete(r.byID[resource], id)
	return nil
}

// Se guarda una copia para que el llamador no mute el estado interno.
func copyFields(rec records.Record) records.Record {
	out := make(records.Record, len(rec))
	for k, v := range rec {
		if k != "id" {
			out[k] = v
		}
	}
	return out
}

func withID(rec records.Record, id int64) records.Record {
	out := copyFields(rec)
	out["id"] = id
	return out
}
