package profile

import (
	"context"
	"encoding/json"
	"sync"
)

type MemoryRepo struct {
	mu   sync.RWMutex
	docs map[string]string
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{docs: make(map[string]string)}
}

func (r *MemoryRepo) Create(ctx context.Context, userID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.docs[userID]; ok {
		return nil
	}
	r.docs[userID] = "{}"
	return nil
}

func (r *MemoryRepo) Get(ctx context.Context, userID string) (Profile, error) {
	if err := ctx.Err(); err != nil {
		return Profile{}, err
	}
	r.mu.RLock()
	raw, ok := r.docs[userID]
	r.mu.RUnlock()
	if !ok {
		return Profile{}, ErrNotFound
	}
	var p Profile
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return Profile{}, err
	}
	return p, nil
}

func (r *MemoryRepo) Save(ctx context.Context, userID string, p Profile) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	raw, err := json.Marshal(p)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.docs[userID]; !ok {
		return ErrNotFound
	}
	r.docs[userID] = string(raw)
	return nil
}
