package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/hotelhub/hotel-service/internal/hotel"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryRepo is an in-memory hotel repository used when no MongoDB is
// configured and in unit tests. Ids follow the same ObjectID hex format as
// the Mongo repository so handlers behave identically on both.
type MemoryRepo struct {
	mu    sync.RWMutex
	store map[string]hotel.Hotel
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{store: make(map[string]hotel.Hotel)}
}

func (m *MemoryRepo) Insert(_ context.Context, h *hotel.Hotel) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if h.ID == "" {
		h.ID = primitive.NewObjectID().Hex()
	}
	m.store[h.ID] = *h
	return nil
}

func (m *MemoryRepo) FindByID(_ context.Context, id string) (*hotel.Hotel, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if h, ok := m.store[id]; ok {
		return &h, nil
	}
	return nil, hotel.ErrNotFound
}

// FindAll returns hotels in insertion order (ObjectIDs sort by creation time).
func (m *MemoryRepo) FindAll(_ context.Context) ([]hotel.Hotel, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]hotel.Hotel, 0, len(m.store))
	for _, h := range m.store {
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *MemoryRepo) DeleteByID(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.store[id]; !ok {
		return hotel.ErrNotFound
	}
	delete(m.store, id)
	return nil
}

func (m *MemoryRepo) Ping(_ context.Context) error { return nil }
