package hotel

import (
	"context"
	"errors"
)

// ErrNotFound is returned when an id matches no stored hotel. Malformed ids
// are reported the same way.
var ErrNotFound = errors.New("hotel not found")

// Repository is the persistence contract the service depends on. Insert
// receives an already validated record carrying its id and timestamps.
type Repository interface {
	Insert(ctx context.Context, h *Hotel) error
	FindAll(ctx context.Context) ([]Hotel, error)
	FindByID(ctx context.Context, id string) (*Hotel, error)
	DeleteByID(ctx context.Context, id string) error
	Ping(ctx context.Context) error
}
