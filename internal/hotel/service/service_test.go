package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hotelhub/hotel-service/internal/hotel"
	"github.com/hotelhub/hotel-service/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func strp(s string) *string     { return &s }
func intp(i int) *int           { return &i }
func floatp(f float64) *float64 { return &f }

// failingRepo simulates an unreachable store and records whether Insert ran.
type failingRepo struct {
	inserted bool
}

var errStoreDown = errors.New("connection refused")

func (f *failingRepo) Insert(ctx context.Context, h *hotel.Hotel) error {
	f.inserted = true
	return errStoreDown
}
func (f *failingRepo) FindAll(ctx context.Context) ([]hotel.Hotel, error) { return nil, errStoreDown }
func (f *failingRepo) FindByID(ctx context.Context, id string) (*hotel.Hotel, error) {
	return nil, errStoreDown
}
func (f *failingRepo) DeleteByID(ctx context.Context, id string) error { return errStoreDown }
func (f *failingRepo) Ping(ctx context.Context) error                 { return errStoreDown }

func TestCreateThenGet(t *testing.T) {
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	svc := NewMemoryService(WithClock(func() time.Time { return now }))
	ctx := context.Background()

	h, err := svc.Create(ctx, hotel.Fields{
		Name:     strp("Mountain Resort"),
		Location: strp("Colorado"),
		Price:    floatp(300),
		Rooms:    intp(50),
	})
	require.NoError(t, err)
	require.NotEmpty(t, h.ID)
	require.Equal(t, now, h.CreatedAt)
	require.Equal(t, now, h.UpdatedAt)

	got, err := svc.Get(ctx, h.ID)
	require.NoError(t, err)
	require.Equal(t, *h, *got)
}

func TestCreateInvalidStoresNothing(t *testing.T) {
	svc := NewMemoryService()
	ctx := context.Background()

	_, err := svc.Create(ctx, hotel.Fields{Location: strp("New York"), Price: floatp(200)})
	var verr *hotel.ValidationError
	require.True(t, errors.As(err, &verr))
	require.Equal(t, map[string]string{
		"name":  "Hotel name is required",
		"rooms": "Number of rooms is required",
	}, verr.Fields())

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestCreateValidatesBeforeTouchingStore(t *testing.T) {
	repo := &failingRepo{}
	svc := New(repo)

	_, err := svc.Create(context.Background(), hotel.Fields{Name: strp("Budget Stay"), Location: strp("New York"), Price: floatp(30), Rooms: intp(50)})
	var verr *hotel.ValidationError
	require.True(t, errors.As(err, &verr))
	require.False(t, repo.inserted)
}

func TestIDsAreNotReused(t *testing.T) {
	svc := NewMemoryService()
	ctx := context.Background()
	f := hotel.Fields{Name: strp("Tiny Hotel"), Location: strp("Paris"), Price: floatp(100), Rooms: intp(1)}

	first, err := svc.Create(ctx, f)
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, first.ID))

	second, err := svc.Create(ctx, f)
	require.NoError(t, err)
	require.NotEqual(t, first.ID, second.ID)
}

func TestNotFound(t *testing.T) {
	svc := NewMemoryService()
	ctx := context.Background()

	_, err := svc.Get(ctx, "missing")
	require.ErrorIs(t, err, ErrNotFound)
	require.ErrorIs(t, svc.Delete(ctx, "missing"), ErrNotFound)
}

func TestStorageErrorsAreWrapped(t *testing.T) {
	svc := New(&failingRepo{})
	ctx := context.Background()

	_, err := svc.Create(ctx, hotel.Fields{Name: strp("Grand Hotel"), Location: strp("London"), Price: floatp(350), Rooms: intp(200)})
	require.ErrorIs(t, err, errStoreDown)
	require.Contains(t, err.Error(), "insert hotel")

	_, err = svc.List(ctx)
	require.ErrorIs(t, err, errStoreDown)

	_, err = svc.Get(ctx, "x")
	require.ErrorIs(t, err, errStoreDown)
	require.NotErrorIs(t, err, ErrNotFound)

	err = svc.Delete(ctx, "x")
	require.ErrorIs(t, err, errStoreDown)
	require.Error(t, svc.Ping(ctx))
}

func TestOperationsAreCounted(t *testing.T) {
	svc := NewMemoryService()
	ctx := context.Background()

	before := testutil.ToFloat64(metrics.HotelOperations.WithLabelValues("get", "not_found"))
	_, _ = svc.Get(ctx, "missing")
	require.Equal(t, before+1, testutil.ToFloat64(metrics.HotelOperations.WithLabelValues("get", "not_found")))

	before = testutil.ToFloat64(metrics.HotelOperations.WithLabelValues("create", "invalid"))
	_, _ = svc.Create(ctx, hotel.Fields{})
	require.Equal(t, before+1, testutil.ToFloat64(metrics.HotelOperations.WithLabelValues("create", "invalid")))
}
