package service

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/hotelhub/hotel-service/internal/hotel"
	"github.com/hotelhub/hotel-service/internal/hotel/repository"
	"github.com/hotelhub/hotel-service/pkg/metrics"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is re-exported so the handler layer depends on this package only.
var ErrNotFound = hotel.ErrNotFound

// Service defines the hotel operations used by the handler layer.
type Service interface {
	Create(ctx context.Context, f hotel.Fields) (*hotel.Hotel, error)
	List(ctx context.Context) ([]hotel.Hotel, error)
	Get(ctx context.Context, id string) (*hotel.Hotel, error)
	Delete(ctx context.Context, id string) error
	Ping(ctx context.Context) error
}

// Option customises a service; used by tests to pin the clock.
type Option func(*hotelService)

func WithClock(now func() time.Time) Option {
	return func(s *hotelService) { s.now = now }
}

// New returns a Service over any hotel repository.
func New(repo hotel.Repository, opts ...Option) Service {
	s := &hotelService{
		repo:  repo,
		now:   time.Now,
		newID: func() string { return primitive.NewObjectID().Hex() },
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// NewMemoryService returns a Service backed by the in-memory repository.
func NewMemoryService(opts ...Option) Service {
	return New(repository.NewMemoryRepo(), opts...)
}

// NewMongoService returns a Service backed by a MongoDB collection.
// Caller is responsible for creating the collection (and client) and passing it in.
func NewMongoService(col *mongo.Collection, opts ...Option) Service {
	return New(repository.NewMongoRepo(col), opts...)
}

type hotelService struct {
	repo  hotel.Repository
	now   func() time.Time
	newID func() string
}

func observe(op string, err error) {
	outcome := "ok"
	var verr *hotel.ValidationError
	switch {
	case err == nil:
	case errors.As(err, &verr):
		outcome = "invalid"
	case errors.Is(err, hotel.ErrNotFound):
		outcome = "not_found"
	default:
		outcome = "error"
	}
	metrics.HotelOperations.WithLabelValues(op, outcome).Inc()
}

// Create validates the candidate before anything reaches the repository,
// then stores it with a fresh id and creation timestamps.
func (s *hotelService) Create(ctx context.Context, f hotel.Fields) (_ *hotel.Hotel, err error) {
	defer func() { observe("create", err) }()

	h, err := hotel.Construct(f).Build(s.newID(), s.now().UTC())
	if err != nil {
		return nil, err
	}
	if err := s.repo.Insert(ctx, h); err != nil {
		return nil, errors.Wrap(err, "insert hotel")
	}
	return h, nil
}

func (s *hotelService) List(ctx context.Context) (_ []hotel.Hotel, err error) {
	defer func() { observe("list", err) }()

	list, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list hotels")
	}
	if list == nil {
		list = []hotel.Hotel{}
	}
	return list, nil
}

func (s *hotelService) Get(ctx context.Context, id string) (_ *hotel.Hotel, err error) {
	defer func() { observe("get", err) }()

	h, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, hotel.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrapf(err, "get hotel %s", id)
	}
	return h, nil
}

func (s *hotelService) Delete(ctx context.Context, id string) (err error) {
	defer func() { observe("delete", err) }()

	if err := s.repo.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, hotel.ErrNotFound) {
			return ErrNotFound
		}
		return errors.Wrapf(err, "delete hotel %s", id)
	}
	return nil
}

func (s *hotelService) Ping(ctx context.Context) error {
	return s.repo.Ping(ctx)
}
