package repository

import (
	"context"
	"errors"
	"time"

	"github.com/hotelhub/hotel-service/internal/hotel"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// record is the BSON shape of a hotel; the id lives in _id as an ObjectID.
type record struct {
	ID        primitive.ObjectID `bson:"_id"`
	Name      string             `bson:"name"`
	Location  string             `bson:"location"`
	Price     float64            `bson:"price"`
	Rooms     int                `bson:"rooms"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

func toRecord(id primitive.ObjectID, h *hotel.Hotel) record {
	return record{
		ID:        id,
		Name:      h.Name,
		Location:  h.Location,
		Price:     h.Price,
		Rooms:     h.Rooms,
		CreatedAt: h.CreatedAt,
		UpdatedAt: h.UpdatedAt,
	}
}

func (r record) hotel() hotel.Hotel {
	return hotel.Hotel{
		ID:        r.ID.Hex(),
		Name:      r.Name,
		Location:  r.Location,
		Price:     r.Price,
		Rooms:     r.Rooms,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// MongoRepo implements a MongoDB-backed hotel repository.
type MongoRepo struct {
	col *mongo.Collection
}

func NewMongoRepo(col *mongo.Collection) *MongoRepo {
	return &MongoRepo{col: col}
}

// Insert stores h. An empty h.ID gets a fresh ObjectID; a non-hex id is
// rejected rather than silently replaced.
func (m *MongoRepo) Insert(ctx context.Context, h *hotel.Hotel) error {
	oid := primitive.NewObjectID()
	if h.ID != "" {
		parsed, err := primitive.ObjectIDFromHex(h.ID)
		if err != nil {
			return err
		}
		oid = parsed
	}
	// Mongo stores millisecond precision; keep the returned record consistent
	// with what a later read yields.
	h.CreatedAt = h.CreatedAt.UTC().Truncate(time.Millisecond)
	h.UpdatedAt = h.UpdatedAt.UTC().Truncate(time.Millisecond)
	if _, err := m.col.InsertOne(ctx, toRecord(oid, h)); err != nil {
		return err
	}
	h.ID = oid.Hex()
	return nil
}

func (m *MongoRepo) FindByID(ctx context.Context, id string) (*hotel.Hotel, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, hotel.ErrNotFound
	}
	var r record
	if err := m.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&r); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, hotel.ErrNotFound
		}
		return nil, err
	}
	h := r.hotel()
	return &h, nil
}

func (m *MongoRepo) FindAll(ctx context.Context) ([]hotel.Hotel, error) {
	cur, err := m.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []hotel.Hotel{}
	for cur.Next(ctx) {
		var r record
		if err := cur.Decode(&r); err != nil {
			return nil, err
		}
		out = append(out, r.hotel())
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (m *MongoRepo) DeleteByID(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return hotel.ErrNotFound
	}
	res, err := m.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return hotel.ErrNotFound
	}
	return nil
}

func (m *MongoRepo) Ping(ctx context.Context) error {
	return m.col.Database().Client().Ping(ctx, nil)
}
