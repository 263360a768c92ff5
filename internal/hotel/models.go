package hotel

import "time"

// Hotel is the persisted hotel record. ID is the hex form of the store
// generated ObjectID.
type Hotel struct {
	ID        string    `json:"id" bson:"-"`
	Name      string    `json:"name" bson:"name"`
	Location  string    `json:"location" bson:"location"`
	Price     float64   `json:"price" bson:"price"`
	Rooms     int       `json:"rooms" bson:"rooms"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// Fields carries the caller supplied values of a new hotel. Nil means the
// field was not supplied at all.
type Fields struct {
	Name     *string  `json:"name"`
	Location *string  `json:"location"`
	Price    *float64 `json:"price"`
	Rooms    *int     `json:"rooms"`
}

// Candidate is an unvalidated in-memory hotel. It may hold invalid values;
// only persisting it enforces the field rules.
type Candidate struct {
	Name     *string  `validate:"required,min=1"`
	Location *string  `validate:"required,min=1"`
	Price    *float64 `validate:"required,min=50"`
	Rooms    *int     `validate:"required,min=1"`
}

// Construct builds a candidate from the supplied fields without validating.
func Construct(f Fields) *Candidate {
	return &Candidate{
		Name:     f.Name,
		Location: f.Location,
		Price:    f.Price,
		Rooms:    f.Rooms,
	}
}

// hotel converts a validated candidate into a record. Callers must run
// Validate first; nil fields would otherwise be dereferenced.
func (c *Candidate) hotel() Hotel {
	return Hotel{
		Name:     *c.Name,
		Location: *c.Location,
		Price:    *c.Price,
		Rooms:    *c.Rooms,
	}
}

// Build validates the candidate and, on success, returns the record with the
// given id and both timestamps set to now.
func (c *Candidate) Build(id string, now time.Time) (*Hotel, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	h := c.hotel()
	h.ID = id
	h.CreatedAt = now
	h.UpdatedAt = now
	return &h, nil
}
