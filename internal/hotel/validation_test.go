package hotel

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func strp(s string) *string     { return &s }
func intp(i int) *int           { return &i }
func floatp(f float64) *float64 { return &f }

func validFields() Fields {
	return Fields{
		Name:     strp("Hotel California"),
		Location: strp("California"),
		Price:    floatp(200),
		Rooms:    intp(100),
	}
}

func TestCandidateValidate_Valid(t *testing.T) {
	require.NoError(t, Construct(validFields()).Validate())
}

func TestCandidateValidate_Boundaries(t *testing.T) {
	f := validFields()
	f.Price = floatp(50)
	f.Rooms = intp(1)
	require.NoError(t, Construct(f).Validate())
}

func TestCandidateValidate_PriceTooLow(t *testing.T) {
	f := validFields()
	f.Price = floatp(30)
	err := Construct(f).Validate()

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	msg, ok := verr.Message("price")
	require.True(t, ok)
	require.Equal(t, "Price must be at least $50", msg)
	require.Len(t, verr.Errors, 1)
}

func TestCandidateValidate_ZeroRooms(t *testing.T) {
	f := validFields()
	f.Rooms = intp(0)
	err := Construct(f).Validate()

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	require.Equal(t, map[string]string{"rooms": "There must be at least one room"}, verr.Fields())
}

func TestCandidateValidate_MissingFieldsReportedTogether(t *testing.T) {
	err := Construct(Fields{Location: strp("New York"), Price: floatp(200)}).Validate()

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	want := []FieldError{
		{Field: "name", Message: "Hotel name is required"},
		{Field: "rooms", Message: "Number of rooms is required"},
	}
	if diff := cmp.Diff(want, verr.Errors); diff != "" {
		t.Fatalf("field errors mismatch (-want +got):\n%s", diff)
	}
	require.Contains(t, verr.Error(), "Hotel validation failed")
}

func TestCandidateValidate_EmptyCandidate(t *testing.T) {
	err := Construct(Fields{Name: strp(""), Price: floatp(10), Rooms: intp(-2)}).Validate()

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	require.Equal(t, map[string]string{
		"name":     "Hotel name is required",
		"location": "Location is required",
		"price":    "Price must be at least $50",
		"rooms":    "There must be at least one room",
	}, verr.Fields())
}

func TestCandidateBuild(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	h, err := Construct(validFields()).Build("abc", now)
	require.NoError(t, err)

	want := &Hotel{
		ID:        "abc",
		Name:      "Hotel California",
		Location:  "California",
		Price:     200,
		Rooms:     100,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if diff := cmp.Diff(want, h); diff != "" {
		t.Fatalf("built hotel mismatch (-want +got):\n%s", diff)
	}

	_, err = Construct(Fields{}).Build("abc", now)
	require.Error(t, err)
}
