package hotel

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// FieldError names one offending field and its client-facing message.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError reports every field rule a candidate violates.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return "Hotel validation failed: " + strings.Join(parts, ", ")
}

// Fields returns the violations keyed by field name.
func (e *ValidationError) Fields() map[string]string {
	out := make(map[string]string, len(e.Errors))
	for _, fe := range e.Errors {
		out[fe.Field] = fe.Message
	}
	return out
}

// Message looks up the message reported for field, if any.
func (e *ValidationError) Message(field string) (string, bool) {
	for _, fe := range e.Errors {
		if fe.Field == field {
			return fe.Message, true
		}
	}
	return "", false
}

// messages maps field -> failed tag -> message. Empty strings on a
// non-empty string field count as missing.
var messages = map[string]map[string]string{
	"name": {
		"required": "Hotel name is required",
		"min":      "Hotel name is required",
	},
	"location": {
		"required": "Location is required",
		"min":      "Location is required",
	},
	"price": {
		"required": "Price is required",
		"min":      "Price must be at least $50",
	},
	"rooms": {
		"required": "Number of rooms is required",
		"min":      "There must be at least one room",
	},
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			return strings.ToLower(f.Name)
		})
	})
	return validate
}

// Validate checks every field rule in one pass (name, location, price,
// rooms) and returns a *ValidationError listing all violations, or nil.
func (c *Candidate) Validate() error {
	if c == nil {
		c = &Candidate{}
	}
	err := validatorInstance().Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := &ValidationError{}
	for _, fe := range verrs {
		field := fe.Field()
		msg, ok := messages[field][fe.Tag()]
		if !ok {
			msg = "Invalid value for " + field
		}
		out.Errors = append(out.Errors, FieldError{Field: field, Message: msg})
	}
	return out
}
