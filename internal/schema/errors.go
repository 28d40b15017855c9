package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/mohozompur-madrasa/madrasa-site/internal/db/models"
)

// ErrUnknownKind is returned by Validate for an entity kind it has no schema for.
var ErrUnknownKind = errors.New("unknown entity kind")

// FieldError describes why one field was rejected.
type FieldError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

// Errors is the list of rejected fields of one input. It is the validation error of this package.
type Errors []FieldError

// Error implements error.
func (e Errors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, fe := range e {
		msgs = append(msgs, fe.Message)
	}

	return "validation failed: " + strings.Join(msgs, "; ")
}

// fromValidator converts validator errors to Errors keyed by json field name.
func fromValidator(err error) Errors {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return Errors{{Tag: "invalid", Message: err.Error()}}
	}

	out := make(Errors, 0, len(verrs))

	for _, fe := range verrs {
		out = append(out, FieldError{
			Field:   fe.Field(),
			Tag:     fe.Tag(),
			Message: message(fe),
		})
	}

	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), strings.ReplaceAll(fe.Param(), " ", ", "))
	case "eqfield":
		return fmt.Sprintf("%s must match %s", fe.Field(), lowerFirst(fe.Param()))
	default:
		return fmt.Sprintf("%s is invalid (%s)", fe.Field(), fe.Tag())
	}
}

// fromDecode converts a json decoding error to Errors.
func fromDecode(err error) Errors {
	var typeErr *json.UnmarshalTypeError

	switch {
	case errors.Is(err, models.ErrInvalidFeatured):
		return Errors{{Field: "isFeatured", Tag: "oneof", Message: "isFeatured must be one of: true, false"}}
	case errors.As(err, &typeErr) && typeErr.Field != "":
		return Errors{{
			Field:   typeErr.Field,
			Tag:     "type",
			Message: fmt.Sprintf("%s must be a %s, got %s", typeErr.Field, jsonType(typeErr.Type.Kind().String()), typeErr.Value),
		}}
	case errors.As(err, &typeErr):
		return Errors{{Tag: "type", Message: "body must be a JSON object"}}
	default:
		return Errors{{Tag: "json", Message: "malformed JSON body"}}
	}
}

func jsonType(kind string) string {
	switch kind {
	case "string":
		return "string"
	case "bool":
		return "boolean"
	case "struct", "map":
		return "object"
	case "slice", "array":
		return "array"
	default:
		return "number"
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}

	return strings.ToLower(s[:1]) + s[1:]
}
