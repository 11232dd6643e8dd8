package validator

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks a request struct against its validate tags and converts
// failures into field-keyed ValidationErrors.
func Validate(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	out := make(ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, ValidationError{
			Field:   strings.ToLower(fe.Field()),
			Message: message(fe),
		})
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "required_if":
		return "is required for this method"
	case "uuid4":
		return "must be a valid UUID"
	case "datetime":
		return "must match the format " + fe.Param()
	case "oneof":
		return "must be one of: " + fe.Param()
	case "min":
		return "must have at least " + fe.Param() + " items"
	case "max":
		return "must have at most " + fe.Param() + " items"
	default:
		return "is invalid"
	}
}
