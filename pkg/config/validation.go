package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field string
	Tag   string
	Value interface{}
}

func (e *ValidationError) Error() string {
	switch e.Tag {
	case "required":
		return fmt.Sprintf("%s is required", e.Field)
	case "gt", "gte", "min":
		return fmt.Sprintf("%s is below its minimum (got %v)", e.Field, e.Value)
	case "lt", "lte", "max":
		return fmt.Sprintf("%s is above its maximum (got %v)", e.Field, e.Value)
	case "ltefield":
		return fmt.Sprintf("%s must not exceed its bounding field (got %v)", e.Field, e.Value)
	case "oneof":
		return fmt.Sprintf("%s must be one of the allowed values (got %v)", e.Field, e.Value)
	default:
		return fmt.Sprintf("%s failed validation", e.Field)
	}
}

// ValidationErrors represents multiple validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	var messages []string
	for i := range e {
		messages = append(messages, e[i].Error())
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(messages, "; "))
}

var validate = validator.New()

// Validate checks a full configuration against its struct tags and returns
// field-level errors.
func Validate(config *Config) error {
	err := validate.Struct(config)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return err
	}

	out := make(ValidationErrors, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		out = append(out, ValidationError{
			Field: fe.Namespace(),
			Tag:   fe.Tag(),
			Value: fe.Value(),
		})
	}
	return out
}
