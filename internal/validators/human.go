package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/go-humans/models"
)

// HumanValidator implements [Validator] for [models.HumanInput] and
// [models.Credentials] using the `validate` struct tags declared on them.
type HumanValidator struct {
	validate *validator.Validate
}

// NewHumanValidator constructs a HumanValidator and returns it as the
// Validator interface.
func NewHumanValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// report fields by their JSON names
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	return &HumanValidator{validate: v}
}

// Validate dispatches on the dynamic type of obj. Both value and pointer
// forms are accepted; a nil pointer is rejected as an unsupported type.
//
// All failing fields are reported at once in a [*ValidationError].
func (v *HumanValidator) Validate(ctx context.Context, obj any) error {
	switch value := obj.(type) {
	case models.HumanInput:
		return v.validateStruct(ctx, value, ErrInvalidHuman)
	case *models.HumanInput:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateStruct(ctx, *value, ErrInvalidHuman)

	case models.Credentials:
		return v.validateStruct(ctx, value, ErrInvalidCredentials)
	case *models.Credentials:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateStruct(ctx, *value, ErrInvalidCredentials)

	default:
		return ErrUnsupportedType
	}
}

func (v *HumanValidator) validateStruct(ctx context.Context, obj any, sentinel error) error {
	err := v.validate.StructCtx(ctx, obj)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("%w: %w", sentinel, err)
	}

	result := &ValidationError{Err: sentinel}
	for _, fe := range validationErrors {
		result.Fields = append(result.Fields, models.FieldError{
			Field:   fe.Field(),
			Message: fieldErrorMessage(fe),
		})
	}

	return result
}

func fieldErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Field required"
	case "min":
		return "String should have at least " + fe.Param() + " characters"
	case "max":
		return "String should have at most " + fe.Param() + " characters"
	default:
		return "Invalid value"
	}
}
