package dto

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/konskyyy/ewidencja-sprzetu/internal/apperrors"
	"github.com/konskyyy/ewidencja-sprzetu/internal/core/domain"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON names so messages match the request body.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	if err := v.RegisterValidation("entitykind", func(fl validator.FieldLevel) bool {
		return domain.EntityKind(fl.Field().String()).Valid()
	}); err != nil {
		panic(fmt.Sprintf("dto: register entitykind validation: %v", err))
	}

	return v
}

// Validate checks a request DTO against its `validate` tags. Any failure is
// returned wrapped in apperrors.ErrValidation with a readable message.
func Validate(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, describeFieldError(fe))
	}
	return fmt.Errorf("%w: %s", apperrors.ErrValidation, strings.Join(msgs, "; "))
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "gt":
		return fe.Field() + " must be a positive integer"
	case "entitykind":
		names := make([]string, 0)
		for _, k := range domain.SupportedEntityKinds() {
			names = append(names, k.String())
		}
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), strings.Join(names, ", "))
	default:
		return fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag())
	}
}
