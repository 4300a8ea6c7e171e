package postgres

import (
	"strings"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"

	"github.com/go-playground/validator/v10"
)

// validate is the shared validator instance for the persistence models. Field
// constraints (required, max length, email shape, enum membership, quantity
// bounds) are declared as struct tags on the models and checked before any
// write reaches the store.
var validate = validator.New(validator.WithRequiredStructEnabled())

// checkModel validates a persistence model and converts validator failures
// into the domain validation error, with the offending fields in the details.
func checkModel(model any) error {
	err := validate.Struct(model)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	fields := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		fields = append(fields, fieldErr.Field()+" ("+fieldErr.Tag()+")")
	}

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(fields, ", "))
}
