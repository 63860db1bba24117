package validation

import (
	"errors"
	"fmt"

	"restaurant/internal/domain/model"

	"github.com/go-playground/validator/v10"
)

type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	return &Validator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (v *Validator) ValidateOrder(order model.Order) error {
	return v.Struct(order)
}

// Struct validates any tagged struct, such as an inbound order command.
func (v *Validator) Struct(s any) error {
	err := v.validate.Struct(s)
	if err != nil {
		var invalidErr *validator.InvalidValidationError
		if errors.As(err, &invalidErr) {
			return err
		}
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}
