package quote

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ErrRequired is returned when a quote is missing its text or category.
var ErrRequired = errors.New("both quote and category are required")

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks that both fields of q are set.
func Validate(q Quote) error {
	err := validate.Struct(q)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return fmt.Errorf("%w (missing %s)", ErrRequired, verrs[0].Field())
	}
	return err
}
