package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrValidation marks every field-level rejection in this package. Callers
// match it with errors.Is and surface the wrapped detail to the client.
var ErrValidation = errors.New("validation")

// Every create and update funnels through these validators via the model
// BeforeSave hooks; handlers call the same functions when checking request
// payloads, so there is a single validation path for both.

func ValidateEmail(email string) error {
	if email == "" || !strings.Contains(email, "@") {
		return fmt.Errorf("%w: invalid email address format", ErrValidation)
	}
	return nil
}

func ValidateRole(role string) error {
	if role != RoleFarmer && role != RoleCustomer {
		return fmt.Errorf("%w: invalid role, must be either %q or %q", ErrValidation, RoleFarmer, RoleCustomer)
	}
	return nil
}

func ValidateRating(rating int) error {
	if rating < 1 || rating > 5 {
		return fmt.Errorf("%w: rating must be between 1 and 5", ErrValidation)
	}
	return nil
}

func ValidateQuantityOrdered(quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("%w: quantity ordered must be greater than 0", ErrValidation)
	}
	return nil
}

func ValidatePaymentAmount(amount int) error {
	if amount < 0 {
		return fmt.Errorf("%w: payment amount cannot be negative", ErrValidation)
	}
	return nil
}

func ValidateMessageText(text string) error {
	if text == "" {
		return fmt.Errorf("%w: message text cannot be empty", ErrValidation)
	}
	return nil
}
