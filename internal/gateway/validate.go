package gateway

import (
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/rvault/recipevault/internal/common"
)

// FieldValidator checks a request field before any store interaction.
// A nil return accepts the value.
type FieldValidator func(value string) error

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// NonEmptyEmail accepts any non-empty string. This is the default policy.
func NonEmptyEmail(value string) error {
	if value == "" {
		return common.ErrInvalidEmailFormat
	}
	return nil
}

// NonEmptyPassword accepts any non-empty string. This is the default policy.
func NonEmptyPassword(value string) error {
	if value == "" {
		return common.ErrInvalidPasswordFormat
	}
	return nil
}

// StrictEmail requires an RFC-shaped email address.
func StrictEmail(value string) error {
	if err := getValidator().Var(value, "required,email"); err != nil {
		return common.ErrInvalidEmailFormat
	}
	return nil
}

// MinLengthPassword returns a validator requiring at least n characters.
func MinLengthPassword(n int) FieldValidator {
	return func(value string) error {
		if err := getValidator().Var(value, "required"); err != nil {
			return common.ErrInvalidPasswordFormat
		}
		if len(value) < n {
			return common.ErrInvalidPasswordFormat
		}
		return nil
	}
}
