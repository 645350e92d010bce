package gateway

import (
	"errors"

	"github.com/rvault/recipevault/internal/common"
)

// PublicMessage maps an authentication error to a message safe to show to
// end users. Credential failures collapse into a single message so the
// response does not reveal whether an email is registered.
func PublicMessage(err error) string {
	switch {
	case errors.Is(err, common.ErrEmailNotFound),
		errors.Is(err, common.ErrWrongPassword):
		return "invalid email or password"
	case errors.Is(err, common.ErrEmailAlreadyExists):
		return "account already exists"
	case errors.Is(err, common.ErrInvalidEmailFormat):
		return "email format not accepted"
	case errors.Is(err, common.ErrInvalidPasswordFormat):
		return "password format not accepted"
	case errors.Is(err, common.ErrMissingAccessToken):
		return "authentication required"
	case errors.Is(err, common.ErrTokenExpired):
		return "session expired, log in again"
	case errors.Is(err, common.ErrMalformedToken),
		errors.Is(err, common.ErrSignatureMismatch),
		errors.Is(err, common.ErrInvalidTokenPayload):
		return "authentication failed"
	case errors.Is(err, common.ErrUnsupportedMethod):
		return "method not allowed"
	default:
		return "request failed"
	}
}
