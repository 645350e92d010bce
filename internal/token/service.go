package token

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rvault/recipevault/internal/common"
)

// Separator joins the encoded payload and the signature in the serialized form.
const Separator = "."

// Token is an issued credential before serialization.
type Token struct {
	EncodedPayload string
	Signature      string
}

// String serializes the token to its wire form.
func (t Token) String() string {
	return t.EncodedPayload + Separator + t.Signature
}

// Service issues and verifies signed tokens. It is the sole holder of the
// signing secret. A Service is a pure function of its inputs and the clock,
// so it is safe for concurrent use without locking.
type Service struct {
	secretKey []byte
}

// NewService constructs a Service around the given signing secret. The secret
// must come from configuration; it is treated as read-only afterwards.
func NewService(secretKey []byte) *Service {
	return &Service{secretKey: secretKey}
}

// Issue creates a token for the given subject, valid for validFor from now.
func (s *Service) Issue(subjectID uuid.UUID, validFor time.Duration) (Token, error) {
	expires := time.Now().Add(validFor)

	payload := Payload{
		UserID:         subjectID.String(),
		ExpirationDate: float64(expires.UnixNano()) / float64(time.Second),
	}

	encoded, err := EncodePayload(payload)
	if err != nil {
		return Token{}, err
	}

	return Token{EncodedPayload: encoded, Signature: s.sign(encoded)}, nil
}

// Verify checks a serialized token and returns the subject id it carries.
//
// Checks run in a fixed order so failures are attributable:
//  1. exactly two segments, else common.ErrMalformedToken;
//  2. signature over the raw payload segment, constant-time compare, else
//     common.ErrSignatureMismatch; the payload is not trusted for anything
//     before this point;
//  3. payload decodes and carries a well-formed UUID, else
//     common.ErrInvalidTokenPayload;
//  4. expiration against the current clock, else common.ErrTokenExpired.
func (s *Service) Verify(tokenString string) (uuid.UUID, error) {
	parts := strings.Split(tokenString, Separator)
	if len(parts) != 2 {
		return uuid.Nil, common.ErrMalformedToken
	}

	expected := s.sign(parts[0])
	if !hmac.Equal([]byte(parts[1]), []byte(expected)) {
		return uuid.Nil, common.ErrSignatureMismatch
	}

	payload, err := DecodePayload(parts[0])
	if err != nil {
		return uuid.Nil, err
	}
	subjectID, err := uuid.Parse(payload.UserID)
	if err != nil {
		return uuid.Nil, common.ErrInvalidTokenPayload
	}

	expires := time.Unix(0, int64(payload.ExpirationDate*float64(time.Second)))
	if time.Now().After(expires) {
		return uuid.Nil, common.ErrTokenExpired
	}

	return subjectID, nil
}

func (s *Service) sign(encodedPayload string) string {
	mac := hmac.New(sha256.New, s.secretKey)
	mac.Write([]byte(encodedPayload))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}
