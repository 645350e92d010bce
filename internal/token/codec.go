// Package token implements issuing and verification of RecipeVault access
// credentials. A credential is a two-segment string
//
//	<base64(payload JSON)>.<base64(HMAC-SHA256(secret, base64 payload))>
//
// with no algorithm header. The format is deliberately minimal and is not
// interoperable with JWT.
package token

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/rvault/recipevault/internal/common"
)

// Payload carries the claims embedded in a token: the subject account id and
// the absolute expiration time in seconds since the Unix epoch.
//
// Encoding is deterministic: the same payload always yields the same encoded
// string, so a token carries nothing beyond these two fields.
type Payload struct {
	UserID         string  `json:"userId"`
	ExpirationDate float64 `json:"expirationDate"`
}

// EncodePayload serializes the payload to compact JSON and applies standard
// base64 with padding.
func EncodePayload(p Payload) (string, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("encoding token payload: %w", err)
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

// DecodePayload is the inverse of EncodePayload. It returns
// common.ErrInvalidTokenPayload when the string is not valid base64, not
// valid JSON, or is missing either required field.
func DecodePayload(s string) (*Payload, error) {
	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, common.ErrInvalidTokenPayload
	}

	var p Payload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, common.ErrInvalidTokenPayload
	}
	if p.UserID == "" || p.ExpirationDate == 0 {
		return nil, common.ErrInvalidTokenPayload
	}

	return &p, nil
}
