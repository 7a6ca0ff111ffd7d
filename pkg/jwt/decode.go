package jwt

import (
	"encoding/json"
	"strings"
	"time"
)

// DecodeUnverified extracts the claims of a token WITHOUT verifying its
// signature.
//
// This exists for the deprecated client-side path where the SDK inspects an
// access token it cannot verify locally; the issuing server remains the
// authority on token validity. Never use the result to grant access on the
// server side.
//
// Returns ErrInvalidToken when the string cannot be parsed into claims at
// all, and ErrExpiredToken when the decoded "exp" claim is in the past.
func DecodeUnverified(tokenString string) (map[string]any, error) {
	parts := strings.Split(tokenString, ".")
	if len(parts) != 3 {
		return nil, ErrInvalidToken
	}

	claimsJSON, err := decodeSegment(parts[1])
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims := make(map[string]any)
	if err := json.Unmarshal(claimsJSON, &claims); err != nil {
		return nil, ErrInvalidToken
	}

	if exp, ok := claims["exp"]; ok {
		if expiresAt, ok := numericClaim(exp); ok && time.Now().Unix() > expiresAt {
			return nil, ErrExpiredToken
		}
	}

	return claims, nil
}

// numericClaim coerces the JSON representations of a numeric date claim.
func numericClaim(v any) (int64, bool) {
	switch n := v.(type) {
	case float64:
		return int64(n), true
	case int64:
		return n, true
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	default:
		return 0, false
	}
}
