package invitations

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/json"
	"strings"
	"time"
)

// LinkPayload is the claim set embedded in a locally minted invite-link
// token: enough to route the recipient without a server round-trip.
type LinkPayload struct {
	InvitationID string `json:"inv"`
	Email        string `json:"email"`
	TenantID     string `json:"tid,omitempty"`
	ExpiresAt    int64  `json:"exp"`
}

// GenerateLinkToken creates a compact signed token for embedding in
// invitation URLs: base64url(payload).base64url(signature) with an
// 8-byte truncated HMAC-SHA256 signature. The truncated signature trades
// strength for URL length, which is acceptable for short-lived invite
// links; the server-side token remains the authority.
func GenerateLinkToken(payload LinkPayload, secret string) (string, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	payloadEnc := base64.RawURLEncoding.EncodeToString(data)
	h := hmac.New(sha256.New, []byte(secret))
	h.Write(data)
	sig := h.Sum(nil)[:8]

	return payloadEnc + "." + base64.RawURLEncoding.EncodeToString(sig), nil
}

// ParseLinkToken verifies a link token's signature and expiry and
// returns its payload. Malformed tokens and signature mismatches return
// ErrInvalidLinkToken; expired tokens return ErrTokenExpired.
func ParseLinkToken(token, secret string) (LinkPayload, error) {
	var payload LinkPayload

	parts := strings.Split(token, ".")
	if len(parts) != 2 {
		return payload, ErrInvalidLinkToken
	}

	data, err := base64.RawURLEncoding.DecodeString(parts[0])
	if err != nil {
		return payload, ErrInvalidLinkToken
	}
	sig, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return payload, ErrInvalidLinkToken
	}

	h := hmac.New(sha256.New, []byte(secret))
	h.Write(data)
	expected := h.Sum(nil)[:8]
	if subtle.ConstantTimeCompare(sig, expected) != 1 {
		return payload, ErrInvalidLinkToken
	}

	if err := json.Unmarshal(data, &payload); err != nil {
		return LinkPayload{}, ErrInvalidLinkToken
	}
	if payload.ExpiresAt > 0 && time.Now().Unix() > payload.ExpiresAt {
		return LinkPayload{}, ErrTokenExpired
	}
	return payload, nil
}
