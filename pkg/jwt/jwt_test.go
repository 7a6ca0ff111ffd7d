package jwt_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platformkit/platformkit/pkg/jwt"
)

func TestNew(t *testing.T) {
	t.Parallel()

	_, err := jwt.New(nil)
	assert.ErrorIs(t, err, jwt.ErrMissingSigningKey)

	_, err = jwt.NewFromString("")
	assert.ErrorIs(t, err, jwt.ErrMissingSigningKey)

	svc, err := jwt.NewFromString("test-signing-key")
	require.NoError(t, err)
	assert.NotNil(t, svc)
}

func TestGenerateAndParse(t *testing.T) {
	t.Parallel()

	svc, err := jwt.NewFromString("test-signing-key")
	require.NoError(t, err)

	claims := jwt.AccessClaims{
		StandardClaims: jwt.StandardClaims{
			Subject:   "user-123",
			ExpiresAt: time.Now().Add(time.Hour).Unix(),
		},
		Email:       "test@example.com",
		Roles:       []string{"manager"},
		Permissions: []string{"reports:export"},
		TenantID:    "tenant-456",
		Scope:       "openid profile",
	}

	token, err := svc.Generate(claims)
	require.NoError(t, err)
	assert.Len(t, strings.Split(token, "."), 3)

	var parsed jwt.AccessClaims
	require.NoError(t, svc.Parse(token, &parsed))
	assert.Equal(t, claims, parsed)
}

func TestGenerateNilClaims(t *testing.T) {
	t.Parallel()

	svc, err := jwt.NewFromString("test-signing-key")
	require.NoError(t, err)

	_, err = svc.Generate(nil)
	assert.ErrorIs(t, err, jwt.ErrMissingClaims)
}

func TestParseRejectsTamperedToken(t *testing.T) {
	t.Parallel()

	svc, err := jwt.NewFromString("test-signing-key")
	require.NoError(t, err)

	token, err := svc.Generate(jwt.StandardClaims{Subject: "user-123"})
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	tampered := parts[0] + "." + parts[1] + "x." + parts[2]

	var claims jwt.StandardClaims
	assert.ErrorIs(t, svc.Parse(tampered, &claims), jwt.ErrInvalidSignature)
}

func TestParseRejectsWrongKey(t *testing.T) {
	t.Parallel()

	svc1, err := jwt.NewFromString("key-one")
	require.NoError(t, err)
	svc2, err := jwt.NewFromString("key-two")
	require.NoError(t, err)

	token, err := svc1.Generate(jwt.StandardClaims{Subject: "user-123"})
	require.NoError(t, err)

	var claims jwt.StandardClaims
	assert.ErrorIs(t, svc2.Parse(token, &claims), jwt.ErrInvalidSignature)
}

func TestParseRejectsMalformed(t *testing.T) {
	t.Parallel()

	svc, err := jwt.NewFromString("test-signing-key")
	require.NoError(t, err)

	var claims jwt.StandardClaims
	assert.ErrorIs(t, svc.Parse("not-a-token", &claims), jwt.ErrInvalidToken)
	assert.ErrorIs(t, svc.Parse("a.b", &claims), jwt.ErrInvalidToken)
}

func TestParseExpiredToken(t *testing.T) {
	t.Parallel()

	svc, err := jwt.NewFromString("test-signing-key")
	require.NoError(t, err)

	token, err := svc.Generate(jwt.StandardClaims{
		Subject:   "user-123",
		ExpiresAt: time.Now().Add(-time.Minute).Unix(),
	})
	require.NoError(t, err)

	var claims jwt.StandardClaims
	assert.ErrorIs(t, svc.Parse(token, &claims), jwt.ErrExpiredToken)
}

func TestParseNotYetValidToken(t *testing.T) {
	t.Parallel()

	svc, err := jwt.NewFromString("test-signing-key")
	require.NoError(t, err)

	token, err := svc.Generate(jwt.StandardClaims{
		Subject:   "user-123",
		NotBefore: time.Now().Add(time.Hour).Unix(),
	})
	require.NoError(t, err)

	var claims jwt.StandardClaims
	assert.ErrorIs(t, svc.Parse(token, &claims), jwt.ErrInvalidToken)
}

func TestDecodeUnverified(t *testing.T) {
	t.Parallel()

	svc, err := jwt.NewFromString("some-remote-key")
	require.NoError(t, err)

	t.Run("extracts claims without the key", func(t *testing.T) {
		t.Parallel()
		token, err := svc.Generate(jwt.AccessClaims{
			StandardClaims: jwt.StandardClaims{
				Subject:   "user-123",
				ExpiresAt: time.Now().Add(time.Hour).Unix(),
			},
			TenantID: "tenant-456",
			Roles:    []string{"admin"},
		})
		require.NoError(t, err)

		claims, err := jwt.DecodeUnverified(token)
		require.NoError(t, err)
		assert.Equal(t, "user-123", claims["sub"])
		assert.Equal(t, "tenant-456", claims["tenant_id"])
		assert.Equal(t, []any{"admin"}, claims["roles"])
	})

	t.Run("expired token", func(t *testing.T) {
		t.Parallel()
		token, err := svc.Generate(jwt.StandardClaims{
			Subject:   "user-123",
			ExpiresAt: time.Now().Add(-time.Minute).Unix(),
		})
		require.NoError(t, err)

		_, err = jwt.DecodeUnverified(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("garbage token", func(t *testing.T) {
		t.Parallel()
		_, err := jwt.DecodeUnverified("invalid-token")
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)

		_, err = jwt.DecodeUnverified("a.!!!.c")
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}
