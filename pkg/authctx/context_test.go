package authctx_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platformkit/platformkit/pkg/authctx"
)

func TestContextRoundTrip(t *testing.T) {
	t.Parallel()

	assert.Nil(t, authctx.GetFromContext(context.Background()))

	ac, err := authctx.FromClaims(map[string]any{"sub": "user-123"})
	require.NoError(t, err)

	ctx := authctx.SetToContext(context.Background(), ac)
	got := authctx.GetFromContext(ctx)
	require.NotNil(t, got)
	assert.Equal(t, "user-123", got.UserID)
}
