package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryBlacklist(t *testing.T) {
	ctx := context.Background()
	bl := NewInMemoryTokenBlacklist()

	blocked, err := bl.IsBlacklisted(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, blocked)

	require.NoError(t, bl.AddToBlacklist(ctx, "jti-1", time.Minute))

	blocked, err = bl.IsBlacklisted(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, blocked)

	blocked, err = bl.IsBlacklisted(ctx, "jti-2")
	require.NoError(t, err)
	assert.False(t, blocked)
}

func TestInMemoryBlacklistEntryExpires(t *testing.T) {
	ctx := context.Background()
	bl := NewInMemoryTokenBlacklist()

	require.NoError(t, bl.AddToBlacklist(ctx, "short-lived", -time.Second))

	blocked, err := bl.IsBlacklisted(ctx, "short-lived")
	require.NoError(t, err)
	assert.False(t, blocked)
}
