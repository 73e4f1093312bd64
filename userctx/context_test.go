package userctx

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserContext(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, Anonymous, GetUserEmail(ctx))
	assert.Empty(t, GetUserID(ctx))

	ctx = WithUser(ctx, "user-1", "kim@example.com")
	assert.Equal(t, "kim@example.com", GetUserEmail(ctx))
	assert.Equal(t, "user-1", GetUserID(ctx))

	assert.Equal(t, Anonymous, GetUserEmail(SetUserEmail(context.Background(), "")))
}
