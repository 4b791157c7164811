//go:build integration_test || all_tests

package auth_test

import (
	"testing"
	"time"

	"github.com/BuddyOhio/back-end-g9-final-project/internal/auth"
	pkgtesting "github.com/BuddyOhio/back-end-g9-final-project/pkg/testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_LoginLogout_RealRedis(t *testing.T) {
	ctx, rdb := pkgtesting.GetRedisClientAndCtx(t)
	defer func() {
		require.NoError(t, rdb.Close())
	}()

	service := auth.NewService(auth.DefaultTTL, rdb)
	userID := uuid.NewString()

	token, err := service.Login(ctx, userID, time.Now())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	checker := auth.NewLoginChecker(auth.DefaultTTL, rdb)
	gotUserID, err := checker.UserIDFromToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, userID, gotUserID)

	loggedOut, err := service.Logout(ctx, token)
	require.NoError(t, err)
	assert.True(t, loggedOut)

	_, err = checker.UserIDFromToken(ctx, token)
	assert.ErrorIs(t, err, auth.ErrInvalidSession)
}

func TestService_ScanAndClean_RealRedis(t *testing.T) {
	ctx, rdb := pkgtesting.GetRedisClientAndCtx(t)
	defer func() {
		require.NoError(t, rdb.Close())
	}()

	// sessions created a long time ago get swept
	service := auth.NewService(time.Minute, rdb)
	userID := uuid.NewString()

	expiredToken, err := service.Login(ctx, userID, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	freshToken, err := service.Login(ctx, userID, time.Now())
	require.NoError(t, err)

	service.ScanAndClean(ctx)

	checker := auth.NewLoginChecker(time.Minute, rdb)
	_, err = checker.UserIDFromToken(ctx, expiredToken)
	assert.ErrorIs(t, err, auth.ErrInvalidSession)

	gotUserID, err := checker.UserIDFromToken(ctx, freshToken)
	require.NoError(t, err)
	assert.Equal(t, userID, gotUserID)
}
