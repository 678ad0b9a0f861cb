package auth_test

import (
	"os"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/learnhub/internal/auth"
)

const testSecret = "a-long-and-safe-secret-key-for-tests"
const testUserID = "5f7a4c3e-1b2d-4e8f-9a6b-0c1d2e3f4a5b"
const testRole = auth.RoleAdmin

func TestInit(t *testing.T) {
	t.Run("MissingSecret", func(t *testing.T) {
		os.Unsetenv("JWT_SECRET")
		assert.Panics(t, auth.Init)
	})

	t.Run("ValidSecret", func(t *testing.T) {
		os.Setenv("JWT_SECRET", testSecret)
		assert.NotPanics(t, auth.Init)
	})
}

func TestGenerateAndValidateJWT(t *testing.T) {
	os.Setenv("JWT_SECRET", testSecret)
	auth.Init()

	t.Run("ValidToken", func(t *testing.T) {
		tokenStr, err := auth.GenerateJWT(testUserID, testRole, 5*time.Minute)
		require.NoError(t, err)

		claims, err := auth.ValidateJWT(tokenStr)
		require.NoError(t, err)
		assert.Equal(t, testUserID, claims.UserID)
		assert.Equal(t, testRole, claims.Role)
	})

	t.Run("ExpiredToken", func(t *testing.T) {
		tokenStr, err := auth.GenerateJWT(testUserID, testRole, -time.Minute)
		require.NoError(t, err)

		_, err = auth.ValidateJWT(tokenStr)
		require.Error(t, err)
		assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	})

	t.Run("InvalidSignature", func(t *testing.T) {
		os.Setenv("JWT_SECRET", "another-secret-that-does-not-match")
		auth.Init()
		tokenStr, err := auth.GenerateJWT(testUserID, testRole, time.Minute)
		require.NoError(t, err)

		os.Setenv("JWT_SECRET", testSecret)
		auth.Init()

		_, err = auth.ValidateJWT(tokenStr)
		require.Error(t, err)
		assert.ErrorIs(t, err, jwt.ErrSignatureInvalid)
	})

	t.Run("Garbage", func(t *testing.T) {
		_, err := auth.ValidateJWT("not-a-token")
		assert.Error(t, err)
	})
}
