package user_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/learnhub/internal/auth"
	"github.com/saulo-duarte/learnhub/internal/memstore"
	"github.com/saulo-duarte/learnhub/internal/user"
)

func getProfile(t *testing.T, h http.Handler, identity *auth.Identity) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if identity != nil {
		req = req.WithContext(auth.WithIdentity(req.Context(), *identity))
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestProfileHandler(t *testing.T) {
	db := memstore.New()
	h := user.Routes(user.NewHandler(user.NewService(db.Users())))

	student, err := db.AddUser("Ada", auth.RoleStudent)
	require.NoError(t, err)
	admin, err := db.AddUser("Root", auth.RoleAdmin)
	require.NoError(t, err)

	t.Run("Student", func(t *testing.T) {
		rec := getProfile(t, h, &auth.Identity{UserID: student.ID, Role: auth.RoleStudent})
		require.Equal(t, http.StatusOK, rec.Code)

		var p user.Profile
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&p))
		assert.Equal(t, student.ID, p.ID)
		assert.Equal(t, "Ada", p.Name)
		assert.Equal(t, auth.RoleStudent, p.Role)
		assert.False(t, p.IsAdmin)
		assert.Equal(t, "/dashboard", p.Home)
	})

	t.Run("Admin", func(t *testing.T) {
		rec := getProfile(t, h, &auth.Identity{UserID: admin.ID, Role: auth.RoleAdmin})
		require.Equal(t, http.StatusOK, rec.Code)

		var p user.Profile
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&p))
		assert.True(t, p.IsAdmin)
		assert.Equal(t, "/admin", p.Home)
	})

	t.Run("UnknownUser", func(t *testing.T) {
		rec := getProfile(t, h, &auth.Identity{UserID: uuid.New(), Role: auth.RoleStudent})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Unauthenticated", func(t *testing.T) {
		rec := getProfile(t, h, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
