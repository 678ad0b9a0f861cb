package user_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/learnhub/internal/auth"
	"github.com/saulo-duarte/learnhub/internal/memstore"
	"github.com/saulo-duarte/learnhub/internal/user"
)

func TestGetCurrentUser(t *testing.T) {
	db := memstore.New()
	svc := user.NewService(db.Users())

	u, err := db.AddUser("Ada", auth.RoleStudent)
	require.NoError(t, err)

	got, err := svc.GetCurrentUser(context.Background(), auth.Identity{UserID: u.ID, Role: auth.RoleStudent})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Ada", got.Name)

	missing, err := svc.GetCurrentUser(context.Background(), auth.Identity{UserID: uuid.New()})
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestCreateRejectsDuplicateEmail(t *testing.T) {
	repo := memstore.New().Users()

	require.NoError(t, repo.Create(&user.User{ID: uuid.New(), Name: "Ada", Email: "ada@learnhub.local"}))
	err := repo.Create(&user.User{ID: uuid.New(), Name: "Ada II", Email: "ada@learnhub.local"})
	assert.Error(t, err)
}
