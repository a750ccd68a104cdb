package repositories

import (
	"context"
	"testing"

	"gin-manufacturer/constants"
	"gin-manufacturer/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_Upsert(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(setupTestDB(t))
	email := "jane@example.com"

	first, err := repo.Upsert(ctx, email, models.UserProfile{"name": "Jane"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.UpsertedCount)
	require.NotNil(t, first.UpsertedID)

	second, err := repo.Upsert(ctx, email, models.UserProfile{"name": "Jane", "phone": "555-0100"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), second.MatchedCount)
	assert.Equal(t, int64(1), second.ModifiedCount)
	assert.Equal(t, int64(0), second.UpsertedCount)

	third, err := repo.Upsert(ctx, email, models.UserProfile{"name": "Jane", "phone": "555-0100"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), third.MatchedCount)
	assert.Equal(t, int64(0), third.ModifiedCount)

	users, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, *first.UpsertedID, users[0].ID)
	assert.Equal(t, "Jane", users[0].Name)
	assert.Equal(t, "555-0100", users[0].Phone)
}

func TestUserRepository_UpsertKeepsRole(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(setupTestDB(t))
	email := "admin@example.com"

	_, err := repo.Upsert(ctx, email, models.UserProfile{})
	require.NoError(t, err)
	_, err = repo.SetRole(ctx, email, constants.RoleAdmin)
	require.NoError(t, err)

	_, err = repo.Upsert(ctx, email, models.UserProfile{"name": "Root"})
	require.NoError(t, err)

	user, err := repo.FindUser(ctx, email)
	require.NoError(t, err)
	assert.Equal(t, constants.RoleAdmin, user.Role)
	assert.Equal(t, "Root", user.Name)
}

func TestUserRepository_SetRole(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(setupTestDB(t))

	result, err := repo.SetRole(ctx, "ghost@example.com", constants.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, int64(0), result.MatchedCount)

	_, err = repo.FindUser(ctx, "ghost@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserRepository_UpsertArbitraryFields(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(setupTestDB(t))
	email := "jane@example.com"

	_, err := repo.Upsert(ctx, email, models.UserProfile{"name": "Jane", "company": "Acme"})
	require.NoError(t, err)

	updated, err := repo.Upsert(ctx, email, models.UserProfile{"title": "CTO"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), updated.ModifiedCount)

	same, err := repo.Upsert(ctx, email, models.UserProfile{"company": "Acme"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), same.MatchedCount)
	assert.Equal(t, int64(0), same.ModifiedCount)

	user, err := repo.FindUser(ctx, email)
	require.NoError(t, err)
	assert.Equal(t, "Jane", user.Name)
	assert.Equal(t, "Acme", user.Extras["company"])
	assert.Equal(t, "CTO", user.Extras["title"])
}

func TestUserRepository_SetRoleTwice(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(setupTestDB(t))
	email := "jane@example.com"

	_, err := repo.Upsert(ctx, email, models.UserProfile{})
	require.NoError(t, err)

	first, err := repo.SetRole(ctx, email, constants.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.MatchedCount)
	assert.Equal(t, int64(1), first.ModifiedCount)

	second, err := repo.SetRole(ctx, email, constants.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, int64(1), second.MatchedCount)
	assert.Equal(t, int64(0), second.ModifiedCount)
}
