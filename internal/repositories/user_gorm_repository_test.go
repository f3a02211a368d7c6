package repositories_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"lockbox/internal/models"
	"lockbox/internal/repositories"
)

func TestUserRepository_CreateGeneratesDistinctIDs(t *testing.T) {
	db := openTestDB(t)
	repo := repositories.NewGORMUserRepository(db)
	ctx := context.Background()

	first := &models.User{Username: "alice", PasswordHash: "h1"}
	second := &models.User{Username: "bob", PasswordHash: "h2"}
	assert.NoError(t, repo.Create(ctx, first))
	assert.NoError(t, repo.Create(ctx, second))

	assert.NotEqual(t, uuid.Nil, first.ID)
	assert.NotEqual(t, uuid.Nil, second.ID)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestUserRepository_CreateDuplicateUsername(t *testing.T) {
	db := openTestDB(t)
	repo := repositories.NewGORMUserRepository(db)
	ctx := context.Background()

	assert.NoError(t, repo.Create(ctx, &models.User{Username: "alice", PasswordHash: "h1"}))

	err := repo.Create(ctx, &models.User{Username: "alice", PasswordHash: "h2"})
	assert.ErrorIs(t, err, repositories.ErrConflict)

	// The rejected insert must not leave a second row behind.
	var count int64
	assert.NoError(t, db.Model(&models.User{}).Where("username = ?", "alice").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestUserRepository_GetByID(t *testing.T) {
	db := openTestDB(t)
	repo := repositories.NewGORMUserRepository(db)
	ctx := context.Background()

	user := createUser(t, db, "alice")

	got, err := repo.GetByID(ctx, user.ID)
	assert.NoError(t, err)
	assert.Equal(t, "alice", got.Username)

	_, err = repo.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestUserRepository_GetByUsername(t *testing.T) {
	db := openTestDB(t)
	repo := repositories.NewGORMUserRepository(db)
	ctx := context.Background()

	user := createUser(t, db, "alice")

	got, err := repo.GetByUsername(ctx, "alice")
	assert.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = repo.GetByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestUserRepository_DeleteRemovesOwnedData(t *testing.T) {
	db := openTestDB(t)
	userRepo := repositories.NewGORMUserRepository(db)
	folderRepo := repositories.NewGORMFolderRepository(db)
	entryRepo := repositories.NewGORMPasswordEntryRepository(db)
	ctx := context.Background()

	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	work := createFolder(t, db, alice, "Work")
	createEntry(t, db, alice, work, "Gmail")
	createEntry(t, db, alice, nil, "Bank")
	bobEntry := createEntry(t, db, bob, nil, "Untouched")

	assert.NoError(t, userRepo.Delete(ctx, alice.ID))

	_, err := userRepo.GetByID(ctx, alice.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	var folders, entries int64
	assert.NoError(t, db.Model(&models.Folder{}).Where("user_id = ?", alice.ID).Count(&folders).Error)
	assert.NoError(t, db.Model(&models.PasswordEntry{}).Where("user_id = ?", alice.ID).Count(&entries).Error)
	assert.Zero(t, folders)
	assert.Zero(t, entries)

	// Another user's data survives the purge.
	got, err := entryRepo.GetByID(ctx, bobEntry.ID, bob.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Untouched", got.Name)

	folderList, err := folderRepo.ListByUser(ctx, bob.ID)
	assert.NoError(t, err)
	assert.Empty(t, folderList)
}

func TestUserRepository_DeleteMissing(t *testing.T) {
	db := openTestDB(t)
	repo := repositories.NewGORMUserRepository(db)

	err := repo.Delete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}
