package repositories_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"lockbox/internal/models"
	"lockbox/internal/repositories"
)

func TestPasswordEntryRepository_CreateGeneratesDistinctIDs(t *testing.T) {
	db := openTestDB(t)

	alice := createUser(t, db, "alice")
	first := createEntry(t, db, alice, nil, "Gmail")
	second := createEntry(t, db, alice, nil, "Bank")

	assert.NotEqual(t, uuid.Nil, first.ID)
	assert.NotEqual(t, uuid.Nil, second.ID)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestPasswordEntryRepository_CreateWithMissingFolder(t *testing.T) {
	db := openTestDB(t)
	repo := repositories.NewGORMPasswordEntryRepository(db)
	ctx := context.Background()

	alice := createUser(t, db, "alice")
	bogus := uuid.New()

	err := repo.Create(ctx, &models.PasswordEntry{UserID: alice.ID, FolderID: &bogus, Name: "Gmail"})
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestPasswordEntryRepository_GetByIDScopedToOwner(t *testing.T) {
	db := openTestDB(t)
	repo := repositories.NewGORMPasswordEntryRepository(db)
	ctx := context.Background()

	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	entry := createEntry(t, db, alice, nil, "Gmail")

	got, err := repo.GetByID(ctx, entry.ID, alice.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Gmail", got.Name)

	_, foreignErr := repo.GetByID(ctx, entry.ID, bob.ID)
	_, missingErr := repo.GetByID(ctx, uuid.New(), alice.ID)
	assert.ErrorIs(t, foreignErr, repositories.ErrNotFound)
	assert.ErrorIs(t, missingErr, repositories.ErrNotFound)
}

func TestPasswordEntryRepository_ListFilters(t *testing.T) {
	db := openTestDB(t)
	repo := repositories.NewGORMPasswordEntryRepository(db)
	ctx := context.Background()

	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	work := createFolder(t, db, alice, "Work")
	personal := createFolder(t, db, alice, "Personal")
	gmail := createEntry(t, db, alice, work, "Gmail")
	createEntry(t, db, alice, personal, "Bank")
	loose := createEntry(t, db, alice, nil, "WiFi")
	createEntry(t, db, bob, nil, "Other")

	all, err := repo.ListByUser(ctx, alice.ID, repositories.EntryFilter{})
	assert.NoError(t, err)
	assert.Len(t, all, 3)

	inWork, err := repo.ListByUser(ctx, alice.ID, repositories.EntryFilter{FolderID: &work.ID})
	assert.NoError(t, err)
	if assert.Len(t, inWork, 1) {
		assert.Equal(t, gmail.ID, inWork[0].ID)
	}

	unfiled, err := repo.ListByUser(ctx, alice.ID, repositories.EntryFilter{UnfiledOnly: true})
	assert.NoError(t, err)
	if assert.Len(t, unfiled, 1) {
		assert.Equal(t, loose.ID, unfiled[0].ID)
	}
}

func TestPasswordEntryRepository_ListScopedToOwner(t *testing.T) {
	db := openTestDB(t)
	repo := repositories.NewGORMPasswordEntryRepository(db)
	ctx := context.Background()

	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	work := createFolder(t, db, alice, "Work")
	createEntry(t, db, alice, work, "Gmail")

	// Bob filtering by Alice's folder sees nothing, not her entries.
	got, err := repo.ListByUser(ctx, bob.ID, repositories.EntryFilter{FolderID: &work.ID})
	assert.NoError(t, err)
	assert.Empty(t, got)
}

func TestPasswordEntryRepository_UpdatePersistsClearedFields(t *testing.T) {
	db := openTestDB(t)
	repo := repositories.NewGORMPasswordEntryRepository(db)
	ctx := context.Background()

	alice := createUser(t, db, "alice")
	username := "alice@example.com"
	notes := "personal inbox"
	entry := &models.PasswordEntry{UserID: alice.ID, Name: "Gmail", Username: &username, Notes: &notes}
	assert.NoError(t, repo.Create(ctx, entry))

	entry.Username = nil
	entry.Notes = nil
	assert.NoError(t, repo.Update(ctx, entry))

	got, err := repo.GetByID(ctx, entry.ID, alice.ID)
	assert.NoError(t, err)
	assert.Nil(t, got.Username)
	assert.Nil(t, got.Notes)
	assert.Equal(t, "Gmail", got.Name)
}

func TestPasswordEntryRepository_UpdateMovesBetweenFolders(t *testing.T) {
	db := openTestDB(t)
	repo := repositories.NewGORMPasswordEntryRepository(db)
	ctx := context.Background()

	alice := createUser(t, db, "alice")
	work := createFolder(t, db, alice, "Work")
	personal := createFolder(t, db, alice, "Personal")
	entry := createEntry(t, db, alice, work, "Gmail")

	entry.FolderID = &personal.ID
	assert.NoError(t, repo.Update(ctx, entry))

	got, err := repo.GetByID(ctx, entry.ID, alice.ID)
	assert.NoError(t, err)
	if assert.NotNil(t, got.FolderID) {
		assert.Equal(t, personal.ID, *got.FolderID)
	}
}

func TestPasswordEntryRepository_DeleteScopedToOwner(t *testing.T) {
	db := openTestDB(t)
	repo := repositories.NewGORMPasswordEntryRepository(db)
	ctx := context.Background()

	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	entry := createEntry(t, db, alice, nil, "Gmail")

	err := repo.Delete(ctx, entry.ID, bob.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	// The foreign attempt must not remove the entry.
	_, err = repo.GetByID(ctx, entry.ID, alice.ID)
	assert.NoError(t, err)

	assert.NoError(t, repo.Delete(ctx, entry.ID, alice.ID))
	_, err = repo.GetByID(ctx, entry.ID, alice.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}
