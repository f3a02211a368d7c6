package repositories_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"lockbox/internal/models"
	"lockbox/internal/repositories"
)

// openTestDB opens a fresh named in-memory SQLite database for one
// test, configured like the production bootstrap: translated errors
// and foreign key enforcement on.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=1",
		strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := repositories.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

// createUser persists a user for tests that need an owner.
func createUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	user := &models.User{Username: username, PasswordHash: "irrelevant"}
	if err := repositories.NewGORMUserRepository(db).Create(context.Background(), user); err != nil {
		t.Fatalf("failed to create user %q: %v", username, err)
	}
	return user
}

// createFolder persists a folder for tests that need one.
func createFolder(t *testing.T, db *gorm.DB, owner *models.User, name string) *models.Folder {
	t.Helper()

	folder := &models.Folder{UserID: owner.ID, Name: name}
	if err := repositories.NewGORMFolderRepository(db).Create(context.Background(), folder); err != nil {
		t.Fatalf("failed to create folder %q: %v", name, err)
	}
	return folder
}

// createEntry persists a password entry, optionally filed in a folder.
func createEntry(t *testing.T, db *gorm.DB, owner *models.User, folder *models.Folder, name string) *models.PasswordEntry {
	t.Helper()

	entry := &models.PasswordEntry{UserID: owner.ID, Name: name}
	if folder != nil {
		entry.FolderID = &folder.ID
	}
	if err := repositories.NewGORMPasswordEntryRepository(db).Create(context.Background(), entry); err != nil {
		t.Fatalf("failed to create entry %q: %v", name, err)
	}
	return entry
}
