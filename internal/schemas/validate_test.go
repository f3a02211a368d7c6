package schemas_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"lockbox/internal/schemas"
)

func TestUserCreateValidation(t *testing.T) {
	v := schemas.NewValidator()

	assert.NoError(t, v.Struct(&schemas.UserCreate{Username: "alice", Password: "hunter2"}))
	assert.Error(t, v.Struct(&schemas.UserCreate{Username: "al", Password: "hunter2"}), "username below 3 chars")
	assert.Error(t, v.Struct(&schemas.UserCreate{Username: strings.Repeat("a", 51), Password: "hunter2"}), "username above 50 chars")
	assert.Error(t, v.Struct(&schemas.UserCreate{Username: "alice", Password: "short"}), "password below 6 chars")
	assert.Error(t, v.Struct(&schemas.UserCreate{Password: "hunter2"}), "username required")
}

func TestFolderCreateValidation(t *testing.T) {
	v := schemas.NewValidator()

	assert.NoError(t, v.Struct(&schemas.FolderCreate{Name: "Work"}))
	assert.NoError(t, v.Struct(&schemas.FolderCreate{Name: strings.Repeat("n", 100)}))
	assert.Error(t, v.Struct(&schemas.FolderCreate{Name: ""}), "name required")
	assert.Error(t, v.Struct(&schemas.FolderCreate{Name: strings.Repeat("n", 101)}), "name above 100 chars")
}

func TestPasswordEntryCreateValidation(t *testing.T) {
	v := schemas.NewValidator()
	longUsername := strings.Repeat("u", 101)
	longURL := "https://" + strings.Repeat("u", 500)

	assert.NoError(t, v.Struct(&schemas.PasswordEntryCreate{Name: "Gmail"}))
	assert.Error(t, v.Struct(&schemas.PasswordEntryCreate{}), "name required")
	assert.Error(t, v.Struct(&schemas.PasswordEntryCreate{Name: "Gmail", Username: &longUsername}), "username above 100 chars")
	assert.Error(t, v.Struct(&schemas.PasswordEntryCreate{Name: "Gmail", WebsiteURL: &longURL}), "url above 500 chars")
}

func TestPasswordEntryUpdateValidation(t *testing.T) {
	v := schemas.NewValidator()

	// An empty patch touches nothing and passes.
	assert.NoError(t, v.Struct(&schemas.PasswordEntryUpdate{}))

	// Null fields skip the tag rules; bounds only apply to values.
	assert.NoError(t, v.Struct(&schemas.PasswordEntryUpdate{Username: schemas.Null[string]()}))
	assert.NoError(t, v.Struct(&schemas.PasswordEntryUpdate{Username: schemas.Some("alice@example.com")}))
	assert.Error(t, v.Struct(&schemas.PasswordEntryUpdate{Username: schemas.Some(strings.Repeat("u", 101))}))
	assert.Error(t, v.Struct(&schemas.PasswordEntryUpdate{Name: schemas.Some(strings.Repeat("n", 101))}))
}

func TestPasswordEntryUpdateRejectsClearedName(t *testing.T) {
	abs := &schemas.PasswordEntryUpdate{}
	assert.NoError(t, abs.Validate(), "absent name leaves the stored one")

	some := &schemas.PasswordEntryUpdate{Name: schemas.Some("Gmail")}
	assert.NoError(t, some.Validate())

	null := &schemas.PasswordEntryUpdate{Name: schemas.Null[string]()}
	assert.Error(t, null.Validate(), "name cannot be cleared")

	empty := &schemas.PasswordEntryUpdate{Name: schemas.Some("")}
	assert.Error(t, empty.Validate(), "name cannot be emptied")
}

func TestNoteContentValidation(t *testing.T) {
	create := &schemas.NoteCreate{Content: "  rotate the router password  "}
	assert.NoError(t, create.Validate())
	assert.Equal(t, "rotate the router password", create.Content, "content is trimmed")

	blank := &schemas.NoteCreate{Content: "   \t\n"}
	assert.Error(t, blank.Validate())

	update := &schemas.NoteUpdate{Content: " final "}
	assert.NoError(t, update.Validate())
	assert.Equal(t, "final", update.Content)

	blankUpdate := &schemas.NoteUpdate{Content: ""}
	assert.Error(t, blankUpdate.Validate())
}
