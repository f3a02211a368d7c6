package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"lockbox/internal/logger"
	"lockbox/internal/middleware"
	"lockbox/internal/repositories"
	"lockbox/internal/schemas"
	"lockbox/internal/services"
)

// WebHandler serves the server-rendered HTML pages. Form POSTs are
// answered with 303 redirects. The edit form posts every field, so
// inputs cleared in the browser overwrite the stored values.
type WebHandler struct {
	entryService  *services.PasswordEntryService
	folderService *services.FolderService
	validate      *validator.Validate
	log           *logger.Logger
}

// NewWebHandler creates a new WebHandler.
func NewWebHandler(entryService *services.PasswordEntryService, folderService *services.FolderService, log *logger.Logger) *WebHandler {
	return &WebHandler{
		entryService:  entryService,
		folderService: folderService,
		validate:      schemas.NewValidator(),
		log:           log,
	}
}

// RegisterRoutes registers the page routes at the app root. The static
// /entries/create route must precede the /entries/:id wildcard.
func (h *WebHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/", h.HandleIndex)

	router.Get("/entries/create", h.HandleEntryCreateForm)
	router.Post("/entries/create", h.HandleEntryCreateSubmit)
	router.Get("/entries/:id", h.HandleEntryDetail)
	router.Get("/entries/:id/edit", h.HandleEntryEditForm)
	router.Post("/entries/:id/edit", h.HandleEntryEditSubmit)
	router.Post("/entries/:id/delete", h.HandleEntryDelete)

	router.Get("/folders", h.HandleFolderList)
	router.Get("/folders/create", h.HandleFolderCreateForm)
	router.Post("/folders/create", h.HandleFolderCreateSubmit)
	router.Get("/folders/:id", h.HandleFolderDetail)
	router.Post("/folders/:id/delete", h.HandleFolderDelete)
}

// HandleIndex renders the dashboard: every entry of the owner plus the
// folder list.
func (h *WebHandler) HandleIndex(c *fiber.Ctx) error {
	ownerID := middleware.OwnerID(c)

	entries, err := h.entryService.ListEntries(c.Context(), ownerID, repositories.EntryFilter{})
	if err != nil {
		return serviceFailed(c, h.log, err, "Entries")
	}
	folders, err := h.folderService.ListFolders(c.Context(), ownerID)
	if err != nil {
		return serviceFailed(c, h.log, err, "Folders")
	}

	return c.Render("index", fiber.Map{
		"Title":   "Password Manager",
		"Entries": entries,
		"Folders": folders,
	}, "layouts/main")
}

// HandleEntryCreateForm renders the create-entry form.
func (h *WebHandler) HandleEntryCreateForm(c *fiber.Ctx) error {
	folders, err := h.folderService.ListFolders(c.Context(), middleware.OwnerID(c))
	if err != nil {
		return serviceFailed(c, h.log, err, "Folders")
	}

	return c.Render("entries/create", fiber.Map{
		"Title":   "Create New Entry",
		"Folders": folders,
	}, "layouts/main")
}

// HandleEntryCreateSubmit processes the create-entry form.
func (h *WebHandler) HandleEntryCreateSubmit(c *fiber.Ctx) error {
	req := schemas.PasswordEntryCreate{
		Name:       c.FormValue("name"),
		Username:   formPtr(c, "username"),
		Password:   formPtr(c, "password"),
		WebsiteURL: formPtr(c, "website_url"),
		Notes:      formPtr(c, "notes"),
	}
	if raw := c.FormValue("folder_id"); raw != "" {
		folderID, err := uuid.Parse(raw)
		if err != nil {
			return invalidParam(c, "folder_id", err)
		}
		req.FolderID = &folderID
	}
	if err := h.validate.Struct(req); err != nil {
		return validationFailed(c, err)
	}

	if _, err := h.entryService.CreateEntry(c.Context(), middleware.OwnerID(c), req); err != nil {
		return serviceFailed(c, h.log, err, "Folder")
	}
	return c.Redirect("/", fiber.StatusSeeOther)
}

// HandleEntryDetail renders an entry with its secret revealed, the way
// the detail page always worked.
func (h *WebHandler) HandleEntryDetail(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return invalidParam(c, "id", err)
	}

	entry, secret, err := h.entryService.RevealSecret(c.Context(), id, middleware.OwnerID(c))
	if err != nil {
		return serviceFailed(c, h.log, err, "Entry")
	}

	return c.Render("entries/detail", fiber.Map{
		"Title":  entry.Name,
		"Entry":  entry,
		"Secret": secret,
	}, "layouts/main")
}

// HandleEntryEditForm renders the edit form with every stored value
// prefilled, the secret included: the form posts all fields back.
func (h *WebHandler) HandleEntryEditForm(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return invalidParam(c, "id", err)
	}
	ownerID := middleware.OwnerID(c)

	entry, secret, err := h.entryService.RevealSecret(c.Context(), id, ownerID)
	if err != nil {
		return serviceFailed(c, h.log, err, "Entry")
	}
	folders, err := h.folderService.ListFolders(c.Context(), ownerID)
	if err != nil {
		return serviceFailed(c, h.log, err, "Folders")
	}

	selectedFolder := ""
	if entry.FolderID != nil {
		selectedFolder = entry.FolderID.String()
	}
	return c.Render("entries/edit", fiber.Map{
		"Title":          "Edit " + entry.Name,
		"Entry":          entry,
		"Secret":         secret,
		"Folders":        folders,
		"SelectedFolder": selectedFolder,
	}, "layouts/main")
}

// HandleEntryEditSubmit processes the edit form. Every field is
// treated as provided: an input left empty clears the stored value.
func (h *WebHandler) HandleEntryEditSubmit(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return invalidParam(c, "id", err)
	}

	req := schemas.PasswordEntryUpdate{
		Name:       schemas.Some(c.FormValue("name")),
		Username:   formOptional(c, "username"),
		Password:   formOptional(c, "password"),
		WebsiteURL: formOptional(c, "website_url"),
		Notes:      formOptional(c, "notes"),
		FolderID:   schemas.Null[uuid.UUID](),
	}
	if raw := c.FormValue("folder_id"); raw != "" {
		folderID, err := uuid.Parse(raw)
		if err != nil {
			return invalidParam(c, "folder_id", err)
		}
		req.FolderID = schemas.Some(folderID)
	}
	if err := h.validate.Struct(req); err != nil {
		return validationFailed(c, err)
	}
	if err := req.Validate(); err != nil {
		return validationFailed(c, err)
	}

	if _, err := h.entryService.UpdateEntry(c.Context(), id, middleware.OwnerID(c), req); err != nil {
		return serviceFailed(c, h.log, err, "Entry")
	}
	return c.Redirect("/entries/"+id.String(), fiber.StatusSeeOther)
}

// HandleEntryDelete removes an entry and returns to the dashboard.
func (h *WebHandler) HandleEntryDelete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return invalidParam(c, "id", err)
	}

	if err := h.entryService.DeleteEntry(c.Context(), id, middleware.OwnerID(c)); err != nil {
		return serviceFailed(c, h.log, err, "Entry")
	}
	return c.Redirect("/", fiber.StatusSeeOther)
}

// HandleFolderList renders all folders of the owner.
func (h *WebHandler) HandleFolderList(c *fiber.Ctx) error {
	folders, err := h.folderService.ListFolders(c.Context(), middleware.OwnerID(c))
	if err != nil {
		return serviceFailed(c, h.log, err, "Folders")
	}

	return c.Render("folders/list", fiber.Map{
		"Title":   "Folders",
		"Folders": folders,
	}, "layouts/main")
}

// HandleFolderCreateForm renders the create-folder form.
func (h *WebHandler) HandleFolderCreateForm(c *fiber.Ctx) error {
	return c.Render("folders/create", fiber.Map{
		"Title": "Create New Folder",
	}, "layouts/main")
}

// HandleFolderCreateSubmit processes the create-folder form.
func (h *WebHandler) HandleFolderCreateSubmit(c *fiber.Ctx) error {
	req := schemas.FolderCreate{Name: c.FormValue("name")}
	if err := h.validate.Struct(req); err != nil {
		return validationFailed(c, err)
	}

	if _, err := h.folderService.CreateFolder(c.Context(), middleware.OwnerID(c), req); err != nil {
		return serviceFailed(c, h.log, err, "Folder")
	}
	return c.Redirect("/folders", fiber.StatusSeeOther)
}

// HandleFolderDetail renders a folder together with the entries filed
// in it.
func (h *WebHandler) HandleFolderDetail(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return invalidParam(c, "id", err)
	}
	ownerID := middleware.OwnerID(c)

	folder, err := h.folderService.GetFolder(c.Context(), id, ownerID)
	if err != nil {
		return serviceFailed(c, h.log, err, "Folder")
	}
	entries, err := h.entryService.ListEntries(c.Context(), ownerID, repositories.EntryFilter{FolderID: &folder.ID})
	if err != nil {
		return serviceFailed(c, h.log, err, "Entries")
	}

	return c.Render("folders/detail", fiber.Map{
		"Title":   folder.Name,
		"Folder":  folder,
		"Entries": entries,
	}, "layouts/main")
}

// HandleFolderDelete removes a folder and returns to the folder list.
// Entries filed in the folder survive as unfiled.
func (h *WebHandler) HandleFolderDelete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return invalidParam(c, "id", err)
	}

	if err := h.folderService.DeleteFolder(c.Context(), id, middleware.OwnerID(c)); err != nil {
		return serviceFailed(c, h.log, err, "Folder")
	}
	return c.Redirect("/folders", fiber.StatusSeeOther)
}

// formPtr reads a form field, mapping the empty string to nil the way
// the create form treats blank inputs.
func formPtr(c *fiber.Ctx, name string) *string {
	if v := c.FormValue(name); v != "" {
		return &v
	}
	return nil
}

// formOptional reads a form field as an always-provided tri-state
// value: blank inputs become explicit nulls that clear the stored
// value.
func formOptional(c *fiber.Ctx, name string) schemas.Optional[string] {
	if v := c.FormValue(name); v != "" {
		return schemas.Some(v)
	}
	return schemas.Null[string]()
}
