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

// unfiledFilter is the folder_id query value selecting entries without
// a folder.
const unfiledFilter = "none"

// PasswordEntryHandler handles HTTP requests for password entries. All
// routes operate on the owner id resolved by the identity middleware;
// the secret only ever leaves through the reveal route.
type PasswordEntryHandler struct {
	entryService *services.PasswordEntryService
	validate     *validator.Validate
	log          *logger.Logger
}

// NewPasswordEntryHandler creates a new PasswordEntryHandler.
func NewPasswordEntryHandler(entryService *services.PasswordEntryService, log *logger.Logger) *PasswordEntryHandler {
	return &PasswordEntryHandler{
		entryService: entryService,
		validate:     schemas.NewValidator(),
		log:          log,
	}
}

// RegisterRoutes registers the entry routes with the Fiber app.
func (h *PasswordEntryHandler) RegisterRoutes(router fiber.Router) {
	entryRoutes := router.Group("/entries")
	entryRoutes.Get("/", h.HandleListEntries)
	entryRoutes.Post("/", h.HandleCreateEntry)
	entryRoutes.Get("/:id", h.HandleGetEntry)
	entryRoutes.Get("/:id/secret", h.HandleRevealSecret)
	entryRoutes.Patch("/:id", h.HandleUpdateEntry)
	entryRoutes.Delete("/:id", h.HandleDeleteEntry)
}

// HandleListEntries lists the owner's entries. The folder_id query
// narrows the listing: a folder id keeps entries filed in that folder,
// the literal "none" keeps only entries without a folder.
func (h *PasswordEntryHandler) HandleListEntries(c *fiber.Ctx) error {
	var filter repositories.EntryFilter
	if raw := c.Query("folder_id"); raw != "" {
		if raw == unfiledFilter {
			filter.UnfiledOnly = true
		} else {
			folderID, err := uuid.Parse(raw)
			if err != nil {
				return invalidParam(c, "folder_id", err)
			}
			filter.FolderID = &folderID
		}
	}

	entries, err := h.entryService.ListEntries(c.Context(), middleware.OwnerID(c), filter)
	if err != nil {
		return serviceFailed(c, h.log, err, "Entries")
	}
	return c.JSON(schemas.NewPasswordEntryResponses(entries))
}

// HandleCreateEntry creates an entry for the owner.
func (h *PasswordEntryHandler) HandleCreateEntry(c *fiber.Ctx) error {
	var req schemas.PasswordEntryCreate
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return validationFailed(c, err)
	}

	entry, err := h.entryService.CreateEntry(c.Context(), middleware.OwnerID(c), req)
	if err != nil {
		return serviceFailed(c, h.log, err, "Folder")
	}
	return c.Status(fiber.StatusCreated).JSON(schemas.NewPasswordEntryResponse(entry))
}

// HandleGetEntry retrieves one of the owner's entries, secret withheld.
func (h *PasswordEntryHandler) HandleGetEntry(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return invalidParam(c, "id", err)
	}

	entry, err := h.entryService.GetEntry(c.Context(), id, middleware.OwnerID(c))
	if err != nil {
		return serviceFailed(c, h.log, err, "Entry")
	}
	return c.JSON(schemas.NewPasswordEntryResponse(entry))
}

// HandleRevealSecret retrieves an entry together with its unsealed
// secret. This is the only JSON route that returns the plaintext.
func (h *PasswordEntryHandler) HandleRevealSecret(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return invalidParam(c, "id", err)
	}

	entry, secret, err := h.entryService.RevealSecret(c.Context(), id, middleware.OwnerID(c))
	if err != nil {
		return serviceFailed(c, h.log, err, "Entry")
	}
	return c.JSON(schemas.NewPasswordEntryWithPassword(entry, secret))
}

// HandleUpdateEntry applies a partial update to one of the owner's
// entries. Only fields present in the payload change; null and empty
// values overwrite.
func (h *PasswordEntryHandler) HandleUpdateEntry(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return invalidParam(c, "id", err)
	}

	var req schemas.PasswordEntryUpdate
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return validationFailed(c, err)
	}
	if err := req.Validate(); err != nil {
		return validationFailed(c, err)
	}

	entry, err := h.entryService.UpdateEntry(c.Context(), id, middleware.OwnerID(c), req)
	if err != nil {
		return serviceFailed(c, h.log, err, "Entry")
	}
	return c.JSON(schemas.NewPasswordEntryResponse(entry))
}

// HandleDeleteEntry removes one of the owner's entries.
func (h *PasswordEntryHandler) HandleDeleteEntry(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return invalidParam(c, "id", err)
	}

	if err := h.entryService.DeleteEntry(c.Context(), id, middleware.OwnerID(c)); err != nil {
		return serviceFailed(c, h.log, err, "Entry")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
