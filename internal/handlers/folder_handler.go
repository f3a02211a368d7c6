package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"lockbox/internal/logger"
	"lockbox/internal/middleware"
	"lockbox/internal/schemas"
	"lockbox/internal/services"
)

// FolderHandler handles HTTP requests for folders. All routes operate
// on the owner id resolved by the identity middleware.
type FolderHandler struct {
	folderService *services.FolderService
	validate      *validator.Validate
	log           *logger.Logger
}

// NewFolderHandler creates a new FolderHandler.
func NewFolderHandler(folderService *services.FolderService, log *logger.Logger) *FolderHandler {
	return &FolderHandler{
		folderService: folderService,
		validate:      schemas.NewValidator(),
		log:           log,
	}
}

// RegisterRoutes registers the folder routes with the Fiber app.
func (h *FolderHandler) RegisterRoutes(router fiber.Router) {
	folderRoutes := router.Group("/folders")
	folderRoutes.Get("/", h.HandleListFolders)
	folderRoutes.Post("/", h.HandleCreateFolder)
	folderRoutes.Get("/:id", h.HandleGetFolder)
	folderRoutes.Put("/:id", h.HandleUpdateFolder)
	folderRoutes.Delete("/:id", h.HandleDeleteFolder)
}

// HandleListFolders lists the owner's folders.
func (h *FolderHandler) HandleListFolders(c *fiber.Ctx) error {
	folders, err := h.folderService.ListFolders(c.Context(), middleware.OwnerID(c))
	if err != nil {
		return serviceFailed(c, h.log, err, "Folders")
	}
	return c.JSON(schemas.NewFolderResponses(folders))
}

// HandleCreateFolder creates a folder for the owner.
func (h *FolderHandler) HandleCreateFolder(c *fiber.Ctx) error {
	var req schemas.FolderCreate
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return validationFailed(c, err)
	}

	folder, err := h.folderService.CreateFolder(c.Context(), middleware.OwnerID(c), req)
	if err != nil {
		return serviceFailed(c, h.log, err, "Folder")
	}
	return c.Status(fiber.StatusCreated).JSON(schemas.NewFolderResponse(folder))
}

// HandleGetFolder retrieves one of the owner's folders.
func (h *FolderHandler) HandleGetFolder(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return invalidParam(c, "id", err)
	}

	folder, err := h.folderService.GetFolder(c.Context(), id, middleware.OwnerID(c))
	if err != nil {
		return serviceFailed(c, h.log, err, "Folder")
	}
	return c.JSON(schemas.NewFolderResponse(folder))
}

// HandleUpdateFolder renames one of the owner's folders.
func (h *FolderHandler) HandleUpdateFolder(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return invalidParam(c, "id", err)
	}

	var req schemas.FolderUpdate
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return validationFailed(c, err)
	}

	folder, err := h.folderService.UpdateFolder(c.Context(), id, middleware.OwnerID(c), req)
	if err != nil {
		return serviceFailed(c, h.log, err, "Folder")
	}
	return c.JSON(schemas.NewFolderResponse(folder))
}

// HandleDeleteFolder removes one of the owner's folders. Entries filed
// in it survive with their folder reference cleared.
func (h *FolderHandler) HandleDeleteFolder(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return invalidParam(c, "id", err)
	}

	if err := h.folderService.DeleteFolder(c.Context(), id, middleware.OwnerID(c)); err != nil {
		return serviceFailed(c, h.log, err, "Folder")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
