package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"lockbox/internal/logger"
	"lockbox/internal/schemas"
	"lockbox/internal/services"
)

// NoteHandler handles HTTP requests for free-standing notes.
type NoteHandler struct {
	noteService *services.NoteService
	validate    *validator.Validate
	log         *logger.Logger
}

// NewNoteHandler creates a new NoteHandler.
func NewNoteHandler(noteService *services.NoteService, log *logger.Logger) *NoteHandler {
	return &NoteHandler{
		noteService: noteService,
		validate:    schemas.NewValidator(),
		log:         log,
	}
}

// RegisterRoutes registers the note routes with the Fiber app.
func (h *NoteHandler) RegisterRoutes(router fiber.Router) {
	noteRoutes := router.Group("/notes")
	noteRoutes.Get("/", h.HandleListNotes)
	noteRoutes.Post("/", h.HandleCreateNote)
	noteRoutes.Get("/:id", h.HandleGetNote)
	noteRoutes.Put("/:id", h.HandleUpdateNote)
	noteRoutes.Delete("/:id", h.HandleDeleteNote)
}

// HandleListNotes lists all notes.
func (h *NoteHandler) HandleListNotes(c *fiber.Ctx) error {
	notes, err := h.noteService.GetAllNotes(c.Context())
	if err != nil {
		return serviceFailed(c, h.log, err, "Notes")
	}
	return c.JSON(schemas.NewNoteResponses(notes))
}

// HandleCreateNote creates a note.
func (h *NoteHandler) HandleCreateNote(c *fiber.Ctx) error {
	var req schemas.NoteCreate
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return validationFailed(c, err)
	}
	if err := req.Validate(); err != nil {
		return validationFailed(c, err)
	}

	note, err := h.noteService.CreateNote(c.Context(), req)
	if err != nil {
		return serviceFailed(c, h.log, err, "Note")
	}
	return c.Status(fiber.StatusCreated).JSON(schemas.NewNoteResponse(note))
}

// HandleGetNote retrieves a note by id.
func (h *NoteHandler) HandleGetNote(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return invalidParam(c, "id", err)
	}

	note, err := h.noteService.GetNoteByID(c.Context(), id)
	if err != nil {
		return serviceFailed(c, h.log, err, "Note")
	}
	return c.JSON(schemas.NewNoteResponse(note))
}

// HandleUpdateNote replaces the content of a note.
func (h *NoteHandler) HandleUpdateNote(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return invalidParam(c, "id", err)
	}

	var req schemas.NoteUpdate
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return validationFailed(c, err)
	}
	if err := req.Validate(); err != nil {
		return validationFailed(c, err)
	}

	note, err := h.noteService.UpdateNote(c.Context(), id, req)
	if err != nil {
		return serviceFailed(c, h.log, err, "Note")
	}
	return c.JSON(schemas.NewNoteResponse(note))
}

// HandleDeleteNote removes a note by id.
func (h *NoteHandler) HandleDeleteNote(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return invalidParam(c, "id", err)
	}

	if err := h.noteService.DeleteNote(c.Context(), id); err != nil {
		return serviceFailed(c, h.log, err, "Note")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
