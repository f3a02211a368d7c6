package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"lockbox/internal/logger"
	"lockbox/internal/schemas"
	"lockbox/internal/services"
)

// UserHandler handles HTTP requests for user accounts. User routes
// operate on explicit ids and are not owner-scoped: the user is the
// owner.
type UserHandler struct {
	userService *services.UserService
	validate    *validator.Validate
	log         *logger.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *services.UserService, log *logger.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		validate:    schemas.NewValidator(),
		log:         log,
	}
}

// RegisterRoutes registers the user routes with the Fiber app.
func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	userRoutes := router.Group("/users")
	userRoutes.Post("/", h.HandleCreateUser)
	userRoutes.Get("/", h.HandleLookupUser)
	userRoutes.Get("/:id", h.HandleGetUser)
	userRoutes.Delete("/:id", h.HandleDeleteUser)
}

// HandleCreateUser registers a new user. A taken username answers 409.
func (h *UserHandler) HandleCreateUser(c *fiber.Ctx) error {
	var req schemas.UserCreate
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return validationFailed(c, err)
	}

	user, err := h.userService.CreateUser(c.Context(), req)
	if err != nil {
		return serviceFailed(c, h.log, err, "User")
	}
	return c.Status(fiber.StatusCreated).JSON(schemas.NewUserResponse(user))
}

// HandleLookupUser retrieves a user by username, for lookup and login
// flows outside this core.
func (h *UserHandler) HandleLookupUser(c *fiber.Ctx) error {
	username := c.Query("username")
	if username == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Query parameter 'username' is required",
		})
	}

	user, err := h.userService.GetUserByUsername(c.Context(), username)
	if err != nil {
		return serviceFailed(c, h.log, err, "User")
	}
	return c.JSON(schemas.NewUserResponse(user))
}

// HandleGetUser retrieves a user by id.
func (h *UserHandler) HandleGetUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return invalidParam(c, "id", err)
	}

	user, err := h.userService.GetUserByID(c.Context(), id)
	if err != nil {
		return serviceFailed(c, h.log, err, "User")
	}
	return c.JSON(schemas.NewUserResponse(user))
}

// HandleDeleteUser removes a user together with everything the user
// owns.
func (h *UserHandler) HandleDeleteUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return invalidParam(c, "id", err)
	}

	if err := h.userService.DeleteUser(c.Context(), id); err != nil {
		return serviceFailed(c, h.log, err, "User")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
