package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const ownerKey = "owner_id"

// WithOwner is a Fiber middleware that resolves the identity of the
// requesting user. Until a real authentication layer exists it injects
// the configured placeholder owner id; swapping in session-derived
// identity later only replaces this middleware, the handlers and
// services already take the owner id as an explicit parameter.
func WithOwner(ownerID uuid.UUID) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(ownerKey, ownerID)
		return c.Next()
	}
}

// OwnerID returns the identity stored by WithOwner. It panics when the
// middleware is not installed, which is a wiring bug, not a runtime
// condition.
func OwnerID(c *fiber.Ctx) uuid.UUID {
	return c.Locals(ownerKey).(uuid.UUID)
}
