package controllers

import (
	"github.com/gofiber/fiber/v2"

	"shhplace/spots"
)

// ResetData wipes the repository and the persisted slot. Development aid,
// not part of the product surface.
func ResetData(repo *spots.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := repo.Reset(); err != nil {
			return serverErr(c, err)
		}
		return c.JSON(fiber.Map{"ok": true})
	}
}
