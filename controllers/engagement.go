package controllers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"shhplace/events"
)

// Engagement actions arrive from inside map popups. They go through the
// event bridge rather than calling the repository directly, so the popup
// surface stays decoupled from storage. Unknown ids are silent no-ops.

// LikeSpot publishes a like signal for the spot.
func LikeSpot(bridge *events.Bridge) fiber.Handler {
	return func(c *fiber.Ctx) error {
		bridge.Publish(events.Signal{Kind: events.KindLike, SpotID: c.Params("id")})
		return c.JSON(fiber.Map{"ok": true})
	}
}

// DislikeSpot publishes a dislike signal for the spot.
func DislikeSpot(bridge *events.Bridge) fiber.Handler {
	return func(c *fiber.Ctx) error {
		bridge.Publish(events.Signal{Kind: events.KindDislike, SpotID: c.Params("id")})
		return c.JSON(fiber.Map{"ok": true})
	}
}

type commentBody struct {
	Content string `json:"content" validate:"required"`
}

// CommentSpot publishes a comment signal carrying the text content.
func CommentSpot(bridge *events.Bridge) fiber.Handler {
	return func(c *fiber.Ctx) error {
		body := new(commentBody)
		if err := c.BodyParser(body); err != nil {
			return badReq(c, "unable to parse body: "+err.Error())
		}
		body.Content = strings.TrimSpace(body.Content)
		if errs := ValidateStruct(*body); errs != nil {
			return c.Status(fiber.StatusBadRequest).JSON(errs)
		}
		bridge.Publish(events.Signal{
			Kind:    events.KindComment,
			SpotID:  c.Params("id"),
			Content: body.Content,
		})
		return c.JSON(fiber.Map{"ok": true})
	}
}
