package controllers

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"shhplace/filter"
	"shhplace/models"
	"shhplace/regions"
	"shhplace/spots"
)

// Base64 payload ceiling for an embedded photo: 5MB of raw bytes plus
// encoding overhead.
const maxImageChars = 5 * 1024 * 1024 * 4 / 3

// MaxBodyBytes is the request body ceiling the app must be constructed
// with. Fiber's default BodyLimit (4MB) would reject a full-size image
// before CreateSpot's own check ever ran, so the limit leaves the image
// allowance plus headroom for the rest of the draft JSON.
const MaxBodyBytes = maxImageChars + 64*1024

// ListSpots returns the spot set narrowed by the query-string criteria.
// An empty collection is an ok response with zero results, never an error.
func ListSpots(repo *spots.Repository, sched *regions.Scheduler) fiber.Handler {
	return func(c *fiber.Ctx) error {
		criteria := parseFilters(c)
		filtered := filter.Apply(repo.All(), sched.Snapshot(), criteria)
		return c.JSON(models.SpotListResp{
			OK:    true,
			Spots: filtered,
			Total: len(filtered),
		})
	}
}

// CreateSpot validates a draft, simulates the upload latency, and stores
// the new spot. Validation failure returns field errors and persists
// nothing.
func CreateSpot(repo *spots.Repository, delay time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		draft := new(models.SpotDraft)
		if err := c.BodyParser(draft); err != nil {
			return badReq(c, "unable to parse body: "+err.Error())
		}
		draft.Title = strings.TrimSpace(draft.Title)
		draft.Description = strings.TrimSpace(draft.Description)

		if errs := ValidateStruct(*draft); errs != nil {
			return c.Status(fiber.StatusBadRequest).JSON(errs)
		}
		if len(draft.Image) > maxImageChars {
			return badReq(c, "image must be 5MB or smaller")
		}

		if delay > 0 {
			time.Sleep(delay)
		}

		spot := repo.Add(*draft)
		return c.Status(fiber.StatusCreated).JSON(models.CreateSpotResp{OK: true, Spot: spot})
	}
}

// DeleteSpot removes a spot. Deleting an id that is already gone is fine.
func DeleteSpot(repo *spots.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		repo.Delete(c.Params("id"))
		return c.JSON(fiber.Map{"ok": true})
	}
}

// parseFilters builds criteria from the query string, starting from the
// pass-everything defaults.
func parseFilters(c *fiber.Ctx) models.SearchFilters {
	f := models.DefaultFilters()
	if v := c.Query("noise"); v != "" {
		f.NoiseLevel = v
	}
	if v := c.Query("crowd"); v != "" {
		f.CrowdLevel = v
	}
	if v := c.Query("categories"); v != "" {
		for _, cat := range strings.Split(v, ",") {
			if cat = strings.TrimSpace(cat); cat != "" {
				f.Categories = append(f.Categories, cat)
			}
		}
	}
	if v := c.Query("rating"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 && n <= 5 {
			f.Rating = n
		}
	}
	return f
}
