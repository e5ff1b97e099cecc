package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"shhplace/filter"
	"shhplace/models"
	"shhplace/recommend"
	"shhplace/regions"
	"shhplace/spots"
)

type recommendBody struct {
	NoiseLevel string   `json:"noiseLevel"`
	CrowdLevel string   `json:"crowdLevel"`
	Categories []string `json:"categories"`
	Rating     int      `json:"rating" validate:"min=0,max=5"`
}

// GetRecommendation runs the daily-limited heuristic over the spot set
// narrowed by the caller's current filters. Quota exhaustion is reported as
// 429, not a server error.
func GetRecommendation(repo *spots.Repository, sched *regions.Scheduler, rec *recommend.Recommender) fiber.Handler {
	return func(c *fiber.Ctx) error {
		criteria := models.DefaultFilters()
		if len(c.Body()) > 0 {
			body := new(recommendBody)
			if err := c.BodyParser(body); err != nil {
				return badReq(c, "unable to parse body: "+err.Error())
			}
			if errs := ValidateStruct(*body); errs != nil {
				return c.Status(fiber.StatusBadRequest).JSON(errs)
			}
			if body.NoiseLevel != "" {
				criteria.NoiseLevel = body.NoiseLevel
			}
			if body.CrowdLevel != "" {
				criteria.CrowdLevel = body.CrowdLevel
			}
			criteria.Categories = body.Categories
			criteria.Rating = body.Rating
		}

		filtered := filter.Apply(repo.All(), sched.Snapshot(), criteria)
		result, err := rec.Recommend(filtered)
		if errors.Is(err, recommend.ErrQuotaExhausted) {
			return c.Status(fiber.StatusTooManyRequests).JSON(models.ErrorResp{
				OK:    false,
				Error: "daily recommendation limit reached, come back tomorrow",
			})
		}
		if err != nil {
			return serverErr(c, err)
		}

		return c.JSON(models.RecommendationResp{
			OK:          true,
			Message:     result.Message,
			Remaining:   result.Remaining,
			Matched:     result.Matched,
			FocusSpotID: result.FocusSpotID,
		})
	}
}
