package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"shhplace/models"
	"shhplace/regions"
)

// Default zoom keeps the coarse district layer visible.
const defaultZoom = 12

// ListRegions returns the region layer visible at the requested zoom level
// plus the snapshot-wide averages shown in the header.
func ListRegions(sched *regions.Scheduler) fiber.Handler {
	return func(c *fiber.Ctx) error {
		zoom := defaultZoom
		if v := c.Query("zoom"); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				zoom = n
			}
		}
		snapshot := sched.Snapshot()
		avgDensity, avgNoise := sched.Stats()
		return c.JSON(models.RegionListResp{
			OK:         true,
			Regions:    regions.VisibleAt(snapshot, zoom),
			AvgDensity: avgDensity,
			AvgNoise:   avgNoise,
		})
	}
}
