package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"shhplace/controllers"
	"shhplace/events"
	"shhplace/recommend"
	"shhplace/regions"
	"shhplace/spots"
)

// Deps bundles everything the route layer needs. Explicit wiring instead of
// package globals so tests can stand up an app with their own instances.
type Deps struct {
	Repo        *spots.Repository
	Scheduler   *regions.Scheduler
	Recommender *recommend.Recommender
	Bridge      *events.Bridge
	SubmitDelay time.Duration
}

// Register attaches all API endpoints to the app.
func Register(app *fiber.App, d Deps) {
	api := app.Group("/api")

	api.Get("/spots", controllers.ListSpots(d.Repo, d.Scheduler))
	api.Post("/spots", controllers.CreateSpot(d.Repo, d.SubmitDelay))
	api.Delete("/spots/:id", controllers.DeleteSpot(d.Repo))

	// Popup engagement goes through the event bridge.
	api.Post("/spots/:id/like", controllers.LikeSpot(d.Bridge))
	api.Post("/spots/:id/dislike", controllers.DislikeSpot(d.Bridge))
	api.Post("/spots/:id/comments", controllers.CommentSpot(d.Bridge))

	api.Get("/regions", controllers.ListRegions(d.Scheduler))
	api.Post("/recommendations", controllers.GetRecommendation(d.Repo, d.Scheduler, d.Recommender))

	api.Post("/debug/reset", controllers.ResetData(d.Repo))
}
