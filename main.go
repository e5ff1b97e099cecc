package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"shhplace/config"
	"shhplace/controllers"
	"shhplace/events"
	"shhplace/recommend"
	"shhplace/regions"
	"shhplace/routes"
	"shhplace/spots"
	"shhplace/store"
	"shhplace/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	logger := utils.NewLogger()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer st.Close()

	app, sched, err := Bootstrap(cfg, logger, st)
	if err != nil {
		log.Fatal(err)
	}

	// Region refresh runs until shutdown; cancellation stops the ticker.
	go sched.Run(ctx)

	go func() {
		<-ctx.Done()
		logger.Info("shutting down")
		_ = app.Shutdown()
	}()

	logger.Info("listening on %s (store=%s)", cfg.Addr, cfg.StoreBackend)
	if err := app.Listen(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}

// Bootstrap wires the repository, event bridge, region scheduler and
// recommender into a fiber app. Split out of main so tests can stand the
// whole app up with app.Test.
func Bootstrap(cfg config.Config, logger *utils.Logger, st store.Store) (*fiber.App, *regions.Scheduler, error) {
	repo, err := spots.NewRepository(st, logger)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("loaded %d spots", repo.Len())

	bridge := events.NewBridge()
	repo.SubscribeBridge(bridge)

	sched := regions.NewScheduler(regions.NewMock(), logger, cfg.RegionInitialDelay, cfg.RegionRefreshInterval)
	rec := recommend.New(cfg.RecommendDelay)

	app := fiber.New(fiber.Config{BodyLimit: controllers.MaxBodyBytes})
	app.Use(recover.New())
	app.Use(fiberlogger.New(fiberlogger.Config{TimeFormat: "15:04:05"}))
	app.Use(cors.New())

	routes.Register(app, routes.Deps{
		Repo:        repo,
		Scheduler:   sched,
		Recommender: rec,
		Bridge:      bridge,
		SubmitDelay: cfg.SubmitDelay,
	})
	return app, sched, nil
}

func openStore(ctx context.Context, cfg config.Config) (store.Store, error) {
	if cfg.StoreBackend == config.BackendPostgres {
		return store.NewPostgresStore(ctx, cfg.PostgresDSN, cfg.SlotKey)
	}
	return store.NewFileStore(cfg.StorePath), nil
}
