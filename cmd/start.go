package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"deck-reconciler/core/config"
	"deck-reconciler/core/loader"
	"deck-reconciler/core/logger"
	"deck-reconciler/core/middleware/auth"
	"deck-reconciler/core/middleware/rayid"
	"deck-reconciler/core/store"
	"deck-reconciler/feature/catalog"
	"deck-reconciler/feature/deck"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "deck-reconciler/docs/swagger"
)

// @title Deck Reconciler API
// @version 1.0
// @description API for diffing, merging and resolving card decklists.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the deck reconciler server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Connect the key-value store (optional: degrade to in-memory)
		var kv store.Store
		if db, err := store.Connect(cfg.Store); err != nil {
			logg.Warn("Store connection failed, cache and choices will not persist", zap.Error(err))
			kv = store.NewMemory()
		} else {
			kv = store.NewGorm(db)
			logg.Info("Connected to key-value store", zap.String("driver", cfg.Store.Driver))
		}

		// 4. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// 5. Catalog client and resolver
		client := catalog.NewClient(cfg.Catalog)
		resolver := catalog.NewResolver(client, logg)

		// 6. Initialize Feature Loader
		mgr := loader.NewManager()
		mgr.Register(deck.NewFeature(kv, resolver, logg))

		// Middleware Registration
		// RayID must be first to trace everything
		app.Use(rayid.New())

		// Logging middleware (Zap + RayID)
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// Swagger documentation (public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// Health (public)
		app.Get("/health", func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"status": "ok"})
		})

		// Auth (protect the API)
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(cfg.Server.Addr()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
