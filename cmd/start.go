package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"daybook/core/config"
	"daybook/core/loader"
	"daybook/core/logger"
	"daybook/core/middleware/auth"
	"daybook/core/middleware/rayid"
	"daybook/feature/api"
	"daybook/feature/integrity"
	"daybook/journal/record"
	"daybook/journal/store"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the read-only journal API server",
	Long:  `Loads the journal and serves it over a read-only HTTP API.`,
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

		// 3. Load the Journal
		codec := record.NewCodec(cfg.Journal.TagSymbols)
		st := store.New(cfg.Journal.Directory, codec, logg)
		if err := st.Load(); err != nil {
			logg.Fatal("Failed to load journal", zap.Error(err))
		}
		logg.Info("Journal loaded",
			zap.String("directory", cfg.Journal.Directory),
			zap.Int("entries", len(st.Entries())),
		)

		// 4. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We log our own startup message
		})

		// 5. Register Features
		mgr := loader.NewManager()
		mgr.Register(api.NewFeature(st, logg))
		mgr.Register(integrity.NewFeature(integrity.NewService(st, codec, logg)))

		// Middleware: ray ID first so every request is traceable.
		app.Use(rayid.New())

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

		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 6. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 7. Graceful Shutdown
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
