package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"allcitybot/core/config"
	"allcitybot/core/database"
	"allcitybot/core/logger"
	coretelegram "allcitybot/core/telegram"
	"allcitybot/core/telegram/middleware"
	"allcitybot/internal/catalog"
	"allcitybot/internal/dispatch"
	"allcitybot/internal/menu"
	"allcitybot/internal/navigation"
	"allcitybot/internal/tgbot"

	"github.com/joho/godotenv"
	"log/slog"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("fatal: %v", err)
	}
}

func run() error {
	// Optional .env for local runs; real deployments set the environment.
	_ = godotenv.Load()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	log.Printf("loading config: %s", cfgPath)
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.InitLogger(cfg); err != nil {
		return fmt.Errorf("failed to init logger: %w", err)
	}
	defer func() {
		if err := logger.Shutdown(); err != nil {
			log.Printf("logger shutdown error: %v", err)
		}
	}()

	cat, err := loadCatalog(context.Background(), cfg)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	views := &menu.Renderer{Catalog: cat, City: cfg.Catalog.City}
	store := navigation.NewStore()
	machine := navigation.NewMachine(cat, views)
	gateway := tgbot.NewGateway()
	engine := dispatch.NewEngine(store, machine, gateway, dispatch.QueueOptions{})

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	startedAt := time.Now()

	return coretelegram.Run(ctx, coretelegram.RunOptions{
		Config: cfg,
		Middlewares: []coretelegram.Middleware{
			{Name: "recover", Use: middleware.RecoverMiddleware},
			{Name: "logging", Use: middleware.LoggerMiddleware},
		},
		Routes: tgbot.Routes(engine),
		OnStart: func(ctx context.Context, rt coretelegram.Runtime) error {
			gateway.Bind(rt.Bot)
			logger.L.With("component", "app").Info("app ready",
				slog.String("event", "ready"),
				slog.Int("venues", cat.Len()),
				slog.Duration("startup_duration", logger.RoundMS(time.Since(startedAt))),
			)
			return nil
		},
		OnStop: func(ctx context.Context, rt coretelegram.Runtime) error {
			logger.L.With("component", "app").Info("shutting down...",
				slog.String("event", "shutdown"),
			)
			engine.Close()
			return nil
		},
	})
}

func loadCatalog(ctx context.Context, cfg *config.Config) (*catalog.Catalog, error) {
	switch cfg.Catalog.Source {
	case config.CatalogSourceYAML:
		return catalog.LoadYAML(cfg.Catalog.Path, cfg.Catalog.PageSize)
	case config.CatalogSourcePostgres:
		dbCfg := database.Config{
			Host:           cfg.Database.Host,
			Port:           cfg.Database.Port,
			User:           cfg.Database.User,
			Password:       cfg.Database.Password,
			Name:           cfg.Database.Name,
			SSLMode:        cfg.Database.SSLMode,
			MaxConnections: cfg.Database.MaxConnections,
		}
		if err := database.RunMigrations(dbCfg); err != nil {
			return nil, err
		}
		db, err := database.Connect(dbCfg)
		if err != nil {
			return nil, err
		}
		defer db.Close()
		return catalog.LoadPostgres(ctx, db, cfg.Catalog.PageSize)
	default:
		return catalog.Default(cfg.Catalog.PageSize), nil
	}
}
