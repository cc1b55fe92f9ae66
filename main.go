package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"

	"github.com/xdpzq/devcore/pkg/api"
	"github.com/xdpzq/devcore/pkg/auth"
	"github.com/xdpzq/devcore/pkg/database"
	"github.com/xdpzq/devcore/pkg/gemini"
	"github.com/xdpzq/devcore/pkg/logger"
	"github.com/xdpzq/devcore/pkg/repository"
	"github.com/xdpzq/devcore/pkg/services"
	"github.com/xdpzq/devcore/pkg/workers"
)

type Config struct {
	Addr        string `env:"ADDR" envDefault:":8080"`
	DataDir     string `env:"DATA_DIR" envDefault:"data"`
	PgURL       string `env:"DATABASE_URL"`
	DBEndpoint  string `env:"DB_ENDPOINT" envDefault:"mongodb://core-cluster.local:27017"`
	GeminiModel string `env:"GEMINI_MODEL"`
}

func main() {
	_ = godotenv.Load(".env.local")
	slog.SetDefault(slog.New(logger.NewHandler(os.Stderr, logger.DefaultOptions)))

	if err := runMain(); err != nil {
		slog.Error("shutting down due to error", logger.Err(err))
		os.Exit(1)
	}
	slog.Info("shutdown complete")
}

func runMain() error {
	ctx, cancelFn := context.WithCancel(context.Background())
	defer cancelFn()

	workerGroup, err := setupWorkers(ctx)
	if err != nil {
		return err
	}

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		select {
		case s := <-sigCh:
			slog.Info("shutting down due to signal", "signal", s.String())
			cancelFn()
		case <-ctx.Done():
		}
	}()

	return workerGroup.Start(ctx)
}

func setupWorkers(ctx context.Context) (workers.Group, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parsing env config: %w", err)
	}

	kv, err := newKV(cfg)
	if err != nil {
		return nil, fmt.Errorf("creating kv substrate: %w", err)
	}

	db := database.NewClient(kv, cfg.DBEndpoint)
	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("connecting db: %w", err)
	}

	usersRepository := repository.NewUsersRepository(db)
	settingsRepository := repository.NewSettingsRepository(db)
	historyRepository := repository.NewHistoryRepository(db)

	authService := services.NewAuthService(usersRepository)
	if err := authService.EnsureDefaultAdmin(ctx); err != nil {
		return nil, fmt.Errorf("seeding default admin: %w", err)
	}

	generator := gemini.NewGenerator(gemini.NewAPICaller(cfg.GeminiModel))

	router := api.NewRouter(auth.NewSessionStore(), api.Services{
		Auth:       authService,
		Chat:       services.NewChatService(generator, settingsRepository, historyRepository),
		Admin:      services.NewAdminService(usersRepository, settingsRepository),
		Navigation: services.NewNavigationService(settingsRepository),
	})

	var workerGroup workers.Group
	worker, err := workers.NewHTTPServer(cfg.Addr, router)
	if err != nil {
		return nil, fmt.Errorf("creating http server worker: %w", err)
	}
	workerGroup = append(workerGroup, worker)

	return workerGroup, nil
}

// newKV picks the persistence substrate: postgres when DATABASE_URL is
// set, a plain file tree otherwise.
func newKV(cfg Config) (database.KV, error) {
	if cfg.PgURL != "" {
		return database.NewPostgresKV(cfg.PgURL)
	}
	return database.NewFileKV(cfg.DataDir)
}
