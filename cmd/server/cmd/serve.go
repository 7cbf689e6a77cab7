package cmd

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/Beingstupid4me/tmto-backend/internal/api"
	"github.com/Beingstupid4me/tmto-backend/internal/api/handlers"
	"github.com/Beingstupid4me/tmto-backend/internal/auth"
	"github.com/Beingstupid4me/tmto-backend/internal/config"
	"github.com/Beingstupid4me/tmto-backend/internal/domain/records"
	"github.com/Beingstupid4me/tmto-backend/internal/domain/users"
	"github.com/Beingstupid4me/tmto-backend/internal/storage/jsonfile"
	storagemongo "github.com/Beingstupid4me/tmto-backend/internal/storage/mongo"
)

var (
	// Server flags (override config/env)
	serverHost string
	dataDir    string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the three HTTP listeners",
	Long: `Start the authentication, read-only and CRUD HTTP listeners.

On boot the catalog JSON files are loaded from the data directory; missing
or unreadable files are regenerated with seed data. All three listeners
shut down gracefully on SIGINT/SIGTERM.

Examples:
  # Start with default configuration (from env vars / .env)
  server serve

  # Keep the catalog files somewhere else
  server serve --data-dir /var/lib/tmto

  # Start with debug logging
  server serve --log-level debug`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServers(cmd.Context())
	},
}

func init() {
	serveCmd.Flags().StringVar(&serverHost, "host", "", "listen address for all servers (default: 0.0.0.0)")
	serveCmd.Flags().StringVar(&dataDir, "data-dir", "", "directory holding the catalog JSON files (default: .)")
}

func runServers(ctx context.Context) error {
	cfg := loadConfig()
	logger := config.NewLogger(cfg.Logging)
	logger.Info().Msg("starting tmto backend")

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	techStore := records.NewStore(
		jsonfile.New(filepath.Join(cfg.Data.Dir, "technologies.json")),
		func() []records.Record { return records.GenerateTechnologies(rng) },
		logger,
		records.WithTRLDefaults(rng),
	)
	eventStore := records.NewStore(
		jsonfile.New(filepath.Join(cfg.Data.Dir, "events.json")),
		records.GenerateEvents,
		logger,
	)
	if err := techStore.Init(); err != nil {
		return fmt.Errorf("init technologies: %w", err)
	}
	if err := eventStore.Init(); err != nil {
		return fmt.Errorf("init events: %w", err)
	}
	logger.Info().
		Int("technologies", techStore.Len()).
		Int("events", eventStore.Len()).
		Msg("catalog loaded")

	repo, cleanup, err := newUserRepository(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	tokens := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTExpiry)
	userService := users.NewService(repo, tokens, logger)

	routes := api.RecordRoutes{
		Technologies: handlers.NewRecordsHandler(techStore, "Technology"),
		Events:       handlers.NewRecordsHandler(eventStore, "Event"),
	}

	servers := []*http.Server{
		newHTTPServer(cfg.Server.Host, cfg.Server.AuthPort,
			api.NewAuthRouter(handlers.NewAuthHandler(userService), tokens, logger)),
		newHTTPServer(cfg.Server.Host, cfg.Server.ReadPort,
			api.NewReadOnlyRouter(routes, logger)),
		newHTTPServer(cfg.Server.Host, cfg.Server.CRUDPort,
			api.NewCRUDRouter(routes, logger)),
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	for _, server := range servers {
		g.Go(func() error {
			logger.Info().Str("addr", server.Addr).Msg("listening")
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("listen %s: %w", server.Addr, err)
			}
			return nil
		})
	}
	g.Go(func() error {
		<-gctx.Done()
		logger.Info().Msg("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		var shutdownErr error
		for _, server := range servers {
			if err := server.Shutdown(shutdownCtx); err != nil {
				shutdownErr = errors.Join(shutdownErr, err)
			}
		}
		return shutdownErr
	})

	return g.Wait()
}

func newHTTPServer(host string, port int, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              fmt.Sprintf("%s:%d", host, port),
		Handler:           handler,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}
}

// newUserRepository connects the credential store. Without a MONGO_URI the
// server keeps users in memory, which is only suitable for development.
func newUserRepository(ctx context.Context, cfg config.Config, logger zerolog.Logger) (users.Repository, func(), error) {
	if cfg.Mongo.URI == "" {
		logger.Warn().Msg("MONGO_URI not set, storing users in memory")
		return users.NewMemoryRepository(), func() {}, nil
	}

	client, err := storagemongo.Connect(ctx, cfg.Mongo.URI)
	if err != nil {
		return nil, nil, fmt.Errorf("mongodb: %w", err)
	}
	cleanup := func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Disconnect(disconnectCtx); err != nil {
			logger.Error().Err(err).Msg("mongodb disconnect error")
		}
	}

	repo := storagemongo.NewUserRepository(client, cfg.Mongo.Database)
	if err := repo.EnsureIndexes(ctx); err != nil {
		cleanup()
		return nil, nil, err
	}
	logger.Info().Str("database", cfg.Mongo.Database).Msg("connected to mongodb")
	return repo, cleanup, nil
}

func loadConfig() config.Config {
	cfg := config.Load()

	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	if logFormat != "" {
		cfg.Logging.Format = logFormat
	}
	if serverHost != "" {
		cfg.Server.Host = serverHost
	}
	if dataDir != "" {
		cfg.Data.Dir = dataDir
	}
	return cfg
}
