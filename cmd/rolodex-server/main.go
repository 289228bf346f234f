package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/avelys/rolodex-go/internal/core/domain"
	"github.com/avelys/rolodex-go/internal/core/service"
	"github.com/avelys/rolodex-go/internal/infra/buildinfo"
	"github.com/avelys/rolodex-go/internal/infra/confloader"
	"github.com/avelys/rolodex-go/internal/infra/shutdown"
	"github.com/avelys/rolodex-go/internal/server/config"
	"github.com/avelys/rolodex-go/internal/server/httpserver"
	"github.com/avelys/rolodex-go/internal/storage/jsonfile"
	"github.com/avelys/rolodex-go/internal/telemetry/logger"
	"github.com/avelys/rolodex-go/internal/telemetry/metric"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		configFile  = flag.String("config", "", "Path to configuration file")
		showVersion = flag.Bool("version", false, "Show version information")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("rolodex-server %s\n", buildinfo.String())
		return nil
	}

	cfg, err := loadConfig(*configFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := initLogger(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	log.Info("starting rolodex-server",
		"version", buildinfo.Version,
		"commit", buildinfo.Commit,
		"config", *configFile)

	store, err := jsonfile.Open(jsonfile.Config{
		Path: cfg.Storage.File,
		Matcher: domain.NewMatcher(
			domain.MatchMode(cfg.API.MatchKey),
			domain.CaseMode(cfg.API.MatchCase),
		),
		Logger: log,
	})
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}

	if cfg.Storage.Watch {
		if err := store.WatchFile(); err != nil {
			return fmt.Errorf("watch snapshot: %w", err)
		}
	}

	metrics := metric.NewRegistry()
	metrics.MustRegister(metric.NewStoreCollector(func() metric.StoreStats {
		stats := store.Stats()
		return metric.StoreStats{
			Books:        stats.Books,
			Contacts:     stats.Contacts,
			SnapshotSize: stats.SnapshotSize,
			Persists:     stats.Persists,
			Reloads:      stats.Reloads,
		}
	}))

	router := httpserver.NewRouter(&httpserver.RouterConfig{
		BookService:        service.NewBookService(store),
		ContactService:     service.NewContactService(store),
		Logger:             log,
		Metrics:            metrics,
		MetricsHandler:     metrics.Handler(),
		CORSAllowedOrigins: cfg.Server.HTTP.CORSAllowedOrigins,
		RateLimit:          cfg.Server.HTTP.RateLimit,
	})

	httpServer := httpserver.New(cfg.Server.HTTP.Addr, router)

	shutdownHandler := shutdown.NewHandler(30 * time.Second)

	shutdownHandler.OnShutdown(func(ctx context.Context) error {
		log.Info("closing snapshot store")
		return store.Close()
	})

	shutdownHandler.OnShutdown(func(ctx context.Context) error {
		log.Info("shutting down HTTP server")
		return httpServer.Shutdown(ctx)
	})

	// Reload the log level when the config file changes on disk.
	if *configFile != "" {
		watcher, err := watchConfig(*configFile, log)
		if err != nil {
			log.Warn("config watch disabled", "error", err)
		} else {
			shutdownHandler.OnShutdown(func(ctx context.Context) error {
				return watcher.Stop()
			})
		}
	}

	go func() {
		log.Info("HTTP server listening", "addr", cfg.Server.HTTP.Addr)

		var err error
		if cfg.Server.HTTP.TLSCertFile != "" && cfg.Server.HTTP.TLSKeyFile != "" {
			err = httpServer.ListenAndServeTLS(cfg.Server.HTTP.TLSCertFile, cfg.Server.HTTP.TLSKeyFile)
		} else {
			err = httpServer.ListenAndServe()
		}

		if err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error", "error", err)
		}
	}()

	log.Info("server started, press Ctrl+C to stop")
	if err := shutdownHandler.Wait(); err != nil {
		log.Error("shutdown error", "error", err)
		return err
	}

	log.Info("server stopped gracefully")
	return nil
}

// loadConfig loads configuration from file and environment.
func loadConfig(configFile string) (*config.ServerConfig, error) {
	cfg := config.Default()

	opts := []confloader.Option{}
	if configFile != "" {
		opts = append(opts, confloader.WithConfigFile(configFile))
	}

	loader := confloader.NewLoader(opts...)
	if err := loader.Load(cfg); err != nil {
		return nil, err
	}

	if err := config.Verify(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// initLogger initializes the structured logger and installs it as the
// process default.
func initLogger(cfg *config.ServerConfig) (logger.Logger, error) {
	log, err := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: os.Stdout,
	})
	if err != nil {
		return nil, err
	}

	logger.SetDefault(log)
	return log, nil
}

// watchConfig re-reads the config file on change and applies the log
// level without a restart.
func watchConfig(configFile string, log logger.Logger) (*confloader.Watcher, error) {
	watcher, err := confloader.NewWatcher(confloader.WithWatcherLogger(log))
	if err != nil {
		return nil, err
	}

	if err := watcher.Watch(configFile); err != nil {
		watcher.Stop()
		return nil, err
	}

	watcher.OnChange(func(path string) {
		cfg, err := loadConfig(path)
		if err != nil {
			log.Warn("ignoring invalid config change", "path", path, "error", err)
			return
		}
		if cfg.Log.Level != logger.GetLevel() {
			logger.SetLevel(cfg.Log.Level)
			log.Info("log level changed", "level", cfg.Log.Level)
		}
	})

	watcher.StartAsync()
	return watcher, nil
}
