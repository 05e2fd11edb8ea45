package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/GurKalra/HackSummit-hero-squad-optimizer/internal/engine"
	"github.com/GurKalra/HackSummit-hero-squad-optimizer/internal/engine/bayes"
	"github.com/GurKalra/HackSummit-hero-squad-optimizer/internal/engine/montecarlo"
	"github.com/GurKalra/HackSummit-hero-squad-optimizer/internal/engine/weighted"
	v1 "github.com/GurKalra/HackSummit-hero-squad-optimizer/internal/handlers/api/v1"
	"github.com/GurKalra/HackSummit-hero-squad-optimizer/internal/orchestrators/analysis"
	"github.com/GurKalra/HackSummit-hero-squad-optimizer/internal/pkg/clock"
	"github.com/GurKalra/HackSummit-hero-squad-optimizer/internal/pkg/idgen"
	redisclient "github.com/GurKalra/HackSummit-hero-squad-optimizer/internal/redis"
	analysisrecord "github.com/GurKalra/HackSummit-hero-squad-optimizer/internal/repositories/analysis_record"
)

// serverConfig is populated from the environment; flags override below
type serverConfig struct {
	Port         int    `env:"PORT" envDefault:"8080"`
	RedisAddress string `env:"REDIS_ADDRESS" envDefault:"localhost:6379"`
	Strategy     string `env:"ANALYSIS_STRATEGY" envDefault:"weighted"`
	Trials       int    `env:"SIMULATION_TRIALS" envDefault:"1000"`
}

var (
	flagPort     int
	flagStrategy string
	flagRedis    string
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the HTTP API server",
	Long:  `Start the squad optimizer HTTP server with the configured estimation strategy.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&flagPort, "port", 0, "HTTP port (overrides PORT)")
	serverCmd.Flags().StringVar(&flagStrategy, "strategy", "", "estimation strategy: weighted, montecarlo, bayes (overrides ANALYSIS_STRATEGY)")
	serverCmd.Flags().StringVar(&flagRedis, "redis", "", "redis address (overrides REDIS_ADDRESS)")
}

func loadConfig() (*serverConfig, error) {
	// A local .env is a development convenience, not a requirement
	_ = godotenv.Load()

	cfg := &serverConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if flagPort > 0 {
		cfg.Port = flagPort
	}
	if flagStrategy != "" {
		cfg.Strategy = flagStrategy
	}
	if flagRedis != "" {
		cfg.RedisAddress = flagRedis
	}

	return cfg, nil
}

// buildEstimator selects the configured estimation strategy. The
// strategies are interchangeable behind engine.Estimator, so swapping
// them is a config change, not a code change.
func buildEstimator(cfg *serverConfig) (engine.Estimator, error) {
	switch cfg.Strategy {
	case "weighted":
		return weighted.New(), nil
	case "montecarlo":
		return montecarlo.New(&montecarlo.Config{Trials: cfg.Trials}), nil
	case "bayes":
		return bayes.New(), nil
	default:
		return nil, fmt.Errorf("unknown estimation strategy: %q", cfg.Strategy)
	}
}

func runServer(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Received shutdown signal, gracefully stopping...")
		cancel()
	}()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	estimator, err := buildEstimator(cfg)
	if err != nil {
		return err
	}

	redisClient, err := redisclient.NewClient(cfg.RedisAddress, nil)
	if err != nil {
		return fmt.Errorf("failed to create redis client: %w", err)
	}

	recordRepo, err := analysisrecord.NewRedisRepository(&analysisrecord.Config{
		Client: redisClient,
		Clock:  clock.New(),
	})
	if err != nil {
		return fmt.Errorf("failed to create analysis record repository: %w", err)
	}

	analysisService, err := analysis.NewOrchestrator(&analysis.Config{
		Estimator:   estimator,
		RecordRepo:  recordRepo,
		IDGenerator: idgen.NewUUID("analysis"),
	})
	if err != nil {
		return fmt.Errorf("failed to create analysis orchestrator: %w", err)
	}

	handler, err := v1.NewHandler(&v1.HandlerConfig{
		AnalysisService: analysisService,
	})
	if err != nil {
		return fmt.Errorf("failed to create analysis handler: %w", err)
	}

	mux := http.NewServeMux()
	handler.Register(mux)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		slog.Info("HTTP server starting",
			"port", cfg.Port,
			"strategy", estimator.Name(),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutting down HTTP server...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Warn("Graceful shutdown timeout exceeded, forcing close")
			_ = srv.Close()
		} else {
			slog.Info("Server stopped gracefully")
		}

		return nil
	case err := <-errChan:
		return err
	}
}
