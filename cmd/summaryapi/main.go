package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"spv_wallet_summary/internal/adapters/restapi"
	"spv_wallet_summary/internal/adapters/storage/memory/summary"
	"spv_wallet_summary/internal/config"
	"spv_wallet_summary/internal/core/application"
	"spv_wallet_summary/internal/logger"
	"spv_wallet_summary/pkg/summaryapi"
)

// newAppLogger is swapped in tests.
var newAppLogger = logger.NewAppLogger

// main is entry point of application.
func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		os.Exit(1)
	}
}

// run wires and serves the application until shutdown.
// The logger is flushed before run returns, so callers may exit right after.
func run(args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("summaryapi", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configFile := fs.String("config", "", "Path to YAML configuration file (default: config/config.yml)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.LoadConfig(*configFile)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to load configuration: %v\n", err)
		return err
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "Invalid configuration: %v\n", err)
		return err
	}

	appLogger, err := newAppLogger(cfg.Logger)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to create logger: %v\n", err)
		return err
	}
	defer func() {
		if syncErr := logger.Sync(appLogger); syncErr != nil {
			fmt.Fprintf(stderr, "Failed to flush logger: %v\n", syncErr)
		}
	}()

	logMsg := "Configuration loaded successfully"
	if *configFile != "" {
		appLogger.Info(logMsg, "configFile", *configFile, "loggerBackend", cfg.Logger.Backend)
	} else {
		appLogger.Info(logMsg, "configFile", config.DefaultConfigFile+" (default)", "loggerBackend", cfg.Logger.Backend)
	}

	summaryRepo := summary.NewInMemorySummaryRepo()

	summaryService, err := application.NewSummaryService(summaryRepo, appLogger, cfg.Summaries)
	if err != nil {
		appLogger.Error("Failed to create summary service", "error", err)
		return err
	}

	var summaryServiceAPI summaryapi.Service = summaryService

	apiServer, err := restapi.NewServer(summaryServiceAPI, appLogger, &cfg.Server)
	if err != nil {
		appLogger.Error("Failed to create API server", "error", err)
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := gracefulShutdown(ctx, appLogger, apiServer); err != nil {
		return err
	}

	appLogger.Info("Application shut down gracefully.")
	return nil
}

// gracefulShutdown runs the API server until ctx is done or the server fails.
// A server failure is returned after the shutdown completes.
func gracefulShutdown(ctx context.Context, appLogger logger.AppLogger, apiServer *restapi.Server) error {
	errChan := make(chan error, 1)
	go func() {
		if errServ := apiServer.Start(); errServ != nil && !errors.Is(errServ, http.ErrServerClosed) {
			errChan <- fmt.Errorf("http server error: %w", errServ)
		}
	}()

	var serveErr error
	select {
	case serveErr = <-errChan:
		appLogger.Error("Shutting down due to error", "error", serveErr)
	case <-ctx.Done():
		appLogger.Info("Shutting down due to OS signal...")
	}

	httpShutdownCtx, cancelHTTPShutdown := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelHTTPShutdown()

	if err := apiServer.Shutdown(httpShutdownCtx); err != nil {
		appLogger.Error("HTTP server shutdown error", "error", err)
	}
	return serveErr
}
