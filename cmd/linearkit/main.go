// Package main implements the entry point for the linearkit service, an
// HTTP API over classic linear containers (stack, queue, circular queue,
// priority queue, deque) with per-session state.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/c360/linearkit/config"
	"github.com/c360/linearkit/gateway"
	"github.com/c360/linearkit/metric"
	"github.com/c360/linearkit/session"
)

// Build information constants
const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "linearkit"
)

func main() {
	// Add panic recovery
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := run(); err != nil {
		slog.Error("Application failed", "error", err, "exit_code", 1)
		os.Exit(1)
	}
}

func run() error {
	cliCfg, logger, shouldExit, err := initializeCLI()
	if shouldExit || err != nil {
		return err
	}

	cfg, err := initializeConfiguration(cliCfg)
	if err != nil {
		return err
	}

	if cliCfg.Validate {
		slog.Info("Configuration is valid")
		return nil
	}

	metricsRegistry := metric.NewRegistry()

	sessions, err := session.NewRegistry(cfg.Sessions, cfg.Containers,
		session.WithLogger(logger),
		session.WithMetrics(metricsRegistry.CoreMetrics()))
	if err != nil {
		return fmt.Errorf("create session registry: %w", err)
	}

	gw, err := gateway.New(cfg.Server, sessions,
		gateway.WithLogger(logger),
		gateway.WithMetrics(metricsRegistry.CoreMetrics()))
	if err != nil {
		return fmt.Errorf("create gateway: %w", err)
	}

	var metricsServer *metric.Server
	if cfg.Metrics.Enabled {
		metricsServer = metric.NewServer(cfg.Metrics.Port, cfg.Metrics.Path, metricsRegistry)
	}

	return runWithSignalHandling(gw, metricsServer, sessions, cliCfg.ShutdownTimeout)
}

// initializeCLI parses flags and sets up logging
func initializeCLI() (*CLIConfig, *slog.Logger, bool, error) {
	cliCfg := parseFlags()
	if err := validateFlags(cliCfg); err != nil {
		return nil, nil, false, fmt.Errorf("invalid flags: %w", err)
	}

	if cliCfg.ShowVersion {
		fmt.Printf("%s version %s\n", appName, Version)
		return nil, nil, true, nil
	}

	if cliCfg.ShowHelp {
		printDetailedHelp()
		return nil, nil, true, nil
	}

	logger := setupLogger(cliCfg.LogLevel, cliCfg.LogFormat)
	slog.SetDefault(logger)

	slog.Info("Starting linearkit (linear container service)",
		"version", Version,
		"build_time", BuildTime,
		"config_path", cliCfg.ConfigPath)

	return cliCfg, logger, false, nil
}

// initializeConfiguration loads configuration, falling back to built-in
// defaults when no file was given. LoadFile validates after applying
// defaults.
func initializeConfiguration(cliCfg *CLIConfig) (*config.Config, error) {
	if cliCfg.ConfigPath == "" {
		slog.Info("No config file given, using defaults")
		return config.Default(), nil
	}

	cfg, err := config.LoadFile(cliCfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// runWithSignalHandling starts all servers and shuts them down gracefully
// on SIGINT/SIGTERM.
func runWithSignalHandling(gw *gateway.Gateway, metricsServer *metric.Server, sessions *session.Registry, shutdownTimeout time.Duration) error {
	signalCtx, signalCancel := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer signalCancel()

	if err := sessions.Start(signalCtx); err != nil {
		return fmt.Errorf("start session registry: %w", err)
	}

	group, groupCtx := errgroup.WithContext(signalCtx)

	group.Go(func() error {
		return gw.Start(groupCtx)
	})

	if metricsServer != nil {
		group.Go(func() error {
			slog.Info("Metrics server listening", "address", metricsServer.Address())
			return metricsServer.Start()
		})
	}

	// Shutdown watcher: a signal or a failed server cancels groupCtx
	group.Go(func() error {
		<-groupCtx.Done()
		slog.Info("Shutting down", "timeout", shutdownTimeout)

		var firstErr error
		if err := gw.Stop(shutdownTimeout); err != nil {
			firstErr = err
		}
		if metricsServer != nil {
			if err := metricsServer.Stop(shutdownTimeout); err != nil && firstErr == nil {
				firstErr = err
			}
		}
		if err := sessions.Stop(shutdownTimeout); err != nil && firstErr == nil {
			firstErr = err
		}
		return firstErr
	})

	slog.Info("linearkit started")
	if err := group.Wait(); err != nil {
		return fmt.Errorf("run servers: %w", err)
	}

	slog.Info("linearkit shutdown complete")
	return nil
}
