// Command vitalityd runs the damage resolution daemon. It reads
// tab-separated combat events from stdin, resolves them through the
// calculate/apply pipeline, and records outcomes to the configured storage
// backend.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/auraxsim/vitality/internal/ballistics"
	"github.com/auraxsim/vitality/internal/config"
	"github.com/auraxsim/vitality/internal/dispatcher"
	"github.com/auraxsim/vitality/internal/influx"
	"github.com/auraxsim/vitality/internal/logging"
	"github.com/auraxsim/vitality/internal/parser"
	"github.com/auraxsim/vitality/internal/registry"
	"github.com/auraxsim/vitality/internal/storage"
	"github.com/auraxsim/vitality/internal/worker"
)

var (
	Version   string = "0.0.1"
	BuildDate string = "unknown"
)

func main() {
	configDir := flag.String("config", ".", "directory containing vitality.cfg.json")
	demo := flag.Bool("demo", false, "run a scripted demo session instead of reading stdin")
	flag.Parse()

	if err := config.Load(*configDir); err != nil {
		// run on defaults when no config file is present
		fmt.Fprintf(os.Stderr, "config: %v, using defaults\n", err)
	}

	sessionStart := time.Now()
	logsDir := viper.GetString("logsDir")
	if err := os.MkdirAll(logsDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logs dir: %v\n", err)
		os.Exit(1)
	}

	logFilePath := logging.LogFilePath(logsDir, "vitalityd", sessionStart)
	logFile, err := os.OpenFile(logFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	logManager := logging.NewSlogManager()
	logManager.Setup(logFile, viper.GetString("logLevel"))
	logger := logManager.Logger()
	logger.Info("vitalityd starting", "version", Version, "buildDate", BuildDate)

	zl := zerolog.New(os.Stdout).With().Timestamp().Logger()

	backend, err := storage.NewBackend(config.GetStorageConfig(), logManager)
	if err != nil {
		logger.Error("Failed to create storage backend", "error", err)
		os.Exit(1)
	}
	if err := backend.Init(); err != nil {
		logger.Error("Failed to initialize storage backend", "error", err)
		os.Exit(1)
	}
	defer backend.Close()

	var influxManager *influx.Manager
	if viper.GetBool("influx.enabled") {
		backupPath := filepath.Join(logsDir, "influx_backup.lp.gz")
		influxManager = influx.NewManager(zl, backupPath)
		if err := influxManager.Connect(); err != nil {
			logger.Warn("InfluxDB unavailable, metrics disabled", "error", err)
			influxManager = nil
		} else {
			defer influxManager.Close()
		}
	}

	reg := registry.New()
	workerManager := worker.NewManager(worker.Dependencies{
		Registry:   reg,
		LogManager: logManager,
		Parser:     parser.NewParser(logger),
		Catalog:    ballistics.DefaultCatalog(),
		Influx:     influxManager,
	}, backend)

	eventDispatcher, err := dispatcher.New(logging.NewFeedLogger(zl))
	if err != nil {
		logger.Error("Failed to create dispatcher", "error", err)
		os.Exit(1)
	}
	workerManager.RegisterHandlers(eventDispatcher)

	// stamp session name and frame onto all worker-phase log records
	logManager.AttachContext(workerManager.ContextAttrs)

	if *demo {
		runDemo(eventDispatcher, logger)
		return
	}

	// end the session cleanly on SIGINT/SIGTERM
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("Shutting down")
		eventDispatcher.Dispatch(dispatcher.Event{Command: ":SESSION:END:"})
		backend.Close()
		os.Exit(0)
	}()

	readLoop(os.Stdin, eventDispatcher, logger)

	// input closed; end any open session
	eventDispatcher.Dispatch(dispatcher.Event{Command: ":SESSION:END:"})
}

// readLoop feeds stdin lines to the dispatcher. Each line is a command
// followed by tab-separated arguments.
func readLoop(input *os.File, d *dispatcher.Dispatcher, logger *slog.Logger) {
	scanner := bufio.NewScanner(input)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		event, ok := dispatcher.FromLine(scanner.Text())
		if !ok {
			continue
		}

		if err := d.Dispatch(event); err != nil {
			logger.Warn("Event dispatch failed", "command", event.Command, "error", err)
		}
	}
}
