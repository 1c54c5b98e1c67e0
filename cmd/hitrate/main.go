// Package main provides the hit-rate calculator console.
// It wires together configuration, logging, presets, and the interactive screen.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/hitrate/internal/command"
	"github.com/cory-johannsen/hitrate/internal/config"
	"github.com/cory-johannsen/hitrate/internal/frontend/console"
	"github.com/cory-johannsen/hitrate/internal/frontend/handlers"
	"github.com/cory-johannsen/hitrate/internal/observability"
	"github.com/cory-johannsen/hitrate/internal/preset"
	"github.com/cory-johannsen/hitrate/internal/server"
)

func main() {
	start := time.Now()

	envFile := flag.String("env", ".env", "path to an optional env file with HITRATE_ overrides")
	configPath := flag.String("config", "configs/dev.yaml", "path to configuration file (empty for built-in defaults)")
	presetsDir := flag.String("presets", "", "path to preset YAML files directory (overrides console.presets_dir)")
	once := flag.Bool("once", false, "print the rates for the trait flags and exit")
	noColor := flag.Bool("no-color", false, "disable ANSI colors")

	traits := make(map[handlers.Field]*string)
	for _, key := range handlers.FieldKeys() {
		field, _ := handlers.LookupField(key)
		traits[field] = flag.String(key, "", fmt.Sprintf("raw %s input (with -once)", key))
	}
	flag.Parse()

	if err := config.LoadEnvFile(*envFile); err != nil {
		log.Fatalf("loading env file: %v", err)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	if *presetsDir != "" {
		cfg.Console.PresetsDir = *presetsDir
	}
	if *noColor {
		cfg.Console.Color = false
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	term := console.NewTerminal(os.Stdin, os.Stdout, cfg.Console.Color)

	if *once {
		form := handlers.NewForm()
		for field, value := range traits {
			form.Set(field, *value)
		}
		if err := term.Write(handlers.RenderScreen(term.Style(), form)); err != nil {
			logger.Fatal("writing screen", zap.Error(err))
		}
		return
	}

	presets, err := loadPresets(cfg.Console.PresetsDir, logger)
	if err != nil {
		logger.Fatal("loading presets", zap.Error(err))
	}

	session := handlers.NewSession(term, command.DefaultRegistry(), presets, cfg.Console.Prompt, logger)

	lifecycle := server.NewLifecycle(logger)
	lifecycle.Add("console", &server.FuncService{
		StartFn: session.Run,
	})

	logger.Debug("console initialized",
		zap.String("session", session.ID()),
		zap.Duration("startup", time.Since(start)),
	)

	if err := lifecycle.Run(context.Background()); err != nil {
		logger.Fatal("console error", zap.Error(err))
	}
}

func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.Default()
	}
	return config.Load(path)
}

// loadPresets returns nil when dir is empty or missing so the console still
// runs without content files.
func loadPresets(dir string, logger *zap.Logger) (*preset.Registry, error) {
	if dir == "" {
		return nil, nil
	}
	if _, err := os.Stat(dir); errors.Is(err, os.ErrNotExist) {
		logger.Warn("presets directory not found", zap.String("dir", dir))
		return nil, nil
	}
	list, err := preset.Load(dir)
	if err != nil {
		return nil, err
	}
	reg, err := preset.NewRegistry(list)
	if err != nil {
		return nil, err
	}
	logger.Debug("presets loaded",
		zap.String("dir", dir),
		zap.Int("count", reg.Len()),
	)
	return reg, nil
}
