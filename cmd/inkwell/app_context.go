package main

import (
	"fmt"

	"github.com/alexisbeaulieu97/inkwell/internal/logger"
	"github.com/alexisbeaulieu97/inkwell/internal/manifest"
	"github.com/alexisbeaulieu97/inkwell/pkg/styles"
)

// appContext bundles the services a command needs at runtime.
type appContext struct {
	engine *styles.Engine
	log    *logger.Logger
}

func newAppContext(flags *rootFlags) (*appContext, error) {
	level := "warn"
	if flags.verbose {
		level = "debug"
	}

	log, err := logger.New(logger.Options{Level: level, HumanReadable: true})
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}

	cfg := styles.Config{Logger: log}
	if flags.manifestPath != "" {
		m, err := manifest.Parse(flags.manifestPath)
		if err != nil {
			return nil, err
		}
		cfg.Library = m.Library()
		cfg.Registry = m.Registry()
		log.WithFields(map[string]any{"manifest": flags.manifestPath, "theme": m.Name}).Debug("loaded theme manifest")
	}

	return &appContext{engine: styles.New(cfg), log: log}, nil
}
