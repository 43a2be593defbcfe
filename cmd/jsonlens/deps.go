package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/ersonp/jsonlens/internal/application/handlers"
	"github.com/ersonp/jsonlens/internal/domain/services"
	"github.com/ersonp/jsonlens/internal/infrastructure/codec/stdjson"
	"github.com/ersonp/jsonlens/internal/infrastructure/config"
	"github.com/ersonp/jsonlens/internal/infrastructure/historydb/sqlite"
)

// Deps holds high-level dependencies for commands.
// Only handlers and the renderer are exposed - services are internal.
type Deps struct {
	Config          *config.Config
	ValidateHandler *handlers.ValidateHandler
	FormatHandler   *handlers.FormatHandler
	Snippet         *services.Snippet
}

// internalDeps holds all dependencies including low-level components.
// Used internally by helper functions.
type internalDeps struct {
	Deps
	document *services.Document
	history  *services.History // nil when history is disabled
	repo     *sqlite.Repository
}

// withDeps loads config and builds dependencies, then calls the provided
// function. It handles cleanup automatically.
func withDeps(fn func(*Deps) error) error {
	return withInternalDeps(func(d *internalDeps) error {
		return fn(&d.Deps)
	})
}

// withInternalDeps provides access to all dependencies including low-level
// components. History is wired only when it is enabled and the working
// directory has been initialized; everything else works anywhere.
func withInternalDeps(fn func(*internalDeps) error) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	document := services.NewDocument(stdjson.New(), services.NewLocator())
	snippet := services.NewSnippet(cfg.Snippet.ContextBefore, cfg.Snippet.ContextAfter)

	var (
		history *services.History
		repo    *sqlite.Repository
	)
	if cfg.History.Enabled && config.Exists(cwd) {
		sqliteCfg := cfg.SQLite
		if sqliteCfg.Path == "" {
			sqliteCfg.Path = config.HistoryPath(cwd)
		}

		repo, err = sqlite.NewRepository(sqliteCfg)
		if err != nil {
			return fmt.Errorf("creating sqlite repository: %w", err)
		}
		defer repo.Close()

		if err := repo.EnsureSchema(context.Background()); err != nil {
			return fmt.Errorf("ensuring sqlite schema: %w", err)
		}

		history = services.NewHistory(repo, cfg.History.Limit)
	}

	deps := &internalDeps{
		Deps: Deps{
			Config:          cfg,
			ValidateHandler: handlers.NewValidateHandler(document, history),
			FormatHandler:   handlers.NewFormatHandler(document, history),
			Snippet:         snippet,
		},
		document: document,
		history:  history,
		repo:     repo,
	}

	return fn(deps)
}

// withHistoryHandler provides access to the HistoryHandler for history
// commands. Fails when history is disabled or the directory has not been
// initialized.
func withHistoryHandler(fn func(*handlers.HistoryHandler) error) error {
	return withInternalDeps(func(d *internalDeps) error {
		if d.history == nil {
			return errors.New("history is not available (run 'jsonlens init' and check history.enabled)")
		}
		return fn(handlers.NewHistoryHandler(d.history))
	})
}
