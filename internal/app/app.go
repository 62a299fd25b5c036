// Package app implements the application layer for loadstone.
package app

import (
	"context"

	"github.com/loadstone/loadstone/internal/core/domain"
	"github.com/loadstone/loadstone/internal/core/ports"
	"github.com/loadstone/loadstone/internal/engine/catalog"
	"github.com/loadstone/loadstone/internal/engine/conflict"
	"github.com/loadstone/loadstone/internal/engine/search"
	"go.trai.ch/zerr"
)

// App is the facade the CLI talks to. It owns the database catalog; the
// conflict and search engines are constructed per call.
type App struct {
	catalog *catalog.Catalog
	log     ports.Logger
}

// New creates an App instance.
func New(cat *catalog.Catalog, log ports.Logger) *App {
	return &App{
		catalog: cat,
		log:     log,
	}
}

// Analyze parses a textual load order and runs conflict detection against
// the masterlist database for the given game and version selector.
func (a *App) Analyze(ctx context.Context, gameID, versionSel, loadOrderText string) (*conflict.Report, error) {
	game, err := domain.ParseGame(gameID)
	if err != nil {
		return nil, err
	}

	entries := conflict.ParseLoadOrder(loadOrderText)
	if len(entries) == 0 {
		return nil, domain.ErrEmptyLoadOrder
	}

	db, err := a.catalog.Get(ctx, game, versionSel)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load mod database")
	}

	return conflict.New(db).Analyze(entries), nil
}

// Search runs a free-text query against the masterlist database for the
// given game and version selector.
func (a *App) Search(ctx context.Context, gameID, versionSel, query string, limit int) ([]domain.SearchHit, error) {
	game, err := domain.ParseGame(gameID)
	if err != nil {
		return nil, err
	}

	db, err := a.catalog.Get(ctx, game, versionSel)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load mod database")
	}

	return search.NewEngine(db).Search(query, limit), nil
}

// Versions lists the masterlist versions published for a game, newest first.
func (a *App) Versions(ctx context.Context, gameID string) ([]string, error) {
	game, err := domain.ParseGame(gameID)
	if err != nil {
		return nil, err
	}
	return a.catalog.Versions(ctx, game)
}

// Refresh rebuilds the database for a game and version selector, bypassing
// both the in-memory cache and the snapshot.
func (a *App) Refresh(ctx context.Context, gameID, versionSel string) (int, error) {
	game, err := domain.ParseGame(gameID)
	if err != nil {
		return 0, err
	}
	db, err := a.catalog.Refresh(ctx, game, versionSel)
	if err != nil {
		return 0, err
	}
	return db.Len(), nil
}
