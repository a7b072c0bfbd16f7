// Package store persists generated sites by project id.
//
// Sites are stored as their JSON encoding so that a reload reproduces the document and
// stylesheet byte for byte.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jonathan/site-generator/internal/config"
	"github.com/jonathan/site-generator/internal/metrics"
	"github.com/jonathan/site-generator/internal/types"
)

// ErrNotFound is returned by Load and Delete when no site is stored under the project id
var ErrNotFound = errors.New("site not found")

// Store saves, loads and deletes generated sites
type Store interface {
	Save(ctx context.Context, projectID string, site *types.GeneratedSite) error
	Load(ctx context.Context, projectID string) (*types.GeneratedSite, error)
	Delete(ctx context.Context, projectID string) error
	Close() error
}

// Open returns the store selected by cfg.Store
func Open(ctx context.Context, cfg *config.Config) (Store, error) {
	switch cfg.Store {
	case "", config.StoreMemory:
		return NewMemory(), nil
	case config.StoreRedis:
		return NewRedis(ctx, RedisOptions{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			TTL:      cfg.SiteTTL(),
		})
	case config.StorePostgres:
		pg, err := ConnectPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		if err := pg.EnsureSchema(ctx); err != nil {
			pg.Close()
			return nil, err
		}
		return pg, nil
	default:
		return nil, fmt.Errorf("unknown store %q", cfg.Store)
	}
}

func checkProjectID(projectID string) error {
	if strings.TrimSpace(projectID) == "" {
		return fmt.Errorf("project id is required")
	}
	return nil
}

func encodeSite(site *types.GeneratedSite) ([]byte, error) {
	if site == nil {
		return nil, fmt.Errorf("site is nil")
	}
	data, err := json.Marshal(site)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal site: %w", err)
	}
	return data, nil
}

func decodeSite(data []byte) (*types.GeneratedSite, error) {
	var site types.GeneratedSite
	if err := json.Unmarshal(data, &site); err != nil {
		return nil, fmt.Errorf("failed to unmarshal site: %w", err)
	}
	return &site, nil
}

// observe records the outcome of a store operation; ErrNotFound counts as success
func observe(driver, operation string, err error) {
	status := metrics.Status(err)
	if errors.Is(err, ErrNotFound) {
		status = metrics.StatusSuccess
	}
	metrics.StoreOperations.WithLabelValues(driver, operation, status).Inc()
}
