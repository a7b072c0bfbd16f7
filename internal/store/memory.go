package store

import (
	"context"
	"sync"

	"github.com/jonathan/site-generator/internal/types"
)

// Memory keeps encoded sites in process memory
type Memory struct {
	mu    sync.RWMutex
	sites map[string][]byte
}

// NewMemory creates an empty in-memory store
func NewMemory() *Memory {
	return &Memory{sites: make(map[string][]byte)}
}

// Save stores site under projectID, replacing any previous site
func (m *Memory) Save(ctx context.Context, projectID string, site *types.GeneratedSite) (err error) {
	defer func() { observe("memory", "save", err) }()

	if err := checkProjectID(projectID); err != nil {
		return err
	}
	data, err := encodeSite(site)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.sites[projectID] = data
	return nil
}

// Load returns the site stored under projectID
func (m *Memory) Load(ctx context.Context, projectID string) (site *types.GeneratedSite, err error) {
	defer func() { observe("memory", "load", err) }()

	m.mu.RLock()
	data, ok := m.sites[projectID]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	return decodeSite(data)
}

// Delete removes the site stored under projectID
func (m *Memory) Delete(ctx context.Context, projectID string) (err error) {
	defer func() { observe("memory", "delete", err) }()

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sites[projectID]; !ok {
		return ErrNotFound
	}
	delete(m.sites, projectID)
	return nil
}

// Close is a no-op
func (m *Memory) Close() error {
	return nil
}
