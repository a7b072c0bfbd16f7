package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/site-generator/internal/types"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS generated_sites (
	project_id    TEXT PRIMARY KEY,
	business_name TEXT NOT NULL,
	industry      TEXT NOT NULL,
	site          JSONB NOT NULL,
	document      TEXT NOT NULL,
	stylesheet    TEXT NOT NULL,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

// Postgres stores sites in the generated_sites table
type Postgres struct {
	pool *pgxpool.Pool
}

// ConnectPostgres establishes a connection pool to the database
func ConnectPostgres(ctx context.Context, databaseURL string) (*Postgres, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Postgres{pool: pool}, nil
}

// EnsureSchema creates the generated_sites table if it does not exist
func (p *Postgres) EnsureSchema(ctx context.Context) error {
	if _, err := p.pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("failed to create generated_sites table: %w", err)
	}
	return nil
}

// Save upserts site under projectID.
// Document and stylesheet are kept in TEXT columns because JSONB does not preserve the exact
// bytes of the encoded site.
func (p *Postgres) Save(ctx context.Context, projectID string, site *types.GeneratedSite) (err error) {
	defer func() { observe("postgres", "save", err) }()

	if err := checkProjectID(projectID); err != nil {
		return err
	}
	data, err := encodeSite(site)
	if err != nil {
		return err
	}

	_, err = p.pool.Exec(ctx,
		`INSERT INTO generated_sites (project_id, business_name, industry, site, document, stylesheet)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (project_id) DO UPDATE
		 SET business_name = $2, industry = $3, site = $4, document = $5, stylesheet = $6, updated_at = NOW()`,
		projectID, site.Structure.BusinessName, site.Structure.Industry, data, site.Document, site.Stylesheet,
	)
	if err != nil {
		return fmt.Errorf("failed to save site %s: %w", projectID, err)
	}
	return nil
}

// Load returns the site stored under projectID
func (p *Postgres) Load(ctx context.Context, projectID string) (site *types.GeneratedSite, err error) {
	defer func() { observe("postgres", "load", err) }()

	var data []byte
	var document, stylesheet string
	err = p.pool.QueryRow(ctx,
		`SELECT site, document, stylesheet FROM generated_sites WHERE project_id = $1`,
		projectID,
	).Scan(&data, &document, &stylesheet)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load site %s: %w", projectID, err)
	}

	site, err = decodeSite(data)
	if err != nil {
		return nil, err
	}
	site.Document = document
	site.Stylesheet = stylesheet
	return site, nil
}

// Delete removes the site stored under projectID
func (p *Postgres) Delete(ctx context.Context, projectID string) (err error) {
	defer func() { observe("postgres", "delete", err) }()

	tag, err := p.pool.Exec(ctx, `DELETE FROM generated_sites WHERE project_id = $1`, projectID)
	if err != nil {
		return fmt.Errorf("failed to delete site %s: %w", projectID, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Close closes the connection pool
func (p *Postgres) Close() error {
	if p.pool != nil {
		p.pool.Close()
	}
	return nil
}
