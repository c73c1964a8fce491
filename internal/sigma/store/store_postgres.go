package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"sigmahub/pkg/domain"
	dErrors "sigmahub/pkg/domain-errors"
	"sigmahub/pkg/requestcontext"
)

// PostgresStore persists sigma values in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore constructs a PostgreSQL-backed sigma store.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Migrate creates the sigma_values table when it does not exist yet.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS sigma_values (
	aii_type    TEXT        NOT NULL,
	region      TEXT        NOT NULL,
	scenario    TEXT        NOT NULL,
	value       NUMERIC(10,6) NOT NULL,
	computed_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	PRIMARY KEY (aii_type, region, scenario)
)`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("migrate sigma_values: %w", err)
	}
	return nil
}

// Store upserts the sigma under its key triple, refreshing computed_at.
// The timestamp is request-scoped so all writes of one computation share it.
func (s *PostgresStore) Store(ctx context.Context, sigma domain.Sigma) error {
	const query = `
INSERT INTO sigma_values (aii_type, region, scenario, value, computed_at)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (aii_type, region, scenario)
DO UPDATE SET value = EXCLUDED.value, computed_at = EXCLUDED.computed_at`

	_, err := s.db.ExecContext(ctx, query,
		sigma.AiiType.String(),
		sigma.Region.String(),
		sigma.Scenario.String(),
		sigma.Value.String(),
		requestcontext.Now(ctx).UTC(),
	)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "store sigma")
	}
	return nil
}

// Find returns the stored sigma for the key triple.
func (s *PostgresStore) Find(ctx context.Context, aiiType domain.AiiType, region domain.Region, scenario domain.Scenario) (domain.Sigma, error) {
	const query = `
SELECT value FROM sigma_values
WHERE aii_type = $1 AND region = $2 AND scenario = $3`

	var raw string
	err := s.db.QueryRowContext(ctx, query, aiiType.String(), region.String(), scenario.String()).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Sigma{}, ErrNotFound
		}
		return domain.Sigma{}, dErrors.Wrap(err, dErrors.CodeInternal, "find sigma")
	}

	value, err := decimal.NewFromString(raw)
	if err != nil {
		return domain.Sigma{}, dErrors.Wrap(err, dErrors.CodeInternal, "parse stored sigma value")
	}
	return domain.NewSigma(aiiType, region, scenario, value)
}
