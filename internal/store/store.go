// Package store loads career vault snapshots from PostgreSQL.
package store

import (
	"context"
	_ "embed"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dshills/careeriq/internal/snapshot"
	"github.com/dshills/careeriq/internal/vault"
)

// DB wraps a PostgreSQL connection pool.
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database.
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("store.Connect: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("store.Connect: ping: %w", err)
	}
	return &DB{pool: pool}, nil
}

// Close closes the connection pool.
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

//go:embed schema.sql
var schemaSQL string

// EnsureSchema creates the vault tables if they do not exist.
func (db *DB) EnsureSchema(ctx context.Context) error {
	if _, err := db.pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("store.EnsureSchema: %w", err)
	}
	return nil
}

const itemsQuery = `
SELECT id, category, content, quality_tier, confidence, updated_at
FROM career_vault_items
WHERE user_id = $1
ORDER BY category, id`

const rolesQuery = `
SELECT title
FROM career_target_roles
WHERE user_id = $1
ORDER BY position, title`

// itemRow mirrors one row of career_vault_items. Nullable columns are pointers.
type itemRow struct {
	ID          string
	Category    string
	Content     string
	QualityTier *string
	Confidence  *string
	UpdatedAt   *time.Time
}

// LoadSnapshot reads a user's items and target roles inside one read-only,
// repeatable-read transaction so both reflect the same database state.
// A user with no items yields an empty snapshot.
func (db *DB) LoadSnapshot(ctx context.Context, userID uuid.UUID) (*snapshot.Snapshot, error) {
	tx, err := db.pool.BeginTx(ctx, pgx.TxOptions{
		IsoLevel:   pgx.RepeatableRead,
		AccessMode: pgx.ReadOnly,
	})
	if err != nil {
		return nil, fmt.Errorf("store.LoadSnapshot: begin: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	rows, err := tx.Query(ctx, itemsQuery, userID)
	if err != nil {
		return nil, fmt.Errorf("store.LoadSnapshot: query items: %w", err)
	}
	itemRows, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (itemRow, error) {
		var r itemRow
		err := row.Scan(&r.ID, &r.Category, &r.Content, &r.QualityTier, &r.Confidence, &r.UpdatedAt)
		return r, err
	})
	if err != nil {
		return nil, fmt.Errorf("store.LoadSnapshot: scan items: %w", err)
	}

	rows, err = tx.Query(ctx, rolesQuery, userID)
	if err != nil {
		return nil, fmt.Errorf("store.LoadSnapshot: query roles: %w", err)
	}
	roles, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("store.LoadSnapshot: scan roles: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("store.LoadSnapshot: commit: %w", err)
	}

	return buildSnapshot(userID, itemRows, roles), nil
}

func buildSnapshot(userID uuid.UUID, rows []itemRow, roles []string) *snapshot.Snapshot {
	s := &snapshot.Snapshot{
		Source:      "postgres:" + userID.String(),
		UserID:      userID.String(),
		TargetRoles: roles,
		Items:       make([]vault.Item, 0, len(rows)),
	}
	for _, r := range rows {
		s.Items = append(s.Items, r.toItem())
	}
	snapshot.Normalize(s)
	return s
}

// toItem maps a row to an item. A missing tier is treated as assumed and a
// missing confidence as medium.
func (r itemRow) toItem() vault.Item {
	it := vault.Item{
		ID:         r.ID,
		Category:   vault.Category(r.Category),
		Text:       r.Content,
		Tier:       vault.TierAssumed,
		Confidence: vault.ConfidenceMedium,
	}
	if r.QualityTier != nil && *r.QualityTier != "" {
		it.Tier = vault.QualityTier(*r.QualityTier)
	}
	if r.Confidence != nil && *r.Confidence != "" {
		it.Confidence = vault.Confidence(*r.Confidence)
	}
	if r.UpdatedAt != nil {
		it.LastUpdated = *r.UpdatedAt
	}
	return it
}
