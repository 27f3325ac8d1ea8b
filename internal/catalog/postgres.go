package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"github.com/randytsao24/decomap/internal/models"
)

const schema = `CREATE TABLE IF NOT EXISTS buildings (
	id          TEXT PRIMARY KEY,
	position    INT NOT NULL,
	name        TEXT NOT NULL,
	address     TEXT NOT NULL,
	lat         DOUBLE PRECISION NOT NULL,
	lng         DOUBLE PRECISION NOT NULL,
	architect   TEXT NOT NULL DEFAULT '',
	year        INT NOT NULL DEFAULT 0,
	description TEXT NOT NULL DEFAULT '',
	image_url   TEXT NOT NULL DEFAULT '',
	updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// OpenPostgres opens a lib/pq connection pool
func OpenPostgres(dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening postgres: %w", err)
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	return db, nil
}

// PostgresRepository reads the catalog from the buildings table
type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// EnsureSchema creates the buildings table if missing
func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("creating buildings table: %w", err)
	}
	return nil
}

func (r *PostgresRepository) LoadBuildings(ctx context.Context) ([]models.Building, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, address, lat, lng, architect, year, description, image_url
		FROM buildings ORDER BY position, id`)
	if err != nil {
		return nil, fmt.Errorf("querying buildings: %w", err)
	}
	defer rows.Close()

	var buildings []models.Building
	for rows.Next() {
		var b models.Building
		if err := rows.Scan(&b.ID, &b.Name, &b.Address, &b.Location.Lat, &b.Location.Lng,
			&b.Architect, &b.Year, &b.Description, &b.ImageURL); err != nil {
			return nil, fmt.Errorf("scanning building: %w", err)
		}
		buildings = append(buildings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading buildings: %w", err)
	}
	return buildings, nil
}

// Replace makes the table hold exactly buildings, positioned in slice order
func (r *PostgresRepository) Replace(ctx context.Context, buildings []models.Building) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO buildings
		(id, position, name, address, lat, lng, architect, year, description, image_url, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, now())
		ON CONFLICT (id) DO UPDATE SET
			position = EXCLUDED.position,
			name = EXCLUDED.name,
			address = EXCLUDED.address,
			lat = EXCLUDED.lat,
			lng = EXCLUDED.lng,
			architect = EXCLUDED.architect,
			year = EXCLUDED.year,
			description = EXCLUDED.description,
			image_url = EXCLUDED.image_url,
			updated_at = now()`)
	if err != nil {
		return fmt.Errorf("preparing upsert: %w", err)
	}
	defer stmt.Close()

	ids := make([]string, 0, len(buildings))
	for i, b := range buildings {
		if _, err := stmt.ExecContext(ctx, b.ID, i, b.Name, b.Address, b.Location.Lat, b.Location.Lng,
			b.Architect, b.Year, b.Description, b.ImageURL); err != nil {
			return fmt.Errorf("upserting building %q: %w", b.ID, err)
		}
		ids = append(ids, b.ID)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM buildings WHERE NOT (id = ANY($1))`, pq.Array(ids)); err != nil {
		return fmt.Errorf("pruning buildings: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing catalog: %w", err)
	}
	return nil
}
