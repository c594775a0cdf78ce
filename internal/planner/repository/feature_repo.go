package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/GoSim-25-26J-441/planner-backend/internal/planner/domain"
	"github.com/GoSim-25-26J-441/planner-backend/internal/storage/postgres"
)

const featureColumns = `id::text, app_id::text, owner_id::text, name, status, feature_type, short_description,
	feature_specs, story_breakdown, images, created_at, updated_at`

// FeatureRepository provides persistence operations for features.
type FeatureRepository struct {
	db postgres.DBTX
}

func NewFeatureRepository(db postgres.DBTX) *FeatureRepository {
	return &FeatureRepository{db: db}
}

// WithTx returns a repository bound to tx.
func (r *FeatureRepository) WithTx(tx *sql.Tx) *FeatureRepository {
	return &FeatureRepository{db: tx}
}

// Create inserts f, assigning its ID when empty and filling the timestamps.
// Timestamps come from clock_timestamp() so rows inserted in one transaction
// keep their insertion order.
// A missing parent application surfaces as domain.ErrApplicationNotFound.
func (r *FeatureRepository) Create(ctx context.Context, f *domain.Feature) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	f.Images = nonNil(f.Images)

	const q = `
INSERT INTO features (id, app_id, owner_id, name, status, feature_type, short_description,
	feature_specs, story_breakdown, images, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, clock_timestamp(), clock_timestamp())
RETURNING created_at, updated_at`

	err := r.db.QueryRowContext(ctx, q,
		f.ID, f.AppID, f.OwnerID, f.Name, f.Status, f.FeatureType, f.ShortDescription,
		f.FeatureSpecs, f.StoryBreakdown, pq.Array(f.Images),
	).Scan(&f.CreatedAt, &f.UpdatedAt)
	if postgres.IsForeignKeyViolation(err) {
		return domain.ErrApplicationNotFound
	}
	if err != nil {
		return fmt.Errorf("insert feature: %w", err)
	}
	return nil
}

// GetByID returns the feature when it exists and belongs to ownerID.
func (r *FeatureRepository) GetByID(ctx context.Context, ownerID, id string) (*domain.Feature, error) {
	q := `SELECT ` + featureColumns + ` FROM features WHERE id = $1 AND owner_id = $2`

	f, err := scanFeature(r.db.QueryRowContext(ctx, q, id, ownerID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrFeatureNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get feature: %w", err)
	}
	return f, nil
}

// ListByApp returns the owner's features of one application, newest first.
func (r *FeatureRepository) ListByApp(ctx context.Context, ownerID, appID string) ([]domain.Feature, error) {
	q := `SELECT ` + featureColumns + ` FROM features WHERE app_id = $1 AND owner_id = $2 ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, q, appID, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list features: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Feature, 0, 16)
	for rows.Next() {
		f, err := scanFeature(rows)
		if err != nil {
			return nil, fmt.Errorf("scan feature: %w", err)
		}
		out = append(out, *f)
	}
	return out, rows.Err()
}

// Update replaces every mutable field of the owner's feature.
func (r *FeatureRepository) Update(ctx context.Context, ownerID, id string, p domain.FeaturePayload) (*domain.Feature, error) {
	q := `
UPDATE features
SET app_id = $3, name = $4, status = $5, feature_type = $6, short_description = $7,
	feature_specs = $8, story_breakdown = $9, images = $10, updated_at = now()
WHERE id = $1 AND owner_id = $2
RETURNING ` + featureColumns

	f, err := scanFeature(r.db.QueryRowContext(ctx, q, id, ownerID,
		p.AppID, p.Name, p.Status, p.FeatureType, p.ShortDescription,
		p.FeatureSpecs, p.StoryBreakdown, pq.Array(nonNil(p.Images)),
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrFeatureNotFound
	}
	if postgres.IsForeignKeyViolation(err) {
		return nil, domain.ErrApplicationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update feature: %w", err)
	}
	return f, nil
}

// Delete removes the owner's feature; its stories cascade.
func (r *FeatureRepository) Delete(ctx context.Context, ownerID, id string) (*domain.Feature, error) {
	q := `DELETE FROM features WHERE id = $1 AND owner_id = $2 RETURNING ` + featureColumns

	f, err := scanFeature(r.db.QueryRowContext(ctx, q, id, ownerID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrFeatureNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("delete feature: %w", err)
	}
	return f, nil
}

func scanFeature(row rowScanner) (*domain.Feature, error) {
	var f domain.Feature
	err := row.Scan(
		&f.ID, &f.AppID, &f.OwnerID, &f.Name, &f.Status, &f.FeatureType, &f.ShortDescription,
		&f.FeatureSpecs, &f.StoryBreakdown, pq.Array(&f.Images), &f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	f.Images = nonNil(f.Images)
	return &f, nil
}
