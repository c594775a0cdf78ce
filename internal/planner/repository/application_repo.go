package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/GoSim-25-26J-441/planner-backend/internal/planner/domain"
	"github.com/GoSim-25-26J-441/planner-backend/internal/storage/postgres"
)

const applicationColumns = `id::text, owner_id::text, name, status, type, short_description, product_specs,
	feature_breakdown, images, enrichment_status, enrichment_error, created_at, updated_at`

// ApplicationFilter narrows List. Zero values mean "no filter".
type ApplicationFilter struct {
	ID               string
	EnrichmentStatus string
}

// ApplicationRepository provides persistence operations for applications.
type ApplicationRepository struct {
	db postgres.DBTX
}

func NewApplicationRepository(db postgres.DBTX) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

// WithTx returns a repository bound to tx.
func (r *ApplicationRepository) WithTx(tx *sql.Tx) *ApplicationRepository {
	return &ApplicationRepository{db: tx}
}

// Create inserts app, assigning its ID when empty and filling the timestamps.
func (r *ApplicationRepository) Create(ctx context.Context, app *domain.Application) error {
	if app.ID == "" {
		app.ID = uuid.NewString()
	}
	if app.EnrichmentStatus == "" {
		app.EnrichmentStatus = domain.EnrichmentNone
	}
	app.Images = nonNil(app.Images)

	const q = `
INSERT INTO applications (id, owner_id, name, status, type, short_description, product_specs,
	feature_breakdown, images, enrichment_status, enrichment_error)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
RETURNING created_at, updated_at`

	err := r.db.QueryRowContext(ctx, q,
		app.ID, app.OwnerID, app.Name, app.Status, app.Type, app.ShortDescription, app.ProductSpecs,
		app.FeatureBreakdown, pq.Array(app.Images), app.EnrichmentStatus, app.EnrichmentError,
	).Scan(&app.CreatedAt, &app.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert application: %w", err)
	}
	return nil
}

// GetByID returns the application when it exists and belongs to ownerID.
func (r *ApplicationRepository) GetByID(ctx context.Context, ownerID, id string) (*domain.Application, error) {
	q := `SELECT ` + applicationColumns + ` FROM applications WHERE id = $1 AND owner_id = $2`

	app, err := scanApplication(r.db.QueryRowContext(ctx, q, id, ownerID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrApplicationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get application: %w", err)
	}
	return app, nil
}

// List returns the owner's applications, newest first.
func (r *ApplicationRepository) List(ctx context.Context, ownerID string, f ApplicationFilter) ([]domain.Application, error) {
	where := []string{"owner_id = $1"}
	args := []any{ownerID}
	if f.ID != "" {
		args = append(args, f.ID)
		where = append(where, fmt.Sprintf("id = $%d", len(args)))
	}
	if f.EnrichmentStatus != "" {
		args = append(args, f.EnrichmentStatus)
		where = append(where, fmt.Sprintf("enrichment_status = $%d", len(args)))
	}

	q := `SELECT ` + applicationColumns + ` FROM applications WHERE ` +
		strings.Join(where, " AND ") + ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Application, 0, 16)
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, fmt.Errorf("scan application: %w", err)
		}
		out = append(out, *app)
	}
	return out, rows.Err()
}

// Update replaces every mutable field of the owner's application.
func (r *ApplicationRepository) Update(ctx context.Context, ownerID, id string, p domain.ApplicationPayload) (*domain.Application, error) {
	q := `
UPDATE applications
SET name = $3, status = $4, type = $5, short_description = $6, product_specs = $7,
	feature_breakdown = $8, images = $9, updated_at = now()
WHERE id = $1 AND owner_id = $2
RETURNING ` + applicationColumns

	app, err := scanApplication(r.db.QueryRowContext(ctx, q, id, ownerID,
		p.Name, p.Status, p.Type, p.ShortDescription, p.ProductSpecs, p.FeatureBreakdown, pq.Array(nonNil(p.Images)),
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrApplicationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update application: %w", err)
	}
	return app, nil
}

// Delete removes the owner's application; features and stories cascade.
func (r *ApplicationRepository) Delete(ctx context.Context, ownerID, id string) (*domain.Application, error) {
	q := `DELETE FROM applications WHERE id = $1 AND owner_id = $2 RETURNING ` + applicationColumns

	app, err := scanApplication(r.db.QueryRowContext(ctx, q, id, ownerID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrApplicationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("delete application: %w", err)
	}
	return app, nil
}

// SetEnrichment records the outcome of breakdown generation for an application.
func (r *ApplicationRepository) SetEnrichment(ctx context.Context, id, status, errText string) error {
	const q = `
UPDATE applications
SET enrichment_status = $2, enrichment_error = $3, updated_at = now()
WHERE id = $1`

	res, err := r.db.ExecContext(ctx, q, id, status, errText)
	if err != nil {
		return fmt.Errorf("set enrichment: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrApplicationNotFound
	}
	return nil
}

// FailStaleEnrichments marks applications left pending since before cutoff as failed.
func (r *ApplicationRepository) FailStaleEnrichments(ctx context.Context, cutoff time.Time, errText string) (int64, error) {
	const q = `
UPDATE applications
SET enrichment_status = $1, enrichment_error = $2, updated_at = now()
WHERE enrichment_status = $3 AND updated_at < $4`

	res, err := r.db.ExecContext(ctx, q, domain.EnrichmentFailed, errText, domain.EnrichmentPending, cutoff)
	if err != nil {
		return 0, fmt.Errorf("fail stale enrichments: %w", err)
	}
	return res.RowsAffected()
}

func scanApplication(row rowScanner) (*domain.Application, error) {
	var a domain.Application
	err := row.Scan(
		&a.ID, &a.OwnerID, &a.Name, &a.Status, &a.Type, &a.ShortDescription, &a.ProductSpecs,
		&a.FeatureBreakdown, pq.Array(&a.Images), &a.EnrichmentStatus, &a.EnrichmentError,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	a.Images = nonNil(a.Images)
	return &a, nil
}
