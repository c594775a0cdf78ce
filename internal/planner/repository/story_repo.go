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

const storyColumns = `id::text, feature_id::text, owner_id::text, name, description, status, story_type,
	tech_spec_type, user_story, acceptance_criteria, technical_specs, task_breakdown, images,
	created_at, updated_at`

// StoryRepository provides persistence operations for user stories.
type StoryRepository struct {
	db postgres.DBTX
}

func NewStoryRepository(db postgres.DBTX) *StoryRepository {
	return &StoryRepository{db: db}
}

// Create inserts s, assigning its ID when empty and filling the timestamps.
func (r *StoryRepository) Create(ctx context.Context, s *domain.UserStory) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	s.Images = nonNil(s.Images)

	const q = `
INSERT INTO user_stories (id, feature_id, owner_id, name, description, status, story_type,
	tech_spec_type, user_story, acceptance_criteria, technical_specs, task_breakdown, images)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
RETURNING created_at, updated_at`

	err := r.db.QueryRowContext(ctx, q,
		s.ID, nullString(s.FeatureID), s.OwnerID, s.Name, s.Description, s.Status, s.StoryType,
		s.TechSpecType, s.UserStory, s.AcceptanceCriteria, s.TechnicalSpecs, s.TaskBreakdown, pq.Array(s.Images),
	).Scan(&s.CreatedAt, &s.UpdatedAt)
	if postgres.IsForeignKeyViolation(err) {
		return domain.ErrFeatureNotFound
	}
	if err != nil {
		return fmt.Errorf("insert user story: %w", err)
	}
	return nil
}

// GetByID returns the story when it exists and belongs to ownerID.
func (r *StoryRepository) GetByID(ctx context.Context, ownerID, id string) (*domain.UserStory, error) {
	q := `SELECT ` + storyColumns + ` FROM user_stories WHERE id = $1 AND owner_id = $2`

	s, err := scanStory(r.db.QueryRowContext(ctx, q, id, ownerID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrStoryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user story: %w", err)
	}
	return s, nil
}

// ListByFeature returns the owner's stories of one feature, newest first.
func (r *StoryRepository) ListByFeature(ctx context.Context, ownerID, featureID string) ([]domain.UserStory, error) {
	q := `SELECT ` + storyColumns + ` FROM user_stories WHERE feature_id = $1 AND owner_id = $2 ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, q, featureID, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list user stories: %w", err)
	}
	defer rows.Close()

	out := make([]domain.UserStory, 0, 16)
	for rows.Next() {
		s, err := scanStory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user story: %w", err)
		}
		out = append(out, *s)
	}
	return out, rows.Err()
}

// Update replaces every mutable field of the owner's story.
func (r *StoryRepository) Update(ctx context.Context, ownerID, id string, p domain.UserStoryPayload) (*domain.UserStory, error) {
	q := `
UPDATE user_stories
SET feature_id = $3, name = $4, description = $5, status = $6, story_type = $7, tech_spec_type = $8,
	user_story = $9, acceptance_criteria = $10, technical_specs = $11, task_breakdown = $12,
	images = $13, updated_at = now()
WHERE id = $1 AND owner_id = $2
RETURNING ` + storyColumns

	s, err := scanStory(r.db.QueryRowContext(ctx, q, id, ownerID,
		nullString(p.FeatureID), p.Name, p.Description, p.Status, p.StoryType, p.TechSpecType,
		p.UserStory, p.AcceptanceCriteria, p.TechnicalSpecs, p.TaskBreakdown, pq.Array(nonNil(p.Images)),
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrStoryNotFound
	}
	if postgres.IsForeignKeyViolation(err) {
		return nil, domain.ErrFeatureNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update user story: %w", err)
	}
	return s, nil
}

// Delete removes the owner's story.
func (r *StoryRepository) Delete(ctx context.Context, ownerID, id string) (*domain.UserStory, error) {
	q := `DELETE FROM user_stories WHERE id = $1 AND owner_id = $2 RETURNING ` + storyColumns

	s, err := scanStory(r.db.QueryRowContext(ctx, q, id, ownerID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrStoryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("delete user story: %w", err)
	}
	return s, nil
}

func scanStory(row rowScanner) (*domain.UserStory, error) {
	var (
		s         domain.UserStory
		featureID sql.NullString
	)
	err := row.Scan(
		&s.ID, &featureID, &s.OwnerID, &s.Name, &s.Description, &s.Status, &s.StoryType,
		&s.TechSpecType, &s.UserStory, &s.AcceptanceCriteria, &s.TechnicalSpecs, &s.TaskBreakdown,
		pq.Array(&s.Images), &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	s.FeatureID = featureID.String
	s.Images = nonNil(s.Images)
	return &s, nil
}
