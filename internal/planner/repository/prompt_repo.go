package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/GoSim-25-26J-441/planner-backend/internal/planner/domain"
	"github.com/GoSim-25-26J-441/planner-backend/internal/storage/postgres"
)

// PromptRepository stores reusable prompt templates.
type PromptRepository struct {
	db postgres.DBTX
}

func NewPromptRepository(db postgres.DBTX) *PromptRepository {
	return &PromptRepository{db: db}
}

// UpsertGlobal creates or replaces the global template for (promptType, subType).
func (r *PromptRepository) UpsertGlobal(ctx context.Context, p *domain.Prompt) error {
	if p.PromptType == "" || p.Content == "" {
		return fmt.Errorf("prompt type and content required")
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}

	const q = `
INSERT INTO prompts (id, owner_id, prompt_type, sub_type, content)
VALUES ($1, NULL, $2, $3, $4)
ON CONFLICT (prompt_type, sub_type) WHERE owner_id IS NULL DO UPDATE
SET content = EXCLUDED.content, updated_at = now()
RETURNING id::text, created_at, updated_at`

	err := r.db.QueryRowContext(ctx, q, p.ID, p.PromptType, p.SubType, p.Content).
		Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upsert prompt: %w", err)
	}
	p.OwnerID = ""
	return nil
}

// List returns global templates plus those owned by ownerID (if any),
// ordered by type and subtype.
func (r *PromptRepository) List(ctx context.Context, ownerID string) ([]domain.Prompt, error) {
	const q = `
SELECT id::text, owner_id::text, prompt_type, sub_type, content, created_at, updated_at
FROM prompts
WHERE owner_id IS NULL OR owner_id::text = $1
ORDER BY prompt_type, sub_type, created_at`

	rows, err := r.db.QueryContext(ctx, q, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list prompts: %w", err)
	}
	defer rows.Close()

	var out []domain.Prompt
	for rows.Next() {
		var (
			p     domain.Prompt
			owner sql.NullString
		)
		if err := rows.Scan(&p.ID, &owner, &p.PromptType, &p.SubType, &p.Content, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan prompt: %w", err)
		}
		p.OwnerID = owner.String
		out = append(out, p)
	}
	return out, rows.Err()
}
