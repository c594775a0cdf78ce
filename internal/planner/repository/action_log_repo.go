package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/GoSim-25-26J-441/planner-backend/internal/planner/domain"
	"github.com/GoSim-25-26J-441/planner-backend/internal/storage/postgres"
)

// ActionLogRepository appends AI action records.
type ActionLogRepository struct {
	db postgres.DBTX
}

func NewActionLogRepository(db postgres.DBTX) *ActionLogRepository {
	return &ActionLogRepository{db: db}
}

// Create inserts entry. Nil input/output maps are stored as SQL NULL.
func (r *ActionLogRepository) Create(ctx context.Context, entry *domain.ActionLog) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}

	input, err := marshalJSONB(entry.InputData)
	if err != nil {
		return fmt.Errorf("marshal input: %w", err)
	}
	output, err := marshalJSONB(entry.OutputData)
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}

	const q = `
INSERT INTO actions_log (id, owner_id, action, entity_type, entity_id, input_data, output_data)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING created_at`

	err = r.db.QueryRowContext(ctx, q,
		entry.ID, entry.OwnerID, entry.Action, entry.EntityType, nullString(entry.EntityID), input, output,
	).Scan(&entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert action log: %w", err)
	}
	return nil
}

func marshalJSONB(v map[string]any) (any, error) {
	if v == nil {
		return nil, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}
