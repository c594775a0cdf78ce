package users

import (
	"context"
	"fmt"

	"github.com/GoSim-25-26J-441/planner-backend/internal/storage/postgres"
)

type Repo struct {
	db postgres.DBTX
}

func NewRepo(db postgres.DBTX) *Repo {
	return &Repo{db: db}
}

type UpsertUser struct {
	ExternalUID string
	Email       string
	DisplayName string
}

// EnsureUser upserts the user keyed by its identity-provider subject and
// returns the internal users.id.
func (r *Repo) EnsureUser(ctx context.Context, u UpsertUser) (string, error) {
	if u.ExternalUID == "" {
		return "", fmt.Errorf("external_uid required")
	}

	const q = `
insert into users (external_uid, email, display_name, updated_at)
values ($1, nullif($2,''), nullif($3,''), now())
on conflict (external_uid) do update
set
  email = coalesce(excluded.email, users.email),
  display_name = coalesce(excluded.display_name, users.display_name),
  updated_at = now()
returning id::text;
`
	var id string
	if err := r.db.QueryRowContext(ctx, q, u.ExternalUID, u.Email, u.DisplayName).Scan(&id); err != nil {
		return "", fmt.Errorf("ensure user: %w", err)
	}
	return id, nil
}
