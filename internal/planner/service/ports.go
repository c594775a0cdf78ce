package service

import (
	"context"
	"database/sql"

	"github.com/GoSim-25-26J-441/planner-backend/internal/planner/domain"
	"github.com/GoSim-25-26J-441/planner-backend/internal/planner/repository"
	"github.com/GoSim-25-26J-441/planner-backend/internal/storage/postgres"
)

type ApplicationStore interface {
	Create(ctx context.Context, app *domain.Application) error
	GetByID(ctx context.Context, ownerID, id string) (*domain.Application, error)
	List(ctx context.Context, ownerID string, f repository.ApplicationFilter) ([]domain.Application, error)
	Update(ctx context.Context, ownerID, id string, p domain.ApplicationPayload) (*domain.Application, error)
	Delete(ctx context.Context, ownerID, id string) (*domain.Application, error)
	SetEnrichment(ctx context.Context, id, status, errText string) error
}

type FeatureStore interface {
	Create(ctx context.Context, f *domain.Feature) error
	GetByID(ctx context.Context, ownerID, id string) (*domain.Feature, error)
	ListByApp(ctx context.Context, ownerID, appID string) ([]domain.Feature, error)
	Update(ctx context.Context, ownerID, id string, p domain.FeaturePayload) (*domain.Feature, error)
	Delete(ctx context.Context, ownerID, id string) (*domain.Feature, error)
}

type StoryStore interface {
	Create(ctx context.Context, s *domain.UserStory) error
	GetByID(ctx context.Context, ownerID, id string) (*domain.UserStory, error)
	ListByFeature(ctx context.Context, ownerID, featureID string) ([]domain.UserStory, error)
	Update(ctx context.Context, ownerID, id string, p domain.UserStoryPayload) (*domain.UserStory, error)
	Delete(ctx context.Context, ownerID, id string) (*domain.UserStory, error)
}

type ActionLogger interface {
	Create(ctx context.Context, entry *domain.ActionLog) error
}

type FeatureCreator interface {
	Create(ctx context.Context, f *domain.Feature) error
}

type EnrichmentSetter interface {
	SetEnrichment(ctx context.Context, id, status, errText string) error
}

// TxStores are the writers bound to a single transaction.
type TxStores struct {
	Features     FeatureCreator
	Applications EnrichmentSetter
}

// Transactor runs fn inside one database transaction.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(tx TxStores) error) error
}

type sqlTransactor struct {
	db *sql.DB
}

func NewSQLTransactor(db *sql.DB) Transactor {
	return &sqlTransactor{db: db}
}

func (t *sqlTransactor) WithinTx(ctx context.Context, fn func(tx TxStores) error) error {
	return postgres.WithTx(ctx, t.db, func(tx *sql.Tx) error {
		return fn(TxStores{
			Features:     repository.NewFeatureRepository(t.db).WithTx(tx),
			Applications: repository.NewApplicationRepository(t.db).WithTx(tx),
		})
	})
}
