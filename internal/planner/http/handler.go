package http

import (
	"context"

	"github.com/GoSim-25-26J-441/planner-backend/internal/planner/domain"
	"github.com/GoSim-25-26J-441/planner-backend/internal/planner/repository"
)

type ApplicationService interface {
	List(ctx context.Context, ownerID string, f repository.ApplicationFilter) ([]domain.Application, error)
	Get(ctx context.Context, ownerID, id string) (*domain.Application, error)
	Create(ctx context.Context, ownerID string, p domain.ApplicationPayload) (*domain.Application, []domain.Feature, error)
	Update(ctx context.Context, ownerID, id string, p domain.ApplicationPayload) (*domain.Application, error)
	Delete(ctx context.Context, ownerID, id string) (*domain.Application, error)
}

type FeatureService interface {
	List(ctx context.Context, ownerID, appID string) ([]domain.Feature, error)
	Get(ctx context.Context, ownerID, id string) (*domain.Feature, error)
	Create(ctx context.Context, ownerID string, p domain.FeaturePayload) (*domain.Feature, error)
	BulkCreate(ctx context.Context, ownerID string, p domain.BulkFeaturePayload) ([]domain.Feature, error)
	Update(ctx context.Context, ownerID, id string, p domain.FeaturePayload) (*domain.Feature, error)
	Delete(ctx context.Context, ownerID, id string) (*domain.Feature, error)
}

type StoryService interface {
	List(ctx context.Context, ownerID, featureID string) ([]domain.UserStory, error)
	Get(ctx context.Context, ownerID, id string) (*domain.UserStory, error)
	Create(ctx context.Context, ownerID string, p domain.UserStoryPayload) (*domain.UserStory, error)
	Update(ctx context.Context, ownerID, id string, p domain.UserStoryPayload) (*domain.UserStory, error)
	Delete(ctx context.Context, ownerID, id string) (*domain.UserStory, error)
}

// Handler serves the planner resources under /api/core.
type Handler struct {
	apps     ApplicationService
	features FeatureService
	stories  StoryService
}

func NewHandler(apps ApplicationService, features FeatureService, stories StoryService) *Handler {
	return &Handler{apps: apps, features: features, stories: stories}
}
