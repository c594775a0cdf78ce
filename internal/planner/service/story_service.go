package service

import (
	"context"

	"github.com/GoSim-25-26J-441/planner-backend/internal/planner/domain"
)

// StoryService handles user story business logic. Every operation is owner scoped.
type StoryService struct {
	features FeatureStore
	stories  StoryStore
}

func NewStoryService(features FeatureStore, stories StoryStore) *StoryService {
	return &StoryService{features: features, stories: stories}
}

func (s *StoryService) List(ctx context.Context, ownerID, featureID string) ([]domain.UserStory, error) {
	return s.stories.ListByFeature(ctx, ownerID, featureID)
}

func (s *StoryService) Get(ctx context.Context, ownerID, id string) (*domain.UserStory, error) {
	return s.stories.GetByID(ctx, ownerID, id)
}

func (s *StoryService) Create(ctx context.Context, ownerID string, p domain.UserStoryPayload) (*domain.UserStory, error) {
	if err := s.check(ctx, ownerID, p); err != nil {
		return nil, err
	}

	story := &domain.UserStory{
		FeatureID:          p.FeatureID,
		OwnerID:            ownerID,
		Name:               p.Name,
		Description:        p.Description,
		Status:             p.Status,
		StoryType:          p.StoryType,
		TechSpecType:       p.TechSpecType,
		UserStory:          p.UserStory,
		AcceptanceCriteria: p.AcceptanceCriteria,
		TechnicalSpecs:     p.TechnicalSpecs,
		TaskBreakdown:      p.TaskBreakdown,
		Images:             []string{},
	}
	if err := s.stories.Create(ctx, story); err != nil {
		return nil, err
	}
	return story, nil
}

func (s *StoryService) Update(ctx context.Context, ownerID, id string, p domain.UserStoryPayload) (*domain.UserStory, error) {
	if err := s.check(ctx, ownerID, p); err != nil {
		return nil, err
	}
	return s.stories.Update(ctx, ownerID, id, p)
}

func (s *StoryService) Delete(ctx context.Context, ownerID, id string) (*domain.UserStory, error) {
	return s.stories.Delete(ctx, ownerID, id)
}

// check validates p and, when it names a feature, that the feature is the caller's.
func (s *StoryService) check(ctx context.Context, ownerID string, p domain.UserStoryPayload) error {
	if err := domain.Validate(p); err != nil {
		return err
	}
	if p.FeatureID == "" {
		return nil
	}
	_, err := s.features.GetByID(ctx, ownerID, p.FeatureID)
	return err
}
