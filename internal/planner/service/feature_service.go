package service

import (
	"context"
	"fmt"

	"github.com/GoSim-25-26J-441/planner-backend/internal/breakdown"
	"github.com/GoSim-25-26J-441/planner-backend/internal/planner/domain"
)

// FeatureService handles feature business logic.
type FeatureService struct {
	apps     ApplicationStore
	features FeatureStore
	tx       Transactor
	gen      generation
}

func NewFeatureService(apps ApplicationStore, features FeatureStore, tx Transactor, gen breakdown.Generator, actions ActionLogger) *FeatureService {
	return &FeatureService{
		apps:     apps,
		features: features,
		tx:       tx,
		gen:      generation{gen: gen, actions: actions},
	}
}

func (s *FeatureService) List(ctx context.Context, ownerID, appID string) ([]domain.Feature, error) {
	return s.features.ListByApp(ctx, ownerID, appID)
}

func (s *FeatureService) Get(ctx context.Context, ownerID, id string) (*domain.Feature, error) {
	return s.features.GetByID(ctx, ownerID, id)
}

func (s *FeatureService) Create(ctx context.Context, ownerID string, p domain.FeaturePayload) (*domain.Feature, error) {
	if err := domain.Validate(p); err != nil {
		return nil, err
	}
	if _, err := s.apps.GetByID(ctx, ownerID, p.AppID); err != nil {
		return nil, err
	}

	f := &domain.Feature{
		AppID:            p.AppID,
		OwnerID:          ownerID,
		Name:             p.Name,
		Status:           p.Status,
		FeatureType:      p.FeatureType,
		ShortDescription: p.ShortDescription,
		FeatureSpecs:     p.FeatureSpecs,
		StoryBreakdown:   p.StoryBreakdown,
		Images:           p.Images,
	}
	if err := s.features.Create(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

// BulkCreate generates features for an owned application and inserts all of
// them in one transaction. Any generation failure fails the call with no rows written.
func (s *FeatureService) BulkCreate(ctx context.Context, ownerID string, p domain.BulkFeaturePayload) ([]domain.Feature, error) {
	if err := domain.Validate(p); err != nil {
		return nil, err
	}
	if _, err := s.apps.GetByID(ctx, ownerID, p.AppID); err != nil {
		return nil, err
	}

	drafts, err := s.gen.run(ctx, ownerID, domain.EntityApplication, p.AppID, breakdown.Request{
		Kind:           breakdown.KindFeature,
		EntityName:     p.AppName,
		Specs:          p.Specifications,
		KnownBreakdown: p.FeatureBreakdown,
		Type:           p.Type,
	})
	if err != nil {
		return nil, &domain.GenerationError{Err: err}
	}

	features := draftsToFeatures(drafts, ownerID, p.AppID, p.Status, p.Type)
	err = s.tx.WithinTx(ctx, func(tx TxStores) error {
		for i := range features {
			if err := tx.Features.Create(ctx, &features[i]); err != nil {
				return fmt.Errorf("insert generated feature %q: %w", features[i].Name, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return features, nil
}

// Update re-checks ownership of the (possibly new) application before replacing the row.
func (s *FeatureService) Update(ctx context.Context, ownerID, id string, p domain.FeaturePayload) (*domain.Feature, error) {
	if err := domain.Validate(p); err != nil {
		return nil, err
	}
	if _, err := s.apps.GetByID(ctx, ownerID, p.AppID); err != nil {
		return nil, err
	}
	return s.features.Update(ctx, ownerID, id, p)
}

func (s *FeatureService) Delete(ctx context.Context, ownerID, id string) (*domain.Feature, error) {
	return s.features.Delete(ctx, ownerID, id)
}
