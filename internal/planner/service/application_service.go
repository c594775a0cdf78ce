package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/GoSim-25-26J-441/planner-backend/internal/breakdown"
	"github.com/GoSim-25-26J-441/planner-backend/internal/logging"
	"github.com/GoSim-25-26J-441/planner-backend/internal/planner/domain"
	"github.com/GoSim-25-26J-441/planner-backend/internal/planner/repository"
)

// ApplicationService handles application business logic, including the
// optional feature enrichment that follows a create.
type ApplicationService struct {
	apps ApplicationStore
	tx   Transactor
	gen  generation
}

func NewApplicationService(apps ApplicationStore, tx Transactor, gen breakdown.Generator, actions ActionLogger) *ApplicationService {
	return &ApplicationService{
		apps: apps,
		tx:   tx,
		gen:  generation{gen: gen, actions: actions},
	}
}

func (s *ApplicationService) List(ctx context.Context, ownerID string, f repository.ApplicationFilter) ([]domain.Application, error) {
	return s.apps.List(ctx, ownerID, f)
}

func (s *ApplicationService) Get(ctx context.Context, ownerID, id string) (*domain.Application, error) {
	return s.apps.GetByID(ctx, ownerID, id)
}

// Create inserts the application and, when a feature breakdown is supplied,
// generates its features. The application row is committed before generation;
// a generation failure marks it failed and is returned as a committed
// *domain.GenerationError together with the application.
func (s *ApplicationService) Create(ctx context.Context, ownerID string, p domain.ApplicationPayload) (*domain.Application, []domain.Feature, error) {
	if err := domain.Validate(p); err != nil {
		return nil, nil, err
	}

	app := &domain.Application{
		OwnerID:          ownerID,
		Name:             p.Name,
		Status:           p.Status,
		Type:             p.Type,
		ShortDescription: p.ShortDescription,
		ProductSpecs:     p.ProductSpecs,
		FeatureBreakdown: p.FeatureBreakdown,
		Images:           p.Images,
		EnrichmentStatus: domain.EnrichmentNone,
	}
	if p.FeatureBreakdown != "" {
		app.EnrichmentStatus = domain.EnrichmentPending
	}

	if err := s.apps.Create(ctx, app); err != nil {
		return nil, nil, err
	}
	if app.EnrichmentStatus == domain.EnrichmentNone {
		return app, []domain.Feature{}, nil
	}

	features, err := s.enrich(ctx, app)
	if err != nil {
		s.markFailed(ctx, app, err)
		return app, nil, &domain.GenerationError{Err: err, Committed: true}
	}

	app.EnrichmentStatus = domain.EnrichmentComplete
	return app, features, nil
}

func (s *ApplicationService) enrich(ctx context.Context, app *domain.Application) ([]domain.Feature, error) {
	drafts, err := s.gen.run(ctx, app.OwnerID, domain.EntityApplication, app.ID, breakdown.Request{
		Kind:             breakdown.KindApplication,
		EntityName:       app.Name,
		ShortDescription: app.ShortDescription,
		Specs:            app.ProductSpecs,
		KnownBreakdown:   app.FeatureBreakdown,
	})
	if err != nil {
		return nil, err
	}

	features := draftsToFeatures(drafts, app.OwnerID, app.ID, domain.StatusRefinementNeeded, "")
	err = s.tx.WithinTx(ctx, func(tx TxStores) error {
		for i := range features {
			if err := tx.Features.Create(ctx, &features[i]); err != nil {
				return fmt.Errorf("insert generated feature %q: %w", features[i].Name, err)
			}
		}
		return tx.Applications.SetEnrichment(ctx, app.ID, domain.EnrichmentComplete, "")
	})
	if err != nil {
		return nil, err
	}
	return features, nil
}

// markFailed records the failure even when the request context is already done;
// the sweeper covers the case where this write is lost as well.
func (s *ApplicationService) markFailed(ctx context.Context, app *domain.Application, cause error) {
	app.EnrichmentStatus = domain.EnrichmentFailed
	app.EnrichmentError = cause.Error()

	if err := s.apps.SetEnrichment(context.WithoutCancel(ctx), app.ID, domain.EnrichmentFailed, app.EnrichmentError); err != nil {
		logging.FromContext(ctx).Error("mark enrichment failed",
			zap.String("app_id", app.ID),
			zap.Error(err),
		)
	}
}

func (s *ApplicationService) Update(ctx context.Context, ownerID, id string, p domain.ApplicationPayload) (*domain.Application, error) {
	if err := domain.Validate(p); err != nil {
		return nil, err
	}
	return s.apps.Update(ctx, ownerID, id, p)
}

func (s *ApplicationService) Delete(ctx context.Context, ownerID, id string) (*domain.Application, error) {
	return s.apps.Delete(ctx, ownerID, id)
}
