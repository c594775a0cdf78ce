package service

import (
	"context"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/GoSim-25-26J-441/planner-backend/internal/breakdown"
	"github.com/GoSim-25-26J-441/planner-backend/internal/logging"
	"github.com/GoSim-25-26J-441/planner-backend/internal/planner/domain"
)

// generation calls the breakdown generator and appends an action log entry.
// Action log failures are logged and otherwise ignored.
type generation struct {
	gen     breakdown.Generator
	actions ActionLogger
}

func (g generation) run(ctx context.Context, ownerID, entityType, entityID string, req breakdown.Request) ([]breakdown.Draft, error) {
	drafts, err := g.gen.Generate(ctx, req)

	entry := &domain.ActionLog{
		OwnerID:    ownerID,
		Action:     domain.ActionGenerate,
		EntityType: entityType,
		EntityID:   entityID,
		InputData: map[string]any{
			"kind":             string(req.Kind),
			"entityName":       req.EntityName,
			"shortDescription": req.ShortDescription,
			"specs":            req.Specs,
			"knownBreakdown":   req.KnownBreakdown,
			"type":             req.Type,
		},
	}
	if err != nil {
		entry.OutputData = map[string]any{"error": err.Error()}
	} else {
		entry.OutputData = map[string]any{"drafts": drafts}
	}

	if logErr := g.actions.Create(context.WithoutCancel(ctx), entry); logErr != nil {
		logging.FromContext(ctx).Warn("action log write failed",
			zap.String("entity_type", entityType),
			zap.String("entity_id", entityID),
			zap.Error(logErr),
		)
	}
	return drafts, err
}

func draftsToFeatures(drafts []breakdown.Draft, ownerID, appID, status, featureType string) []domain.Feature {
	out := make([]domain.Feature, 0, len(drafts))
	for _, d := range drafts {
		out = append(out, domain.Feature{
			AppID:            appID,
			OwnerID:          ownerID,
			Name:             clamp(d.Name, domain.MaxNameLen),
			Status:           status,
			FeatureType:      featureType,
			ShortDescription: d.Description,
			FeatureSpecs:     d.TechnicalDetail,
			Images:           []string{},
		})
	}
	return out
}

// clamp cuts s to at most n runes so a long generated name still fits its column.
func clamp(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
