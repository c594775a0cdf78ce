package domain

import "time"

// Application is the top-level planning unit owned by a user.
type Application struct {
	ID               string    `json:"id"`
	OwnerID          string    `json:"ownerId"`
	Name             string    `json:"name"`
	Status           string    `json:"status"`
	Type             string    `json:"type"`
	ShortDescription string    `json:"shortDescription"`
	ProductSpecs     string    `json:"productSpecs"`
	FeatureBreakdown string    `json:"featureBreakdown,omitempty"`
	Images           []string  `json:"images"`
	EnrichmentStatus string    `json:"enrichmentStatus"`
	EnrichmentError  string    `json:"enrichmentError,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// Feature is a functional capability scoped to one application.
type Feature struct {
	ID               string    `json:"id"`
	AppID            string    `json:"appId"`
	OwnerID          string    `json:"ownerId"`
	Name             string    `json:"name"`
	Status           string    `json:"status"`
	FeatureType      string    `json:"featureType"`
	ShortDescription string    `json:"shortDescription"`
	FeatureSpecs     string    `json:"featureSpecs,omitempty"`
	StoryBreakdown   string    `json:"storyBreakdown,omitempty"`
	Images           []string  `json:"images"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// UserStory is a concrete requirement scoped to one feature. FeatureID is
// empty for stories that have not been attached to a feature yet.
type UserStory struct {
	ID                 string    `json:"id"`
	FeatureID          string    `json:"featureId,omitempty"`
	OwnerID            string    `json:"ownerId"`
	Name               string    `json:"name"`
	Description        string    `json:"description"`
	Status             string    `json:"status"`
	StoryType          string    `json:"storyType"`
	TechSpecType       string    `json:"techSpecType"`
	UserStory          string    `json:"userStory"`
	AcceptanceCriteria string    `json:"acceptanceCriteria"`
	TechnicalSpecs     string    `json:"technicalSpecs,omitempty"`
	TaskBreakdown      string    `json:"taskBreakdown,omitempty"`
	Images             []string  `json:"images"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// Prompt is a reusable text template keyed by type and subtype.
// OwnerID is empty for global templates.
type Prompt struct {
	ID         string    `json:"id" yaml:"-"`
	OwnerID    string    `json:"ownerId,omitempty" yaml:"-"`
	PromptType string    `json:"promptType" yaml:"type"`
	SubType    string    `json:"subType,omitempty" yaml:"subType"`
	Content    string    `json:"content" yaml:"content"`
	CreatedAt  time.Time `json:"createdAt" yaml:"-"`
	UpdatedAt  time.Time `json:"updatedAt" yaml:"-"`
}

// ActionLog records one AI-assisted action against an entity.
type ActionLog struct {
	ID         string         `json:"id"`
	OwnerID    string         `json:"ownerId"`
	Action     string         `json:"action"`
	EntityType string         `json:"entityType"`
	EntityID   string         `json:"entityId"`
	InputData  map[string]any `json:"inputData,omitempty"`
	OutputData map[string]any `json:"outputData,omitempty"`
	CreatedAt  time.Time      `json:"createdAt"`
}

const (
	// StatusRefinementNeeded is assigned to generated features.
	StatusRefinementNeeded = "Refinement Needed"

	EnrichmentNone     = "none"
	EnrichmentPending  = "pending"
	EnrichmentComplete = "complete"
	EnrichmentFailed   = "failed"

	ActionGenerate = "generate"

	EntityApplication = "application"
)

// Column widths of the VARCHAR fields; the validate tags on the payloads mirror them.
const (
	MaxNameLen  = 255
	MaxLabelLen = 50
)

// IsEnrichmentStatus reports whether s is a known enrichment status.
func IsEnrichmentStatus(s string) bool {
	switch s {
	case EnrichmentNone, EnrichmentPending, EnrichmentComplete, EnrichmentFailed:
		return true
	}
	return false
}
