package domain

// ApplicationPayload is the full document accepted by application create and update.
type ApplicationPayload struct {
	Name             string   `json:"name" validate:"min=2,max=255"`
	Status           string   `json:"status" validate:"required,max=50"`
	Type             string   `json:"type" validate:"required,max=50"`
	ShortDescription string   `json:"shortDescription" validate:"min=10"`
	ProductSpecs     string   `json:"productSpecs" validate:"min=20"`
	FeatureBreakdown string   `json:"featureBreakdown"`
	Images           []string `json:"images" validate:"omitempty,dive,url"`
}

// FeaturePayload is the full document accepted by feature create and update.
type FeaturePayload struct {
	Name             string   `json:"name" validate:"min=2,max=255"`
	Status           string   `json:"status" validate:"required,max=50"`
	FeatureType      string   `json:"featureType" validate:"required,max=50"`
	ShortDescription string   `json:"shortDescription" validate:"min=10"`
	FeatureSpecs     string   `json:"featureSpecs"`
	StoryBreakdown   string   `json:"storyBreakdown"`
	AppID            string   `json:"appId" validate:"required,uuid"`
	Images           []string `json:"images" validate:"omitempty,dive,url"`
}

// BulkFeaturePayload asks the breakdown generator to draft features for an application.
type BulkFeaturePayload struct {
	AppName          string `json:"appName" validate:"required"`
	Status           string `json:"status" validate:"required,max=50"`
	Type             string `json:"type" validate:"required,max=50"`
	Specifications   string `json:"specifications" validate:"required"`
	FeatureBreakdown string `json:"featureBreakdown" validate:"required"`
	AppID            string `json:"appId" validate:"required,uuid"`
}

// UserStoryPayload is the full document accepted by story create and update.
type UserStoryPayload struct {
	Name               string   `json:"name" validate:"min=2,max=255"`
	Description        string   `json:"description" validate:"min=10"`
	Status             string   `json:"status" validate:"required,max=50"`
	StoryType          string   `json:"storyType" validate:"required,max=50"`
	TechSpecType       string   `json:"techSpecType" validate:"required,max=50"`
	UserStory          string   `json:"userStory" validate:"min=10"`
	AcceptanceCriteria string   `json:"acceptanceCriteria" validate:"min=10"`
	TechnicalSpecs     string   `json:"technicalSpecs"`
	TaskBreakdown      string   `json:"taskBreakdown"`
	FeatureID          string   `json:"featureId" validate:"omitempty,uuid"`
	Images             []string `json:"images" validate:"omitempty,dive,url"`
}
