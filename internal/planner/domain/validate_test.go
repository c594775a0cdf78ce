package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validApplication() ApplicationPayload {
	return ApplicationPayload{
		Name:             "Todo",
		Status:           StatusRefinementNeeded,
		Type:             "web",
		ShortDescription: "A simple todo app for tasks",
		ProductSpecs:     "Allows users to add, edit, delete, and complete tasks",
	}
}

func TestValidate_Application(t *testing.T) {
	t.Run("accepts a valid payload", func(t *testing.T) {
		assert.NoError(t, Validate(validApplication()))
	})

	t.Run("rejects short description under 10 characters", func(t *testing.T) {
		p := validApplication()
		p.ShortDescription = "too short"

		err := Validate(p)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, []string{"Description must be at least 10 characters."}, verr.Messages)
	})

	t.Run("reports every failing field in order", func(t *testing.T) {
		err := Validate(ApplicationPayload{Name: "x"})
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, []string{
			"Name must be at least 2 characters.",
			"Please select a status.",
			"Please select an app type.",
			"Description must be at least 10 characters.",
			"Product specs must be at least 20 characters.",
		}, verr.Messages)
		assert.True(t, strings.HasPrefix(err.Error(), "Name must be at least 2 characters., Please select a status."))
	})

	t.Run("rejects malformed image urls once", func(t *testing.T) {
		p := validApplication()
		p.Images = []string{"not a url", "also bad"}

		err := Validate(p)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, []string{"Images must be valid URLs."}, verr.Messages)
	})
}

func TestValidate_Feature(t *testing.T) {
	p := FeaturePayload{
		Name:             "Auth",
		Status:           "Todo",
		FeatureType:      "Backend",
		ShortDescription: "Sign in with email and password",
		AppID:            "not-a-uuid",
	}

	err := Validate(p)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"Valid application ID is required."}, verr.Messages)

	p.AppID = "6f1c2b8e-3a4d-4e5f-8a9b-0c1d2e3f4a5b"
	assert.NoError(t, Validate(p))
}

func TestValidate_UserStory(t *testing.T) {
	p := UserStoryPayload{
		Name:               "Login",
		Description:        "User can log into the app",
		Status:             "Todo",
		StoryType:          "Feature",
		TechSpecType:       "API",
		UserStory:          "As a user I want to log in",
		AcceptanceCriteria: "Given valid credentials the user is logged in",
	}
	assert.NoError(t, Validate(p), "featureId is optional")

	p.FeatureID = "123"
	p.AcceptanceCriteria = "short"
	err := Validate(p)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{
		"Acceptance criteria must be at least 10 characters.",
		"Valid feature ID is required.",
	}, verr.Messages)
}

func TestValidate_BulkFeature(t *testing.T) {
	err := Validate(BulkFeaturePayload{AppName: "Todo"})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Messages, "Feature breakdown is required.")
	assert.Contains(t, verr.Messages, "Valid application ID is required.")
}

func TestIsEnrichmentStatus(t *testing.T) {
	for _, s := range []string{EnrichmentNone, EnrichmentPending, EnrichmentComplete, EnrichmentFailed} {
		assert.True(t, IsEnrichmentStatus(s), s)
	}
	assert.False(t, IsEnrichmentStatus("done"))
}

func TestValidate_ColumnLimits(t *testing.T) {
	long := func(n int) string { return strings.Repeat("x", n) }

	t.Run("application", func(t *testing.T) {
		p := validApplication()
		p.Name = long(MaxNameLen)
		p.Status = long(MaxLabelLen)
		p.Type = long(MaxLabelLen)
		assert.NoError(t, Validate(p), "exact column widths fit")

		p.Name = long(MaxNameLen + 1)
		p.Status = long(MaxLabelLen + 1)
		p.Type = long(MaxLabelLen + 1)
		err := Validate(p)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, []string{
			"Name must be at most 255 characters.",
			"Status must be at most 50 characters.",
			"Type must be at most 50 characters.",
		}, verr.Messages)
	})

	t.Run("feature", func(t *testing.T) {
		p := FeaturePayload{
			Name:             long(300),
			Status:           "Todo",
			FeatureType:      long(60),
			ShortDescription: "Sign in with email and password",
			AppID:            "6f1c2b8e-3a4d-4e5f-8a9b-0c1d2e3f4a5b",
		}
		err := Validate(p)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, []string{
			"Name must be at most 255 characters.",
			"Feature type must be at most 50 characters.",
		}, verr.Messages)
	})

	t.Run("user story", func(t *testing.T) {
		p := UserStoryPayload{
			Name:               "Login",
			Description:        "User can log into the app",
			Status:             long(51),
			StoryType:          long(80),
			TechSpecType:       long(51),
			UserStory:          "As a user I want to log in",
			AcceptanceCriteria: "Given valid credentials the user is logged in",
		}
		err := Validate(p)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, []string{
			"Status must be at most 50 characters.",
			"Story type must be at most 50 characters.",
			"Technical specification type must be at most 50 characters.",
		}, verr.Messages)
	})

	t.Run("bulk feature", func(t *testing.T) {
		p := BulkFeaturePayload{
			AppName:          "Todo",
			Status:           long(51),
			Type:             long(51),
			Specifications:   "Users create tasks",
			FeatureBreakdown: "auth, lists",
			AppID:            "6f1c2b8e-3a4d-4e5f-8a9b-0c1d2e3f4a5b",
		}
		err := Validate(p)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, []string{
			"Status must be at most 50 characters.",
			"Type must be at most 50 characters.",
		}, verr.Messages)
	})
}
