package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoSim-25-26J-441/planner-backend/internal/planner/domain"
)

const storyID = "1c2d3e4f-5a6b-4c7d-8e9f-a0b1c2d3e4f5"

var storyCols = []string{
	"id", "feature_id", "owner_id", "name", "description", "status", "story_type", "tech_spec_type",
	"user_story", "acceptance_criteria", "technical_specs", "task_breakdown", "images", "created_at", "updated_at",
}

func loginStoryRow(featureID any) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(storyCols).AddRow(
		storyID, featureID, ownerID, "Login", "User can log into the app", "Todo", "Feature", "API",
		"As a user I want to log in", "Given valid credentials the user is logged in", "", "", "{}", now, now,
	)
}

func TestStoryRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewStoryRepository(db)

	s := &domain.UserStory{
		OwnerID:            ownerID,
		Name:               "Login",
		Description:        "User can log into the app",
		Status:             "Todo",
		StoryType:          "Feature",
		TechSpecType:       "API",
		UserStory:          "As a user I want to log in",
		AcceptanceCriteria: "Given valid credentials the user is logged in",
	}

	// a story without a feature stores NULL and an empty image list
	mock.ExpectQuery(`INSERT INTO user_stories`).
		WithArgs(sqlmock.AnyArg(), nil, ownerID, "Login", s.Description, "Todo", "Feature", "API",
			s.UserStory, s.AcceptanceCriteria, "", "", "{}").
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(time.Now(), time.Now()))

	require.NoError(t, repo.Create(context.Background(), s))
	assert.NotEmpty(t, s.ID)
	assert.Equal(t, []string{}, s.Images)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStoryRepository_Reads(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewStoryRepository(db)

	mock.ExpectQuery(`FROM user_stories WHERE feature_id = \$1 AND owner_id = \$2 ORDER BY created_at DESC`).
		WithArgs(featureID, ownerID).
		WillReturnRows(loginStoryRow(featureID))
	list, err := repo.ListByFeature(context.Background(), ownerID, featureID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, featureID, list[0].FeatureID)

	mock.ExpectQuery(`FROM user_stories WHERE id = \$1 AND owner_id = \$2`).
		WithArgs(storyID, ownerID).
		WillReturnRows(loginStoryRow(nil))
	s, err := repo.GetByID(context.Background(), ownerID, storyID)
	require.NoError(t, err)
	assert.Empty(t, s.FeatureID)

	mock.ExpectQuery(`FROM user_stories WHERE id = \$1`).WillReturnError(sql.ErrNoRows)
	_, err = repo.GetByID(context.Background(), "other", storyID)
	assert.ErrorIs(t, err, domain.ErrStoryNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStoryRepository_UpdateDelete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewStoryRepository(db)

	p := domain.UserStoryPayload{
		Name:               "Login",
		Description:        "User can log into the app",
		Status:             "Done",
		StoryType:          "Feature",
		TechSpecType:       "API",
		UserStory:          "As a user I want to log in",
		AcceptanceCriteria: "Given valid credentials the user is logged in",
		FeatureID:          featureID,
	}

	mock.ExpectQuery(`UPDATE user_stories`).
		WithArgs(storyID, ownerID, featureID, "Login", p.Description, "Done", "Feature", "API",
			p.UserStory, p.AcceptanceCriteria, "", "", "{}").
		WillReturnRows(loginStoryRow(featureID))
	_, err = repo.Update(context.Background(), ownerID, storyID, p)
	require.NoError(t, err)

	mock.ExpectQuery(`UPDATE user_stories`).WillReturnError(sql.ErrNoRows)
	_, err = repo.Update(context.Background(), ownerID, storyID, p)
	assert.ErrorIs(t, err, domain.ErrStoryNotFound)

	mock.ExpectQuery(`DELETE FROM user_stories WHERE id = \$1 AND owner_id = \$2`).
		WithArgs(storyID, ownerID).
		WillReturnRows(loginStoryRow(featureID))
	deleted, err := repo.Delete(context.Background(), ownerID, storyID)
	require.NoError(t, err)
	assert.Equal(t, storyID, deleted.ID)

	require.NoError(t, mock.ExpectationsWereMet())
}
