package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillswap/skillswap-api/internal/models"
)

func TestUserSkillRepositoryUpsertInsert(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewUserSkillRepository(db)

	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{"id", "created_at"}).AddRow("us1", now)
	mock.ExpectQuery(regexp.QuoteMeta("ON CONFLICT (user_id, skill_id)")).
		WithArgs(sqlmock.AnyArg(), "u1", "s1", true, models.LevelBeginner, sqlmock.AnyArg()).
		WillReturnRows(rows)

	assignment := &models.UserSkill{
		UserID:          "u1",
		SkillID:         "s1",
		CanTeach:        true,
		ExperienceLevel: models.LevelBeginner,
	}
	require.NoError(t, repo.Upsert(context.Background(), assignment))
	assert.Equal(t, "us1", assignment.ID)
	assert.Equal(t, now, assignment.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserSkillRepositoryUpsertOverwrite(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewUserSkillRepository(db)

	// The conflicting row wins: the pre-existing id and created_at come back.
	original := time.Now().UTC().Add(-24 * time.Hour)
	rows := sqlmock.NewRows([]string{"id", "created_at"}).AddRow("us-old", original)
	mock.ExpectQuery(regexp.QuoteMeta("ON CONFLICT (user_id, skill_id)")).
		WithArgs(sqlmock.AnyArg(), "u1", "s1", false, models.LevelAdvanced, sqlmock.AnyArg()).
		WillReturnRows(rows)

	assignment := &models.UserSkill{
		UserID:          "u1",
		SkillID:         "s1",
		CanTeach:        false,
		ExperienceLevel: models.LevelAdvanced,
	}
	require.NoError(t, repo.Upsert(context.Background(), assignment))
	assert.Equal(t, "us-old", assignment.ID)
	assert.Equal(t, original, assignment.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserSkillRepositoryListByUser(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewUserSkillRepository(db)

	rows := sqlmock.NewRows([]string{"id", "skill_id", "skill_name", "category", "can_teach", "experience_level"}).
		AddRow("us1", "s1", "Python", "Programming", true, "advanced").
		AddRow("us2", "s2", "Guitar", "Music", false, "beginner")
	mock.ExpectQuery(regexp.QuoteMeta("WHERE us.user_id = $1")).
		WithArgs("u1").
		WillReturnRows(rows)

	items, err := repo.ListByUser(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Python", items[0].SkillName)
	assert.True(t, items[0].CanTeach)
	assert.Equal(t, "Music", items[1].Category)
	assert.NoError(t, mock.ExpectationsWereMet())
}
