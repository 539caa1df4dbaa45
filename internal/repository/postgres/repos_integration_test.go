package postgres

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baharkarakas/qa-backend/internal/db"
	"github.com/baharkarakas/qa-backend/internal/models"
	"github.com/baharkarakas/qa-backend/internal/repository"
)

// newTestRepos connects to QA_TEST_DATABASE_URL, migrates it and empties
// every table. Tests are skipped when the variable is unset.
func newTestRepos(t *testing.T) Repositories {
	t.Helper()
	url := os.Getenv("QA_TEST_DATABASE_URL")
	if url == "" {
		t.Skip("QA_TEST_DATABASE_URL not set")
	}
	ctx := context.Background()
	require.NoError(t, db.RunMigrations(ctx, url))

	pool, err := db.NewPool(ctx, url)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = pool.Exec(ctx, `TRUNCATE answers, questions, users RESTART IDENTITY`)
	require.NoError(t, err)
	return NewRepositories(pool)
}

func TestUsersRepo(t *testing.T) {
	r := newTestRepos(t)
	ctx := context.Background()

	list, err := r.Users.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	u, err := r.Users.Create(ctx, "ada@example.com", "ada", "hash")
	require.NoError(t, err)
	assert.NotZero(t, u.ID)
	assert.False(t, u.CreatedAt.IsZero())

	_, err = r.Users.Create(ctx, "ada@example.com", "other", "hash")
	assert.ErrorIs(t, err, repository.ErrDuplicate)
	_, err = r.Users.Create(ctx, "other@example.com", "ada", "hash")
	var dup *repository.DuplicateError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "username", dup.Field)

	got, err := r.Users.GetByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	u.Username, u.PasswordHash = "lovelace", "hash2"
	require.NoError(t, r.Users.Update(ctx, u))
	got, err = r.Users.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "lovelace", got.Username)
	assert.Equal(t, "hash2", got.PasswordHash)

	assert.NoError(t, r.Users.Update(ctx, models.User{ID: 999, Email: "x@example.com", Username: "xyz"}))

	_, err = r.Users.GetByID(ctx, 999)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.ErrorIs(t, r.Users.Delete(ctx, 999), repository.ErrNotFound)
	assert.NoError(t, r.Users.Delete(ctx, u.ID))
}

func TestQuestionsAndAnswersRepo(t *testing.T) {
	r := newTestRepos(t)
	ctx := context.Background()

	u, err := r.Users.Create(ctx, "ada@example.com", "ada", "hash")
	require.NoError(t, err)

	_, err = r.Questions.Create(ctx, models.Question{Title: "Go?", Description: "What is Go", UserID: 999})
	assert.ErrorIs(t, err, repository.ErrMissingRelation)

	q, err := r.Questions.Create(ctx, models.Question{Title: "Go?", Description: "What is Go", UserID: u.ID})
	require.NoError(t, err)

	_, err = r.Answers.Create(ctx, models.Answer{Description: "orphan", QuestionID: 999, UserID: u.ID})
	var rel *repository.MissingRelationError
	require.ErrorAs(t, err, &rel)
	assert.Equal(t, "questionId", rel.Field)

	a, err := r.Answers.Create(ctx, models.Answer{Description: "A language", QuestionID: q.ID, UserID: u.ID})
	require.NoError(t, err)

	answers, err := r.Answers.ListByQuestion(ctx, q.ID)
	require.NoError(t, err)
	assert.Equal(t, []models.AnswerSummary{{ID: a.ID, Description: "A language"}}, answers)

	_, err = r.Answers.GetByID(ctx, q.ID+1, a.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	assert.ErrorIs(t, r.Questions.Delete(ctx, q.ID), repository.ErrMissingRelation)
	assert.ErrorIs(t, r.Users.Delete(ctx, u.ID), repository.ErrMissingRelation)

	q.Title = "Rust?"
	require.NoError(t, r.Questions.Update(ctx, q))
	got, err := r.Questions.GetByID(ctx, q.ID)
	require.NoError(t, err)
	assert.Equal(t, "Rust?", got.Title)

	require.NoError(t, r.Answers.Delete(ctx, q.ID, a.ID))
	assert.ErrorIs(t, r.Answers.Delete(ctx, q.ID, a.ID), repository.ErrNotFound)
	require.NoError(t, r.Questions.Delete(ctx, q.ID))
}
