package repository

import (
	"context"

	"github.com/baharkarakas/qa-backend/internal/models"
)

// Users is the credential store. Update overwrites every column and does not
// report whether a row matched.
type Users interface {
	Create(ctx context.Context, email, username, passwordHash string) (models.User, error)
	List(ctx context.Context) ([]models.UserSummary, error)
	GetByID(ctx context.Context, id int64) (models.User, error)
	GetByEmail(ctx context.Context, email string) (models.User, error)
	Update(ctx context.Context, u models.User) error
	Delete(ctx context.Context, id int64) error
}

type Questions interface {
	Create(ctx context.Context, q models.Question) (models.Question, error)
	List(ctx context.Context) ([]models.QuestionSummary, error)
	GetByID(ctx context.Context, id int64) (models.Question, error)
	Update(ctx context.Context, q models.Question) error
	Delete(ctx context.Context, id int64) error
}

// Answers are always addressed through their question.
type Answers interface {
	Create(ctx context.Context, a models.Answer) (models.Answer, error)
	ListByQuestion(ctx context.Context, questionID int64) ([]models.AnswerSummary, error)
	GetByID(ctx context.Context, questionID, id int64) (models.Answer, error)
	Update(ctx context.Context, a models.Answer) error
	Delete(ctx context.Context, questionID, id int64) error
}
