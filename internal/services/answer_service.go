package services

import (
	"context"

	"github.com/baharkarakas/qa-backend/internal/models"
	repo "github.com/baharkarakas/qa-backend/internal/repository"
)

type AnswerService struct{ r repo.Answers }

func NewAnswerService(r repo.Answers) *AnswerService { return &AnswerService{r: r} }

func (s *AnswerService) Create(ctx context.Context, questionID, userID int64, description string) (models.Answer, error) {
	return s.r.Create(ctx, models.Answer{Description: description, QuestionID: questionID, UserID: userID})
}

func (s *AnswerService) List(ctx context.Context, questionID int64) ([]models.AnswerSummary, error) {
	return s.r.ListByQuestion(ctx, questionID)
}

func (s *AnswerService) Get(ctx context.Context, questionID, id int64) (models.Answer, error) {
	return s.r.GetByID(ctx, questionID, id)
}

func (s *AnswerService) Update(ctx context.Context, questionID, id int64, description string) error {
	return s.r.Update(ctx, models.Answer{ID: id, QuestionID: questionID, Description: description})
}

func (s *AnswerService) Delete(ctx context.Context, questionID, id int64) error {
	return s.r.Delete(ctx, questionID, id)
}
