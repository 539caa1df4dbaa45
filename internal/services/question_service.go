package services

import (
	"context"

	"github.com/baharkarakas/qa-backend/internal/models"
	repo "github.com/baharkarakas/qa-backend/internal/repository"
)

type QuestionService struct{ r repo.Questions }

func NewQuestionService(r repo.Questions) *QuestionService { return &QuestionService{r: r} }

func (s *QuestionService) Create(ctx context.Context, userID int64, title, description string) (models.Question, error) {
	return s.r.Create(ctx, models.Question{Title: title, Description: description, UserID: userID})
}

func (s *QuestionService) List(ctx context.Context) ([]models.QuestionSummary, error) {
	return s.r.List(ctx)
}

func (s *QuestionService) Get(ctx context.Context, id int64) (models.Question, error) {
	return s.r.GetByID(ctx, id)
}

func (s *QuestionService) Update(ctx context.Context, id int64, title, description string) error {
	return s.r.Update(ctx, models.Question{ID: id, Title: title, Description: description})
}

func (s *QuestionService) Delete(ctx context.Context, id int64) error { return s.r.Delete(ctx, id) }
