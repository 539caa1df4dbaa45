package postgres

import (
	repo "github.com/baharkarakas/qa-backend/internal/repository"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repositories struct {
	Users     repo.Users
	Questions repo.Questions
	Answers   repo.Answers
}

func NewRepositories(pool *pgxpool.Pool) Repositories {
	return Repositories{
		Users:     &usersRepo{pool},
		Questions: &questionsRepo{pool},
		Answers:   &answersRepo{pool},
	}
}
