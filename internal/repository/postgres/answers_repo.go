package postgres

import (
	"context"

	"github.com/baharkarakas/qa-backend/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type answersRepo struct{ pool *pgxpool.Pool }

func (r *answersRepo) Create(ctx context.Context, a models.Answer) (models.Answer, error) {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO answers(description, question_id, user_id) VALUES($1,$2,$3)
		 RETURNING id, description, question_id, user_id, created_at`,
		a.Description, a.QuestionID, a.UserID,
	).Scan(&a.ID, &a.Description, &a.QuestionID, &a.UserID, &a.CreatedAt)
	return a, mapErr("create answer", err)
}

func (r *answersRepo) ListByQuestion(ctx context.Context, questionID int64) ([]models.AnswerSummary, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, description FROM answers WHERE question_id=$1 ORDER BY id`, questionID)
	if err != nil {
		return nil, mapErr("list answers", err)
	}
	defer rows.Close()

	out := []models.AnswerSummary{}
	for rows.Next() {
		var a models.AnswerSummary
		if err := rows.Scan(&a.ID, &a.Description); err != nil {
			return nil, mapErr("list answers", err)
		}
		out = append(out, a)
	}
	return out, mapErr("list answers", rows.Err())
}

func (r *answersRepo) GetByID(ctx context.Context, questionID, id int64) (models.Answer, error) {
	var a models.Answer
	err := r.pool.QueryRow(ctx,
		`SELECT id, description, question_id, user_id, created_at
		   FROM answers
		  WHERE id=$1 AND question_id=$2`,
		id, questionID,
	).Scan(&a.ID, &a.Description, &a.QuestionID, &a.UserID, &a.CreatedAt)
	return a, mapErr("get answer", err)
}

func (r *answersRepo) Update(ctx context.Context, a models.Answer) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE answers SET description=$3 WHERE id=$1 AND question_id=$2`,
		a.ID, a.QuestionID, a.Description,
	)
	return mapErr("update answer", err)
}

func (r *answersRepo) Delete(ctx context.Context, questionID, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM answers WHERE id=$1 AND question_id=$2`, id, questionID)
	return deleted("delete answer", tag, err)
}
