package postgres

import (
	"context"

	"github.com/baharkarakas/qa-backend/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type questionsRepo struct{ pool *pgxpool.Pool }

func (r *questionsRepo) Create(ctx context.Context, q models.Question) (models.Question, error) {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO questions(title, description, user_id) VALUES($1,$2,$3)
		 RETURNING id, title, description, user_id, created_at`,
		q.Title, q.Description, q.UserID,
	).Scan(&q.ID, &q.Title, &q.Description, &q.UserID, &q.CreatedAt)
	return q, mapErr("create question", err)
}

func (r *questionsRepo) List(ctx context.Context) ([]models.QuestionSummary, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, title, description FROM questions ORDER BY id`)
	if err != nil {
		return nil, mapErr("list questions", err)
	}
	defer rows.Close()

	out := []models.QuestionSummary{}
	for rows.Next() {
		var q models.QuestionSummary
		if err := rows.Scan(&q.ID, &q.Title, &q.Description); err != nil {
			return nil, mapErr("list questions", err)
		}
		out = append(out, q)
	}
	return out, mapErr("list questions", rows.Err())
}

func (r *questionsRepo) GetByID(ctx context.Context, id int64) (models.Question, error) {
	var q models.Question
	err := r.pool.QueryRow(ctx,
		`SELECT id, title, description, user_id, created_at FROM questions WHERE id=$1`, id,
	).Scan(&q.ID, &q.Title, &q.Description, &q.UserID, &q.CreatedAt)
	return q, mapErr("get question", err)
}

func (r *questionsRepo) Update(ctx context.Context, q models.Question) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE questions SET title=$2, description=$3 WHERE id=$1`,
		q.ID, q.Title, q.Description,
	)
	return mapErr("update question", err)
}

func (r *questionsRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM questions WHERE id=$1`, id)
	return deleted("delete question", tag, err)
}
