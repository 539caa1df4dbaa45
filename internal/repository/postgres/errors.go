package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/baharkarakas/qa-backend/internal/repository"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// constraint name -> API field
var constraintFields = map[string]string{
	"users_email_key":          "email",
	"users_username_key":       "username",
	"questions_user_id_fkey":   "userId",
	"answers_question_id_fkey": "questionId",
	"answers_user_id_fkey":     "userId",
}

func fieldFor(constraint string) string {
	if f, ok := constraintFields[constraint]; ok {
		return f
	}
	return constraint
}

// mapErr translates driver errors into repository errors, wrapping with op.
func mapErr(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, repository.ErrNotFound)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%s: %w", op, &repository.DuplicateError{Field: fieldFor(pgErr.ConstraintName)})
		case pgForeignKeyViolation:
			return fmt.Errorf("%s: %w", op, &repository.MissingRelationError{Field: fieldFor(pgErr.ConstraintName)})
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}

// deleted reports ErrNotFound when a DELETE matched nothing.
func deleted(op string, tag pgconn.CommandTag, err error) error {
	if err != nil {
		return mapErr(op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, repository.ErrNotFound)
	}
	return nil
}
