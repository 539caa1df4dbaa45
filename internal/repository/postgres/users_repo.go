package postgres

import (
	"context"

	"github.com/baharkarakas/qa-backend/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type usersRepo struct{ pool *pgxpool.Pool }

const userColumns = `id, email, username, password, created_at`

func (r *usersRepo) Create(ctx context.Context, email, username, hash string) (models.User, error) {
	var u models.User
	err := r.pool.QueryRow(ctx,
		`INSERT INTO users(email, username, password) VALUES($1,$2,$3) RETURNING `+userColumns,
		email, username, hash,
	).Scan(&u.ID, &u.Email, &u.Username, &u.PasswordHash, &u.CreatedAt)
	return u, mapErr("create user", err)
}

func (r *usersRepo) List(ctx context.Context) ([]models.UserSummary, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, email FROM users ORDER BY id`)
	if err != nil {
		return nil, mapErr("list users", err)
	}
	defer rows.Close()

	out := []models.UserSummary{}
	for rows.Next() {
		var u models.UserSummary
		if err := rows.Scan(&u.ID, &u.Email); err != nil {
			return nil, mapErr("list users", err)
		}
		out = append(out, u)
	}
	return out, mapErr("list users", rows.Err())
}

func (r *usersRepo) GetByID(ctx context.Context, id int64) (models.User, error) {
	var u models.User
	err := r.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id=$1`, id,
	).Scan(&u.ID, &u.Email, &u.Username, &u.PasswordHash, &u.CreatedAt)
	return u, mapErr("get user", err)
}

func (r *usersRepo) GetByEmail(ctx context.Context, email string) (models.User, error) {
	var u models.User
	err := r.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email=$1`, email,
	).Scan(&u.ID, &u.Email, &u.Username, &u.PasswordHash, &u.CreatedAt)
	return u, mapErr("get user by email", err)
}

func (r *usersRepo) Update(ctx context.Context, u models.User) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE users SET email=$2, username=$3, password=$4 WHERE id=$1`,
		u.ID, u.Email, u.Username, u.PasswordHash,
	)
	return mapErr("update user", err)
}

func (r *usersRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id=$1`, id)
	return deleted("delete user", tag, err)
}
