package postgres

import (
	"context"
	"errors"

	"github.com/crisvega/userhub/internal/domain/user"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const userColumns = `id, first_name, last_name, login, email, age, password, created_at, updated_at`

type UsersRepo struct {
	pool *pgxpool.Pool
}

func NewUsersRepo(pool *pgxpool.Pool) *UsersRepo {
	return &UsersRepo{pool: pool}
}

func scanUser(row pgx.Row) (user.User, error) {
	var u user.User

	err := row.Scan(
		&u.ID,
		&u.FirstName,
		&u.LastName,
		&u.Login,
		&u.Email,
		&u.Age,
		&u.Password,
		&u.CreatedAt,
		&u.UpdatedAt,
	)

	return u, err
}

func (r *UsersRepo) List(ctx context.Context) ([]user.User, error) {
	rows, err := r.pool.Query(
		ctx,
		`SELECT `+userColumns+` FROM users ORDER BY id ASC`,
	)

	if err != nil {
		return nil, err
	}

	defer rows.Close()

	output := make([]user.User, 0)

	for rows.Next() {
		u, err := scanUser(rows)

		if err != nil {
			return nil, err
		}

		output = append(output, u)
	}

	err = rows.Err()

	if err != nil {
		return nil, err
	}

	return output, nil
}

func (r *UsersRepo) Create(ctx context.Context, u user.User) (user.User, error) {
	row := r.pool.QueryRow(
		ctx,
		`INSERT INTO users(first_name, last_name, login, email, age, password, created_at, updated_at)
         VALUES($1, $2, $3, $4, $5, $6, NOW(), NOW())
         RETURNING `+userColumns,
		u.FirstName,
		u.LastName,
		u.Login,
		u.Email,
		u.Age,
		u.Password,
	)

	return scanUser(row)
}

func (r *UsersRepo) Update(ctx context.Context, u user.User) (user.User, error) {
	row := r.pool.QueryRow(
		ctx,
		`UPDATE users
            SET first_name = $2,
                last_name = $3,
                login = $4,
                email = $5,
                age = $6,
                password = $7,
                updated_at = NOW()
          WHERE id = $1
      RETURNING `+userColumns,
		u.ID,
		u.FirstName,
		u.LastName,
		u.Login,
		u.Email,
		u.Age,
		u.Password,
	)

	updated, err := scanUser(row)

	if err != nil {
		// if there is no row matching the id
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrNotFound
		}

		return user.User{}, err
	}

	return updated, nil
}

func (r *UsersRepo) Delete(ctx context.Context, id int) (user.User, error) {
	row := r.pool.QueryRow(
		ctx,
		`DELETE FROM users WHERE id = $1 RETURNING `+userColumns,
		id,
	)

	deleted, err := scanUser(row)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrNotFound
		}

		return user.User{}, err
	}

	return deleted, nil
}
