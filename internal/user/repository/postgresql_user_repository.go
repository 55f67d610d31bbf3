// Package repository provides data persistence implementations for user entities.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/allisson/moviecatalog/internal/database"
	apperrors "github.com/allisson/moviecatalog/internal/errors"
	"github.com/allisson/moviecatalog/internal/user/domain"
)

// PostgreSQLUserRepository handles user persistence for PostgreSQL.
type PostgreSQLUserRepository struct {
	db *sql.DB
}

// NewPostgreSQLUserRepository creates a new PostgreSQLUserRepository.
func NewPostgreSQLUserRepository(db *sql.DB) *PostgreSQLUserRepository {
	return &PostgreSQLUserRepository{db: db}
}

// Create inserts a new user and sets its generated ID.
func (r *PostgreSQLUserRepository) Create(ctx context.Context, user *domain.User) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO users (username, password, role) VALUES ($1, $2, $3) RETURNING id`

	err := querier.QueryRowContext(ctx, query, user.Username, user.Password, user.Role).Scan(&user.ID)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return domain.ErrUserAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create user")
	}
	return nil
}

// Get retrieves a user by ID.
func (r *PostgreSQLUserRepository) Get(ctx context.Context, id int64) (*domain.User, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, username, password, role FROM users WHERE id = $1`

	return scanUser(querier.QueryRowContext(ctx, query, id), "failed to get user by id")
}

// GetByUsername retrieves a user by username.
func (r *PostgreSQLUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, username, password, role FROM users WHERE username = $1`

	return scanUser(querier.QueryRowContext(ctx, query, username), "failed to get user by username")
}

// List retrieves every user ordered by ID.
func (r *PostgreSQLUserRepository) List(ctx context.Context) ([]*domain.User, error) {
	querier := database.GetTx(ctx, r.db)

	rows, err := querier.QueryContext(ctx, `SELECT id, username, password, role FROM users ORDER BY id`)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list users")
	}
	return scanUsers(rows)
}

// Update overwrites username, password and role.
func (r *PostgreSQLUserRepository) Update(ctx context.Context, user *domain.User) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE users SET username = $1, password = $2, role = $3 WHERE id = $4`

	_, err := querier.ExecContext(ctx, query, user.Username, user.Password, user.Role, user.ID)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return domain.ErrUsernameTaken
		}
		return apperrors.Wrap(err, "failed to update user")
	}
	return nil
}

// Delete removes a user by ID.
func (r *PostgreSQLUserRepository) Delete(ctx context.Context, id int64) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete user")
	}
	return checkDeleted(result)
}

func scanUser(row *sql.Row, failure string) (*domain.User, error) {
	var user domain.User
	if err := row.Scan(&user.ID, &user.Username, &user.Password, &user.Role); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, apperrors.Wrap(err, failure)
	}
	return &user, nil
}

func scanUsers(rows *sql.Rows) ([]*domain.User, error) {
	defer func() {
		_ = rows.Close()
	}()

	users := make([]*domain.User, 0)
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(&user.ID, &user.Username, &user.Password, &user.Role); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan user")
		}
		users = append(users, &user)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate users")
	}
	return users, nil
}

func checkDeleted(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get rows affected")
	}
	if affected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
