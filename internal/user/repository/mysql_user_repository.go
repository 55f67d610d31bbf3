package repository

import (
	"context"
	"database/sql"

	"github.com/allisson/moviecatalog/internal/database"
	apperrors "github.com/allisson/moviecatalog/internal/errors"
	"github.com/allisson/moviecatalog/internal/user/domain"
)

// MySQLUserRepository handles user persistence for MySQL. It only uses "?"
// placeholders and LastInsertId, so it serves SQLite as well.
type MySQLUserRepository struct {
	db *sql.DB
}

// NewMySQLUserRepository creates a new MySQLUserRepository.
func NewMySQLUserRepository(db *sql.DB) *MySQLUserRepository {
	return &MySQLUserRepository{db: db}
}

// Create inserts a new user and sets its generated ID.
func (r *MySQLUserRepository) Create(ctx context.Context, user *domain.User) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO users (username, password, role) VALUES (?, ?, ?)`

	result, err := querier.ExecContext(ctx, query, user.Username, user.Password, user.Role)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return domain.ErrUserAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create user")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return apperrors.Wrap(err, "failed to get user id")
	}
	user.ID = id
	return nil
}

// Get retrieves a user by ID.
func (r *MySQLUserRepository) Get(ctx context.Context, id int64) (*domain.User, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, username, password, role FROM users WHERE id = ?`

	return scanUser(querier.QueryRowContext(ctx, query, id), "failed to get user by id")
}

// GetByUsername retrieves a user by username.
func (r *MySQLUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, username, password, role FROM users WHERE username = ?`

	return scanUser(querier.QueryRowContext(ctx, query, username), "failed to get user by username")
}

// List retrieves every user ordered by ID.
func (r *MySQLUserRepository) List(ctx context.Context) ([]*domain.User, error) {
	querier := database.GetTx(ctx, r.db)

	rows, err := querier.QueryContext(ctx, `SELECT id, username, password, role FROM users ORDER BY id`)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list users")
	}
	return scanUsers(rows)
}

// Update overwrites username, password and role.
func (r *MySQLUserRepository) Update(ctx context.Context, user *domain.User) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE users SET username = ?, password = ?, role = ? WHERE id = ?`

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
func (r *MySQLUserRepository) Delete(ctx context.Context, id int64) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete user")
	}
	return checkDeleted(result)
}
