package repository

import (
	"context"
	"database/sql"

	"github.com/allisson/moviecatalog/internal/database"
	"github.com/allisson/moviecatalog/internal/director/domain"
	apperrors "github.com/allisson/moviecatalog/internal/errors"
)

// MySQLDirectorRepository handles director persistence for MySQL and SQLite.
type MySQLDirectorRepository struct {
	db *sql.DB
}

// NewMySQLDirectorRepository creates a new MySQLDirectorRepository.
func NewMySQLDirectorRepository(db *sql.DB) *MySQLDirectorRepository {
	return &MySQLDirectorRepository{db: db}
}

// Create inserts a director and sets its generated ID.
func (r *MySQLDirectorRepository) Create(ctx context.Context, director *domain.Director) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx, `INSERT INTO directors (name) VALUES (?)`, director.Name)
	if err != nil {
		return apperrors.Wrap(err, "failed to create director")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return apperrors.Wrap(err, "failed to get director id")
	}
	director.ID = id
	return nil
}

// Get retrieves a director by ID.
func (r *MySQLDirectorRepository) Get(ctx context.Context, id int64) (*domain.Director, error) {
	querier := database.GetTx(ctx, r.db)
	return scanDirector(querier.QueryRowContext(ctx, `SELECT id, name FROM directors WHERE id = ?`, id))
}

// List retrieves every director ordered by ID.
func (r *MySQLDirectorRepository) List(ctx context.Context) ([]*domain.Director, error) {
	querier := database.GetTx(ctx, r.db)

	rows, err := querier.QueryContext(ctx, `SELECT id, name FROM directors ORDER BY id`)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list directors")
	}
	return scanDirectors(rows)
}

// Update overwrites the director's name.
func (r *MySQLDirectorRepository) Update(ctx context.Context, director *domain.Director) error {
	querier := database.GetTx(ctx, r.db)

	_, err := querier.ExecContext(ctx, `UPDATE directors SET name = ? WHERE id = ?`, director.Name, director.ID)
	if err != nil {
		return apperrors.Wrap(err, "failed to update director")
	}
	return nil
}

// Delete removes a director by ID.
func (r *MySQLDirectorRepository) Delete(ctx context.Context, id int64) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM directors WHERE id = ?`, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete director")
	}
	return checkDeleted(result)
}
