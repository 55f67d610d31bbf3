// Package repository provides data persistence implementations for directors.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/allisson/moviecatalog/internal/database"
	"github.com/allisson/moviecatalog/internal/director/domain"
	apperrors "github.com/allisson/moviecatalog/internal/errors"
)

// PostgreSQLDirectorRepository handles director persistence for PostgreSQL.
type PostgreSQLDirectorRepository struct {
	db *sql.DB
}

// NewPostgreSQLDirectorRepository creates a new PostgreSQLDirectorRepository.
func NewPostgreSQLDirectorRepository(db *sql.DB) *PostgreSQLDirectorRepository {
	return &PostgreSQLDirectorRepository{db: db}
}

// Create inserts a director and sets its generated ID.
func (r *PostgreSQLDirectorRepository) Create(ctx context.Context, director *domain.Director) error {
	querier := database.GetTx(ctx, r.db)

	err := querier.QueryRowContext(ctx, `INSERT INTO directors (name) VALUES ($1) RETURNING id`, director.Name).
		Scan(&director.ID)
	if err != nil {
		return apperrors.Wrap(err, "failed to create director")
	}
	return nil
}

// Get retrieves a director by ID.
func (r *PostgreSQLDirectorRepository) Get(ctx context.Context, id int64) (*domain.Director, error) {
	querier := database.GetTx(ctx, r.db)
	return scanDirector(querier.QueryRowContext(ctx, `SELECT id, name FROM directors WHERE id = $1`, id))
}

// List retrieves every director ordered by ID.
func (r *PostgreSQLDirectorRepository) List(ctx context.Context) ([]*domain.Director, error) {
	querier := database.GetTx(ctx, r.db)

	rows, err := querier.QueryContext(ctx, `SELECT id, name FROM directors ORDER BY id`)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list directors")
	}
	return scanDirectors(rows)
}

// Update overwrites the director's name.
func (r *PostgreSQLDirectorRepository) Update(ctx context.Context, director *domain.Director) error {
	querier := database.GetTx(ctx, r.db)

	_, err := querier.ExecContext(ctx, `UPDATE directors SET name = $1 WHERE id = $2`, director.Name, director.ID)
	if err != nil {
		return apperrors.Wrap(err, "failed to update director")
	}
	return nil
}

// Delete removes a director by ID.
func (r *PostgreSQLDirectorRepository) Delete(ctx context.Context, id int64) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM directors WHERE id = $1`, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete director")
	}
	return checkDeleted(result)
}

func scanDirector(row *sql.Row) (*domain.Director, error) {
	var director domain.Director
	if err := row.Scan(&director.ID, &director.Name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrDirectorNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get director")
	}
	return &director, nil
}

func scanDirectors(rows *sql.Rows) ([]*domain.Director, error) {
	defer func() {
		_ = rows.Close()
	}()

	directors := make([]*domain.Director, 0)
	for rows.Next() {
		var director domain.Director
		if err := rows.Scan(&director.ID, &director.Name); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan director")
		}
		directors = append(directors, &director)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate directors")
	}
	return directors, nil
}

func checkDeleted(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get rows affected")
	}
	if affected == 0 {
		return domain.ErrDirectorNotFound
	}
	return nil
}
