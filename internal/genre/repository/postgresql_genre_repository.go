// Package repository provides data persistence implementations for genres.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/allisson/moviecatalog/internal/database"
	"github.com/allisson/moviecatalog/internal/genre/domain"
	apperrors "github.com/allisson/moviecatalog/internal/errors"
)

// PostgreSQLGenreRepository handles genre persistence for PostgreSQL.
type PostgreSQLGenreRepository struct {
	db *sql.DB
}

// NewPostgreSQLGenreRepository creates a new PostgreSQLGenreRepository.
func NewPostgreSQLGenreRepository(db *sql.DB) *PostgreSQLGenreRepository {
	return &PostgreSQLGenreRepository{db: db}
}

// Create inserts a genre and sets its generated ID.
func (r *PostgreSQLGenreRepository) Create(ctx context.Context, genre *domain.Genre) error {
	querier := database.GetTx(ctx, r.db)

	err := querier.QueryRowContext(ctx, `INSERT INTO genres (name) VALUES ($1) RETURNING id`, genre.Name).
		Scan(&genre.ID)
	if err != nil {
		return apperrors.Wrap(err, "failed to create genre")
	}
	return nil
}

// Get retrieves a genre by ID.
func (r *PostgreSQLGenreRepository) Get(ctx context.Context, id int64) (*domain.Genre, error) {
	querier := database.GetTx(ctx, r.db)
	return scanGenre(querier.QueryRowContext(ctx, `SELECT id, name FROM genres WHERE id = $1`, id))
}

// List retrieves every genre ordered by ID.
func (r *PostgreSQLGenreRepository) List(ctx context.Context) ([]*domain.Genre, error) {
	querier := database.GetTx(ctx, r.db)

	rows, err := querier.QueryContext(ctx, `SELECT id, name FROM genres ORDER BY id`)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list genres")
	}
	return scanGenres(rows)
}

// Update overwrites the genre's name.
func (r *PostgreSQLGenreRepository) Update(ctx context.Context, genre *domain.Genre) error {
	querier := database.GetTx(ctx, r.db)

	_, err := querier.ExecContext(ctx, `UPDATE genres SET name = $1 WHERE id = $2`, genre.Name, genre.ID)
	if err != nil {
		return apperrors.Wrap(err, "failed to update genre")
	}
	return nil
}

// Delete removes a genre by ID.
func (r *PostgreSQLGenreRepository) Delete(ctx context.Context, id int64) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM genres WHERE id = $1`, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete genre")
	}
	return checkDeleted(result)
}

func scanGenre(row *sql.Row) (*domain.Genre, error) {
	var genre domain.Genre
	if err := row.Scan(&genre.ID, &genre.Name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrGenreNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get genre")
	}
	return &genre, nil
}

func scanGenres(rows *sql.Rows) ([]*domain.Genre, error) {
	defer func() {
		_ = rows.Close()
	}()

	genres := make([]*domain.Genre, 0)
	for rows.Next() {
		var genre domain.Genre
		if err := rows.Scan(&genre.ID, &genre.Name); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan genre")
		}
		genres = append(genres, &genre)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate genres")
	}
	return genres, nil
}

func checkDeleted(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get rows affected")
	}
	if affected == 0 {
		return domain.ErrGenreNotFound
	}
	return nil
}
