package repository

import (
	"context"
	"database/sql"

	"github.com/allisson/moviecatalog/internal/database"
	"github.com/allisson/moviecatalog/internal/genre/domain"
	apperrors "github.com/allisson/moviecatalog/internal/errors"
)

// MySQLGenreRepository is the "?"-placeholder genre repository, shared by MySQL and SQLite.
type MySQLGenreRepository struct {
	db *sql.DB
}

// NewMySQLGenreRepository creates a new MySQLGenreRepository.
func NewMySQLGenreRepository(db *sql.DB) *MySQLGenreRepository {
	return &MySQLGenreRepository{db: db}
}

func (r *MySQLGenreRepository) Create(ctx context.Context, genre *domain.Genre) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx, `INSERT INTO genres (name) VALUES (?)`, genre.Name)
	if err != nil {
		return apperrors.Wrap(err, "failed to create genre")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return apperrors.Wrap(err, "failed to get genre id")
	}
	genre.ID = id
	return nil
}

func (r *MySQLGenreRepository) Get(ctx context.Context, id int64) (*domain.Genre, error) {
	querier := database.GetTx(ctx, r.db)
	return scanGenre(querier.QueryRowContext(ctx, `SELECT id, name FROM genres WHERE id = ?`, id))
}

func (r *MySQLGenreRepository) List(ctx context.Context) ([]*domain.Genre, error) {
	querier := database.GetTx(ctx, r.db)

	rows, err := querier.QueryContext(ctx, `SELECT id, name FROM genres ORDER BY id`)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list genres")
	}
	return scanGenres(rows)
}

func (r *MySQLGenreRepository) Update(ctx context.Context, genre *domain.Genre) error {
	querier := database.GetTx(ctx, r.db)

	_, err := querier.ExecContext(ctx, `UPDATE genres SET name = ? WHERE id = ?`, genre.Name, genre.ID)
	if err != nil {
		return apperrors.Wrap(err, "failed to update genre")
	}
	return nil
}

func (r *MySQLGenreRepository) Delete(ctx context.Context, id int64) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM genres WHERE id = ?`, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete genre")
	}
	return checkDeleted(result)
}
