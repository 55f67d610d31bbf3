package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/allisson/moviecatalog/internal/database"
	apperrors "github.com/allisson/moviecatalog/internal/errors"
	"github.com/allisson/moviecatalog/internal/movie/domain"
)

// MySQLMovieRepository handles movie persistence for MySQL. It only uses "?"
// placeholders and LastInsertId, so it serves SQLite as well.
type MySQLMovieRepository struct {
	db *sql.DB
}

// NewMySQLMovieRepository creates a new MySQLMovieRepository.
func NewMySQLMovieRepository(db *sql.DB) *MySQLMovieRepository {
	return &MySQLMovieRepository{db: db}
}

func (r *MySQLMovieRepository) Create(ctx context.Context, movie *domain.Movie) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO movies (title, description, trailer, year, rating, genre_id, director_id)
			  VALUES (?, ?, ?, ?, ?, ?, ?)`

	result, err := querier.ExecContext(
		ctx,
		query,
		movie.Title,
		movie.Description,
		movie.Trailer,
		movie.Year,
		movie.Rating,
		movie.GenreID,
		movie.DirectorID,
	)
	if err != nil {
		return mapWriteError(err, "failed to create movie")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return apperrors.Wrap(err, "failed to get movie id")
	}
	movie.ID = id
	return nil
}

func (r *MySQLMovieRepository) Get(ctx context.Context, id int64) (*domain.Movie, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + movieColumns + ` FROM movies WHERE id = ?`
	return scanMovie(querier.QueryRowContext(ctx, query, id))
}

func (r *MySQLMovieRepository) List(ctx context.Context, filter domain.Filter) ([]*domain.Movie, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + movieColumns + ` FROM movies`
	var args []any
	if column, value, ok := filterColumn(filter); ok {
		query += fmt.Sprintf(` WHERE %s = ?`, column)
		args = append(args, value)
	}
	query += ` ORDER BY id`

	rows, err := querier.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list movies")
	}
	return scanMovies(rows)
}

func (r *MySQLMovieRepository) Update(ctx context.Context, movie *domain.Movie) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE movies
			  SET title = ?, description = ?, trailer = ?, year = ?, rating = ?, genre_id = ?, director_id = ?
			  WHERE id = ?`

	_, err := querier.ExecContext(
		ctx,
		query,
		movie.Title,
		movie.Description,
		movie.Trailer,
		movie.Year,
		movie.Rating,
		movie.GenreID,
		movie.DirectorID,
		movie.ID,
	)
	if err != nil {
		return mapWriteError(err, "failed to update movie")
	}
	return nil
}

func (r *MySQLMovieRepository) Delete(ctx context.Context, id int64) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM movies WHERE id = ?`, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete movie")
	}
	return checkDeleted(result)
}
