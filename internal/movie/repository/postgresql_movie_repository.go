// Package repository provides data persistence implementations for movies.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/allisson/moviecatalog/internal/database"
	apperrors "github.com/allisson/moviecatalog/internal/errors"
	"github.com/allisson/moviecatalog/internal/movie/domain"
)

const movieColumns = `id, title, description, trailer, year, rating, genre_id, director_id`

// PostgreSQLMovieRepository handles movie persistence for PostgreSQL.
type PostgreSQLMovieRepository struct {
	db *sql.DB
}

// NewPostgreSQLMovieRepository creates a new PostgreSQLMovieRepository.
func NewPostgreSQLMovieRepository(db *sql.DB) *PostgreSQLMovieRepository {
	return &PostgreSQLMovieRepository{db: db}
}

// Create inserts a movie and sets its generated ID.
func (r *PostgreSQLMovieRepository) Create(ctx context.Context, movie *domain.Movie) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO movies (title, description, trailer, year, rating, genre_id, director_id)
			  VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`

	err := querier.QueryRowContext(
		ctx,
		query,
		movie.Title,
		movie.Description,
		movie.Trailer,
		movie.Year,
		movie.Rating,
		movie.GenreID,
		movie.DirectorID,
	).Scan(&movie.ID)
	if err != nil {
		return mapWriteError(err, "failed to create movie")
	}
	return nil
}

// Get retrieves a movie by ID.
func (r *PostgreSQLMovieRepository) Get(ctx context.Context, id int64) (*domain.Movie, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + movieColumns + ` FROM movies WHERE id = $1`
	return scanMovie(querier.QueryRowContext(ctx, query, id))
}

// List retrieves the movies matching filter ordered by ID.
func (r *PostgreSQLMovieRepository) List(ctx context.Context, filter domain.Filter) ([]*domain.Movie, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + movieColumns + ` FROM movies`
	var args []any
	if column, value, ok := filterColumn(filter); ok {
		query += fmt.Sprintf(` WHERE %s = $1`, column)
		args = append(args, value)
	}
	query += ` ORDER BY id`

	rows, err := querier.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list movies")
	}
	return scanMovies(rows)
}

// Update overwrites every writable column.
func (r *PostgreSQLMovieRepository) Update(ctx context.Context, movie *domain.Movie) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE movies
			  SET title = $1, description = $2, trailer = $3, year = $4, rating = $5, genre_id = $6, director_id = $7
			  WHERE id = $8`

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

// Delete removes a movie by ID.
func (r *PostgreSQLMovieRepository) Delete(ctx context.Context, id int64) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM movies WHERE id = $1`, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete movie")
	}
	return checkDeleted(result)
}

// filterColumn returns the column and value of the highest-precedence filter field.
func filterColumn(filter domain.Filter) (string, any, bool) {
	filter = filter.Effective()
	switch {
	case filter.DirectorID != nil:
		return "director_id", *filter.DirectorID, true
	case filter.GenreID != nil:
		return "genre_id", *filter.GenreID, true
	case filter.Year != nil:
		return "year", *filter.Year, true
	default:
		return "", nil, false
	}
}

func mapWriteError(err error, failure string) error {
	if database.IsForeignKeyViolation(err) {
		return domain.ErrUnknownReference
	}
	return apperrors.Wrap(err, failure)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanInto(row rowScanner) (*domain.Movie, error) {
	var (
		movie      domain.Movie
		genreID    sql.NullInt64
		directorID sql.NullInt64
	)
	err := row.Scan(
		&movie.ID,
		&movie.Title,
		&movie.Description,
		&movie.Trailer,
		&movie.Year,
		&movie.Rating,
		&genreID,
		&directorID,
	)
	if err != nil {
		return nil, err
	}

	if genreID.Valid {
		movie.GenreID = &genreID.Int64
	}
	if directorID.Valid {
		movie.DirectorID = &directorID.Int64
	}
	return &movie, nil
}

func scanMovie(row *sql.Row) (*domain.Movie, error) {
	movie, err := scanInto(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMovieNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get movie")
	}
	return movie, nil
}

func scanMovies(rows *sql.Rows) ([]*domain.Movie, error) {
	defer func() {
		_ = rows.Close()
	}()

	movies := make([]*domain.Movie, 0)
	for rows.Next() {
		movie, err := scanInto(rows)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan movie")
		}
		movies = append(movies, movie)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate movies")
	}
	return movies, nil
}

func checkDeleted(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get rows affected")
	}
	if affected == 0 {
		return domain.ErrMovieNotFound
	}
	return nil
}
