// Package domain defines the movie entity, its listing filter and its errors.
package domain

import (
	"github.com/allisson/moviecatalog/internal/errors"
)

// Movie is a catalog entry. GenreID and DirectorID are nil when the movie has no
// genre or director, including after the referenced row was deleted.
type Movie struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Trailer     string  `json:"trailer"`
	Year        int     `json:"year"`
	Rating      float64 `json:"rating"`
	GenreID     *int64  `json:"genre_id"`
	DirectorID  *int64  `json:"director_id"`
}

// Filter narrows a movie listing. At most one field is applied, chosen by
// precedence: DirectorID, then GenreID, then Year.
type Filter struct {
	DirectorID *int64
	GenreID    *int64
	Year       *int
}

// Effective returns the filter reduced to its highest-precedence field.
func (f Filter) Effective() Filter {
	switch {
	case f.DirectorID != nil:
		return Filter{DirectorID: f.DirectorID}
	case f.GenreID != nil:
		return Filter{GenreID: f.GenreID}
	case f.Year != nil:
		return Filter{Year: f.Year}
	default:
		return Filter{}
	}
}

var (
	// ErrMovieNotFound indicates the requested movie does not exist.
	ErrMovieNotFound = errors.Wrap(errors.ErrNotFound, "movie not found")

	// ErrNoMovies indicates the listing (filtered or not) is empty.
	ErrNoMovies = errors.Wrap(errors.ErrNotFound, "no movies found")

	// ErrUnknownDirector indicates director_id references no director.
	ErrUnknownDirector = errors.Wrap(errors.ErrInvalidInput, "director does not exist")

	// ErrUnknownGenre indicates genre_id references no genre.
	ErrUnknownGenre = errors.Wrap(errors.ErrInvalidInput, "genre does not exist")

	// ErrUnknownReference is reported when the database rejects a genre or
	// director reference that disappeared after it was checked.
	ErrUnknownReference = errors.Wrap(errors.ErrInvalidInput, "genre or director does not exist")
)
