// Package domain defines the genre entity and its errors.
package domain

import (
	"github.com/allisson/moviecatalog/internal/errors"
)

// Genre classifies movies, e.g. "Drama" or "Western".
type Genre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

var (
	// ErrGenreNotFound indicates the requested genre does not exist.
	ErrGenreNotFound = errors.Wrap(errors.ErrNotFound, "genre not found")

	// ErrNoGenres indicates the genre listing is empty.
	ErrNoGenres = errors.Wrap(errors.ErrNotFound, "no genres found")
)
