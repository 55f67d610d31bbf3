// Package domain defines the director entity and its errors.
package domain

import (
	"github.com/allisson/moviecatalog/internal/errors"
)

// Director is a person credited with directing movies.
type Director struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

var (
	// ErrDirectorNotFound indicates the requested director does not exist.
	ErrDirectorNotFound = errors.Wrap(errors.ErrNotFound, "director not found")

	// ErrNoDirectors indicates the director listing is empty.
	ErrNoDirectors = errors.Wrap(errors.ErrNotFound, "no directors found")
)
