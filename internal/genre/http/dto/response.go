package dto

import "github.com/allisson/moviecatalog/internal/genre/domain"

// GenreResponse is the public representation of a genre.
type GenreResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func MapGenreToResponse(genre *domain.Genre) GenreResponse {
	return GenreResponse{ID: genre.ID, Name: genre.Name}
}

func MapGenresToResponse(genres []*domain.Genre) []GenreResponse {
	out := make([]GenreResponse, 0, len(genres))
	for _, genre := range genres {
		out = append(out, MapGenreToResponse(genre))
	}
	return out
}
