package dto

import "github.com/allisson/moviecatalog/internal/director/domain"

// DirectorResponse is the public representation of a director.
type DirectorResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func MapDirectorToResponse(director *domain.Director) DirectorResponse {
	return DirectorResponse{ID: director.ID, Name: director.Name}
}

func MapDirectorsToResponse(directors []*domain.Director) []DirectorResponse {
	out := make([]DirectorResponse, 0, len(directors))
	for _, director := range directors {
		out = append(out, MapDirectorToResponse(director))
	}
	return out
}
