package dto

import "github.com/allisson/moviecatalog/internal/movie/domain"

// MovieResponse is the public representation of a movie.
type MovieResponse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Trailer     string  `json:"trailer"`
	Year        int     `json:"year"`
	Rating      float64 `json:"rating"`
	GenreID     *int64  `json:"genre_id"`
	DirectorID  *int64  `json:"director_id"`
}

// MapMovieToResponse converts a domain movie into its response.
func MapMovieToResponse(movie *domain.Movie) MovieResponse {
	return MovieResponse{
		ID:          movie.ID,
		Title:       movie.Title,
		Description: movie.Description,
		Trailer:     movie.Trailer,
		Year:        movie.Year,
		Rating:      movie.Rating,
		GenreID:     movie.GenreID,
		DirectorID:  movie.DirectorID,
	}
}

// MapMoviesToResponse converts a list of domain movies.
func MapMoviesToResponse(movies []*domain.Movie) []MovieResponse {
	out := make([]MovieResponse, 0, len(movies))
	for _, movie := range movies {
		out = append(out, MapMovieToResponse(movie))
	}
	return out
}
