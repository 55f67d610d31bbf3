package dto

import "github.com/allisson/moviecatalog/internal/user/domain"

// UserResponse is the public representation of a user. The password hash is never exposed.
type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// MapUserToResponse converts a domain user into its response.
func MapUserToResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Role:     string(user.Role),
	}
}

// MapUsersToResponse converts a list of domain users.
func MapUsersToResponse(users []*domain.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, user := range users {
		out = append(out, MapUserToResponse(user))
	}
	return out
}
