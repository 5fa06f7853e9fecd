package dto

import "github.com/poketrade/pokecards/internal/user/domain"

// MapUserToResponse converts a domain user to its public representation.
func MapUserToResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID.String(),
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// MapUsersToResponse converts a slice of domain users. Always returns a
// non-nil slice so the JSON encoding is [] rather than null.
func MapUsersToResponse(users []*domain.User) []UserResponse {
	responses := make([]UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, MapUserToResponse(user))
	}
	return responses
}
