package handler

import "github.com/atstailor/resume-tailor/internal/domain"

// UserDTO is the JSON representation of a user. The password hash is never
// part of it.
type UserDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func toUserDTO(u *domain.User) UserDTO {
	return UserDTO{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
}
