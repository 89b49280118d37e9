package converter

import (
	"hospital-agenda/internal/delivery/dto"
	"hospital-agenda/internal/domain/entity"
)

// UserToResponse converts a User entity to UserResponse DTO
func UserToResponse(user *entity.User) dto.UserResponse {
	permissions := user.Role.Permissions
	if permissions == nil {
		permissions = []string{}
	}
	return dto.UserResponse{
		ID:          user.ID,
		Email:       user.Email,
		Nombre:      user.FullName(),
		RoleID:      user.RoleID,
		Permissions: permissions,
	}
}
