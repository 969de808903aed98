package handler

import (
	"github.com/taskforge/projecthub/internal/core/domain"
	"github.com/taskforge/projecthub/internal/core/ports"
)

func toSignupInput(req signupRequest) ports.SignupInput {
	return ports.SignupInput{
		Username: req.Username,
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
		Address: domain.Address{
			Street:  req.Address.Street,
			City:    req.Address.City,
			ZipCode: req.Address.ZipCode,
		},
		Role: req.Role,
	}
}

func toUserUpdateInput(req updateUserRequest) ports.UserUpdateInput {
	in := ports.UserUpdateInput{
		Username: req.Username,
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
	}
	if req.Address != nil {
		in.Address = &domain.Address{
			Street:  req.Address.Street,
			City:    req.Address.City,
			ZipCode: req.Address.ZipCode,
		}
	}
	return in
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:       u.ID,
		Username: u.Username,
		Name:     u.Name,
		Email:    u.Email,
		Phone:    u.Phone,
		Address: addressResponse{
			Street:  u.Address.Street,
			City:    u.Address.City,
			ZipCode: u.Address.ZipCode,
		},
		Role:      string(u.Role),
		IsDeleted: u.IsDeleted,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func toUserResponses(users []*domain.User) []userResponse {
	out := make([]userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return out
}
