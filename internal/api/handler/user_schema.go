package handler

import "time"

type updateUserRequest struct {
	Username *string         `json:"username" validate:"omitempty,min=1"`
	Name     *string         `json:"name"     validate:"omitempty,min=1"`
	Email    *string         `json:"email"    validate:"omitempty,email"`
	Password *string         `json:"password" validate:"omitempty,min=6"`
	Phone    *string         `json:"phone"    validate:"omitempty,min=1"`
	Address  *addressRequest `json:"address"`
}

type assignRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=Admin Manager Employee"`
}

// userResponse is the only user projection ever returned; it never carries
// the credential digest.
type userResponse struct {
	ID        string          `json:"id"`
	Username  string          `json:"username"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Phone     string          `json:"phone"`
	Address   addressResponse `json:"address"`
	Role      string          `json:"role"`
	IsDeleted bool            `json:"is_deleted"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type addressResponse struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	ZipCode string `json:"zip_code"`
}

type usersEnvelope struct {
	baseResponse
	CountTotal int            `json:"countTotal"`
	Users      []userResponse `json:"users"`
}
