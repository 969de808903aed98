package handler

type addressRequest struct {
	Street  string `json:"street"   validate:"required"`
	City    string `json:"city"     validate:"required"`
	ZipCode string `json:"zip_code" validate:"required"`
}

type signupRequest struct {
	Username string         `json:"username" validate:"required"`
	Name     string         `json:"name"     validate:"required"`
	Email    string         `json:"email"    validate:"required,email"`
	Password string         `json:"password" validate:"required,min=6"`
	Phone    string         `json:"phone"    validate:"required"`
	Address  addressRequest `json:"address"  validate:"required"`
	Role     string         `json:"role"     validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type userEnvelope struct {
	baseResponse
	User userResponse `json:"user"`
}

type loginEnvelope struct {
	baseResponse
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}
