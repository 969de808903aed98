package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskforge/projecthub/internal/core/ports"
)

// AuthHandler handles signup, registration and login.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Signup creates the bootstrap Admin account.
//
// @Summary      Create the bootstrap Admin account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Account details (role must be Admin)"
// @Success      201   {object}  userEnvelope
// @Failure      400   {object}  baseResponse
// @Failure      403   {object}  baseResponse
// @Failure      409   {object}  baseResponse
// @Router       /auth/signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.authService.Signup(c.Request().Context(), toSignupInput(req))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, userEnvelope{
		baseResponse: ok("User registered successfully"),
		User:         toUserResponse(user),
	})
}

// Register creates a Manager or Employee account. Admin-gated by the router.
//
// @Summary      Register a Manager or Employee account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      signupRequest  true  "Account details (role Manager or Employee)"
// @Success      201   {object}  userEnvelope
// @Failure      400   {object}  baseResponse
// @Failure      401   {object}  baseResponse
// @Failure      403   {object}  baseResponse
// @Failure      409   {object}  baseResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.authService.Register(c.Request().Context(), toSignupInput(req))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, userEnvelope{
		baseResponse: ok("User registered successfully"),
		User:         toUserResponse(user),
	})
}

// Login authenticates a user and returns a session token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginEnvelope
// @Failure      400   {object}  baseResponse
// @Failure      401   {object}  baseResponse
// @Failure      404   {object}  baseResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, loginEnvelope{
		baseResponse: ok("Login successful"),
		Token:        token,
		User:         toUserResponse(user),
	})
}
