package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"openeye/internal/errors"
	"openeye/internal/service"
)

// AuthHandler handles registration and login endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRequest represents a user registration request.
type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
	UserType string `json:"user_type"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// MessageResponse is the plain success envelope.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// UserSummary is the minimal user view returned by login.
type UserSummary struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	UserType string `json:"user_type"`
}

// LoginResponse carries the user summary on successful login.
type LoginResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	User    UserSummary `json:"user"`
}

// Register godoc
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.Response
// @Failure 500 {object} errors.Response
// @Router /register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	_, err := h.authService.Register(c.Request().Context(), req.Username, req.Email, req.Password, req.UserType)
	if err != nil {
		he := errors.MapError(err)
		return c.JSON(he.StatusCode, he.ToResponse())
	}

	return c.JSON(http.StatusOK, MessageResponse{
		Success: true,
		Message: "Registration successful",
	})
}

// Login godoc
// @Summary Verify credentials and return the user summary
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} LoginResponse
// @Failure 401 {object} errors.Response
// @Failure 500 {object} errors.Response
// @Router /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		he := errors.MapError(err)
		return c.JSON(he.StatusCode, he.ToResponse())
	}

	return c.JSON(http.StatusOK, LoginResponse{
		Success: true,
		Message: "Login successful",
		User: UserSummary{
			ID:       user.ID,
			Username: user.Username,
			UserType: user.UserType,
		},
	})
}
