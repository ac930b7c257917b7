package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"

	"armory/internal/api/services"
	"armory/internal/repository"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(db *sqlx.DB, jwtKey string) *AuthHandler {
	userRepo := repository.NewUserRepository(db)
	authService := services.NewAuthService(userRepo, jwtKey)

	return &AuthHandler{authService: authService}
}

type SignUpRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=3"`
}

type SignInRequest struct {
	Username string `json:"username" validate:"required" example:"admin"`
	Password string `json:"password" validate:"required" example:"password"`
}

type AuthUser struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

type AuthResponse struct {
	Token string   `json:"token"`
	User  AuthUser `json:"user"`
}

// SignUp godoc
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param body body SignUpRequest true "Credentials"
// @Success 201 {object} AuthResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/auth/signup [post]
func (h *AuthHandler) SignUp(c echo.Context) error {
	var req SignUpRequest
	if err := c.Bind(&req); err != nil {
		return ErrBadRequest(c, "invalid request")
	}

	if err := c.Validate(&req); err != nil {
		return ErrBadRequest(c, err.Error())
	}

	user, token, err := h.authService.SignUp(c.Request().Context(), services.SignUpInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserAlreadyExists):
			return ErrConflict(c, "user already exists")
		case errors.Is(err, services.ErrInvalidInput):
			return ErrBadRequest(c, "invalid input")
		default:
			return ErrInternalServerError(c)
		}
	}

	return c.JSON(http.StatusCreated, AuthResponse{
		Token: token,
		User: AuthUser{
			ID:        user.ID.String(),
			Username:  user.Username,
			Email:     user.Email,
			CreatedAt: user.CreatedAt,
		},
	})
}

// SignIn godoc
// @Summary Authenticate a user
// @Tags auth
// @Accept json
// @Produce json
// @Param body body SignInRequest true "Credentials"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /api/auth/signin [post]
func (h *AuthHandler) SignIn(c echo.Context) error {
	var req SignInRequest
	if err := c.Bind(&req); err != nil {
		return ErrBadRequest(c, "invalid request")
	}

	if err := c.Validate(&req); err != nil {
		return ErrBadRequest(c, err.Error())
	}

	user, token, err := h.authService.SignIn(c.Request().Context(), services.SignInInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidCredentials):
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid credentials"})
		case errors.Is(err, services.ErrInvalidInput):
			return ErrBadRequest(c, "invalid input")
		default:
			return ErrInternalServerError(c)
		}
	}

	return c.JSON(http.StatusOK, AuthResponse{
		Token: token,
		User: AuthUser{
			ID:        user.ID.String(),
			Username:  user.Username,
			Email:     user.Email,
			CreatedAt: user.CreatedAt,
		},
	})
}
