package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/MohammedIhsaan28/Acquisition/internal/auth"
	"github.com/MohammedIhsaan28/Acquisition/internal/errors"
	"github.com/MohammedIhsaan28/Acquisition/internal/model"
	"github.com/MohammedIhsaan28/Acquisition/internal/service"
)

// AuthHandler handles sign-up, sign-in and sign-out. It owns token issuance
// and session cookie handling; the auth service only deals in credentials.
type AuthHandler struct {
	authService service.AuthService
	jwtService  *auth.JWTService
	sessions    *auth.SessionManager
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService, jwtService *auth.JWTService, sessions *auth.SessionManager) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		jwtService:  jwtService,
		sessions:    sessions,
	}
}

// SignUpRequest represents a user registration request.
type SignUpRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"omitempty,oneof=user admin"`
}

// SignInRequest represents a user sign-in request.
type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse wraps a public user with a message.
type UserResponse struct {
	Message string            `json:"message"`
	User    *model.PublicUser `json:"user"`
}

// MessageResponse carries a bare message.
type MessageResponse struct {
	Message string `json:"message"`
}

// SignUp godoc
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SignUpRequest true "Registration data"
// @Success 201 {object} UserResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/sign-up [post]
func (h *AuthHandler) SignUp(c echo.Context) error {
	var req SignUpRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_FAILED",
		})
	}

	user, err := h.authService.Register(c.Request().Context(), req.Name, req.Email, req.Password, req.Role)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	if err := h.startSession(c, user); err != nil {
		return err
	}
	c.Logger().Infof("user signed up: %s (%s, role: %s)", user.Email, user.Name, user.Role)

	return c.JSON(http.StatusCreated, UserResponse{
		Message: "User registered",
		User:    user.Public(),
	})
}

// SignIn godoc
// @Summary Sign in a user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SignInRequest true "Credentials"
// @Success 200 {object} UserResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/sign-in [post]
func (h *AuthHandler) SignIn(c echo.Context) error {
	var req SignInRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_FAILED",
		})
	}

	user, err := h.authService.Authenticate(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	if err := h.startSession(c, user); err != nil {
		return err
	}
	c.Logger().Infof("user signed in: %s (%s, role: %s)", user.Email, user.Name, user.Role)

	return c.JSON(http.StatusOK, UserResponse{
		Message: "User signed in",
		User:    user.Public(),
	})
}

// SignOut godoc
// @Summary Sign out the current user
// @Tags auth
// @Produce json
// @Success 200 {object} MessageResponse
// @Router /auth/sign-out [post]
func (h *AuthHandler) SignOut(c echo.Context) error {
	// Tokens are stateless; sign-out clears the cookie and nothing else. A
	// still-valid token replayed from an old cookie keeps working until expiry.
	h.sessions.Clear(c)
	c.Logger().Info("user signed out")

	return c.JSON(http.StatusOK, MessageResponse{
		Message: "User signed out successfully",
	})
}

func (h *AuthHandler) startSession(c echo.Context, user *model.User) error {
	token, err := h.jwtService.Sign(user.ID, user.Email, user.Role)
	if err != nil {
		c.Logger().Errorf("token issuance failed for user %d: %v", user.ID, err)
		return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
			Error: "internal server error",
			Code:  "TOKEN_ISSUANCE_FAILED",
		})
	}
	h.sessions.Attach(c, token)
	return nil
}
