package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/MohammedIhsaan28/Acquisition/internal/auth"
	"github.com/MohammedIhsaan28/Acquisition/internal/config"
	"github.com/MohammedIhsaan28/Acquisition/internal/handler"
	"github.com/MohammedIhsaan28/Acquisition/internal/middleware"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	jwtService *auth.JWTService,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
) {
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/sign-up", authHandler.SignUp)
	api.POST("/auth/sign-in", authHandler.SignIn)
	api.POST("/auth/sign-out", authHandler.SignOut)
	api.GET("/users", userHandler.ListUsers)

	// Secured routes (require a valid session cookie). Ownership checks for
	// non-admins live inside the handlers.
	secured := api.Group("", middleware.Authenticate(jwtService))
	secured.GET("/users/:id", userHandler.GetUser)
	secured.PUT("/users/:id", userHandler.UpdateUser, middleware.RequireRole("user", "admin"))
	secured.DELETE("/users/:id", userHandler.DeleteUser, middleware.RequireRole("user", "admin"))
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
