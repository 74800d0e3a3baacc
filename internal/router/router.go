package router

import (
	stderrors "errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"openeye/internal/errors"
	"openeye/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	authHandler *handler.AuthHandler,
	complaintHandler *handler.ComplaintHandler,
	directoryHandler *handler.DirectoryHandler,
	statsHandler *handler.StatsHandler,
	pageHandler *handler.PageHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.CORS())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	// Every failure, including bind errors and recovered panics, leaves the
	// boundary as the uniform {success:false, message} envelope.
	e.HTTPErrorHandler = errorHandler

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Rendered pages
	e.GET("/", pageHandler.Index)
	e.GET("/login_register.html", pageHandler.LoginRegister)
	e.GET("/areas.html", pageHandler.Areas)
	e.GET("/file_complaint.html", pageHandler.FileComplaint)
	e.GET("/pending_problems.html", pageHandler.PendingProblems)
	e.GET("/active_authorities.html", pageHandler.ActiveAuthorities)

	api := e.Group("/api")

	api.POST("/register", authHandler.Register)
	api.POST("/login", authHandler.Login)
	api.POST("/complaints", complaintHandler.Submit)
	api.GET("/complaints", complaintHandler.List)
	api.GET("/authorities", directoryHandler.ListAuthorities)
	api.GET("/stats", statsHandler.Overview)
}

func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := err.Error()

	var echoErr *echo.HTTPError
	var appErr *errors.HTTPError
	switch {
	case stderrors.As(err, &echoErr):
		status = echoErr.Code
		message = fmt.Sprintf("%v", echoErr.Message)
	case stderrors.As(err, &appErr):
		status = appErr.StatusCode
		message = appErr.Message
	}

	_ = c.JSON(status, errors.Response{Success: false, Message: message})
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
