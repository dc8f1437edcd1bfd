// Package router defines how HTTP routes are registered for the API.
package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movieweb/internal/handler"
)

// RegisterRoutes maps every endpoint onto the provided Echo instance and
// installs a JSON error handler so unmatched routes get a 404 body instead
// of Echo's default page.
func RegisterRoutes(e *echo.Echo, u *handler.UserHandler, m *handler.MovieHandler) {
	e.HTTPErrorHandler = errorHandler

	e.GET("/healthz", handler.Health)

	e.GET("/", u.ListUsers)
	e.POST("/users", u.CreateUser)
	e.POST("/users/:userID/delete", u.DeleteUser)

	g := e.Group("/users/:userID/movies")
	g.GET("", m.ListMovies)
	g.GET("/add", m.ShowAddForm)
	g.POST("/add", m.AddMovie)
	g.GET("/:movieID/update", m.ShowUpdateForm)
	g.POST("/:movieID/update", m.UpdateMovie)
	g.POST("/:movieID/delete", m.DeleteMovie)
}

// errorHandler renders framework-level errors (unmatched routes, method
// mismatches) as the same JSON shape the handlers use.
func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	code := http.StatusInternalServerError
	msg := "internal error"
	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		if s, ok := he.Message.(string); ok {
			msg = s
		}
	}
	if code == http.StatusNotFound {
		msg = "page not found"
	}
	_ = c.JSON(code, echo.Map{"error": msg})
}
