package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movieweb/internal/omdb"
	"github.com/iliyamo/movieweb/internal/repository"
)

// MovieHandler bundles the repositories and the metadata fetcher needed for
// movie management.
type MovieHandler struct {
	Users   *repository.UserRepo
	Movies  *repository.MovieRepo
	Fetcher MetadataFetcher
	Log     *log.Logger
}

// NewMovieHandler constructs a MovieHandler and panics if any dependency is
// nil. A nil logger falls back to the package default.
func NewMovieHandler(users *repository.UserRepo, movies *repository.MovieRepo, fetcher MetadataFetcher, logger *log.Logger) *MovieHandler {
	if users == nil || movies == nil || fetcher == nil {
		panic("nil dependency passed to NewMovieHandler")
	}
	if logger == nil {
		logger = log.Default()
	}
	return &MovieHandler{Users: users, Movies: movies, Fetcher: fetcher, Log: logger}
}

// ListMovies handles GET /users/:userID/movies and returns the user together
// with their movies, in repository order.
func (h *MovieHandler) ListMovies(c echo.Context) error {
	id, err := parseID(c, "userID")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	user, err := h.Users.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "User not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	movies, err := h.Movies.ListByUser(c.Request().Context(), user.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"user": user, "movies": movies})
}

// ShowAddForm handles GET /users/:userID/movies/add. With HTML rendering out
// of scope it returns the user the form would be bound to.
func (h *MovieHandler) ShowAddForm(c echo.Context) error {
	id, err := parseID(c, "userID")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	user, err := h.Users.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "User not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"user": user})
}

// AddMovie handles POST /users/:userID/movies/add. The flow: resolve the
// user, require a title, normalize it, reject case-insensitive duplicates
// within the user's list, look up metadata, then persist. A clean lookup
// miss is a 404 with no state change; any other lookup failure is absorbed
// and the movie is stored with only the submitted title.
func (h *MovieHandler) AddMovie(c echo.Context) error {
	id, err := parseID(c, "userID")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx := c.Request().Context()
	user, err := h.Users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "User not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}

	title := c.FormValue("title")
	comment := c.FormValue("comment")
	if title == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Title required"})
	}
	normalized := titleCase(title)

	existing, err := h.Movies.ListByUser(ctx, user.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	for _, m := range existing {
		if strings.EqualFold(m.Title, title) {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Movie already exists"})
		}
	}

	fetched, err := h.Fetcher.Fetch(ctx, normalized)
	if err != nil {
		if errors.Is(err, omdb.ErrMovieNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Movie not found"})
		}
		// Lookup failed for some other reason; keep going with just the
		// submitted title.
		h.Log.Warn("metadata fetch failed", "title", normalized, "err", err)
		fetched = nil
	}

	movie := buildMovie(user.ID, normalized, comment, fetched)
	if err := h.Movies.Add(ctx, movie); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not add movie"})
	}
	return c.Redirect(http.StatusFound, fmt.Sprintf("/users/%d/movies", user.ID))
}

// ShowUpdateForm handles GET /users/:userID/movies/:movieID/update and
// returns the movie the edit form would be bound to.
func (h *MovieHandler) ShowUpdateForm(c echo.Context) error {
	id, err := parseID(c, "movieID")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	movie, err := h.Movies.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Movie not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"movie": movie})
}

// UpdateMovie handles POST /users/:userID/movies/:movieID/update. Title and
// comment are applied verbatim; there is no duplicate re-check and no
// re-fetch. Year, rating, poster and ownership are untouched.
func (h *MovieHandler) UpdateMovie(c echo.Context) error {
	userID, err := parseID(c, "userID")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	movieID, err := parseID(c, "movieID")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	title := c.FormValue("title")
	comment := c.FormValue("comment")
	if err := h.Movies.Update(c.Request().Context(), movieID, title, comment); err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Movie not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.Redirect(http.StatusFound, fmt.Sprintf("/users/%d/movies", userID))
}

// DeleteMovie handles POST /users/:userID/movies/:movieID/delete.
func (h *MovieHandler) DeleteMovie(c echo.Context) error {
	userID, err := parseID(c, "userID")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	movieID, err := parseID(c, "movieID")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.Movies.Delete(c.Request().Context(), movieID); err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Movie not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.Redirect(http.StatusFound, fmt.Sprintf("/users/%d/movies", userID))
}

// buildMovie maps a fetch result onto a movie record. Fields the lookup did
// not provide stay absent; an unparsable year (e.g. a series range like
// "2010-2014") also stays absent rather than guessing.
func buildMovie(userID uint64, normalizedTitle, comment string, fetched *omdb.Result) *repository.Movie {
	m := &repository.Movie{Title: normalizedTitle, Comment: comment, UserID: userID}
	if fetched == nil {
		return m
	}
	if fetched.Title != "" {
		m.Title = fetched.Title
	}
	if y, err := strconv.Atoi(fetched.Year); err == nil {
		m.Year = &y
	}
	if fetched.ImdbRating != "" {
		m.Rating = &fetched.ImdbRating
	}
	if fetched.Poster != "" {
		m.Poster = &fetched.Poster
	}
	return m
}
