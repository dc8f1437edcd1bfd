// Package handler contains the HTTP handlers. Handlers orchestrate
// validation, duplicate checking and metadata lookup, and delegate all
// persistence to the repository layer.
package handler

import (
	"context"
	"strconv"

	"github.com/labstack/echo/v4"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/iliyamo/movieweb/internal/omdb"
)

// MetadataFetcher is the lookup contract consumed by the add-movie flow.
// *omdb.Client satisfies it; tests substitute a stub.
type MetadataFetcher interface {
	Fetch(ctx context.Context, title string) (*omdb.Result, error)
}

var titleCaser = cases.Title(language.Und)

// titleCase normalizes a user-submitted title to title case for the
// metadata lookup ("the matrix" -> "The Matrix").
func titleCase(s string) string { return titleCaser.String(s) }

// parseID parses a numeric path parameter.
func parseID(c echo.Context, name string) (uint64, error) {
	return strconv.ParseUint(c.Param(name), 10, 64)
}
