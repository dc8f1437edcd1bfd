// Package repository contains the data access layer, separated from HTTP
// handlers. The sentinel values defined here let higher layers distinguish
// failure scenarios: handlers translate ErrUserNotFound and ErrMovieNotFound
// into HTTP 404 responses and ErrEmptyName into a 400.
package repository

import "errors"

// ErrUserNotFound is returned when a user id does not resolve to a row.
var ErrUserNotFound = errors.New("user not found")

// ErrMovieNotFound is returned when a movie id does not resolve to a row.
var ErrMovieNotFound = errors.New("movie not found")

// ErrEmptyName is returned by CreateUser when the name is empty after
// trimming. Validation lives here so every caller gets the same rule.
var ErrEmptyName = errors.New("name is required")
