package omdb

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetch(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "testkey", r.URL.Query().Get("apikey"))
			assert.Equal(t, "Inception", r.URL.Query().Get("t"))
			w.Write([]byte(`{"Title":"Inception","Year":"2010","imdbRating":"8.8","Poster":"https://example.com/p.jpg","Response":"True"}`))
		}))
		defer srv.Close()

		res, err := NewClient("testkey", srv.URL).Fetch(ctx, "Inception")
		require.NoError(t, err)
		assert.Equal(t, "Inception", res.Title)
		assert.Equal(t, "2010", res.Year)
		assert.Equal(t, "8.8", res.ImdbRating)
		assert.Equal(t, "https://example.com/p.jpg", res.Poster)
	})

	t.Run("NotFound", func(t *testing.T) {
		// OMDb reports misses with a 200 and Response=="False".
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"Response":"False","Error":"Movie not found!"}`))
		}))
		defer srv.Close()

		_, err := NewClient("testkey", srv.URL).Fetch(ctx, "No Such Film")
		assert.ErrorIs(t, err, ErrMovieNotFound)
	})

	t.Run("ServerError", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer srv.Close()

		_, err := NewClient("badkey", srv.URL).Fetch(ctx, "Inception")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrMovieNotFound)
	})

	t.Run("Unreachable", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close()

		_, err := NewClient("testkey", srv.URL).Fetch(ctx, "Inception")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrMovieNotFound)
	})
}
