package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/movieweb/internal/database"
)

// setupTestDB creates an in-memory SQLite database with the schema applied.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func ptr[T any](v T) *T { return &v }

func TestUserRepo(t *testing.T) {
	ctx := context.Background()

	t.Run("Create", func(t *testing.T) {
		repo := NewUserRepo(setupTestDB(t))

		u, err := repo.Create(ctx, "Alice")
		require.NoError(t, err)
		assert.NotZero(t, u.ID)
		assert.Equal(t, "Alice", u.Name)

		got, err := repo.GetByID(ctx, u.ID)
		require.NoError(t, err)
		assert.Equal(t, u, got)
	})

	t.Run("CreateEmptyName", func(t *testing.T) {
		repo := NewUserRepo(setupTestDB(t))

		_, err := repo.Create(ctx, "")
		assert.ErrorIs(t, err, ErrEmptyName)
		_, err = repo.Create(ctx, "   ")
		assert.ErrorIs(t, err, ErrEmptyName)

		users, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, users)
	})

	t.Run("List", func(t *testing.T) {
		repo := NewUserRepo(setupTestDB(t))

		a, err := repo.Create(ctx, "Alice")
		require.NoError(t, err)
		b, err := repo.Create(ctx, "Bob")
		require.NoError(t, err)

		users, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, users, 2)
		assert.Equal(t, a.ID, users[0].ID)
		assert.Equal(t, b.ID, users[1].ID)
	})

	t.Run("GetByIDNotFound", func(t *testing.T) {
		repo := NewUserRepo(setupTestDB(t))

		_, err := repo.GetByID(ctx, 42)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("DeleteCascades", func(t *testing.T) {
		db := setupTestDB(t)
		users := NewUserRepo(db)
		movies := NewMovieRepo(db)

		u, err := users.Create(ctx, "Alice")
		require.NoError(t, err)
		require.NoError(t, movies.Add(ctx, &Movie{Title: "Inception", UserID: u.ID}))
		require.NoError(t, movies.Add(ctx, &Movie{Title: "Heat", UserID: u.ID}))

		require.NoError(t, users.Delete(ctx, u.ID))

		_, err = users.GetByID(ctx, u.ID)
		assert.ErrorIs(t, err, ErrUserNotFound)
		got, err := movies.ListByUser(ctx, u.ID)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("DeleteNotFound", func(t *testing.T) {
		repo := NewUserRepo(setupTestDB(t))

		err := repo.Delete(ctx, 42)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestMovieRepo(t *testing.T) {
	ctx := context.Background()

	newUser := func(t *testing.T, db *sql.DB) *User {
		t.Helper()
		u, err := NewUserRepo(db).Create(ctx, "Alice")
		require.NoError(t, err)
		return u
	}

	t.Run("AddAndGet", func(t *testing.T) {
		db := setupTestDB(t)
		u := newUser(t, db)
		repo := NewMovieRepo(db)

		m := &Movie{
			Title:   "Inception",
			Year:    ptr(2010),
			Rating:  ptr("8.8"),
			Poster:  ptr("https://example.com/inception.jpg"),
			Comment: "mind-bending",
			UserID:  u.ID,
		}
		require.NoError(t, repo.Add(ctx, m))
		assert.NotZero(t, m.ID)

		got, err := repo.GetByID(ctx, m.ID)
		require.NoError(t, err)
		assert.Equal(t, m, got)
	})

	t.Run("AddWithAbsentFields", func(t *testing.T) {
		db := setupTestDB(t)
		u := newUser(t, db)
		repo := NewMovieRepo(db)

		m := &Movie{Title: "Obscure Film", UserID: u.ID}
		require.NoError(t, repo.Add(ctx, m))

		got, err := repo.GetByID(ctx, m.ID)
		require.NoError(t, err)
		assert.Nil(t, got.Year)
		assert.Nil(t, got.Rating)
		assert.Nil(t, got.Poster)
	})

	t.Run("ListByUser", func(t *testing.T) {
		db := setupTestDB(t)
		u := newUser(t, db)
		other, err := NewUserRepo(db).Create(ctx, "Bob")
		require.NoError(t, err)
		repo := NewMovieRepo(db)

		require.NoError(t, repo.Add(ctx, &Movie{Title: "Heat", UserID: u.ID}))
		require.NoError(t, repo.Add(ctx, &Movie{Title: "Ronin", UserID: other.ID}))
		require.NoError(t, repo.Add(ctx, &Movie{Title: "Inception", UserID: u.ID}))

		got, err := repo.ListByUser(ctx, u.ID)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "Heat", got[0].Title)
		assert.Equal(t, "Inception", got[1].Title)
	})

	t.Run("UpdateTouchesOnlyTitleAndComment", func(t *testing.T) {
		db := setupTestDB(t)
		u := newUser(t, db)
		repo := NewMovieRepo(db)

		m := &Movie{
			Title:  "Inception",
			Year:   ptr(2010),
			Rating: ptr("8.8"),
			Poster: ptr("https://example.com/inception.jpg"),
			UserID: u.ID,
		}
		require.NoError(t, repo.Add(ctx, m))

		require.NoError(t, repo.Update(ctx, m.ID, "New Title", "new comment"))

		got, err := repo.GetByID(ctx, m.ID)
		require.NoError(t, err)
		assert.Equal(t, "New Title", got.Title)
		assert.Equal(t, "new comment", got.Comment)
		assert.Equal(t, m.Year, got.Year)
		assert.Equal(t, m.Rating, got.Rating)
		assert.Equal(t, m.Poster, got.Poster)
		assert.Equal(t, u.ID, got.UserID)
	})

	t.Run("UpdateNotFound", func(t *testing.T) {
		repo := NewMovieRepo(setupTestDB(t))
		assert.ErrorIs(t, repo.Update(ctx, 42, "x", "y"), ErrMovieNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		db := setupTestDB(t)
		u := newUser(t, db)
		repo := NewMovieRepo(db)

		m := &Movie{Title: "Heat", UserID: u.ID}
		require.NoError(t, repo.Add(ctx, m))
		require.NoError(t, repo.Delete(ctx, m.ID))

		_, err := repo.GetByID(ctx, m.ID)
		assert.ErrorIs(t, err, ErrMovieNotFound)
	})

	t.Run("DeleteNotFound", func(t *testing.T) {
		repo := NewMovieRepo(setupTestDB(t))
		assert.ErrorIs(t, repo.Delete(ctx, 42), ErrMovieNotFound)
	})
}
