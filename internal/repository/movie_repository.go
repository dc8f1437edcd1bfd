package repository

import (
	"context"
	"database/sql"
	"errors"
)

// Movie mirrors the 'movies' table. Year, Rating and Poster come from the
// metadata lookup and may be absent, so they are pointer-typed; a nil value
// is stored as NULL. Rating stays a string because the external source
// reports it as one (e.g. "8.8").
type Movie struct {
	ID      uint64  `json:"id"`
	Title   string  `json:"title"`
	Year    *int    `json:"year"`
	Rating  *string `json:"rating"`
	Poster  *string `json:"poster"`
	Comment string  `json:"comment"`
	UserID  uint64  `json:"user_id"`
}

type MovieRepo struct{ db *sql.DB }

func NewMovieRepo(db *sql.DB) *MovieRepo { return &MovieRepo{db: db} }

// Add inserts a fully-constructed movie and populates its ID. Duplicate
// checking is the caller's responsibility; Add persists what it is given.
func (r *MovieRepo) Add(ctx context.Context, m *Movie) error {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO movies (title, year, rating, poster, comment, user_id) VALUES (?,?,?,?,?,?)",
		m.Title, m.Year, m.Rating, m.Poster, m.Comment, m.UserID)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	m.ID = uint64(id)
	return nil
}

// GetByID fetches a movie by id. Returns ErrMovieNotFound if no row exists.
func (r *MovieRepo) GetByID(ctx context.Context, id uint64) (*Movie, error) {
	const q = "SELECT id, title, year, rating, poster, comment, user_id FROM movies WHERE id = ? LIMIT 1"
	m, err := scanMovie(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}
	return m, nil
}

// ListByUser returns all movies owned by userID ordered by id.
func (r *MovieRepo) ListByUser(ctx context.Context, userID uint64) ([]*Movie, error) {
	const q = `SELECT id, title, year, rating, poster, comment, user_id
	           FROM movies WHERE user_id = ? ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Movie
	for rows.Next() {
		m, err := scanMovie(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Update mutates exactly the title and comment columns of an existing movie.
// Year, rating, poster and ownership are left untouched. Returns
// ErrMovieNotFound when no row is affected.
func (r *MovieRepo) Update(ctx context.Context, id uint64, title, comment string) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE movies SET title = ?, comment = ? WHERE id = ?", title, comment, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrMovieNotFound
	}
	return nil
}

// Delete removes a movie. Returns ErrMovieNotFound when no row is affected.
func (r *MovieRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM movies WHERE id = ?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrMovieNotFound
	}
	return nil
}

// rowScanner lets scanMovie work with both QueryRow and rows iteration.
type rowScanner interface{ Scan(dest ...any) error }

func scanMovie(row rowScanner) (*Movie, error) {
	var (
		m      Movie
		year   sql.NullInt64
		rating sql.NullString
		poster sql.NullString
	)
	if err := row.Scan(&m.ID, &m.Title, &year, &rating, &poster, &m.Comment, &m.UserID); err != nil {
		return nil, err
	}
	if year.Valid {
		y := int(year.Int64)
		m.Year = &y
	}
	if rating.Valid {
		m.Rating = &rating.String
	}
	if poster.Valid {
		m.Poster = &poster.String
	}
	return &m, nil
}
