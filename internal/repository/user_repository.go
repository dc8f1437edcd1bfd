package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
)

// User mirrors the 'users' table. Every user owns zero or more movies;
// deleting a user cascades to them (see Delete).
type User struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

type UserRepo struct{ db *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{db: db} }

// Create inserts a user and returns the record with its generated id.
// An empty name (after trimming) is rejected with ErrEmptyName.
func (r *UserRepo) Create(ctx context.Context, name string) (*User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	res, err := r.db.ExecContext(ctx, "INSERT INTO users (name) VALUES (?)", name)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return &User{ID: uint64(id), Name: name}, nil
}

// GetByID fetches a user by id. Returns ErrUserNotFound if no row exists.
func (r *UserRepo) GetByID(ctx context.Context, id uint64) (*User, error) {
	var u User
	err := r.db.QueryRowContext(ctx,
		"SELECT id, name FROM users WHERE id = ? LIMIT 1", id).
		Scan(&u.ID, &u.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// List returns all users ordered by id.
func (r *UserRepo) List(ctx context.Context) ([]*User, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT id, name FROM users ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*User
	for rows.Next() {
		u := new(User)
		if err := rows.Scan(&u.ID, &u.Name); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes a user and all of their movies. The deletion happens in a
// transaction so no orphaned movies are left behind. Returns ErrUserNotFound
// when the user id does not exist.
func (r *UserRepo) Delete(ctx context.Context, id uint64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			_ = tx.Commit()
		}
	}()

	if _, err = tx.ExecContext(ctx, "DELETE FROM movies WHERE user_id = ?", id); err != nil {
		return err
	}
	var res sql.Result
	if res, err = tx.ExecContext(ctx, "DELETE FROM users WHERE id = ?", id); err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		err = ErrUserNotFound
		return err
	}
	return nil
}
