package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Credentials is the stored login material for one user.
type Credentials struct {
	Username     string
	PasswordHash string
	IsAdmin      bool
}

// UserService provides CRUD operations over the users table. Password
// material entering or leaving this service is always a bcrypt digest.
type UserService interface {
	// List returns all users without password material.
	List(ctx context.Context) ([]UserSummary, error)

	// Get returns one user by username.
	Get(ctx context.Context, username string) (*UserSummary, error)

	// GetCredentials returns the stored digest and admin flag for login.
	GetCredentials(ctx context.Context, username string) (*Credentials, error)

	// Create inserts a new user and returns the persisted row.
	Create(ctx context.Context, in UserInput) (*User, error)

	// Update applies a partial update keyed by username.
	Update(ctx context.Context, username string, u UserUpdate) (*UserSummary, error)

	// Delete removes a user; deleting a missing username is an error.
	Delete(ctx context.Context, username string) error
}

type userService struct {
	pool *pgxpool.Pool
}

// NewUserService constructs a UserService backed by PostgreSQL.
func NewUserService(pool *pgxpool.Pool) UserService {
	return &userService{pool: pool}
}

func (s *userService) List(ctx context.Context) ([]UserSummary, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT username, first_name, last_name, email
		FROM users
		ORDER BY username`,
	)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	users := make([]UserSummary, 0)
	for rows.Next() {
		var u UserSummary
		if err := rows.Scan(&u.Username, &u.FirstName, &u.LastName, &u.Email); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (s *userService) Get(ctx context.Context, username string) (*UserSummary, error) {
	u := &UserSummary{}
	err := s.pool.QueryRow(ctx, `
		SELECT username, first_name, last_name, email
		FROM users
		WHERE username=$1`,
		username,
	).Scan(&u.Username, &u.FirstName, &u.LastName, &u.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, NewNotFound("No user found with username: %s", username)
		}
		return nil, fmt.Errorf("get user %q: %w", username, err)
	}
	return u, nil
}

func (s *userService) GetCredentials(ctx context.Context, username string) (*Credentials, error) {
	c := &Credentials{}
	err := s.pool.QueryRow(ctx, `
		SELECT username, password, is_admin
		FROM users
		WHERE username=$1`,
		username,
	).Scan(&c.Username, &c.PasswordHash, &c.IsAdmin)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, NewNotFound("No user found with username: %s", username)
		}
		return nil, fmt.Errorf("get credentials %q: %w", username, err)
	}
	return c, nil
}

func (s *userService) Create(ctx context.Context, in UserInput) (*User, error) {
	query, values, err := BuildInsert("users", in.fields(),
		"username, first_name, last_name, email, photo_url, is_admin")
	if err != nil {
		return nil, err
	}

	u := &User{}
	err = s.pool.QueryRow(ctx, query, values...).
		Scan(&u.Username, &u.FirstName, &u.LastName, &u.Email, &u.PhotoURL, &u.IsAdmin)
	if err != nil {
		return nil, translateConstraint(err,
			fmt.Sprintf("User with username %s already exists", in.Username),
			fmt.Sprintf("invalid reference in user %s", in.Username))
	}
	return u, nil
}

func (s *userService) Update(ctx context.Context, username string, u UserUpdate) (*UserSummary, error) {
	query, values, err := BuildPartialUpdate("users", u.Fields(), "username", username)
	if err != nil {
		return nil, err
	}

	// RETURNING * follows the users table column order.
	out := &UserSummary{}
	var digest string
	var photoURL *string
	var isAdmin bool
	err = s.pool.QueryRow(ctx, query, values...).
		Scan(&out.Username, &digest, &out.FirstName, &out.LastName, &out.Email, &photoURL, &isAdmin)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, NewNotFound("No user found with username: %s", username)
		}
		return nil, translateConstraint(err,
			fmt.Sprintf("User with username %s already exists", username),
			fmt.Sprintf("invalid reference in user %s", username))
	}
	return out, nil
}

func (s *userService) Delete(ctx context.Context, username string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM users WHERE username=$1`, username)
	if err != nil {
		return fmt.Errorf("delete user %q: %w", username, err)
	}
	if tag.RowsAffected() == 0 {
		return NewNotFound("No user found with username: %s", username)
	}
	return nil
}
