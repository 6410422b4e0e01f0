package user

import (
	"log/slog"
	"time"

	"github.com/ferdiebergado/kubodir/internal/model"
)

type User struct {
	model.Model

	Email        string     `json:"email"`
	FirstName    string     `json:"first_name"`
	LastName     string     `json:"last_name"`
	DisplayName  string     `json:"display_name"`
	Phone        string     `json:"phone"`
	PasswordHash string     `json:"password_hash"`
	IsActive     bool       `json:"is_active"`
	IsVerified   bool       `json:"is_verified"`
	IsPrivileged bool       `json:"is_privileged"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`
}

func (u *User) Status() Status {
	return DeriveStatus(u.IsActive, u.IsVerified)
}

func (u *User) Role() Role {
	return DeriveRole(u.IsPrivileged)
}

func (u User) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("id", u.ID),
		slog.String("email", u.Email),
		slog.String("status", u.Status().String()),
	)
}

// CreateParams is the input of a create operation.
type CreateParams struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"-"`
	FirstName   string `json:"first_name" validate:"max=150"`
	LastName    string `json:"last_name" validate:"max=150"`
	DisplayName string `json:"display_name" validate:"max=150"`
	Phone       string `json:"phone"`
}

func (p CreateParams) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("email", p.Email),
		slog.String("display_name", p.DisplayName),
	)
}

// CreateUserParams is the record handed to the repository.
type CreateUserParams struct {
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	DisplayName  string
	Phone        string
}

// UpdateParams is the input of an update operation.
type UpdateParams struct {
	ID    string
	Patch Patch
	Mask  Mask
}
