package auth

import (
	"context"
	"errors"
)

var (
	ErrNotFound           = errors.New("account not found")
	ErrUserAlreadyExists  = errors.New("account with this email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// UserRepository stores login accounts. Accounts are separate from
// consultant records; the two are linked through the email address only.
type UserRepository interface {
	Create(ctx context.Context, user User) error
	GetByEmail(ctx context.Context, email string) (User, error)
}
