package repository

import (
	"context"

	"github.com/abhishek/learngrow/internal/domain"
)

type UserRepository interface {
	// Create persists a new user. A duplicate email fails with
	// domain.ErrEmailTaken; the uniqueness check is atomic in the store's
	// write path, so concurrent duplicate registrations cannot both succeed.
	Create(ctx context.Context, user *domain.User) error
	// GetByEmail returns domain.ErrUserNotFound when no user matches.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// ChatRecordRepository is append-only; the current scope exposes no read path.
type ChatRecordRepository interface {
	Create(ctx context.Context, record *domain.ChatRecord) error
}

type Repositories struct {
	User       UserRepository
	ChatRecord ChatRecordRepository
}
