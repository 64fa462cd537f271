// Package memory provides in-process implementations of the repository
// interfaces. The server falls back to them when no DATABASE_URL is
// configured, and tests use them to run without a database.
package memory

import (
	"context"
	"sync"

	"github.com/abhishek/learngrow/internal/domain"
	"github.com/abhishek/learngrow/internal/repository"
)

func NewRepositories() *repository.Repositories {
	return &repository.Repositories{
		User:       NewUserRepository(),
		ChatRecord: NewChatRecordRepository(),
	}
}

type UserRepository struct {
	mu      sync.Mutex
	byEmail map[string]domain.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{byEmail: make(map[string]domain.User)}
}

func (r *UserRepository) Create(_ context.Context, user *domain.User) error {
	// Check-and-insert under one lock: at most one of N concurrent
	// registrations for the same email can win.
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[user.Email]; ok {
		return domain.ErrEmailTaken
	}
	r.byEmail[user.Email] = *user
	return nil
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &user, nil
}

// Count reports the number of stored users.
func (r *UserRepository) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.byEmail)
}

type ChatRecordRepository struct {
	mu      sync.Mutex
	records []domain.ChatRecord
}

func NewChatRecordRepository() *ChatRecordRepository {
	return &ChatRecordRepository{}
}

func (r *ChatRecordRepository) Create(_ context.Context, record *domain.ChatRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, *record)
	return nil
}

// Records returns a copy of everything stored so far.
func (r *ChatRecordRepository) Records() []domain.ChatRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.ChatRecord, len(r.records))
	copy(out, r.records)
	return out
}
