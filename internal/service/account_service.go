package service

import (
	"context"
	"errors"
	"time"

	"github.com/abhishek/learngrow/internal/config"
	"github.com/abhishek/learngrow/internal/domain"
	"github.com/abhishek/learngrow/internal/repository"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type AccountService struct {
	userRepo repository.UserRepository
	cfg      *config.Config
}

func NewAccountService(userRepo repository.UserRepository, cfg *config.Config) *AccountService {
	return &AccountService{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

func (s *AccountService) Register(ctx context.Context, input RegisterInput) error {
	if input.Name == "" || input.Email == "" || input.Password == "" {
		return domain.ErrMissingFields
	}

	// Fast-path duplicate check. The store's unique index remains the real
	// arbiter: two concurrent registrations can both pass this lookup, and
	// then Create fails the loser with ErrEmailTaken.
	if _, err := s.userRepo.GetByEmail(ctx, input.Email); err == nil {
		return domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := &domain.User{
		ID:           uuid.New(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	return s.userRepo.Create(ctx, user)
}

func (s *AccountService) Login(ctx context.Context, input LoginInput) (*domain.User, error) {
	if input.Email == "" || input.Password == "" {
		return nil, domain.ErrMissingFields
	}

	user, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}

	// bcrypt re-derives the hash with the salt and cost embedded in the
	// stored value; direct hash equality would never match.
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, domain.ErrInvalidPassword
	}

	return user, nil
}

// SessionToken issues a signed bearer token for the user. The token is an
// optional convenience on top of the demo's body-email identity claim;
// no endpoint requires it.
func (s *AccountService) SessionToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":   user.ID.String(),
		"email": user.Email,
		"name":  user.Name,
		"exp":   time.Now().Add(time.Duration(s.cfg.JWTExpirationHours) * time.Hour).Unix(),
		"iat":   time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

// ValidateToken returns the email claim of a valid session token.
func (s *AccountService) ValidateToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", errors.New("invalid token")
	}

	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return "", errors.New("missing email claim")
	}
	return email, nil
}
