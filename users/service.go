package users

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/mindwell-app/mindwell/internal/errors"
)

// NowTimeFunc returns the current time. It can be overridden in tests.
var NowTimeFunc = time.Now

// Service handles registration and credential checks on top of a UserRepo.
type Service struct {
	repo UserRepo
}

// NewService creates a user service.
func NewService(repo UserRepo) *Service {
	return &Service{repo: repo}
}

// Register creates a new account with a bcrypt-hashed password.
func (s *Service) Register(username, email, password string) (*User, error) {
	if existing, err := s.repo.GetByUsername(username); err == nil && existing != nil {
		return nil, apperrors.ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		DateJoined:   NowTimeFunc(),
	}
	if err := s.repo.Upsert(user); err != nil {
		return nil, fmt.Errorf("store user: %w", err)
	}
	return user, nil
}

// Get looks up a user by ID.
func (s *Service) Get(id string) (*User, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("lookup user by id: %w", err)
	}
	return user, nil
}

// Authenticate verifies a username/password pair and records the login time.
func (s *Service) Authenticate(username, password string) (*User, error) {
	user, err := s.repo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	user.LastLogin = NowTimeFunc()
	if err := s.repo.Upsert(user); err != nil {
		return nil, fmt.Errorf("update last login: %w", err)
	}
	return user, nil
}
