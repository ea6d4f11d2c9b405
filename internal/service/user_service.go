package service

import (
	"context"
	"errors"
	"strings"

	"github.com/ecosnap/ecosnap-backend/internal/logger"
	"github.com/ecosnap/ecosnap-backend/internal/model"
	"github.com/ecosnap/ecosnap-backend/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmptyCredentials   = errors.New("username and password are required")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNoSession          = errors.New("no current session")
)

// UserService handles login (with first-login auto-provisioning), the
// persisted current-session pointer, and record reads.
type UserService interface {
	Login(ctx context.Context, username, password string) (*model.User, error)
	Logout(ctx context.Context, username string) error
	Me(ctx context.Context, username string) (*model.User, error)
	CurrentSession(ctx context.Context) (*model.User, error)
}

type userService struct {
	users    repository.UserRepository
	sessions repository.SessionRepository
	growth   *GrowthScheduler
}

func NewUserService(users repository.UserRepository, sessions repository.SessionRepository, growth *GrowthScheduler) UserService {
	return &userService{users: users, sessions: sessions, growth: growth}
}

// Login authenticates an existing account or creates a new one when the
// username has never been seen. A fresh account starts with zero points,
// zero bank, and a single default tree.
func (s *userService) Login(ctx context.Context, username, password string) (*model.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, ErrEmptyCredentials
	}

	u, err := s.users.Get(ctx, username)
	switch {
	case err == nil:
		if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
			return nil, ErrInvalidCredentials
		}
	case errors.Is(err, repository.ErrUserNotFound):
		hash, herr := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if herr != nil {
			return nil, herr
		}
		u = &model.User{
			Username:     username,
			PasswordHash: string(hash),
			Points:       0,
			TreeBank:     0,
			Trees:        []model.Tree{model.DefaultTree(username)},
		}
		if err := s.users.Create(ctx, u); err != nil {
			return nil, err
		}
		logger.Log.Infow("account created", "username", username)
	default:
		return nil, err
	}

	// Replacing the session supersedes any pending growth commit scheduled
	// for a previous login of this user.
	s.growth.Cancel(username)
	if err := s.sessions.Set(ctx, username); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *userService) Logout(ctx context.Context, username string) error {
	s.growth.Cancel(username)
	return s.sessions.Clear(ctx)
}

func (s *userService) Me(ctx context.Context, username string) (*model.User, error) {
	return s.users.Get(ctx, username)
}

// CurrentSession restores the persisted session pointer, if any.
func (s *userService) CurrentSession(ctx context.Context) (*model.User, error) {
	username, err := s.sessions.Current(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNoSession) {
			return nil, ErrNoSession
		}
		return nil, err
	}
	u, err := s.users.Get(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrNoSession
		}
		return nil, err
	}
	return u, nil
}
