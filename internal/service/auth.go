package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/driveease/rental-service/internal/model"
)

// TokenIssuer signs access tokens for authenticated users.
type TokenIssuer interface {
	Issue(user model.User) (string, error)
}

type AuthService struct {
	users  UserStore
	tokens TokenIssuer
}

func NewAuthService(users UserStore, tokens TokenIssuer) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

type LoginResult struct {
	UserID      uuid.UUID `json:"userId"`
	Username    string    `json:"username"`
	Role        model.Role `json:"role"`
	RedirectURL string    `json:"redirectUrl"`
	AccessToken string    `json:"accessToken"`
}

// Login checks the stored password by equality. Credentials are kept in
// plain text for parity with the legacy system; do not treat this as a
// security reference.
func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if user.Password != password {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(*user)
	if err != nil {
		return nil, err
	}

	redirect := "/search-results"
	switch user.Role {
	case model.RoleAdmin:
		redirect = "/admin"
	case model.RoleAgent:
		redirect = "/agent-dashboard"
	}

	return &LoginResult{
		UserID:      user.ID,
		Username:    user.Username,
		Role:        user.Role,
		RedirectURL: redirect,
		AccessToken: token,
	}, nil
}

// Signup registers a new user. Duplicate usernames are rejected before any
// insert happens.
func (s *AuthService) Signup(ctx context.Context, user model.User) (*model.User, error) {
	if user.Username == "" || user.Password == "" {
		return nil, fmt.Errorf("%w: username and password are required", ErrInvalidInput)
	}
	if user.Role == "" {
		user.Role = model.RoleCustomer
	}

	_, err := s.users.GetUserByUsername(ctx, user.Username)
	if err == nil {
		return nil, fmt.Errorf("%w: username %q is already taken", ErrConflict, user.Username)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	return s.users.CreateUser(ctx, user)
}

func (s *AuthService) ListAgents(ctx context.Context) ([]model.User, error) {
	return s.users.ListUsersByRole(ctx, model.RoleAgent)
}

func (s *AuthService) ListAdmins(ctx context.Context) ([]model.User, error) {
	return s.users.ListUsersByRole(ctx, model.RoleAdmin)
}

func (s *AuthService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.users.ListUsers(ctx)
}

type UpdateUserInput struct {
	Username string
	Password string
	Email    string
	Role     model.Role
}

func (s *AuthService) UpdateUser(ctx context.Context, id uuid.UUID, input UpdateUserInput) error {
	user, err := s.users.GetUser(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if input.Username != "" {
		user.Username = input.Username
	}
	if input.Password != "" {
		user.Password = input.Password
	}
	if input.Email != "" {
		user.Email = input.Email
	}
	if input.Role != "" {
		user.Role = input.Role
	}

	if err := s.users.UpdateUser(ctx, *user); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *AuthService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if err := s.users.DeleteUser(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
