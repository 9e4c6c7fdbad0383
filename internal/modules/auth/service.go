package auth

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"tourcrm/internal/domain"
	"tourcrm/internal/repository"
)

const demoPassword = "demo123"

type Service struct {
	users UserRepository
	jwt   jwtService
}

func NewService(users UserRepository, jwt jwtService) *Service {
	return &Service{users: users, jwt: jwt}
}

// Login verifies a password against the stored hash and issues a token.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	// Users created without a password cannot log in this way.
	if user.PasswordHash == "" {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issueToken(user)
}

// DemoLogin finds or creates the canned user for a role and issues a token.
func (s *Service) DemoLogin(ctx context.Context, role domain.Role) (*LoginResponse, error) {
	if !role.Valid() {
		return nil, ErrInvalidRole
	}

	email := "manager@demo.com"
	name := "Manager User"
	if role == domain.RoleAdmin {
		email = "admin@demo.com"
		name = "Admin User"
	}

	user, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		hash, hashErr := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
		if hashErr != nil {
			return nil, hashErr
		}

		user = &domain.User{
			Name:         name,
			Email:        email,
			PasswordHash: string(hash),
			Role:         role,
		}
		if err := s.users.Create(ctx, user); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	return s.issueToken(user)
}

func (s *Service) issueToken(user *domain.User) (*LoginResponse, error) {
	token, err := s.jwt.GenerateToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, err
	}
	return &LoginResponse{Token: token, User: user}, nil
}
