package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/BrieHudson/Chapter-Chat-Backend/internal/domains/user"
	"github.com/BrieHudson/Chapter-Chat-Backend/internal/shared/apperror"
	"github.com/BrieHudson/Chapter-Chat-Backend/pkg/jwt"
)

type authService struct {
	repo user.Repository
	jwt  *jwt.Manager
}

func NewAuthService(repo user.Repository, jwtManager *jwt.Manager) user.Service {
	return &authService{
		repo: repo,
		jwt:  jwtManager,
	}
}

func (s *authService) Signup(ctx context.Context, req user.SignupRequest) (*user.SignupResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.ValidationErr(err)
	}

	exists, err := s.repo.ExistsByUsernameOrEmail(ctx, req.Username, req.Email)
	if err != nil {
		return nil, apperror.Storage(fmt.Errorf("check credentials taken: %w", err))
	}
	if exists {
		return nil, user.ErrCredentialsTaken()
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 10)
	if err != nil {
		return nil, apperror.Storage(fmt.Errorf("hash password: %w", err))
	}

	newUser := &user.User{
		ID:           uuid.New(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(passwordHash),
		TokenVersion: 0,
		Role:         user.RoleUser,
		CreatedAt:    time.Now(),
	}

	if err := s.repo.Create(ctx, newUser); err != nil {
		// The unique constraint may still fire under a concurrent signup.
		if apperror.IsKind(err, apperror.KindConflict) {
			return nil, err
		}
		return nil, apperror.Storage(fmt.Errorf("create user: %w", err))
	}

	return &user.SignupResponse{
		Message: "User created successfully",
		User:    newUser.Summary(),
	}, nil
}

func (s *authService) Login(ctx context.Context, req user.LoginRequest) (*user.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.ValidationErr(err)
	}

	u, err := s.repo.FindByUsername(ctx, req.Username)
	if err != nil {
		if apperror.IsKind(err, apperror.KindNotFound) {
			return nil, user.ErrInvalidCredentials()
		}
		return nil, apperror.Storage(fmt.Errorf("find user: %w", err))
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, user.ErrInvalidCredentials()
	}

	if u.Banned {
		return nil, user.ErrUserBanned()
	}

	// The issued token carries the current token version; a later logout or
	// ban bumps the stored counter and orphans this token.
	token, err := s.jwt.Generate(u.ID.String(), u.TokenVersion)
	if err != nil {
		return nil, apperror.Storage(fmt.Errorf("generate token: %w", err))
	}

	return &user.LoginResponse{
		Token:   token,
		Message: "Logged in successfully",
	}, nil
}

func (s *authService) Logout(ctx context.Context, userID uuid.UUID) error {
	if err := s.repo.IncrementTokenVersion(ctx, userID); err != nil {
		if apperror.IsKind(err, apperror.KindNotFound) {
			return err
		}
		return apperror.Storage(fmt.Errorf("increment token version: %w", err))
	}
	return nil
}
