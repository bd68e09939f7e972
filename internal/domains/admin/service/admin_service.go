package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/BrieHudson/Chapter-Chat-Backend/internal/domains/admin"
	"github.com/BrieHudson/Chapter-Chat-Backend/internal/domains/bookclub"
	"github.com/BrieHudson/Chapter-Chat-Backend/internal/domains/user"
	"github.com/BrieHudson/Chapter-Chat-Backend/internal/shared/apperror"
	"github.com/BrieHudson/Chapter-Chat-Backend/pkg/logger"
)

type adminService struct {
	users user.Repository
	clubs bookclub.Service
}

func NewAdminService(users user.Repository, clubs bookclub.Service) admin.Service {
	return &adminService{users: users, clubs: clubs}
}

func (s *adminService) BanUser(ctx context.Context, userID uuid.UUID) error {
	if err := s.users.Ban(ctx, userID); err != nil {
		if apperror.As(err) != nil {
			return err
		}
		return apperror.Storage(err)
	}

	logger.Info("user banned", map[string]interface{}{"user_id": userID.String()})
	return nil
}

func (s *adminService) DeleteClub(ctx context.Context, clubID uuid.UUID) error {
	if err := s.clubs.Delete(ctx, clubID); err != nil {
		return err
	}

	logger.Info("book club deleted", map[string]interface{}{"club_id": clubID.String()})
	return nil
}
