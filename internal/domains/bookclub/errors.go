package bookclub

import (
	"strings"

	"github.com/BrieHudson/Chapter-Chat-Backend/internal/shared/apperror"
)

func ErrClubNotFound() *apperror.Error {
	return apperror.NotFound("Book club not found")
}

func ErrAlreadyMember() *apperror.Error {
	return apperror.Conflict("You are already a member of this club")
}

func ErrNotCreator() *apperror.Error {
	return apperror.Authorization("Only the club creator can update this club")
}

func ErrMissingQuery() *apperror.Error {
	return apperror.Validation("Search query is required")
}

func ErrMissingFields(fields []string) *apperror.Error {
	return apperror.Validation("Missing required fields: " + strings.Join(fields, ", "))
}
