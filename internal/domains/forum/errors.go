package forum

import (
	"github.com/BrieHudson/Chapter-Chat-Backend/internal/shared/apperror"
)

func ErrClubNotFound() *apperror.Error {
	return apperror.NotFound("Book club not found")
}

func ErrNotMember() *apperror.Error {
	return apperror.Authorization("You must be a member of this club to post")
}

func ErrEmptyContent() *apperror.Error {
	return apperror.Validation("Post content cannot be empty")
}
