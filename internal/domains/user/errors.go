package user

import (
	"github.com/BrieHudson/Chapter-Chat-Backend/internal/shared/apperror"
)

func ErrCredentialsTaken() *apperror.Error {
	return apperror.Conflict("Username or email already taken")
}

// ErrInvalidCredentials never reveals whether the username exists.
func ErrInvalidCredentials() *apperror.Error {
	return apperror.Authentication("INVALID_CREDENTIALS", "Invalid username or password")
}

func ErrUserNotFound() *apperror.Error {
	return apperror.NotFound("User not found")
}

func ErrUserBanned() *apperror.Error {
	return apperror.Authorization("This account has been suspended")
}
