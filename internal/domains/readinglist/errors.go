package readinglist

import (
	"errors"
	"fmt"

	"github.com/BrieHudson/Chapter-Chat-Backend/internal/shared/apperror"
)

var errInvalidList = errors.New("invalid list type")

func ErrInvalidList() *apperror.Error {
	return apperror.Validation("Invalid list type")
}

// ErrNotInList is the expected outcome when a move targets an entry that is
// not in the claimed source list; callers surface it as a client error.
func ErrNotInList(from Status) *apperror.Error {
	return apperror.NotFound(fmt.Sprintf("Book not found in %s list", from))
}

func ErrAlreadyListed() *apperror.Error {
	return apperror.Conflict("Book is already in your reading list")
}
