package readinglist

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/BrieHudson/Chapter-Chat-Backend/internal/domains/book"
)

// AddBookRequest adds a book to one of the three lists.
type AddBookRequest struct {
	Book book.Reference `json:"book"`
	List Status         `json:"list"`
}

func (r AddBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.List,
			validation.Required.Error("list is required"),
			validation.By(validStatus),
		),
	)
}

// MoveBookRequest moves a book between lists.
type MoveBookRequest struct {
	BookID   string `json:"bookId"`
	FromList Status `json:"fromList"`
	ToList   Status `json:"toList"`
}

func (r MoveBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.BookID, validation.Required.Error("bookId is required")),
		validation.Field(&r.FromList,
			validation.Required.Error("fromList is required"),
			validation.By(validStatus),
		),
		validation.Field(&r.ToList,
			validation.Required.Error("toList is required"),
			validation.By(validStatus),
		),
	)
}

func validStatus(value interface{}) error {
	s, _ := value.(Status)
	if !s.Valid() {
		return errInvalidList
	}
	return nil
}
