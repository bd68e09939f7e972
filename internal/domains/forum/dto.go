package forum

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreatePostRequest creates a post in a club's forum. BookID is optional;
// when absent the post is attached to the club's current book.
type CreatePostRequest struct {
	Content          string `json:"content"`
	BookID           string `json:"book_id,omitempty"`
	ContainsSpoilers bool   `json:"contains_spoilers"`
}

func (r CreatePostRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Content, validation.Required.Error("content is required")),
	)
}
