package bookclub

import (
	"strings"
	"time"

	"github.com/BrieHudson/Chapter-Chat-Backend/internal/domains/book"
)

// CreateClubRequest creates a club. All four content fields are required;
// validation reports every missing field at once rather than the first.
type CreateClubRequest struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	ImageURL    string         `json:"image_url,omitempty"`
	Book        book.Reference `json:"book"`
	MeetingTime *time.Time     `json:"meeting_time"`
}

func (r CreateClubRequest) Validate() error {
	var missing []string
	if strings.TrimSpace(r.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(r.Description) == "" {
		missing = append(missing, "description")
	}
	if r.Book.IsZero() {
		missing = append(missing, "book")
	}
	if r.MeetingTime == nil {
		missing = append(missing, "meeting_time")
	}
	if len(missing) > 0 {
		return ErrMissingFields(missing)
	}
	return nil
}

// UpdateClubRequest is a partial update. Absent fields are left untouched;
// a present field replaces the stored value.
type UpdateClubRequest struct {
	Name        *string         `json:"name"`
	Description *string         `json:"description"`
	ImageURL    *string         `json:"image_url"`
	Book        *book.Reference `json:"book"`
	MeetingTime *time.Time      `json:"meeting_time"`
}
