package model

import "time"

// Comment is a free-text note attached to a garment. AuthorID is set from
// the authenticated user when the comment is created with a valid token.
type Comment struct {
	ID        int64     `json:"id"`
	GarmentID int64     `json:"garment_id"`
	AuthorID  *int64    `json:"author_id,omitempty"`
	Text      string    `json:"text"`
	Damaged   bool      `json:"damaged"`
	CreatedAt time.Time `json:"created_at"`
}
