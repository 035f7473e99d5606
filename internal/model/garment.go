package model

import "time"

// Garment represents a single wardrobe piece. The binary content is stored
// as a BLOB and never serialized in list responses, only its metadata.
type Garment struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Damaged   bool      `json:"damaged"`
	CreatedAt time.Time `json:"created_at"`
}

// Garment content types.
const (
	TypeImage = "image"
	TypeAudio = "audio"
	TypeVideo = "video"
	TypePDF   = "pdf"
)

// ValidGarmentType checks if t is one of the allowed content types.
func ValidGarmentType(t string) bool {
	switch t {
	case TypeImage, TypeAudio, TypeVideo, TypePDF:
		return true
	}
	return false
}
