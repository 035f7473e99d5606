package model

// Label is a classification tag attachable to many garments.
type Label struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

// Label categories.
const (
	CategoryRegion      = "region"
	CategoryGarmentType = "garment_type"
	CategoryGender      = "gender"
	CategorySize        = "size"
	CategoryOther       = "other"
)

// ValidLabelCategory checks if c is one of the allowed categories.
func ValidLabelCategory(c string) bool {
	switch c {
	case CategoryRegion, CategoryGarmentType, CategoryGender, CategorySize, CategoryOther:
		return true
	}
	return false
}
