package models

import (
	"bytes"
	"errors"
)

// MediaType tells whether a media url points to an image or a video.
type MediaType string

const (
	// MediaImage is the default media type.
	MediaImage MediaType = "image"
	// MediaVideo marks a video asset.
	MediaVideo MediaType = "video"
)

// Normalize maps every unknown or empty value to MediaImage.
func (m MediaType) Normalize() MediaType {
	if m == MediaVideo {
		return MediaVideo
	}

	return MediaImage
}

// ErrInvalidFeatured is returned when a featured flag is neither "true" nor "false".
var ErrInvalidFeatured = errors.New(`isFeatured must be "true" or "false"`)

// Featured is stored as a native boolean. On the wire it is the string "true" or "false",
// which is what the admin client sends and compares against.
type Featured bool

// MarshalJSON implements json.Marshaler.
func (f Featured) MarshalJSON() ([]byte, error) {
	if f {
		return []byte(`"true"`), nil
	}

	return []byte(`"false"`), nil
}

// UnmarshalJSON accepts "true", "false" and the JSON literals true and false.
func (f *Featured) UnmarshalJSON(data []byte) error {
	switch string(bytes.TrimSpace(data)) {
	case `"true"`, "true":
		*f = true
	case `"false"`, "false":
		*f = false
	default:
		return ErrInvalidFeatured
	}

	return nil
}

// String returns the wire form.
func (f Featured) String() string {
	if f {
		return "true"
	}

	return "false"
}

// Notice is a dated announcement shown on the public site.
type Notice struct {
	ID          uint64 `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"type:text;not null" json:"title"`
	Description string `gorm:"type:text;not null" json:"description"`
	Date        string `gorm:"size:20;not null" json:"date"`
}

// GalleryImage is an image or video of the public gallery.
type GalleryImage struct {
	ID         uint64    `gorm:"primaryKey" json:"id"`
	Title      string    `gorm:"type:text;not null" json:"title"`
	ImageURL   string    `gorm:"type:text;not null" json:"imageUrl"`
	Caption    *string   `gorm:"type:text" json:"caption"`
	MediaType  MediaType `gorm:"size:10;not null;default:image" json:"mediaType"`
	IsFeatured Featured  `gorm:"not null;default:false" json:"isFeatured"`
}

// HeroSlide is one entry of the homepage carousel.
type HeroSlide struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"type:text;not null" json:"title"`
	MediaURL  string    `gorm:"type:text;not null" json:"mediaUrl"`
	MediaType MediaType `gorm:"size:10;not null;default:image" json:"mediaType"`
	SortOrder uint64    `gorm:"not null;default:0;index" json:"sortOrder"`
}

// All returns every model for auto migration.
func All() []any {
	return []any{
		&Setting{},
		&User{},
		&Notice{},
		&GalleryImage{},
		&HeroSlide{},
	}
}
