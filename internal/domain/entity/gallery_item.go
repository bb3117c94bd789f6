package entity

import "time"

// GalleryItem represents an image shown in the public gallery.
type GalleryItem struct {
	ID          int64
	Title       string
	Description string
	ImagePath   string
	Category    string
	IsActive    bool
	CreatedAt   time.Time
}
