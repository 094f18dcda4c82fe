package domain

import "time"

// GalleryImage is metadata for an uploaded portfolio image. The bytes live
// in file storage; only URLs are persisted here.
type GalleryImage struct {
	ID        int64
	URL       string
	ThumbURL  string
	Name      string
	CreatedAt time.Time
}
