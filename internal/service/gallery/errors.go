package gallery

import "errors"

var (
	// ErrImageNotFound is returned when the gallery image does not exist
	ErrImageNotFound = errors.New("gallery image not found")

	// ErrUnsupportedImage is returned when the upload is not a decodable image
	ErrUnsupportedImage = errors.New("unsupported image upload")

	// ErrInternal is returned for unexpected service failures
	ErrInternal = errors.New("service: internal error")
)
