package filestore

import "errors"

var (
	// ErrUnsupportedFormat is returned for uploads that are not a decodable image
	ErrUnsupportedFormat = errors.New("filestore: unsupported image format")

	// ErrWriteFailed is returned when the image cannot be persisted to disk
	ErrWriteFailed = errors.New("filestore: failed to write file")

	// ErrFileNotFound is returned when the named file does not exist
	ErrFileNotFound = errors.New("filestore: file not found")
)
