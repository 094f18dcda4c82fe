package filestore

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// SavedImage describes one stored upload. URLs are what clients render;
// filenames are what Delete takes back.
type SavedImage struct {
	FileName     string
	URL          string
	ThumbnailURL string
	Width        int
	Height       int
}

// Store keeps gallery uploads on local disk, one full-size file plus one
// resized thumbnail per image. Names are random so an upload can never
// clobber an earlier one.
type Store struct {
	dir        string
	baseURL    string
	thumbWidth int
	log        Logger
}

func NewStore(dir, baseURL string, thumbWidth int, log Logger) (*Store, error) {
	if err := os.MkdirAll(filepath.Join(dir, "thumbs"), 0o755); err != nil {
		return nil, fmt.Errorf("%w: create upload directory: %v", ErrWriteFailed, err)
	}

	return &Store{
		dir:        dir,
		baseURL:    strings.TrimRight(baseURL, "/"),
		thumbWidth: thumbWidth,
		log:        log,
	}, nil
}

// Save decodes the upload, writes the original and a thumbnail to disk and
// returns their public URLs.
func (s *Store) Save(r io.Reader) (*SavedImage, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: Save - decode image: %v", ErrUnsupportedFormat, err)
	}

	name := uuid.NewString() + ".jpg"
	fullPath := filepath.Join(s.dir, name)
	thumbPath := filepath.Join(s.dir, "thumbs", name)

	if err := imaging.Save(img, fullPath, imaging.JPEGQuality(90)); err != nil {
		return nil, fmt.Errorf("%w: Save - write original: %v", ErrWriteFailed, err)
	}

	thumb := imaging.Resize(img, s.thumbWidth, 0, imaging.Lanczos)
	if err := imaging.Save(thumb, thumbPath, imaging.JPEGQuality(80)); err != nil {
		// keep storage consistent: no original without its thumbnail
		if rmErr := os.Remove(fullPath); rmErr != nil {
			s.log.Warn("filestore.Store: Save - cleanup original after thumbnail failure: %v", rmErr)
		}
		return nil, fmt.Errorf("%w: Save - write thumbnail: %v", ErrWriteFailed, err)
	}

	bounds := img.Bounds()
	s.log.Info("filestore.Store: Save - stored %s (%dx%d)", name, bounds.Dx(), bounds.Dy())

	return &SavedImage{
		FileName:     name,
		URL:          s.baseURL + "/" + name,
		ThumbnailURL: s.baseURL + "/thumbs/" + name,
		Width:        bounds.Dx(),
		Height:       bounds.Dy(),
	}, nil
}

// Delete removes a stored image and its thumbnail. The name is reduced to
// its base so a crafted value cannot reach outside the upload directory.
func (s *Store) Delete(fileName string) error {
	name := path.Base(fileName)
	if name == "." || name == "/" || name == "" {
		return fmt.Errorf("%w: Delete - empty file name", ErrFileNotFound)
	}

	if err := os.Remove(filepath.Join(s.dir, name)); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: Delete - %s", ErrFileNotFound, name)
		}
		return fmt.Errorf("%w: Delete - remove original: %v", ErrWriteFailed, err)
	}

	if err := os.Remove(filepath.Join(s.dir, "thumbs", name)); err != nil && !errors.Is(err, os.ErrNotExist) {
		s.log.Warn("filestore.Store: Delete - remove thumbnail %s: %v", name, err)
	}

	return nil
}
