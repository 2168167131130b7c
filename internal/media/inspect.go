package media

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	_ "golang.org/x/image/webp"
)

const DefaultMaxBytes = int64(5 * 1024 * 1024)

var (
	ErrEmpty       = errors.New("media: empty image")
	ErrTooLarge    = errors.New("media: image exceeds size limit")
	ErrUnsupported = errors.New("media: unsupported image format")
)

type Upload struct {
	Reader      io.Reader
	Size        int64
	FileName    string
	ContentType string
}

// Photo is a fully buffered, sniffed upload ready to be stored.
type Photo struct {
	Bytes       []byte
	ContentType string
	Extension   string
	Width       int
	Height      int
}

var formats = map[string]struct {
	contentType string
	extension   string
}{
	"jpeg": {"image/jpeg", ".jpg"},
	"png":  {"image/png", ".png"},
	"gif":  {"image/gif", ".gif"},
	"webp": {"image/webp", ".webp"},
}

// Inspect reads the upload and decodes its header. The declared content type
// is ignored in favour of the decoded format.
func Inspect(upload Upload, maxBytes int64) (*Photo, error) {
	if upload.Reader == nil {
		return nil, ErrEmpty
	}
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	if upload.Size > maxBytes {
		return nil, fmt.Errorf("%w (%d bytes)", ErrTooLarge, maxBytes)
	}

	data, err := io.ReadAll(io.LimitReader(upload.Reader, maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("media: read image: %w", err)
	}
	if len(data) == 0 {
		return nil, ErrEmpty
	}
	if int64(len(data)) > maxBytes {
		return nil, fmt.Errorf("%w (%d bytes)", ErrTooLarge, maxBytes)
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupported, err)
	}
	known, ok := formats[format]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, format)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("%w: invalid dimensions %dx%d", ErrUnsupported, cfg.Width, cfg.Height)
	}

	return &Photo{
		Bytes:       data,
		ContentType: known.contentType,
		Extension:   known.extension,
		Width:       cfg.Width,
		Height:      cfg.Height,
	}, nil
}
