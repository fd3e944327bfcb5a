package compositor

import (
	"bytes"
	"fmt"
	"image"
)

// Validate rejects uploads before any expensive work: empty input, files
// over maxSize, and bytes that do not decode as an image header.
func (p *Compositor) Validate(data []byte, maxSize int64) error {
	if len(data) == 0 {
		return ErrEmptyInput
	}

	if int64(len(data)) > maxSize {
		return fmt.Errorf("file size %d exceeds maximum allowed size %d", len(data), maxSize)
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if cfg.Width == 0 || cfg.Height == 0 {
		return fmt.Errorf("%w: empty raster", ErrDecode)
	}

	return nil
}
