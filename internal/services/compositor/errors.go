package compositor

import "errors"

var (
	// ErrEmptyInput means composition was requested with no photo at all.
	ErrEmptyInput = errors.New("no photo supplied")

	// ErrDecode means the supplied bytes are not a decodable raster image.
	ErrDecode = errors.New("invalid image data")
)
