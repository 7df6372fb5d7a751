package blob

import "errors"

var (
	ErrInvalidInput    = errors.New("invalid blob data")
	ErrPayloadTooLarge = errors.New("blob data is too large")

	ErrEmptyBlobSet        = errors.New("empty blob set")
	ErrInvalidBlobSize     = errors.New("invalid blob size")
	ErrNonCanonicalElement = errors.New("field element is not canonical")
	ErrMissingSentinel     = errors.New("padding sentinel not found")

	ErrUnknownProfile = errors.New("unknown protocol profile")
	ErrInvalidProfile = errors.New("invalid protocol profile")
)
