package ironsegment

import (
	"errors"
	"fmt"
)

// Sentinel errors raised by Reader/Writer open and lookup operations
// (spec section 4.6).
var (
	// ErrFormatBadMagic is returned by Open when the file does not begin
	// with the ironsegment magic number.
	ErrFormatBadMagic = errors.New("ironsegment: bad magic number")

	// ErrFormatTruncated is returned when a section header or payload
	// runs past the end of the file before an END section is observed.
	ErrFormatTruncated = errors.New("ironsegment: truncated section")

	// ErrManifestMissing is returned when no MANIFEST section is observed
	// by the time the END section is reached.
	ErrManifestMissing = errors.New("ironsegment: no MANIFEST section present")

	// ErrManifestInvalid is returned when the MANIFEST section's XML
	// payload fails to parse.
	ErrManifestInvalid = errors.New("ironsegment: manifest is invalid")

	// ErrNotFound is returned by ImageSection/ImageData when no IMAGE
	// section carries the requested identifier.
	ErrNotFound = errors.New("ironsegment: image not found")

	// ErrSemanticMismatch is returned by ImageView.GetObjectID when the
	// view's semantic is not ObjectID32.
	ErrSemanticMismatch = errors.New("ironsegment: semantic mismatch")

	// ErrOutOfBounds is returned by the ImageView sampling methods when a
	// coordinate falls outside the view's width/height.
	ErrOutOfBounds = errors.New("ironsegment: coordinate out of bounds")

	// ErrClosed is returned by Reader.ImageSection and Reader.ImageData
	// when called after Close. Other Reader methods and the Writer do not
	// check for a closed handle.
	ErrClosed = errors.New("ironsegment: use of closed handle")
)

// VersionUnsupportedError is returned by Open when a file's major version
// does not match the version this implementation supports.
type VersionUnsupportedError struct {
	Got      uint32
	Expected uint32
}

func (e *VersionUnsupportedError) Error() string {
	return fmt.Sprintf("ironsegment: file major version %d, expected %d", e.Got, e.Expected)
}

// OutOfBoundsError reports a sample coordinate outside an image view's
// dimensions. Axis distinguishes which coordinate failed, so callers can
// render a precise diagnostic (spec section 7).
type OutOfBoundsError struct {
	Axis  string // "x" or "y"
	Index uint32
	Limit uint32
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("ironsegment: %s index %d out of bounds (limit %d)", e.Axis, e.Index, e.Limit)
}

func (e *OutOfBoundsError) Unwrap() error { return ErrOutOfBounds }
