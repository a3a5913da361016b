package ironsegment

import (
	"errors"
	"fmt"
)

// MaxIdentifier is the largest value an ImageID or ObjectID may hold.
const MaxIdentifier = 4_294_967_295

// ErrIdentifierOutOfRange is returned by NewImageID/NewObjectID when the
// value is outside [1, MaxIdentifier].
var ErrIdentifierOutOfRange = errors.New("ironsegment: identifier out of range")

// ImageID is an image section's identifier, constrained to
// [1, 4294967295]. Zero is not a valid identifier.
type ImageID uint32

// NewImageID validates value and returns it as an ImageID.
func NewImageID(value uint32) (ImageID, error) {
	if value < 1 {
		return 0, fmt.Errorf("%w: image id %d must be in [1, %d]", ErrIdentifierOutOfRange, value, MaxIdentifier)
	}
	return ImageID(value), nil
}

// Value returns the underlying uint32.
func (i ImageID) Value() uint32 { return uint32(i) }

// ObjectID is a scene object's identifier, constrained to
// [1, 4294967295]. Zero is not a valid identifier.
type ObjectID uint32

// NewObjectID validates value and returns it as an ObjectID.
func NewObjectID(value uint32) (ObjectID, error) {
	if value < 1 {
		return 0, fmt.Errorf("%w: object id %d must be in [1, %d]", ErrIdentifierOutOfRange, value, MaxIdentifier)
	}
	return ObjectID(value), nil
}

// Value returns the underlying uint32.
func (o ObjectID) Value() uint32 { return uint32(o) }
