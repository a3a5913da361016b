package pixel

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// ErrSemanticMismatch is returned by GetObjectID when the view's semantic
// is not ObjectID32.
var ErrSemanticMismatch = errors.New("pixel: semantic mismatch")

// OutOfBoundsError reports a sample coordinate outside the view's
// dimensions. Axis distinguishes which coordinate failed, per spec
// section 4.5.
type OutOfBoundsError struct {
	Axis  string // "x" or "y"
	Index uint32
	Limit uint32
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("pixel: %s index %d out of bounds (limit %d)", e.Axis, e.Index, e.Limit)
}

// View is a typed, non-owning projection of a mapped image payload,
// parameterized by Semantic. Raw is reinterpreted as a typed element array
// with no copy; elements are decoded lazily at sample time.
type View struct {
	Semantic Semantic
	Width    uint32
	Height   uint32
	Raw      []byte
}

// New constructs a View over raw, which must contain at least
// width*height*bpp(semantic) bytes.
func New(semantic Semantic, width, height uint32, raw []byte) (*View, error) {
	want := uint64(width) * uint64(height) * uint64(semantic.BytesPerPixel())
	if uint64(len(raw)) < want {
		return nil, fmt.Errorf("pixel: raw buffer has %d bytes, need %d", len(raw), want)
	}
	return &View{Semantic: semantic, Width: width, Height: height, Raw: raw}, nil
}

func (v *View) checkBounds(x, y uint32) error {
	if x >= v.Width {
		return &OutOfBoundsError{Axis: "x", Index: x, Limit: v.Width}
	}
	if y >= v.Height {
		return &OutOfBoundsError{Axis: "y", Index: y, Limit: v.Height}
	}
	return nil
}

// elementAt reads the raw element at channel index ch (0-based) of the
// pixel at (x, y), as an unnormalized float64.
func (v *View) elementAt(x, y uint32, ch int) float64 {
	channels := v.Semantic.Channels()
	ew := v.Semantic.elementWidth()
	pixelIndex := uint64(y)*uint64(v.Width) + uint64(x)
	off := (pixelIndex*uint64(channels) + uint64(ch)) * uint64(ew)
	switch ew {
	case 1:
		return float64(v.Raw[off])
	case 2:
		return float64(binary.BigEndian.Uint16(v.Raw[off : off+2]))
	default:
		return float64(binary.BigEndian.Uint32(v.Raw[off : off+4]))
	}
}

// GetObjectID returns the object identifier at (x, y). The view's
// semantic must be ObjectID32.
func (v *View) GetObjectID(x, y uint32) (uint32, error) {
	if v.Semantic != ObjectID32 {
		return 0, fmt.Errorf("%w: semantic is %s, need %s", ErrSemanticMismatch, v.Semantic, ObjectID32)
	}
	if err := v.checkBounds(x, y); err != nil {
		return 0, err
	}
	off := (uint64(y)*uint64(v.Width) + uint64(x)) * 4
	return binary.BigEndian.Uint32(v.Raw[off : off+4]), nil
}

// GetRGBFloat returns a 3-element [R, G, B] sample normalized to [0, 1],
// per the divisor table in spec section 4.5. Single-channel semantics
// broadcast their one value across all three components; RGBA semantics
// discard the alpha channel.
func (v *View) GetRGBFloat(x, y uint32) ([3]float64, error) {
	if err := v.checkBounds(x, y); err != nil {
		return [3]float64{}, err
	}
	d := v.Semantic.divisor()
	channels := v.Semantic.Channels()
	if channels == 1 {
		val := v.elementAt(x, y, 0) / d
		return [3]float64{val, val, val}, nil
	}
	return [3]float64{
		v.elementAt(x, y, 0) / d,
		v.elementAt(x, y, 1) / d,
		v.elementAt(x, y, 2) / d,
	}, nil
}

// GetRGBAFloat returns a 4-element [R, G, B, A] sample normalized to
// [0, 1]. Semantics without a native alpha channel synthesize alpha as
// 1.0.
func (v *View) GetRGBAFloat(x, y uint32) ([4]float64, error) {
	if err := v.checkBounds(x, y); err != nil {
		return [4]float64{}, err
	}
	d := v.Semantic.divisor()
	channels := v.Semantic.Channels()
	if channels == 1 {
		val := v.elementAt(x, y, 0) / d
		return [4]float64{val, val, val, 1.0}, nil
	}
	if !v.Semantic.hasAlpha() {
		return [4]float64{
			v.elementAt(x, y, 0) / d,
			v.elementAt(x, y, 1) / d,
			v.elementAt(x, y, 2) / d,
			1.0,
		}, nil
	}
	return [4]float64{
		v.elementAt(x, y, 0) / d,
		v.elementAt(x, y, 1) / d,
		v.elementAt(x, y, 2) / d,
		v.elementAt(x, y, 3) / d,
	}, nil
}
