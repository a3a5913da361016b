package ironsegment

import (
	"errors"
	"fmt"

	"github.com/io7m/ironsegment/internal/pixel"
)

// ImageView is a typed, non-owning projection of a mapped image payload,
// parameterized by pixel semantic (spec section 4.5). It borrows from the
// owning Reader's memory mapping and must not outlive it.
type ImageView struct {
	inner *pixel.View
}

// Semantic returns the view's pixel semantic.
func (v *ImageView) Semantic() PixelSemantic { return v.inner.Semantic }

// Width returns the view's width in pixels.
func (v *ImageView) Width() uint32 { return v.inner.Width }

// Height returns the view's height in pixels.
func (v *ImageView) Height() uint32 { return v.inner.Height }

// GetObjectID returns the object identifier at (x, y). The view's
// semantic must be ObjectID32, or ErrSemanticMismatch is returned.
func (v *ImageView) GetObjectID(x, y uint32) (uint32, error) {
	id, err := v.inner.GetObjectID(x, y)
	if err != nil {
		return 0, translatePixelError(err)
	}
	return id, nil
}

// GetRGBFloat returns a 3-element [R, G, B] sample normalized to
// [0.0, 1.0] per spec section 4.5's divisor table.
func (v *ImageView) GetRGBFloat(x, y uint32) ([3]float64, error) {
	out, err := v.inner.GetRGBFloat(x, y)
	if err != nil {
		return [3]float64{}, translatePixelError(err)
	}
	return out, nil
}

// GetRGBAFloat returns a 4-element [R, G, B, A] sample normalized to
// [0.0, 1.0]. Semantics without a native alpha channel synthesize alpha
// as 1.0.
func (v *ImageView) GetRGBAFloat(x, y uint32) ([4]float64, error) {
	out, err := v.inner.GetRGBAFloat(x, y)
	if err != nil {
		return [4]float64{}, translatePixelError(err)
	}
	return out, nil
}

// translatePixelError maps internal/pixel's error values onto this
// package's public sentinels and structured error types, so callers never
// need to import the internal package to use errors.Is/errors.As.
func translatePixelError(err error) error {
	var oob *pixel.OutOfBoundsError
	if errors.As(err, &oob) {
		return &OutOfBoundsError{Axis: oob.Axis, Index: oob.Index, Limit: oob.Limit}
	}
	if errors.Is(err, pixel.ErrSemanticMismatch) {
		return fmt.Errorf("%w: %v", ErrSemanticMismatch, err)
	}
	return err
}
