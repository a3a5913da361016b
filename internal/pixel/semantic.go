// Package pixel implements the typed pixel decoder: given a section's raw
// bytes and the manifest-declared pixel semantic, it yields well-defined
// floating-point RGB/RGBA samples or integer object identifiers.
package pixel

import "fmt"

// Semantic names both the physical pixel layout and its interpretation
// (spec section 3).
type Semantic int

const (
	DenoiseRGB8 Semantic = iota
	DenoiseRGBA8
	DenoiseRGB16
	DenoiseRGBA16
	Depth16
	Depth32
	MonochromeLines8
	ObjectID32
)

// String returns the manifest-facing name of the semantic, matching the
// Semantic attribute values used in the XML manifest.
func (s Semantic) String() string {
	switch s {
	case DenoiseRGB8:
		return "DENOISE_RGB8"
	case DenoiseRGBA8:
		return "DENOISE_RGBA8"
	case DenoiseRGB16:
		return "DENOISE_RGB16"
	case DenoiseRGBA16:
		return "DENOISE_RGBA16"
	case Depth16:
		return "DEPTH_16"
	case Depth32:
		return "DEPTH_32"
	case MonochromeLines8:
		return "MONOCHROME_LINES_8"
	case ObjectID32:
		return "OBJECT_ID_32"
	default:
		return fmt.Sprintf("Semantic(%d)", int(s))
	}
}

// ParseSemantic maps a manifest Semantic attribute value to a Semantic.
func ParseSemantic(name string) (Semantic, error) {
	switch name {
	case "DENOISE_RGB8":
		return DenoiseRGB8, nil
	case "DENOISE_RGBA8":
		return DenoiseRGBA8, nil
	case "DENOISE_RGB16":
		return DenoiseRGB16, nil
	case "DENOISE_RGBA16":
		return DenoiseRGBA16, nil
	case "DEPTH_16":
		return Depth16, nil
	case "DEPTH_32":
		return Depth32, nil
	case "MONOCHROME_LINES_8":
		return MonochromeLines8, nil
	case "OBJECT_ID_32":
		return ObjectID32, nil
	default:
		return 0, fmt.Errorf("pixel: unknown semantic %q", name)
	}
}

// elementWidth is the byte width of a single typed element (u8, u16, or u32).
func (s Semantic) elementWidth() int {
	switch s {
	case DenoiseRGB8, DenoiseRGBA8, MonochromeLines8:
		return 1
	case DenoiseRGB16, DenoiseRGBA16, Depth16:
		return 2
	case Depth32, ObjectID32:
		return 4
	default:
		return 0
	}
}

// Channels returns the number of elements per pixel.
func (s Semantic) Channels() int {
	switch s {
	case DenoiseRGB8, DenoiseRGB16:
		return 3
	case DenoiseRGBA8, DenoiseRGBA16:
		return 4
	default:
		return 1
	}
}

// BytesPerPixel returns bpp(S) as defined in spec section 3's semantic
// table.
func (s Semantic) BytesPerPixel() int {
	return s.Channels() * s.elementWidth()
}

// hasAlpha reports whether the semantic carries a native alpha channel.
func (s Semantic) hasAlpha() bool {
	return s == DenoiseRGBA8 || s == DenoiseRGBA16
}

// divisor returns the normalization divisor D for the semantic (spec
// section 4.5's normalization table).
func (s Semantic) divisor() float64 {
	switch s {
	case DenoiseRGB8, DenoiseRGBA8, MonochromeLines8:
		return 256
	case DenoiseRGB16, DenoiseRGBA16, Depth16:
		return 65536
	case Depth32, ObjectID32:
		return 4294967296
	default:
		return 1
	}
}
