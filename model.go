package ironsegment

import (
	"fmt"
	"sort"

	"github.com/io7m/ironsegment/internal/manifest"
	"github.com/io7m/ironsegment/internal/pixel"
)

// PixelSemantic names both the physical pixel layout and its
// interpretation (spec section 3).
type PixelSemantic = pixel.Semantic

// Re-exported semantic constants, so callers never need to import the
// internal pixel package directly.
const (
	DenoiseRGB8      = pixel.DenoiseRGB8
	DenoiseRGBA8     = pixel.DenoiseRGBA8
	DenoiseRGB16     = pixel.DenoiseRGB16
	DenoiseRGBA16    = pixel.DenoiseRGBA16
	Depth16          = pixel.Depth16
	Depth32          = pixel.Depth32
	MonochromeLines8 = pixel.MonochromeLines8
	ObjectID32       = pixel.ObjectID32
)

// Image is a single declared image section: its identifier and pixel
// semantic.
type Image struct {
	ID       ImageID
	Semantic PixelSemantic
}

// Object is a single declared scene object: its identifier and free-text
// description.
type Object struct {
	ID          ObjectID
	Description string
}

// Images describes the shared raster dimensions and the set of image
// sections a manifest declares. All entries share the same width/height.
type Images struct {
	Width  uint32
	Height uint32
	Images map[ImageID]Image
}

// Manifest is the full manifest record: the image set, the object table,
// and free-form string metadata.
type Manifest struct {
	Images   Images
	Objects  map[ObjectID]Object
	Metadata map[string]string
}

// toInternal converts the public Manifest into the internal/manifest
// record the XML codec operates on.
func (m Manifest) toInternal() manifest.Manifest {
	images := make(map[uint32]manifest.Image, len(m.Images.Images))
	for id, im := range m.Images.Images {
		images[id.Value()] = manifest.Image{ID: im.ID.Value(), Semantic: im.Semantic.String()}
	}
	objects := make(map[uint32]manifest.Object, len(m.Objects))
	for id, ob := range m.Objects {
		objects[id.Value()] = manifest.Object{ID: ob.ID.Value(), Description: ob.Description}
	}
	return manifest.Manifest{
		Images: manifest.Images{
			Width:  m.Images.Width,
			Height: m.Images.Height,
			Images: images,
		},
		Objects:  objects,
		Metadata: m.Metadata,
	}
}

// fromInternal converts an internal/manifest record (as produced by
// parsing manifest XML) into the public Manifest type, validating every
// identifier against the [1, MaxIdentifier] constraint.
func fromInternal(src manifest.Manifest) (Manifest, error) {
	images := make(map[ImageID]Image, len(src.Images.Images))
	for _, im := range src.Images.Images {
		id, err := NewImageID(im.ID)
		if err != nil {
			return Manifest{}, err
		}
		sem, err := pixel.ParseSemantic(im.Semantic)
		if err != nil {
			return Manifest{}, fmt.Errorf("ironsegment: image %d: %w", im.ID, err)
		}
		images[id] = Image{ID: id, Semantic: sem}
	}

	objects := make(map[ObjectID]Object, len(src.Objects))
	for _, ob := range src.Objects {
		id, err := NewObjectID(ob.ID)
		if err != nil {
			return Manifest{}, err
		}
		objects[id] = Object{ID: id, Description: ob.Description}
	}

	return Manifest{
		Images: Images{
			Width:  src.Images.Width,
			Height: src.Images.Height,
			Images: images,
		},
		Objects:  objects,
		Metadata: src.Metadata,
	}, nil
}

// sortedImageIDs returns the manifest's image identifiers in ascending
// order. Writer emission order, and therefore every payload offset the
// caller can compute, depends on this order (spec section 4.4, section 9).
func (m Manifest) sortedImageIDs() []ImageID {
	ids := make([]ImageID, 0, len(m.Images.Images))
	for id := range m.Images.Images {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
