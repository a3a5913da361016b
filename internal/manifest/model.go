// Package manifest implements the ironsegment manifest codec: the
// schema-shaped XML tree and the parse/serialize transform between that
// tree and the in-memory Manifest record (spec section 6's "Manifest XML").
//
// This package is the spec's "external collaborator" — the binary
// container core (internal/segfile, internal/pixel) only ever sees the
// already-decoded Manifest value this package produces.
package manifest

import "sort"

// Images describes the shared raster dimensions and the set of image
// sections a manifest declares (spec section 3).
type Images struct {
	Width  uint32
	Height uint32
	Images map[uint32]Image
}

// Image is a single declared image section: its identifier and pixel
// semantic.
type Image struct {
	ID       uint32
	Semantic string
}

// Object is a single declared scene object: its identifier and free-text
// description.
type Object struct {
	ID          uint32
	Description string
}

// Manifest is the full manifest record: the image set, the object table,
// and free-form string metadata.
type Manifest struct {
	Images   Images
	Objects  map[uint32]Object
	Metadata map[string]string
}

// SortedImageIDs returns the manifest's image identifiers in ascending
// order. File offsets on the write path depend on this order (spec
// section 4.4, section 9).
func (m Manifest) SortedImageIDs() []uint32 {
	ids := make([]uint32, 0, len(m.Images.Images))
	for id := range m.Images.Images {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func sortedObjectIDs(objects map[uint32]Object) []uint32 {
	ids := make([]uint32, 0, len(objects))
	for id := range objects {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func sortedMetadataKeys(metadata map[string]string) []string {
	keys := make([]string, 0, len(metadata))
	for k := range metadata {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
