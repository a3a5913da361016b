package ironsegment

import (
	"github.com/io7m/ironsegment/internal/manifest"
	"github.com/io7m/ironsegment/internal/mmapfile"
	"github.com/io7m/ironsegment/internal/segfile"
)

// WritableImage describes one reserved, zero-initialized IMAGE payload
// region within a Writer's mapping. Offset and Size delimit the pixel
// data region only — the 4-byte image-id prefix that precedes it on the
// wire is written by Create and is not part of this range (spec section
// 4.4).
type WritableImage struct {
	ID       ImageID
	Semantic PixelSemantic
	Offset   uint64
	Size     uint64
}

// Writer owns a writable memory mapping of an ironsegment file for its
// lifetime. Returned WritableImage regions are live until Close.
type Writer struct {
	mapped  *mmapfile.ReadWrite
	images  []WritableImage
	version uint32
	closed  bool
}

// Create truncates (or creates) the file at path, writes the header, the
// serialized manifest section, and one zero-initialized IMAGE section per
// image in m (in ascending ImageID order), followed by an END section.
// The caller fills each WritableImage's region through Payload before
// calling Close.
func Create(path string, m Manifest) (*Writer, error) {
	xmlBytes, err := manifest.Serialize(m.toInternal())
	if err != nil {
		return nil, err
	}

	layout := planLayout(m, xmlBytes)

	mapped, err := mmapfile.Create(path, int64(layout.total))
	if err != nil {
		return nil, err
	}

	data := mapped.Data
	segfile.PutFileHeader(data[0:segfile.FileHeaderSize], 0)

	segfile.PutSectionHeader(data[layout.manifestOffset:], segfile.KindManifest, layout.manifestSize)
	manifestPayload := data[layout.manifestOffset+segfile.SectionHeaderSize : layout.manifestOffset+segfile.SectionHeaderSize+layout.manifestSize]
	segfile.PutManifestPayload(manifestPayload, xmlBytes, layout.manifestSize)

	images := make([]WritableImage, 0, len(layout.images))
	for _, pl := range layout.images {
		segfile.PutSectionHeader(data[pl.sectionOffset:], segfile.KindImage, pl.alignedSize)
		idOffset := pl.sectionOffset + segfile.SectionHeaderSize
		segfile.PutImageIDPrefix(data[idOffset:], pl.id.Value())
		images = append(images, WritableImage{
			ID:       pl.id,
			Semantic: pl.semantic,
			Offset:   idOffset + 4,
			Size:     pl.pixelSize,
		})
	}

	segfile.PutSectionHeader(data[layout.endOffset:], segfile.KindEnd, 0)

	return &Writer{mapped: mapped, images: images, version: 0}, nil
}

// WritableImages returns the writer's reserved image payload regions, in
// the same ascending-ImageID order they were emitted to the file.
func (w *Writer) WritableImages() []WritableImage {
	out := make([]WritableImage, len(w.images))
	copy(out, w.images)
	return out
}

// Payload returns the writable byte slice for wi within the writer's
// mapping. The caller is responsible for filling it with pixel data of
// the declared semantic; the Writer only guarantees the region is
// contiguous, zero-initialized, and correctly sized.
func (w *Writer) Payload(wi WritableImage) []byte {
	return w.mapped.Data[wi.Offset : wi.Offset+wi.Size]
}

// Close flushes the mapping to disk and releases the file handle.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	return w.mapped.Close()
}

type imageLayout struct {
	id            ImageID
	semantic      PixelSemantic
	sectionOffset uint64
	alignedSize   uint64
	pixelSize     uint64
}

type fileLayout struct {
	manifestOffset uint64
	manifestSize   uint64
	images         []imageLayout
	endOffset      uint64
	total          uint64
}

// planLayout computes every section's file offset and size up front, so
// Create can size the mapping in a single pass (spec section 4.4, section
// 5's ordering guarantee: header, manifest section, image sections in
// ascending ImageID order, END).
func planLayout(m Manifest, xmlBytes []byte) fileLayout {
	offset := uint64(segfile.FileHeaderSize)

	manifestOffset := offset
	manifestSize := segfile.Align16(4 + uint64(len(xmlBytes)))
	offset = manifestOffset + segfile.SectionHeaderSize + manifestSize

	var images []imageLayout
	for _, id := range m.sortedImageIDs() {
		im := m.Images.Images[id]
		pixelSize := uint64(m.Images.Width) * uint64(m.Images.Height) * uint64(im.Semantic.BytesPerPixel())
		alignedSize := segfile.Align16(4 + pixelSize)

		images = append(images, imageLayout{
			id:            id,
			semantic:      im.Semantic,
			sectionOffset: offset,
			alignedSize:   alignedSize,
			pixelSize:     pixelSize,
		})
		offset = offset + segfile.SectionHeaderSize + alignedSize
	}

	endOffset := offset
	total := endOffset + segfile.SectionHeaderSize

	return fileLayout{
		manifestOffset: manifestOffset,
		manifestSize:   manifestSize,
		images:         images,
		endOffset:      endOffset,
		total:          total,
	}
}
