package ironsegment

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/io7m/ironsegment/internal/manifest"
	"github.com/io7m/ironsegment/internal/mmapfile"
	"github.com/io7m/ironsegment/internal/pixel"
	"github.com/io7m/ironsegment/internal/segfile"
)

// Section is a directory entry describing one section of an open file,
// in file order (spec section 3, "Section"). It carries no kind-specific
// data: the decoded manifest is reached through Reader.Manifest, and
// Reader.ImageSection maps an image identifier to its Section. Neither this
// type nor the Reader returns the embedded identifier of a given IMAGE
// Section.
type Section struct {
	Kind       SectionKind
	SizeBytes  uint64
	FileOffset uint64
}

// SectionKind discriminates the kind of a Section.
type SectionKind int

const (
	SectionManifest SectionKind = iota
	SectionImage
	SectionEnd
	SectionUnknown
)

func (k SectionKind) String() string {
	switch k {
	case SectionManifest:
		return "MANIFEST"
	case SectionImage:
		return "IMAGE"
	case SectionEnd:
		return "END"
	default:
		return "UNKNOWN"
	}
}

func sectionKindFrom(k segfile.Kind) SectionKind {
	switch k {
	case segfile.KindManifest:
		return SectionManifest
	case segfile.KindImage:
		return SectionImage
	case segfile.KindEnd:
		return SectionEnd
	default:
		return SectionUnknown
	}
}

// Reader owns a read-only memory mapping of an ironsegment file for its
// lifetime. Produced ImageView values borrow from that mapping and must
// not outlive it (spec section 5).
type Reader struct {
	mapped       *mmapfile.ReadOnly
	versionMajor uint32
	versionMinor uint32
	sections     []segfile.Section
	manifest     Manifest
	closed       bool
}

// Open opens path, maps it read-only, verifies the magic number and major
// version, builds the section directory, and decodes the manifest.
func Open(path string) (*Reader, error) {
	mapped, err := mmapfile.OpenReadOnly(path)
	if err != nil {
		return nil, err
	}

	r, err := newReaderFromMapping(mapped)
	if err != nil {
		mapped.Close()
		return nil, err
	}
	return r, nil
}

func newReaderFromMapping(mapped *mmapfile.ReadOnly) (*Reader, error) {
	data := mapped.Data
	if len(data) < segfile.FileHeaderSize {
		return nil, fmt.Errorf("%w: file shorter than header", ErrFormatTruncated)
	}

	magic := binary.BigEndian.Uint64(data[0:8])
	if magic != segfile.Magic {
		return nil, fmt.Errorf("%w: got 0x%x", ErrFormatBadMagic, magic)
	}

	versionMajor := binary.BigEndian.Uint32(data[8:12])
	versionMinor := binary.BigEndian.Uint32(data[12:16])
	if versionMajor != segfile.VersionMajor {
		return nil, &VersionUnsupportedError{Got: versionMajor, Expected: segfile.VersionMajor}
	}

	sections, err := segfile.WalkDirectory(data)
	if err != nil {
		return nil, translateSegfileError(err)
	}

	// WalkDirectory already guarantees a MANIFEST section precedes END, so
	// this loop always finds one.
	var manifestSection *segfile.Section
	for i := range sections {
		if sections[i].Kind == segfile.KindManifest {
			manifestSection = &sections[i]
			break
		}
	}

	xmlBytes, err := segfile.ManifestPayload(data, *manifestSection)
	if err != nil {
		return nil, translateSegfileError(err)
	}

	internalManifest, err := manifest.Parse(xmlBytes)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrManifestInvalid, err)
	}

	man, err := fromInternal(internalManifest)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrManifestInvalid, err)
	}

	return &Reader{
		mapped:       mapped,
		versionMajor: versionMajor,
		versionMinor: versionMinor,
		sections:     sections,
		manifest:     man,
	}, nil
}

// Close releases the Reader's mapping and file handle. Any ImageView
// produced by this Reader must not be used after Close.
func (r *Reader) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	return r.mapped.Close()
}

// Version returns the file's major and minor version numbers.
func (r *Reader) Version() (uint32, uint32) {
	return r.versionMajor, r.versionMinor
}

// Manifest returns the decoded manifest.
func (r *Reader) Manifest() Manifest {
	return r.manifest
}

// Sections returns the file's sections in file order.
func (r *Reader) Sections() []Section {
	out := make([]Section, len(r.sections))
	for i, s := range r.sections {
		out[i] = Section{Kind: sectionKindFrom(s.Kind), SizeBytes: s.SizeBytes, FileOffset: s.FileOffset}
	}
	return out
}

// ImageSection locates the IMAGE section whose embedded identifier equals
// id. Duplicates are resolved by returning the first match in file order.
func (r *Reader) ImageSection(id ImageID) (Section, error) {
	if r.closed {
		return Section{}, ErrClosed
	}
	s, err := r.findImageSection(id)
	if err != nil {
		return Section{}, err
	}
	return Section{Kind: SectionImage, SizeBytes: s.SizeBytes, FileOffset: s.FileOffset}, nil
}

func (r *Reader) findImageSection(id ImageID) (segfile.Section, error) {
	for _, s := range r.sections {
		if s.Kind != segfile.KindImage {
			continue
		}
		gotID, err := segfile.ImageSectionID(r.mapped.Data, s)
		if err != nil {
			return segfile.Section{}, translateSegfileError(err)
		}
		if gotID == id.Value() {
			return s, nil
		}
	}
	return segfile.Section{}, fmt.Errorf("%w: image %d", ErrNotFound, id.Value())
}

// ImageData locates the IMAGE section for id, verifies its embedded
// identifier, looks up its semantic in the manifest, and returns a typed
// ImageView over its pixel payload (spec section 4.3).
func (r *Reader) ImageData(id ImageID) (*ImageView, error) {
	if r.closed {
		return nil, ErrClosed
	}
	s, err := r.findImageSection(id)
	if err != nil {
		return nil, err
	}

	im, ok := r.manifest.Images.Images[id]
	if !ok {
		return nil, fmt.Errorf("%w: image %d not declared in manifest", ErrNotFound, id.Value())
	}

	width, height := r.manifest.Images.Width, r.manifest.Images.Height
	pixelLen := uint64(width) * uint64(height) * uint64(im.Semantic.BytesPerPixel())

	raw, err := segfile.ImagePixelData(r.mapped.Data, s, pixelLen)
	if err != nil {
		return nil, translateSegfileError(err)
	}

	view, err := pixel.New(im.Semantic, width, height, raw)
	if err != nil {
		return nil, err
	}
	return &ImageView{inner: view}, nil
}

func translateSegfileError(err error) error {
	if errors.Is(err, segfile.ErrManifestMissing) {
		return ErrManifestMissing
	}
	if errors.Is(err, segfile.ErrFormatTruncated) {
		return fmt.Errorf("%w: %v", ErrFormatTruncated, err)
	}
	return err
}
