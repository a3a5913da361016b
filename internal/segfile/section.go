package segfile

import (
	"errors"
	"fmt"
)

// Sentinel errors for directory-walk failures (spec section 4.6).
var (
	ErrFormatTruncated = errors.New("segfile: truncated section")
	ErrManifestMissing = errors.New("segfile: no MANIFEST section before END")
)

// Section is the common header shared by every section on the wire, plus
// the file offset at which it starts. FileOffset points at the section's
// own 16-byte header, not its payload.
type Section struct {
	Kind       Kind
	SizeBytes  uint64
	FileOffset uint64
}

// PayloadOffset returns the file offset of the first payload byte,
// immediately following this section's 16-byte header.
func (s Section) PayloadOffset() uint64 {
	return s.FileOffset + SectionHeaderSize
}

// ManifestPayload reads a MANIFEST section's payload: a 4-byte big-endian
// length prefix followed by that many bytes of XML text. s must be a
// section with Kind == KindManifest.
func ManifestPayload(data []byte, s Section) ([]byte, error) {
	start := s.PayloadOffset()
	if start+4 > uint64(len(data)) {
		return nil, fmt.Errorf("segfile: manifest section at %d: %w", s.FileOffset, ErrFormatTruncated)
	}
	xmlLen := uint64(getU32(data[start : start+4]))
	xmlStart := start + 4
	xmlEnd := xmlStart + xmlLen
	if xmlEnd > uint64(len(data)) || xmlEnd > start+s.SizeBytes {
		return nil, fmt.Errorf("segfile: manifest section at %d: %w", s.FileOffset, ErrFormatTruncated)
	}
	return data[xmlStart:xmlEnd], nil
}

// ImageSectionID reads the 4-byte big-endian image identifier prefixing an
// IMAGE section's payload. s must be a section with Kind == KindImage.
func ImageSectionID(data []byte, s Section) (uint32, error) {
	start := s.PayloadOffset()
	if start+4 > uint64(len(data)) {
		return 0, fmt.Errorf("segfile: image section at %d: %w", s.FileOffset, ErrFormatTruncated)
	}
	return getU32(data[start : start+4]), nil
}

// ImagePixelData returns the pixelLen bytes of raw pixel data following an
// IMAGE section's 4-byte identifier prefix.
func ImagePixelData(data []byte, s Section, pixelLen uint64) ([]byte, error) {
	start := s.PayloadOffset() + 4
	end := start + pixelLen
	if end > uint64(len(data)) || end > s.PayloadOffset()+s.SizeBytes {
		return nil, fmt.Errorf("segfile: image section at %d: %w", s.FileOffset, ErrFormatTruncated)
	}
	return data[start:end], nil
}

// WalkDirectory enumerates sections starting at offset FileHeaderSize,
// advancing by 16+size until a KindEnd section is observed. Unknown kinds
// are recorded with Kind == KindUnknown and skipped by size, so the walker
// remains forward-compatible with section kinds introduced later within
// the same major version.
func WalkDirectory(data []byte) ([]Section, error) {
	var out []Section
	offset := uint64(FileHeaderSize)
	sawManifest := false

	for {
		if offset+SectionHeaderSize > uint64(len(data)) {
			return nil, fmt.Errorf("segfile: section header at %d: %w", offset, ErrFormatTruncated)
		}
		rawKind := getU64(data[offset : offset+8])
		size := getU64(data[offset+8 : offset+16])

		if size > uint64(len(data))-offset-SectionHeaderSize {
			return nil, fmt.Errorf("segfile: section at %d: %w", offset, ErrFormatTruncated)
		}
		end := offset + SectionHeaderSize + size

		kind := Kind(rawKind)
		switch kind {
		case KindManifest, KindImage, KindEnd:
			out = append(out, Section{Kind: kind, SizeBytes: size, FileOffset: offset})
		default:
			out = append(out, Section{Kind: KindUnknown, SizeBytes: size, FileOffset: offset})
		}

		if kind == KindManifest {
			sawManifest = true
		}

		if kind == KindEnd {
			if !sawManifest {
				return nil, ErrManifestMissing
			}
			return out, nil
		}

		offset = end
	}
}
