// Package segfile implements the ironsegment binary container's framing
// primitives: the fixed file header, section headers, the section-kind
// constants, and the directory walk that enumerates sections from offset 16
// until the terminal END section.
package segfile

import "encoding/binary"

// Kind identifies the type of a section on the wire.
type Kind uint64

// Section kind identifiers, big-endian on the wire (spec section 4.2).
const (
	KindManifest Kind = 0x4972_535F_4D4E_4946
	KindImage    Kind = 0x4972_535F_494D_4744
	KindEnd      Kind = 0x4972_535F_454E_4421
	// KindUnknown is never present on the wire; it tags sections whose
	// kind the directory walker does not recognize.
	KindUnknown Kind = 0
)

// String returns a human-readable name for the section kind.
func (k Kind) String() string {
	switch k {
	case KindManifest:
		return "MANIFEST"
	case KindImage:
		return "IMAGE"
	case KindEnd:
		return "END"
	default:
		return "UNKNOWN"
	}
}

// Magic is the 8-byte file magic number at offset 0.
const Magic uint64 = 0x8949_7253_0D0A_1A0A

// VersionMajor is the only major version this implementation understands.
const VersionMajor uint32 = 1

const (
	// FileHeaderSize is the size in bytes of the fixed file header
	// (magic + version_major + version_minor).
	FileHeaderSize = 16

	// SectionHeaderSize is the size in bytes of a section header
	// (kind + size).
	SectionHeaderSize = 16

	// Alignment is the byte boundary every section's size is rounded up to.
	Alignment = 16
)

// Align16 rounds n up to the next multiple of 16.
func Align16(n uint64) uint64 {
	return (n + Alignment - 1) / Alignment * Alignment
}

func getU32(b []byte) uint32 { return binary.BigEndian.Uint32(b) }
func getU64(b []byte) uint64 { return binary.BigEndian.Uint64(b) }

func putU32(b []byte, v uint32) { binary.BigEndian.PutUint32(b, v) }
func putU64(b []byte, v uint64) { binary.BigEndian.PutUint64(b, v) }
