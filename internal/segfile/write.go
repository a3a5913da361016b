package segfile

// PutFileHeader writes the 16-byte file header (magic, major, minor) into
// data[0:16].
func PutFileHeader(data []byte, versionMinor uint32) {
	putU64(data[0:8], Magic)
	putU32(data[8:12], VersionMajor)
	putU32(data[12:16], versionMinor)
}

// PutSectionHeader writes a 16-byte section header at data[0:16].
func PutSectionHeader(data []byte, kind Kind, size uint64) {
	putU64(data[0:8], uint64(kind))
	putU64(data[8:16], size)
}

// PutManifestPayload writes the MANIFEST payload (4-byte length prefix
// followed by xml, zero-padded to size) into data, which must be exactly
// size bytes long.
func PutManifestPayload(data []byte, xml []byte, size uint64) {
	putU32(data[0:4], uint32(len(xml)))
	copy(data[4:], xml)
	for i := 4 + len(xml); uint64(i) < size; i++ {
		data[i] = 0
	}
}

// PutImageIDPrefix writes the 4-byte big-endian image identifier at the
// start of an IMAGE section's payload.
func PutImageIDPrefix(data []byte, id uint32) {
	putU32(data[0:4], id)
}
