package honoka

// v3HeaderSize is the header length shared by versions 3 and 4.
const v3HeaderSize = 16

// Version 3+ header layout. Byte 3 is a constant marker; byte 7 carries the
// version discriminator (0/1 = version 3 with flip flag, 2 = version 4).
const (
	v3HeaderMarker   = 12
	v4VersionMarker  = 2
	headerFlipByte   = 7
	headerLCGByte    = 6
	headerNameSumOff = 8
)

// validateV3Header checks the shared version 3+ header prefix: the first 3
// bytes must be the bitwise complement of digest bytes 4-6. Used by both
// the version 3 and version 4 construction paths.
func validateV3Header(header []byte, digest *[16]byte) error {
	if len(header) < v3HeaderSize {
		return ErrInsufficientHeader
	}
	if header[0] != ^digest[4] || header[1] != ^digest[5] || header[2] != ^digest[6] {
		return &FormatError{Version: "3+"}
	}
	return nil
}

// buildV3Header assembles a version 3 file header: complemented digest
// bytes, the constant marker, the flip flag and the big-endian name sum.
func buildV3Header(digest *[16]byte, flipped bool, nameSum uint32) []byte {
	header := make([]byte, v3HeaderSize)
	header[0] = ^digest[4]
	header[1] = ^digest[5]
	header[2] = ^digest[6]
	header[3] = v3HeaderMarker
	if flipped {
		header[headerFlipByte] = 1
	}
	header[headerNameSumOff] = byte(nameSum >> 24)
	header[headerNameSumOff+1] = byte(nameSum >> 16)
	header[headerNameSumOff+2] = byte(nameSum >> 8)
	header[headerNameSumOff+3] = byte(nameSum)
	return header
}

// buildV4Header assembles a version 4 file header: complemented digest
// bytes, the constant marker, the LCG parameter index and the version
// discriminator.
func buildV4Header(digest *[16]byte, lcgIndex int) []byte {
	header := make([]byte, v3HeaderSize)
	header[0] = ^digest[4]
	header[1] = ^digest[5]
	header[2] = ^digest[6]
	header[3] = v3HeaderMarker
	header[headerLCGByte] = byte(lcgIndex)
	header[headerFlipByte] = v4VersionMarker
	return header
}

// headerNameSum reconstructs the name sum a version 3 header declares.
// Emission writes all 4 big-endian bytes but the client's probe reads only
// the low 2; that asymmetry is preserved for compatibility with files
// produced by shipped clients.
func headerNameSum(header []byte) uint32 {
	return uint32(header[headerNameSumOff+2])<<8 | uint32(header[headerNameSumOff+3])
}
