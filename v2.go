package honoka

import "bytes"

// v2HeaderSize is the number of header bytes a version 2 file carries.
const v2HeaderSize = 4

// V2Engine implements the second-generation scheme: a 31-bit state advanced
// by a Lehmer-style multiplicative update, with a 16-bit XOR key derived
// from it covering 2-byte groups. The file header is digest bytes 4-7.
type V2Engine struct {
	initKey   uint32 // constant after init, 31-bit
	updateKey uint32
	xorKey    uint16
	header    [4]byte
	pos       int64
}

// NewV2Engine creates a version 2 engine for the named file. If headerTest
// is non-nil it must carry the file's first 4 bytes, which are checked
// against the digest-derived header; a mismatch fails with a FormatError.
func NewV2Engine(prefix []byte, filename string, headerTest []byte) (*V2Engine, error) {
	km := DeriveKeyMaterial(prefix, filename)
	if headerTest != nil {
		if len(headerTest) < v2HeaderSize {
			return nil, &ValidationError{
				Field:   "header",
				Value:   len(headerTest),
				Message: "version 2 header requires at least 4 bytes",
			}
		}
		if !bytes.Equal(km.Digest[4:8], headerTest[:v2HeaderSize]) {
			return nil, &FormatError{Version: "2"}
		}
	}

	// Big-endian digest[0..4) with the top bit of digest[0] discarded.
	initKey := uint32(km.Digest[0]&0x7F)<<24 |
		uint32(km.Digest[1])<<16 |
		uint32(km.Digest[2])<<8 |
		uint32(km.Digest[3])

	e := &V2Engine{
		initKey:   initKey,
		updateKey: initKey,
		xorKey:    deriveV2XorKey(initKey),
	}
	copy(e.header[:], km.Digest[4:8])
	return e, nil
}

// deriveV2XorKey extracts the 16-bit XOR key from a 31-bit schedule state.
func deriveV2XorKey(key uint32) uint16 {
	return uint16((key>>23)&0xFF | (key>>7)&0xFF00)
}

// Version returns 2.
func (e *V2Engine) Version() int { return 2 }

// HeaderSize returns 4.
func (e *V2Engine) HeaderSize() int { return v2HeaderSize }

// Pos returns the current position within the data region.
func (e *V2Engine) Pos() int64 { return e.pos }

// DecryptByte transforms one byte. The same 16-bit key covers 2 consecutive
// bytes, consumed from the least significant byte up.
func (e *V2Engine) DecryptByte(b byte) byte {
	idx := e.pos & 1
	out := b ^ byte(e.xorKey>>(idx*8))
	if idx == 1 {
		e.step()
	}
	e.pos++
	return out
}

// DecryptBlock transforms data element-wise into a new slice.
func (e *V2Engine) DecryptBlock(data []byte) []byte { return decryptBlock(e, data) }

// GotoOffset repositions the keystream to pos.
func (e *V2Engine) GotoOffset(pos int64) {
	if pos < 0 {
		pos = 0
	}
	seekSchedule(e.pos/2, pos/2, e.step, func() {
		e.updateKey = e.initKey
		e.xorKey = deriveV2XorKey(e.initKey)
	})
	e.pos = pos
}

// EmitHeader returns digest bytes 4-7, the stored file header.
func (e *V2Engine) EmitHeader() []byte {
	header := make([]byte, v2HeaderSize)
	copy(header, e.header[:])
	return header
}

// step advances the schedule. The arithmetic reproduces the client exactly,
// including the mask binding the sum 0x7FFFFFFF + low*0x41A7 rather than
// the product, and the correction that folds results above 0x7FFFFFFE back
// into 31-bit range. Reordering any of it changes the keystream.
func (e *V2Engine) step() {
	a := e.updateKey >> 16
	b := (a * 0x41A70000) & (0x7FFFFFFF + (e.updateKey&0xFFFF)*0x41A7)
	c := (a * 0x41A7) >> 15
	d := c + b
	if f := d - 0x7FFFFFFF; f > 0x7FFFFFFE {
		e.updateKey = f
	} else {
		e.updateKey = d
	}
	e.xorKey = deriveV2XorKey(e.updateKey)
}
