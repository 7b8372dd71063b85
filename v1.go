package honoka

import "encoding/binary"

// V1Engine implements the original launch-era scheme: a 32-bit key XORed
// most-significant byte first over 4-byte groups, advanced by adding a
// constant derived from the basename length. It has no header and accepts
// any file, which is why probing never selects it blindly.
type V1Engine struct {
	initKey   uint32
	updateKey uint32 // constant after init
	xorKey    uint32
	pos       int64
}

// NewV1Engine creates a version 1 engine for the named file.
func NewV1Engine(prefix []byte, filename string) *V1Engine {
	km := DeriveKeyMaterial(prefix, filename)
	initKey := binary.BigEndian.Uint32(km.Digest[0:4])
	return &V1Engine{
		initKey:   initKey,
		updateKey: km.BasenameLen,
		xorKey:    initKey,
	}
}

// Version returns 1.
func (e *V1Engine) Version() int { return 1 }

// HeaderSize returns 0; version 1 files carry no header.
func (e *V1Engine) HeaderSize() int { return 0 }

// Pos returns the current position within the data region.
func (e *V1Engine) Pos() int64 { return e.pos }

// DecryptByte transforms one byte. The same 32-bit key covers 4 consecutive
// bytes, consumed from the most significant byte down.
func (e *V1Engine) DecryptByte(b byte) byte {
	idx := e.pos & 3
	out := b ^ byte(e.xorKey>>((3-idx)*8))
	if idx == 3 {
		e.step()
	}
	e.pos++
	return out
}

// DecryptBlock transforms data element-wise into a new slice.
func (e *V1Engine) DecryptBlock(data []byte) []byte { return decryptBlock(e, data) }

// GotoOffset repositions the keystream to pos.
func (e *V1Engine) GotoOffset(pos int64) {
	if pos < 0 {
		pos = 0
	}
	seekSchedule(e.pos/4, pos/4, e.step, func() { e.xorKey = e.initKey })
	e.pos = pos
}

// EmitHeader returns nil; version 1 writes no header.
func (e *V1Engine) EmitHeader() []byte { return nil }

func (e *V1Engine) step() {
	e.xorKey += e.updateKey
}
