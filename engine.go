package honoka

// CipherEngine is the per-file decryption state machine. One engine is
// created per opened file (or per encrypt intent), lives for the duration of
// that stream, and must not be shared across goroutines.
//
// The cipher is a symmetric XOR: DecryptByte and DecryptBlock perform
// encryption too. When encrypting, EmitHeader's bytes must be written
// immediately before the first ciphertext byte.
type CipherEngine interface {
	// Version returns the protocol generation (1-4) of this engine.
	Version() int

	// HeaderSize returns the number of header bytes preceding the
	// ciphertext: 0, 4 or 16 depending on the variant.
	HeaderSize() int

	// Pos returns the number of data bytes consumed since construction or
	// the last GotoOffset, measured from the start of the data region.
	Pos() int64

	// DecryptByte transforms a single byte and advances the keystream.
	DecryptByte(b byte) byte

	// DecryptBlock transforms data element-wise into a new slice.
	DecryptBlock(data []byte) []byte

	// GotoOffset repositions the keystream so the next DecryptByte applies
	// to the data byte at pos. Negative positions are clamped to zero.
	// Forward seeks replay the key schedule over the skipped distance;
	// backward seeks reset it and replay from zero, costing O(pos).
	GotoOffset(pos int64)

	// EmitHeader returns the header identifying this file's encryption
	// mode, or nil for the headerless version 1.
	EmitHeader() []byte
}

// decryptBlock is the shared element-wise block transform.
func decryptBlock(e CipherEngine, data []byte) []byte {
	out := make([]byte, len(data))
	for i, b := range data {
		out[i] = e.DecryptByte(b)
	}
	return out
}

// seekSchedule advances or rewinds a key schedule measured in steps, where
// one step covers the variant's period in bytes. Equal steps means the new
// position shares the current key state and nothing needs to happen.
// Backward movement has no inverse, so it resets to the initial state and
// replays from step zero.
func seekSchedule(currentStep, targetStep int64, step func(), reset func()) {
	switch {
	case targetStep == currentStep:
	case targetStep > currentStep:
		for i := currentStep; i < targetStep; i++ {
			step()
		}
	default:
		reset()
		for i := int64(0); i < targetStep; i++ {
			step()
		}
	}
}
