package honoka

import (
	"crypto/md5"
	"strings"
)

// KeyMaterial holds the digest and filename-derived scalars every engine
// variant draws its initial key state from. It is computed once per
// (prefix, filename) pair and never mutated afterwards.
type KeyMaterial struct {
	// Digest is MD5(prefix ++ basename(filename)).
	Digest [16]byte

	// BasenameLen is (len(basename) mod 64) + 1, the version 1 update key.
	BasenameLen uint32

	// NameSum is sum(prefix bytes) + sum(basename bytes) mod 2^32. Version 3
	// indexes its key table with the low 6 bits.
	NameSum uint32
}

// DeriveKeyMaterial computes the key material for a file. Only the base name
// of filename participates; directory components are stripped first. The
// derivation is a pure function with no failure modes.
func DeriveKeyMaterial(prefix []byte, filename string) KeyMaterial {
	base := Basename(filename)

	h := md5.New()
	h.Write(prefix)
	h.Write([]byte(base))

	var km KeyMaterial
	h.Sum(km.Digest[:0])
	km.BasenameLen = uint32(len(base)&0x3F) + 1
	for _, b := range prefix {
		km.NameSum += uint32(b)
	}
	for i := 0; i < len(base); i++ {
		km.NameSum += uint32(base[i])
	}
	return km
}

// Basename strips any directory component from a path. Asset lists mix
// forward and backward slashes, so both are treated as separators.
func Basename(name string) string {
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		return name[i+1:]
	}
	return name
}
