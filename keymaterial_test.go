package honoka

import (
	"encoding/hex"
	"testing"
)

func TestDeriveKeyMaterial_Digest(t *testing.T) {
	tests := []struct {
		name     string
		prefix   []byte
		filename string
		want     string
	}{
		{
			name:     "worldwide prefix",
			prefix:   NamePrefixWW,
			filename: "test.bin",
			want:     "567b60625874f947e228d0a785ba8fb3",
		},
		{
			name:     "japan prefix",
			prefix:   NamePrefixJP,
			filename: "test.bin",
			want:     "ebfa7764c22549f6a4ba88bb2569577c",
		},
		{
			name:     "directory components are stripped",
			prefix:   NamePrefixWW,
			filename: "assets/image/live/test.bin",
			want:     "567b60625874f947e228d0a785ba8fb3",
		},
		{
			name:     "windows separators too",
			prefix:   NamePrefixWW,
			filename: `assets\image\test.bin`,
			want:     "567b60625874f947e228d0a785ba8fb3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			km := DeriveKeyMaterial(tt.prefix, tt.filename)
			if got := hex.EncodeToString(km.Digest[:]); got != tt.want {
				t.Errorf("Digest = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestDeriveKeyMaterial_Scalars(t *testing.T) {
	km := DeriveKeyMaterial(NamePrefixWW, "test.bin")

	// len("test.bin") = 8, so (8 & 0x3F) + 1.
	if km.BasenameLen != 9 {
		t.Errorf("BasenameLen = %d, want 9", km.BasenameLen)
	}

	// sum("BFd3EnkcKa") + sum("test.bin") = 1651, the version 3 name sum.
	if km.NameSum != 1651 {
		t.Errorf("NameSum = %d, want 1651", km.NameSum)
	}
}

func TestDeriveKeyMaterial_BasenameLenWraps(t *testing.T) {
	// A 64-character basename wraps to (64 & 0x3F) + 1 = 1.
	long := make([]byte, 64)
	for i := range long {
		long[i] = 'a'
	}
	km := DeriveKeyMaterial(NamePrefixJP, string(long))
	if km.BasenameLen != 1 {
		t.Errorf("BasenameLen = %d, want 1", km.BasenameLen)
	}
}

func TestBasename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"test.bin", "test.bin"},
		{"a/b/test.bin", "test.bin"},
		{`a\b\test.bin`, "test.bin"},
		{`a/b\test.bin`, "test.bin"},
		{"", ""},
		{"dir/", ""},
	}
	for _, tt := range tests {
		if got := Basename(tt.in); got != tt.want {
			t.Errorf("Basename(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
