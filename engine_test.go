package honoka

import (
	"bytes"
	"encoding/hex"
	"testing"
)

// newTestEngine builds a fresh engine of the given version for test.bin
// under the given region.
func newTestEngine(t *testing.T, region Region, version int) CipherEngine {
	t.Helper()
	const filename = "test.bin"
	switch version {
	case 1:
		return NewV1Engine(region.Prefix, filename)
	case 2:
		e, err := NewV2Engine(region.Prefix, filename, nil)
		if err != nil {
			t.Fatalf("NewV2Engine: %v", err)
		}
		return e
	case 3:
		e, err := NewV3Engine(region.Prefix, filename, region.KeyTable, false)
		if err != nil {
			t.Fatalf("NewV3Engine: %v", err)
		}
		return e
	case 4:
		e, err := NewV4Engine(region.Prefix, filename, 0)
		if err != nil {
			t.Fatalf("NewV4Engine: %v", err)
		}
		return e
	}
	t.Fatalf("no such version %d", version)
	return nil
}

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("bad hex in test: %v", err)
	}
	return b
}

// Golden keystreams produced by the original client implementation for
// test.bin, captured as the transform of 32 zero bytes.
func TestEngines_GoldenKeystreams(t *testing.T) {
	ww, _ := RegionByName("WW")
	jp, _ := RegionByName("JP")

	tests := []struct {
		name   string
		engine func(t *testing.T) CipherEngine
		want   string
	}{
		{
			name:   "V1 WW",
			engine: func(t *testing.T) CipherEngine { return newTestEngine(t, *ww, 1) },
			want:   "567b6062567b606b567b6074567b607d567b6086567b608f567b6098567b60a1",
		},
		{
			name:   "V2 WW",
			engine: func(t *testing.T) CipherEngine { return newTestEngine(t, *ww, 2) },
			want:   "acf6006a06002000200020002000200020002000200020002000200020002000",
		},
		{
			name:   "V3 JP",
			engine: func(t *testing.T) CipherEngine { return newTestEngine(t, *jp, 3) },
			want:   "32159277fea52f30bbe84461b7b84109407c326f86d6da9cb8a2b720437b8462",
		},
		{
			name: "V3 JP flipped",
			engine: func(t *testing.T) CipherEngine {
				e, err := NewV3Engine(jp.Prefix, "test.bin", jp.KeyTable, true)
				if err != nil {
					t.Fatalf("NewV3Engine: %v", err)
				}
				return e
			},
			want: "cdebffe936771d044ba8434ca3fa8040f8e0d32010a0e2d1f634a7ed8e2928a5",
		},
		{
			name:   "V3 WW",
			engine: func(t *testing.T) CipherEngine { return newTestEngine(t, *ww, 3) },
			want:   "589ba180be1d739dc2c239d681258b5fa7b411a30dd9dbca6c070855f1fdc9a2",
		},
		{
			name:   "V4 WW lcg 0",
			engine: func(t *testing.T) CipherEngine { return newTestEngine(t, *ww, 4) },
			want:   "513b984a0f347d659a7a2672c2c4abc9227098a45a59edb4c5308e3eb15142b0",
		},
		{
			name: "V4 WW lcg 1",
			engine: func(t *testing.T) CipherEngine {
				e, err := NewV4Engine(ww.Prefix, "test.bin", 1)
				if err != nil {
					t.Fatalf("NewV4Engine: %v", err)
				}
				return e
			},
			want: "c487486ac410cdf7a1cd7c72074a8603d512bacc912022c6924bf2f33ff6705a",
		},
		{
			name: "V4 WW lcg 2",
			engine: func(t *testing.T) CipherEngine {
				e, err := NewV4Engine(ww.Prefix, "test.bin", 2)
				if err != nil {
					t.Fatalf("NewV4Engine: %v", err)
				}
				return e
			},
			want: "e2a349015af66b41c21d7bb4f3856b08a32b3e9bc72fc881a67964c424a0bc46",
		},
		{
			name: "V4 WW lcg 3",
			engine: func(t *testing.T) CipherEngine {
				e, err := NewV4Engine(ww.Prefix, "test.bin", 3)
				if err != nil {
					t.Fatalf("NewV4Engine: %v", err)
				}
				return e
			},
			want: "d0d0f746bb571a04154ead33e0b4afd11b8b22e0c5d1055fe088574d6aaf1aac",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.engine(t).DecryptBlock(make([]byte, 32))
			if want := mustHex(t, tt.want); !bytes.Equal(got, want) {
				t.Errorf("keystream = %x, want %x", got, want)
			}
		})
	}
}

// The V1 and V2 schedules take a while to leave their initial neighborhood;
// check them deep into the stream too.
func TestEngines_GoldenKeystreamsDeep(t *testing.T) {
	ww, _ := RegionByName("WW")

	tests := []struct {
		name    string
		version int
		want    string // last 16 bytes of a 1000-byte zero transform
	}{
		{"V1 WW", 1, "567b6908567b6911567b691a567b6923"},
		{"V2 WW", 2, "20002000200020002000200020002000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := newTestEngine(t, *ww, tt.version).DecryptBlock(make([]byte, 1000))
			if want := mustHex(t, tt.want); !bytes.Equal(got[1000-16:], want) {
				t.Errorf("keystream tail = %x, want %x", got[1000-16:], want)
			}
		})
	}
}

// Golden headers produced by the original client implementation.
func TestEngines_GoldenHeaders(t *testing.T) {
	ww, _ := RegionByName("WW")
	jp, _ := RegionByName("JP")

	v3jp := newTestEngine(t, *jp, 3)
	if got := v3jp.EmitHeader(); !bytes.Equal(got, mustHex(t, "3ddab60c000000000000051b00000000")) {
		t.Errorf("V3 JP header = %x", got)
	}

	v3flip, err := NewV3Engine(jp.Prefix, "test.bin", jp.KeyTable, true)
	if err != nil {
		t.Fatalf("NewV3Engine: %v", err)
	}
	if got := v3flip.EmitHeader(); !bytes.Equal(got, mustHex(t, "3ddab60c000000010000051b00000000")) {
		t.Errorf("V3 JP flipped header = %x", got)
	}

	v2 := newTestEngine(t, *ww, 2)
	if got := v2.EmitHeader(); !bytes.Equal(got, mustHex(t, "5874f947")) {
		t.Errorf("V2 WW header = %x", got)
	}

	for idx, want := range []string{
		"a78b060c000000020000000000000000",
		"a78b060c000001020000000000000000",
		"a78b060c000002020000000000000000",
		"a78b060c000003020000000000000000",
	} {
		v4, err := NewV4Engine(ww.Prefix, "test.bin", idx)
		if err != nil {
			t.Fatalf("NewV4Engine(%d): %v", idx, err)
		}
		if got := v4.EmitHeader(); !bytes.Equal(got, mustHex(t, want)) {
			t.Errorf("V4 lcg %d header = %x, want %s", idx, got, want)
		}
	}

	if got := newTestEngine(t, *ww, 1).EmitHeader(); len(got) != 0 {
		t.Errorf("V1 header = %x, want empty", got)
	}
}

// The documented launch-era scenario: for test.bin under WW, the version 1
// update key is (8 mod 64) + 1 = 9 and the first keystream byte is the top
// byte of the digest-derived initial key.
func TestV1_ConcreteScenario(t *testing.T) {
	e := NewV1Engine(NamePrefixWW, "test.bin")
	if e.updateKey != 9 {
		t.Errorf("updateKey = %d, want 9", e.updateKey)
	}
	if got := e.DecryptByte(0x00); got != 0x56 {
		t.Errorf("first byte = %#02x, want 0x56", got)
	}
}

func TestEngines_RoundTrip(t *testing.T) {
	lengths := []int{0, 1, 3, 4, 5, 16, 1000}

	for _, region := range Regions() {
		for version := 1; version <= 4; version++ {
			for _, n := range lengths {
				plaintext := make([]byte, n)
				for i := range plaintext {
					plaintext[i] = byte(i*7 + 13)
				}

				enc := newTestEngine(t, region, version)
				ciphertext := enc.DecryptBlock(plaintext)

				dec := newTestEngine(t, region, version)
				got := dec.DecryptBlock(ciphertext)

				if !bytes.Equal(got, plaintext) {
					t.Errorf("%s v%d len %d: round trip mismatch", region.Name, version, n)
				}
			}
		}
	}
}

func TestEngines_SeekMatchesSequential(t *testing.T) {
	const n = 64
	zeros := make([]byte, n)

	periods := map[int]int64{1: 4, 2: 2, 3: 1, 4: 1}
	ww, _ := RegionByName("WW")

	for version := 1; version <= 4; version++ {
		period := periods[version]
		full := newTestEngine(t, *ww, version).DecryptBlock(zeros)

		offsets := []int64{0, 1, period - 1, period, period + 1, 10 * period}
		for _, p := range offsets {
			if p < 0 || p >= n {
				continue
			}
			k := int64(n) - p

			// Forward seek from a fresh engine.
			e := newTestEngine(t, *ww, version)
			e.GotoOffset(p)
			if got := e.DecryptBlock(zeros[:k]); !bytes.Equal(got, full[p:]) {
				t.Errorf("v%d forward seek to %d: mismatch", version, p)
			}
			if e.Pos() != int64(n) {
				t.Errorf("v%d: Pos = %d, want %d", version, e.Pos(), n)
			}

			// Backward seek after consuming the whole stream.
			e = newTestEngine(t, *ww, version)
			e.DecryptBlock(zeros)
			e.GotoOffset(p)
			if got := e.DecryptBlock(zeros[:k]); !bytes.Equal(got, full[p:]) {
				t.Errorf("v%d backward seek to %d: mismatch", version, p)
			}
		}
	}
}

func TestEngines_SeekClampsNegative(t *testing.T) {
	ww, _ := RegionByName("WW")
	for version := 1; version <= 4; version++ {
		e := newTestEngine(t, *ww, version)
		want := e.DecryptBlock(make([]byte, 8))

		e2 := newTestEngine(t, *ww, version)
		e2.GotoOffset(-5)
		if e2.Pos() != 0 {
			t.Errorf("v%d: Pos after negative seek = %d, want 0", version, e2.Pos())
		}
		if got := e2.DecryptBlock(make([]byte, 8)); !bytes.Equal(got, want) {
			t.Errorf("v%d: keystream after negative seek diverged", version)
		}
	}
}

func TestEngines_Constants(t *testing.T) {
	ww, _ := RegionByName("WW")
	tests := []struct {
		version    int
		headerSize int
	}{
		{1, 0},
		{2, 4},
		{3, 16},
		{4, 16},
	}
	for _, tt := range tests {
		e := newTestEngine(t, *ww, tt.version)
		if e.Version() != tt.version {
			t.Errorf("Version() = %d, want %d", e.Version(), tt.version)
		}
		if e.HeaderSize() != tt.headerSize {
			t.Errorf("v%d: HeaderSize() = %d, want %d", tt.version, e.HeaderSize(), tt.headerSize)
		}
		if e.Pos() != 0 {
			t.Errorf("v%d: fresh Pos() = %d, want 0", tt.version, e.Pos())
		}
	}
}
