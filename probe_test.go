package honoka

import (
	"errors"
	"testing"
)

// wwHeader returns a valid worldwide version 3 header for test.bin that
// tests can mutate.
func wwHeader(t *testing.T) []byte {
	t.Helper()
	ww, _ := RegionByName("WW")
	e, err := NewV3Engine(ww.Prefix, "test.bin", ww.KeyTable, false)
	if err != nil {
		t.Fatalf("NewV3Engine: %v", err)
	}
	return e.EmitHeader()
}

func TestProbe_HeaderDispatch(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(h []byte)
		wantVersion int
		wantFlip    bool
		wantLCG     int
	}{
		{
			name:        "marker 0 selects version 3",
			mutate:      func(h []byte) {},
			wantVersion: 3,
		},
		{
			name:        "marker 1 selects version 3 flipped",
			mutate:      func(h []byte) { h[7] = 1 },
			wantVersion: 3,
			wantFlip:    true,
		},
		{
			name: "marker 2 selects version 4",
			mutate: func(h []byte) {
				h[7] = 2
				h[6] = 3
				// Version 4 headers carry no name sum.
				h[8], h[9], h[10], h[11] = 0, 0, 0, 0
			},
			wantVersion: 4,
			wantLCG:     3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header := wwHeader(t)
			tt.mutate(header)

			engine, region, err := Probe("test.bin", header)
			if err != nil {
				t.Fatalf("Probe: %v", err)
			}
			if region.Name != "WW" {
				t.Errorf("region = %s, want WW", region.Name)
			}
			if engine.Version() != tt.wantVersion {
				t.Errorf("version = %d, want %d", engine.Version(), tt.wantVersion)
			}
			switch e := engine.(type) {
			case *V3Engine:
				if e.Flipped() != tt.wantFlip {
					t.Errorf("Flipped() = %v, want %v", e.Flipped(), tt.wantFlip)
				}
			case *V4Engine:
				if e.LCGIndex() != tt.wantLCG {
					t.Errorf("LCGIndex() = %d, want %d", e.LCGIndex(), tt.wantLCG)
				}
			}
		})
	}
}

func TestConstruct_FutureVersionMarker(t *testing.T) {
	ww, _ := RegionByName("WW")
	header := wwHeader(t)
	header[7] = 3

	_, err := Construct(*ww, "test.bin", header, nil)
	if !IsUnsupportedVersion(err) {
		t.Fatalf("err = %v, want unsupported version", err)
	}
	var ue *UnsupportedVersionError
	if errors.As(err, &ue) && ue.Marker != 3 {
		t.Errorf("Marker = %d, want 3", ue.Marker)
	}
}

func TestProbe_Deterministic(t *testing.T) {
	header := wwHeader(t)
	for i := 0; i < 10; i++ {
		_, region, err := Probe("test.bin", header)
		if err != nil {
			t.Fatalf("run %d: %v", i, err)
		}
		if region.Name != "WW" {
			t.Fatalf("run %d: region = %s, want WW", i, region.Name)
		}
	}
}

func TestProbe_NoSuitableMode(t *testing.T) {
	garbage := make([]byte, 16)
	for i := range garbage {
		garbage[i] = 0xFF
	}
	_, _, err := Probe("test.bin", garbage)
	if !IsNoSuitableMode(err) {
		t.Errorf("err = %v, want %v", err, ErrNoSuitableMode)
	}
}

// A short header is caller error and must surface immediately instead of
// being swallowed as an unmatched candidate.
func TestProbe_ShortHeader(t *testing.T) {
	_, _, err := Probe("test.bin", []byte{1, 2, 3})
	if !errors.Is(err, ErrInsufficientHeader) {
		t.Errorf("err = %v, want %v", err, ErrInsufficientHeader)
	}
}

// Version 1 is headerless and only reachable with an explicit version.
func TestProbe_ExplicitVersion1(t *testing.T) {
	opts := DefaultOptions()
	opts.Version = 1

	engine, region, err := ProbeRegions("test.bin", nil, nil, opts)
	if err != nil {
		t.Fatalf("ProbeRegions: %v", err)
	}
	if engine.Version() != 1 {
		t.Errorf("version = %d, want 1", engine.Version())
	}
	if region.Name != "JP" {
		t.Errorf("region = %s, want JP (first candidate)", region.Name)
	}
}

func TestConstruct_NameSumStrict(t *testing.T) {
	ww, _ := RegionByName("WW")
	header := wwHeader(t)
	header[11]++ // declare a name sum off by one

	_, err := Construct(*ww, "test.bin", header, nil)
	if !IsNameSumMismatch(err) {
		t.Fatalf("err = %v, want name sum mismatch", err)
	}

	var ne *NameSumError
	if !errors.As(err, &ne) {
		t.Fatal("error does not unwrap to NameSumError")
	}
	if ne.Computed != 1651 {
		t.Errorf("Computed = %d, want 1651", ne.Computed)
	}
	if ne.Header != 1652 {
		t.Errorf("Header = %d, want 1652", ne.Header)
	}
}

func TestConstruct_NameSumLenient(t *testing.T) {
	ww, _ := RegionByName("WW")
	header := wwHeader(t)
	header[11]++

	opts := DefaultOptions()
	opts.EnforceNameSum = false
	engine, err := Construct(*ww, "test.bin", header, opts)
	if err != nil {
		t.Fatalf("Construct: %v", err)
	}
	if engine.Version() != 3 {
		t.Errorf("version = %d, want 3", engine.Version())
	}

	// Trusting the declared sum selects a different key table entry, so the
	// keystream must diverge from the true one.
	truth, err := NewV3Engine(ww.Prefix, "test.bin", ww.KeyTable, false)
	if err != nil {
		t.Fatalf("NewV3Engine: %v", err)
	}
	if engine.DecryptByte(0) == truth.DecryptByte(0) {
		t.Error("lenient engine matched the recomputed key, expected divergence")
	}
}

// A mismatched name sum is retriable during probing: with only one
// candidate it exhausts the set instead of surfacing.
func TestProbeRegions_NameSumMismatchRetries(t *testing.T) {
	ww, _ := RegionByName("WW")
	header := wwHeader(t)
	header[11]++

	_, _, err := ProbeRegions("test.bin", header, []Region{*ww}, nil)
	if !IsNoSuitableMode(err) {
		t.Errorf("err = %v, want %v", err, ErrNoSuitableMode)
	}
}

func TestConstruct_Version3NeedsKeyTable(t *testing.T) {
	bare := Region{Name: "BARE", Prefix: []byte("SomePrefix")}
	opts := DefaultOptions()
	opts.Version = 3

	_, err := Construct(bare, "test.bin", nil, opts)
	if !errors.Is(err, ErrKeyTableMissing) {
		t.Errorf("err = %v, want %v", err, ErrKeyTableMissing)
	}
}

func TestOptions_Validate(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		ok   bool
	}{
		{"defaults", *DefaultOptions(), true},
		{"version 4", Options{Version: 4}, true},
		{"version too high", Options{Version: 5}, false},
		{"negative version", Options{Version: -1}, false},
		{"lcg index 3", Options{LCGIndexV4: 3}, true},
		{"lcg index 4", Options{LCGIndexV4: 4}, false},
		{"negative lcg index", Options{LCGIndexV4: -1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate()
			if (err == nil) != tt.ok {
				t.Errorf("Validate() = %v, want ok=%v", err, tt.ok)
			}
		})
	}
}
