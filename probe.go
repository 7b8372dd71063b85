package honoka

// Options controls engine construction. The zero value probes the version
// from the file header with strict name-sum checking disabled; most callers
// want DefaultOptions.
type Options struct {
	// Version selects the protocol generation explicitly (1-4). Zero means
	// detect it from the file header; version 1 is headerless and can only
	// be reached explicitly.
	Version int

	// FlipV3 complements the version 3 initial key. Ignored when a header
	// is supplied, which carries the authoritative flag.
	FlipV3 bool

	// LCGIndexV4 selects the version 4 LCG parameter set (0-3). Ignored
	// when a header is supplied.
	LCGIndexV4 int

	// EnforceNameSum makes version 3 construction recompute the name sum
	// and fail when the header disagrees. When false the header value is
	// trusted instead.
	EnforceNameSum bool
}

// DefaultOptions returns the options used when nil is passed: header-driven
// version detection with strict name-sum checking.
func DefaultOptions() *Options {
	return &Options{EnforceNameSum: true}
}

// Validate checks if the options are valid.
func (o *Options) Validate() error {
	if o.Version < 0 || o.Version > 4 {
		return ErrVersionOutOfRange
	}
	if o.LCGIndexV4 < 0 || o.LCGIndexV4 >= len(lcgParamSets) {
		return &ValidationError{
			Field:   "LCGIndexV4",
			Value:   o.LCGIndexV4,
			Message: "LCG parameter index must be 0 through 3",
		}
	}
	return nil
}

// Probe determines which region and cipher generation produced a file from
// its first 16 bytes and returns a ready engine. Regions are tried in fixed
// order; within each, version 2 first, then the combined version 3/4 header
// dispatch. Format and unsupported-version failures move on to the next
// candidate; exhausting every combination fails with ErrNoSuitableMode.
func Probe(filename string, header []byte) (CipherEngine, *Region, error) {
	return ProbeRegions(filename, header, nil, nil)
}

// ProbeRegions is Probe over a caller-supplied candidate set and options.
// candidates nil means the built-in four regions; opts nil means
// DefaultOptions. Failed attempts mutate nothing and the first success
// wins.
func ProbeRegions(filename string, header []byte, candidates []Region, opts *Options) (CipherEngine, *Region, error) {
	if candidates == nil {
		candidates = regions
	}
	for i := range candidates {
		engine, err := Construct(candidates[i], filename, header, opts)
		if err == nil {
			region := candidates[i]
			return engine, &region, nil
		}
		if !retriable(err) {
			return nil, nil, err
		}
	}
	return nil, nil, ErrNoSuitableMode
}

// Construct builds an engine for a known region without probing other
// regions. A supplied header is still validated even when the version is
// explicit; errors surface immediately rather than being collected.
func Construct(region Region, filename string, header []byte, opts *Options) (CipherEngine, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	switch opts.Version {
	case 0:
		if len(header) < v3HeaderSize {
			return nil, ErrInsufficientHeader
		}
		engine, err := NewV2Engine(region.Prefix, filename, header)
		if err == nil {
			return engine, nil
		}
		if !retriable(err) {
			return nil, err
		}
		return constructV3Plus(region, filename, header, opts)
	case 1:
		// Headerless; accepts any file, so nothing to validate.
		return NewV1Engine(region.Prefix, filename), nil
	case 2:
		return NewV2Engine(region.Prefix, filename, header)
	default:
		return constructV3Plus(region, filename, header, opts)
	}
}

// constructV3Plus builds a version 3 or 4 engine, dispatching on header
// byte 7 when the version is not explicit: values below 2 select version 3
// with the flip flag and the header-declared name sum, 2 selects version 4
// with the header's LCG index, and anything above is a presently-unknown
// later generation.
func constructV3Plus(region Region, filename string, header []byte, opts *Options) (CipherEngine, error) {
	km := DeriveKeyMaterial(region.Prefix, filename)

	version := opts.Version
	flip := opts.FlipV3
	lcgIndex := opts.LCGIndexV4
	var headerSum *uint32

	if header != nil {
		if err := validateV3Header(header, &km.Digest); err != nil {
			return nil, err
		}
		flip = header[headerFlipByte] == 1
		if version == 0 {
			switch {
			case header[headerFlipByte] < v4VersionMarker:
				version = 3
				sum := headerNameSum(header)
				headerSum = &sum
			case header[headerFlipByte] == v4VersionMarker:
				version = 4
				lcgIndex = int(header[headerLCGByte])
			default:
				return nil, &UnsupportedVersionError{Marker: header[headerFlipByte]}
			}
		}
	}

	switch version {
	case 3:
		if len(region.KeyTable) == 0 {
			return nil, ErrKeyTableMissing
		}
		return newV3Engine(&km, region.KeyTable, flip, headerSum, opts.EnforceNameSum)
	case 4:
		return newV4Engine(&km, lcgIndex)
	default:
		return nil, ErrVersionOutOfRange
	}
}
