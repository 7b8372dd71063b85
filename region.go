package honoka

// Region is one regional distribution of the game client: a name-prefix
// constant mixed into every key derivation, plus the version 3 key table.
type Region struct {
	Name     string
	Prefix   []byte
	KeyTable []uint32 // 64 entries; required for version 3
}

// Name prefixes for the four regional releases.
var (
	NamePrefixJP = []byte("Hello")
	NamePrefixWW = []byte("BFd3EnkcKa")
	NamePrefixTW = []byte("M2o2B7i3M6o6N88")
	NamePrefixCN = []byte("iLbs0LpvJrXm3zjdhAr4")
)

// regions is the fixed probing order. JP is tried first, matching the
// client merge history.
var regions = []Region{
	{Name: "JP", Prefix: NamePrefixJP, KeyTable: KeyTableJP[:]},
	{Name: "WW", Prefix: NamePrefixWW, KeyTable: KeyTableWW[:]},
	{Name: "TW", Prefix: NamePrefixTW, KeyTable: KeyTableTW[:]},
	{Name: "CN", Prefix: NamePrefixCN, KeyTable: KeyTableCN[:]},
}

// Regions returns the built-in regional (prefix, key table) pairs in
// probing order. The returned slice is a copy; the underlying prefix and
// table data is shared, read-only package state.
func Regions() []Region {
	out := make([]Region, len(regions))
	copy(out, regions)
	return out
}

// RegionByName looks up a built-in region by its short name ("JP", "WW",
// "TW", "CN"). "EN" is accepted as an alias for the worldwide release.
func RegionByName(name string) (*Region, error) {
	if name == "EN" {
		name = "WW"
	}
	for i := range regions {
		if regions[i].Name == name {
			r := regions[i]
			return &r, nil
		}
	}
	return nil, ErrUnknownRegion
}
