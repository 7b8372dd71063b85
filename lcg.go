package honoka

// lcgParams is one linear-congruential-generator parameter triple:
// next = cur*mult + inc mod 2^32, with the XOR key byte taken at shift.
type lcgParams struct {
	mult  uint32
	inc   uint32
	shift uint32
}

func (p lcgParams) next(x uint32) uint32 {
	return x*p.mult + p.inc
}

// lcgParamSets are the four fixed parameter sets selectable by version 4
// headers. They are the constants of well-known C runtime rand()
// implementations; index 2 (MSVC) is the one version 3 always uses.
var lcgParamSets = [4]lcgParams{
	{1103515245, 12345, 15},
	{22695477, 1, 23},
	{214013, 2531011, 24},
	{65793, 4282663, 8},
}

// v3LCGIndex is the parameter set reserved for version 3.
const v3LCGIndex = 2
