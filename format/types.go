package format

import "strings"

type (
	Dtype           uint8
	DtypeSet        uint16
	Algorithm       uint8
	EncodingType    uint8
	CompressionType uint8
)

const (
	DtypeUnknown  Dtype = 0x0
	DtypeFloat64  Dtype = 0x1 // DtypeFloat64 represents 64-bit floating point values.
	DtypeFloat32  Dtype = 0x2 // DtypeFloat32 represents 32-bit floating point values.
	DtypeInt      Dtype = 0x3 // DtypeInt represents signed integers of any width.
	DtypeUint     Dtype = 0x4 // DtypeUint represents unsigned integers of any width.
	DtypeBool     Dtype = 0x5 // DtypeBool represents boolean values.
	DtypeCategory Dtype = 0x6 // DtypeCategory represents categorical labels backed by integer codes.
	DtypeString   Dtype = 0x7 // DtypeString represents free-form strings.
	DtypeTime     Dtype = 0x8 // DtypeTime represents instants stored as nanosecond ticks.
)

const (
	AlgorithmUnknown       Algorithm = 0x0
	AlgorithmEveryNth      Algorithm = 0x1 // AlgorithmEveryNth is the stride selector.
	AlgorithmMinMax        Algorithm = 0x2 // AlgorithmMinMax is the full-window min/max selector.
	AlgorithmMinMaxOverlap Algorithm = 0x3 // AlgorithmMinMaxOverlap is the 50%-overlap min/max selector.
	AlgorithmLTTB          Algorithm = 0x4 // AlgorithmLTTB is the largest-triangle-three-buckets selector.
	AlgorithmMinMaxLTTB    Algorithm = 0x5 // AlgorithmMinMaxLTTB is the MinMax-prefetched LTTB selector.
	AlgorithmFunc          Algorithm = 0x6 // AlgorithmFunc is the generic per-bin reduction aggregator.
)

const (
	TypeRaw   EncodingType = 0x1 // TypeRaw represents raw IEEE-754 values with no format.
	TypeDelta EncodingType = 0x2 // TypeDelta represents delta-of-delta varint encoding.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

var (
	// NumericDtypes are the dtypes with a numeric view: the input set of the
	// distance-based algorithms.
	NumericDtypes = NewDtypeSet(DtypeFloat64, DtypeFloat32, DtypeInt, DtypeUint, DtypeBool, DtypeCategory)

	// AnyDtype accepts every dtype.
	AnyDtype = NewDtypeSet(DtypeFloat64, DtypeFloat32, DtypeInt, DtypeUint, DtypeBool,
		DtypeCategory, DtypeString, DtypeTime)

	// CoordinateDtypes are the dtypes an explicit x may carry.
	CoordinateDtypes = NewDtypeSet(DtypeFloat64, DtypeInt, DtypeTime)
)

func (d Dtype) String() string {
	switch d {
	case DtypeFloat64:
		return "float64"
	case DtypeFloat32:
		return "float32"
	case DtypeInt:
		return "int"
	case DtypeUint:
		return "uint"
	case DtypeBool:
		return "bool"
	case DtypeCategory:
		return "category"
	case DtypeString:
		return "string"
	case DtypeTime:
		return "time"
	default:
		return "unknown"
	}
}

// NewDtypeSet builds a set holding the given dtypes.
func NewDtypeSet(dtypes ...Dtype) DtypeSet {
	var s DtypeSet
	for _, d := range dtypes {
		s |= 1 << d
	}

	return s
}

// Contains reports whether d is a member of the set.
func (s DtypeSet) Contains(d Dtype) bool {
	return d != DtypeUnknown && s&(1<<d) != 0
}

// Dtypes lists the members in ascending order.
func (s DtypeSet) Dtypes() []Dtype {
	var out []Dtype
	for d := DtypeFloat64; d <= DtypeTime; d++ {
		if s.Contains(d) {
			out = append(out, d)
		}
	}

	return out
}

func (s DtypeSet) String() string {
	names := make([]string, 0, 8)
	for _, d := range s.Dtypes() {
		names = append(names, d.String())
	}

	return "{" + strings.Join(names, ",") + "}"
}

func (a Algorithm) String() string {
	switch a {
	case AlgorithmEveryNth:
		return "EveryNth"
	case AlgorithmMinMax:
		return "MinMax"
	case AlgorithmMinMaxOverlap:
		return "MinMaxOverlap"
	case AlgorithmLTTB:
		return "LTTB"
	case AlgorithmMinMaxLTTB:
		return "MinMaxLTTB"
	case AlgorithmFunc:
		return "FuncAggregator"
	default:
		return "Unknown"
	}
}

// ParseAlgorithm maps a case-insensitive algorithm name to its Algorithm.
// Unrecognised names map to AlgorithmUnknown.
func ParseAlgorithm(name string) Algorithm {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "everynth", "every_nth", "everynthpoint":
		return AlgorithmEveryNth
	case "minmax", "min_max":
		return AlgorithmMinMax
	case "minmaxoverlap", "minmax_overlap":
		return AlgorithmMinMaxOverlap
	case "lttb":
		return AlgorithmLTTB
	case "minmaxlttb", "minmax_lttb":
		return AlgorithmMinMaxLTTB
	case "func", "funcaggregator":
		return AlgorithmFunc
	default:
		return AlgorithmUnknown
	}
}

func (e EncodingType) String() string {
	switch e {
	case TypeRaw:
		return "Raw"
	case TypeDelta:
		return "Delta"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// ParseCompression maps a case-insensitive codec name to its CompressionType.
// Unrecognised names map to 0, which no codec accepts.
func ParseCompression(name string) CompressionType {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none":
		return CompressionNone
	case "zstd":
		return CompressionZstd
	case "s2":
		return CompressionS2
	case "lz4":
		return CompressionLZ4
	default:
		return 0
	}
}
