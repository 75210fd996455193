// Package palette assigns a stable display color to each creator name.
package palette

import "math"

// Colors is the fixed set of event colors. Indexing is by name hash so
// the same creator always lands on the same color.
var Colors = []string{
	"#3B82F6",
	"#EF4444",
	"#10B981",
	"#F59E0B",
	"#8B5CF6",
	"#EC4899",
	"#06B6D4",
	"#84CC16",
	"#F97316",
	"#6366F1",
}

// ColorFor maps a creator name to one of the palette colors. The hash
// runs over UTF-16 code units with a float64 accumulator; only the shift
// operand collapses to 32 bits. Stored colors depend on this exact
// arithmetic, so it must not be simplified to pure integer math.
func ColorFor(name string) string {
	var hash float64
	for _, r := range name {
		if r > 0xFFFF {
			// Surrogate pair halves hash separately.
			r -= 0x10000
			hi := 0xD800 + (r >> 10)
			lo := 0xDC00 + (r & 0x3FF)
			hash = step(hash, float64(hi))
			hash = step(hash, float64(lo))
			continue
		}
		hash = step(hash, float64(r))
	}
	idx := int(math.Mod(math.Abs(hash), float64(len(Colors))))
	return Colors[idx]
}

// step folds one code unit into the accumulator: code + ((hash << 5) - hash),
// where the shifted operand wraps in int32 and the rest stays in float64.
func step(hash, code float64) float64 {
	return code + (float64(toInt32(hash)<<5) - hash)
}

// toInt32 truncates a float64 to a wrapping 32-bit signed integer.
func toInt32(f float64) int32 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	m := math.Mod(math.Trunc(f), 1<<32)
	if m < 0 {
		m += 1 << 32
	}
	return int32(uint32(m))
}
