package stats

import (
	"encoding/json"
	"math"
)

// Float is a float64 that serializes NaN as JSON null. Statistical tests
// report uncomputable results (degenerate input, zero variance, too few
// samples) as NaN, and the output contract requires a stable sentinel
// instead of invalid JSON.
type Float float64

// NotComputable is the sentinel for a test that could not be evaluated.
func NotComputable() Float {
	return Float(math.NaN())
}

// Valid reports whether the value is an actual number.
func (f Float) Valid() bool {
	return !math.IsNaN(float64(f))
}

func (f Float) MarshalJSON() ([]byte, error) {
	if math.IsNaN(float64(f)) {
		return []byte("null"), nil
	}
	return json.Marshal(float64(f))
}

func (f *Float) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = NotComputable()
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*f = Float(v)
	return nil
}
