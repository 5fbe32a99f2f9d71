package subschema

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/goccy/go-json"
)

// RatValue wraps big.Rat to give numeric schema keywords (minimum, maximum,
// multipleOf, and their exclusive variants) exact rational JSON marshaling
// instead of float64 precision loss.
type RatValue struct {
	*big.Rat `hash:"string"`
}

// NewRatValue creates a RatValue from an int, float, string, or *big.Rat.
func NewRatValue(value any) *RatValue {
	converted, err := convertToBigRat(value)
	if err != nil {
		return nil
	}
	return &RatValue{converted}
}

// UnmarshalJSON implements json.Unmarshaler for RatValue.
func (r *RatValue) UnmarshalJSON(data []byte) error {
	var tmp any
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}

	converted, err := convertToBigRat(tmp)
	if err != nil {
		return err
	}

	r.Rat = converted
	return nil
}

// MarshalJSON implements json.Marshaler for RatValue.
func (r RatValue) MarshalJSON() ([]byte, error) {
	formatted := FormatRat(&r)
	if strings.Contains(formatted, "/") {
		return json.Marshal(formatted)
	}
	return []byte(formatted), nil
}

func convertToBigRat(data any) (*big.Rat, error) {
	var str string
	switch v := data.(type) {
	case float64, float32, int, int64, int32, int16, int8, uint, uint64, uint32, uint16, uint8:
		str = fmt.Sprint(v)
	case string:
		str = v
	default:
		return nil, ErrUnsupportedRatType
	}

	numRat := new(big.Rat)
	if _, ok := numRat.SetString(str); !ok {
		return nil, ErrRatConversion
	}
	return numRat, nil
}

// FormatRat formats a RatValue as a decimal string, trimming trailing zeros.
func FormatRat(r *RatValue) string {
	if r == nil || r.Rat == nil {
		return "null"
	}

	if r.IsInt() {
		return r.Num().String()
	}

	dec := r.FloatString(10)
	trimmed := strings.TrimRight(dec, "0")
	trimmed = strings.TrimRight(trimmed, ".")
	if trimmed == "" {
		return "0"
	}
	return trimmed
}
