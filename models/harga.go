package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrHargaNotANumber is returned by [Harga.Int64] when the raw value cannot be
// coerced to an integer.
var ErrHargaNotANumber = errors.New("harga is not a valid integer")

// Harga is a price as sent by clients: either a JSON number (1500) or a JSON
// string holding a base-10 integer ("1500"). Decoding never fails; the value
// is validated by [Harga.Int64].
type Harga struct {
	raw      string
	isString bool
}

// HargaFromInt builds a numeric Harga.
func HargaFromInt(v int64) *Harga {
	return &Harga{raw: strconv.FormatInt(v, 10)}
}

// HargaFromString builds a string Harga.
func HargaFromString(s string) *Harga {
	return &Harga{raw: s, isString: true}
}

// UnmarshalJSON stores the raw JSON value for later coercion.
func (h *Harga) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		h.raw, h.isString = s, true
		return nil
	}

	h.raw, h.isString = string(b), false
	return nil
}

// MarshalJSON writes the value back in the form it was given.
func (h Harga) MarshalJSON() ([]byte, error) {
	if h.isString {
		return json.Marshal(h.raw)
	}
	if h.raw == "" {
		return []byte("null"), nil
	}

	return []byte(h.raw), nil
}

// IsBlank reports whether the value is an empty string.
func (h Harga) IsBlank() bool {
	return h.isString && strings.TrimSpace(h.raw) == ""
}

// Int64 coerces the value to an integer. Strings are parsed as base-10
// integers; numbers must be integral.
func (h Harga) Int64() (int64, error) {
	if h.isString {
		v, err := strconv.ParseInt(strings.TrimSpace(h.raw), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrHargaNotANumber, h.raw)
		}
		return v, nil
	}

	if v, err := strconv.ParseInt(h.raw, 10, 64); err == nil {
		return v, nil
	}

	// float64(math.MaxInt64) rounds up to 2^63, which int64 cannot hold.
	f, err := strconv.ParseFloat(h.raw, 64)
	if err != nil || f != math.Trunc(f) || f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, fmt.Errorf("%w: %s", ErrHargaNotANumber, h.raw)
	}

	return int64(f), nil
}

// String returns the raw value.
func (h Harga) String() string {
	return h.raw
}
