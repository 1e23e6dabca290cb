// Package transport serializes mapped landmark frames and sends them as
// fire-and-forget UDP datagrams.
package transport

import (
	"math"
	"strconv"
	"strings"

	"github.com/fxamacker/cbor/v2"
)

// Encoder renders one frame's flat coordinate list into datagram bytes.
type Encoder interface {
	Encode(values []float64) ([]byte, error)
}

// TextEncoder produces the legacy wire form consumed by existing avatar
// rigs: a Python list literal, e.g. "[640.0, 360.0, 128.0]". Consumers
// parse this byte-for-byte, so the float rendering must match Python's
// repr (shortest round-trip form, integral values keep a trailing ".0").
type TextEncoder struct{}

// Encode renders the values as a list literal.
func (TextEncoder) Encode(values []float64) ([]byte, error) {
	var b strings.Builder
	b.Grow(len(values)*8 + 2)

	b.WriteByte('[')
	for i, v := range values {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(formatFloat(v))
	}
	b.WriteByte(']')

	return []byte(b.String()), nil
}

// formatFloat renders one float the way Python's repr does.
func formatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}

	// CPython keeps decimal form for 1e-4 <= abs(v) < 1e16 and uses
	// exponent form outside that range. strconv's 'g' verb switches to
	// exponent form at 1e6 already, so the verb must be chosen
	// explicitly to keep values like 2000000.0 byte-compatible.
	abs := math.Abs(v)
	if v == 0 || (abs >= 1e-4 && abs < 1e16) {
		s := strconv.FormatFloat(v, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Wire format version for the CBOR encoding.
const CBORVersion = 1

// cborFrame is the self-describing CBOR payload.
type cborFrame struct {
	Version int       `cbor:"v"`
	Count   int       `cbor:"n"` // Landmark count (len(Data)/3)
	Data    []float64 `cbor:"data"`
}

// CBOREncoder is a deliberate, versioned departure from the text wire
// form for consumers that opt in: smaller payloads and an explicit
// version field, at the cost of Python-literal compatibility.
type CBOREncoder struct{}

// Encode renders the values as a versioned CBOR map.
func (CBOREncoder) Encode(values []float64) ([]byte, error) {
	return cbor.Marshal(cborFrame{
		Version: CBORVersion,
		Count:   len(values) / 3,
		Data:    values,
	})
}

// DecodeCBOR parses a CBOR datagram back into its flat value list.
// Intended for consumers and tests.
func DecodeCBOR(payload []byte) (version, count int, values []float64, err error) {
	var f cborFrame
	if err := cbor.Unmarshal(payload, &f); err != nil {
		return 0, 0, nil, err
	}
	return f.Version, f.Count, f.Data, nil
}
