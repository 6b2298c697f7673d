package qa

import (
	"errors"
	"fmt"
)

const (
	// NoDataCode stands in for a QA cell that carries no observation.
	// It sits outside the 16-bit code domain on purpose.
	NoDataCode = -1

	MaxCode = 1<<16 - 1
)

var ErrDomain = errors.New("pixel code outside QA domain")

// BitVector is the unpacked form of a 16-bit QA code. Bits[0] is the
// least significant bit. NoData vectors carry no observation and every
// bit is false.
type BitVector struct {
	Bits   [16]bool
	NoData bool
}

// Decode unpacks a QA pixel code into its bit vector. NoDataCode is
// accepted and yields a NoData vector. Codes outside [0, MaxCode]
// other than NoDataCode are a domain error.
func Decode(code int) (BitVector, error) {
	if code == NoDataCode {
		return BitVector{NoData: true}, nil
	}
	if code < 0 || code > MaxCode {
		return BitVector{}, fmt.Errorf("%w: %d", ErrDomain, code)
	}

	var bits BitVector
	for i := 0; i < 16; i++ {
		bits.Bits[i] = (code>>i)&1 == 1
	}
	return bits, nil
}

// Encode packs a bit vector back into its pixel code.
func Encode(bits BitVector) int {
	if bits.NoData {
		return NoDataCode
	}

	code := 0
	for i := 0; i < 16; i++ {
		if bits.Bits[i] {
			code |= 1 << i
		}
	}
	return code
}
