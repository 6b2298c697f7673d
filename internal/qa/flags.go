package qa

// Confidence is a two-bit QA confidence level.
type Confidence int

const (
	ConfidenceNone Confidence = iota
	ConfidenceLow
	ConfidenceMedium
	ConfidenceHigh
)

func (c Confidence) String() string {
	switch c {
	case ConfidenceNone:
		return "none"
	case ConfidenceLow:
		return "low"
	case ConfidenceMedium:
		return "medium"
	case ConfidenceHigh:
		return "high"
	}
	return "unknown"
}

// Flags is the named interpretation of a QA bit vector. The single-bit
// flags cover bits 0 through 5 and bit 10, the confidence pairs cover
// bits 6-7 and 8-9, and Reserved keeps bits 11-15 without assigning
// them a meaning.
type Flags struct {
	Fill             bool
	Clear            bool
	Water            bool
	CloudShadow      bool
	Snow             bool
	Cloud            bool
	CloudConfidence  Confidence
	CirrusConfidence Confidence
	TerrainOccluded  bool
	Reserved         [5]bool
	NoData           bool
}

// Interpret names the bits of a QA vector. It is total: every vector,
// NoData included, maps to a Flags value.
func Interpret(bits BitVector) Flags {
	if bits.NoData {
		return Flags{NoData: true}
	}

	flags := Flags{
		Fill:             bits.Bits[0],
		Clear:            bits.Bits[1],
		Water:            bits.Bits[2],
		CloudShadow:      bits.Bits[3],
		Snow:             bits.Bits[4],
		Cloud:            bits.Bits[5],
		CloudConfidence:  confidenceField(bits, 6),
		CirrusConfidence: confidenceField(bits, 8),
		TerrainOccluded:  bits.Bits[10],
	}
	for i := 0; i < 5; i++ {
		flags.Reserved[i] = bits.Bits[11+i]
	}
	return flags
}

// confidenceField reads the two-bit field whose low bit sits at
// position low, with the high bit right above it.
func confidenceField(bits BitVector, low int) Confidence {
	value := 0
	if bits.Bits[low] {
		value |= 1
	}
	if bits.Bits[low+1] {
		value |= 2
	}
	return Confidence(value)
}
