package mask

import (
	"github.com/gammazero/workerpool"

	"github.com/forest-guardian/landsat-guardian-poc/internal/qa"
)

// Class is the keep or discard decision for one QA code.
type Class uint8

const (
	Discard Class = 0
	Keep    Class = 1
)

// KeepPredicate lists the expected values of QA bits 0 through 5, in
// bit order: fill, clear, water, cloud shadow, snow, cloud. A code is
// kept only when all six observed bits match.
type KeepPredicate [6]uint8

// DefaultKeepPredicate keeps clear land pixels: clear set, everything
// else unset.
var DefaultKeepPredicate = KeepPredicate{0, 1, 0, 0, 0, 0}

// LookupTable precomputes the keep or discard class of every code in
// the QA domain, plus a fixed entry for NoData. Building it walks the
// domain once so reclassifying a raster never decodes per pixel.
type LookupTable struct {
	predicate KeepPredicate
	classes   []Class
	noData    Class
}

const (
	tableBuildWorkers = 8
	tableBuildChunk   = 4096
)

// BuildLookupTable classifies all 65536 codes against the predicate.
// Chunks of the domain are classified in parallel, each worker owning
// a disjoint range of the table.
func BuildLookupTable(predicate KeepPredicate) *LookupTable {
	table := &LookupTable{
		predicate: predicate,
		classes:   make([]Class, qa.MaxCode+1),
		noData:    Discard,
	}

	wp := workerpool.New(tableBuildWorkers)
	for start := 0; start <= qa.MaxCode; start += tableBuildChunk {
		start := start
		end := start + tableBuildChunk
		if end > qa.MaxCode+1 {
			end = qa.MaxCode + 1
		}
		wp.Submit(func() {
			for code := start; code < end; code++ {
				table.classes[code] = table.classify(code)
			}
		})
	}
	wp.StopWait()

	return table
}

func (t *LookupTable) classify(code int) Class {
	bits, err := qa.Decode(code)
	if err != nil {
		return Discard
	}
	flags := qa.Interpret(bits)
	if flags.NoData {
		return Discard
	}

	observed := KeepPredicate{
		boolBit(flags.Fill),
		boolBit(flags.Clear),
		boolBit(flags.Water),
		boolBit(flags.CloudShadow),
		boolBit(flags.Snow),
		boolBit(flags.Cloud),
	}
	if observed == t.predicate {
		return Keep
	}
	return Discard
}

func boolBit(set bool) uint8 {
	if set {
		return 1
	}
	return 0
}

// Lookup returns the class of a code. NoData and anything outside the
// QA domain are discarded.
func (t *LookupTable) Lookup(code int) Class {
	if code == qa.NoDataCode {
		return t.noData
	}
	if code < 0 || code > qa.MaxCode {
		return Discard
	}
	return t.classes[code]
}

func (t *LookupTable) Predicate() KeepPredicate {
	return t.predicate
}

// KeepCount reports how many codes in the domain the table keeps.
func (t *LookupTable) KeepCount() int {
	count := 0
	for _, class := range t.classes {
		if class == Keep {
			count++
		}
	}
	return count
}
