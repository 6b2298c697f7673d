package mask

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forest-guardian/landsat-guardian-poc/internal/qa"
)

func TestBuildLookupTableDefaultPredicate(t *testing.T) {
	table := BuildLookupTable(DefaultKeepPredicate)

	// Code 2 is a clear pixel, code 0 has nothing set.
	assert.Equal(t, Keep, table.Lookup(2))
	assert.Equal(t, Discard, table.Lookup(0))
	assert.Equal(t, Discard, table.Lookup(1))
	assert.Equal(t, Discard, table.Lookup(2|1<<5))
}

func TestLookupIgnoresHighBits(t *testing.T) {
	table := BuildLookupTable(DefaultKeepPredicate)

	// Confidence and reserved bits sit above bit 5 and do not take
	// part in the predicate.
	assert.Equal(t, Keep, table.Lookup(2|1<<6))
	assert.Equal(t, Keep, table.Lookup(2|1<<9))
	assert.Equal(t, Keep, table.Lookup(2|1<<15))
	assert.Equal(t, Keep, table.Lookup(2|0xFFC0))
}

func TestLookupTableKeepCount(t *testing.T) {
	table := BuildLookupTable(DefaultKeepPredicate)

	// Bits 6 through 15 are free, so exactly 2^10 codes match.
	assert.Equal(t, 1024, table.KeepCount())
}

func TestLookupTableTotality(t *testing.T) {
	table := BuildLookupTable(DefaultKeepPredicate)

	for code := 0; code <= qa.MaxCode; code++ {
		class := table.Lookup(code)
		require.True(t, class == Keep || class == Discard, "code %d has class %d", code, class)
	}
}

func TestLookupTableDeterministic(t *testing.T) {
	first := BuildLookupTable(DefaultKeepPredicate)
	second := BuildLookupTable(DefaultKeepPredicate)

	assert.Equal(t, first.classes, second.classes)
}

func TestBuildLookupTableCustomPredicate(t *testing.T) {
	water := KeepPredicate{0, 0, 1, 0, 0, 0}
	table := BuildLookupTable(water)

	assert.Equal(t, Keep, table.Lookup(4))
	assert.Equal(t, Discard, table.Lookup(2))
	assert.Equal(t, Discard, table.Lookup(4|2))
	assert.Equal(t, water, table.Predicate())
}

func TestLookupOutsideDomain(t *testing.T) {
	table := BuildLookupTable(DefaultKeepPredicate)

	assert.Equal(t, Discard, table.Lookup(qa.NoDataCode))
	assert.Equal(t, Discard, table.Lookup(qa.MaxCode+1))
	assert.Equal(t, Discard, table.Lookup(-50))
}
