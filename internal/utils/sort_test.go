package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(day int) time.Time {
	return time.Date(2024, time.March, day, 0, 0, 0, 0, time.UTC)
}

func TestSortDates(t *testing.T) {
	dates := []time.Time{date(20), date(5), date(12)}

	asc := SortDates(dates, true)
	assert.Equal(t, []time.Time{date(5), date(12), date(20)}, asc)

	desc := SortDates(dates, false)
	assert.Equal(t, []time.Time{date(20), date(12), date(5)}, desc)
}

func TestGetSortedKeys(t *testing.T) {
	m := map[time.Time]string{
		date(8):  "b",
		date(2):  "a",
		date(30): "c",
	}

	keys := GetSortedKeys(m, true)

	require.Len(t, keys, 3)
	assert.Equal(t, date(2), keys[0])
	assert.Equal(t, date(30), keys[2])
}

func TestMostRecent(t *testing.T) {
	m := map[time.Time]int{
		date(3):  1,
		date(17): 2,
		date(9):  3,
	}

	latest, ok := MostRecent(m)

	require.True(t, ok)
	assert.Equal(t, date(17), latest)
}

func TestMostRecentEmpty(t *testing.T) {
	_, ok := MostRecent(map[time.Time]int{})

	assert.False(t, ok)
}
