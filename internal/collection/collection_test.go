package collection

import (
	"testing"

	"tripdesk/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestAppend_AssignsNextOrdinal(t *testing.T) {
	l := New(1, domain.Day{Title: "Arrival"})

	l.Append(domain.Day{Title: "Island hop", DayNumber: 99}) // hand-written ordinal is discarded

	days := l.Items()
	assert.Equal(t, 2, len(days))
	assert.Equal(t, 1, days[0].DayNumber)
	assert.Equal(t, 2, days[1].DayNumber)
}

func TestRemoveAt_RenumbersRemainder(t *testing.T) {
	l := New(1,
		domain.Day{Title: "Arrival"},
		domain.Day{Title: "North Bay"},
		domain.Day{Title: "Departure"},
	)

	ok := l.RemoveAt(0)

	assert.True(t, ok)
	days := l.Items()
	assert.Equal(t, 2, len(days))
	assert.Equal(t, "North Bay", days[0].Title)
	assert.Equal(t, 1, days[0].DayNumber)
	assert.Equal(t, "Departure", days[1].Title)
	assert.Equal(t, 2, days[1].DayNumber)
}

func TestRemoveAt_LastItemIsNoOp(t *testing.T) {
	l := New(1, domain.Day{Title: "Arrival", Description: "Pickup"})

	ok := l.RemoveAt(0)

	assert.False(t, ok)
	days := l.Items()
	assert.Equal(t, 1, len(days))
	assert.Equal(t, "Arrival", days[0].Title)
	assert.Equal(t, "Pickup", days[0].Description)
	assert.Equal(t, 1, days[0].DayNumber)
}

func TestRemoveAt_NoMinimumAllowsEmpty(t *testing.T) {
	l := New(0, domain.TransportEntry{Day: "1st Day"})

	assert.True(t, l.RemoveAt(0))
	assert.Equal(t, 0, l.Len())
}

func TestUpdateAt_PreservesOrdinal(t *testing.T) {
	l := New(1,
		domain.HotelNight{Name: "Sea Shell"},
		domain.HotelNight{Name: "Symphony Palms"},
	)

	ok := l.UpdateAt(1, domain.HotelNight{Name: "Barefoot Resort", NightNumber: 7})

	assert.True(t, ok)
	hotels := l.Items()
	assert.Equal(t, "Barefoot Resort", hotels[1].Name)
	assert.Equal(t, 2, hotels[1].NightNumber)
	assert.Equal(t, 1, hotels[0].NightNumber)
}

func TestOrdinalsDenseAfterMixedOperations(t *testing.T) {
	l := New(1, domain.Day{Title: "d1"})
	l.Append(domain.Day{Title: "d2"})
	l.Append(domain.Day{Title: "d3"})
	l.RemoveAt(1)
	l.Append(domain.Day{Title: "d4"})
	l.RemoveAt(0)

	for i, d := range l.Items() {
		assert.Equal(t, i+1, d.DayNumber)
	}
}

func TestOutOfRangeIndexes(t *testing.T) {
	l := New(1, domain.Day{Title: "only"})

	assert.False(t, l.RemoveAt(-1))
	assert.False(t, l.RemoveAt(5))
	assert.False(t, l.UpdateAt(3, domain.Day{}))
	_, ok := l.At(2)
	assert.False(t, ok)
}
