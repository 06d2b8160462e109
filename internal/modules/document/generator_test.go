package document

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"tripdesk/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestGenerate_ItineraryWritesPDF(t *testing.T) {
	dir := t.TempDir()
	gen := NewPDFGenerator(dir, "http://localhost:8080")

	draft := &domain.ItineraryDraft{
		GuestName:   "Priya",
		Destination: "Andaman",
		StartDate:   "2026-09-01",
		Duration:    4,
		Adults:      2,
		Days: []domain.Day{
			{DayNumber: 1, Date: "2026-09-01", Title: "Arrival", Description: "Pickup at airport"},
		},
		Hotels: []domain.HotelNight{
			{NightNumber: 1, Location: "Port Blair", Name: "Sea Shell", StarRating: domain.ThreeStar,
				CheckInDate: "2026-09-01", RoomType: "Deluxe", NumberOfRooms: 1,
				PaxDistribution: "2 adults", MealPlan: domain.MealBreakfast},
		},
		Inclusions: domain.InclusionSet{Selected: []string{"Breakfast"}},
	}
	data, _ := json.Marshal(draft)

	url, err := gen.Generate(&domain.Submission{ID: "abc", Kind: domain.KindItinerary, Data: data})

	assert.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/static/docs/abc.pdf", url)

	info, statErr := os.Stat(filepath.Join(dir, "abc.pdf"))
	assert.NoError(t, statErr)
	assert.Greater(t, info.Size(), int64(0))
}

func TestGenerate_BookingWritesPDF(t *testing.T) {
	dir := t.TempDir()
	gen := NewPDFGenerator(dir, "http://localhost:8080")

	booking := &domain.BookingForm{
		Fields: map[string]any{"guestName": "Priya"},
		Days:   []domain.Day{{DayNumber: 1, Title: "Arrival", Description: "Pickup"}},
		HotelOptions: []domain.HotelOption{
			{Name: "Sea Shell", Category: domain.ThreeStar, PackageCostPerPerson: 12500},
		},
		Inclusions: domain.InclusionSet{Selected: []string{"Breakfast"}},
	}
	data, _ := json.Marshal(booking)

	url, err := gen.Generate(&domain.Submission{ID: "def", Kind: domain.KindBooking, Data: data})

	assert.NoError(t, err)
	assert.Contains(t, url, "def.pdf")
}

func TestGenerate_UnknownKindFails(t *testing.T) {
	gen := NewPDFGenerator(t.TempDir(), "http://localhost:8080")

	_, err := gen.Generate(&domain.Submission{ID: "x", Kind: "mystery", Data: []byte("{}")})

	assert.Error(t, err)
}
