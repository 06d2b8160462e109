package itinerary

import (
	"fmt"
	"strings"

	"tripdesk/internal/domain"
)

// ValidateDraft runs the blocking draft rules in fixed order. The first
// failing rule produces the one message shown to the user; later failures
// are not aggregated.
func ValidateDraft(d *domain.ItineraryDraft) *ValidationError {
	if err := validateDays(d.Days); err != nil {
		return err
	}
	if err := validateHotels(d.Hotels); err != nil {
		return err
	}
	if len(d.Inclusions.Selected) == 0 {
		return &ValidationError{Message: "Please select at least one inclusion"}
	}
	if !d.AcceptedTerms {
		return &ValidationError{Message: "Please accept the terms and conditions"}
	}
	return nil
}

func validateDays(days []domain.Day) *ValidationError {
	if len(days) == 0 {
		return &ValidationError{Message: "Add at least one day to the itinerary"}
	}
	for _, day := range days {
		if blank(day.Title) || blank(day.Description) || blank(day.Date) {
			return &ValidationError{
				Message: fmt.Sprintf("Day %d: date, title and description are required", day.DayNumber),
			}
		}
	}
	return nil
}

func validateHotels(hotels []domain.HotelNight) *ValidationError {
	if len(hotels) == 0 {
		return &ValidationError{Message: "Add at least one hotel night"}
	}
	for _, h := range hotels {
		if blank(h.Location) || blank(h.CheckInDate) || blank(h.RoomType) || blank(h.PaxDistribution) {
			return &ValidationError{
				Message: fmt.Sprintf("Night %d: location, check-in date, room type and pax distribution are required", h.NightNumber),
			}
		}
	}
	return nil
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
