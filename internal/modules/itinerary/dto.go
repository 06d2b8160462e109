package itinerary

import "tripdesk/internal/domain"

// UpdateScalarsRequest patches the draft's scalar trip fields. Pointer
// fields distinguish "leave unchanged" from "set to zero value".
type UpdateScalarsRequest struct {
	GuestName      *string                   `json:"guestName,omitempty"`
	Destination    *string                   `json:"destination,omitempty"`
	StartDate      *string                   `json:"startDate,omitempty"`
	Duration       *int                      `json:"duration,omitempty"`
	TripID         *string                   `json:"tripId,omitempty"`
	QuotePrice     *float64                  `json:"quotePrice,omitempty"`
	PaymentNote    *string                   `json:"paymentNote,omitempty"`
	Adults         *int                      `json:"adults,omitempty"`
	Children       *int                      `json:"children,omitempty"`
	Infants        *int                      `json:"infants,omitempty"`
	HotelCategory  *domain.StarRating        `json:"hotelCategory,omitempty"`
	MealPlan       *domain.MealPlan          `json:"mealPlan,omitempty"`
	TransferPlan   *domain.TransferPlan      `json:"transferPlan,omitempty"`
	Consultant     *domain.ConsultantContact `json:"consultant,omitempty"`
	CoverHeroImage *string                   `json:"coverHeroImageUrl,omitempty"`
	AcceptedTerms  *bool                     `json:"acceptedTerms,omitempty"`
}

type InclusionSetRequest struct {
	Selected   []string `json:"selected"`
	CustomNote string   `json:"customNote"`
}
