package domain

import (
	"encoding/json"
	"time"
)

type SubmissionStatus string

const (
	SubmissionPending  SubmissionStatus = "pending"
	SubmissionApproved SubmissionStatus = "approved"
	SubmissionRejected SubmissionStatus = "rejected"
)

// Terminal reports whether no further workflow transition is permitted.
func (s SubmissionStatus) Terminal() bool {
	return s == SubmissionApproved || s == SubmissionRejected
}

type SubmissionKind string

const (
	KindBooking   SubmissionKind = "booking"
	KindItinerary SubmissionKind = "itinerary"
)

// Submission is the immutable snapshot of a draft once sent for review,
// plus the workflow metadata the admin decision writes. Data holds the
// frozen payload of whichever variant Kind names; it is never rewritten
// after creation. AdminMessage is set only on rejection, DocumentURL only
// after an approval's brochure has been rendered.
type Submission struct {
	ID           string           `json:"id"`
	OwnerID      int64            `json:"ownerId"`
	Kind         SubmissionKind   `json:"kind"`
	Data         json.RawMessage  `json:"data"`
	Status       SubmissionStatus `json:"status"`
	AdminMessage string           `json:"adminMessage,omitempty"`
	DocumentURL  string           `json:"documentUrl,omitempty"`
	CreatedAt    time.Time        `json:"createdAt"`
	DecidedAt    *time.Time       `json:"decidedAt,omitempty"`
}

// Itinerary decodes the payload of an itinerary-kind submission.
func (s *Submission) Itinerary() (*ItineraryDraft, error) {
	var d ItineraryDraft
	if err := json.Unmarshal(s.Data, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// Booking decodes the payload of a booking-kind submission.
func (s *Submission) Booking() (*BookingForm, error) {
	var b BookingForm
	if err := json.Unmarshal(s.Data, &b); err != nil {
		return nil, err
	}
	return &b, nil
}
