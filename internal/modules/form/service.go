package form

import (
	"context"
	"fmt"
	"strings"

	"tripdesk/internal/collection"
	"tripdesk/internal/domain"
	"tripdesk/internal/modules/schema"
)

type schemaLoader interface {
	Load() (*domain.SchemaDocument, error)
}

type submissionCreator interface {
	Create(ctx context.Context, sess domain.Session, kind domain.SubmissionKind, payload any) (*domain.Submission, error)
}

// Service handles the legacy schema-driven booking flow: a raw field map
// checked against the loaded descriptors, plus the simpler day plan and
// hotel rate card.
type Service struct {
	schemas     schemaLoader
	submissions submissionCreator
}

func NewService(schemas schemaLoader, submissions submissionCreator) *Service {
	return &Service{schemas: schemas, submissions: submissions}
}

// Submit validates the booking as one unit and freezes it into a pending
// submission. Field findings are checked first, then the draft rules in
// fixed order; the first failure is the only one reported.
func (s *Service) Submit(ctx context.Context, sess domain.Session, booking *domain.BookingForm) (*domain.Submission, error) {
	doc, err := s.schemas.Load()
	if err != nil {
		return nil, err
	}

	if findings := schema.CheckFields(doc.Fields, booking.Fields); len(findings) > 0 {
		return nil, &ValidationError{Message: findings[0].Message, Field: findings[0].Field}
	}

	// client-supplied ordinals are untrusted; re-derive them from order
	booking.Days = collection.New(0, booking.Days...).Items()

	if verr := validateBooking(booking); verr != nil {
		return nil, verr
	}

	booking.Inclusions.Normalize()
	booking.Exclusions.Normalize()

	return s.submissions.Create(ctx, sess, domain.KindBooking, booking)
}

func validateBooking(b *domain.BookingForm) *ValidationError {
	if len(b.Days) == 0 {
		return &ValidationError{Message: "Add at least one day to the plan"}
	}
	for _, day := range b.Days {
		if blank(day.Title) || blank(day.Description) {
			return &ValidationError{
				Message: fmt.Sprintf("Day %d: title and description are required", day.DayNumber),
			}
		}
	}

	if len(b.HotelOptions) == 0 {
		return &ValidationError{Message: "Add at least one hotel option"}
	}
	for i, opt := range b.HotelOptions {
		if blank(opt.Name) || opt.PackageCostPerPerson <= 0 {
			return &ValidationError{
				Message: fmt.Sprintf("Hotel option %d: name and a positive package cost are required", i+1),
			}
		}
	}

	if len(b.Inclusions.Selected) == 0 {
		return &ValidationError{Message: "Please select at least one inclusion"}
	}
	if !b.AcceptedTerms {
		return &ValidationError{Message: "Please accept the terms and conditions"}
	}
	return nil
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
