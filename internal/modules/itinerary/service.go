package itinerary

import (
	"context"

	"tripdesk/internal/collection"
	"tripdesk/internal/domain"
)

const (
	minDays   = 1
	minHotels = 1
)

type submissionCreator interface {
	Create(ctx context.Context, sess domain.Session, kind domain.SubmissionKind, payload any) (*domain.Submission, error)
}

// Service mediates every edit to the in-progress itinerary draft. Structural
// changes to the numbered collections go through the collection engine so
// ordinals stay dense; scalar patches never touch ordinals.
type Service struct {
	drafts      *DraftStore
	submissions submissionCreator
}

func NewService(drafts *DraftStore, submissions submissionCreator) *Service {
	return &Service{drafts: drafts, submissions: submissions}
}

func (s *Service) Draft(sess domain.Session) *domain.ItineraryDraft {
	return s.drafts.GetOrCreate(sess.UserID)
}

func (s *Service) UpdateScalars(sess domain.Session, req UpdateScalarsRequest) *domain.ItineraryDraft {
	d := s.drafts.GetOrCreate(sess.UserID)

	setIf(&d.GuestName, req.GuestName)
	setIf(&d.Destination, req.Destination)
	setIf(&d.StartDate, req.StartDate)
	setIf(&d.Duration, req.Duration)
	setIf(&d.TripID, req.TripID)
	setIf(&d.QuotePrice, req.QuotePrice)
	setIf(&d.PaymentNote, req.PaymentNote)
	setIf(&d.Adults, req.Adults)
	setIf(&d.Children, req.Children)
	setIf(&d.Infants, req.Infants)
	setIf(&d.HotelCategory, req.HotelCategory)
	setIf(&d.MealPlan, req.MealPlan)
	setIf(&d.TransferPlan, req.TransferPlan)
	setIf(&d.Consultant, req.Consultant)
	setIf(&d.CoverHeroImage, req.CoverHeroImage)
	setIf(&d.AcceptedTerms, req.AcceptedTerms)

	return d
}

func (s *Service) AddDay(sess domain.Session, day domain.Day) *domain.ItineraryDraft {
	d := s.drafts.GetOrCreate(sess.UserID)
	list := collection.New(minDays, d.Days...)
	list.Append(day)
	d.Days = list.Items()
	return d
}

func (s *Service) UpdateDay(sess domain.Session, index int, day domain.Day) (*domain.ItineraryDraft, error) {
	d := s.drafts.GetOrCreate(sess.UserID)
	list := collection.New(minDays, d.Days...)
	if !list.UpdateAt(index, day) {
		return nil, ErrIndexOutOfRange
	}
	d.Days = list.Items()
	return d, nil
}

// RemoveDay is a silent no-op at the one-day floor, per the editor contract.
func (s *Service) RemoveDay(sess domain.Session, index int) (*domain.ItineraryDraft, error) {
	d := s.drafts.GetOrCreate(sess.UserID)
	if index < 0 || index >= len(d.Days) {
		return nil, ErrIndexOutOfRange
	}
	list := collection.New(minDays, d.Days...)
	list.RemoveAt(index)
	d.Days = list.Items()
	return d, nil
}

func (s *Service) AddHotel(sess domain.Session, night domain.HotelNight) *domain.ItineraryDraft {
	d := s.drafts.GetOrCreate(sess.UserID)
	list := collection.New(minHotels, d.Hotels...)
	list.Append(night)
	d.Hotels = list.Items()
	return d
}

func (s *Service) UpdateHotel(sess domain.Session, index int, night domain.HotelNight) (*domain.ItineraryDraft, error) {
	d := s.drafts.GetOrCreate(sess.UserID)
	list := collection.New(minHotels, d.Hotels...)
	if !list.UpdateAt(index, night) {
		return nil, ErrIndexOutOfRange
	}
	d.Hotels = list.Items()
	return d, nil
}

func (s *Service) RemoveHotel(sess domain.Session, index int) (*domain.ItineraryDraft, error) {
	d := s.drafts.GetOrCreate(sess.UserID)
	if index < 0 || index >= len(d.Hotels) {
		return nil, ErrIndexOutOfRange
	}
	list := collection.New(minHotels, d.Hotels...)
	list.RemoveAt(index)
	d.Hotels = list.Items()
	return d, nil
}

func (s *Service) AddTransport(sess domain.Session, entry domain.TransportEntry) *domain.ItineraryDraft {
	d := s.drafts.GetOrCreate(sess.UserID)
	list := collection.New(0, d.Transportation...)
	list.Append(entry)
	d.Transportation = list.Items()
	return d
}

func (s *Service) UpdateTransport(sess domain.Session, index int, entry domain.TransportEntry) (*domain.ItineraryDraft, error) {
	d := s.drafts.GetOrCreate(sess.UserID)
	list := collection.New(0, d.Transportation...)
	if !list.UpdateAt(index, entry) {
		return nil, ErrIndexOutOfRange
	}
	d.Transportation = list.Items()
	return d, nil
}

func (s *Service) RemoveTransport(sess domain.Session, index int) (*domain.ItineraryDraft, error) {
	d := s.drafts.GetOrCreate(sess.UserID)
	list := collection.New(0, d.Transportation...)
	if !list.RemoveAt(index) {
		return nil, ErrIndexOutOfRange
	}
	d.Transportation = list.Items()
	return d, nil
}

func (s *Service) AddActivity(sess domain.Session, row domain.ActivityRow) *domain.ItineraryDraft {
	d := s.drafts.GetOrCreate(sess.UserID)
	list := collection.New(0, d.Activities...)
	list.Append(row)
	d.Activities = list.Items()
	return d
}

func (s *Service) UpdateActivity(sess domain.Session, index int, row domain.ActivityRow) (*domain.ItineraryDraft, error) {
	d := s.drafts.GetOrCreate(sess.UserID)
	list := collection.New(0, d.Activities...)
	if !list.UpdateAt(index, row) {
		return nil, ErrIndexOutOfRange
	}
	d.Activities = list.Items()
	return d, nil
}

func (s *Service) RemoveActivity(sess domain.Session, index int) (*domain.ItineraryDraft, error) {
	d := s.drafts.GetOrCreate(sess.UserID)
	list := collection.New(0, d.Activities...)
	if !list.RemoveAt(index) {
		return nil, ErrIndexOutOfRange
	}
	d.Activities = list.Items()
	return d, nil
}

func (s *Service) SetInclusions(sess domain.Session, req InclusionSetRequest) *domain.ItineraryDraft {
	d := s.drafts.GetOrCreate(sess.UserID)
	d.Inclusions = domain.InclusionSet{Selected: req.Selected, CustomNote: req.CustomNote}
	d.Inclusions.Normalize()
	return d
}

func (s *Service) SetExclusions(sess domain.Session, req InclusionSetRequest) *domain.ItineraryDraft {
	d := s.drafts.GetOrCreate(sess.UserID)
	d.Exclusions = domain.InclusionSet{Selected: req.Selected, CustomNote: req.CustomNote}
	d.Exclusions.Normalize()
	return d
}

// Submit validates the whole draft as one unit, freezes it into a pending
// submission and resets the authoring session. The draft stays untouched
// when validation fails.
func (s *Service) Submit(ctx context.Context, sess domain.Session) (*domain.Submission, error) {
	d := s.drafts.GetOrCreate(sess.UserID)

	if verr := ValidateDraft(d); verr != nil {
		return nil, verr
	}

	sub, err := s.submissions.Create(ctx, sess, domain.KindItinerary, d.SubmissionPayload())
	if err != nil {
		return nil, err
	}

	s.drafts.Reset(sess.UserID)
	return sub, nil
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
