package form

import (
	"context"
	"testing"

	"tripdesk/internal/domain"

	"github.com/stretchr/testify/assert"
)

type fakeSchemas struct {
	doc *domain.SchemaDocument
	err error
}

func (f *fakeSchemas) Load() (*domain.SchemaDocument, error) {
	return f.doc, f.err
}

type fakeSubmissions struct {
	created []*domain.Submission
}

func (f *fakeSubmissions) Create(ctx context.Context, sess domain.Session, kind domain.SubmissionKind, payload any) (*domain.Submission, error) {
	sub := &domain.Submission{ID: "sub-1", OwnerID: sess.UserID, Kind: kind, Status: domain.SubmissionPending}
	f.created = append(f.created, sub)
	return sub, nil
}

var sess = domain.Session{UserID: 3, Role: domain.RoleAgent}

func testSchema() *domain.SchemaDocument {
	return &domain.SchemaDocument{
		Fields: []domain.FieldDescriptor{
			{Name: "guestName", Kind: domain.FieldText, Label: "Guest Name", Required: true},
			{Name: "email", Kind: domain.FieldEmail, Label: "Email"},
		},
	}
}

func validBooking() *domain.BookingForm {
	return &domain.BookingForm{
		Fields: map[string]any{"guestName": "Priya", "email": "priya@example.com"},
		Days: []domain.Day{
			{DayNumber: 1, Title: "Arrival", Description: "Pickup at airport"},
		},
		HotelOptions: []domain.HotelOption{
			{Name: "Sea Shell", Category: domain.ThreeStar, PackageCostPerPerson: 12500},
		},
		Inclusions:    domain.InclusionSet{Selected: []string{"Breakfast"}},
		AcceptedTerms: true,
	}
}

func TestSubmit_ValidBookingBecomesPending(t *testing.T) {
	subs := &fakeSubmissions{}
	service := NewService(&fakeSchemas{doc: testSchema()}, subs)

	sub, err := service.Submit(context.Background(), sess, validBooking())

	assert.NoError(t, err)
	assert.Equal(t, domain.KindBooking, sub.Kind)
	assert.Equal(t, domain.SubmissionPending, sub.Status)
	assert.Len(t, subs.created, 1)
}

func TestSubmit_MissingRequiredField(t *testing.T) {
	service := NewService(&fakeSchemas{doc: testSchema()}, &fakeSubmissions{})

	booking := validBooking()
	delete(booking.Fields, "guestName")

	_, err := service.Submit(context.Background(), sess, booking)

	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Equal(t, "guestName", verr.Field)
}

func TestSubmit_HotelOptionNeedsPositivePrice(t *testing.T) {
	service := NewService(&fakeSchemas{doc: testSchema()}, &fakeSubmissions{})

	booking := validBooking()
	booking.HotelOptions[0].PackageCostPerPerson = 0

	_, err := service.Submit(context.Background(), sess, booking)

	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Message, "Hotel option 1")
}

func TestSubmit_DayRuleWinsOverInclusions(t *testing.T) {
	service := NewService(&fakeSchemas{doc: testSchema()}, &fakeSubmissions{})

	booking := validBooking()
	booking.Days[0].Description = ""
	booking.Inclusions.Selected = nil

	_, err := service.Submit(context.Background(), sess, booking)

	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Message, "Day 1")
}

func TestSubmit_TermsRequired(t *testing.T) {
	service := NewService(&fakeSchemas{doc: testSchema()}, &fakeSubmissions{})

	booking := validBooking()
	booking.AcceptedTerms = false

	_, err := service.Submit(context.Background(), sess, booking)

	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Message, "terms")
}

func TestSubmit_DeduplicatesInclusions(t *testing.T) {
	subs := &fakeSubmissions{}
	service := NewService(&fakeSchemas{doc: testSchema()}, subs)

	booking := validBooking()
	booking.Inclusions.Selected = []string{"Breakfast", "Breakfast", "Ferry Tickets"}

	_, err := service.Submit(context.Background(), sess, booking)

	assert.NoError(t, err)
	assert.Equal(t, []string{"Breakfast", "Ferry Tickets"}, booking.Inclusions.Selected)
}
