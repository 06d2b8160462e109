package submission

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"tripdesk/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type mockSubmissionRepo struct {
	mock.Mock
}

func (m *mockSubmissionRepo) Create(ctx context.Context, s *domain.Submission) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *mockSubmissionRepo) GetByID(ctx context.Context, id string) (*domain.Submission, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Submission), args.Error(1)
}

func (m *mockSubmissionRepo) ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Submission, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Submission), args.Error(1)
}

func (m *mockSubmissionRepo) ListByStatus(ctx context.Context, status domain.SubmissionStatus) ([]*domain.Submission, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Submission), args.Error(1)
}

func (m *mockSubmissionRepo) Decide(ctx context.Context, id string, status domain.SubmissionStatus, adminMessage string, decidedAt time.Time) (bool, error) {
	args := m.Called(ctx, id, status, adminMessage, decidedAt)
	return args.Bool(0), args.Error(1)
}

func (m *mockSubmissionRepo) SetDocumentURL(ctx context.Context, id string, url string) error {
	args := m.Called(ctx, id, url)
	return args.Error(0)
}

var agentSession = domain.Session{UserID: 42, Role: domain.RoleAgent}

func TestCreate_FreezesPayloadAsPending(t *testing.T) {
	repo := new(mockSubmissionRepo)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(repo)

	draft := &domain.ItineraryDraft{
		GuestName:   "Priya",
		Destination: "Andaman",
		Days:        []domain.Day{{DayNumber: 1, Title: "Arrival", Description: "Pickup"}},
	}

	sub, err := service.Create(context.Background(), agentSession, domain.KindItinerary, draft.SubmissionPayload())

	assert.NoError(t, err)
	assert.NotEmpty(t, sub.ID)
	assert.Equal(t, int64(42), sub.OwnerID)
	assert.Equal(t, domain.SubmissionPending, sub.Status)

	var roundTrip domain.ItineraryDraft
	assert.NoError(t, json.Unmarshal(sub.Data, &roundTrip))
	assert.Equal(t, "Andaman", roundTrip.Destination)
	assert.Equal(t, 1, roundTrip.Days[0].DayNumber)
}

func TestGet_OwnerScoping(t *testing.T) {
	repo := new(mockSubmissionRepo)
	repo.On("GetByID", mock.Anything, "sub-1").Return(&domain.Submission{ID: "sub-1", OwnerID: 42}, nil)

	service := NewService(repo)

	_, err := service.Get(context.Background(), agentSession, "sub-1")
	assert.NoError(t, err)

	_, err = service.Get(context.Background(), domain.Session{UserID: 99, Role: domain.RoleAgent}, "sub-1")
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = service.Get(context.Background(), domain.Session{UserID: 1, Role: domain.RoleAdmin}, "sub-1")
	assert.NoError(t, err)
}

func TestGet_NotFound(t *testing.T) {
	repo := new(mockSubmissionRepo)
	repo.On("GetByID", mock.Anything, "ghost").Return(nil, gorm.ErrRecordNotFound)

	service := NewService(repo)

	_, err := service.Get(context.Background(), agentSession, "ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestApprove_PendingWins(t *testing.T) {
	repo := new(mockSubmissionRepo)
	repo.On("GetByID", mock.Anything, "sub-1").Return(&domain.Submission{ID: "sub-1", Status: domain.SubmissionPending}, nil).Once()
	repo.On("Decide", mock.Anything, "sub-1", domain.SubmissionApproved, "", mock.Anything).Return(true, nil)
	now := time.Now()
	repo.On("GetByID", mock.Anything, "sub-1").Return(&domain.Submission{
		ID: "sub-1", Status: domain.SubmissionApproved, DecidedAt: &now,
	}, nil)

	service := NewService(repo)

	sub, err := service.Approve(context.Background(), "sub-1")

	assert.NoError(t, err)
	assert.Equal(t, domain.SubmissionApproved, sub.Status)
	assert.NotNil(t, sub.DecidedAt)
}

func TestApprove_AlreadyRejectedKeepsMessage(t *testing.T) {
	decided := time.Now()
	rejected := &domain.Submission{
		ID:           "sub-2",
		Status:       domain.SubmissionRejected,
		AdminMessage: "Missing hotel confirmations",
		DecidedAt:    &decided,
	}

	repo := new(mockSubmissionRepo)
	repo.On("GetByID", mock.Anything, "sub-2").Return(rejected, nil)
	repo.On("Decide", mock.Anything, "sub-2", domain.SubmissionApproved, "", mock.Anything).Return(false, nil)

	service := NewService(repo)

	_, err := service.Approve(context.Background(), "sub-2")

	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, "Missing hotel confirmations", rejected.AdminMessage)
	assert.Equal(t, domain.SubmissionRejected, rejected.Status)
}

func TestReject_RequiresMessage(t *testing.T) {
	repo := new(mockSubmissionRepo)
	service := NewService(repo)

	_, err := service.Reject(context.Background(), "sub-1", "   ")

	assert.ErrorIs(t, err, ErrEmptyMessage)
	repo.AssertNotCalled(t, "Decide")
}

func TestReject_StoresTrimmedMessage(t *testing.T) {
	repo := new(mockSubmissionRepo)
	repo.On("GetByID", mock.Anything, "sub-1").Return(&domain.Submission{ID: "sub-1", Status: domain.SubmissionPending}, nil).Once()
	repo.On("Decide", mock.Anything, "sub-1", domain.SubmissionRejected, "Dates do not line up", mock.Anything).Return(true, nil)
	repo.On("GetByID", mock.Anything, "sub-1").Return(&domain.Submission{
		ID: "sub-1", Status: domain.SubmissionRejected, AdminMessage: "Dates do not line up",
	}, nil)

	service := NewService(repo)

	sub, err := service.Reject(context.Background(), "sub-1", "  Dates do not line up  ")

	assert.NoError(t, err)
	assert.Equal(t, "Dates do not line up", sub.AdminMessage)
	repo.AssertExpectations(t)
}

func TestDecide_LosingRacerGetsInvalidTransition(t *testing.T) {
	repo := new(mockSubmissionRepo)
	repo.On("GetByID", mock.Anything, "sub-3").Return(&domain.Submission{ID: "sub-3", Status: domain.SubmissionPending}, nil)
	repo.On("Decide", mock.Anything, "sub-3", domain.SubmissionRejected, "too slow", mock.Anything).Return(false, nil)

	service := NewService(repo)

	_, err := service.Reject(context.Background(), "sub-3", "too slow")

	assert.ErrorIs(t, err, ErrInvalidTransition)
}
