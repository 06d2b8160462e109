package submission

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"tripdesk/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service owns the submission lifecycle: creation of the frozen snapshot and
// the pending -> approved|rejected state machine. Only the admin gateway may
// call the deciding operations; authors get read access to their own rows.
type Service struct {
	repo SubmissionRepositoryInterface
}

func NewService(repo SubmissionRepositoryInterface) *Service {
	return &Service{repo: repo}
}

// Create freezes an already-validated payload into a pending submission.
func (s *Service) Create(ctx context.Context, sess domain.Session, kind domain.SubmissionKind, payload any) (*domain.Submission, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	sub := &domain.Submission{
		ID:        uuid.NewString(),
		OwnerID:   sess.UserID,
		Kind:      kind,
		Data:      data,
		Status:    domain.SubmissionPending,
		CreatedAt: time.Now(),
	}

	if err := s.repo.Create(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

func (s *Service) ListMine(ctx context.Context, sess domain.Session) ([]*domain.Submission, error) {
	return s.repo.ListByOwner(ctx, sess.UserID)
}

// Get returns one submission. Owners see their own rows; admins see all.
func (s *Service) Get(ctx context.Context, sess domain.Session, id string) (*domain.Submission, error) {
	sub, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if sub.OwnerID != sess.UserID && !sess.IsAdmin() {
		return nil, ErrForbidden
	}
	return sub, nil
}

// List returns submissions across all owners, newest first. An empty status
// means no filter.
func (s *Service) List(ctx context.Context, status domain.SubmissionStatus) ([]*domain.Submission, error) {
	return s.repo.ListByStatus(ctx, status)
}

// Approve moves a pending submission to approved. The conditional update in
// the repository guarantees at most one decision ever lands; a losing racer
// gets ErrInvalidTransition, never a silent overwrite.
func (s *Service) Approve(ctx context.Context, id string) (*domain.Submission, error) {
	return s.decide(ctx, id, domain.SubmissionApproved, "")
}

// Reject moves a pending submission to rejected with a mandatory reason.
func (s *Service) Reject(ctx context.Context, id string, message string) (*domain.Submission, error) {
	if strings.TrimSpace(message) == "" {
		return nil, ErrEmptyMessage
	}
	return s.decide(ctx, id, domain.SubmissionRejected, strings.TrimSpace(message))
}

func (s *Service) decide(ctx context.Context, id string, status domain.SubmissionStatus, adminMessage string) (*domain.Submission, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	won, err := s.repo.Decide(ctx, id, status, adminMessage, time.Now())
	if err != nil {
		return nil, err
	}
	if !won {
		return nil, ErrInvalidTransition
	}

	return s.repo.GetByID(ctx, id)
}

// AttachDocument records the rendered document location after an approval.
func (s *Service) AttachDocument(ctx context.Context, id string, url string) error {
	return s.repo.SetDocumentURL(ctx, id, url)
}
