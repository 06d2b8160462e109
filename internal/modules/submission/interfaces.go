package submission

import (
	"context"
	"time"

	"tripdesk/internal/domain"
)

type SubmissionRepositoryInterface interface {
	Create(ctx context.Context, s *domain.Submission) error
	GetByID(ctx context.Context, id string) (*domain.Submission, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Submission, error)
	ListByStatus(ctx context.Context, status domain.SubmissionStatus) ([]*domain.Submission, error)
	Decide(ctx context.Context, id string, status domain.SubmissionStatus, adminMessage string, decidedAt time.Time) (bool, error)
	SetDocumentURL(ctx context.Context, id string, url string) error
}
