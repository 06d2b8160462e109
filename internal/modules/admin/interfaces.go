package admin

import (
	"context"

	"tripdesk/internal/domain"
)

// Workflow is the mutating surface of the submission state machine. This
// module is its only caller; authoring sessions only ever read.
type Workflow interface {
	List(ctx context.Context, status domain.SubmissionStatus) ([]*domain.Submission, error)
	Approve(ctx context.Context, id string) (*domain.Submission, error)
	Reject(ctx context.Context, id string, message string) (*domain.Submission, error)
	AttachDocument(ctx context.Context, id string, url string) error
}
