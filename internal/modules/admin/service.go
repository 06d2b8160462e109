package admin

import (
	"context"
	"log"

	"tripdesk/internal/domain"
	"tripdesk/internal/modules/document"
)

// Service is the review gateway: list with a status filter, approve,
// reject-with-reason. Approval kicks off brochure rendering in the
// background; until it lands the submission reads as approved with no
// document URL.
type Service struct {
	workflow  Workflow
	generator document.Generator
}

func NewService(workflow Workflow, generator document.Generator) *Service {
	return &Service{workflow: workflow, generator: generator}
}

// List returns submissions across all owners, newest first. filter is one
// of all|pending|approved|rejected; "all" and "" mean no filter.
func (s *Service) List(ctx context.Context, filter string) ([]*domain.Submission, error) {
	switch filter {
	case "", "all":
		return s.workflow.List(ctx, "")
	case string(domain.SubmissionPending), string(domain.SubmissionApproved), string(domain.SubmissionRejected):
		return s.workflow.List(ctx, domain.SubmissionStatus(filter))
	default:
		return nil, ErrBadFilter
	}
}

func (s *Service) Approve(ctx context.Context, id string) (*domain.Submission, error) {
	sub, err := s.workflow.Approve(ctx, id)
	if err != nil {
		return nil, err
	}

	go s.renderDocument(sub)
	return sub, nil
}

func (s *Service) Reject(ctx context.Context, id string, message string) (*domain.Submission, error) {
	return s.workflow.Reject(ctx, id, message)
}

// renderDocument runs detached from the approving request; a rendering
// failure leaves the submission approved with no URL, which clients must
// treat as "document pending".
func (s *Service) renderDocument(sub *domain.Submission) {
	url, err := s.generator.Generate(sub)
	if err != nil {
		log.Printf("document generation failed submission=%s err=%v", sub.ID, err)
		return
	}
	if err := s.workflow.AttachDocument(context.Background(), sub.ID, url); err != nil {
		log.Printf("document url attach failed submission=%s err=%v", sub.ID, err)
	}
}
