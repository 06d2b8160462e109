package admin

import (
	"context"
	"sync"
	"testing"
	"time"

	"tripdesk/internal/domain"
	"tripdesk/internal/modules/submission"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockWorkflow struct {
	mock.Mock
	mu       sync.Mutex
	attached map[string]string
}

func (m *mockWorkflow) List(ctx context.Context, status domain.SubmissionStatus) ([]*domain.Submission, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Submission), args.Error(1)
}

func (m *mockWorkflow) Approve(ctx context.Context, id string) (*domain.Submission, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Submission), args.Error(1)
}

func (m *mockWorkflow) Reject(ctx context.Context, id string, message string) (*domain.Submission, error) {
	args := m.Called(ctx, id, message)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Submission), args.Error(1)
}

func (m *mockWorkflow) AttachDocument(ctx context.Context, id string, url string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.attached == nil {
		m.attached = make(map[string]string)
	}
	m.attached[id] = url
	return nil
}

func (m *mockWorkflow) attachedURL(id string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.attached[id]
}

type stubGenerator struct {
	url string
	err error
}

func (g *stubGenerator) Generate(sub *domain.Submission) (string, error) {
	return g.url, g.err
}

func TestList_FilterMapping(t *testing.T) {
	wf := new(mockWorkflow)
	wf.On("List", mock.Anything, domain.SubmissionStatus("")).Return([]*domain.Submission{}, nil).Twice()
	wf.On("List", mock.Anything, domain.SubmissionPending).Return([]*domain.Submission{}, nil)

	service := NewService(wf, &stubGenerator{})

	_, err := service.List(context.Background(), "all")
	assert.NoError(t, err)
	_, err = service.List(context.Background(), "")
	assert.NoError(t, err)
	_, err = service.List(context.Background(), "pending")
	assert.NoError(t, err)

	wf.AssertExpectations(t)
}

func TestList_RejectsUnknownFilter(t *testing.T) {
	service := NewService(new(mockWorkflow), &stubGenerator{})

	_, err := service.List(context.Background(), "archived")

	assert.ErrorIs(t, err, ErrBadFilter)
}

func TestApprove_TriggersDocumentGeneration(t *testing.T) {
	wf := new(mockWorkflow)
	approved := &domain.Submission{ID: "sub-1", Status: domain.SubmissionApproved}
	wf.On("Approve", mock.Anything, "sub-1").Return(approved, nil)

	service := NewService(wf, &stubGenerator{url: "http://localhost:8080/static/docs/sub-1.pdf"})

	sub, err := service.Approve(context.Background(), "sub-1")

	assert.NoError(t, err)
	assert.Equal(t, domain.SubmissionApproved, sub.Status)
	assert.Eventually(t, func() bool {
		return wf.attachedURL("sub-1") == "http://localhost:8080/static/docs/sub-1.pdf"
	}, time.Second, 10*time.Millisecond)
}

func TestApprove_DecidedSubmissionIsRejected(t *testing.T) {
	wf := new(mockWorkflow)
	wf.On("Approve", mock.Anything, "sub-2").Return(nil, submission.ErrInvalidTransition)

	service := NewService(wf, &stubGenerator{})

	_, err := service.Approve(context.Background(), "sub-2")

	assert.ErrorIs(t, err, submission.ErrInvalidTransition)
	assert.Empty(t, wf.attachedURL("sub-2"))
}

func TestApprove_GenerationFailureLeavesURLEmpty(t *testing.T) {
	wf := new(mockWorkflow)
	approved := &domain.Submission{ID: "sub-3", Status: domain.SubmissionApproved}
	wf.On("Approve", mock.Anything, "sub-3").Return(approved, nil)

	service := NewService(wf, &stubGenerator{err: assert.AnError})

	_, err := service.Approve(context.Background(), "sub-3")

	assert.NoError(t, err)
	time.Sleep(50 * time.Millisecond)
	assert.Empty(t, wf.attachedURL("sub-3"))
}

func TestReject_Delegates(t *testing.T) {
	wf := new(mockWorkflow)
	rejected := &domain.Submission{ID: "sub-4", Status: domain.SubmissionRejected, AdminMessage: "Incomplete hotels"}
	wf.On("Reject", mock.Anything, "sub-4", "Incomplete hotels").Return(rejected, nil)

	service := NewService(wf, &stubGenerator{})

	sub, err := service.Reject(context.Background(), "sub-4", "Incomplete hotels")

	assert.NoError(t, err)
	assert.Equal(t, "Incomplete hotels", sub.AdminMessage)
}
