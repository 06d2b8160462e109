package submission

import "errors"

var (
	ErrNotFound          = errors.New("submission not found")
	ErrForbidden         = errors.New("not the submission owner")
	ErrInvalidTransition = errors.New("submission already decided")
	ErrEmptyMessage      = errors.New("rejection message is required")
	ErrDocumentNotReady  = errors.New("document not generated yet")
)
