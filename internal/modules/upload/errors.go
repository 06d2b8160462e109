package upload

import "errors"

var (
	ErrNotAnImage = errors.New("not an image payload")
	ErrTooLarge   = errors.New("image exceeds size limit")
	ErrBadPayload = errors.New("malformed base64 payload")
)
