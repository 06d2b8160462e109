package schema

import "errors"

var (
	ErrSchemaUnavailable = errors.New("schema unavailable")
	ErrUnknownFieldKind  = errors.New("unknown field kind")
)
