package admin

import "errors"

var ErrBadFilter = errors.New("unknown status filter")
