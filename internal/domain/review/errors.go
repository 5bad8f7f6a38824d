package review

import "errors"

var (
	ErrIDMismatch = errors.New("route id does not match body id")
	ErrNoFile     = errors.New("file is required")
)
