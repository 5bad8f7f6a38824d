package instruction

import "errors"

var ErrIDMismatch = errors.New("route id does not match body id")
