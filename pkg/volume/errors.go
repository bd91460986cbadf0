package volume

import "errors"

// ErrInvalidArgument is returned when an operation is given a value it cannot use.
// No state is changed when it is returned.
var ErrInvalidArgument = errors.New("invalid argument")
