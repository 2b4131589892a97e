package softmaxgo

import "errors"

// ErrInvalidArgument is wrapped by every error caused by a bad argument,
// e.g. an empty input vector or a negative sample count.
var ErrInvalidArgument = errors.New("invalid argument")
