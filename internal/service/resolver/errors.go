package resolver

import "errors"

// ErrInvalidArgument is returned for an empty or blank query
var ErrInvalidArgument = errors.New("invalid argument")
