package sdk

import "errors"

var (
	// ErrHostCall indicates that a waPC host invocation failed.
	ErrHostCall = errors.New("host call failed")

	// ErrHostResponseInvalid signals that the host reply carries no usable success indicator.
	ErrHostResponseInvalid = errors.New("host reply has no usable success indicator")

	// ErrHostError means the host answered but did not acknowledge the call.
	ErrHostError = errors.New("host did not acknowledge the call")
)
