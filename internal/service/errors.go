package service

import "errors"

// Error kinds surfaced to students. Both are recoverable by retry; neither
// consumes the submitted file.
var (
	ErrInvalidAccessCode = errors.New("access code is missing, mismatched, or expired")
	ErrProcessingFailure = errors.New("exam analysis processing failed")
)
