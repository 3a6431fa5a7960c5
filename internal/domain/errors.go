package domain

import "errors"

var (
	ErrValidation          = errors.New("validation failed")
	ErrNotFound            = errors.New("not found")
	ErrInvalidToken        = errors.New("invalid registration token")
	ErrAlreadyResponded    = errors.New("feedback already has a response")
	ErrInvalidTransition   = errors.New("request status can no longer change")
	ErrForbidden           = errors.New("elevated role required")
	ErrAlreadyBootstrapped = errors.New("an elevated participant already exists")
	ErrDelivery            = errors.New("notification delivery failed")
)
