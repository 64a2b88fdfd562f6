package binder

import "errors"

var (
	ErrFailedToParseSignals = errors.New("failed to parse datastar signals")
	ErrFailedToParsePath    = errors.New("failed to parse path parameters")
	ErrInvalidTarget        = errors.New("bind target must be a non-nil pointer to struct")
)
