package model

import "errors"

// Domain errors for model construction and parameter validation.
var (
	// ErrUnknownKind indicates a model kind outside the supported set.
	ErrUnknownKind = errors.New("model: unknown model kind")

	// ErrMissingParam indicates a parameter the kind requires is absent.
	ErrMissingParam = errors.New("model: missing required parameter")

	// ErrParamBounds indicates a parameter value outside its valid range
	// (non-positive carrying capacity or step size).
	ErrParamBounds = errors.New("model: parameter out of valid bounds")
)
