package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Category errors
	ErrMsgUnknownCategory = "unknown item category"

	// Stock loading errors
	ErrMsgNoStock           = "stock file contains no items"
	ErrMsgInvalidStockEntry = "invalid stock entry"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// ErrUnknownCategory signals a record built outside the closed category
	// set. Stock built from the enumeration can never hit it, so treat it as
	// a programming-contract violation, not a recoverable runtime condition.
	ErrUnknownCategory = errors.New(ErrMsgUnknownCategory)

	// Stock loading errors
	ErrNoStock           = errors.New(ErrMsgNoStock)
	ErrInvalidStockEntry = errors.New(ErrMsgInvalidStockEntry)
)
