package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// Request decode messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgInvalidLimit = "Invalid limit parameter"

	// Path parameter error messages
	ErrMsgMissingPlayerID = "Missing player ID"
)
