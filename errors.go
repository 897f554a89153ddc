package mueddi

import "errors"

// Sentinel errors for the "invalid configuration" class of spec.md §7.
// Callers branch on these with errors.Is; they are never wrapped with
// formatted context at the definition site, matching the sentinel-plus-%w
// convention used throughout the pack's builder packages.
var (
	// ErrToleranceOutOfRange means n was negative or greater than MaxTolerance.
	ErrToleranceOutOfRange = errors.New("mueddi: tolerance out of range")

	// ErrQueryTooLong means the query has more than MaxQueryLen code points.
	ErrQueryTooLong = errors.New("mueddi: query exceeds maximum length")
)
