package booking

import "fmt"

// ValidationError reports a user-correctable problem with booking inputs:
// missing location, missing or inverted dates, a zero-day range, or an
// unbookable vehicle. No draft is produced.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid booking %s: %s", e.Field, e.Reason)
}

// ConflictError reports that the candidate range overlaps an existing
// blocking reservation. The conflicting interval is carried for user-facing
// messaging.
type ConflictError struct {
	Conflict Interval
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("dates overlap an existing booking (%s to %s)",
		FormatDate(e.Conflict.Start), FormatDate(e.Conflict.End))
}

// ConfigurationError reports malformed promotion data, such as two tiers
// sharing a minimum rental-day count. It is raised at the admin data-entry
// boundary; the evaluator assumes well-formed tiers.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "invalid promotion configuration: " + e.Reason
}
