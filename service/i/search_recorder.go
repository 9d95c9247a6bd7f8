package i

import "time"

// SearchRecorder collects statistics about finished searches.
type SearchRecorder interface {
	// ObserveSearch records one search run. Outcome is one of the
	// domain.Outcome* values: "found", "exhausted", "step_limit" or "failed".
	ObserveSearch(policy, outcome string, steps, visited int, duration time.Duration)
}
