package domain

// SourceStatus records how a source settled during the last load.
// Timeout and error are distinct: a timeout is reported as incomplete
// data, an error carries a message and a retry affordance.
type SourceStatus struct {
	Source   Source `json:"source"`
	TimedOut bool   `json:"timedOut"`
	Err      string `json:"error,omitempty"`
	Count    int    `json:"count"`
}

// Degraded reports whether the source produced nothing and a reload
// should be offered.
func (s SourceStatus) Degraded() bool {
	return s.Count == 0 && (s.TimedOut || s.Err != "")
}
