package model

// QueryPhase represents the lifecycle phase of the current query
type QueryPhase string

const (
	// QueryPhaseIdle means no query has been submitted yet
	QueryPhaseIdle QueryPhase = "Idle"

	// QueryPhaseLoading means a query is in flight
	QueryPhaseLoading QueryPhase = "Loading"

	// QueryPhaseLoaded means the record was fetched (the image may still be absent)
	QueryPhaseLoaded QueryPhase = "Loaded"

	// QueryPhaseFailed means the query failed with a user-visible message
	QueryPhaseFailed QueryPhase = "Failed"
)

// String returns the string representation of QueryPhase
func (qp QueryPhase) String() string {
	return string(qp)
}

// IsActive returns true while a request is in flight
func (qp QueryPhase) IsActive() bool {
	return qp == QueryPhaseLoading
}

// IsFinished returns true if the query reached a terminal phase (loaded or failed)
func (qp QueryPhase) IsFinished() bool {
	return qp == QueryPhaseLoaded || qp == QueryPhaseFailed
}
