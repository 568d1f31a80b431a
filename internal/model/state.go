package model

import (
	"fmt"
	"image"
)

// QueryState is an immutable snapshot of the controller's current query.
// A new snapshot replaces the previous one wholesale; fields are never
// mutated after publication.
type QueryState struct {
	Generation uint64
	RequestID  string
	Query      string
	Phase      QueryPhase
	Record     *Record
	Image      image.Image // nil when no sprite is available
	Err        string
}

// IdleState returns the snapshot a controller starts with
func IdleState() *QueryState {
	return &QueryState{Phase: QueryPhaseIdle}
}

// LoadingState returns a fresh Loading snapshot with no payload
func LoadingState(generation uint64, requestID, query string) *QueryState {
	return &QueryState{
		Generation: generation,
		RequestID:  requestID,
		Query:      query,
		Phase:      QueryPhaseLoading,
	}
}

// Loaded derives the Loaded snapshot for the same query
func (s *QueryState) Loaded(record *Record, img image.Image) *QueryState {
	return &QueryState{
		Generation: s.Generation,
		RequestID:  s.RequestID,
		Query:      s.Query,
		Phase:      QueryPhaseLoaded,
		Record:     record,
		Image:      img,
	}
}

// Failed derives the Failed snapshot for the same query
func (s *QueryState) Failed(message string) *QueryState {
	return &QueryState{
		Generation: s.Generation,
		RequestID:  s.RequestID,
		Query:      s.Query,
		Phase:      QueryPhaseFailed,
		Err:        message,
	}
}

// HasImage reports whether a decoded sprite is attached
func (s *QueryState) HasImage() bool {
	return s.Image != nil
}

// StatusMessage returns the status line text for this snapshot
func (s *QueryState) StatusMessage() string {
	switch s.Phase {
	case QueryPhaseLoading:
		return fmt.Sprintf("Fetching %q…", s.Query)
	case QueryPhaseLoaded:
		if s.Record == nil {
			return "Loaded"
		}
		return fmt.Sprintf("Loaded: #%d %s", s.Record.ID, s.Record.DisplayName())
	case QueryPhaseFailed:
		return "Error: " + s.Err
	default:
		return ""
	}
}
