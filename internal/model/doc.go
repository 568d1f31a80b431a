package model

// Package model defines domain data structures used across the app: the
// decoded creature record and the query state snapshot. Snapshots are
// immutable once published so readers never see a half-updated query.
