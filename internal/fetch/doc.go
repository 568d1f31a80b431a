package fetch

// Package fetch owns the query lifecycle. A Controller turns raw user input
// into one API request plus an optional sprite download, and publishes each
// phase as an immutable model.QueryState snapshot. Completions from queries
// that have since been superseded are dropped by generation number.
