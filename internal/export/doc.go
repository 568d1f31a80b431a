package export

// Package export writes the rendered card to PNG or PDF.
