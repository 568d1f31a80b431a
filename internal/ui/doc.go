package ui

// Package ui contains the Fyne-based desktop viewer. It wires the query entry,
// Go and Random buttons to the fetch controller, draws the record card from
// each published snapshot, and exports the card as PNG or PDF.
