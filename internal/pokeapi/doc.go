package pokeapi

// Package pokeapi implements the HTTP client for the public PokéAPI. It maps
// the API's loosely optional JSON into model.Record once, at decode time, and
// classifies failures into the coded errors the status line understands.
