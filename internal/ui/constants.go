package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconClose    = "×"
)

// Text fragments
const (
	DashPlaceholder  = "—"
	QueryPlaceholder = "Name or ID (e.g. pikachu, 25)"
	GoButtonText     = "Go"
	RandomButtonText = "Random"
)

// Export file names
const (
	DefaultPNGName = "pokeapi-pokedex.png"
	DefaultPDFName = "pokeapi-pokedex.pdf"
)

// Toast notification sizing and behavior
const (
	ToastWidth    float32 = 300
	ToastHeight   float32 = 110
	ToastMargin   float32 = 20
	ToastAutoHide         = 4 * time.Second
)
