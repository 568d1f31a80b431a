package platform

// Package platform contains OS integration for exported cards: export
// directory discovery, collision-free file naming, and reveal in the
// system file manager.
