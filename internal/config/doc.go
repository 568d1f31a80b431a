package config

// Package config holds the viewer's configuration: an optional YAML file for
// API access (base URL, timeout, user agent) and Fyne preferences for state
// remembered between sessions.
