package app

// Package app wires configuration, the API client and the fetch controller
// together for the desktop viewer and the headless export command.
