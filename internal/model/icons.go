package model

// Status markers for the interactive results table
// Using simple single-width characters for consistent terminal rendering
const (
	IconOK     = "✓"
	IconFailed = "✗"
	IconTotal  = "Σ"
)
