package main

// Default limits for CLI commands.
const (
	DefaultHistoryListLimit = 20
	MaxInputPreviewLen      = 48
)
