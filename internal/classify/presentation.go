package classify

import "log/slog"

// Presentation carries the display and telemetry metadata for a category.
// Keeping this in an enum-keyed table avoids string matching at call sites.
type Presentation struct {
	Code  string // stable code for API payloads and telemetry
	Label string // human-readable summary
	Level slog.Level
}

var presentations = map[Category]Presentation{
	Permission: {Code: "PERMISSION_DENIED", Label: "Permission denied by storage backend", Level: slog.LevelWarn},
	Network:    {Code: "NETWORK_ERROR", Label: "Network failure reaching storage backend", Level: slog.LevelWarn},
	Quota:      {Code: "QUOTA_EXCEEDED", Label: "Storage quota exceeded", Level: slog.LevelError},
	Unknown:    {Code: "UNKNOWN_ERROR", Label: "Unclassified storage failure", Level: slog.LevelError},
}

// Presentation returns the display metadata for c. Categories outside the
// known set fall back to the Unknown entry.
func (c Category) Presentation() Presentation {
	if p, ok := presentations[c]; ok {
		return p
	}
	return presentations[Unknown]
}
