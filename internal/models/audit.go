package models

import "time"

// Operation is one executed command recorded in the audit database.
type Operation struct {
	ID        string
	Timestamp time.Time
	Command   string
	Argument  string
	Rows      int
	Duration  time.Duration
	Error     string
}

// ExportRecord is one file export recorded in the audit database.
type ExportRecord struct {
	ID        string
	Timestamp time.Time
	Path      string
	Kind      string // "call_log", "enriched", "profiles"
	Entries   int
}
