// Package calllog implements the call log book: CSV ingestion, JSON export,
// summaries, fuzzy lookup and per-book command history.
package calllog

import (
	"fmt"
	"maps"
	"strconv"
	"strings"
)

// Column names recognized in call log CSV exports. Unrecognized columns are
// preserved in the raw row but have no typed accessor.
const (
	ColCallSID     = "Call Sid"
	ColAccountSID  = "Account Sid"
	ColStartTime   = "Start Time"
	ColEndTime     = "End Time"
	ColDuration    = "Duration"
	ColFrom        = "From"
	ColTo          = "To"
	ColDirection   = "Direction"
	ColStatus      = "Status"
	ColErrorCode   = "Error Code"
	ColDateCreated = "Date Created"
)

// Entry is one call record parsed from a CSV row. It keeps the raw row
// verbatim for lossless export alongside the typed fields derived from it.
type Entry struct {
	row map[string]string

	CallSID     string
	AccountSID  string
	StartTime   string
	EndTime     string
	Duration    int
	From        string
	To          string
	Direction   string
	Status      string
	ErrorCode   string
	DateCreated string
}

// NewEntry builds an Entry from a raw row mapping. Missing columns yield
// empty fields; a malformed Duration degrades to 0 rather than failing.
func NewEntry(row map[string]string) Entry {
	return Entry{
		row:         row,
		CallSID:     row[ColCallSID],
		AccountSID:  row[ColAccountSID],
		StartTime:   row[ColStartTime],
		EndTime:     row[ColEndTime],
		Duration:    intOrZero(row[ColDuration]),
		From:        row[ColFrom],
		To:          row[ColTo],
		Direction:   row[ColDirection],
		Status:      row[ColStatus],
		ErrorCode:   row[ColErrorCode],
		DateCreated: row[ColDateCreated],
	}
}

// Row returns a copy of the original row mapping, unchanged.
func (e Entry) Row() map[string]string {
	return maps.Clone(e.row)
}

// Field returns the typed value for a column name, empty if unrecognized.
func (e Entry) Field(column string) string {
	switch column {
	case ColCallSID:
		return e.CallSID
	case ColAccountSID:
		return e.AccountSID
	case ColStartTime:
		return e.StartTime
	case ColEndTime:
		return e.EndTime
	case ColDuration:
		return strconv.Itoa(e.Duration)
	case ColFrom:
		return e.From
	case ColTo:
		return e.To
	case ColDirection:
		return e.Direction
	case ColStatus:
		return e.Status
	case ColErrorCode:
		return e.ErrorCode
	case ColDateCreated:
		return e.DateCreated
	default:
		return ""
	}
}

// String renders a one-line summary, tolerating empty fields.
func (e Entry) String() string {
	return fmt.Sprintf("Call %s from %s to %s (%s)", e.CallSID, e.From, e.To, e.Status)
}

// intOrZero parses a non-negative integer, degrading to 0 on any malformed
// or negative input. Per-cell parse failures never abort a load.
func intOrZero(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
