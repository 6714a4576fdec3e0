package calllog

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"

	"github.com/Mark0025/Twilio-tools/internal/logger"
)

// DefaultSummaryLimit caps Summarize output when callers pass no preference.
const DefaultSummaryLimit = 10

// Book holds an ordered collection of call log entries plus a per-book
// command history. A Book is created fresh per run; it is not safe for
// concurrent use.
type Book struct {
	entries []Entry
	history []string
}

// NewBook returns an empty Book.
func NewBook() *Book {
	return &Book{}
}

// Load reads a UTF-8 CSV file with a header row and replaces the book's
// entries with one Entry per data row, preserving row order. A failed load
// leaves the previous entries untouched.
func (b *Book) Load(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open call log: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			logger.Error("failed to close call log file", "error", closeErr)
		}
	}()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // rows with unexpected column counts still load

	records, err := r.ReadAll()
	if err != nil {
		return 0, fmt.Errorf("failed to parse call log: %w", err)
	}
	if len(records) == 0 {
		b.entries = nil
		return 0, nil
	}

	header := records[0]
	entries := make([]Entry, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(record) {
				row[col] = record[i]
			}
		}
		entries = append(entries, NewEntry(row))
	}

	b.entries = entries
	logger.Info("loaded call log entries", "count", len(entries), "path", path)
	return len(entries), nil
}

// Export serializes the entries to a JSON array of raw row mappings, in load
// order, overwriting the destination file.
func (b *Book) Export(path string) error {
	rows := make([]map[string]string, len(b.entries))
	for i, e := range b.entries {
		rows[i] = e.Row()
	}

	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal call log: %w", err)
	}

	if err := os.WriteFile(path, data, 0o640); err != nil {
		return fmt.Errorf("failed to write call log export: %w", err)
	}

	logger.Info("exported call log", "count", len(rows), "path", path)
	return nil
}

// Entries returns the entries in load order.
func (b *Book) Entries() []Entry {
	return b.entries
}

// Len returns the number of loaded entries.
func (b *Book) Len() int {
	return len(b.entries)
}

// SummaryRow is one display row produced by Summarize.
type SummaryRow struct {
	Index       int // 1-based
	From        string
	To          string
	Status      string
	Duration    int
	DateCreated string
}

// Summarize projects at most limit entries into display rows. A limit of
// zero or less yields no rows; an empty book yields an empty slice.
func (b *Book) Summarize(limit int) []SummaryRow {
	if limit <= 0 {
		return nil
	}
	if limit > len(b.entries) {
		limit = len(b.entries)
	}

	rows := make([]SummaryRow, 0, limit)
	for i, e := range b.entries[:limit] {
		rows = append(rows, SummaryRow{
			Index:       i + 1,
			From:        e.From,
			To:          e.To,
			Status:      e.Status,
			Duration:    e.Duration,
			DateCreated: e.DateCreated,
		})
	}
	return rows
}

// Stats aggregates entry counts by observed status.
type Stats struct {
	Total     int
	Completed int
	NoAnswer  int
}

// Stats counts entries by status for the summary card.
func (b *Book) Stats() Stats {
	s := Stats{Total: len(b.entries)}
	for _, e := range b.entries {
		switch e.Status {
		case "Completed":
			s.Completed++
		case "No Answer":
			s.NoAnswer++
		}
	}
	return s
}

// FuzzyFind returns entries whose value for the given column is a close
// textual match to query. Matching ranks the distinct values observed for
// the column and keeps at most n of them above the similarity cutoff; every
// entry sharing a matched value is returned, so the result can hold more
// than n entries.
func (b *Book) FuzzyFind(query, column string, n int) []Entry {
	seen := make(map[string]bool)
	var values []string
	for _, e := range b.entries {
		v := e.Field(column)
		if !seen[v] {
			seen[v] = true
			values = append(values, v)
		}
	}

	matched := make(map[string]bool)
	for _, v := range closeMatches(query, values, n, defaultCutoff) {
		matched[v] = true
	}

	var out []Entry
	for _, e := range b.entries {
		if matched[e.Field(column)] {
			out = append(out, e)
		}
	}
	return out
}

// AddHistory appends a free-text command label to the book's history.
func (b *Book) AddHistory(command string) {
	b.history = append(b.history, command)
}

// History returns the history labels in insertion order.
func (b *Book) History() []string {
	return b.history
}

// FormatHistory renders the history as a numbered list, one line per label.
func (b *Book) FormatHistory() []string {
	lines := make([]string, len(b.history))
	for i, cmd := range b.history {
		lines[i] = fmt.Sprintf("%d. %s", i+1, cmd)
	}
	return lines
}
