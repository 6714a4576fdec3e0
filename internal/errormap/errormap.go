// Package errormap loads the vendor error-code table and enriches call log
// entries with diagnostic text.
package errormap

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/Mark0025/Twilio-tools/internal/calllog"
	"github.com/Mark0025/Twilio-tools/internal/logger"
)

// Info is the diagnostic record for one error code. The zero value stands in
// for unknown codes, so enrichment never fails on a lookup miss.
type Info struct {
	Code             int    `json:"code"`
	Message          string `json:"message"`
	Description      string `json:"description"`
	Product          string `json:"product"`
	LogLevel         string `json:"log_level"`
	Causes           string `json:"causes"`
	Solutions        string `json:"solutions"`
	DeveloperMessage string `json:"developer_message"`
	HumanMessage     string `json:"human_message"`
	SupportAction    string `json:"support_action"`
}

// Table is a read-only mapping from numeric error code to diagnostics.
type Table struct {
	byCode map[int]Info
}

// rawInfo defers code parsing: the source JSON may carry the code as a
// number, a string, or not at all.
type rawInfo struct {
	Code json.RawMessage `json:"code"`
	Info
}

// NewTable returns an empty table. Every lookup misses, so enrichment
// still works when no error map file is available.
func NewTable() *Table {
	return &Table{byCode: make(map[int]Info)}
}

// Load reads the error table from a JSON array. An entry without a usable
// code field is keyed by its position in the array.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read error map: %w", err)
	}

	var raw []rawInfo
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse error map: %w", err)
	}

	t := &Table{byCode: make(map[int]Info, len(raw))}
	for i, r := range raw {
		code, ok := parseCode(r.Code)
		if !ok {
			code = i
		}
		info := r.Info
		info.Code = code
		t.byCode[code] = info
	}

	logger.Info("loaded error map", "codes", len(t.byCode), "path", path)
	return t, nil
}

// parseCode accepts a JSON number or a numeric string.
func parseCode(raw json.RawMessage) (int, bool) {
	if len(raw) == 0 {
		return 0, false
	}

	var n int
	if err := json.Unmarshal(raw, &n); err == nil {
		return n, true
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
			return n, true
		}
	}

	return 0, false
}

// Len returns the number of known codes.
func (t *Table) Len() int {
	return len(t.byCode)
}

// Lookup returns the diagnostics for a code, and whether the code is known.
// Unknown codes yield the zero Info.
func (t *Table) Lookup(code int) (Info, bool) {
	info, ok := t.byCode[code]
	return info, ok
}

// EntryCode derives the numeric error code for an entry: the error-code
// field if numeric, else the status field if numeric, else 0. Parse failures
// degrade silently.
func EntryCode(e calllog.Entry) int {
	if code, err := strconv.Atoi(strings.TrimSpace(e.ErrorCode)); err == nil {
		return code
	}
	if code, err := strconv.Atoi(strings.TrimSpace(e.Status)); err == nil {
		return code
	}
	return 0
}

// Enrich joins one entry against the table: the raw row plus the three
// diagnostic fields, empty strings when the code is unknown.
func (t *Table) Enrich(e calllog.Entry) map[string]string {
	info, _ := t.Lookup(EntryCode(e))

	row := e.Row()
	row["developer_message"] = info.DeveloperMessage
	row["human_message"] = info.HumanMessage
	row["support_action"] = info.SupportAction
	return row
}

// EnrichAll enriches every entry, preserving order.
func (t *Table) EnrichAll(entries []calllog.Entry) []map[string]string {
	out := make([]map[string]string, len(entries))
	for i, e := range entries {
		out[i] = t.Enrich(e)
	}
	return out
}

// ExportEnriched writes the enriched rows as a JSON array, overwriting path.
func (t *Table) ExportEnriched(path string, entries []calllog.Entry) error {
	rows := t.EnrichAll(entries)

	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal enriched rows: %w", err)
	}

	if err := os.WriteFile(path, data, 0o640); err != nil {
		return fmt.Errorf("failed to write enriched export: %w", err)
	}

	logger.Info("exported enriched call log", "count", len(rows), "path", path)
	return nil
}
