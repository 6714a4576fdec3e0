// Package services provides service orchestration for the TUI.
package services

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gen2brain/beeep"

	"github.com/Mark0025/Twilio-tools/internal/calllog"
	"github.com/Mark0025/Twilio-tools/internal/config"
	"github.com/Mark0025/Twilio-tools/internal/db"
	"github.com/Mark0025/Twilio-tools/internal/errormap"
	"github.com/Mark0025/Twilio-tools/internal/logger"
	"github.com/Mark0025/Twilio-tools/internal/models"
	"github.com/Mark0025/Twilio-tools/internal/services/trusthub"
	"github.com/Mark0025/Twilio-tools/internal/services/uploads"
	"github.com/Mark0025/Twilio-tools/internal/twilio"
)

type (
	// CallLogLoadedEvent is emitted after a CSV is loaded into the book.
	CallLogLoadedEvent struct {
		Path    string
		Entries int
	}

	// CSVDetectedEvent is emitted when a new CSV lands in the uploads dir.
	CSVDetectedEvent struct {
		Path string
	}

	// ExportedEvent is emitted after a successful file export.
	ExportedEvent struct {
		Path    string
		Kind    string
		Entries int
	}

	// ErrorEvent is emitted when an error occurs in any service.
	ErrorEvent struct {
		Service string
		Error   error
	}
)

// ServiceEvent is the interface implemented by all service events.
type ServiceEvent interface {
	isServiceEvent()
}

func (CallLogLoadedEvent) isServiceEvent() {}
func (CSVDetectedEvent) isServiceEvent()   {}
func (ExportedEvent) isServiceEvent()      {}
func (ErrorEvent) isServiceEvent()         {}

// Manager orchestrates the call log, error map, API services and audit log.
type Manager struct {
	mu          sync.RWMutex
	cfg         *config.Config
	book        *calllog.Book
	errors      *errormap.Table
	client      *twilio.Client
	trustHub    *trusthub.Service
	uploads     *uploads.Service
	database    *db.DB
	subscribers []chan<- ServiceEvent
	stopChan    chan struct{}
	notify      bool
}

// NewManager wires up all services from the application configuration.
func NewManager(cfg *config.Config) (*Manager, error) {
	m := &Manager{
		cfg:      cfg,
		book:     calllog.NewBook(),
		errors:   errormap.NewTable(),
		stopChan: make(chan struct{}),
		notify:   true,
	}

	if table, err := errormap.Load(cfg.ErrorMapPath); err != nil {
		// A missing map is survivable, lookups just come back unknown.
		logger.Warn("error map not loaded", "path", cfg.ErrorMapPath, "error", err)
	} else {
		m.errors = table
	}

	m.client = twilio.New(cfg)
	m.trustHub = trusthub.New(m.client)

	var err error
	m.uploads, err = uploads.New(cfg.UploadsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to start uploads watcher: %w", err)
	}

	m.database, err = db.New(cfg.DatabasePath)
	if err != nil {
		_ = m.uploads.Close()
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	go m.routeEvents()

	return m, nil
}

// routeEvents forwards uploads watcher events to subscribers.
func (m *Manager) routeEvents() {
	for {
		select {
		case event := <-m.uploads.Events():
			m.handleUploadsEvent(event)

		case <-m.stopChan:
			return
		}
	}
}

func (m *Manager) handleUploadsEvent(event uploads.Event) {
	switch event.Type {
	case uploads.EventCSVAdded:
		logger.Info("new call log detected", "path", event.Path)
		if m.notify {
			_ = beeep.Notify("Twilio Tools", "New call log: "+filepath.Base(event.Path), "")
		}
		m.broadcast(CSVDetectedEvent{Path: event.Path})

	case uploads.EventError:
		logger.Error("uploads watcher error", "error", event.Error)
		m.broadcast(ErrorEvent{Service: "uploads", Error: event.Error})
	}
}

// SetNotifications toggles desktop notifications for new CSV files.
func (m *Manager) SetNotifications(enabled bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notify = enabled
}

// record writes one operation to the audit database, best-effort.
func (m *Manager) record(command, argument string, rows int, started time.Time, opErr error) {
	op := &models.Operation{
		Command:  command,
		Argument: argument,
		Rows:     rows,
		Duration: time.Since(started),
	}
	if opErr != nil {
		op.Error = opErr.Error()
	}
	if err := m.database.RecordOperation(op); err != nil {
		logger.Error("failed to record operation", "command", command, "error", err)
	}
}

// recordExport writes one export row to the audit database, best-effort.
func (m *Manager) recordExport(path, kind string, entries int) {
	rec := &models.ExportRecord{Path: path, Kind: kind, Entries: entries}
	if err := m.database.RecordExport(rec); err != nil {
		logger.Error("failed to record export", "path", path, "error", err)
	}
}

// LoadCallLog loads a CSV file into the book, replacing prior entries.
func (m *Manager) LoadCallLog(path string) (int, error) {
	started := time.Now()

	m.mu.Lock()
	n, err := m.book.Load(path)
	if err == nil {
		m.book.AddHistory("loaded " + filepath.Base(path))
	}
	m.mu.Unlock()

	m.record("load", path, n, started, err)
	if err != nil {
		return 0, err
	}

	logger.Info("call log loaded", "path", path, "entries", n)
	m.broadcast(CallLogLoadedEvent{Path: path, Entries: n})
	return n, nil
}

// LoadLatest loads the newest CSV from the uploads directory.
func (m *Manager) LoadLatest() (string, int, error) {
	latest := m.uploads.LatestCSV()
	if latest == nil {
		return "", 0, fmt.Errorf("no CSV files in %s", m.uploads.Dir())
	}
	n, err := m.LoadCallLog(latest.Path)
	return latest.Path, n, err
}

// ExportCallLog writes the loaded entries as JSON.
func (m *Manager) ExportCallLog(path string) error {
	started := time.Now()

	m.mu.RLock()
	err := m.book.Export(path)
	entries := m.book.Len()
	m.mu.RUnlock()

	m.record("export", path, entries, started, err)
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.book.AddHistory("exported " + filepath.Base(path))
	m.mu.Unlock()

	m.recordExport(path, "call_log", entries)
	m.broadcast(ExportedEvent{Path: path, Kind: "call_log", Entries: entries})
	return nil
}

// ExportEnriched writes the loaded entries as JSON with error annotations.
func (m *Manager) ExportEnriched(path string) error {
	started := time.Now()

	m.mu.RLock()
	err := m.errors.ExportEnriched(path, m.book.Entries())
	entries := m.book.Len()
	m.mu.RUnlock()

	m.record("enrich", path, entries, started, err)
	if err != nil {
		return err
	}

	m.recordExport(path, "enriched", entries)
	m.broadcast(ExportedEvent{Path: path, Kind: "enriched", Entries: entries})
	return nil
}

// Summarize returns up to limit summary rows from the loaded book.
func (m *Manager) Summarize(limit int) []calllog.SummaryRow {
	started := time.Now()

	m.mu.RLock()
	rows := m.book.Summarize(limit)
	m.mu.RUnlock()

	m.record("summarize", fmt.Sprintf("limit=%d", limit), len(rows), started, nil)
	return rows
}

// FuzzyFind returns entries whose column values loosely match the query.
func (m *Manager) FuzzyFind(query, column string, n int) []calllog.Entry {
	started := time.Now()

	m.mu.RLock()
	entries := m.book.FuzzyFind(query, column, n)
	m.mu.RUnlock()

	m.record("fuzzy_find", fmt.Sprintf("%s in %s", query, column), len(entries), started, nil)
	return entries
}

// Stats returns the aggregate counters for the loaded book.
func (m *Manager) Stats() calllog.Stats {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.book.Stats()
}

// Entries returns the loaded call log entries.
func (m *Manager) Entries() []calllog.Entry {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.book.Entries()
}

// History returns the in-memory action history of the loaded book.
func (m *Manager) History() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.book.History()
}

// LookupError returns the enrichment info for one error code.
func (m *Manager) LookupError(code int) (errormap.Info, bool) {
	return m.errors.Lookup(code)
}

// ErrorTable returns the loaded error lookup table.
func (m *Manager) ErrorTable() *errormap.Table {
	return m.errors
}

// Profiles lists TrustHub customer profiles.
func (m *Manager) Profiles(ctx context.Context) ([]models.Profile, error) {
	started := time.Now()
	profiles, err := m.trustHub.Profiles(ctx)
	m.record("profiles", "", len(profiles), started, err)
	return profiles, err
}

// Health computes the TrustHub health report.
func (m *Manager) Health(ctx context.Context) (*trusthub.HealthReport, error) {
	started := time.Now()
	report, err := m.trustHub.Health(ctx)
	rows := 0
	if report != nil {
		rows = report.Total
	}
	m.record("health", "", rows, started, err)
	return report, err
}

// SearchSubaccounts searches subaccount friendly names.
func (m *Manager) SearchSubaccounts(ctx context.Context, query string) ([]trusthub.SubaccountMatch, error) {
	started := time.Now()
	matches, err := m.trustHub.SearchSubaccounts(ctx, query)
	m.record("search", query, len(matches), started, err)
	return matches, err
}

// ExportProfiles writes the profile projection under the exports directory.
func (m *Manager) ExportProfiles(ctx context.Context) (string, error) {
	started := time.Now()
	path := filepath.Join(m.cfg.ExportsDir, "profiles.json")

	n, err := m.trustHub.ExportProfiles(ctx, path)
	m.record("export_profiles", path, n, started, err)
	if err != nil {
		return "", err
	}

	m.recordExport(path, "profiles", n)
	m.broadcast(ExportedEvent{Path: path, Kind: "profiles", Entries: n})
	return path, nil
}

// TrustHub exposes the underlying TrustHub service.
func (m *Manager) TrustHub() *trusthub.Service {
	return m.trustHub
}

// Uploads exposes the underlying uploads watcher.
func (m *Manager) Uploads() *uploads.Service {
	return m.uploads
}

// Database exposes the audit database.
func (m *Manager) Database() *db.DB {
	return m.database
}

// Config exposes the application configuration.
func (m *Manager) Config() *config.Config {
	return m.cfg
}

// broadcast sends an event to all subscribers without blocking.
func (m *Manager) broadcast(event ServiceEvent) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, sub := range m.subscribers {
		select {
		case sub <- event:
		default:
			// Subscriber channel full, skip
		}
	}
}

// Subscribe creates a channel for receiving service events.
// Returns a tea.Cmd that can be used in Bubble Tea's Init or Update.
func (m *Manager) Subscribe() (chan ServiceEvent, tea.Cmd) {
	ch := make(chan ServiceEvent, 50)

	m.mu.Lock()
	m.subscribers = append(m.subscribers, ch)
	m.mu.Unlock()

	return ch, WaitForEvent(ch)
}

// WaitForEvent returns a tea.Cmd for the next event on a channel.
func WaitForEvent(ch <-chan ServiceEvent) tea.Cmd {
	return func() tea.Msg {
		return <-ch
	}
}

// Unsubscribe removes a subscriber channel.
func (m *Manager) Unsubscribe(ch chan ServiceEvent) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, sub := range m.subscribers {
		if sub == ch {
			m.subscribers = append(m.subscribers[:i], m.subscribers[i+1:]...)
			close(ch)
			break
		}
	}
}

// Close stops the watcher, closes the database and all subscriber channels.
func (m *Manager) Close() error {
	close(m.stopChan)

	m.mu.Lock()
	for _, sub := range m.subscribers {
		close(sub)
	}
	m.subscribers = nil
	m.mu.Unlock()

	var errs []error

	if err := m.uploads.Close(); err != nil {
		errs = append(errs, err)
	}
	if m.database != nil {
		if err := m.database.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return errs[0]
	}
	return nil
}
