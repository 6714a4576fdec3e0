// Package uploads watches a drop directory for call log CSV files.
package uploads

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/Mark0025/Twilio-tools/internal/logger"
)

// EventType defines the type of uploads event.
type EventType int

const (
	EventScanned EventType = iota
	EventCSVAdded
	EventError
)

// Event represents an uploads directory event.
type Event struct {
	Type  EventType
	Path  string
	Error error
}

// CSVFile describes one CSV file found in the uploads directory.
type CSVFile struct {
	Path    string
	Name    string
	Size    int64
	ModTime time.Time
}

// Service watches the uploads directory and tracks the CSV files in it.
type Service struct {
	mu            sync.RWMutex
	dir           string
	files         map[string]CSVFile
	watcher       *fsnotify.Watcher
	eventChan     chan Event
	stopChan      chan struct{}
	debounceTimer *time.Timer
}

// New creates the service, scans the directory and starts watching it.
func New(dir string) (*Service, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create uploads directory: %w", err)
	}

	s := &Service{
		dir:       dir,
		files:     make(map[string]CSVFile),
		eventChan: make(chan Event, 100),
		stopChan:  make(chan struct{}),
	}

	if err := s.scan(); err != nil {
		return nil, fmt.Errorf("failed to scan uploads directory: %w", err)
	}

	if err := s.startWatcher(); err != nil {
		return nil, fmt.Errorf("failed to start file watcher: %w", err)
	}

	s.sendEvent(Event{Type: EventScanned})

	return s, nil
}

// Dir returns the watched directory.
func (s *Service) Dir() string {
	return s.dir
}

// Events returns the event channel for subscribing to directory changes.
func (s *Service) Events() <-chan Event {
	return s.eventChan
}

// ListCSVs returns the known CSV files, newest first.
func (s *Service) ListCSVs() []CSVFile {
	s.mu.RLock()
	defer s.mu.RUnlock()

	files := make([]CSVFile, 0, len(s.files))
	for _, f := range s.files {
		files = append(files, f)
	}
	sort.Slice(files, func(i, j int) bool {
		return files[i].ModTime.After(files[j].ModTime)
	})
	return files
}

// LatestCSV returns the most recently modified CSV file, or nil when the
// directory holds none.
func (s *Service) LatestCSV() *CSVFile {
	files := s.ListCSVs()
	if len(files) == 0 {
		return nil
	}
	return &files[0]
}

// Count returns the number of tracked CSV files.
func (s *Service) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.files)
}

// scan rebuilds the file index from the directory contents.
func (s *Service) scan() error {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return err
	}

	files := make(map[string]CSVFile)
	for _, entry := range entries {
		if entry.IsDir() || !isCSV(entry.Name()) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		path := filepath.Join(s.dir, entry.Name())
		files[path] = CSVFile{
			Path:    path,
			Name:    entry.Name(),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		}
	}

	s.mu.Lock()
	s.files = files
	s.mu.Unlock()
	return nil
}

func isCSV(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".csv")
}

// startWatcher starts the file system watcher.
func (s *Service) startWatcher() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	s.watcher = watcher

	if err := watcher.Add(s.dir); err != nil {
		if closeErr := watcher.Close(); closeErr != nil {
			logger.Error("failed to close watcher", "error", closeErr)
		}
		return err
	}

	go s.watchLoop()
	return nil
}

// watchLoop handles file system events with debouncing.
func (s *Service) watchLoop() {
	const debounceInterval = 100 * time.Millisecond

	for {
		select {
		case event, ok := <-s.watcher.Events:
			if !ok {
				return
			}

			if !isCSV(event.Name) {
				continue
			}

			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0 {
				name := event.Name
				isNew := event.Op&fsnotify.Create != 0
				if s.debounceTimer != nil {
					s.debounceTimer.Stop()
				}
				s.debounceTimer = time.AfterFunc(debounceInterval, func() {
					s.handleChange(name, isNew)
				})
			}

		case err, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
			s.sendEvent(Event{Type: EventError, Error: err})

		case <-s.stopChan:
			return
		}
	}
}

// handleChange rescans the directory after an external change.
func (s *Service) handleChange(path string, isNew bool) {
	if err := s.scan(); err != nil {
		s.sendEvent(Event{Type: EventError, Error: err})
		return
	}

	if isNew {
		s.sendEvent(Event{Type: EventCSVAdded, Path: path})
		return
	}
	s.sendEvent(Event{Type: EventScanned, Path: path})
}

// sendEvent sends an event to the event channel non-blocking.
func (s *Service) sendEvent(event Event) {
	select {
	case s.eventChan <- event:
	default:
		// Channel full, drop oldest event
		select {
		case <-s.eventChan:
		default:
		}
		select {
		case s.eventChan <- event:
		default:
		}
	}
}

// Close stops the file watcher and cleans up resources.
func (s *Service) Close() error {
	close(s.stopChan)

	if s.debounceTimer != nil {
		s.debounceTimer.Stop()
	}

	if s.watcher != nil {
		return s.watcher.Close()
	}
	return nil
}
