package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Mark0025/Twilio-tools/internal/services"
)

const (
	// DefaultTickInterval is the default interval between ticks.
	DefaultTickInterval = 2 * time.Second

	// DefaultNotificationDuration is the default duration for notifications.
	DefaultNotificationDuration = 5 * time.Second

	// QuickNotificationDuration is for brief notifications.
	QuickNotificationDuration = 3 * time.Second

	// LongNotificationDuration is for important notifications.
	LongNotificationDuration = 10 * time.Second
)

// tickCmd returns a command that sends a TickMsg after the specified interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t}
	})
}

// defaultTickCmd returns a command that sends a TickMsg after the default interval.
func defaultTickCmd() tea.Cmd {
	return tickCmd(DefaultTickInterval)
}

// loadCallLogCmd returns a command that loads a call log CSV into the book.
func loadCallLogCmd(mgr *services.Manager, path string) tea.Cmd {
	return func() tea.Msg {
		n, err := mgr.LoadCallLog(path)
		return CallLogLoadedMsg{
			Path:    path,
			Entries: n,
			Stats:   mgr.Stats(),
			Error:   err,
		}
	}
}

// loadLatestCmd returns a command that loads the newest uploaded CSV.
func loadLatestCmd(mgr *services.Manager) tea.Cmd {
	return func() tea.Msg {
		path, n, err := mgr.LoadLatest()
		return CallLogLoadedMsg{
			Path:    path,
			Entries: n,
			Stats:   mgr.Stats(),
			Error:   err,
		}
	}
}

// loadProfilesCmd returns a command that fetches profiles and health.
func loadProfilesCmd(mgr *services.Manager) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		profiles, err := mgr.Profiles(ctx)
		if err != nil {
			return ProfilesLoadedMsg{Error: err}
		}
		health, err := mgr.Health(ctx)
		return ProfilesLoadedMsg{Profiles: profiles, Health: health, Error: err}
	}
}

// searchSubaccountsCmd returns a command that searches subaccount names.
func searchSubaccountsCmd(mgr *services.Manager, query string) tea.Cmd {
	return func() tea.Msg {
		matches, err := mgr.SearchSubaccounts(context.Background(), query)
		return SearchResultsMsg{Query: query, Matches: matches, Error: err}
	}
}

// exportCallLogCmd returns a command that exports the loaded book as JSON.
func exportCallLogCmd(mgr *services.Manager, path string) tea.Cmd {
	return func() tea.Msg {
		err := mgr.ExportCallLog(path)
		return ExportResultMsg{Path: path, Kind: "call_log", Error: err}
	}
}

// exportEnrichedCmd returns a command that exports the enriched book as JSON.
func exportEnrichedCmd(mgr *services.Manager, path string) tea.Cmd {
	return func() tea.Msg {
		err := mgr.ExportEnriched(path)
		return ExportResultMsg{Path: path, Kind: "enriched", Error: err}
	}
}

// exportProfilesCmd returns a command that exports the profile projection.
func exportProfilesCmd(mgr *services.Manager) tea.Cmd {
	return func() tea.Msg {
		path, err := mgr.ExportProfiles(context.Background())
		return ExportResultMsg{Path: path, Kind: "profiles", Error: err}
	}
}

// subscribeToServicesCmd returns a command that subscribes to service events.
func subscribeToServicesCmd(mgr *services.Manager) tea.Cmd {
	ch, _ := mgr.Subscribe()
	return func() tea.Msg {
		return SubscriptionEventMsg{Channel: ch}
	}
}

// waitForServiceEventCmd returns a command that waits for the next service event.
func waitForServiceEventCmd(ch <-chan services.ServiceEvent) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-ch
		if !ok {
			return nil
		}
		return ServiceEventMsg{Event: event}
	}
}

// clearNotificationCmd returns a command that removes a notification after a delay.
func clearNotificationCmd(id string, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(_ time.Time) tea.Msg {
		return RemoveNotificationMsg{ID: id}
	})
}

// notifySuccessCmd returns a command that adds a success notification.
func notifySuccessCmd(message string) tea.Cmd {
	return func() tea.Msg {
		return AddNotificationMsg{
			Type:     NotificationSuccess,
			Message:  message,
			Duration: DefaultNotificationDuration,
		}
	}
}

// notifyErrorCmd returns a command that adds an error notification.
func notifyErrorCmd(message string) tea.Cmd {
	return func() tea.Msg {
		return AddNotificationMsg{
			Type:     NotificationError,
			Message:  message,
			Duration: LongNotificationDuration,
		}
	}
}

// notifyInfoCmd returns a command that adds an info notification.
func notifyInfoCmd(message string) tea.Cmd {
	return func() tea.Msg {
		return AddNotificationMsg{
			Type:     NotificationInfo,
			Message:  message,
			Duration: QuickNotificationDuration,
		}
	}
}

// Commands provides a public interface to the command functions for tabs.
type Commands struct {
	manager *services.Manager
}

// NewCommands creates a new Commands instance.
func NewCommands(mgr *services.Manager) *Commands {
	return &Commands{manager: mgr}
}

// LoadCallLog returns a command that loads one CSV file.
func (c *Commands) LoadCallLog(path string) tea.Cmd {
	return loadCallLogCmd(c.manager, path)
}

// LoadLatest returns a command that loads the newest uploaded CSV.
func (c *Commands) LoadLatest() tea.Cmd {
	return loadLatestCmd(c.manager)
}

// LoadProfiles returns a command that fetches profiles and health.
func (c *Commands) LoadProfiles() tea.Cmd {
	return loadProfilesCmd(c.manager)
}

// SearchSubaccounts returns a command that searches subaccount names.
func (c *Commands) SearchSubaccounts(query string) tea.Cmd {
	return searchSubaccountsCmd(c.manager, query)
}

// ExportCallLog returns a command that exports the loaded book.
func (c *Commands) ExportCallLog(path string) tea.Cmd {
	return exportCallLogCmd(c.manager, path)
}

// ExportEnriched returns a command that exports the enriched book.
func (c *Commands) ExportEnriched(path string) tea.Cmd {
	return exportEnrichedCmd(c.manager, path)
}

// ExportProfiles returns a command that exports the profile projection.
func (c *Commands) ExportProfiles() tea.Cmd {
	return exportProfilesCmd(c.manager)
}

// NotifySuccess returns a command that adds a success notification.
func (c *Commands) NotifySuccess(message string) tea.Cmd {
	return notifySuccessCmd(message)
}

// NotifyError returns a command that adds an error notification.
func (c *Commands) NotifyError(message string) tea.Cmd {
	return notifyErrorCmd(message)
}

// NotifyInfo returns a command that adds an info notification.
func (c *Commands) NotifyInfo(message string) tea.Cmd {
	return notifyInfoCmd(message)
}
