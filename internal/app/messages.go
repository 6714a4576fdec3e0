package app

import (
	"time"

	"github.com/Mark0025/Twilio-tools/internal/calllog"
	"github.com/Mark0025/Twilio-tools/internal/models"
	"github.com/Mark0025/Twilio-tools/internal/services"
	"github.com/Mark0025/Twilio-tools/internal/services/trusthub"
)

// TickMsg is sent periodically to trigger state refresh.
type TickMsg struct {
	Time time.Time
}

// StartLoadingMsg signals that a resource is starting to load.
type StartLoadingMsg struct {
	Resource string
}

// StopLoadingMsg signals that a resource has finished loading.
type StopLoadingMsg struct {
	Resource string
}

// CallLogLoadedMsg contains the result of loading a call log CSV.
type CallLogLoadedMsg struct {
	Path    string
	Entries int
	Stats   calllog.Stats
	Error   error
}

// ProfilesLoadedMsg contains loaded TrustHub profiles and the health report.
type ProfilesLoadedMsg struct {
	Profiles []models.Profile
	Health   *trusthub.HealthReport
	Error    error
}

// SearchResultsMsg contains subaccount search results.
type SearchResultsMsg struct {
	Query   string
	Matches []trusthub.SubaccountMatch
	Error   error
}

// ExportResultMsg contains the result of an export operation.
type ExportResultMsg struct {
	Path  string
	Kind  string
	Error error
}

// RefreshMsg requests a refresh of data.
type RefreshMsg struct {
	Resource string // "all", "calls", "profiles"
}

// AddNotificationMsg requests adding a new notification.
type AddNotificationMsg struct {
	Type     NotificationType
	Message  string
	Duration time.Duration
}

// RemoveNotificationMsg requests removal of a notification.
type RemoveNotificationMsg struct {
	ID string
}

// ClearExpiredNotificationsMsg triggers clearing of expired notifications.
type ClearExpiredNotificationsMsg struct{}

// ErrorMsg represents a general error.
type ErrorMsg struct {
	Error   error
	Context string
}

// TabSwitchMsg requests switching to a specific tab.
type TabSwitchMsg struct {
	Tab TabID
}

// ToggleHelpMsg toggles the help display.
type ToggleHelpMsg struct{}

// ServiceEventMsg wraps a service event from the service manager.
type ServiceEventMsg struct {
	Event services.ServiceEvent
}

// SubscriptionEventMsg is the callback wrapper for service subscription.
type SubscriptionEventMsg struct {
	Channel chan services.ServiceEvent
}
