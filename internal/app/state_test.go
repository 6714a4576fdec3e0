package app

import (
	"testing"
	"time"

	"github.com/Mark0025/Twilio-tools/internal/calllog"
	"github.com/Mark0025/Twilio-tools/internal/models"
	"github.com/Mark0025/Twilio-tools/internal/services/trusthub"
)

func TestNewState(t *testing.T) {
	s := NewState()
	if s == nil {
		t.Fatal("NewState returned nil")
	}
	if len(s.Profiles) != 0 {
		t.Error("Profiles should be empty")
	}
	if s.Loading.Initial != true {
		t.Error("Initial loading should be true")
	}
}

func TestState_SetLoading(t *testing.T) {
	s := NewState()

	s.SetLoading("calls", true)
	if !s.Loading.Calls {
		t.Error("Calls loading should be true")
	}
	if !s.AnyLoading() {
		t.Error("AnyLoading should be true")
	}

	s.SetLoading("calls", false)
	// Initial is still true
	if !s.AnyLoading() {
		t.Error("AnyLoading should be true (Initial is true)")
	}

	s.SetLoading("initial", false)
	if s.AnyLoading() {
		t.Error("AnyLoading should be false")
	}

	s.SetLoading("profiles", true)
	if !s.Loading.Profiles {
		t.Error("Profiles loading should be true")
	}
}

func TestState_SetCallLog(t *testing.T) {
	s := NewState()

	stats := calllog.Stats{Total: 10, Completed: 7, NoAnswer: 2}
	s.SetCallLog("/data/uploads/calls.csv", stats)

	if got := s.GetLoadedPath(); got != "/data/uploads/calls.csv" {
		t.Errorf("GetLoadedPath = %q", got)
	}
	if got := s.GetCallStats(); got.Total != 10 || got.Completed != 7 {
		t.Errorf("GetCallStats = %+v", got)
	}
	if s.GetLastUpdated().IsZero() {
		t.Error("LastUpdated should be set")
	}
	if s.TimeSinceUpdate() < 0 {
		t.Error("TimeSinceUpdate should be >= 0")
	}
}

func TestState_SetProfiles(t *testing.T) {
	s := NewState()

	profiles := []models.Profile{
		{SID: "BU1", Status: "twilio-approved"},
		{SID: "BU2", Status: "draft"},
	}
	health := &trusthub.HealthReport{Total: 2, Approved: 1, Pending: 1, Score: 50}

	s.SetProfiles(profiles, health)

	got := s.GetProfiles()
	if len(got) != 2 {
		t.Fatalf("GetProfiles len = %d, want 2", len(got))
	}

	// GetProfiles returns a copy
	got[0].SID = "mutated"
	if s.GetProfiles()[0].SID != "BU1" {
		t.Error("GetProfiles should return a copy")
	}

	h := s.GetHealth()
	if h == nil || h.Score != 50 {
		t.Errorf("GetHealth = %+v", h)
	}
}

func TestState_Notifications(t *testing.T) {
	s := NewState()

	id := s.AddNotification(NotificationInfo, "test", time.Minute)
	if id == "" {
		t.Error("AddNotification returned empty ID")
	}

	notifs := s.GetNotifications()
	if len(notifs) != 1 {
		t.Errorf("GetNotifications len = %d, want 1", len(notifs))
	}
	if notifs[0].Message != "test" {
		t.Errorf("Notification message = %s, want test", notifs[0].Message)
	}

	s.RemoveNotification(id)
	if len(s.GetNotifications()) != 0 {
		t.Error("Notification should be removed")
	}
}

func TestState_NotificationCap(t *testing.T) {
	s := NewState()

	for i := 0; i < 15; i++ {
		s.AddNotification(NotificationInfo, "n", time.Minute)
	}
	if got := len(s.GetNotifications()); got != 10 {
		t.Errorf("notifications len = %d, want 10", got)
	}
}

func TestState_ClearExpiredNotifications(t *testing.T) {
	s := NewState()

	// Expired
	s.notifications = append(s.notifications, Notification{
		ID:        "expired",
		CreatedAt: time.Now().Add(-2 * time.Minute),
		Duration:  time.Minute,
	})

	// Active
	s.notifications = append(s.notifications, Notification{
		ID:        "active",
		CreatedAt: time.Now(),
		Duration:  time.Minute,
	})

	s.ClearExpiredNotifications()

	notifs := s.GetNotifications()
	if len(notifs) != 1 {
		t.Fatalf("Expected 1 notification, got %d", len(notifs))
	}
	if notifs[0].ID != "active" {
		t.Errorf("Expected active notification, got %s", notifs[0].ID)
	}
}

func TestState_LoadingNotification(t *testing.T) {
	s := NewState()

	s.SetLoadingNotification("loading...")
	notifs := s.GetNotifications()
	if len(notifs) != 1 {
		t.Errorf("Expected 1 notification, got %d", len(notifs))
	}
	if notifs[0].ID != LoadingNotificationID {
		t.Errorf("Expected ID %s, got %s", LoadingNotificationID, notifs[0].ID)
	}
	if notifs[0].Message != "loading..." {
		t.Errorf("Expected message loading..., got %s", notifs[0].Message)
	}

	// Update message
	s.SetLoadingNotification("still loading...")
	notifs = s.GetNotifications()
	if len(notifs) != 1 {
		t.Errorf("Expected 1 notification after update")
	}
	if notifs[0].Message != "still loading..." {
		t.Errorf("Expected message still loading..., got %s", notifs[0].Message)
	}

	s.ClearLoadingNotification()
	if len(s.GetNotifications()) != 0 {
		t.Error("Loading notification should be cleared")
	}
}

func TestNotification_IsExpired(t *testing.T) {
	n := Notification{CreatedAt: time.Now().Add(-time.Hour), Duration: time.Minute}
	if !n.IsExpired() {
		t.Error("notification should be expired")
	}

	sticky := Notification{CreatedAt: time.Now().Add(-time.Hour), Duration: 0}
	if sticky.IsExpired() {
		t.Error("zero-duration notification should never expire")
	}
}

func TestNotificationType_String(t *testing.T) {
	tests := []struct {
		t    NotificationType
		want string
	}{
		{NotificationSuccess, "success"},
		{NotificationError, "error"},
		{NotificationWarning, "warning"},
		{NotificationInfo, "info"},
		{NotificationType(999), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.t.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
