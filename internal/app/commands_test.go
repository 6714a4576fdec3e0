package app

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Mark0025/Twilio-tools/internal/services"
)

func TestDefaultTickCmd(t *testing.T) {
	cmd := defaultTickCmd()
	if cmd == nil {
		t.Error("defaultTickCmd returned nil")
	}
}

func TestTickCmd(t *testing.T) {
	cmd := tickCmd(time.Millisecond)
	if cmd == nil {
		t.Error("tickCmd returned nil")
	}
}

func TestNotificationCmds(t *testing.T) {
	tests := []struct {
		name     string
		fn       func(string) tea.Cmd
		want     NotificationType
		duration time.Duration
	}{
		{"Success", notifySuccessCmd, NotificationSuccess, DefaultNotificationDuration},
		{"Error", notifyErrorCmd, NotificationError, LongNotificationDuration},
		{"Info", notifyInfoCmd, NotificationInfo, QuickNotificationDuration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := tt.fn("msg")
			msg := cmd()

			addMsg, ok := msg.(AddNotificationMsg)
			if !ok {
				t.Fatalf("Expected AddNotificationMsg, got %T", msg)
			}
			if addMsg.Type != tt.want {
				t.Errorf("Type = %v, want %v", addMsg.Type, tt.want)
			}
			if addMsg.Message != "msg" {
				t.Errorf("Message = %q, want msg", addMsg.Message)
			}
			if addMsg.Duration != tt.duration {
				t.Errorf("Duration = %v, want %v", addMsg.Duration, tt.duration)
			}
		})
	}
}

func TestClearNotificationCmd(t *testing.T) {
	cmd := clearNotificationCmd("id", time.Millisecond)
	if cmd == nil {
		t.Error("clearNotificationCmd returned nil")
	}
}

func TestCommands_Notify(t *testing.T) {
	cmds := NewCommands(nil)

	msg := cmds.NotifyInfo("hello")()
	addMsg, ok := msg.(AddNotificationMsg)
	if !ok {
		t.Fatalf("Expected AddNotificationMsg, got %T", msg)
	}
	if addMsg.Message != "hello" {
		t.Errorf("Message = %q", addMsg.Message)
	}
}

func TestWaitForServiceEventCmd_Closed(t *testing.T) {
	ch := make(chan services.ServiceEvent)
	close(ch)

	// A closed channel yields a nil message so the event loop stops cleanly.
	msg := waitForServiceEventCmd(ch)()
	if msg != nil {
		t.Errorf("Expected nil msg from closed channel, got %T", msg)
	}
}

func TestWaitForServiceEventCmd_Event(t *testing.T) {
	ch := make(chan services.ServiceEvent, 1)
	ch <- services.CSVDetectedEvent{Path: "/uploads/calls.csv"}

	msg := waitForServiceEventCmd(ch)()
	evMsg, ok := msg.(ServiceEventMsg)
	if !ok {
		t.Fatalf("Expected ServiceEventMsg, got %T", msg)
	}
	if _, ok := evMsg.Event.(services.CSVDetectedEvent); !ok {
		t.Errorf("Expected CSVDetectedEvent, got %T", evMsg.Event)
	}
}
