// Package main is the entry point for the Twilio Tools TUI application.
// It initializes configuration, services, and runs the Bubble Tea program.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Mark0025/Twilio-tools/internal/app"
	"github.com/Mark0025/Twilio-tools/internal/config"
	"github.com/Mark0025/Twilio-tools/internal/logger"
	"github.com/Mark0025/Twilio-tools/internal/services"
	"github.com/Mark0025/Twilio-tools/internal/ui/tabs/calls"
	tberrors "github.com/Mark0025/Twilio-tools/internal/ui/tabs/errors"
	"github.com/Mark0025/Twilio-tools/internal/ui/tabs/info"
	"github.com/Mark0025/Twilio-tools/internal/ui/tabs/trusthub"
	"github.com/Mark0025/Twilio-tools/internal/version"
)

func main() {
	// Handle version flag
	if len(os.Args) > 1 && (os.Args[1] == "-v" || os.Args[1] == "--version") {
		fmt.Println(version.Info())
		os.Exit(0)
	}

	// Handle help flag
	if len(os.Args) > 1 && (os.Args[1] == "-h" || os.Args[1] == "--help") {
		printUsage()
		os.Exit(0)
	}

	// Run the application
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run contains the main application logic, separated for cleaner error handling.
func run() error {
	// 1. Load configuration from .env files and environment variables
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// 2. Route logs to a file so they don't corrupt the TUI
	if err := logger.InitFile(cfg.AppLogPath); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: file logging disabled: %v\n", err)
	}
	defer func() {
		_ = logger.CloseFile()
	}()

	// 3. Initialize the service manager
	// This loads the error map, opens the audit database and starts the
	// uploads watcher.
	svcManager, err := services.NewManager(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize services: %w", err)
	}

	// Ensure cleanup on exit
	defer func() {
		if closeErr := svcManager.Close(); closeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: error closing services: %v\n", closeErr)
		}
	}()

	// 4. Create the root Bubble Tea model
	model := app.NewModel(svcManager)

	// 5. Initialize tabs with shared state and services
	// Each tab receives the shared application state for consistent data access
	state := model.GetState()
	cmds := model.GetCommands()
	tabs := []app.Tab{
		calls.New(state, svcManager, cmds), // Tab 0: Calls - call log analysis
		trusthub.New(state, cmds),          // Tab 1: TrustHub - compliance profiles
		tberrors.New(svcManager),           // Tab 2: Errors - error code lookup
		info.New(svcManager, cfg),          // Tab 3: Info - configuration and audit history
	}
	model.SetTabs(tabs)

	// 6. Set up signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// 7. Create and configure the Bubble Tea program
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer (full terminal)
		tea.WithMouseCellMotion(), // Enable mouse support for selection
	)

	// 8. Handle signals in a separate goroutine
	go func() {
		<-sigChan
		// Send quit message to the program
		p.Send(tea.Quit())
	}()

	// 9. Run the TUI program
	// This blocks until the user quits or an error occurs
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}

// printUsage prints the command-line usage information.
func printUsage() {
	fmt.Println(`Twilio Tools TUI - call log analysis, error lookup and TrustHub monitor

Usage:
  twilio-tools [flags]

Flags:
  -h, --help      Show this help message
  -v, --version   Show version information

Keyboard Shortcuts:
  1-4             Switch between tabs (Calls, TrustHub, Errors, Info)
  Tab/Shift+Tab   Navigate between tabs
  j/k, Up/Down    Navigate lists
  Enter           Select/confirm
  l               Load the newest call log CSV
  /               Fuzzy find / search (per tab)
  r               Refresh data
  ?               Toggle help
  q, Ctrl+C       Quit

Environment Variables:
  TWILIO_ACCOUNT_SID  Account SID (required)
  TWILIO_AUTH_TOKEN   Auth token (required)
  UPLOADS_DIR         Directory watched for call log CSVs
  EXPORTS_DIR         Directory for JSON exports
  ERROR_MAP_PATH      Error code map JSON file
  DATABASE_PATH       SQLite audit database path

Configuration:
  The application looks for .env files in the following locations:
  - Current directory
  - ~/.config/twilio-tools/.env
  - ~/.twilio-tools/.env

For more information, visit: https://github.com/Mark0025/Twilio-tools`)
}
