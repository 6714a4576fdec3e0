// Package trusthub reports on compliance profiles and subaccount health.
package trusthub

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Mark0025/Twilio-tools/internal/logger"
	"github.com/Mark0025/Twilio-tools/internal/models"
	"github.com/Mark0025/Twilio-tools/internal/twilio"
)

// Service answers compliance questions over the REST client.
type Service struct {
	client *twilio.Client
}

// New creates a TrustHub service backed by the given client.
func New(client *twilio.Client) *Service {
	return &Service{client: client}
}

// HealthReport summarizes the compliance state of all customer profiles.
type HealthReport struct {
	Total    int
	Approved int
	Pending  int
	Rejected int
	Other    int
	ByStatus map[string]int
	// Score is the approved share in percent, 0 when no profiles exist.
	Score float64
}

// SubaccountMatch is one subaccount whose friendly name matched a search.
type SubaccountMatch struct {
	Account  models.Account
	Profiles []models.Profile
}

// ProductionGroup is a set of production subaccounts sharing a company number.
type ProductionGroup struct {
	Prefix   string
	Accounts []models.Account
}

// Profiles returns all customer profiles.
func (s *Service) Profiles(ctx context.Context) ([]models.Profile, error) {
	profiles, err := s.client.ListCustomerProfiles(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to load profiles: %w", err)
	}
	return profiles, nil
}

// Health computes the compliance health report over all profiles.
func (s *Service) Health(ctx context.Context) (*HealthReport, error) {
	profiles, err := s.Profiles(ctx)
	if err != nil {
		return nil, err
	}

	report := &HealthReport{
		Total:    len(profiles),
		ByStatus: make(map[string]int),
	}
	for _, p := range profiles {
		report.ByStatus[strings.ToLower(p.Status)]++
		switch models.ClassifyStatus(p.Status) {
		case models.StatusGood:
			report.Approved++
		case models.StatusPending:
			report.Pending++
		case models.StatusBad:
			report.Rejected++
		default:
			report.Other++
		}
	}
	if report.Total > 0 {
		report.Score = float64(report.Approved) / float64(report.Total) * 100
	}
	return report, nil
}

// SearchSubaccounts returns subaccounts whose friendly name contains the
// query, each paired with the profiles whose friendly name also matches.
// The comparison is case-insensitive.
func (s *Service) SearchSubaccounts(ctx context.Context, query string) ([]SubaccountMatch, error) {
	accounts, err := s.client.ListAccounts(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	// Profile lookups are best-effort, a broken TrustHub view should not
	// hide the account matches.
	profiles, err := s.client.ListCustomerProfiles(ctx, 0)
	if err != nil {
		logger.Warn("profile listing failed during subaccount search", "error", err)
		profiles = nil
	}

	needle := strings.ToLower(query)
	var matches []SubaccountMatch
	for _, acc := range accounts {
		if !strings.Contains(strings.ToLower(acc.FriendlyName), needle) {
			continue
		}
		match := SubaccountMatch{Account: acc}
		for _, p := range profiles {
			if strings.Contains(strings.ToLower(p.FriendlyName), needle) {
				match.Profiles = append(match.Profiles, p)
			}
		}
		matches = append(matches, match)
	}
	return matches, nil
}

// ProductionGroups buckets production subaccounts by their
// "prod-company-NNN" name prefix. Accounts without the prefix are skipped.
func (s *Service) ProductionGroups(ctx context.Context) ([]ProductionGroup, error) {
	accounts, err := s.client.ListAccounts(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	buckets := make(map[string][]models.Account)
	for _, acc := range accounts {
		prefix := productionPrefix(acc.FriendlyName)
		if prefix == "" {
			continue
		}
		buckets[prefix] = append(buckets[prefix], acc)
	}

	prefixes := make([]string, 0, len(buckets))
	for prefix := range buckets {
		prefixes = append(prefixes, prefix)
	}
	sort.Strings(prefixes)

	groups := make([]ProductionGroup, 0, len(prefixes))
	for _, prefix := range prefixes {
		groups = append(groups, ProductionGroup{Prefix: prefix, Accounts: buckets[prefix]})
	}
	return groups, nil
}

// productionPrefix extracts the "prod-company-NNN" prefix from a friendly
// name, or "" when the name is not a production account name.
func productionPrefix(name string) string {
	lower := strings.ToLower(name)
	if !strings.HasPrefix(lower, "prod-company-") {
		return ""
	}
	rest := lower[len("prod-company-"):]
	digits := 0
	for digits < len(rest) && rest[digits] >= '0' && rest[digits] <= '9' {
		digits++
	}
	if digits == 0 {
		return ""
	}
	return "prod-company-" + rest[:digits]
}

// ExportProfiles writes the flattened profile projection as JSON.
// It returns the number of profiles written.
func (s *Service) ExportProfiles(ctx context.Context, path string) (int, error) {
	profiles, err := s.Profiles(ctx)
	if err != nil {
		return 0, err
	}

	exports := make([]models.ProfileExport, len(profiles))
	for i, p := range profiles {
		exports[i] = models.ProfileExport{
			SID:          p.SID,
			FriendlyName: p.FriendlyName,
			Status:       p.Status,
			Email:        p.Email,
			DateCreated:  p.DateCreated,
			DateUpdated:  p.DateUpdated,
		}
	}

	data, err := json.MarshalIndent(exports, "", "  ")
	if err != nil {
		return 0, fmt.Errorf("failed to encode profiles: %w", err)
	}
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return 0, fmt.Errorf("failed to create export directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return 0, fmt.Errorf("failed to write profile export: %w", err)
	}
	return len(exports), nil
}

// ProfileDetail bundles a profile with its attached resources.
type ProfileDetail struct {
	Profile   models.Profile
	Entities  []models.EntityAssignment
	Endpoints []models.ChannelEndpointAssignment
}

// Detail fetches one profile with its entity and endpoint assignments.
// Assignment listing failures degrade to empty slices.
func (s *Service) Detail(ctx context.Context, sid string) (*ProfileDetail, error) {
	profile, err := s.client.FetchCustomerProfile(ctx, sid)
	if err != nil {
		return nil, err
	}

	detail := &ProfileDetail{Profile: *profile}
	if detail.Entities, err = s.client.ListEntityAssignments(ctx, sid, 0); err != nil {
		logger.Warn("entity assignment listing failed", "sid", sid, "error", err)
		detail.Entities = nil
	}
	if detail.Endpoints, err = s.client.ListChannelEndpointAssignments(ctx, sid, 0); err != nil {
		logger.Warn("endpoint assignment listing failed", "sid", sid, "error", err)
		detail.Endpoints = nil
	}
	return detail, nil
}
