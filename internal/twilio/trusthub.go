package twilio

import (
	"context"
	"fmt"

	"github.com/Mark0025/Twilio-tools/internal/models"
)

// trustHubPage is the list response shape shared by TrustHub v1 endpoints.
type trustHubPage[T any] struct {
	Results []T `json:"results"`
}

// ListCustomerProfiles returns TrustHub customer profiles, up to limit.
func (c *Client) ListCustomerProfiles(ctx context.Context, limit int) ([]models.Profile, error) {
	var page trustHubPage[models.Profile]
	url := c.listURL(c.trustHubBase, "/v1/CustomerProfiles", limit)
	if err := c.doJSON(ctx, "GET", url, &page); err != nil {
		return nil, fmt.Errorf("failed to list customer profiles: %w", err)
	}
	return page.Results, nil
}

// FetchCustomerProfile fetches a single customer profile by SID.
func (c *Client) FetchCustomerProfile(ctx context.Context, sid string) (*models.Profile, error) {
	var profile models.Profile
	url := c.trustHubBase + "/v1/CustomerProfiles/" + sid
	if err := c.doJSON(ctx, "GET", url, &profile); err != nil {
		return nil, fmt.Errorf("failed to fetch customer profile %s: %w", sid, err)
	}
	return &profile, nil
}

// DeleteCustomerProfile permanently deletes a customer profile.
func (c *Client) DeleteCustomerProfile(ctx context.Context, sid string) error {
	url := c.trustHubBase + "/v1/CustomerProfiles/" + sid
	if err := c.doJSON(ctx, "DELETE", url, nil); err != nil {
		return fmt.Errorf("failed to delete customer profile %s: %w", sid, err)
	}
	return nil
}

// ListEntityAssignments returns the supporting objects attached to a profile.
func (c *Client) ListEntityAssignments(ctx context.Context, profileSID string, limit int) ([]models.EntityAssignment, error) {
	var page trustHubPage[models.EntityAssignment]
	url := c.listURL(c.trustHubBase, "/v1/CustomerProfiles/"+profileSID+"/EntityAssignments", limit)
	if err := c.doJSON(ctx, "GET", url, &page); err != nil {
		return nil, fmt.Errorf("failed to list entity assignments: %w", err)
	}
	return page.Results, nil
}

// ListChannelEndpointAssignments returns the channel endpoints attached to a profile.
func (c *Client) ListChannelEndpointAssignments(ctx context.Context, profileSID string, limit int) ([]models.ChannelEndpointAssignment, error) {
	var page trustHubPage[models.ChannelEndpointAssignment]
	url := c.listURL(c.trustHubBase, "/v1/CustomerProfiles/"+profileSID+"/ChannelEndpointAssignments", limit)
	if err := c.doJSON(ctx, "GET", url, &page); err != nil {
		return nil, fmt.Errorf("failed to list channel endpoint assignments: %w", err)
	}
	return page.Results, nil
}
