package twilio

import (
	"context"
	"fmt"

	"github.com/Mark0025/Twilio-tools/internal/models"
)

type brandsPage struct {
	Data []models.Brand `json:"data"`
}

type campaignsPage struct {
	Data []models.Campaign `json:"data"`
}

type servicesPage struct {
	Services []models.MessagingService `json:"services"`
}

// ListBrands returns A2P brand registrations, up to limit.
func (c *Client) ListBrands(ctx context.Context, limit int) ([]models.Brand, error) {
	var page brandsPage
	url := c.listURL(c.messagingBase, "/v1/a2p/BrandRegistrations", limit)
	if err := c.doJSON(ctx, "GET", url, &page); err != nil {
		return nil, fmt.Errorf("failed to list brand registrations: %w", err)
	}
	return page.Data, nil
}

// ListCampaigns returns A2P campaign registrations, up to limit.
func (c *Client) ListCampaigns(ctx context.Context, limit int) ([]models.Campaign, error) {
	var page campaignsPage
	url := c.listURL(c.messagingBase, "/v1/a2p/Campaigns", limit)
	if err := c.doJSON(ctx, "GET", url, &page); err != nil {
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}
	return page.Data, nil
}

// ListMessagingServices returns messaging services, up to limit.
func (c *Client) ListMessagingServices(ctx context.Context, limit int) ([]models.MessagingService, error) {
	var page servicesPage
	url := c.listURL(c.messagingBase, "/v1/Services", limit)
	if err := c.doJSON(ctx, "GET", url, &page); err != nil {
		return nil, fmt.Errorf("failed to list messaging services: %w", err)
	}
	return page.Services, nil
}
