package twilio

import (
	"context"
	"fmt"

	"github.com/Mark0025/Twilio-tools/internal/models"
)

// accountsPage is the list response for the accounts endpoint.
type accountsPage struct {
	Accounts []models.Account `json:"accounts"`
}

// ListAccounts returns the main account and its subaccounts, up to limit.
func (c *Client) ListAccounts(ctx context.Context, limit int) ([]models.Account, error) {
	var page accountsPage
	url := c.listURL(c.apiBase, "/2010-04-01/Accounts.json", limit)
	if err := c.doJSON(ctx, "GET", url, &page); err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return page.Accounts, nil
}
