package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"fleetwatch/pkg/models"
)

// Client talks to the external telemetry/ML backend. The backend owns all
// detection and persistence; this client only fetches and decodes.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request %s: %w", path, err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fetch %s: unexpected status %d", path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

func (c *Client) Overview(ctx context.Context) ([]models.SensorSnapshot, error) {
	var overview []models.SensorSnapshot
	if err := c.getJSON(ctx, "/api/data/machines/overview", &overview); err != nil {
		return nil, err
	}
	return overview, nil
}

func (c *Client) Stats(ctx context.Context) (*models.DashboardStats, error) {
	var stats models.DashboardStats
	if err := c.getJSON(ctx, "/api/data/dashboard/stats", &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *Client) Tickets(ctx context.Context) ([]models.Ticket, error) {
	var tickets []models.Ticket
	if err := c.getJSON(ctx, "/api/data/tickets", &tickets); err != nil {
		return nil, err
	}
	return tickets, nil
}

func (c *Client) LiveSensor(ctx context.Context, machineID string) (*models.SensorSnapshot, error) {
	var snapshot models.SensorSnapshot
	path := fmt.Sprintf("/api/data/machines/%s/live_sensor", machineID)
	if err := c.getJSON(ctx, path, &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

// Asset fetches the static asset record for one machine. The record is opaque
// to this service and passed through untouched.
func (c *Client) Asset(ctx context.Context, machineID string) (json.RawMessage, error) {
	var asset json.RawMessage
	path := fmt.Sprintf("/api/admin/assets/%s", machineID)
	if err := c.getJSON(ctx, path, &asset); err != nil {
		return nil, err
	}
	return asset, nil
}
