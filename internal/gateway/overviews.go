package gateway

import (
	"context"
	"net/url"

	"github.com/Sharma7422/fintrack/internal/model"
)

// DashboardOverview fetches the home-page summary.
func (c *Client) DashboardOverview(ctx context.Context) (*model.DashboardOverview, error) {
	var overview model.DashboardOverview
	if err := c.get(ctx, "/dashboard/overview", nil, &overview); err != nil {
		return nil, err
	}
	return &overview, nil
}

// AnalyticsOverview fetches the analytics-page chart series.
func (c *Client) AnalyticsOverview(ctx context.Context) (*model.AnalyticsOverview, error) {
	var overview model.AnalyticsOverview
	if err := c.get(ctx, "/analytics/analytics-overview", nil, &overview); err != nil {
		return nil, err
	}
	return &overview, nil
}

// InsightsOverview fetches the insights payload for one period
// (e.g. "monthly", "weekly").
func (c *Client) InsightsOverview(ctx context.Context, period string) (*model.InsightsOverview, error) {
	params := url.Values{}
	if period != "" {
		params.Set("period", period)
	}
	var overview model.InsightsOverview
	if err := c.get(ctx, "/insights/insights-overview", params, &overview); err != nil {
		return nil, err
	}
	return &overview, nil
}
