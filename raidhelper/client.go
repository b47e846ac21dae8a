// Package raidhelper is the HTTP client for the Raid-Helper events API.
package raidhelper

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"raidwatch/domain"
	apperrors "raidwatch/errors"
)

const DefaultBaseURL = "https://raid-helper.dev"

var validate = validator.New()

type Client struct {
	log        *slog.Logger
	httpClient *http.Client
	baseURL    string
}

func NewClient(log *slog.Logger, httpClient *http.Client, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{log: log, httpClient: httpClient, baseURL: baseURL}
}

// FetchEvent performs exactly one GET against the events endpoint.
// A non-200 status maps to ErrEventNotFound; a sign-up entry missing a
// required field maps to ErrMalformedRecord. No retries, no caching.
func (c *Client) FetchEvent(ctx context.Context, eventID string) (domain.Event, error) {
	url := fmt.Sprintf("%s/api/v2/events/%s", c.baseURL, eventID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return domain.Event{}, fmt.Errorf("building request for event %s: %w", eventID, err)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.Event{}, fmt.Errorf("fetching event %s: %w", eventID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Warn("Raid-Helper returned non-200", "event_id", eventID, "status", resp.StatusCode)
		return domain.Event{}, fmt.Errorf("event %s: %w", eventID, apperrors.ErrEventNotFound)
	}

	var event domain.Event
	if err := json.NewDecoder(resp.Body).Decode(&event); err != nil {
		return domain.Event{}, fmt.Errorf("decoding event %s: %w", eventID, err)
	}

	for i, signUp := range event.SignUps {
		if err := validate.Struct(signUp); err != nil {
			return domain.Event{}, fmt.Errorf("event %s, signup #%d: %w", eventID, i, apperrors.ErrMalformedRecord)
		}
	}

	c.log.Debug("Fetched event",
		"event_id", eventID,
		"signups", len(event.SignUps),
		"duration", time.Since(start),
	)
	return event, nil
}
