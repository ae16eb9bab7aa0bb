package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/tommeech/ecommerce-dashboard/pkg/config"
)

// maxErrorBody bounds how much of a failed upstream body is kept for logs.
const maxErrorBody = 512

var ErrInvalidResponse = errors.New("weather api returned invalid JSON")

// StatusError is returned when the archive API answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("weather api returned status %d: %s", e.StatusCode, e.Body)
}

// Client queries the Open-Meteo historical archive for a fixed location.
type Client struct {
	httpClient *http.Client
	cfg        config.WeatherConfig
}

func NewClient(cfg config.WeatherConfig) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		cfg:        cfg,
	}
}

// DailyArchive fetches the configured daily variable between start and end
// (inclusive, YYYY-MM-DD) and returns the response body untouched.
func (c *Client) DailyArchive(ctx context.Context, start, end string) (json.RawMessage, error) {
	endpoint, err := url.Parse(c.cfg.APIURL)
	if err != nil {
		return nil, fmt.Errorf("invalid weather api url: %w", err)
	}

	q := endpoint.Query()
	q.Set("latitude", strconv.FormatFloat(c.cfg.Latitude, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(c.cfg.Longitude, 'f', -1, 64))
	q.Set("start_date", start)
	q.Set("end_date", end)
	q.Set("daily", c.cfg.Daily)
	q.Set("timezone", c.cfg.Timezone)
	endpoint.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build weather request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("weather request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read weather response: %w", err)
	}
	if !json.Valid(body) {
		return nil, ErrInvalidResponse
	}
	return body, nil
}
