package weather

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"taskboard/internal/core/ports"
)

const (
	defaultBaseURL = "https://api.open-meteo.com/v1/forecast"

	// São Paulo.
	latitude  = "-23.533773"
	longitude = "-46.625290"

	currentFields = "temperature_2m,relative_humidity_2m,rain,weather_code"

	requestTimeout = 10 * time.Second
)

// OpenMeteoGateway calls the Open-Meteo forecast endpoint for a fixed
// location and relays the upstream JSON body verbatim. One attempt per
// call; a slow or failing upstream makes the call fail, never retry.
type OpenMeteoGateway struct {
	baseURL string
	client  *http.Client
}

var _ ports.WeatherGateway = (*OpenMeteoGateway)(nil)

func NewOpenMeteoGateway(client *http.Client) *OpenMeteoGateway {
	if client == nil {
		client = &http.Client{Timeout: requestTimeout}
	}

	return &OpenMeteoGateway{
		baseURL: defaultBaseURL,
		client:  client,
	}
}

func (g *OpenMeteoGateway) CurrentConditions(ctx context.Context) ([]byte, error) {
	values := url.Values{}
	values.Set("latitude", latitude)
	values.Set("longitude", longitude)
	values.Set("current", currentFields)

	u := fmt.Sprintf("%s?%s", g.baseURL, values.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request weather provider: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("weather provider returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read weather provider response: %w", err)
	}

	return body, nil
}
