package mapbox

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/NBR-24/PothuHole/pkg/services/geocode"
)

const defaultBaseURL = "https://api.mapbox.com/geocoding/v5/mapbox.places"

// Client implements geocode.Geocoder using the Mapbox Geocoding API.
type Client struct {
	token      string
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a Mapbox geocoding client.
func NewClient(token string, timeout time.Duration) *Client {
	return &Client{
		token: token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: defaultBaseURL,
	}
}

// ReverseGeocode converts coordinates to a district and formatted address.
// An empty Result with a nil error means Mapbox has no feature there.
func (c *Client) ReverseGeocode(ctx context.Context, lat, lng float64) (geocode.Result, error) {
	// Mapbox uses lon,lat order.
	coord := fmt.Sprintf("%.6f,%.6f", lng, lat)
	params := url.Values{
		"access_token": {c.token},
		"limit":        {"1"},
		"types":        {"address,place,locality,district"},
	}
	fullURL := fmt.Sprintf("%s/%s.json?%s", c.baseURL, coord, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return geocode.Result{}, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return geocode.Result{}, fmt.Errorf("reverse geocode request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return geocode.Result{}, fmt.Errorf("mapbox API error: status %d: %s", resp.StatusCode, body)
	}

	var mapboxResp response
	if err := json.NewDecoder(resp.Body).Decode(&mapboxResp); err != nil {
		return geocode.Result{}, fmt.Errorf("decode response: %w", err)
	}

	if len(mapboxResp.Features) == 0 {
		zerolog.Ctx(ctx).Debug().
			Float64("lat", lat).
			Float64("lng", lng).
			Msg("no mapbox feature for coordinates")
		return geocode.Result{}, nil
	}

	f := mapboxResp.Features[0]
	return geocode.Result{
		District:         f.district(),
		FormattedAddress: f.PlaceName,
		Confidence:       f.Relevance,
	}, nil
}

// Mapbox API response types.

type response struct {
	Features []feature `json:"features"`
}

type feature struct {
	ID        string        `json:"id"`
	Text      string        `json:"text"`
	PlaceName string        `json:"place_name"`
	Relevance float64       `json:"relevance"`
	Context   []contextItem `json:"context"`
}

type contextItem struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// district walks the feature and its context for the most specific
// administrative area, preferring "district" over "place" over "locality".
func (f feature) district() string {
	if strings.HasPrefix(f.ID, "district.") {
		return f.Text
	}
	for _, prefix := range []string{"district.", "place.", "locality."} {
		for _, c := range f.Context {
			if strings.HasPrefix(c.ID, prefix) {
				return c.Text
			}
		}
	}
	return ""
}
