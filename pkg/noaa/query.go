package noaa

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

const (
	DefaultBaseURL = "https://api.tidesandcurrents.noaa.gov/api/prod/datagetter"
	TIME_FMT       = "20060102"
)

// Client fetches predictions from a datagetter endpoint. The zero value talks
// to NOAA with http.DefaultClient.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// GetPredictions fetches the hi/lo predictions q asks for. Predictions carry
// the location of q.Start.
func (c *Client) GetPredictions(ctx context.Context, q *PredictionQuery) (Predictions, error) {
	var result Result

	addr, err := q.urlFrom(c.baseURL())
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to query NOAA: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("NOAA answered %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode predictions: %w", err)
	}
	if result.Error != nil {
		return nil, fmt.Errorf("NOAA error for station %s: %s", q.Station, result.Error.Message)
	}

	return result.Predictions.In(q.Start.Location()), nil
}

func (c *Client) baseURL() string {
	if c == nil || c.BaseURL == "" {
		return DefaultBaseURL
	}
	return c.BaseURL
}

func (c *Client) httpClient() *http.Client {
	if c == nil || c.HTTP == nil {
		return http.DefaultClient
	}
	return c.HTTP
}

func (q *PredictionQuery) url() *url.URL {
	addr, _ := q.urlFrom(DefaultBaseURL)
	return addr
}

func (q *PredictionQuery) urlFrom(base string) (*url.URL, error) {
	addr, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("bad base url %q: %w", base, err)
	}
	addr.RawQuery = q.build().Encode()
	return addr, nil
}

func (q *PredictionQuery) build() url.Values {
	vals := make(url.Values)
	vals.Add("begin_date", q.Start.Format(TIME_FMT))
	vals.Add("end_date", q.End().Format(TIME_FMT))
	vals.Add("station", q.Station.String())
	vals.Add("product", "predictions")
	vals.Add("datum", "MLLW")
	vals.Add("time_zone", "lst_ldt")
	vals.Add("interval", "hilo")
	vals.Add("units", "english")
	vals.Add("format", "json")
	return vals
}
