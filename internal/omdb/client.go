// Package omdb implements the movie metadata lookup against the OMDb API.
// The API answers HTTP 200 for misses and signals them in the body, so the
// client turns Response=="False" into ErrMovieNotFound; every other failure
// class (transport, status, decode) surfaces as an ordinary error.
package omdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const defaultBaseURL = "https://www.omdbapi.com/"

// ErrMovieNotFound is the clean miss: the service answered but knows no
// movie with the given title.
var ErrMovieNotFound = errors.New("movie not found")

// Result carries the fields consumed by the add-movie flow. Values are kept
// in the source's string form; the caller decides how to interpret them.
type Result struct {
	Title      string `json:"Title"`
	Year       string `json:"Year"`
	ImdbRating string `json:"imdbRating"`
	Poster     string `json:"Poster"`
}

type Client struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewClient constructs a Client. baseURL may be empty to use the real
// service; tests point it at a local httptest server.
func NewClient(apiKey, baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// Fetch looks up a movie by exact title.
func (c *Client) Fetch(ctx context.Context, title string) (*Result, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, err
	}
	q := u.Query()
	q.Set("apikey", c.apiKey)
	q.Set("t", title)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("omdb returned %d", resp.StatusCode)
	}

	var body struct {
		Result
		Response string `json:"Response"`
		Error    string `json:"Error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}
	if body.Response == "False" {
		return nil, ErrMovieNotFound
	}
	return &body.Result, nil
}
