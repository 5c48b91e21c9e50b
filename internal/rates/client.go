package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Quote is an upstream spot price: one metal against one currency, quoted
// per troy ounce.
type Quote struct {
	Metal     string    `json:"metal"`
	Price     float64   `json:"price"`
	Currency  string    `json:"currency"`
	FetchedAt time.Time `json:"fetchedAt"`
}

// Client fetches spot prices from the configured metal-price API.
// The API serves GET {base}/{METAL}/{CURRENCY} with the key in the
// x-access-token header and responds with a JSON body carrying "price".
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// FetchSpot retrieves the current spot price of a metal symbol (e.g. "XAU")
// in USD per troy ounce.
func (c *Client) FetchSpot(ctx context.Context, metal string) (Quote, error) {
	url := fmt.Sprintf("%s/%s/USD", c.baseURL, metal)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Quote{}, err
	}
	req.Header.Set("x-access-token", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return Quote{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Quote{}, fmt.Errorf("metal-price API returned status %d", resp.StatusCode)
	}

	var body struct {
		Price    float64 `json:"price"`
		Currency string  `json:"currency"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Quote{}, fmt.Errorf("decoding metal-price response: %w", err)
	}
	if body.Price <= 0 {
		return Quote{}, fmt.Errorf("metal-price API returned non-positive price %f", body.Price)
	}

	currency := body.Currency
	if currency == "" {
		currency = "USD"
	}

	return Quote{
		Metal:     metal,
		Price:     body.Price,
		Currency:  currency,
		FetchedAt: time.Now().UTC(),
	}, nil
}
