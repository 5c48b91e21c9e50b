// Package rates serves the site's live gold-rate widget: it proxies the
// third-party metal-price API, converts the per-ounce quote to the requested
// trade unit, and caches the upstream quote so a polling widget does not
// hammer the paid API.
package rates

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
)

// Conversion constants for a troy-ounce quote.
const (
	GramsPerTroyOunce = 31.1034768
	GramsPerTola      = 11.6638038
)

// Unit is a weight unit gold is traded in locally.
type Unit string

const (
	UnitOunce    Unit = "ounce"
	UnitGram     Unit = "gram"
	UnitTola     Unit = "tola"
	UnitKilogram Unit = "kilogram"
)

// ErrUnknownUnit is returned for units the converter does not know.
var ErrUnknownUnit = errors.New("unknown weight unit")

// Rate is a spot price converted to a specific unit.
type Rate struct {
	Metal     string    `json:"metal"`
	Unit      Unit      `json:"unit"`
	Price     float64   `json:"price"`
	Currency  string    `json:"currency"`
	FetchedAt time.Time `json:"fetchedAt"`
}

// Convert turns a per-troy-ounce price into a per-unit price.
func Convert(pricePerOunce float64, unit Unit) (float64, error) {
	switch unit {
	case UnitOunce:
		return pricePerOunce, nil
	case UnitGram:
		return pricePerOunce / GramsPerTroyOunce, nil
	case UnitTola:
		return pricePerOunce / GramsPerTroyOunce * GramsPerTola, nil
	case UnitKilogram:
		return pricePerOunce / GramsPerTroyOunce * 1000, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownUnit, unit)
	}
}

// Service answers rate lookups from cache when possible and from the
// upstream API otherwise.
type Service struct {
	client *Client
	cache  *Cache
	ttl    time.Duration
}

func NewService(client *Client, cache *Cache, ttl time.Duration) *Service {
	return &Service{client: client, cache: cache, ttl: ttl}
}

// GoldRate returns the current gold spot price in the requested unit.
func (s *Service) GoldRate(ctx context.Context, unit Unit) (Rate, error) {
	quote, err := s.spot(ctx, "XAU")
	if err != nil {
		return Rate{}, err
	}

	price, err := Convert(quote.Price, unit)
	if err != nil {
		return Rate{}, err
	}

	return Rate{
		Metal:     quote.Metal,
		Unit:      unit,
		Price:     price,
		Currency:  quote.Currency,
		FetchedAt: quote.FetchedAt,
	}, nil
}

func (s *Service) spot(ctx context.Context, metal string) (Quote, error) {
	key := "rates:" + metal + ":USD"

	if cached := s.cache.Get(ctx, key); cached != nil {
		var quote Quote
		if err := json.Unmarshal(cached, &quote); err == nil {
			return quote, nil
		}
		log.WithField("key", key).Warn("Discarding undecodable cached quote")
	}

	quote, err := s.client.FetchSpot(ctx, metal)
	if err != nil {
		return Quote{}, err
	}

	if encoded, err := json.Marshal(quote); err == nil {
		s.cache.Set(ctx, key, encoded, s.ttl)
	}
	return quote, nil
}
