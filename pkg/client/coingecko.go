package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"go.uber.org/zap"
)

// ErrCoinNotFound is returned when a coin search yields no matches.
var ErrCoinNotFound = fmt.Errorf("cryptocurrency not found")

type CoinGeckoClient struct {
	*BaseClient
	baseURL string
}

// CoinQuote is a single coin's USD market data.
type CoinQuote struct {
	ID        string
	Name      string
	Symbol    string
	PriceUSD  float64
	MarketCap float64
	Volume24h float64
	Change24h float64
}

func NewCoinGeckoClient(config ClientConfig, logger *zap.Logger) *CoinGeckoClient {
	baseClient := NewBaseClient("coingecko", config, logger)
	return &CoinGeckoClient{
		BaseClient: baseClient,
		baseURL:    "https://api.coingecko.com/api/v3",
	}
}

type coinSearchResponse struct {
	Coins []struct {
		ID     string `json:"id"`
		Name   string `json:"name"`
		Symbol string `json:"symbol"`
	} `json:"coins"`
}

type simplePriceEntry struct {
	USD          float64  `json:"usd"`
	USDMarketCap *float64 `json:"usd_market_cap"`
	USD24hVol    *float64 `json:"usd_24h_vol"`
	USD24hChange *float64 `json:"usd_24h_change"`
}

// Quote searches for a coin by name or symbol and fetches its USD market
// data. The most relevant search result wins.
func (c *CoinGeckoClient) Quote(ctx context.Context, query string) (*CoinQuote, error) {
	searchURL := fmt.Sprintf("%s/search?query=%s", c.baseURL, url.QueryEscape(query))

	data, err := c.GetWithRetry(ctx, searchURL)
	if err != nil {
		return nil, fmt.Errorf("searching coin %q: %w", query, err)
	}

	var search coinSearchResponse
	if err := json.Unmarshal(data, &search); err != nil {
		return nil, fmt.Errorf("parsing coin search response: %w", err)
	}
	if len(search.Coins) == 0 {
		return nil, ErrCoinNotFound
	}

	match := search.Coins[0]
	priceURL := fmt.Sprintf("%s/simple/price?ids=%s&vs_currencies=usd&include_market_cap=true&include_24hr_vol=true&include_24hr_change=true",
		c.baseURL, url.QueryEscape(match.ID))

	data, err = c.GetWithRetry(ctx, priceURL)
	if err != nil {
		return nil, fmt.Errorf("fetching price for %q: %w", match.ID, err)
	}

	var prices map[string]simplePriceEntry
	if err := json.Unmarshal(data, &prices); err != nil {
		return nil, fmt.Errorf("parsing price response: %w", err)
	}
	entry, ok := prices[match.ID]
	if !ok {
		return nil, fmt.Errorf("no price data for %q", match.ID)
	}

	quote := &CoinQuote{
		ID:       match.ID,
		Name:     match.Name,
		Symbol:   match.Symbol,
		PriceUSD: entry.USD,
	}
	if entry.USDMarketCap != nil {
		quote.MarketCap = *entry.USDMarketCap
	}
	if entry.USD24hVol != nil {
		quote.Volume24h = *entry.USD24hVol
	}
	if entry.USD24hChange != nil {
		quote.Change24h = *entry.USD24hChange
	}
	return quote, nil
}
