package api

import (
	"fmt"
	"time"

	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
	"github.com/piquette/finance-go/quote"
	"github.com/shopspring/decimal"
)

// Bar is one OHLCV candle.
type Bar struct {
	Date   string          `json:"date"`
	Open   decimal.Decimal `json:"open"`
	High   decimal.Decimal `json:"high"`
	Low    decimal.Decimal `json:"low"`
	Close  decimal.Decimal `json:"close"`
	Volume int             `json:"volume"`
}

// StockData is a live-price snapshot plus price history for one ticker.
type StockData struct {
	CurrentPrice     float64 `json:"currentPrice"`
	PreviousDayClose float64 `json:"previousDayClose"`
	History          []Bar   `json:"history"`
}

// DataProvider supplies quote and OHLCV data keyed by ticker. The matching
// core has no opinion on the provider beyond the ticker string being a
// stable join key.
type DataProvider interface {
	Fetch(ticker, period string) (*StockData, error)
}

// YahooProvider fetches from Yahoo Finance via finance-go.
type YahooProvider struct{}

func (YahooProvider) Fetch(ticker, period string) (*StockData, error) {
	q, err := quote.Get(ticker)
	if err != nil {
		return nil, fmt.Errorf("quote %s: %w", ticker, err)
	}
	if q == nil {
		return nil, fmt.Errorf("quote %s: no data", ticker)
	}

	now := time.Now()
	lookback, interval := periodParams(period, now)
	start := now.Add(-lookback)

	iter := chart.Get(&chart.Params{
		Symbol:   ticker,
		Start:    datetime.New(&start),
		End:      datetime.New(&now),
		Interval: interval,
	})

	var history []Bar
	for iter.Next() {
		b := iter.Bar()
		history = append(history, Bar{
			Date:   time.Unix(int64(b.Timestamp), 0).UTC().Format(time.RFC3339),
			Open:   b.Open,
			High:   b.High,
			Low:    b.Low,
			Close:  b.Close,
			Volume: b.Volume,
		})
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("chart %s: %w", ticker, err)
	}

	return &StockData{
		CurrentPrice:     q.RegularMarketPrice,
		PreviousDayClose: q.RegularMarketPreviousClose,
		History:          history,
	}, nil
}

// periodParams maps a UI period tag to a lookback window and bar interval.
func periodParams(period string, now time.Time) (time.Duration, datetime.Interval) {
	switch period {
	case "1D":
		return 24 * time.Hour, datetime.FiveMins
	case "1W":
		return 7 * 24 * time.Hour, datetime.FiveMins
	case "1M":
		return 30 * 24 * time.Hour, datetime.ThirtyMins
	case "6M":
		return 182 * 24 * time.Hour, datetime.OneDay
	case "1Y":
		return 365 * 24 * time.Hour, datetime.OneDay
	case "YTD":
		yearStart := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())
		return now.Sub(yearStart), datetime.OneDay
	case "5Y":
		return 5 * 365 * 24 * time.Hour, datetime.FiveDay
	default:
		return 24 * time.Hour, datetime.FiveMins
	}
}
