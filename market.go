package fundpool

import (
	"iter"
	"sort"

	"github.com/shopspring/decimal"
)

// MarketData holds the historical price facts for a set of tickers and the
// USD/TWD exchange rate series. It answers as-of lookups: the most recent
// known fact on or before a query date.
type MarketData struct {
	prices map[string]*History[decimal.Decimal]
	rates  History[decimal.Decimal]
}

// NewMarketData returns a new empty market data collection.
func NewMarketData() *MarketData {
	return &MarketData{prices: make(map[string]*History[decimal.Decimal])}
}

// Has reports whether any price fact exists for the ticker.
func (m *MarketData) Has(ticker string) bool {
	_, ok := m.prices[ticker]
	return ok
}

// AppendPrice records a closing price fact. A duplicate (ticker, date) fact
// overwrites the previous one.
func (m *MarketData) AppendPrice(ticker string, on Date, close decimal.Decimal) {
	h, ok := m.prices[ticker]
	if !ok {
		h = &History[decimal.Decimal]{}
		m.prices[ticker] = h
	}
	h.Append(on, close)
}

// AppendRate records a USD/TWD rate fact.
func (m *MarketData) AppendRate(on Date, rate decimal.Decimal) {
	m.rates.Append(on, rate)
}

// PriceAsOf returns the most recent closing price for the ticker on or before
// 'on'. The price is in the ticker's native currency. false means unknown,
// which callers treat as "value the position at cost", never as zero.
func (m *MarketData) PriceAsOf(ticker string, on Date) (decimal.Decimal, bool) {
	h, ok := m.prices[ticker]
	if !ok {
		return decimal.Decimal{}, false
	}
	return h.ValueAsOf(on)
}

// RateAsOf returns the most recent USD/TWD rate on or before 'on'.
func (m *MarketData) RateAsOf(on Date) (decimal.Decimal, bool) {
	return m.rates.ValueAsOf(on)
}

// Tickers returns the sorted set of tickers with at least one price fact.
func (m *MarketData) Tickers() []string {
	tickers := make([]string, 0, len(m.prices))
	for t := range m.prices {
		tickers = append(tickers, t)
	}
	sort.Strings(tickers)
	return tickers
}

// PriceDates iterates over every (ticker, date) price fact, ticker by ticker
// in sorted order. The time-series axis is built from these.
func (m *MarketData) PriceDates() iter.Seq[Date] {
	return func(yield func(Date) bool) {
		for _, t := range m.Tickers() {
			for on := range m.prices[t].Values() {
				if !yield(on) {
					return
				}
			}
		}
	}
}
