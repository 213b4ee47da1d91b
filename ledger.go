package fundpool

import (
	"fmt"
	"iter"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// Market identifies the trading convention of an investment.
type Market string

const (
	// MarketTW is the lot-based Taiwanese market: one recorded unit is a lot
	// of 1000 shares, prices and fees are already in TWD.
	MarketTW Market = "TW"
	// MarketUS is the share-based US market: units are shares, prices are in
	// USD and the USD/TWD rate applies.
	MarketUS Market = "US"
)

// LotSize is the number of shares in one TW-market unit.
const LotSize = 1000

// Currency returns the currency in which this market quotes prices.
func (m Market) Currency() string {
	if m == MarketUS {
		return USD
	}
	return TWD
}

// ParseMarket parses a market code.
func ParseMarket(s string) (Market, error) {
	switch Market(strings.ToUpper(strings.TrimSpace(s))) {
	case MarketTW:
		return MarketTW, nil
	case MarketUS:
		return MarketUS, nil
	default:
		return "", fmt.Errorf("unknown market %q", s)
	}
}

// Unclassified is the sentinel group for investments without free-text tags
// and for tickers untagged in a dimension. It is injected at aggregation time
// and never persisted.
const Unclassified = "unclassified"

// Batch is one discrete capital-deployment event grouping funding sources and
// investments made together.
type Batch struct {
	ID   string
	Date Date
	Memo string
}

// FundingSource is a named contributor's cash injection into one batch, in TWD.
// The same name may appear in any number of batches.
type FundingSource struct {
	BatchID string
	Name    string
	Amount  Money
}

// Investment is a single purchase recorded in the pool ledger.
type Investment struct {
	ID           string
	BatchID      string
	Ticker       string
	Name         string
	Market       Market
	Date         Date
	Units        Quantity
	PricePerUnit Money    // in the market's native currency
	ExchangeRate Quantity // USD/TWD rate at trade time, 1 for TW assets
	Fees         Money    // in TWD
	Tags         string   // free-text, comma separated
}

// TagList splits the free-text tag list, trimming blanks. An untagged
// investment yields the single Unclassified tag.
func (v Investment) TagList() []string {
	var tags []string
	for _, t := range strings.Split(v.Tags, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	if len(tags) == 0 {
		return []string{Unclassified}
	}
	return tags
}

// PriceRecord is a single closing price for a ticker on a given date, in the
// ticker's native currency.
type PriceRecord struct {
	Ticker string
	Date   Date
	Close  decimal.Decimal
}

// ExchangeRate is the USD/TWD rate on a given date.
type ExchangeRate struct {
	Date Date
	Rate decimal.Decimal
}

// TickerTag assigns a ticker to one tag within a named classification
// dimension. A ticker carries at most one tag per dimension.
type TickerTag struct {
	Ticker    string
	Dimension string
	Tag       string
}

// Ledger is an immutable snapshot of the pool: the six externally-owned
// collections plus the indexes the engine queries. All reports are pure
// functions of a Ledger and a date or date range.
type Ledger struct {
	batches     []Batch
	sources     []FundingSource
	investments []Investment
	tags        []TickerTag

	market     *MarketData
	batchIndex map[string]Batch
	byBatch    map[string][]Investment // investment index, preserving input order
}

// NewLedger assembles a snapshot from the six input collections. Collections
// are copied defensively, batches sorted by date then ID, investments by
// trade date then ID, and prices/rates folded into a MarketData.
func NewLedger(batches []Batch, sources []FundingSource, investments []Investment, prices []PriceRecord, rates []ExchangeRate, tags []TickerTag) *Ledger {
	l := &Ledger{
		batches:     append([]Batch(nil), batches...),
		sources:     append([]FundingSource(nil), sources...),
		investments: append([]Investment(nil), investments...),
		tags:        append([]TickerTag(nil), tags...),
		market:      NewMarketData(),
		batchIndex:  make(map[string]Batch, len(batches)),
		byBatch:     make(map[string][]Investment, len(batches)),
	}
	sort.SliceStable(l.batches, func(i, j int) bool {
		if l.batches[i].Date != l.batches[j].Date {
			return l.batches[i].Date.Before(l.batches[j].Date)
		}
		return l.batches[i].ID < l.batches[j].ID
	})
	sort.SliceStable(l.investments, func(i, j int) bool {
		if l.investments[i].Date != l.investments[j].Date {
			return l.investments[i].Date.Before(l.investments[j].Date)
		}
		return l.investments[i].ID < l.investments[j].ID
	})
	for _, b := range l.batches {
		l.batchIndex[b.ID] = b
	}
	for _, v := range l.investments {
		l.byBatch[v.BatchID] = append(l.byBatch[v.BatchID], v)
	}
	for _, p := range prices {
		l.market.AppendPrice(p.Ticker, p.Date, p.Close)
	}
	for _, r := range rates {
		l.market.AppendRate(r.Date, r.Rate)
	}
	return l
}

// Market returns the historical price and rate facts of the snapshot.
func (l *Ledger) Market() *MarketData { return l.market }

// Batches iterates over all batches in chronological order.
func (l *Ledger) Batches() iter.Seq[Batch] {
	return func(yield func(Batch) bool) {
		for _, b := range l.batches {
			if !yield(b) {
				return
			}
		}
	}
}

// Investments iterates over all investments in chronological order.
func (l *Ledger) Investments() iter.Seq[Investment] {
	return func(yield func(Investment) bool) {
		for _, v := range l.investments {
			if !yield(v) {
				return
			}
		}
	}
}

// Sources iterates over all funding sources in input order.
func (l *Ledger) Sources() iter.Seq[FundingSource] {
	return func(yield func(FundingSource) bool) {
		for _, s := range l.sources {
			if !yield(s) {
				return
			}
		}
	}
}

// Batch returns the batch with that ID. When the ID is unresolved it returns
// a zero-dated batch carrying only the ID: queries degrade gracefully instead
// of failing, see Validate for the fail-fast alternative.
func (l *Ledger) Batch(id string) Batch {
	if b, ok := l.batchIndex[id]; ok {
		return b
	}
	return Batch{ID: id}
}

// BatchInvestments returns the investments financed by one batch, in input order.
func (l *Ledger) BatchInvestments(id string) []Investment { return l.byBatch[id] }

// DimensionTag returns the tag of a ticker in the named dimension, or
// Unclassified when the ticker is untagged there.
func (l *Ledger) DimensionTag(dimension, ticker string) string {
	for _, t := range l.tags {
		if t.Dimension == dimension && t.Ticker == ticker {
			return t.Tag
		}
	}
	return Unclassified
}

// Dimensions returns the sorted set of classification dimension names present
// in the snapshot.
func (l *Ledger) Dimensions() []string {
	seen := make(map[string]bool)
	var dims []string
	for _, t := range l.tags {
		if !seen[t.Dimension] {
			seen[t.Dimension] = true
			dims = append(dims, t.Dimension)
		}
	}
	sort.Strings(dims)
	return dims
}

// earliestDate returns the first trade date, or zero when there are no
// investments.
func (l *Ledger) earliestDate() Date {
	if len(l.investments) == 0 {
		return Date{}
	}
	return l.investments[0].Date
}

// Validate checks the referential integrity of the snapshot: every investment
// and funding source must reference an existing batch, and every market code
// must be known. The engine itself tolerates these defects (unresolved batches
// read as empty), Validate is for callers that prefer to fail fast.
func (l *Ledger) Validate() error {
	var errs []string
	for _, s := range l.sources {
		if _, ok := l.batchIndex[s.BatchID]; !ok {
			errs = append(errs, fmt.Sprintf("funding source %q references unknown batch %q", s.Name, s.BatchID))
		}
		if s.Amount.IsNegative() {
			errs = append(errs, fmt.Sprintf("funding source %q in batch %q has a negative amount", s.Name, s.BatchID))
		}
	}
	for _, v := range l.investments {
		if _, ok := l.batchIndex[v.BatchID]; !ok {
			errs = append(errs, fmt.Sprintf("investment %q references unknown batch %q", v.ID, v.BatchID))
		}
		if v.Market != MarketTW && v.Market != MarketUS {
			errs = append(errs, fmt.Sprintf("investment %q has unknown market %q", v.ID, v.Market))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid ledger:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
