package fundpool

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// This file handles the import of the pool's system of record: a Google
// Sheets spreadsheet, exported as the JSON response of a values.batchGet
// call. Each value range is one worksheet; the first row is the header.
//
// Known worksheets and their columns:
//
//	batches         id, date, description
//	funding_sources batch_id, name, amount
//	investments     id, batch_id, ticker, name, market, date, units,
//	                price_per_unit, exchange_rate, fees, tags
//	prices          ticker, date, close
//	exchange_rates  date, usd_twd
//	ticker_tags     ticker, dimension, tag
//
// Unknown worksheets (like the updater's metadata tab) are ignored.

// ImportSheets reads a spreadsheet export and assembles a Ledger snapshot.
func ImportSheets(r io.Reader) (*Ledger, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading spreadsheet export: %w", err)
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("cannot parse spreadsheet export: %w", err)
	}

	jranges, err := jsonpath.Get("$.valueRanges[*]", doc)
	if err != nil {
		return nil, fmt.Errorf("no value ranges in spreadsheet export: %w", err)
	}
	ranges, ok := jranges.([]any)
	if !ok {
		// jsonpath is never clear about whether it returns a list of one
		// answer or a single answer, so accept both.
		ranges = []any{jranges}
	}

	var (
		batches     []Batch
		sources     []FundingSource
		investments []Investment
		prices      []PriceRecord
		rates       []ExchangeRate
		tags        []TickerTag
	)

	for _, jrange := range ranges {
		name, rows, err := sheetRows(jrange)
		if err != nil {
			return nil, err
		}
		for i, row := range rows {
			cells := cellReader{sheet: name, row: i + 2, cells: row} // +2: 1-based, after header
			switch name {
			case "batches":
				batches = append(batches, Batch{
					ID:   cells.str(0),
					Date: cells.date(1),
					Memo: cells.str(2),
				})
			case "funding_sources":
				sources = append(sources, FundingSource{
					BatchID: cells.str(0),
					Name:    cells.str(1),
					Amount:  M(cells.dec(2), TWD),
				})
			case "investments":
				market, err := ParseMarket(cells.str(4))
				if err != nil {
					return nil, fmt.Errorf("sheet %q row %d: %w", name, i+2, err)
				}
				investments = append(investments, Investment{
					ID:           cells.str(0),
					BatchID:      cells.str(1),
					Ticker:       cells.str(2),
					Name:         cells.str(3),
					Market:       market,
					Date:         cells.date(5),
					Units:        Q(cells.dec(6)),
					PricePerUnit: M(cells.dec(7), market.Currency()),
					ExchangeRate: Q(cells.dec(8)),
					Fees:         M(cells.dec(9), TWD),
					Tags:         cells.str(10),
				})
			case "prices":
				prices = append(prices, PriceRecord{
					Ticker: cells.str(0),
					Date:   cells.date(1),
					Close:  cells.dec(2),
				})
			case "exchange_rates":
				rates = append(rates, ExchangeRate{
					Date: cells.date(0),
					Rate: cells.dec(1),
				})
			case "ticker_tags":
				tags = append(tags, TickerTag{
					Ticker:    cells.str(0),
					Dimension: cells.str(1),
					Tag:       cells.str(2),
				})
			}
			if cells.err != nil {
				return nil, cells.err
			}
		}
	}

	return NewLedger(batches, sources, investments, prices, rates, tags), nil
}

// sheetRows extracts a worksheet name and its data rows (header stripped)
// from one value range.
func sheetRows(jrange any) (string, [][]any, error) {
	jname, err := jsonpath.Get("$.range", jrange)
	if err != nil {
		return "", nil, fmt.Errorf("value range without a range name: %w", err)
	}
	name, _ := jname.(string)
	// "investments!A1:K999" -> "investments"
	if i := strings.IndexByte(name, '!'); i >= 0 {
		name = name[:i]
	}
	name = strings.ToLower(strings.Trim(name, "'"))

	jvalues, err := jsonpath.Get("$.values", jrange)
	if err != nil {
		return name, nil, nil // empty worksheet
	}
	jrows, ok := jvalues.([]any)
	if !ok || len(jrows) < 2 {
		return name, nil, nil // header only, or nothing
	}
	rows := make([][]any, 0, len(jrows)-1)
	for _, jrow := range jrows[1:] {
		row, ok := jrow.([]any)
		if !ok {
			continue
		}
		rows = append(rows, row)
	}
	return name, rows, nil
}

// cellReader reads typed cells from one row, collecting the first error with
// its sheet coordinates.
type cellReader struct {
	sheet string
	row   int
	cells []any
	err   error
}

func (c *cellReader) str(i int) string {
	if i >= len(c.cells) {
		return ""
	}
	switch v := c.cells[i].(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return decimal.NewFromFloat(v).String()
	default:
		return ""
	}
}

func (c *cellReader) dec(i int) decimal.Decimal {
	if c.err != nil {
		return decimal.Decimal{}
	}
	s := c.str(i)
	if s == "" {
		return decimal.Decimal{}
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		c.err = fmt.Errorf("sheet %q row %d col %d: invalid number %q: %w", c.sheet, c.row, i+1, s, err)
		return decimal.Decimal{}
	}
	return d
}

func (c *cellReader) date(i int) Date {
	if c.err != nil {
		return Date{}
	}
	d, err := ParseDate(c.str(i))
	if err != nil {
		c.err = fmt.Errorf("sheet %q row %d col %d: %w", c.sheet, c.row, i+1, err)
		return Date{}
	}
	return d
}
