package fundpool

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// The ledger file is JSONL: one record per line, identified by a "record"
// discriminator. It should remain human readable, single file, and easy to
// merge into a database.

// RecordType discriminates the six ledger record kinds.
type RecordType string

const (
	RecBatch      RecordType = "batch"
	RecSource     RecordType = "source"
	RecInvestment RecordType = "investment"
	RecPrice      RecordType = "price"
	RecRate       RecordType = "rate"
	RecTag        RecordType = "tag"
)

// wire shapes. Monetary fields are bare decimals, their currency is implied by
// the data model: funding amounts and fees in TWD, prices in the market's
// native currency.
type batchRec struct {
	ID   string `json:"id"`
	Date Date   `json:"date"`
	Memo string `json:"memo,omitempty"`
}

type sourceRec struct {
	Batch  string          `json:"batch"`
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

type investmentRec struct {
	ID     string          `json:"id"`
	Batch  string          `json:"batch"`
	Ticker string          `json:"ticker"`
	Name   string          `json:"name"`
	Market string          `json:"market"`
	Date   Date            `json:"date"`
	Units  Quantity        `json:"units"`
	Price  decimal.Decimal `json:"price"`
	Rate   decimal.Decimal `json:"rate"`
	Fees   decimal.Decimal `json:"fees"`
	Tags   string          `json:"tags,omitempty"`
}

type priceRec struct {
	Ticker string          `json:"ticker"`
	Date   Date            `json:"date"`
	Close  decimal.Decimal `json:"close"`
}

type rateRec struct {
	Date Date            `json:"date"`
	Rate decimal.Decimal `json:"rate"`
}

type tagRec struct {
	Ticker    string `json:"ticker"`
	Dimension string `json:"dimension"`
	Tag       string `json:"tag"`
}

// DecodeLedger decodes a snapshot from a stream of JSONL data. Blank lines are
// skipped; any malformed line fails the whole decode, quoting the line.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	var (
		batches     []Batch
		sources     []FundingSource
		investments []Investment
		prices      []PriceRecord
		rates       []ExchangeRate
		tags        []TickerTag
	)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var identifier struct {
			Record RecordType `json:"record"`
		}
		if err := json.Unmarshal(line, &identifier); err != nil {
			return nil, fmt.Errorf("could not identify record in line %q: %w", string(line), err)
		}

		var err error
		switch identifier.Record {
		case RecBatch:
			var rec batchRec
			if err = json.Unmarshal(line, &rec); err == nil {
				batches = append(batches, Batch{ID: rec.ID, Date: rec.Date, Memo: rec.Memo})
			}
		case RecSource:
			var rec sourceRec
			if err = json.Unmarshal(line, &rec); err == nil {
				sources = append(sources, FundingSource{BatchID: rec.Batch, Name: rec.Name, Amount: M(rec.Amount, TWD)})
			}
		case RecInvestment:
			var rec investmentRec
			if err = json.Unmarshal(line, &rec); err == nil {
				var market Market
				if market, err = ParseMarket(rec.Market); err == nil {
					investments = append(investments, Investment{
						ID:           rec.ID,
						BatchID:      rec.Batch,
						Ticker:       rec.Ticker,
						Name:         rec.Name,
						Market:       market,
						Date:         rec.Date,
						Units:        rec.Units,
						PricePerUnit: M(rec.Price, market.Currency()),
						ExchangeRate: Q(rec.Rate),
						Fees:         M(rec.Fees, TWD),
						Tags:         rec.Tags,
					})
				}
			}
		case RecPrice:
			var rec priceRec
			if err = json.Unmarshal(line, &rec); err == nil {
				prices = append(prices, PriceRecord{Ticker: rec.Ticker, Date: rec.Date, Close: rec.Close})
			}
		case RecRate:
			var rec rateRec
			if err = json.Unmarshal(line, &rec); err == nil {
				rates = append(rates, ExchangeRate{Date: rec.Date, Rate: rec.Rate})
			}
		case RecTag:
			var rec tagRec
			if err = json.Unmarshal(line, &rec); err == nil {
				tags = append(tags, TickerTag{Ticker: rec.Ticker, Dimension: rec.Dimension, Tag: rec.Tag})
			}
		default:
			err = fmt.Errorf("unknown record type %q", identifier.Record)
		}
		if err != nil {
			return nil, fmt.Errorf("cannot parse ledger line %q: %w", string(line), err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading ledger: %w", err)
	}

	return NewLedger(batches, sources, investments, prices, rates, tags), nil
}

// EncodeLedger writes the snapshot in canonical JSONL form: batches first, then
// sources, investments, prices, rates and tags, each with a stable field order.
func EncodeLedger(w io.Writer, l *Ledger) error {
	writeLine := func(fields *jsonObjectWriter) error {
		raw, err := fields.MarshalJSON()
		if err != nil {
			return err
		}
		if _, err := w.Write(raw); err != nil {
			return err
		}
		_, err = io.WriteString(w, "\n")
		return err
	}

	for b := range l.Batches() {
		fields := &jsonObjectWriter{}
		fields.Append("record", RecBatch).Append("id", b.ID).Append("date", b.Date).Optional("memo", b.Memo)
		if err := writeLine(fields); err != nil {
			return fmt.Errorf("encoding batch %q: %w", b.ID, err)
		}
	}
	for s := range l.Sources() {
		fields := &jsonObjectWriter{}
		fields.Append("record", RecSource).Append("batch", s.BatchID).Append("name", s.Name).Append("amount", s.Amount.Amount())
		if err := writeLine(fields); err != nil {
			return fmt.Errorf("encoding source %q: %w", s.Name, err)
		}
	}
	for v := range l.Investments() {
		fields := &jsonObjectWriter{}
		fields.Append("record", RecInvestment).
			Append("id", v.ID).
			Append("batch", v.BatchID).
			Append("ticker", v.Ticker).
			Append("name", v.Name).
			Append("market", string(v.Market)).
			Append("date", v.Date).
			Append("units", v.Units).
			Append("price", v.PricePerUnit.Amount()).
			Append("rate", v.ExchangeRate.Decimal()).
			Append("fees", v.Fees.Amount()).
			Optional("tags", v.Tags)
		if err := writeLine(fields); err != nil {
			return fmt.Errorf("encoding investment %q: %w", v.ID, err)
		}
	}
	for _, ticker := range l.market.Tickers() {
		for on, close := range l.market.prices[ticker].Values() {
			fields := &jsonObjectWriter{}
			fields.Append("record", RecPrice).Append("ticker", ticker).Append("date", on).Append("close", close)
			if err := writeLine(fields); err != nil {
				return fmt.Errorf("encoding price for %q: %w", ticker, err)
			}
		}
	}
	for on, rate := range l.market.rates.Values() {
		fields := &jsonObjectWriter{}
		fields.Append("record", RecRate).Append("date", on).Append("rate", rate)
		if err := writeLine(fields); err != nil {
			return fmt.Errorf("encoding rate on %s: %w", on, err)
		}
	}
	for _, t := range l.tags {
		fields := &jsonObjectWriter{}
		fields.Append("record", RecTag).Append("ticker", t.Ticker).Append("dimension", t.Dimension).Append("tag", t.Tag)
		if err := writeLine(fields); err != nil {
			return fmt.Errorf("encoding tag for %q: %w", t.Ticker, err)
		}
	}
	return nil
}
