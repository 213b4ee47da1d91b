package fundpool

import (
	"testing"

	"github.com/shopspring/decimal"
)

// dec is a helper for tests to create a decimal from a const.
func dec(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

// twd is a helper for tests to create home-currency money from a const.
func twd(v float64) Money { return M(v, TWD) }

// usd is a helper for tests to create USD money from a const.
func usd(v float64) Money { return M(v, USD) }

// day is a helper for tests to create a date from an ISO string.
func day(s string) Date { return MustParse(s) }

// poolLedger builds the standard two-batch test pool.
//
// Batch B1 (2024-01-01): Alice 6000 + Bob 4000 fund one TW lot of 0050 at 10
// TWD (cost 10000, fully deployed).
// Batch B2 (2024-03-01): Alice 3500 + Carol 3500 fund 2 VOO shares at 100 USD,
// rate 31, fees 50 TWD (cost 6250, 750 uninvested).
// Prices move to 12 TWD and 110 USD by 2024-06-01, rate to 32.
func poolLedger(t *testing.T) *Ledger {
	t.Helper()
	return NewLedger(
		[]Batch{
			{ID: "B1", Date: day("2024-01-01"), Memo: "initial funding"},
			{ID: "B2", Date: day("2024-03-01"), Memo: "second round"},
		},
		[]FundingSource{
			{BatchID: "B1", Name: "Alice", Amount: twd(6000)},
			{BatchID: "B1", Name: "Bob", Amount: twd(4000)},
			{BatchID: "B2", Name: "Alice", Amount: twd(3500)},
			{BatchID: "B2", Name: "Carol", Amount: twd(3500)},
		},
		[]Investment{
			{
				ID: "I1", BatchID: "B1", Ticker: "0050", Name: "Yuanta Taiwan 50",
				Market: MarketTW, Date: day("2024-01-01"), Units: Q(1),
				PricePerUnit: twd(10), ExchangeRate: Q(1), Fees: twd(0),
				Tags: "etf,tw",
			},
			{
				ID: "I2", BatchID: "B2", Ticker: "VOO", Name: "Vanguard S&P 500",
				Market: MarketUS, Date: day("2024-03-01"), Units: Q(2),
				PricePerUnit: usd(100), ExchangeRate: Q(31), Fees: twd(50),
				Tags: "etf,us",
			},
		},
		[]PriceRecord{
			{Ticker: "0050", Date: day("2024-01-01"), Close: dec(10)},
			{Ticker: "0050", Date: day("2024-06-01"), Close: dec(12)},
			{Ticker: "VOO", Date: day("2024-03-01"), Close: dec(100)},
			{Ticker: "VOO", Date: day("2024-06-01"), Close: dec(110)},
		},
		[]ExchangeRate{
			{Date: day("2024-03-01"), Rate: dec(31)},
			{Date: day("2024-06-01"), Rate: dec(32)},
		},
		[]TickerTag{
			{Ticker: "0050", Dimension: "region", Tag: "TW"},
			{Ticker: "VOO", Dimension: "region", Tag: "US"},
			{Ticker: "0050", Dimension: "class", Tag: "equity"},
		},
	)
}

// checkMoney fails the test when got differs from want.
func checkMoney(t *testing.T, label string, got, want Money) {
	t.Helper()
	if !got.Equal(want) {
		t.Errorf("%s = %s, want %s", label, got, want)
	}
}
