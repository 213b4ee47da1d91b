package fundpool

import "testing"

func TestMarketData_PriceAsOf(t *testing.T) {
	l := poolLedger(t)
	md := l.Market()

	testCases := []struct {
		name   string
		ticker string
		on     string
		want   float64
		found  bool
	}{
		{name: "exact date", ticker: "0050", on: "2024-01-01", want: 10, found: true},
		{name: "carry forward", ticker: "0050", on: "2024-03-15", want: 10, found: true},
		{name: "latest", ticker: "0050", on: "2025-01-01", want: 12, found: true},
		{name: "before history", ticker: "VOO", on: "2024-01-01", found: false},
		{name: "unknown ticker", ticker: "2330", on: "2024-06-01", found: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, found := md.PriceAsOf(tc.ticker, day(tc.on))
			if found != tc.found {
				t.Fatalf("PriceAsOf(%s, %s) found = %v, want %v", tc.ticker, tc.on, found, tc.found)
			}
			if found && !got.Equal(dec(tc.want)) {
				t.Errorf("PriceAsOf(%s, %s) = %s, want %v", tc.ticker, tc.on, got, tc.want)
			}
		})
	}
}

func TestMarketData_RateAsOf(t *testing.T) {
	l := poolLedger(t)
	md := l.Market()

	if _, found := md.RateAsOf(day("2024-01-01")); found {
		t.Error("RateAsOf before any fact reported a rate")
	}
	got, found := md.RateAsOf(day("2024-04-15"))
	if !found || !got.Equal(dec(31)) {
		t.Errorf("RateAsOf(2024-04-15) = (%s, %v), want (31, true)", got, found)
	}
}

func TestMarketData_DuplicateFactOverwrites(t *testing.T) {
	md := NewMarketData()
	md.AppendPrice("0050", day("2024-01-01"), dec(10))
	md.AppendPrice("0050", day("2024-01-01"), dec(10.5))

	got, found := md.PriceAsOf("0050", day("2024-01-01"))
	if !found || !got.Equal(dec(10.5)) {
		t.Errorf("PriceAsOf after duplicate append = (%s, %v), want the last value 10.5", got, found)
	}
}
