package fundpool

import "testing"

func TestCategorySummary(t *testing.T) {
	l := poolLedger(t)
	report := l.CategorySummary(day("2024-06-01"))

	// Each investment counted once in the total.
	checkMoney(t, "TotalValue", report.TotalValue, twd(19040))

	groups := make(map[string]CategoryGroup)
	for _, g := range report.Groups {
		groups[g.Tag] = g
	}

	// "etf" carries both investments, "tw" and "us" one each. Multi-membership:
	// the per-group values overlap and sum past the pool total.
	etf, ok := groups["etf"]
	if !ok {
		t.Fatal("no etf group")
	}
	if etf.Investments != 2 {
		t.Errorf("etf investments = %d, want 2", etf.Investments)
	}
	checkMoney(t, "etf.MarketValue", etf.MarketValue, twd(19040))
	checkMoney(t, "etf.Cost", etf.Cost, twd(16250))
	checkMoney(t, "etf.Profit", etf.Profit, twd(2790))
	if !etf.Weight.Equal(Percent(100)) {
		t.Errorf("etf weight = %s, want 100%%", etf.Weight)
	}

	checkMoney(t, "tw.MarketValue", groups["tw"].MarketValue, twd(12000))
	checkMoney(t, "us.MarketValue", groups["us"].MarketValue, twd(7040))

	// Descending market value: etf, tw, us.
	if len(report.Groups) != 3 {
		t.Fatalf("got %d groups, want 3", len(report.Groups))
	}
	for i, want := range []string{"etf", "tw", "us"} {
		if report.Groups[i].Tag != want {
			t.Errorf("group[%d] = %s, want %s", i, report.Groups[i].Tag, want)
		}
	}
}

func TestCategorySummary_Untagged(t *testing.T) {
	l := NewLedger(
		[]Batch{{ID: "B1", Date: day("2024-01-01")}},
		[]FundingSource{{BatchID: "B1", Name: "A", Amount: twd(10000)}},
		[]Investment{{
			ID: "I1", BatchID: "B1", Ticker: "0050", Market: MarketTW,
			Date: day("2024-01-01"), Units: Q(1), PricePerUnit: twd(10),
			ExchangeRate: Q(1), Fees: twd(0),
		}},
		nil, nil, nil,
	)

	report := l.CategorySummary(day("2024-01-01"))
	if len(report.Groups) != 1 {
		t.Fatalf("got %d groups, want 1", len(report.Groups))
	}
	if report.Groups[0].Tag != Unclassified {
		t.Errorf("untagged investment grouped under %q, want %q", report.Groups[0].Tag, Unclassified)
	}
}

func TestDimensionSummary(t *testing.T) {
	l := poolLedger(t)
	report := l.DimensionSummary("region", day("2024-06-01"))

	if report.Dimension != "region" {
		t.Errorf("dimension = %q, want region", report.Dimension)
	}
	checkMoneyTotal := func(groups []DimensionGroup) Money {
		total := twd(0)
		for _, g := range groups {
			total = total.Add(g.MarketValue)
		}
		return total
	}
	// A dimension is a partition: group values add up to the pool exactly.
	checkMoney(t, "sum of groups", checkMoneyTotal(report.Groups), report.TotalValue)
	checkMoney(t, "TotalValue", report.TotalValue, twd(19040))

	if len(report.Groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(report.Groups))
	}
	tw, us := report.Groups[0], report.Groups[1]
	if tw.Tag != "TW" || us.Tag != "US" {
		t.Fatalf("groups = %s, %s; want TW first (larger value)", tw.Tag, us.Tag)
	}
	checkMoney(t, "TW.MarketValue", tw.MarketValue, twd(12000))
	checkMoney(t, "US.MarketValue", us.MarketValue, twd(7040))
	if len(tw.Tickers) != 1 || tw.Tickers[0].Ticker != "0050" {
		t.Errorf("TW group tickers = %v", tw.Tickers)
	}
}

func TestDimensionSummary_UnknownDimension(t *testing.T) {
	l := poolLedger(t)
	report := l.DimensionSummary("no-such-dimension", day("2024-06-01"))

	// Every ticker falls back to the unclassified bucket.
	if len(report.Groups) != 1 {
		t.Fatalf("got %d groups, want 1", len(report.Groups))
	}
	g := report.Groups[0]
	if g.Tag != Unclassified {
		t.Errorf("group tag = %q, want %q", g.Tag, Unclassified)
	}
	checkMoney(t, "unclassified value", g.MarketValue, twd(19040))
}

func TestDimensionSummary_AggregatesPerTicker(t *testing.T) {
	// Two buys of the same ticker collapse into one TickerValue with exact
	// unit, cost and value sums.
	l := NewLedger(
		[]Batch{{ID: "B1", Date: day("2024-01-01")}},
		[]FundingSource{{BatchID: "B1", Name: "A", Amount: twd(50000)}},
		[]Investment{
			{ID: "I1", BatchID: "B1", Ticker: "0050", Market: MarketTW,
				Date: day("2024-01-01"), Units: Q(1), PricePerUnit: twd(10),
				ExchangeRate: Q(1), Fees: twd(25)},
			{ID: "I2", BatchID: "B1", Ticker: "0050", Market: MarketTW,
				Date: day("2024-02-01"), Units: Q(2), PricePerUnit: twd(11),
				ExchangeRate: Q(1), Fees: twd(30)},
		},
		[]PriceRecord{{Ticker: "0050", Date: day("2024-03-01"), Close: dec(12)}},
		nil, nil,
	)

	report := l.DimensionSummary("region", day("2024-03-01"))
	if len(report.Groups) != 1 || len(report.Groups[0].Tickers) != 1 {
		t.Fatalf("want a single group with a single ticker, got %+v", report.Groups)
	}
	tv := report.Groups[0].Tickers[0]
	if !tv.Units.Equal(Q(3)) {
		t.Errorf("units = %s, want 3", tv.Units)
	}
	checkMoney(t, "cost", tv.Cost, twd(10025+22030))
	checkMoney(t, "value", tv.MarketValue, twd(36000))
}

func TestBatchSummaries(t *testing.T) {
	l := poolLedger(t)
	summaries := l.BatchSummaries(day("2024-06-01"))
	if len(summaries) != 2 {
		t.Fatalf("got %d summaries, want 2", len(summaries))
	}

	b1 := summaries[0]
	if b1.ID != "B1" {
		t.Fatalf("first summary is %s, want B1 (chronological)", b1.ID)
	}
	if b1.Memo != "initial funding" {
		t.Errorf("B1 memo = %q", b1.Memo)
	}
	checkMoney(t, "B1.TotalFunded", b1.TotalFunded, twd(10000))
	checkMoney(t, "B1.TotalCost", b1.TotalCost, twd(10000))
	checkMoney(t, "B1.UninvestedCash", b1.UninvestedCash, twd(0))
	checkMoney(t, "B1.CurrentValue", b1.CurrentValue, twd(12000))
	checkMoney(t, "B1.Profit", b1.Profit, twd(2000))
	if len(b1.Sources) != 2 {
		t.Fatalf("B1 has %d sources, want 2", len(b1.Sources))
	}
	if !b1.Sources[0].Share.Equal(Percent(60)) {
		t.Errorf("Alice share of B1 = %s, want 60%%", b1.Sources[0].Share)
	}

	b2 := summaries[1]
	checkMoney(t, "B2.TotalFunded", b2.TotalFunded, twd(7000))
	checkMoney(t, "B2.TotalCost", b2.TotalCost, twd(6250))
	checkMoney(t, "B2.UninvestedCash", b2.UninvestedCash, twd(750))
	// 2 x 110 USD x 32 + 750 cash.
	checkMoney(t, "B2.CurrentValue", b2.CurrentValue, twd(7790))
	checkMoney(t, "B2.Profit", b2.Profit, twd(790))
}

func TestBatchSummaries_OrphanBatch(t *testing.T) {
	// An investment referencing an unknown batch still gets a summary, never
	// an error. The batch row just has no date or memo.
	l := NewLedger(
		nil,
		nil,
		[]Investment{{
			ID: "I1", BatchID: "ghost", Ticker: "0050", Market: MarketTW,
			Date: day("2024-01-01"), Units: Q(1), PricePerUnit: twd(10),
			ExchangeRate: Q(1), Fees: twd(0),
		}},
		nil, nil, nil,
	)

	summaries := l.BatchSummaries(day("2024-06-01"))
	if len(summaries) != 1 {
		t.Fatalf("got %d summaries, want 1", len(summaries))
	}
	s := summaries[0]
	if s.ID != "ghost" {
		t.Errorf("summary ID = %q, want ghost", s.ID)
	}
	if !s.Date.IsZero() {
		t.Errorf("orphan batch date = %s, want zero", s.Date)
	}
	checkMoney(t, "orphan TotalFunded", s.TotalFunded, twd(0))
	checkMoney(t, "orphan TotalCost", s.TotalCost, twd(10000))
}
