package fundpool

import "sort"

// CategoryGroup is the roll-up of every investment carrying one free-text tag.
// Free-text tags are multi-membership: an investment counts fully in every
// group whose tag it carries, so group values are not additive across groups.
type CategoryGroup struct {
	Tag         string
	Investments int
	Cost        Money
	MarketValue Money
	Profit      Money
	Return      Percent
	Weight      Percent // share of the pool's total market value
}

// CategoryReport groups the pool by free-text tags at one date.
type CategoryReport struct {
	Date       Date
	Groups     []CategoryGroup
	TotalValue Money // whole pool, each investment counted once
}

// CategorySummary explodes each investment's comma-separated tag list into a
// multi-membership grouping. Untagged investments land in the "unclassified"
// group. Groups are sorted by descending market value.
func (l *Ledger) CategorySummary(on Date) *CategoryReport {
	report := &CategoryReport{Date: on, TotalValue: M(0, TWD)}
	groups := make(map[string]*CategoryGroup)
	var order []string

	for _, iv := range l.InvestmentsWithValue(on) {
		report.TotalValue = report.TotalValue.Add(iv.MarketValue)
		for _, tag := range iv.TagList() {
			g, ok := groups[tag]
			if !ok {
				g = &CategoryGroup{Tag: tag, Cost: M(0, TWD), MarketValue: M(0, TWD)}
				groups[tag] = g
				order = append(order, tag)
			}
			g.Investments++
			g.Cost = g.Cost.Add(iv.Cost)
			g.MarketValue = g.MarketValue.Add(iv.MarketValue)
		}
	}

	for _, tag := range order {
		g := groups[tag]
		g.Profit = g.MarketValue.Sub(g.Cost)
		g.Return = ratioOf(g.Profit, g.Cost)
		g.Weight = ratioOf(g.MarketValue, report.TotalValue)
		report.Groups = append(report.Groups, *g)
	}
	sort.SliceStable(report.Groups, func(i, j int) bool {
		if !report.Groups[i].MarketValue.Equal(report.Groups[j].MarketValue) {
			return report.Groups[j].MarketValue.LessThan(report.Groups[i].MarketValue)
		}
		return report.Groups[i].Tag < report.Groups[j].Tag
	})
	return report
}

// TickerValue is the per-ticker aggregate of all investments in that ticker.
type TickerValue struct {
	Ticker      string
	Name        string
	Market      Market
	Units       Quantity
	Cost        Money
	MarketValue Money
	Profit      Money
}

// DimensionGroup buckets the tickers carrying one tag of a classification
// dimension. Unlike free-text tags a dimension is a partition: every ticker
// appears in exactly one group.
type DimensionGroup struct {
	Tag         string
	Tickers     []TickerValue
	Cost        Money
	MarketValue Money
	Profit      Money
	Return      Percent
	Weight      Percent
}

// DimensionReport groups the pool by one classification dimension at one date.
type DimensionReport struct {
	Date       Date
	Dimension  string
	Groups     []DimensionGroup
	TotalValue Money
}

// DimensionSummary aggregates investments per ticker first, conserving each
// ticker's cost and value exactly, then buckets tickers by their tag in the
// named dimension ("unclassified" when untagged).
func (l *Ledger) DimensionSummary(dimension string, on Date) *DimensionReport {
	report := &DimensionReport{Date: on, Dimension: dimension, TotalValue: M(0, TWD)}

	tickers := make(map[string]*TickerValue)
	var order []string
	for _, iv := range l.InvestmentsWithValue(on) {
		t, ok := tickers[iv.Ticker]
		if !ok {
			t = &TickerValue{Ticker: iv.Ticker, Name: iv.Investment.Name, Market: iv.Market, Cost: M(0, TWD), MarketValue: M(0, TWD)}
			tickers[iv.Ticker] = t
			order = append(order, iv.Ticker)
		}
		t.Units = t.Units.Add(iv.Units)
		t.Cost = t.Cost.Add(iv.Cost)
		t.MarketValue = t.MarketValue.Add(iv.MarketValue)
		report.TotalValue = report.TotalValue.Add(iv.MarketValue)
	}

	groups := make(map[string]*DimensionGroup)
	var groupOrder []string
	for _, ticker := range order {
		t := tickers[ticker]
		t.Profit = t.MarketValue.Sub(t.Cost)
		tag := l.DimensionTag(dimension, ticker)
		g, ok := groups[tag]
		if !ok {
			g = &DimensionGroup{Tag: tag, Cost: M(0, TWD), MarketValue: M(0, TWD)}
			groups[tag] = g
			groupOrder = append(groupOrder, tag)
		}
		g.Tickers = append(g.Tickers, *t)
		g.Cost = g.Cost.Add(t.Cost)
		g.MarketValue = g.MarketValue.Add(t.MarketValue)
	}

	for _, tag := range groupOrder {
		g := groups[tag]
		g.Profit = g.MarketValue.Sub(g.Cost)
		g.Return = ratioOf(g.Profit, g.Cost)
		g.Weight = ratioOf(g.MarketValue, report.TotalValue)
		sort.SliceStable(g.Tickers, func(i, j int) bool {
			if !g.Tickers[i].MarketValue.Equal(g.Tickers[j].MarketValue) {
				return g.Tickers[j].MarketValue.LessThan(g.Tickers[i].MarketValue)
			}
			return g.Tickers[i].Ticker < g.Tickers[j].Ticker
		})
		report.Groups = append(report.Groups, *g)
	}
	sort.SliceStable(report.Groups, func(i, j int) bool {
		if !report.Groups[i].MarketValue.Equal(report.Groups[j].MarketValue) {
			return report.Groups[j].MarketValue.LessThan(report.Groups[i].MarketValue)
		}
		return report.Groups[i].Tag < report.Groups[j].Tag
	})
	return report
}

// BatchSource is one contributor's slice of a batch, for display.
type BatchSource struct {
	Name   string
	Amount Money
	Share  Percent // of the batch's total funding
}

// BatchSummary rolls one batch up: funding, deployment, and what the batch is
// worth now. Cash funded but not deployed stays part of the batch's current
// value.
type BatchSummary struct {
	ID             string
	Date           Date
	Memo           string
	TotalFunded    Money
	TotalCost      Money
	MarketValue    Money // of the batch's investments only
	UninvestedCash Money // TotalFunded - TotalCost
	CurrentValue   Money // MarketValue + UninvestedCash
	Profit         Money // CurrentValue - TotalFunded
	Return         Percent
	Sources        []BatchSource
	Investments    []InvestmentValue
}

// BatchSummaries values every batch at 'on', in chronological order. Batch IDs
// referenced by investments or sources but missing from the batch collection
// still get a summary, with an empty date and memo.
func (l *Ledger) BatchSummaries(on Date) []BatchSummary {
	var ids []string
	seen := make(map[string]bool)
	for _, b := range l.batches {
		ids = append(ids, b.ID)
		seen[b.ID] = true
	}
	for _, s := range l.sources {
		if !seen[s.BatchID] {
			ids = append(ids, s.BatchID)
			seen[s.BatchID] = true
		}
	}
	for _, v := range l.investments {
		if !seen[v.BatchID] {
			ids = append(ids, v.BatchID)
			seen[v.BatchID] = true
		}
	}

	summaries := make([]BatchSummary, 0, len(ids))
	for _, id := range ids {
		b := l.Batch(id)
		s := BatchSummary{
			ID:          id,
			Date:        b.Date,
			Memo:        b.Memo,
			TotalFunded: M(0, TWD),
			TotalCost:   M(0, TWD),
			MarketValue: M(0, TWD),
		}
		for _, src := range l.sources {
			if src.BatchID == id {
				s.TotalFunded = s.TotalFunded.Add(src.Amount)
				s.Sources = append(s.Sources, BatchSource{Name: src.Name, Amount: src.Amount})
			}
		}
		for i := range s.Sources {
			s.Sources[i].Share = ratioOf(s.Sources[i].Amount, s.TotalFunded)
		}
		for _, v := range l.byBatch[id] {
			iv := l.newInvestmentValue(v, on)
			s.TotalCost = s.TotalCost.Add(iv.Cost)
			s.MarketValue = s.MarketValue.Add(iv.MarketValue)
			s.Investments = append(s.Investments, iv)
		}
		s.UninvestedCash = s.TotalFunded.Sub(s.TotalCost)
		s.CurrentValue = s.MarketValue.Add(s.UninvestedCash)
		s.Profit = s.CurrentValue.Sub(s.TotalFunded)
		s.Return = ratioOf(s.Profit, s.TotalFunded)
		summaries = append(summaries, s)
	}
	return summaries
}
