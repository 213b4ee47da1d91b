package fundpool

import "sort"

// TimeSeriesPoint is the pool's total market value and cost on one calendar day.
type TimeSeriesPoint struct {
	Date  Date
	Value Money
	Cost  Money
}

// TimeSeries reconstructs a daily value/cost series from the sparse union of
// price-fact dates and trade dates. On a day with new facts the pool is
// revalued; every calendar day in between carries the previous point forward
// unchanged, a step function: value is unknown on such days, not zero.
//
// A zero Range spans the whole life of the pool. A non-zero Range clamps the
// series to the window, extending the carry-forward fill to the window's end.
// An empty snapshot yields an empty series.
func (l *Ledger) TimeSeries(rng Range) []TimeSeriesPoint {
	sparse := l.sparseDates()
	if len(sparse) == 0 {
		return nil
	}

	window := Range{From: sparse[0], To: sparse[len(sparse)-1]}
	if !rng.IsZero() {
		window = rng
		if window.From.Before(sparse[0]) {
			window.From = sparse[0]
		}
		if window.To.Before(sparse[0]) {
			return nil
		}
	}

	fresh := make(map[Date]bool, len(sparse))
	for _, on := range sparse {
		fresh[on] = true
	}

	var series []TimeSeriesPoint
	var last TimeSeriesPoint
	for on := range window.Days() {
		if fresh[on] || len(series) == 0 {
			last = l.valueOn(on)
		} else {
			last.Date = on
		}
		series = append(series, last)
	}
	return series
}

// valueOn totals market value and cost over the investments traded on or
// before 'on'.
func (l *Ledger) valueOn(on Date) TimeSeriesPoint {
	p := TimeSeriesPoint{Date: on, Value: M(0, TWD), Cost: M(0, TWD)}
	for _, v := range l.investments {
		if v.Date.After(on) {
			continue
		}
		p.Value = p.Value.Add(l.marketValue(v, on))
		p.Cost = p.Cost.Add(v.Cost())
	}
	return p
}

// sparseDates returns the sorted union of every price-fact date and every
// trade date.
func (l *Ledger) sparseDates() []Date {
	seen := make(map[Date]bool)
	var days []Date
	add := func(on Date) {
		if !seen[on] {
			seen[on] = true
			days = append(days, on)
		}
	}
	for on := range l.market.PriceDates() {
		add(on)
	}
	for _, v := range l.investments {
		add(v.Date)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	return days
}
