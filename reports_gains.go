package fundpool

import "sort"

// TickerGains holds the interval performance of a single ticker.
type TickerGains struct {
	Ticker     string
	Name       string // first-seen display name
	Market     Market
	StartValue Money
	EndValue   Money
	Profit     Money
	Return     Percent
}

// GainsReport contains the results of an interval profit-and-loss
// calculation, one row per held ticker.
type GainsReport struct {
	Range      Range
	Rows       []TickerGains
	TotalStart Money
	TotalEnd   Money
	Profit     Money
	Return     Percent
}

// Gains computes start-value vs end-value for every ticker held in the
// interval. Investments traded after the interval end are excluded entirely.
//
// A position opened inside the interval did not exist at the start, so it
// enters the start value at its cost, not at zero and not at a price it never
// had. Otherwise start and end contributions are as-of valuations at the
// boundary dates, falling back to cost while the ticker is unpriced.
func (l *Ledger) Gains(rng Range) *GainsReport {
	report := &GainsReport{
		Range:      rng,
		TotalStart: M(0, TWD),
		TotalEnd:   M(0, TWD),
	}

	rows := make(map[string]*TickerGains)
	var order []string
	for _, v := range l.investments {
		if v.Date.After(rng.To) {
			continue
		}
		row, ok := rows[v.Ticker]
		if !ok {
			row = &TickerGains{
				Ticker:     v.Ticker,
				Name:       v.Name,
				Market:     v.Market,
				StartValue: M(0, TWD),
				EndValue:   M(0, TWD),
			}
			rows[v.Ticker] = row
			order = append(order, v.Ticker)
		}

		if v.Date.After(rng.From) {
			// Opened inside the interval: enters at cost.
			row.StartValue = row.StartValue.Add(v.Cost())
		} else {
			row.StartValue = row.StartValue.Add(l.marketValue(v, rng.From))
		}
		row.EndValue = row.EndValue.Add(l.marketValue(v, rng.To))
	}

	for _, ticker := range order {
		row := rows[ticker]
		row.Profit = row.EndValue.Sub(row.StartValue)
		row.Return = ratioOf(row.Profit, row.StartValue)
		report.TotalStart = report.TotalStart.Add(row.StartValue)
		report.TotalEnd = report.TotalEnd.Add(row.EndValue)
		report.Rows = append(report.Rows, *row)
	}
	sort.SliceStable(report.Rows, func(i, j int) bool {
		if !report.Rows[i].Profit.Equal(report.Rows[j].Profit) {
			return report.Rows[j].Profit.LessThan(report.Rows[i].Profit)
		}
		return report.Rows[i].Ticker < report.Rows[j].Ticker
	})
	report.Profit = report.TotalEnd.Sub(report.TotalStart)
	report.Return = ratioOf(report.Profit, report.TotalStart)
	return report
}
