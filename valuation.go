package fundpool

import "sort"

// Cost returns the all-in acquisition cost of the investment in TWD.
//
// TW market: units are lots of LotSize shares, prices already in TWD.
// US market: prices in USD, converted at the trade-time rate recorded on the
// row. Fees are in TWD on both markets.
func (v Investment) Cost() Money {
	switch v.Market {
	case MarketUS:
		return v.PricePerUnit.Mul(v.Units).Convert(v.ExchangeRate, TWD).Add(v.Fees)
	default:
		return v.PricePerUnit.Mul(v.Units).Mul(Q(LotSize)).Add(v.Fees)
	}
}

// marketValue values the investment at 'on' in TWD.
//
// With no price fact on or before 'on' the position is held at cost: an
// unpriced position is unknown, not worthless. Fees are sunk and never
// re-applied. For US assets the valuation rate is the as-of rate, falling
// back to the trade-time rate only when no rate fact exists at all.
func (l *Ledger) marketValue(v Investment, on Date) Money {
	close, ok := l.market.PriceAsOf(v.Ticker, on)
	if !ok {
		return v.Cost()
	}
	price := M(close, v.Market.Currency())
	switch v.Market {
	case MarketUS:
		rate := v.ExchangeRate
		if r, ok := l.market.RateAsOf(on); ok {
			rate = Q(r)
		}
		return price.Mul(v.Units).Convert(rate, TWD)
	default:
		return price.Mul(v.Units).Mul(Q(LotSize))
	}
}

// InvestmentValue is an investment together with its computed cost, market
// value and profit at a target date, all in TWD.
type InvestmentValue struct {
	Investment
	Cost        Money
	MarketValue Money
	Profit      Money
	Return      Percent
}

// newInvestmentValue values one investment at 'on'.
func (l *Ledger) newInvestmentValue(v Investment, on Date) InvestmentValue {
	cost := v.Cost()
	value := l.marketValue(v, on)
	profit := value.Sub(cost)
	return InvestmentValue{
		Investment:  v,
		Cost:        cost,
		MarketValue: value,
		Profit:      profit,
		Return:      ratioOf(profit, cost),
	}
}

// InvestmentsWithValue values every investment in the snapshot at 'on', in
// chronological order.
func (l *Ledger) InvestmentsWithValue(on Date) []InvestmentValue {
	values := make([]InvestmentValue, 0, len(l.investments))
	for _, v := range l.investments {
		values = append(values, l.newInvestmentValue(v, on))
	}
	return values
}

// SummaryReport is the portfolio-wide roll-up of all investments at one date.
type SummaryReport struct {
	Date        Date
	Investments []InvestmentValue
	TotalCost   Money
	TotalValue  Money
	Profit      Money
	Return      Percent
}

// Summary values the whole pool at 'on', investments sorted by descending
// market value.
func (l *Ledger) Summary(on Date) *SummaryReport {
	report := &SummaryReport{
		Date:        on,
		Investments: l.InvestmentsWithValue(on),
		TotalCost:   M(0, TWD),
		TotalValue:  M(0, TWD),
	}
	for _, iv := range report.Investments {
		report.TotalCost = report.TotalCost.Add(iv.Cost)
		report.TotalValue = report.TotalValue.Add(iv.MarketValue)
	}
	sort.SliceStable(report.Investments, func(i, j int) bool {
		a, b := report.Investments[i], report.Investments[j]
		if !a.MarketValue.Equal(b.MarketValue) {
			return b.MarketValue.LessThan(a.MarketValue)
		}
		return a.ID < b.ID
	})
	report.Profit = report.TotalValue.Sub(report.TotalCost)
	report.Return = ratioOf(report.Profit, report.TotalCost)
	return report
}
