package fundpool

import (
	"iter"
	"sort"
)

// SourceHolding is a per-source, per-ticker aggregate: the units and cost
// slices allocated to one source across every batch it participated in.
type SourceHolding struct {
	Ticker      string
	Name        string
	Market      Market
	Units       Quantity
	Cost        Money
	MarketValue Money
	Profit      Money
}

// SourceAllocation is the full attribution of one funding source: what it put
// in, what that money bought, and what those holdings are worth now.
type SourceAllocation struct {
	Name           string
	Invested       Money // sum of contributions across all batches
	AllocatedCost  Money // cost of the holding slices attributed to this source
	UninvestedCash Money // Invested - AllocatedCost
	CurrentValue   Money // holdings valued at the query date plus uninvested cash
	Profit         Money // CurrentValue - Invested
	Return         Percent
	Holdings       []SourceHolding
}

// sourceState accumulates one source's attribution while batches are processed.
type sourceState struct {
	name     string
	invested Money
	cost     Money
	holdings map[string]*SourceHolding
	order    int // first-seen order, tie-break for equal values
}

// SourceAllocations attributes every pooled holding back to the funding
// sources that financed it and values the result at 'on'.
//
// Within one batch every investment is split across the batch's sources in
// proportion to each source's share of the batch total. The structurally last
// source (input order) receives the exact running remainder instead of its own
// proportional computation, so the allocated units and cost of any investment
// sum exactly to its totals: conservation is exact, the last source absorbs
// all rounding drift. Batches with a zero funding total allocate nothing.
//
// Sources are returned sorted by descending current value.
func (l *Ledger) SourceAllocations(on Date) []SourceAllocation {
	states := make(map[string]*sourceState)
	state := func(name string) *sourceState {
		s, ok := states[name]
		if !ok {
			s = &sourceState{
				name:     name,
				invested: M(0, TWD),
				cost:     M(0, TWD),
				holdings: make(map[string]*SourceHolding),
				order:    len(states),
			}
			states[name] = s
		}
		return s
	}

	for batchID, entries := range l.sourcesByBatch() {
		batchTotal := M(0, TWD)
		for _, e := range entries {
			batchTotal = batchTotal.Add(e.Amount)
			state(e.Name).invested = state(e.Name).invested.Add(e.Amount)
		}
		if batchTotal.IsZero() {
			continue // nothing to allocate
		}

		for _, v := range l.byBatch[batchID] {
			cost := v.Cost()
			// Running remainders: whatever the first n-1 proportional slices
			// leave over goes, exactly, to the last entry.
			remUnits := v.Units
			remCost := cost
			for i, e := range entries {
				var allocUnits Quantity
				var allocCost Money
				if i == len(entries)-1 {
					allocUnits, allocCost = remUnits, remCost
				} else {
					share := e.Amount.DivPrice(batchTotal)
					allocUnits = v.Units.Mul(share)
					allocCost = cost.Mul(share)
					remUnits = remUnits.Sub(allocUnits)
					remCost = remCost.Sub(allocCost)
				}
				s := state(e.Name)
				h, ok := s.holdings[v.Ticker]
				if !ok {
					h = &SourceHolding{Ticker: v.Ticker, Name: v.Name, Market: v.Market, Cost: M(0, TWD)}
					s.holdings[v.Ticker] = h
				}
				h.Units = h.Units.Add(allocUnits)
				h.Cost = h.Cost.Add(allocCost)
				s.cost = s.cost.Add(allocCost)
			}
		}
	}

	allocations := make([]SourceAllocation, 0, len(states))
	for _, s := range states {
		a := SourceAllocation{
			Name:           s.name,
			Invested:       s.invested,
			AllocatedCost:  s.cost,
			UninvestedCash: s.invested.Sub(s.cost),
			CurrentValue:   s.invested.Sub(s.cost),
		}
		for _, h := range s.holdings {
			h.MarketValue = l.holdingValue(h.Market, h.Ticker, h.Units, h.Cost, on)
			h.Profit = h.MarketValue.Sub(h.Cost)
			a.CurrentValue = a.CurrentValue.Add(h.MarketValue)
			a.Holdings = append(a.Holdings, *h)
		}
		sort.SliceStable(a.Holdings, func(i, j int) bool {
			if !a.Holdings[i].MarketValue.Equal(a.Holdings[j].MarketValue) {
				return a.Holdings[j].MarketValue.LessThan(a.Holdings[i].MarketValue)
			}
			return a.Holdings[i].Ticker < a.Holdings[j].Ticker
		})
		a.Profit = a.CurrentValue.Sub(a.Invested)
		a.Return = ratioOf(a.Profit, a.Invested)
		allocations = append(allocations, a)
	}
	sort.SliceStable(allocations, func(i, j int) bool {
		if !allocations[i].CurrentValue.Equal(allocations[j].CurrentValue) {
			return allocations[j].CurrentValue.LessThan(allocations[i].CurrentValue)
		}
		return states[allocations[i].Name].order < states[allocations[j].Name].order
	})
	return allocations
}

// sourcesByBatch groups funding sources per batch preserving input order, and
// yields batches chronologically followed by batch IDs that only appear on
// sources (unresolved references degrade, they never fail).
func (l *Ledger) sourcesByBatch() iter.Seq2[string, []FundingSource] {
	grouped := make(map[string][]FundingSource)
	var orphans []string
	for _, s := range l.sources {
		if _, known := l.batchIndex[s.BatchID]; !known {
			if _, seen := grouped[s.BatchID]; !seen {
				orphans = append(orphans, s.BatchID)
			}
		}
		grouped[s.BatchID] = append(grouped[s.BatchID], s)
	}
	return func(yield func(string, []FundingSource) bool) {
		for _, b := range l.batches {
			if entries := grouped[b.ID]; len(entries) > 0 {
				if !yield(b.ID, entries) {
					return
				}
			}
		}
		for _, id := range orphans {
			if !yield(id, grouped[id]) {
				return
			}
		}
	}
}

// holdingValue values an aggregated position at 'on'. Unpriced positions are
// held at their allocated cost; US positions without any rate fact likewise,
// since an aggregate has no single trade-time rate to fall back to.
func (l *Ledger) holdingValue(market Market, ticker string, units Quantity, cost Money, on Date) Money {
	close, ok := l.market.PriceAsOf(ticker, on)
	if !ok {
		return cost
	}
	price := M(close, market.Currency())
	switch market {
	case MarketUS:
		r, ok := l.market.RateAsOf(on)
		if !ok {
			return cost
		}
		return price.Mul(units).Convert(Q(r), TWD)
	default:
		return price.Mul(units).Mul(Q(LotSize))
	}
}
