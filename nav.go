package fundpool

import "sort"

// NAVAllocation is the unit-based attribution of one funding source: the pool
// units its contributions bought, and what those units are worth now.
//
// This is the mutual-fund-style alternative to SourceAllocations. The two are
// deliberately not equivalent: NAV accounting rewards a source for the pool's
// performance timing, proportional accounting ties a source strictly to the
// holdings its money bought.
type NAVAllocation struct {
	Name         string
	Invested     Money
	Units        Quantity // pool units held
	Share        Percent  // of the pool's outstanding units
	CurrentValue Money
	Profit       Money
	Return       Percent
}

// initialNAV is the price of one pool unit when the first capital comes in.
var initialNAV = M(1, TWD)

// NAVAllocations replays batch history chronologically: each batch's sources
// buy pool units at the net asset value computed just before that batch's
// capital lands, the first contribution buying at 1 TWD per unit. A source's
// current value is its unit share of the pool valued at 'on'.
//
// Batches dated after 'on' are not replayed. The output is sorted by
// descending current value.
func (l *Ledger) NAVAllocations(on Date) []NAVAllocation {
	type holder struct {
		invested Money
		units    Quantity
		order    int
	}
	holders := make(map[string]*holder)

	totalUnits := Q(0)
	var processed []string // batch IDs already in the pool

	for batchID, entries := range l.sourcesByBatch() {
		batchDate := l.Batch(batchID).Date
		if batchDate.After(on) {
			continue
		}
		batchTotal := M(0, TWD)
		for _, e := range entries {
			batchTotal = batchTotal.Add(e.Amount)
		}
		if batchTotal.IsZero() {
			continue
		}

		// NAV just before this batch: the value of everything previous
		// batches hold, per outstanding unit.
		nav := initialNAV
		if !totalUnits.IsZero() {
			nav = l.poolValue(processed, batchDate).Div(totalUnits)
		}

		for _, e := range entries {
			h, ok := holders[e.Name]
			if !ok {
				h = &holder{invested: M(0, TWD), order: len(holders)}
				holders[e.Name] = h
			}
			h.invested = h.invested.Add(e.Amount)
			h.units = h.units.Add(e.Amount.DivPrice(nav))
			totalUnits = totalUnits.Add(e.Amount.DivPrice(nav))
		}
		processed = append(processed, batchID)
	}

	allocations := make([]NAVAllocation, 0, len(holders))
	if len(holders) == 0 {
		return allocations
	}
	poolValue := l.poolValue(processed, on)
	for name, h := range holders {
		a := NAVAllocation{
			Name:         name,
			Invested:     h.invested,
			Units:        h.units,
			CurrentValue: M(0, TWD),
		}
		if !totalUnits.IsZero() {
			a.Share = Percent(100 * h.units.Div(totalUnits).Decimal().InexactFloat64())
			a.CurrentValue = poolValue.Mul(h.units).Div(totalUnits)
		}
		a.Profit = a.CurrentValue.Sub(a.Invested)
		a.Return = ratioOf(a.Profit, a.Invested)
		allocations = append(allocations, a)
	}
	sort.SliceStable(allocations, func(i, j int) bool {
		if !allocations[i].CurrentValue.Equal(allocations[j].CurrentValue) {
			return allocations[j].CurrentValue.LessThan(allocations[i].CurrentValue)
		}
		return holders[allocations[i].Name].order < holders[allocations[j].Name].order
	})
	return allocations
}

// poolValue values the pool restricted to the given batches at 'on': their
// investments at market plus the cash those batches funded but never deployed.
func (l *Ledger) poolValue(batchIDs []string, on Date) Money {
	total := M(0, TWD)
	for _, id := range batchIDs {
		funded := M(0, TWD)
		for _, s := range l.sources {
			if s.BatchID == id {
				funded = funded.Add(s.Amount)
			}
		}
		cost := M(0, TWD)
		for _, v := range l.byBatch[id] {
			cost = cost.Add(v.Cost())
			total = total.Add(l.marketValue(v, on))
		}
		total = total.Add(funded.Sub(cost)) // uninvested cash
	}
	return total
}
