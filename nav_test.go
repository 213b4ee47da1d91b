package fundpool

import "testing"

// navLedger prices are chosen so every NAV division is exact: A funds 1000 at
// NAV 1, the position doubles, then B funds 500 at NAV 2.
func navLedger(t *testing.T) *Ledger {
	t.Helper()
	return NewLedger(
		[]Batch{
			{ID: "B1", Date: day("2024-01-01")},
			{ID: "B2", Date: day("2024-03-01")},
		},
		[]FundingSource{
			{BatchID: "B1", Name: "A", Amount: twd(1000)},
			{BatchID: "B2", Name: "B", Amount: twd(500)},
		},
		[]Investment{{
			ID: "I1", BatchID: "B1", Ticker: "0050", Market: MarketTW,
			Date: day("2024-01-01"), Units: Q(1), PricePerUnit: twd(1),
			ExchangeRate: Q(1), Fees: twd(0),
		}},
		[]PriceRecord{
			{Ticker: "0050", Date: day("2024-01-01"), Close: dec(1)},
			{Ticker: "0050", Date: day("2024-03-01"), Close: dec(2)},
			{Ticker: "0050", Date: day("2024-06-01"), Close: dec(3)},
		},
		nil, nil,
	)
}

func TestNAVAllocations(t *testing.T) {
	l := navLedger(t)
	allocations := l.NAVAllocations(day("2024-06-01"))
	if len(allocations) != 2 {
		t.Fatalf("got %d allocations, want 2", len(allocations))
	}
	a, b := allocations[0], allocations[1]
	if a.Name != "A" || b.Name != "B" {
		t.Fatalf("allocation order = %s, %s; want A (larger value) first", a.Name, b.Name)
	}

	// A bought 1000 units at the initial NAV of 1. By B2 the pool is worth
	// 2000, so NAV is 2 and B's 500 buys 250 units.
	if !a.Units.Equal(Q(1000)) {
		t.Errorf("A units = %s, want 1000", a.Units)
	}
	if !b.Units.Equal(Q(250)) {
		t.Errorf("B units = %s, want 250", b.Units)
	}

	// Pool at 2024-06-01: position worth 3000 plus B's 500 still in cash.
	// 1250 outstanding units split it 1000:250.
	checkMoney(t, "A.CurrentValue", a.CurrentValue, twd(2800))
	checkMoney(t, "A.Profit", a.Profit, twd(1800))
	checkMoney(t, "B.CurrentValue", b.CurrentValue, twd(700))
	// B's cash never bought anything, yet NAV accounting credits it with the
	// pool's performance. That asymmetry with SourceAllocations is the point.
	checkMoney(t, "B.Profit", b.Profit, twd(200))

	if !a.Share.Equal(Percent(80)) {
		t.Errorf("A share = %s, want 80%%", a.Share)
	}
	if !b.Share.Equal(Percent(20)) {
		t.Errorf("B share = %s, want 20%%", b.Share)
	}
}

func TestNAVAllocations_IgnoresFutureBatches(t *testing.T) {
	l := navLedger(t)
	allocations := l.NAVAllocations(day("2024-02-01"))
	if len(allocations) != 1 {
		t.Fatalf("got %d allocations, want only A before B2 lands", len(allocations))
	}
	a := allocations[0]
	if a.Name != "A" {
		t.Fatalf("got allocation for %s, want A", a.Name)
	}
	checkMoney(t, "A.CurrentValue", a.CurrentValue, twd(1000))
	checkMoney(t, "A.Profit", a.Profit, twd(0))
}

func TestNAVAllocations_Pool(t *testing.T) {
	l := poolLedger(t)
	allocations := l.NAVAllocations(day("2024-06-01"))
	if len(allocations) != 3 {
		t.Fatalf("got %d allocations, want 3", len(allocations))
	}

	// The pool is flat at B2's date, so NAV is still 1 and units equal the
	// amounts contributed.
	byName := make(map[string]NAVAllocation)
	totalUnits := Q(0)
	for _, a := range allocations {
		byName[a.Name] = a
		totalUnits = totalUnits.Add(a.Units)
	}
	if !byName["Alice"].Units.Equal(Q(9500)) {
		t.Errorf("Alice units = %s, want 9500", byName["Alice"].Units)
	}
	if !byName["Bob"].Units.Equal(Q(4000)) {
		t.Errorf("Bob units = %s, want 4000", byName["Bob"].Units)
	}
	if !byName["Carol"].Units.Equal(Q(3500)) {
		t.Errorf("Carol units = %s, want 3500", byName["Carol"].Units)
	}
	if !totalUnits.Equal(Q(17000)) {
		t.Errorf("outstanding units = %s, want 17000", totalUnits)
	}

	if allocations[0].Name != "Alice" {
		t.Errorf("largest allocation = %s, want Alice", allocations[0].Name)
	}
}

func TestNAVAllocations_EmptyLedger(t *testing.T) {
	l := NewLedger(nil, nil, nil, nil, nil, nil)
	if got := l.NAVAllocations(day("2024-06-01")); len(got) != 0 {
		t.Errorf("empty ledger produced %d allocations", len(got))
	}
}
