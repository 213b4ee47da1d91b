package renderer

import (
	"strings"
	"testing"

	"github.com/tzuhan/fundpool"
)

func testLedger(t *testing.T) *fundpool.Ledger {
	t.Helper()
	return fundpool.NewLedger(
		[]fundpool.Batch{{ID: "B1", Date: fundpool.MustParse("2024-01-01"), Memo: "initial funding"}},
		[]fundpool.FundingSource{
			{BatchID: "B1", Name: "Alice", Amount: fundpool.M(6000, fundpool.TWD)},
			{BatchID: "B1", Name: "Bob", Amount: fundpool.M(4000, fundpool.TWD)},
		},
		[]fundpool.Investment{{
			ID: "I1", BatchID: "B1", Ticker: "0050", Name: "Yuanta Taiwan 50",
			Market: fundpool.MarketTW, Date: fundpool.MustParse("2024-01-01"),
			Units: fundpool.Q(1), PricePerUnit: fundpool.M(10, fundpool.TWD),
			ExchangeRate: fundpool.Q(1), Fees: fundpool.M(0, fundpool.TWD),
			Tags: "etf,tw",
		}},
		[]fundpool.PriceRecord{{Ticker: "0050", Date: fundpool.MustParse("2024-06-01"), Close: fundpool.Q(12).Decimal()}},
		nil,
		[]fundpool.TickerTag{{Ticker: "0050", Dimension: "region", Tag: "TW"}},
	)
}

// The renderers are glue over the report types; the tests check section
// structure and that the key figures show up, not exact layout.
func contains(t *testing.T, doc string, wants ...string) {
	t.Helper()
	for _, want := range wants {
		if !strings.Contains(doc, want) {
			t.Errorf("document misses %q:\n%s", want, doc)
		}
	}
}

func TestSummaryMarkdown(t *testing.T) {
	l := testLedger(t)
	doc := SummaryMarkdown(l.Summary(fundpool.MustParse("2024-06-01")))
	contains(t, doc, "# Pool Summary on 2024-06-01", "0050", "Yuanta Taiwan 50", "Total")
}

func TestAllocationsMarkdown(t *testing.T) {
	l := testLedger(t)
	on := fundpool.MustParse("2024-06-01")
	doc := AllocationsMarkdown(on, l.SourceAllocations(on))
	contains(t, doc, "# Source Allocations on 2024-06-01", "Alice", "Bob", "## Alice")
}

func TestNAVMarkdown(t *testing.T) {
	l := testLedger(t)
	on := fundpool.MustParse("2024-06-01")
	doc := NAVMarkdown(on, l.NAVAllocations(on))
	contains(t, doc, "# NAV Allocations on 2024-06-01", "Alice", "Share")
}

func TestBatchesMarkdown(t *testing.T) {
	l := testLedger(t)
	on := fundpool.MustParse("2024-06-01")
	doc := BatchesMarkdown(on, l.BatchSummaries(on))
	contains(t, doc, "# Batches on 2024-06-01", "## B1 - initial funding", "Alice")
}

func TestCategoryMarkdown(t *testing.T) {
	l := testLedger(t)
	doc := CategoryMarkdown(l.CategorySummary(fundpool.MustParse("2024-06-01")))
	contains(t, doc, "# Categories on 2024-06-01", "etf", "tw")
}

func TestDimensionMarkdown(t *testing.T) {
	l := testLedger(t)
	doc := DimensionMarkdown(l.DimensionSummary("region", fundpool.MustParse("2024-06-01")))
	contains(t, doc, `# Dimension "region" on 2024-06-01`, "## TW", "0050")
}

func TestGainsMarkdown(t *testing.T) {
	l := testLedger(t)
	doc := GainsMarkdown(l.Gains(fundpool.NewRange(fundpool.MustParse("2024-01-01"), fundpool.MustParse("2024-06-01"))))
	contains(t, doc, "# Gains from 2024-01-01 to 2024-06-01", "0050", "**Total**")
}

func TestHistoryMarkdown(t *testing.T) {
	l := testLedger(t)
	doc := HistoryMarkdown(l.TimeSeries(fundpool.Range{}))
	contains(t, doc, "# Value History from 2024-01-01 to 2024-06-01", "2024-06-01")
}

func TestHistoryMarkdown_Empty(t *testing.T) {
	l := fundpool.NewLedger(nil, nil, nil, nil, nil, nil)
	doc := HistoryMarkdown(l.TimeSeries(fundpool.Range{}))
	contains(t, doc, "No data.")
}
