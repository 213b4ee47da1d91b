package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/tzuhan/fundpool"
)

func AllocationsMarkdown(on fundpool.Date, allocations []fundpool.SourceAllocation) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Source Allocations on %s", on))

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Source", "Invested", "Cash", "Value", "Profit", "Return"},
	}
	for _, a := range allocations {
		table.Rows = append(table.Rows, []string{
			a.Name,
			a.Invested.String(),
			a.UninvestedCash.String(),
			a.CurrentValue.String(),
			a.Profit.SignedString(),
			a.Return.SignedString(),
		})
	}
	doc.Table(table)

	for _, a := range allocations {
		if len(a.Holdings) == 0 {
			continue
		}
		doc.H2(a.Name)
		holdings := md.TableSet{
			Alignment: []md.TableAlignment{
				md.AlignLeft,
				md.AlignRight,
				md.AlignRight,
				md.AlignRight,
				md.AlignRight,
			},
			Header: []string{"Ticker", "Units", "Cost", "Value", "Profit"},
		}
		for _, h := range a.Holdings {
			holdings.Rows = append(holdings.Rows, []string{
				h.Ticker,
				h.Units.String(),
				h.Cost.String(),
				h.MarketValue.String(),
				h.Profit.SignedString(),
			})
		}
		doc.Table(holdings)
	}

	return doc.String()
}
