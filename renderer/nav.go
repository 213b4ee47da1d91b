package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/tzuhan/fundpool"
)

func NAVMarkdown(on fundpool.Date, allocations []fundpool.NAVAllocation) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("NAV Allocations on %s", on))
	doc.PlainText("Unit-based attribution: contributions buy pool units at the net asset value of the day they land.")

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Source", "Invested", "Units", "Share", "Value", "Profit", "Return"},
	}
	for _, a := range allocations {
		table.Rows = append(table.Rows, []string{
			a.Name,
			a.Invested.String(),
			a.Units.String(),
			a.Share.String(),
			a.CurrentValue.String(),
			a.Profit.SignedString(),
			a.Return.SignedString(),
		})
	}
	doc.Table(table)

	return doc.String()
}
