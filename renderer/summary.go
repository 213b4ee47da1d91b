// Package renderer turns fundpool reports into markdown documents.
package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/tzuhan/fundpool"
)

func SummaryMarkdown(s *fundpool.SummaryReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Pool Summary on %s", s.Date))
	doc.PlainText(fmt.Sprintf("Total Market Value: %s (cost %s, profit %s / %s)",
		s.TotalValue, s.TotalCost, s.Profit.SignedString(), s.Return.SignedString()))

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Ticker", "Name", "Units", "Cost", "Value", "Profit", "Return"},
	}
	for _, iv := range s.Investments {
		table.Rows = append(table.Rows, []string{
			iv.Ticker,
			iv.Name,
			iv.Units.String(),
			iv.Cost.String(),
			iv.MarketValue.String(),
			iv.Profit.SignedString(),
			iv.Return.SignedString(),
		})
	}
	table.Rows = append(table.Rows, []string{
		"**Total**", "", "",
		fmt.Sprintf("**%s**", s.TotalCost),
		fmt.Sprintf("**%s**", s.TotalValue),
		fmt.Sprintf("**%s**", s.Profit.SignedString()),
		fmt.Sprintf("**%s**", s.Return.SignedString()),
	})
	doc.Table(table)

	return doc.String()
}
