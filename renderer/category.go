package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/tzuhan/fundpool"
)

func CategoryMarkdown(r *fundpool.CategoryReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Categories on %s", r.Date))
	doc.PlainText(fmt.Sprintf("Total market value: %s. Tags are multi-membership: group values overlap.", r.TotalValue))

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
		Header: []string{"Tag", "Investments", "Cost", "Value", "Profit", "Return", "Weight"},
	}
	for _, g := range r.Groups {
		table.Rows = append(table.Rows, []string{
			g.Tag,
			fmt.Sprintf("%d", g.Investments),
			g.Cost.String(),
			g.MarketValue.String(),
			g.Profit.SignedString(),
			g.Return.SignedString(),
			g.Weight.String(),
		})
	}
	doc.Table(table)

	return doc.String()
}

func DimensionMarkdown(r *fundpool.DimensionReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Dimension %q on %s", r.Dimension, r.Date))
	doc.PlainText(fmt.Sprintf("Total market value: %s.", r.TotalValue))

	for _, g := range r.Groups {
		doc.H2(fmt.Sprintf("%s (%s, weight %s)", g.Tag, g.MarketValue, g.Weight))
		table := md.TableSet{
			Alignment: []md.TableAlignment{
				md.AlignLeft,
				md.AlignLeft,
				md.AlignRight,
				md.AlignRight,
				md.AlignRight,
				md.AlignRight,
			},
			Header: []string{"Ticker", "Name", "Units", "Cost", "Value", "Profit"},
		}
		for _, tv := range g.Tickers {
			table.Rows = append(table.Rows, []string{
				tv.Ticker,
				tv.Name,
				tv.Units.String(),
				tv.Cost.String(),
				tv.MarketValue.String(),
				tv.Profit.SignedString(),
			})
		}
		doc.Table(table)
	}

	return doc.String()
}
