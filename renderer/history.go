package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/tzuhan/fundpool"
)

// HistoryMarkdown renders the value series. Carried-forward days repeat the
// previous valuation, so to keep the table readable only the days where the
// value or cost actually changed are listed.
func HistoryMarkdown(series []fundpool.TimeSeriesPoint) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	if len(series) == 0 {
		doc.H1("Value History")
		doc.PlainText("No data.")
		return doc.String()
	}

	doc.H1(fmt.Sprintf("Value History from %s to %s", series[0].Date, series[len(series)-1].Date))

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Date", "Value", "Cost", "Profit"},
	}
	var prev fundpool.TimeSeriesPoint
	for i, p := range series {
		if i > 0 && p.Value.Equal(prev.Value) && p.Cost.Equal(prev.Cost) {
			prev = p
			continue
		}
		table.Rows = append(table.Rows, []string{
			p.Date.String(),
			p.Value.String(),
			p.Cost.String(),
			p.Value.Sub(p.Cost).SignedString(),
		})
		prev = p
	}
	doc.Table(table)

	return doc.String()
}
