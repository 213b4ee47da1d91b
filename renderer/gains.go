package renderer

import (
	"fmt"
	"strings"

	"github.com/tzuhan/fundpool"
)

func GainsMarkdown(r *fundpool.GainsReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Gains from %s to %s\n\n", r.Range.From, r.Range.To)

	fmt.Fprintln(&b, "| Ticker | Start | End | Profit | Return |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|")
	for _, row := range r.Rows {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			row.Ticker,
			row.StartValue,
			row.EndValue,
			row.Profit.SignedString(),
			row.Return.SignedString(),
		)
	}
	fmt.Fprintf(&b, "| **Total** | **%s** | **%s** | **%s** | **%s** |\n",
		r.TotalStart,
		r.TotalEnd,
		r.Profit.SignedString(),
		r.Return.SignedString(),
	)

	return b.String()
}
