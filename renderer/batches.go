package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/tzuhan/fundpool"
)

func BatchesMarkdown(on fundpool.Date, summaries []fundpool.BatchSummary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Batches on %s", on))

	for _, s := range summaries {
		title := s.ID
		if s.Memo != "" {
			title = fmt.Sprintf("%s - %s", s.ID, s.Memo)
		}
		doc.H2(title)
		if !s.Date.IsZero() {
			doc.PlainText(fmt.Sprintf("Funded %s on %s, deployed %s, cash %s.",
				s.TotalFunded, s.Date, s.TotalCost, s.UninvestedCash))
		} else {
			doc.PlainText(fmt.Sprintf("Funded %s (batch record missing), deployed %s, cash %s.",
				s.TotalFunded, s.TotalCost, s.UninvestedCash))
		}
		doc.PlainText(fmt.Sprintf("Current value %s, profit %s (%s).",
			s.CurrentValue, s.Profit.SignedString(), s.Return.SignedString()))

		if len(s.Sources) > 0 {
			sources := md.TableSet{
				Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
				Header:    []string{"Source", "Amount", "Share"},
			}
			for _, src := range s.Sources {
				sources.Rows = append(sources.Rows, []string{src.Name, src.Amount.String(), src.Share.String()})
			}
			doc.Table(sources)
		}

		if len(s.Investments) > 0 {
			investments := md.TableSet{
				Alignment: []md.TableAlignment{
					md.AlignLeft,
					md.AlignRight,
					md.AlignRight,
					md.AlignRight,
					md.AlignRight,
				},
				Header: []string{"Ticker", "Units", "Cost", "Value", "Profit"},
			}
			for _, iv := range s.Investments {
				investments.Rows = append(investments.Rows, []string{
					iv.Ticker,
					iv.Units.String(),
					iv.Cost.String(),
					iv.MarketValue.String(),
					iv.Profit.SignedString(),
				})
			}
			doc.Table(investments)
		}
	}

	return doc.String()
}
