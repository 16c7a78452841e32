package renderer

import (
	"fmt"
	"strings"

	sovereigntax "github.com/SovereignTax/sovereign-tax"
)

// CarryforwardMarkdown renders a multi-year carryforward chain.
func CarryforwardMarkdown(chain []sovereigntax.YearCarryforward) string {
	var b strings.Builder

	fmt.Fprint(&b, "# Loss Carryforward\n\n")
	fmt.Fprintln(&b, "| Year | Short-term | Long-term | Net | Deductible | Carryforward |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|---:|")
	for _, link := range chain {
		fmt.Fprintf(&b, "| %d | %s | %s | %s | %s | %s |\n",
			link.Year,
			link.Result.ShortTermGL.SignedString(),
			link.Result.LongTermGL.SignedString(),
			link.Result.NetGainLoss.SignedString(),
			link.Result.DeductibleLoss.SignedString(),
			link.Result.Carryforward.SignedString(),
		)
	}

	return b.String()
}

// ComparisonMarkdown renders accounting methods side by side.
func ComparisonMarkdown(rows []sovereigntax.MethodComparison) string {
	var b strings.Builder

	fmt.Fprint(&b, "# Method Comparison\n\n")
	fmt.Fprintln(&b, "| Method | Realized | Short-term | Long-term | Sales | Warnings |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|---:|")
	for _, row := range rows {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %d | %d |\n",
			row.Method,
			row.Realized.SignedString(),
			row.ShortTermGL.SignedString(),
			row.LongTermGL.SignedString(),
			row.Sales,
			row.Warnings,
		)
	}

	return b.String()
}

// IncomeMarkdown renders the income-tagged acquisitions of one year.
func IncomeMarkdown(summary sovereigntax.IncomeSummary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Income Report for %d\n\n", summary.Year)
	fmt.Fprintln(&b, "| Source | Events | Quantity (BTC) | Value (USD) |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|")
	for _, line := range summary.Lines {
		fmt.Fprintf(&b, "| %s | %d | %s | %s |\n",
			line.Type, line.Count, line.Quantity.BTCString(), line.Value)
	}
	fmt.Fprintf(&b, "| **Total** | | **%s** | **%s** |\n",
		summary.TotalQuantity.BTCString(), summary.TotalValue)

	return b.String()
}
