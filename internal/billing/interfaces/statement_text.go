package interfaces

import (
	"fmt"
	"strings"

	"theater-billing/internal/billing/currency"
	billing "theater-billing/internal/billing/domain"
)

// RenderText renders the plain-text statement.
func RenderText(data billing.StatementData) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Statement for %s\n", data.Customer)
	for _, perf := range data.Performances {
		fmt.Fprintf(&b, "  %s: %s (%d seats)\n", perf.Play.Name, currency.FormatUSD(perf.Amount), perf.Audience)
	}
	fmt.Fprintf(&b, "Amount owed is %s\n", currency.FormatUSD(data.TotalAmount))
	fmt.Fprintf(&b, "You earned %d credits\n", data.TotalVolumeCredits)
	return b.String()
}
