// Package render formats loan projections for terminal output.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/loanwise/loan_projection_app/internal/core/domain"
)

const (
	monthHeader    = "Month"
	interestHeader = "Interest Charged"
	balanceHeader  = "Remaining Balance"
	columnGap      = "   "
)

// ProjectionTable writes the schedule as a fixed-width table. Every column is
// right-aligned and sized to max(header width, widest cell); amounts are
// rendered with the given number of decimal places.
func ProjectionTable(w io.Writer, projection *domain.LoanProjection, places int32) error {
	monthWidth := len(monthHeader)
	interestWidth := len(interestHeader)
	balanceWidth := len(balanceHeader)

	monthCells := make([]string, len(projection.Months))
	interestCells := make([]string, len(projection.Months))
	balanceCells := make([]string, len(projection.Months))
	for i, m := range projection.Months {
		monthCells[i] = strconv.Itoa(i + 1)
		interestCells[i] = m.InterestCharged.StringFixed(places)
		balanceCells[i] = m.RemainingBalance.StringFixed(places)
		monthWidth = max(monthWidth, len(monthCells[i]))
		interestWidth = max(interestWidth, len(interestCells[i]))
		balanceWidth = max(balanceWidth, len(balanceCells[i]))
	}

	var b strings.Builder
	b.WriteByte('\n')
	writeRow(&b, monthHeader, interestHeader, balanceHeader, monthWidth, interestWidth, balanceWidth)
	writeRow(&b,
		strings.Repeat("-", len(monthHeader)),
		strings.Repeat("-", len(interestHeader)),
		strings.Repeat("-", len(balanceHeader)),
		monthWidth, interestWidth, balanceWidth)
	for i := range projection.Months {
		writeRow(&b, monthCells[i], interestCells[i], balanceCells[i], monthWidth, interestWidth, balanceWidth)
	}
	b.WriteByte('\n')

	_, err := io.WriteString(w, b.String())
	return err
}

func writeRow(b *strings.Builder, month, interest, balance string, monthWidth, interestWidth, balanceWidth int) {
	fmt.Fprintf(b, "%*s%s%*s%s%*s%s\n",
		monthWidth, month, columnGap,
		interestWidth, interest, columnGap,
		balanceWidth, balance, columnGap)
}
