package render_test

import (
	"bytes"
	"testing"

	"github.com/loanwise/loan_projection_app/internal/core/domain"
	"github.com/loanwise/loan_projection_app/internal/utils/render"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func projectionOf(t *testing.T, rows [][2]string) *domain.LoanProjection {
	t.Helper()
	months := make([]domain.ProjectionMonth, len(rows))
	for i, row := range rows {
		months[i] = domain.ProjectionMonth{
			InterestCharged:  decimal.RequireFromString(row[0]),
			RemainingBalance: decimal.RequireFromString(row[1]),
		}
	}
	return &domain.LoanProjection{Months: months}
}

func TestProjectionTable(t *testing.T) {
	expected := "\n" +
		"Month   Interest Charged   Remaining Balance   \n" +
		"-----   ----------------   -----------------   \n" +
		"    1               4.00                1.00   \n" +
		"    2               5.00                2.00   \n" +
		"    3               6.00                3.00   \n" +
		"\n"

	var buf bytes.Buffer
	err := render.ProjectionTable(&buf, projectionOf(t, [][2]string{
		{"4.00", "1.00"},
		{"5.00", "2.00"},
		{"6.00", "3.00"},
	}), 2)
	require.NoError(t, err)
	assert.Equal(t, expected, buf.String())
}

func TestProjectionTable_NegativeBalance(t *testing.T) {
	expected := "\n" +
		"Month   Interest Charged   Remaining Balance   \n" +
		"-----   ----------------   -----------------   \n" +
		"    1             123.22              400.45   \n" +
		"    2             211.76                2.99   \n" +
		"    3              33.20             -317.43   \n" +
		"\n"

	var buf bytes.Buffer
	err := render.ProjectionTable(&buf, projectionOf(t, [][2]string{
		{"123.22", "400.45"},
		{"211.76", "2.99"},
		{"33.20", "-317.43"},
	}), 2)
	require.NoError(t, err)
	assert.Equal(t, expected, buf.String())
}

func TestProjectionTable_WideBalanceColumn(t *testing.T) {
	expected := "\n" +
		"Month   Interest Charged     Remaining Balance   \n" +
		"-----   ----------------     -----------------   \n" +
		"    1             123.23   5434934343434343.43   \n" +
		"    2             211.77                 55.20   \n" +
		"\n"

	var buf bytes.Buffer
	err := render.ProjectionTable(&buf, projectionOf(t, [][2]string{
		{"123.23", "5434934343434343.43"},
		{"211.77", "55.20"},
	}), 2)
	require.NoError(t, err)
	assert.Equal(t, expected, buf.String())
}

func TestProjectionTable_WideNegativeBalanceColumn(t *testing.T) {
	expected := "\n" +
		"Month   Interest Charged      Remaining Balance   \n" +
		"-----   ----------------      -----------------   \n" +
		"    1             123.23   -5434934343434343.43   \n" +
		"    2             211.77                  55.20   \n" +
		"\n"

	var buf bytes.Buffer
	err := render.ProjectionTable(&buf, projectionOf(t, [][2]string{
		{"123.23", "-5434934343434343.43"},
		{"211.77", "55.20"},
	}), 2)
	require.NoError(t, err)
	assert.Equal(t, expected, buf.String())
}
