package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/loanwise/loan_projection_app/internal/apperrors"
	"github.com/loanwise/loan_projection_app/internal/core/domain"
	portssvc "github.com/loanwise/loan_projection_app/internal/core/ports/services"
	"github.com/loanwise/loan_projection_app/internal/dto"
	"github.com/loanwise/loan_projection_app/internal/middleware"
	"github.com/loanwise/loan_projection_app/internal/utils/render"
	"github.com/loanwise/loan_projection_app/internal/utils/rounding"
	"github.com/shopspring/decimal"
)

// workingPlaces is the number of decimal places kept on intermediate values of
// the recurrence. With loan-sized magnitudes this comfortably exceeds the 28
// significant digits needed to keep rounding error out of a 300+ month
// compounding chain; display rounding happens only in reconcile.
const workingPlaces int32 = 34

const monthsInOneYear = 12

var (
	one        = decimal.NewFromInt(1)
	oneHundred = decimal.NewFromInt(100)
)

// projectionService computes reconciled loan projections.
type projectionService struct {
	rounding    rounding.Config
	tableWriter io.Writer
}

// NewProjectionService creates a projection service using the given rounding
// configuration. Tables requested via PrintTable are written to tableWriter.
func NewProjectionService(roundingCfg rounding.Config, tableWriter io.Writer) portssvc.ProjectionSvcFacade {
	return &projectionService{
		rounding:    roundingCfg,
		tableWriter: tableWriter,
	}
}

var _ portssvc.ProjectionSvcFacade = (*projectionService)(nil)

// ProjectLoan validates the request and produces the month-by-month schedule.
func (s *projectionService) ProjectLoan(ctx context.Context, req dto.LoanProjectionRequest) (*domain.LoanProjection, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	interestType, err := domain.ParseInterestType(req.InterestType)
	if err != nil {
		return nil, err
	}
	params, err := domain.NewLoanParameters(req.Principal, req.AnnualRatePercentage, req.TermMonths, req.MonthlyPayment, interestType, s.rounding.Places)
	if err != nil {
		return nil, err
	}

	fullBalances, err := s.fullPrecisionBalances(params)
	if err != nil {
		return nil, err
	}

	projection := s.reconcile(params.Principal, fullBalances, params.MonthlyPayment)

	logger.Info("Loan projection computed",
		slog.Int("term_months", params.TermMonths),
		slog.String("interest_type", string(params.InterestType)),
		slog.String("final_balance", projection.FinalBalance().String()),
	)

	if req.PrintTable {
		if err := render.ProjectionTable(s.tableWriter, projection, s.rounding.Places); err != nil {
			return nil, fmt.Errorf("rendering projection table: %w", err)
		}
	}

	return projection, nil
}

// MonthlyRate converts an annual percentage rate to the periodic monthly rate
// under the requested convention. The result keeps full working precision.
func MonthlyRate(annualRatePercentage decimal.Decimal, interestType domain.InterestType) (decimal.Decimal, error) {
	if annualRatePercentage.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("%w: annual rate must not be negative, got %s", apperrors.ErrValidation, annualRatePercentage)
	}

	switch interestType {
	case domain.Nominal:
		return annualRatePercentage.DivRound(decimal.NewFromInt(monthsInOneYear*100), workingPlaces), nil
	case domain.Effective:
		// (1 + annual/100)^(1/12) - 1, the twelfth root of the annual growth factor.
		annualGrowth := one.Add(annualRatePercentage.DivRound(oneHundred, workingPlaces))
		exponent := one.DivRound(decimal.NewFromInt(monthsInOneYear), workingPlaces+6)
		monthlyGrowth, err := annualGrowth.PowWithPrecision(exponent, workingPlaces+6)
		if err != nil {
			return decimal.Decimal{}, fmt.Errorf("computing effective monthly rate: %w", err)
		}
		return monthlyGrowth.Sub(one).RoundBank(workingPlaces), nil
	default:
		return decimal.Decimal{}, fmt.Errorf("%w: unknown interest type '%s'", apperrors.ErrValidation, interestType)
	}
}

// fullPrecisionBalances evaluates the closing balance for every month of the
// term using the annuity recurrence
//
//	B(n) = P*(1+r)^n - M*((1+r)^n - 1)/r
//
// at working precision. A zero rate uses the linear limit B(n) = P - M*n; the
// formula's division by r is never reached in that case.
func (s *projectionService) fullPrecisionBalances(params domain.LoanParameters) ([]decimal.Decimal, error) {
	balances := make([]decimal.Decimal, params.TermMonths)

	if params.AnnualRatePercentage.IsZero() {
		for n := 1; n <= params.TermMonths; n++ {
			balances[n-1] = params.Principal.Sub(params.MonthlyPayment.Mul(decimal.NewFromInt(int64(n))))
		}
		return balances, nil
	}

	rate, err := MonthlyRate(params.AnnualRatePercentage, params.InterestType)
	if err != nil {
		return nil, err
	}
	if rate.IsZero() {
		// Guarded separately from the annual-rate check so the division below
		// can never degenerate, whatever the conversion produced.
		return nil, fmt.Errorf("%w: monthly rate underflowed to zero for annual rate %s", apperrors.ErrDegenerateRate, params.AnnualRatePercentage)
	}

	growth := one.Add(rate)
	growthPow := one
	for n := 1; n <= params.TermMonths; n++ {
		// Running power of the growth factor, trimmed back to working
		// precision each step so coefficients stay bounded over long terms.
		growthPow = growthPow.Mul(growth).RoundBank(2 * workingPlaces)
		annuity := params.MonthlyPayment.Mul(growthPow.Sub(one)).DivRound(rate, workingPlaces)
		balances[n-1] = params.Principal.Mul(growthPow).Sub(annuity)
	}
	return balances, nil
}

// reconcile converts the full-precision balances to display precision and
// derives each month's interest as the exact residual that makes
//
//	opening + interest - payment == closing
//
// hold at display precision. Interest is deliberately not rounded
// independently: only the balances are, and interest absorbs the difference.
func (s *projectionService) reconcile(principal decimal.Decimal, fullBalances []decimal.Decimal, payment decimal.Decimal) *domain.LoanProjection {
	months := make([]domain.ProjectionMonth, len(fullBalances))
	opening := s.rounding.Apply(principal)
	for i, balance := range fullBalances {
		closing := s.rounding.Apply(balance)
		months[i] = domain.ProjectionMonth{
			InterestCharged:  closing.Sub(opening).Add(payment),
			RemainingBalance: closing,
		}
		opening = closing
	}
	return &domain.LoanProjection{Months: months}
}
