package domain

import (
	"fmt"

	"github.com/loanwise/loan_projection_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// InterestType indicates the method of annual to monthly interest rate conversion.
type InterestType string

const (
	// Nominal divides the annual percentage rate evenly across twelve months.
	Nominal InterestType = "NOMINAL"
	// Effective derives the monthly rate that compounds to the stated annual yield.
	Effective InterestType = "EFFECTIVE"
)

// ParseInterestType validates a raw string against the known conventions.
func ParseInterestType(s string) (InterestType, error) {
	switch InterestType(s) {
	case Nominal:
		return Nominal, nil
	case Effective:
		return Effective, nil
	default:
		return "", fmt.Errorf("%w: unknown interest type '%s'", apperrors.ErrValidation, s)
	}
}

// LoanParameters holds the validated inputs of a projection. Construct via
// NewLoanParameters; a zero value is not meaningful.
type LoanParameters struct {
	Principal            decimal.Decimal
	AnnualRatePercentage decimal.Decimal
	TermMonths           int
	MonthlyPayment       decimal.Decimal
	InterestType         InterestType
}

// NewLoanParameters validates the raw inputs and returns an immutable parameter set.
// maxInputPlaces caps the number of decimal places accepted on money amounts; it
// matches the display precision so inputs can round-trip without loss.
func NewLoanParameters(principal, annualRatePercentage decimal.Decimal, termMonths int, monthlyPayment decimal.Decimal, interestType InterestType, maxInputPlaces int32) (LoanParameters, error) {
	if !principal.IsPositive() {
		return LoanParameters{}, fmt.Errorf("%w: principal must be positive, got %s", apperrors.ErrValidation, principal)
	}
	if principal.Exponent() < -maxInputPlaces {
		return LoanParameters{}, fmt.Errorf("%w: principal %s has more than %d decimal places", apperrors.ErrValidation, principal, maxInputPlaces)
	}
	if annualRatePercentage.IsNegative() {
		return LoanParameters{}, fmt.Errorf("%w: annual rate must not be negative, got %s", apperrors.ErrValidation, annualRatePercentage)
	}
	if termMonths <= 0 {
		return LoanParameters{}, fmt.Errorf("%w: term must be a positive number of months, got %d", apperrors.ErrValidation, termMonths)
	}
	if !monthlyPayment.IsPositive() {
		return LoanParameters{}, fmt.Errorf("%w: monthly payment must be positive, got %s", apperrors.ErrValidation, monthlyPayment)
	}
	if monthlyPayment.Exponent() < -maxInputPlaces {
		return LoanParameters{}, fmt.Errorf("%w: monthly payment %s has more than %d decimal places", apperrors.ErrValidation, monthlyPayment, maxInputPlaces)
	}
	switch interestType {
	case Nominal, Effective:
	default:
		return LoanParameters{}, fmt.Errorf("%w: unknown interest type '%s'", apperrors.ErrValidation, interestType)
	}

	return LoanParameters{
		Principal:            principal,
		AnnualRatePercentage: annualRatePercentage,
		TermMonths:           termMonths,
		MonthlyPayment:       monthlyPayment,
		InterestType:         interestType,
	}, nil
}

// ProjectionMonth is one row of a projection: the interest charged during the
// month and the balance remaining at its end, both at display precision.
type ProjectionMonth struct {
	InterestCharged  decimal.Decimal
	RemainingBalance decimal.Decimal
}

// LoanProjection is the reconciled month-by-month schedule for a loan.
// Index 0 corresponds to month 1. Immutable after construction.
type LoanProjection struct {
	Months []ProjectionMonth
}

// MonthEndBalances returns just the closing balance column.
func (p LoanProjection) MonthEndBalances() []decimal.Decimal {
	balances := make([]decimal.Decimal, len(p.Months))
	for i, m := range p.Months {
		balances[i] = m.RemainingBalance
	}
	return balances
}

// MonthlyInterestCharged returns just the interest column.
func (p LoanProjection) MonthlyInterestCharged() []decimal.Decimal {
	interest := make([]decimal.Decimal, len(p.Months))
	for i, m := range p.Months {
		interest[i] = m.InterestCharged
	}
	return interest
}

// TotalInterestCharged sums the reconciled interest over the whole term.
func (p LoanProjection) TotalInterestCharged() decimal.Decimal {
	total := decimal.Zero
	for _, m := range p.Months {
		total = total.Add(m.InterestCharged)
	}
	return total
}

// FinalBalance returns the closing balance of the last month. It may be
// negative when the configured payment overshoots the remaining debt.
func (p LoanProjection) FinalBalance() decimal.Decimal {
	if len(p.Months) == 0 {
		return decimal.Zero
	}
	return p.Months[len(p.Months)-1].RemainingBalance
}
