package dto

import (
	"github.com/loanwise/loan_projection_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LoanProjectionRequest carries the inputs of a projection. The dgt0/dgte0
// validators are registered in internal/platform/validation.
type LoanProjectionRequest struct {
	Principal            decimal.Decimal `json:"principal" binding:"required,dgt0"`
	AnnualRatePercentage decimal.Decimal `json:"annualRatePercentage" binding:"dgte0"`
	TermMonths           int             `json:"termMonths" binding:"required,gt=0"`
	MonthlyPayment       decimal.Decimal `json:"monthlyPayment" binding:"required,dgt0"`
	InterestType         string          `json:"interestType" binding:"required,oneof=NOMINAL EFFECTIVE"`
	PrintTable           bool            `json:"printTable"`
}

// ProjectionMonthResponse is one row of the schedule in a response.
type ProjectionMonthResponse struct {
	Month            int             `json:"month"`
	InterestCharged  decimal.Decimal `json:"interestCharged"`
	RemainingBalance decimal.Decimal `json:"remainingBalance"`
}

// LoanProjectionResponse is the reconciled schedule plus summary figures.
type LoanProjectionResponse struct {
	Months  []ProjectionMonthResponse `json:"months"`
	Summary struct {
		TotalInterestCharged decimal.Decimal `json:"totalInterestCharged"`
		FinalBalance         decimal.Decimal `json:"finalBalance"`
	} `json:"summary"`
}

// ToLoanProjectionResponse converts a domain projection to a DTO response.
func ToLoanProjectionResponse(projection *domain.LoanProjection) LoanProjectionResponse {
	response := LoanProjectionResponse{
		Months: make([]ProjectionMonthResponse, len(projection.Months)),
	}
	for i, m := range projection.Months {
		response.Months[i] = ProjectionMonthResponse{
			Month:            i + 1,
			InterestCharged:  m.InterestCharged,
			RemainingBalance: m.RemainingBalance,
		}
	}
	response.Summary.TotalInterestCharged = projection.TotalInterestCharged()
	response.Summary.FinalBalance = projection.FinalBalance()
	return response
}
