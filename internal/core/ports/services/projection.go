package services

import (
	"context"

	"github.com/loanwise/loan_projection_app/internal/core/domain"
	"github.com/loanwise/loan_projection_app/internal/dto"
)

// ProjectionSvc defines the loan projection operation.
type ProjectionSvc interface {
	// ProjectLoan computes the reconciled month-by-month schedule for a loan.
	ProjectLoan(ctx context.Context, req dto.LoanProjectionRequest) (*domain.LoanProjection, error)
}

// ProjectionSvcFacade combines all projection-related service interfaces.
type ProjectionSvcFacade interface {
	ProjectionSvc
}

// ServiceContainer carries the service interfaces handed to route registration.
type ServiceContainer struct {
	Projection ProjectionSvcFacade
}
