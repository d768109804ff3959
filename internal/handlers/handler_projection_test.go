package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/loanwise/loan_projection_app/internal/apperrors"
	"github.com/loanwise/loan_projection_app/internal/core/domain"
	portssvc "github.com/loanwise/loan_projection_app/internal/core/ports/services"
	"github.com/loanwise/loan_projection_app/internal/dto"
	"github.com/loanwise/loan_projection_app/internal/handlers"
	"github.com/loanwise/loan_projection_app/internal/platform/validation"
	"github.com/loanwise/loan_projection_app/pkg/config"
)

// --- Mock ProjectionService ---
type MockProjectionService struct {
	mock.Mock
}

func (m *MockProjectionService) ProjectLoan(ctx context.Context, req dto.LoanProjectionRequest) (*domain.LoanProjection, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LoanProjection), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.ProjectionSvcFacade = (*MockProjectionService)(nil)

// --- Test Suite Setup ---

type ProjectionHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockProjectionService
}

func (suite *ProjectionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.Require().NoError(validation.RegisterDecimalValidators())

	suite.mockService = new(MockProjectionService)
	suite.router = gin.New()
	// IsProduction skips the swagger routes, which the tests don't exercise.
	handlers.RegisterRoutes(suite.router, &config.Config{IsProduction: true}, &portssvc.ServiceContainer{
		Projection: suite.mockService,
	})
}

func (suite *ProjectionHandlerTestSuite) postProjection(body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/loans/projection", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *ProjectionHandlerTestSuite) TestProjectLoan_Success() {
	projection := &domain.LoanProjection{
		Months: []domain.ProjectionMonth{
			{InterestCharged: decimal.RequireFromString("337.50"), RemainingBalance: decimal.RequireFromString("98806.90")},
			{InterestCharged: decimal.RequireFromString("333.47"), RemainingBalance: decimal.RequireFromString("97609.77")},
		},
	}
	suite.mockService.On("ProjectLoan", mock.Anything, mock.AnythingOfType("dto.LoanProjectionRequest")).Return(projection, nil).Once()

	w := suite.postProjection(`{
		"principal": "100000",
		"annualRatePercentage": "4.05",
		"termMonths": 4,
		"monthlyPayment": "1530.60",
		"interestType": "NOMINAL"
	}`)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.LoanProjectionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp.Months, 2)
	suite.Equal(1, resp.Months[0].Month)
	suite.True(resp.Months[0].InterestCharged.Equal(decimal.RequireFromString("337.50")))
	suite.True(resp.Summary.FinalBalance.Equal(decimal.RequireFromString("97609.77")))
	suite.True(resp.Summary.TotalInterestCharged.Equal(decimal.RequireFromString("670.97")))

	suite.mockService.AssertExpectations(suite.T())
}

func (suite *ProjectionHandlerTestSuite) TestProjectLoan_BindingRejectsBadPayload() {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing principal", body: `{"annualRatePercentage": "4.05", "termMonths": 4, "monthlyPayment": "1530.60", "interestType": "NOMINAL"}`},
		{name: "zero principal", body: `{"principal": "0", "annualRatePercentage": "4.05", "termMonths": 4, "monthlyPayment": "1530.60", "interestType": "NOMINAL"}`},
		{name: "negative rate", body: `{"principal": "100000", "annualRatePercentage": "-1", "termMonths": 4, "monthlyPayment": "1530.60", "interestType": "NOMINAL"}`},
		{name: "zero term", body: `{"principal": "100000", "annualRatePercentage": "4.05", "termMonths": 0, "monthlyPayment": "1530.60", "interestType": "NOMINAL"}`},
		{name: "unknown interest type", body: `{"principal": "100000", "annualRatePercentage": "4.05", "termMonths": 4, "monthlyPayment": "1530.60", "interestType": "INVALID"}`},
		{name: "malformed json", body: `{"principal": `},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			w := suite.postProjection(tt.body)
			suite.Equal(http.StatusBadRequest, w.Code, tt.name)
		})
	}

	// The service must never be reached when binding fails.
	suite.mockService.AssertNotCalled(suite.T(), "ProjectLoan", mock.Anything, mock.Anything)
}

func (suite *ProjectionHandlerTestSuite) TestProjectLoan_ServiceValidationError() {
	suite.mockService.On("ProjectLoan", mock.Anything, mock.AnythingOfType("dto.LoanProjectionRequest")).
		Return(nil, fmt.Errorf("%w: principal 1000.111 has more than 2 decimal places", apperrors.ErrValidation)).Once()

	w := suite.postProjection(`{
		"principal": "1000.111",
		"annualRatePercentage": "4.05",
		"termMonths": 4,
		"monthlyPayment": "1530.60",
		"interestType": "NOMINAL"
	}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *ProjectionHandlerTestSuite) TestProjectLoan_ServiceInternalError() {
	suite.mockService.On("ProjectLoan", mock.Anything, mock.AnythingOfType("dto.LoanProjectionRequest")).
		Return(nil, fmt.Errorf("table writer failed")).Once()

	w := suite.postProjection(`{
		"principal": "100000",
		"annualRatePercentage": "4.05",
		"termMonths": 4,
		"monthlyPayment": "1530.60",
		"interestType": "NOMINAL"
	}`)

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *ProjectionHandlerTestSuite) TestHealthCheck() {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

func TestProjectionHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectionHandlerTestSuite))
}
