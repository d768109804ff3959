package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/loanwise/loan_projection_app/internal/apperrors"
	portssvc "github.com/loanwise/loan_projection_app/internal/core/ports/services"
	"github.com/loanwise/loan_projection_app/internal/dto"
	"github.com/loanwise/loan_projection_app/internal/middleware"
)

// projectionHandler handles HTTP requests related to loan projections.
type projectionHandler struct {
	projectionService portssvc.ProjectionSvcFacade
}

// newProjectionHandler creates a new projectionHandler.
func newProjectionHandler(ps portssvc.ProjectionSvcFacade) *projectionHandler {
	return &projectionHandler{
		projectionService: ps,
	}
}

// registerLoanRoutes registers routes related to loan projections.
func registerLoanRoutes(rg *gin.RouterGroup, projectionService portssvc.ProjectionSvcFacade) {
	h := newProjectionHandler(projectionService)

	loans := rg.Group("/loans")
	{
		loans.POST("/projection", h.projectLoan)
	}
}

// projectLoan godoc
// @Summary Compute a loan projection
// @Description Computes the month-by-month interest and remaining balance for a fixed-payment loan
// @Tags loans
// @Accept  json
// @Produce  json
// @Param   loan body dto.LoanProjectionRequest true "Loan parameters"
// @Success 200 {object} dto.LoanProjectionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to compute projection"
// @Router /loans/projection [post]
func (h *projectionHandler) projectLoan(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.LoanProjectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ProjectLoan", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to project loan",
		slog.Int("term_months", req.TermMonths),
		slog.String("interest_type", req.InterestType),
	)

	projection, err := h.projectionService.ProjectLoan(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error projecting loan", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to project loan in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute projection"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToLoanProjectionResponse(projection))
}
