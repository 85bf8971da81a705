package handlers

import (
	"errors"
	"net/http"

	"contractor-service/internal/core/domain"

	"github.com/gin-gonic/gin"
)

func mapDomainError(c *gin.Context, err error) {
	switch {
	// Not found errors
	case errors.Is(err, domain.ErrContractorNotFound),
		errors.Is(err, domain.ErrClientNotFound),
		errors.Is(err, domain.ErrProjectNotFound),
		errors.Is(err, domain.ErrEstimateNotFound),
		errors.Is(err, domain.ErrInvoiceNotFound),
		errors.Is(err, domain.ErrAgentNotFound),
		errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrAchievementNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

	// Conflict errors
	case errors.Is(err, domain.ErrContractorEmailConflict),
		errors.Is(err, domain.ErrInvoiceNumberConflict),
		errors.Is(err, domain.ErrEstimateAlreadyConverted),
		errors.Is(err, domain.ErrScheduleConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})

	// Bad request / validation errors
	case errors.Is(err, domain.ErrMissingContractorID),
		errors.Is(err, domain.ErrInvalidContractorID),
		errors.Is(err, domain.ErrInvalidContractorName),
		errors.Is(err, domain.ErrInvalidContractorEmail),
		errors.Is(err, domain.ErrInvalidPlan),
		errors.Is(err, domain.ErrInvalidSubscription),
		errors.Is(err, domain.ErrInvalidClientName),
		errors.Is(err, domain.ErrClientHasProjects),
		errors.Is(err, domain.ErrInvalidProjectName),
		errors.Is(err, domain.ErrInvalidProjectStatus),
		errors.Is(err, domain.ErrInvalidStatusTransition),
		errors.Is(err, domain.ErrInvalidEstimateTitle),
		errors.Is(err, domain.ErrInvalidEstimateStatus),
		errors.Is(err, domain.ErrEstimateHasNoItems),
		errors.Is(err, domain.ErrEstimateNotApproved),
		errors.Is(err, domain.ErrCannotModifyConverted),
		errors.Is(err, domain.ErrInvoiceHasNoItems),
		errors.Is(err, domain.ErrInvoiceNotPayable),
		errors.Is(err, domain.ErrInvalidPaymentAmount),
		errors.Is(err, domain.ErrPaymentExceedsBalance),
		errors.Is(err, domain.ErrCannotDeleteInvoice),
		errors.Is(err, domain.ErrInvalidAgentName),
		errors.Is(err, domain.ErrInvalidEventTitle),
		errors.Is(err, domain.ErrInvalidTimeRange),
		errors.Is(err, domain.ErrNoAnalysisItems):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	// Service unavailable errors
	case errors.Is(err, domain.ErrAnalysisNotAvailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})

	// Upstream gave a response we could not use
	case errors.Is(err, domain.ErrAnalysisFailed):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
