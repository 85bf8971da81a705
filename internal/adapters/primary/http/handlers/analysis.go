package handlers

import (
	"net/http"

	"contractor-service/internal/adapters/primary/http/dto"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func (h *Handler) AnalyzeCost(c *gin.Context) {
	contractorID, err := getContractorID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req dto.CostAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	analysis, err := h.analysisSvc.AnalyzeCost(
		c.Request.Context(), contractorID, req.EstimateID, dto.ToAnalysisItems(req.Items),
	)
	if err != nil {
		log.WithError(err).Error("cost analysis failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCostAnalysisResponse(analysis))
}
