package handlers

import (
	"net/http"

	"contractor-service/internal/adapters/primary/http/dto"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func (h *Handler) GetDashboardStats(c *gin.Context) {
	contractorID, err := getContractorID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	stats, err := h.statsSvc.Dashboard(c.Request.Context(), contractorID)
	if err != nil {
		log.WithError(err).Error("dashboard stats failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToDashboardStatsResponse(stats))
}
