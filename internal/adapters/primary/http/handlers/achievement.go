package handlers

import (
	"net/http"

	"contractor-service/internal/adapters/primary/http/dto"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func (h *Handler) ListAchievements(c *gin.Context) {
	contractorID, err := getContractorID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	statuses, err := h.achievementSvc.List(c.Request.Context(), contractorID)
	if err != nil {
		log.WithError(err).Error("list achievements failed")
		mapDomainError(c, err)
		return
	}

	items := make([]dto.AchievementResponse, 0, len(statuses))
	for _, status := range statuses {
		items = append(items, dto.ToAchievementResponse(*status))
	}

	c.JSON(http.StatusOK, dto.ListAchievementsResponse{Items: items})
}

func (h *Handler) EvaluateAchievements(c *gin.Context) {
	contractorID, err := getContractorID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	awarded, err := h.achievementSvc.Evaluate(c.Request.Context(), contractorID)
	if err != nil {
		log.WithError(err).Error("evaluate achievements failed")
		mapDomainError(c, err)
		return
	}

	codes := make([]string, 0, len(awarded))
	for _, code := range awarded {
		codes = append(codes, string(code))
	}

	c.JSON(http.StatusOK, gin.H{"awarded": codes})
}
