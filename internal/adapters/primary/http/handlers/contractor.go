package handlers

import (
	"net/http"
	"time"

	"contractor-service/internal/adapters/primary/http/dto"
	"contractor-service/internal/core/domain"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

func (h *Handler) RegisterContractor(c *gin.Context) {
	var req dto.RegisterContractorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	contractor, err := h.contractorSvc.Register(c.Request.Context(), req.CompanyName, req.Email, req.Phone)
	if err != nil {
		log.WithError(err).Error("register contractor failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToContractorResponse(contractor))
}

func (h *Handler) GetContractor(c *gin.Context) {
	contractorID, err := getContractorID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	contractor, err := h.contractorSvc.Get(c.Request.Context(), contractorID)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToContractorResponse(contractor))
}

func (h *Handler) GetSubscription(c *gin.Context) {
	contractorID, err := getContractorID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	contractor, err := h.contractorSvc.Get(c.Request.Context(), contractorID)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	resp := gin.H{
		"plan":   string(contractor.Plan),
		"status": string(contractor.SubscriptionStatus),
	}
	if contractor.RenewsAt != nil {
		resp["renews_at"] = contractor.RenewsAt.Format(time.RFC3339)
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) UpdateSubscription(c *gin.Context) {
	contractorID, err := getContractorID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req dto.UpdateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var contractor *domain.Contractor
	if req.Cancel {
		contractor, err = h.contractorSvc.CancelSubscription(c.Request.Context(), contractorID)
	} else {
		contractor, err = h.contractorSvc.ChangePlan(c.Request.Context(), contractorID, domain.Plan(req.Plan))
	}
	if err != nil {
		log.WithError(err).Error("update subscription failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToContractorResponse(contractor))
}

func getContractorID(c *gin.Context) (uuid.UUID, error) {
	header := c.GetHeader("Contractor-ID")
	if header == "" {
		return uuid.Nil, domain.ErrMissingContractorID
	}
	id, err := uuid.Parse(header)
	if err != nil {
		return uuid.Nil, domain.ErrInvalidContractorID
	}
	return id, nil
}
