package handlers

import (
	"net/http"
	"strconv"

	"contractor-service/internal/adapters/primary/http/dto"
	"contractor-service/internal/core/domain"
	ports "contractor-service/internal/core/ports/output"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

func (h *Handler) ListEstimates(c *gin.Context) {
	contractorID, err := getContractorID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	filter := ports.EstimateListFilter{
		ListFilter: ports.ListFilter{
			ContractorID: contractorID,
			Search:       c.Query("search"),
			SortBy:       c.Query("sort_by"),
			Order:        c.Query("order"),
			Limit:        limit,
			Offset:       offset,
		},
		Status: c.Query("status"),
	}
	if clientID, err := uuid.Parse(c.Query("client_id")); err == nil {
		filter.ClientID = clientID
	}

	estimates, total, err := h.estimateSvc.List(c.Request.Context(), filter)
	if err != nil {
		log.WithError(err).Error("list estimates failed")
		mapDomainError(c, err)
		return
	}

	items := make([]dto.EstimateResponse, 0, len(estimates))
	for _, e := range estimates {
		items = append(items, dto.ToEstimateResponse(e))
	}

	c.JSON(http.StatusOK, dto.ListEstimatesResponse{
		Items:      items,
		Total:      total,
		PageSize:   limit,
		NextOffset: offset + len(items),
	})
}

func (h *Handler) GetEstimate(c *gin.Context) {
	contractorID, err := getContractorID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid estimate id"})
		return
	}

	estimate, err := h.estimateSvc.Get(c.Request.Context(), contractorID, id)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEstimateResponse(estimate))
}

func (h *Handler) CreateEstimate(c *gin.Context) {
	contractorID, err := getContractorID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req dto.CreateEstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	estimate, err := h.estimateSvc.Create(
		c.Request.Context(), contractorID, req.ClientID, req.ProjectID,
		req.Title, req.Notes, dto.ToEstimateItems(req.Items), req.ValidUntil,
	)
	if err != nil {
		log.WithError(err).Error("create estimate failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEstimateResponse(estimate))
}

func (h *Handler) UpdateEstimate(c *gin.Context) {
	contractorID, err := getContractorID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid estimate id"})
		return
	}

	var req dto.UpdateEstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := make(map[string]interface{})
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.ValidUntil != nil {
		updates["valid_until"] = *req.ValidUntil
	}

	var items []domain.EstimateItem
	if req.Items != nil {
		items = dto.ToEstimateItems(req.Items)
	}

	estimate, err := h.estimateSvc.Update(c.Request.Context(), contractorID, id, updates, items)
	if err != nil {
		log.WithError(err).Error("update estimate failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEstimateResponse(estimate))
}

func (h *Handler) DeleteEstimate(c *gin.Context) {
	contractorID, err := getContractorID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid estimate id"})
		return
	}

	if err := h.estimateSvc.Delete(c.Request.Context(), contractorID, id); err != nil {
		log.WithError(err).Error("delete estimate failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func (h *Handler) ConvertEstimate(c *gin.Context) {
	contractorID, err := getContractorID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid estimate id"})
		return
	}

	invoice, err := h.estimateSvc.Convert(c.Request.Context(), contractorID, id)
	if err != nil {
		log.WithError(err).Error("convert estimate failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToInvoiceResponse(invoice))
}
