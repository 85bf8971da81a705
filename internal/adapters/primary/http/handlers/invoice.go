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

func (h *Handler) ListInvoices(c *gin.Context) {
	contractorID, err := getContractorID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	filter := ports.InvoiceListFilter{
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
	if projectID, err := uuid.Parse(c.Query("project_id")); err == nil {
		filter.ProjectID = projectID
	}

	invoices, total, err := h.invoiceSvc.List(c.Request.Context(), filter)
	if err != nil {
		log.WithError(err).Error("list invoices failed")
		mapDomainError(c, err)
		return
	}

	items := make([]dto.InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		items = append(items, dto.ToInvoiceResponse(inv))
	}

	c.JSON(http.StatusOK, dto.ListInvoicesResponse{
		Items:      items,
		Total:      total,
		PageSize:   limit,
		NextOffset: offset + len(items),
	})
}

func (h *Handler) GetInvoice(c *gin.Context) {
	contractorID, err := getContractorID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid invoice id"})
		return
	}

	invoice, err := h.invoiceSvc.Get(c.Request.Context(), contractorID, id)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToInvoiceResponse(invoice))
}

func (h *Handler) CreateInvoice(c *gin.Context) {
	contractorID, err := getContractorID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req dto.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	invoice, err := h.invoiceSvc.Create(
		c.Request.Context(), contractorID, req.ClientID, req.ProjectID,
		dto.ToInvoiceItems(req.Items), req.DueAt, req.Draft,
	)
	if err != nil {
		log.WithError(err).Error("create invoice failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToInvoiceResponse(invoice))
}

func (h *Handler) UpdateInvoice(c *gin.Context) {
	contractorID, err := getContractorID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid invoice id"})
		return
	}

	var req dto.UpdateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := make(map[string]interface{})
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.DueAt != nil {
		updates["due_at"] = *req.DueAt
	}

	var items []domain.InvoiceItem
	if req.Items != nil {
		items = dto.ToInvoiceItems(req.Items)
	}

	invoice, err := h.invoiceSvc.Update(c.Request.Context(), contractorID, id, updates, items)
	if err != nil {
		log.WithError(err).Error("update invoice failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToInvoiceResponse(invoice))
}

func (h *Handler) DeleteInvoice(c *gin.Context) {
	contractorID, err := getContractorID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid invoice id"})
		return
	}

	if err := h.invoiceSvc.Delete(c.Request.Context(), contractorID, id); err != nil {
		log.WithError(err).Error("delete invoice failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func (h *Handler) RecordPayment(c *gin.Context) {
	contractorID, err := getContractorID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid invoice id"})
		return
	}

	var req dto.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	invoice, err := h.invoiceSvc.Pay(c.Request.Context(), contractorID, id, req.AmountCents)
	if err != nil {
		log.WithError(err).Error("record payment failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToInvoiceResponse(invoice))
}
