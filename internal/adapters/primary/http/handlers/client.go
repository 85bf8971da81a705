package handlers

import (
	"net/http"
	"strconv"

	"contractor-service/internal/adapters/primary/http/dto"
	ports "contractor-service/internal/core/ports/output"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

func (h *Handler) ListClients(c *gin.Context) {
	contractorID, err := getContractorID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	filter := ports.ListFilter{
		ContractorID: contractorID,
		Search:       c.Query("search"),
		SortBy:       c.Query("sort_by"),
		Order:        c.Query("order"),
		Limit:        limit,
		Offset:       offset,
	}

	clients, total, err := h.clientSvc.List(c.Request.Context(), filter)
	if err != nil {
		log.WithError(err).Error("list clients failed")
		mapDomainError(c, err)
		return
	}

	items := make([]dto.ClientResponse, 0, len(clients))
	for _, client := range clients {
		items = append(items, dto.ToClientResponse(client))
	}

	c.JSON(http.StatusOK, dto.ListClientsResponse{
		Items:      items,
		Total:      total,
		PageSize:   limit,
		NextOffset: offset + len(items),
	})
}

func (h *Handler) GetClient(c *gin.Context) {
	contractorID, err := getContractorID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid client id"})
		return
	}

	client, err := h.clientSvc.Get(c.Request.Context(), contractorID, id)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToClientResponse(client))
}

func (h *Handler) CreateClient(c *gin.Context) {
	contractorID, err := getContractorID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req dto.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	client, err := h.clientSvc.Create(
		c.Request.Context(), contractorID,
		req.Name, req.Company, req.Email, req.Phone, req.Address, req.Notes,
	)
	if err != nil {
		log.WithError(err).Error("create client failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToClientResponse(client))
}

func (h *Handler) UpdateClient(c *gin.Context) {
	contractorID, err := getContractorID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid client id"})
		return
	}

	var req dto.UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Company != nil {
		updates["company"] = *req.Company
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}

	client, err := h.clientSvc.Update(c.Request.Context(), contractorID, id, updates)
	if err != nil {
		log.WithError(err).Error("update client failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToClientResponse(client))
}

func (h *Handler) DeleteClient(c *gin.Context) {
	contractorID, err := getContractorID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid client id"})
		return
	}

	if err := h.clientSvc.Delete(c.Request.Context(), contractorID, id); err != nil {
		log.WithError(err).Error("delete client failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
