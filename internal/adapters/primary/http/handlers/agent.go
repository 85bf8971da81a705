package handlers

import (
	"net/http"
	"strconv"
	"time"

	"contractor-service/internal/adapters/primary/http/dto"
	ports "contractor-service/internal/core/ports/output"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

func (h *Handler) ListAgents(c *gin.Context) {
	contractorID, err := getContractorID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	filter := ports.AgentListFilter{
		ListFilter: ports.ListFilter{
			ContractorID: contractorID,
			Search:       c.Query("search"),
			SortBy:       c.Query("sort_by"),
			Order:        c.Query("order"),
			Limit:        limit,
			Offset:       offset,
		},
	}
	if active, err := strconv.ParseBool(c.Query("active")); err == nil {
		filter.Active = &active
	}

	agents, total, err := h.agentSvc.List(c.Request.Context(), filter)
	if err != nil {
		log.WithError(err).Error("list agents failed")
		mapDomainError(c, err)
		return
	}

	items := make([]dto.AgentResponse, 0, len(agents))
	for _, a := range agents {
		items = append(items, dto.ToAgentResponse(a))
	}

	c.JSON(http.StatusOK, dto.ListAgentsResponse{
		Items:      items,
		Total:      total,
		PageSize:   limit,
		NextOffset: offset + len(items),
	})
}

func (h *Handler) GetAgent(c *gin.Context) {
	contractorID, err := getContractorID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid agent id"})
		return
	}

	agent, err := h.agentSvc.Get(c.Request.Context(), contractorID, id)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAgentResponse(agent))
}

func (h *Handler) CreateAgent(c *gin.Context) {
	contractorID, err := getContractorID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req dto.CreateAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	agent, err := h.agentSvc.Create(c.Request.Context(), contractorID, req.Name, req.Email, req.Phone, req.Role)
	if err != nil {
		log.WithError(err).Error("create agent failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToAgentResponse(agent))
}

func (h *Handler) UpdateAgent(c *gin.Context) {
	contractorID, err := getContractorID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid agent id"})
		return
	}

	var req dto.UpdateAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.Role != nil {
		updates["role"] = *req.Role
	}
	if req.Active != nil {
		updates["active"] = *req.Active
	}

	agent, err := h.agentSvc.Update(c.Request.Context(), contractorID, id, updates)
	if err != nil {
		log.WithError(err).Error("update agent failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAgentResponse(agent))
}

func (h *Handler) DeleteAgent(c *gin.Context) {
	contractorID, err := getContractorID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid agent id"})
		return
	}

	if err := h.agentSvc.Delete(c.Request.Context(), contractorID, id); err != nil {
		log.WithError(err).Error("delete agent failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func (h *Handler) GetAgentSchedule(c *gin.Context) {
	contractorID, err := getContractorID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid agent id"})
		return
	}

	from, err := time.Parse(time.RFC3339, c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from timestamp"})
		return
	}
	to, err := time.Parse(time.RFC3339, c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid to timestamp"})
		return
	}

	events, err := h.agentSvc.Schedule(c.Request.Context(), contractorID, id, from, to)
	if err != nil {
		log.WithError(err).Error("agent schedule lookup failed")
		mapDomainError(c, err)
		return
	}

	items := make([]dto.EventResponse, 0, len(events))
	for _, e := range events {
		items = append(items, dto.ToEventResponse(e))
	}

	c.JSON(http.StatusOK, dto.AgentScheduleResponse{
		AgentID: id,
		From:    from.Format(time.RFC3339),
		To:      to.Format(time.RFC3339),
		Events:  items,
	})
}
