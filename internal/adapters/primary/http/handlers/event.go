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

func (h *Handler) ListEvents(c *gin.Context) {
	contractorID, err := getContractorID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	filter := ports.EventListFilter{
		ListFilter: ports.ListFilter{
			ContractorID: contractorID,
			Search:       c.Query("search"),
			SortBy:       c.Query("sort_by"),
			Order:        c.Query("order"),
			Limit:        limit,
			Offset:       offset,
		},
	}
	if agentID, err := uuid.Parse(c.Query("agent_id")); err == nil {
		filter.AgentID = agentID
	}
	if projectID, err := uuid.Parse(c.Query("project_id")); err == nil {
		filter.ProjectID = projectID
	}
	if from, err := time.Parse(time.RFC3339, c.Query("from")); err == nil {
		filter.From = from
	}
	if to, err := time.Parse(time.RFC3339, c.Query("to")); err == nil {
		filter.To = to
	}

	events, total, err := h.eventSvc.List(c.Request.Context(), filter)
	if err != nil {
		log.WithError(err).Error("list events failed")
		mapDomainError(c, err)
		return
	}

	items := make([]dto.EventResponse, 0, len(events))
	for _, e := range events {
		items = append(items, dto.ToEventResponse(e))
	}

	c.JSON(http.StatusOK, dto.ListEventsResponse{
		Items:      items,
		Total:      total,
		PageSize:   limit,
		NextOffset: offset + len(items),
	})
}

func (h *Handler) GetEvent(c *gin.Context) {
	contractorID, err := getContractorID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event id"})
		return
	}

	event, err := h.eventSvc.Get(c.Request.Context(), contractorID, id)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) CreateEvent(c *gin.Context) {
	contractorID, err := getContractorID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	event, err := h.eventSvc.Create(
		c.Request.Context(), contractorID, req.AgentID, req.ProjectID,
		req.Title, req.Notes, req.StartsAt, req.EndsAt,
	)
	if err != nil {
		log.WithError(err).Error("create event failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

func (h *Handler) UpdateEvent(c *gin.Context) {
	contractorID, err := getContractorID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event id"})
		return
	}

	var req dto.UpdateEventRequest
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
	if req.StartsAt != nil {
		updates["starts_at"] = *req.StartsAt
	}
	if req.EndsAt != nil {
		updates["ends_at"] = *req.EndsAt
	}
	if req.ClearAgent {
		updates["agent_id"] = nil
	} else if req.AgentID != nil {
		updates["agent_id"] = *req.AgentID
	}
	if req.ClearProject {
		updates["project_id"] = nil
	} else if req.ProjectID != nil {
		updates["project_id"] = *req.ProjectID
	}

	event, err := h.eventSvc.Update(c.Request.Context(), contractorID, id, updates)
	if err != nil {
		log.WithError(err).Error("update event failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) DeleteEvent(c *gin.Context) {
	contractorID, err := getContractorID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event id"})
		return
	}

	if err := h.eventSvc.Delete(c.Request.Context(), contractorID, id); err != nil {
		log.WithError(err).Error("delete event failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
