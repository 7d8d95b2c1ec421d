package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/daily-checklist-backend/internal/services"
)

type ChecklistHandler struct {
	checklistService  services.ChecklistService
	completionService services.CompletionService
}

func NewChecklistHandler(checklistService services.ChecklistService, completionService services.CompletionService) *ChecklistHandler {
	return &ChecklistHandler{
		checklistService:  checklistService,
		completionService: completionService,
	}
}

// GET /api/tasks/:date
func (ch *ChecklistHandler) GetForDate(c *gin.Context) {
	date := c.Param("date")
	if _, err := time.Parse("2006-01-02", date); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_date", fmt.Errorf("date must be YYYY-MM-DD"))
		return
	}
	items, err := ch.checklistService.EnsureForDate(c.Request.Context(), date)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, items)
}

type setCompletionRequest struct {
	Completed bool `json:"completed"`
}

// POST /api/tasks/:id
func (ch *ChecklistHandler) SetCompletion(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", fmt.Errorf("invalid task instance id"))
		return
	}
	var req setCompletionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	item, err := ch.completionService.SetCompletion(c.Request.Context(), id, req.Completed)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, item)
}
