package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/daily-checklist-backend/internal/services"
)

type DailyTaskHandler struct {
	dailyTaskService services.DailyTaskService
}

func NewDailyTaskHandler(dailyTaskService services.DailyTaskService) *DailyTaskHandler {
	return &DailyTaskHandler{dailyTaskService: dailyTaskService}
}

type dailyTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// GET /api/daily-tasks
func (dh *DailyTaskHandler) List(c *gin.Context) {
	tasks, err := dh.dailyTaskService.List(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, tasks)
}

// POST /api/daily-tasks
func (dh *DailyTaskHandler) Create(c *gin.Context) {
	var req dailyTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	task, err := dh.dailyTaskService.Create(c.Request.Context(), req.Title, req.Description)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, task)
}

// POST /api/daily-tasks/:id
func (dh *DailyTaskHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", fmt.Errorf("invalid daily task id"))
		return
	}
	var req dailyTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	task, err := dh.dailyTaskService.Update(c.Request.Context(), id, req.Title, req.Description)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, task)
}

// DELETE /api/daily-tasks/:id
func (dh *DailyTaskHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", fmt.Errorf("invalid daily task id"))
		return
	}
	if err := dh.dailyTaskService.Delete(c.Request.Context(), id); err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "Daily task deleted", "id": id})
}
