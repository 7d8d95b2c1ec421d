package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/daily-checklist-backend/internal/platform/apierr"
	"github.com/yungbote/daily-checklist-backend/internal/types"
)

type fakeChecklistService struct {
	items   []*types.ChecklistItem
	err     error
	lastArg string
}

func (f *fakeChecklistService) EnsureForDate(ctx context.Context, date string) ([]*types.ChecklistItem, error) {
	f.lastArg = date
	if f.err != nil {
		return nil, f.err
	}
	return f.items, nil
}

type fakeCompletionService struct {
	item *types.ChecklistItem
	err  error
}

func (f *fakeCompletionService) SetCompletion(ctx context.Context, id uuid.UUID, completed bool) (*types.ChecklistItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.item, nil
}

func newChecklistRouter(checklist *fakeChecklistService, completion *fakeCompletionService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewChecklistHandler(checklist, completion)
	router := gin.New()
	router.GET("/api/tasks/:date", handler.GetForDate)
	router.POST("/api/tasks/:id", handler.SetCompletion)
	return router
}

func TestGetForDateValidatesDate(t *testing.T) {
	router := newChecklistRouter(&fakeChecklistService{}, &fakeCompletionService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/tasks/not-a-date", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	var envelope ErrorEnvelope
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if envelope.Error.Code != "invalid_date" {
		t.Fatalf("expected invalid_date, got %q", envelope.Error.Code)
	}
}

func TestGetForDateReturnsItems(t *testing.T) {
	item := &types.ChecklistItem{ID: uuid.New(), Date: "2024-01-01", Title: "Drink water"}
	svc := &fakeChecklistService{items: []*types.ChecklistItem{item}}
	router := newChecklistRouter(svc, &fakeCompletionService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/tasks/2024-01-01", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if svc.lastArg != "2024-01-01" {
		t.Fatalf("service called with %q", svc.lastArg)
	}
	var got []*types.ChecklistItem
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(got) != 1 || got[0].Title != "Drink water" {
		t.Fatalf("unexpected payload: %s", w.Body.String())
	}
}

func TestSetCompletionMapsServiceErrors(t *testing.T) {
	completion := &fakeCompletionService{
		err: apierr.New(http.StatusNotFound, "task_instance_not_found", fmt.Errorf("nope")),
	}
	router := newChecklistRouter(&fakeChecklistService{}, completion)

	w := httptest.NewRecorder()
	body := strings.NewReader(`{"completed": true}`)
	req := httptest.NewRequest(http.MethodPost, "/api/tasks/"+uuid.NewString(), body)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	var envelope ErrorEnvelope
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if envelope.Error.Code != "task_instance_not_found" {
		t.Fatalf("expected task_instance_not_found, got %q", envelope.Error.Code)
	}
}

func TestSetCompletionRejectsBadID(t *testing.T) {
	router := newChecklistRouter(&fakeChecklistService{}, &fakeCompletionService{})

	w := httptest.NewRecorder()
	body := strings.NewReader(`{"completed": true}`)
	req := httptest.NewRequest(http.MethodPost, "/api/tasks/42", body)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}
