package services

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/google/uuid"

	"github.com/yungbote/daily-checklist-backend/internal/platform/apierr"
	"github.com/yungbote/daily-checklist-backend/internal/repos"
	"github.com/yungbote/daily-checklist-backend/internal/repos/testutil"
)

func newDailyTaskService(t *testing.T) (DailyTaskService, context.Context) {
	t.Helper()
	db := testutil.DB(t)
	log := testutil.Logger(t)
	return NewDailyTaskService(db, log, repos.NewDailyTaskRepo(db, log)), context.Background()
}

func assertAPIError(t *testing.T, err error, status int, code string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error with code %q", code)
	}
	var ae *apierr.Error
	if !errors.As(err, &ae) {
		t.Fatalf("expected apierr.Error, got %T: %v", err, err)
	}
	if ae.Status != status || ae.Code != code {
		t.Fatalf("unexpected error: status=%d code=%q (want %d %q)", ae.Status, ae.Code, status, code)
	}
}

func TestDailyTaskServiceCreateRequiresTitle(t *testing.T) {
	svc, ctx := newDailyTaskService(t)

	_, err := svc.Create(ctx, "", "whatever")
	assertAPIError(t, err, http.StatusBadRequest, "title_required")

	_, err = svc.Create(ctx, "   ", "")
	assertAPIError(t, err, http.StatusBadRequest, "title_required")

	task, err := svc.Create(ctx, "Drink water", "8 glasses")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if task.ID == uuid.Nil || task.Title != "Drink water" {
		t.Fatalf("Create: unexpected task: %+v", task)
	}
}

func TestDailyTaskServiceUpdate(t *testing.T) {
	svc, ctx := newDailyTaskService(t)

	task, err := svc.Create(ctx, "Drink water", "")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := svc.Update(ctx, task.ID, "Hydrate", "often")
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Title != "Hydrate" || updated.Description != "often" {
		t.Fatalf("Update: fields not applied: %+v", updated)
	}

	_, err = svc.Update(ctx, task.ID, "", "")
	assertAPIError(t, err, http.StatusBadRequest, "title_required")

	_, err = svc.Update(ctx, uuid.New(), "X", "")
	assertAPIError(t, err, http.StatusNotFound, "daily_task_not_found")
}

func TestDailyTaskServiceDelete(t *testing.T) {
	svc, ctx := newDailyTaskService(t)

	task, err := svc.Create(ctx, "Drink water", "")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := svc.Delete(ctx, task.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	err = svc.Delete(ctx, task.ID)
	assertAPIError(t, err, http.StatusNotFound, "daily_task_not_found")

	all, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 0 {
		t.Fatalf("List: expected empty, got %d", len(all))
	}
}
