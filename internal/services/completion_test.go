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

func TestSetCompletionTogglesFlag(t *testing.T) {
	db := testutil.DB(t)
	log := testutil.Logger(t)
	instanceRepo := repos.NewTaskInstanceRepo(db, log)
	svc := NewCompletionService(db, log, instanceRepo)
	ctx := context.Background()

	task := testutil.SeedDailyTask(t, ctx, db, "Stretch", "morning routine")
	instance := testutil.SeedTaskInstance(t, ctx, db, task.ID, "2024-01-01")

	item, err := svc.SetCompletion(ctx, instance.ID, true)
	if err != nil {
		t.Fatalf("SetCompletion: %v", err)
	}
	if !item.Completed {
		t.Fatalf("SetCompletion: expected completed=true: %+v", item)
	}
	if item.Title != "Stretch" || item.Description != "morning routine" {
		t.Fatalf("SetCompletion: joined fields missing: %+v", item)
	}

	reread, err := instanceRepo.GetJoinedByID(ctx, nil, instance.ID)
	if err != nil {
		t.Fatalf("GetJoinedByID: %v", err)
	}
	if reread == nil || !reread.Completed {
		t.Fatalf("flag not persisted: %+v", reread)
	}

	item, err = svc.SetCompletion(ctx, instance.ID, false)
	if err != nil {
		t.Fatalf("SetCompletion (untoggle): %v", err)
	}
	if item.Completed {
		t.Fatalf("SetCompletion (untoggle): expected completed=false: %+v", item)
	}
}

func TestSetCompletionMissingInstance(t *testing.T) {
	db := testutil.DB(t)
	log := testutil.Logger(t)
	instanceRepo := repos.NewTaskInstanceRepo(db, log)
	svc := NewCompletionService(db, log, instanceRepo)

	_, err := svc.SetCompletion(context.Background(), uuid.New(), true)
	if err == nil {
		t.Fatalf("SetCompletion: expected error for missing instance")
	}
	var ae *apierr.Error
	if !errors.As(err, &ae) {
		t.Fatalf("SetCompletion: expected apierr.Error, got %T: %v", err, err)
	}
	if ae.Status != http.StatusNotFound || ae.Code != "task_instance_not_found" {
		t.Fatalf("SetCompletion: unexpected error: status=%d code=%q", ae.Status, ae.Code)
	}
}
