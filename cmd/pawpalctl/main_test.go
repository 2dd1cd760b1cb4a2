package main

import (
	"bytes"
	"context"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"pawpal-planner/internal/domain/planner"
	"pawpal-planner/internal/domain/tasks"
	"pawpal-planner/internal/router"
)

func newServer(t *testing.T) string {
	t.Helper()

	svc := planner.NewService(nil, nil)
	_, _ = svc.AddOwner("Taylor")
	_, _ = svc.AddPet("Taylor", planner.AddPetInput{Name: "Fido"})

	nine := time.Date(2026, 2, 15, 9, 0, 0, 0, time.UTC)
	_, _ = svc.ScheduleTask("Taylor", "Fido", tasks.NewInput{ID: "t1", Title: "Morning walk", DueAt: &nine, Priority: 2, Recurrence: tasks.Daily(1)})
	_, _ = svc.ScheduleTask("Taylor", "Fido", tasks.NewInput{ID: "t2", Title: "Medication", DueAt: &nine, Priority: 5})

	ts := httptest.NewServer(router.NewRouter(router.Options{Service: svc}))
	t.Cleanup(ts.Close)
	return ts.URL
}

func TestRun_Agenda(t *testing.T) {
	addr := newServer(t)

	var out bytes.Buffer
	if err := run(context.Background(), []string{"-addr", addr, "-date", "2026-02-15", "agenda"}, &out, &out); err != nil {
		t.Fatalf("run error: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "Agenda 2026-02-15") {
		t.Fatalf("missing header: %s", got)
	}
	if strings.Index(got, "Medication") > strings.Index(got, "Morning walk") {
		t.Fatalf("expected Medication listed first: %s", got)
	}
}

func TestRun_ConflictsAndComplete(t *testing.T) {
	addr := newServer(t)

	var out bytes.Buffer
	if err := run(context.Background(), []string{"-addr", addr, "-date", "2026-02-15", "conflicts"}, &out, &out); err != nil {
		t.Fatalf("run error: %v", err)
	}
	if !strings.Contains(out.String(), "0 overlapping pair(s)") || !strings.Contains(out.String(), "WARNING: Conflict at 2026-02-15 09:00:00") {
		t.Fatalf("unexpected conflicts output: %s", out.String())
	}

	out.Reset()
	if err := run(context.Background(), []string{"-addr", addr, "complete", "Taylor", "Fido", "t1"}, &out, &out); err != nil {
		t.Fatalf("run error: %v", err)
	}
	if !strings.Contains(out.String(), "completed Morning walk (t1)") || !strings.Contains(out.String(), "due 2026-02-16 09:00") {
		t.Fatalf("unexpected complete output: %s", out.String())
	}
}

func TestRun_UsageErrors(t *testing.T) {
	var out bytes.Buffer
	if err := run(context.Background(), nil, &out, &out); !errors.Is(err, errUsage) {
		t.Fatalf("expected usage error, got %v", err)
	}
	if err := run(context.Background(), []string{"complete", "Taylor"}, &out, &out); !errors.Is(err, errUsage) {
		t.Fatalf("expected usage error, got %v", err)
	}
	if err := run(context.Background(), []string{"bogus"}, &out, &out); !errors.Is(err, errUsage) {
		t.Fatalf("expected usage error for unknown command, got %v", err)
	}
	if err := run(context.Background(), []string{"-date", "15/02/2026", "agenda"}, &out, &out); err == nil {
		t.Fatalf("expected date error")
	}
}
