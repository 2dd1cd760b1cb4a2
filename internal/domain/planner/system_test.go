package planner

import (
	"errors"
	"strings"
	"testing"
	"time"

	"pawpal-planner/internal/domain/owners"
	"pawpal-planner/internal/domain/pets"
	"pawpal-planner/internal/domain/tasks"
)

// -------------------------
// Helpers
// -------------------------

func ts(y int, m time.Month, d, hh, mm int) *time.Time {
	t := time.Date(y, m, d, hh, mm, 0, 0, time.UTC)
	return &t
}

func minutes(n int) *time.Duration {
	d := time.Duration(n) * time.Minute
	return &d
}

var feb15 = time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC)

// newTaylor arma Taylor con Fido y Whiskers registrados.
func newTaylor(t *testing.T) (*System, *owners.Owner, *pets.Pet, *pets.Pet) {
	t.Helper()

	sys := NewSystem()
	owner := owners.New("Taylor")
	if err := sys.AddOwner(owner); err != nil {
		t.Fatalf("AddOwner error: %v", err)
	}

	fido := pets.New("Fido", "Dog", 4, "")
	whiskers := pets.New("Whiskers", "Cat", 2, "")
	if err := owner.AddPet(fido); err != nil {
		t.Fatalf("AddPet error: %v", err)
	}
	if err := owner.AddPet(whiskers); err != nil {
		t.Fatalf("AddPet error: %v", err)
	}
	return sys, owner, fido, whiskers
}

func titles(in []*tasks.Task) []string {
	out := make([]string, 0, len(in))
	for _, t := range in {
		out = append(out, t.Title)
	}
	return out
}

// -------------------------
// Registry
// -------------------------

func TestSystem_AddOwner_DuplicateLeavesRegistryUnchanged(t *testing.T) {
	sys := NewSystem()
	first := owners.New("Taylor")
	if err := sys.AddOwner(first); err != nil {
		t.Fatalf("AddOwner #1 error: %v", err)
	}

	err := sys.AddOwner(owners.New("Taylor"))
	if !errors.Is(err, ErrDuplicateName) {
		t.Fatalf("expected ErrDuplicateName, got %v", err)
	}

	all := sys.Owners()
	if len(all) != 1 || all[0] != first {
		t.Fatalf("expected registry to keep only the first owner")
	}
	got, err := sys.Owner("Taylor")
	if err != nil || got != first {
		t.Fatalf("expected lookup to return first owner")
	}
}

func TestSystem_ScheduleTask_ByNameAndByID(t *testing.T) {
	sys, _, fido, whiskers := newTaylor(t)

	walk := tasks.New(tasks.NewInput{ID: "t1", Title: "Morning walk", DueAt: ts(2026, 2, 15, 9, 0)})
	if err := sys.ScheduleTask("Taylor", "Fido", walk); err != nil {
		t.Fatalf("ScheduleTask by name error: %v", err)
	}
	brush := tasks.New(tasks.NewInput{ID: "t2", Title: "Brush", DueAt: ts(2026, 2, 15, 10, 0)})
	if err := sys.ScheduleTask("Taylor", whiskers.ID, brush); err != nil {
		t.Fatalf("ScheduleTask by id error: %v", err)
	}

	if walk.PetID != fido.ID || brush.PetID != whiskers.ID {
		t.Fatalf("expected tasks stamped with their pet ids")
	}
	if len(fido.Tasks) != 1 || len(whiskers.Tasks) != 1 {
		t.Fatalf("expected one task per pet")
	}
}

func TestSystem_ScheduleTask_NotFoundPathsAreDistinguishable(t *testing.T) {
	sys, _, _, _ := newTaylor(t)
	task := tasks.New(tasks.NewInput{Title: "x"})

	err := sys.ScheduleTask("Nobody", "Fido", task)
	if !errors.Is(err, ErrOwnerNotFound) || !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected owner not found, got %v", err)
	}
	if errors.Is(err, ErrPetNotFound) {
		t.Fatalf("owner failure must not look like pet failure")
	}

	err = sys.ScheduleTask("Taylor", "Rex", task)
	if !errors.Is(err, ErrPetNotFound) || !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected pet not found, got %v", err)
	}
	if task.PetID != "" {
		t.Fatalf("failed scheduling must not stamp the task")
	}
}

func TestSystem_MarkTaskComplete_NotFound(t *testing.T) {
	sys, _, _, _ := newTaylor(t)

	if _, err := sys.MarkTaskComplete("Nobody", "Fido", "t1"); !errors.Is(err, ErrOwnerNotFound) {
		t.Fatalf("expected owner not found, got %v", err)
	}
	if _, err := sys.MarkTaskComplete("Taylor", "Rex", "t1"); !errors.Is(err, ErrPetNotFound) {
		t.Fatalf("expected pet not found, got %v", err)
	}
	if _, err := sys.MarkTaskComplete("Taylor", "Fido", "t1"); !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("expected task not found, got %v", err)
	}
}

// -------------------------
// Roll-forward
// -------------------------

func TestSystem_MarkTaskComplete_DailyRollsForwardOneDay(t *testing.T) {
	sys, _, fido, _ := newTaylor(t)

	feed := tasks.New(tasks.NewInput{
		ID:         "t1",
		Title:      "Feed",
		DueAt:      ts(2026, 2, 15, 9, 0),
		Duration:   minutes(15),
		Priority:   4,
		Recurrence: tasks.Daily(1),
	})
	if err := sys.ScheduleTask("Taylor", "Fido", feed); err != nil {
		t.Fatalf("ScheduleTask error: %v", err)
	}

	next, err := sys.MarkTaskComplete("Taylor", "Fido", "t1")
	if err != nil {
		t.Fatalf("MarkTaskComplete error: %v", err)
	}

	if feed.Status != tasks.StatusDone {
		t.Fatalf("expected original done, got %s", feed.Status)
	}
	if len(fido.Tasks) != 2 {
		t.Fatalf("expected exactly one additional task, got %d tasks", len(fido.Tasks))
	}
	if next == nil || fido.Tasks[1] != next {
		t.Fatalf("expected returned task to be attached to the pet")
	}
	if next.ID == feed.ID {
		t.Fatalf("expected a new identity")
	}
	if next.Title != "Feed" || next.Status != tasks.StatusPending {
		t.Fatalf("unexpected follow-up: %+v", next)
	}
	if !next.DueAt.Equal(*ts(2026, 2, 16, 9, 0)) {
		t.Fatalf("expected due 2026-02-16 09:00, got %s", next.DueAt)
	}
	if next.Priority != 4 || *next.Duration != 15*time.Minute || *next.Recurrence != *feed.Recurrence {
		t.Fatalf("expected priority/duration/recurrence carried over")
	}
	if next.Recurrence == feed.Recurrence || next.Duration == feed.Duration {
		t.Fatalf("expected follow-up with its own recurrence and duration")
	}
	if next.PetID != fido.ID {
		t.Fatalf("expected follow-up stamped with pet id")
	}
}

func TestSystem_MarkTaskComplete_WeeklyRollsForwardSevenDays(t *testing.T) {
	sys, _, _, whiskers := newTaylor(t)

	groom := tasks.New(tasks.NewInput{ID: "g", Title: "Grooming", DueAt: ts(2026, 2, 15, 15, 0), Recurrence: tasks.Weekly(1)})
	_ = sys.ScheduleTask("Taylor", "Whiskers", groom)

	next, err := sys.MarkTaskComplete("Taylor", "Whiskers", "g")
	if err != nil {
		t.Fatalf("MarkTaskComplete error: %v", err)
	}
	if next == nil || !next.DueAt.Equal(*ts(2026, 2, 22, 15, 0)) {
		t.Fatalf("expected follow-up due 2026-02-22 15:00, got %+v", next)
	}
	if len(whiskers.Tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(whiskers.Tasks))
	}
}

func TestSystem_MarkTaskComplete_IgnoresIntervalForRollForward(t *testing.T) {
	sys, _, _, _ := newTaylor(t)

	meds := tasks.New(tasks.NewInput{ID: "m", Title: "Meds", DueAt: ts(2026, 2, 15, 9, 0), Recurrence: tasks.Daily(3)})
	_ = sys.ScheduleTask("Taylor", "Fido", meds)

	next, err := sys.MarkTaskComplete("Taylor", "Fido", "m")
	if err != nil {
		t.Fatalf("MarkTaskComplete error: %v", err)
	}
	if !next.DueAt.Equal(*ts(2026, 2, 16, 9, 0)) {
		t.Fatalf("expected one-day step regardless of interval, got %s", next.DueAt)
	}
}

func TestSystem_MarkTaskComplete_NonRecurringCreatesNothing(t *testing.T) {
	sys, _, fido, _ := newTaylor(t)

	vet := tasks.New(tasks.NewInput{ID: "v", Title: "Vet", DueAt: ts(2026, 2, 15, 11, 0)})
	monthly := tasks.New(tasks.NewInput{
		ID:         "mo",
		Title:      "Flea treatment",
		DueAt:      ts(2026, 2, 15, 12, 0),
		Recurrence: &tasks.Recurrence{Frequency: "monthly", Interval: 1},
	})
	_ = sys.ScheduleTask("Taylor", "Fido", vet)
	_ = sys.ScheduleTask("Taylor", "Fido", monthly)

	for _, id := range []string{"v", "mo"} {
		next, err := sys.MarkTaskComplete("Taylor", "Fido", id)
		if err != nil {
			t.Fatalf("MarkTaskComplete(%s) error: %v", id, err)
		}
		if next != nil {
			t.Fatalf("expected no follow-up for %s", id)
		}
	}
	if len(fido.Tasks) != 2 {
		t.Fatalf("expected no new tasks, got %d", len(fido.Tasks))
	}
	if vet.Status != tasks.StatusDone || monthly.Status != tasks.StatusDone {
		t.Fatalf("expected both marked done")
	}
}

// -------------------------
// Removal
// -------------------------

func TestSystem_RemoveTaskAndPet(t *testing.T) {
	sys, owner, fido, _ := newTaylor(t)
	_ = sys.ScheduleTask("Taylor", "Fido", tasks.New(tasks.NewInput{ID: "t1", Title: "walk"}))

	if err := sys.RemoveTask("Taylor", "Fido", "t1"); err != nil {
		t.Fatalf("RemoveTask error: %v", err)
	}
	if len(fido.Tasks) != 0 {
		t.Fatalf("expected task removed")
	}
	if err := sys.RemoveTask("Taylor", "Fido", "t1"); !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("expected task not found on second removal, got %v", err)
	}

	if err := sys.RemovePet("Taylor", "Fido"); err != nil {
		t.Fatalf("RemovePet error: %v", err)
	}
	if err := sys.RemovePet("Taylor", "Fido"); !errors.Is(err, ErrPetNotFound) {
		t.Fatalf("expected pet not found on second removal, got %v", err)
	}
	if len(owner.Pets) != 1 {
		t.Fatalf("expected one pet left")
	}
}

func TestSystem_ScheduleTask_RejectsDuplicateIDOnSamePet(t *testing.T) {
	sys, _, fido, whiskers := newTaylor(t)

	if err := sys.ScheduleTask("Taylor", "Fido", tasks.New(tasks.NewInput{ID: "x", Title: "A"})); err != nil {
		t.Fatalf("ScheduleTask error: %v", err)
	}
	err := sys.ScheduleTask("Taylor", "Fido", tasks.New(tasks.NewInput{ID: "x", Title: "B"}))
	if !errors.Is(err, ErrDuplicateTaskID) || !errors.Is(err, ErrDuplicateName) {
		t.Fatalf("expected duplicate task id, got %v", err)
	}
	if len(fido.Tasks) != 1 || fido.Tasks[0].Title != "A" {
		t.Fatalf("expected only the first task kept, got %d tasks", len(fido.Tasks))
	}

	// el mismo ID en otra mascota es válido
	if err := sys.ScheduleTask("Taylor", "Whiskers", tasks.New(tasks.NewInput{ID: "x", Title: "C"})); err != nil {
		t.Fatalf("expected same id on another pet accepted: %v", err)
	}
	if len(whiskers.Tasks) != 1 {
		t.Fatalf("expected task on Whiskers")
	}
}

func TestSystem_FindPetByID(t *testing.T) {
	sys, owner, _, whiskers := newTaylor(t)

	o, p, ok := sys.FindPetByID(whiskers.ID)
	if !ok || o != owner || p != whiskers {
		t.Fatalf("expected to resolve Whiskers")
	}
	if _, _, ok := sys.FindPetByID(""); ok {
		t.Fatalf("expected miss for empty id")
	}
}

// -------------------------
// Queries
// -------------------------

func TestSystem_TodaysTasks_AndSort_Scenario(t *testing.T) {
	sys, _, _, _ := newTaylor(t)

	walk := tasks.New(tasks.NewInput{ID: "t1", Title: "Morning walk", DueAt: ts(2026, 2, 15, 9, 0), Priority: 2})
	meds := tasks.New(tasks.NewInput{ID: "t2", Title: "Medication", DueAt: ts(2026, 2, 15, 9, 0), Priority: 5})
	_ = sys.ScheduleTask("Taylor", "Fido", walk)
	_ = sys.ScheduleTask("Taylor", "Fido", meds)

	today := sys.TodaysTasks(feb15)
	if got := titles(today); len(got) != 2 || got[0] != "Morning walk" || got[1] != "Medication" {
		t.Fatalf("expected both tasks in registration order, got %v", got)
	}

	sorted := sys.SortTasks(today)
	if sorted[0] != meds || sorted[1] != walk {
		t.Fatalf("expected Medication before Morning walk, got %v", titles(sorted))
	}
	// SortTasks no modifica la entrada
	if today[0] != walk {
		t.Fatalf("expected input slice untouched")
	}
}

func TestSystem_TodaysTasks_EmptyPet(t *testing.T) {
	sys, _, fido, _ := newTaylor(t)

	if got := fido.TasksForDate(feb15); got == nil || len(got) != 0 {
		t.Fatalf("expected empty pet agenda")
	}
	if got := sys.TodaysTasks(feb15); got == nil || len(got) != 0 {
		t.Fatalf("expected empty system agenda, got %v", titles(got))
	}
	if got := NewSystem().TodaysTasks(feb15); got == nil || len(got) != 0 {
		t.Fatalf("expected empty agenda for empty system")
	}
}

func TestSystem_TodaysTasks_AcrossOwners(t *testing.T) {
	sys, _, _, _ := newTaylor(t)
	alice := owners.New("Alice")
	_ = sys.AddOwner(alice)
	_ = alice.AddPet(pets.New("Rex", "Dog", 7, ""))

	_ = sys.ScheduleTask("Alice", "Rex", tasks.New(tasks.NewInput{Title: "A", DueAt: ts(2026, 2, 15, 7, 0)}))
	_ = sys.ScheduleTask("Taylor", "Whiskers", tasks.New(tasks.NewInput{Title: "W", DueAt: ts(2026, 2, 15, 8, 0)}))
	_ = sys.ScheduleTask("Taylor", "Fido", tasks.New(tasks.NewInput{Title: "F", DueAt: ts(2026, 2, 15, 9, 0)}))
	_ = sys.ScheduleTask("Taylor", "Fido", tasks.New(tasks.NewInput{Title: "tomorrow", DueAt: ts(2026, 2, 16, 9, 0)}))

	got := titles(sys.TodaysTasks(feb15))
	want := []string{"F", "W", "A"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestSystem_SortTasks_NoDueLast_StableOnTies(t *testing.T) {
	sys := NewSystem()

	undated := tasks.New(tasks.NewInput{Title: "undated", Priority: 5})
	late := tasks.New(tasks.NewInput{Title: "late", DueAt: ts(2026, 2, 15, 18, 0), Priority: 1})
	earlyA := tasks.New(tasks.NewInput{Title: "earlyA", DueAt: ts(2026, 2, 15, 8, 0), Priority: 3})
	earlyB := tasks.New(tasks.NewInput{Title: "earlyB", DueAt: ts(2026, 2, 15, 8, 0), Priority: 3})
	earlyHigh := tasks.New(tasks.NewInput{Title: "earlyHigh", DueAt: ts(2026, 2, 15, 8, 0), Priority: 5})
	undated2 := tasks.New(tasks.NewInput{Title: "undated2", Priority: 1})

	got := titles(sys.SortTasks([]*tasks.Task{undated, late, earlyA, earlyB, earlyHigh, undated2}))
	want := []string{"earlyHigh", "earlyA", "earlyB", "late", "undated", "undated2"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestSystem_SortTasks_Property(t *testing.T) {
	sys := NewSystem()

	in := make([]*tasks.Task, 0)
	for i := 0; i < 40; i++ {
		var due *time.Time
		if i%7 != 0 {
			due = ts(2026, 2, 15, (i*5)%24, (i*13)%60)
		}
		in = append(in, tasks.New(tasks.NewInput{Title: "x", DueAt: due, Priority: i%5 + 1}))
	}

	out := sys.SortTasks(in)
	if len(out) != len(in) {
		t.Fatalf("expected same length")
	}
	seenUndated := false
	for i := 1; i < len(out); i++ {
		a, b := out[i-1], out[i]
		if a.DueAt == nil {
			seenUndated = true
		}
		if seenUndated && b.DueAt != nil {
			t.Fatalf("task with due time after an undated task at %d", i)
		}
		if a.DueAt == nil || b.DueAt == nil {
			continue
		}
		if a.DueAt.After(*b.DueAt) {
			t.Fatalf("due time decreasing at %d", i)
		}
		if a.DueAt.Equal(*b.DueAt) && a.Priority < b.Priority {
			t.Fatalf("priority increasing within equal due time at %d", i)
		}
	}
}

func TestSystem_SortByTime_AndFilterByStatus(t *testing.T) {
	sys := NewSystem()

	a := tasks.New(tasks.NewInput{Title: "a", DueAt: ts(2026, 2, 15, 10, 0), Priority: 1})
	b := tasks.New(tasks.NewInput{Title: "b", DueAt: ts(2026, 2, 15, 10, 0), Priority: 5})
	c := tasks.New(tasks.NewInput{Title: "c", DueAt: ts(2026, 2, 15, 7, 0)})
	d := tasks.New(tasks.NewInput{Title: "d"})
	b.MarkDone()

	if got := strings.Join(titles(sys.SortByTime([]*tasks.Task{d, a, b, c})), ","); got != "c,a,b,d" {
		t.Fatalf("expected c,a,b,d got %s", got)
	}

	pending := sys.FilterByStatus([]*tasks.Task{a, b, c, d}, tasks.StatusPending)
	if got := strings.Join(titles(pending), ","); got != "a,c,d" {
		t.Fatalf("expected a,c,d got %s", got)
	}
	if got := sys.FilterByStatus(nil, tasks.StatusSkipped); got == nil || len(got) != 0 {
		t.Fatalf("expected empty result")
	}
}

// -------------------------
// Conflicts
// -------------------------

func TestSystem_DetectConflicts_ZeroWidthSameInstant_NoConflict(t *testing.T) {
	sys, _, _, _ := newTaylor(t)
	_ = sys.ScheduleTask("Taylor", "Fido", tasks.New(tasks.NewInput{ID: "a", Title: "Walk", DueAt: ts(2026, 2, 15, 9, 0)}))
	_ = sys.ScheduleTask("Taylor", "Fido", tasks.New(tasks.NewInput{ID: "b", Title: "Meds", DueAt: ts(2026, 2, 15, 9, 0)}))

	if got := sys.DetectConflicts(feb15); len(got) != 0 {
		t.Fatalf("expected zero interval conflicts, got %d", len(got))
	}

	warnings := sys.DetectExactTimeConflicts(feb15)
	if len(warnings) != 1 {
		t.Fatalf("expected one exact-time warning, got %v", warnings)
	}
	w := warnings[0]
	if !strings.HasPrefix(w, "Conflict at 2026-02-15 09:00:00: ") {
		t.Fatalf("unexpected warning prefix: %s", w)
	}
	if !strings.Contains(w, "Taylor/Fido:Walk (id=a)") || !strings.Contains(w, "Taylor/Fido:Meds (id=b)") {
		t.Fatalf("expected both tasks named in warning: %s", w)
	}
}

func TestSystem_DetectConflicts_Overlaps(t *testing.T) {
	sys, _, _, _ := newTaylor(t)

	walk := tasks.New(tasks.NewInput{Title: "Walk", DueAt: ts(2026, 2, 15, 9, 0), Duration: minutes(60)})
	meds := tasks.New(tasks.NewInput{Title: "Meds", DueAt: ts(2026, 2, 15, 9, 30)}) // ancho cero dentro de Walk
	brush := tasks.New(tasks.NewInput{Title: "Brush", DueAt: ts(2026, 2, 15, 9, 45), Duration: minutes(30)})
	lunch := tasks.New(tasks.NewInput{Title: "Lunch", DueAt: ts(2026, 2, 15, 10, 15)}) // justo en el fin de Brush
	_ = sys.ScheduleTask("Taylor", "Fido", walk)
	_ = sys.ScheduleTask("Taylor", "Fido", lunch)
	_ = sys.ScheduleTask("Taylor", "Whiskers", brush)
	_ = sys.ScheduleTask("Taylor", "Whiskers", meds)

	got := sys.DetectConflicts(feb15)

	pairs := make([]string, 0, len(got))
	for _, c := range got {
		pairs = append(pairs, c.First.Title+"-"+c.Second.Title)
	}
	want := []string{"Walk-Meds", "Walk-Brush"}
	if strings.Join(pairs, ",") != strings.Join(want, ",") {
		t.Fatalf("expected %v, got %v", want, pairs)
	}
}

func TestSystem_DetectConflicts_OverlappingIntervalsAlwaysReported(t *testing.T) {
	sys, _, _, _ := newTaylor(t)

	a := tasks.New(tasks.NewInput{Title: "A", DueAt: ts(2026, 2, 15, 14, 0), Duration: minutes(20)})
	b := tasks.New(tasks.NewInput{Title: "B", DueAt: ts(2026, 2, 15, 14, 0), Duration: minutes(5)})
	_ = sys.ScheduleTask("Taylor", "Whiskers", a)
	_ = sys.ScheduleTask("Taylor", "Fido", b)

	got := sys.DetectConflicts(feb15)
	if len(got) != 1 {
		t.Fatalf("expected one pair, got %d", len(got))
	}
	pair := map[*tasks.Task]bool{got[0].First: true, got[0].Second: true}
	if !pair[a] || !pair[b] {
		t.Fatalf("expected pair {A, B}")
	}
}

func TestSystem_DetectExactTimeConflicts_NamesOwnersAndPets(t *testing.T) {
	sys, _, _, _ := newTaylor(t)
	alice := owners.New("Alice")
	_ = sys.AddOwner(alice)
	_ = alice.AddPet(pets.New("Rex", "Dog", 7, ""))

	_ = sys.ScheduleTask("Taylor", "Whiskers", tasks.New(tasks.NewInput{ID: "w", Title: "Brush", DueAt: ts(2026, 2, 15, 8, 0)}))
	_ = sys.ScheduleTask("Alice", "Rex", tasks.New(tasks.NewInput{ID: "r", Title: "Walk", DueAt: ts(2026, 2, 15, 8, 0), Duration: minutes(30)}))
	_ = sys.ScheduleTask("Taylor", "Fido", tasks.New(tasks.NewInput{ID: "f", Title: "Solo", DueAt: ts(2026, 2, 15, 12, 0)}))

	warnings := sys.DetectExactTimeConflicts(feb15)
	if len(warnings) != 1 {
		t.Fatalf("expected one warning, got %v", warnings)
	}
	want := "Conflict at 2026-02-15 08:00:00: Taylor/Whiskers:Brush (id=w), Alice/Rex:Walk (id=r)"
	if warnings[0] != want {
		t.Fatalf("expected %q, got %q", want, warnings[0])
	}
}
