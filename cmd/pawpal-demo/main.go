// pawpal-demo arma un planner en memoria con datos de ejemplo e imprime la
// agenda del día, los conflictos y una roll-forward de tarea diaria.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"pawpal-planner/internal/domain/planner"
	"pawpal-planner/internal/domain/tasks"
	"pawpal-planner/internal/platform/datetime"
)

func main() {
	if err := run(os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(w io.Writer) error {
	svc := planner.NewService(nil, nil)

	if _, err := svc.AddOwner("Taylor"); err != nil {
		return err
	}
	for _, p := range []planner.AddPetInput{
		{Name: "Fido", Species: "Dog", Age: 4},
		{Name: "Whiskers", Species: "Cat", Age: 2},
	} {
		if _, err := svc.AddPet("Taylor", p); err != nil {
			return err
		}
	}

	day := time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC)
	at := func(h, m int) *time.Time {
		t := day.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute)
		return &t
	}

	schedule := []struct {
		pet string
		in  tasks.NewInput
	}{
		{"Fido", tasks.NewInput{ID: "t1", Title: "Morning walk", DueAt: at(9, 0), Duration: datetime.Minutes(30), Priority: 2}},
		{"Fido", tasks.NewInput{ID: "t2", Title: "Medication", DueAt: at(9, 0), Priority: 5}},
		{"Fido", tasks.NewInput{ID: "t4", Title: "Vet call", DueAt: at(9, 15), Duration: datetime.Minutes(10), Priority: 4}},
		{"Whiskers", tasks.NewInput{ID: "t3", Title: "Grooming", DueAt: at(15, 0), Priority: 1, Recurrence: tasks.Daily(1)}},
	}
	for _, s := range schedule {
		if _, err := svc.ScheduleTask("Taylor", s.pet, s.in); err != nil {
			return err
		}
	}

	printAgenda(w, svc, day)

	report := svc.Conflicts(day)
	fmt.Fprintf(w, "\nConflicts (%d):\n", len(report.Pairs))
	for _, p := range report.Pairs {
		fmt.Fprintf(w, "- %s overlaps %s\n", p.First.Title, p.Second.Title)
	}
	for _, warn := range report.Warnings {
		fmt.Fprintf(w, "WARNING: %s\n", warn)
	}

	c, err := svc.CompleteTask("Taylor", "Whiskers", "t3")
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "\nCompleted %s", c.Completed.Title)
	if c.Next != nil {
		fmt.Fprintf(w, "; next due %s", c.Next.DueAt.Format(datetime.MinuteLayout))
	}
	fmt.Fprintln(w)

	printAgenda(w, svc, day.AddDate(0, 0, 1))
	return nil
}

func printAgenda(w io.Writer, svc *planner.Service, day time.Time) {
	fmt.Fprintf(w, "\nToday's Schedule (%s):\n", day.Format(datetime.DateLayout))
	items := svc.Agenda(day)
	if len(items) == 0 {
		fmt.Fprintln(w, "- nothing scheduled")
		return
	}
	for _, t := range items {
		_, pet, _ := svc.PetName(t.PetID)
		fmt.Fprintf(w, "- [%s] %s (%s) at %s priority=%d\n", t.Status, t.Title, pet, t.DueAt.Format("15:04"), t.Priority)
	}
}
