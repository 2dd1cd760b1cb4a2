package tasks

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Recurrence describe cómo se repite una tarea. El roll-forward copia el valor,
// cada tarea tiene la suya.
type Recurrence struct {
	Frequency Frequency
	Interval  int // >= 1

	// Count y Until se guardan pero no limitan las ocurrencias (todavía).
	Count *int
	Until *time.Time
}

func Daily(interval int) *Recurrence {
	return &Recurrence{Frequency: FrequencyDaily, Interval: interval}
}

func Weekly(interval int) *Recurrence {
	return &Recurrence{Frequency: FrequencyWeekly, Interval: interval}
}

// Task es una unidad de cuidado agendable (paseo, comida, medicación, baño...).
type Task struct {
	ID    string
	Title string

	StartAt  *time.Time
	DueAt    *time.Time
	Duration *time.Duration

	Priority int // 1 (baja) .. 5 (alta)
	Status   Status

	Recurrence *Recurrence

	// PetID lo setea la mascota al adjuntar la tarea.
	PetID string
}

type NewInput struct {
	ID         string // opcional; si viene vacío se genera un UUID
	Title      string
	StartAt    *time.Time
	DueAt      *time.Time
	Duration   *time.Duration
	Priority   int // 0 => PriorityDefault
	Recurrence *Recurrence
}

// New crea una tarea "suelta" (sin mascota) en estado pending.
func New(in NewInput) *Task {
	id := strings.TrimSpace(in.ID)
	if id == "" {
		id = uuid.NewString()
	}

	prio := in.Priority
	if prio == 0 {
		prio = PriorityDefault
	}

	return &Task{
		ID:         id,
		Title:      strings.TrimSpace(in.Title),
		StartAt:    in.StartAt,
		DueAt:      in.DueAt,
		Duration:   in.Duration,
		Priority:   prio,
		Status:     StatusPending,
		Recurrence: in.Recurrence,
	}
}

// Clone devuelve una copia sin punteros compartidos con t.
func (t *Task) Clone() Task {
	out := *t
	out.StartAt = cloneTime(t.StartAt)
	out.DueAt = cloneTime(t.DueAt)
	if t.Duration != nil {
		d := *t.Duration
		out.Duration = &d
	}
	if t.Recurrence != nil {
		rec := *t.Recurrence
		rec.Until = cloneTime(t.Recurrence.Until)
		if t.Recurrence.Count != nil {
			n := *t.Recurrence.Count
			rec.Count = &n
		}
		out.Recurrence = &rec
	}
	return out
}

func cloneTime(v *time.Time) *time.Time {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func (t *Task) MarkDone() {
	t.Status = StatusDone
}

func (t *Task) MarkSkipped() {
	t.Status = StatusSkipped
}

func (t *Task) IsRecurring() bool {
	return t.Recurrence != nil
}

// End devuelve el fin del intervalo ocupado [DueAt, DueAt+Duration).
// Sin duración el intervalo es de ancho cero.
func (t *Task) End() (time.Time, bool) {
	if t.DueAt == nil {
		return time.Time{}, false
	}
	if t.Duration == nil {
		return *t.DueAt, true
	}
	return t.DueAt.Add(*t.Duration), true
}
