package planner

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"pawpal-planner/internal/domain/tasks"
)

// Conflict es un par de tareas cuyos intervalos se solapan.
// First empieza antes (o a la vez) que Second.
type Conflict struct {
	First  *tasks.Task
	Second *tasks.Task
}

// ExactTimeLayout es el formato de fecha-hora usado en los warnings.
const ExactTimeLayout = "2006-01-02 15:04:05"

// TodaysTasks concatena TasksForDate de cada mascota (owners y mascotas en
// orden de registro). No ordena.
func (s *System) TodaysTasks(date time.Time) []*tasks.Task {
	out := make([]*tasks.Task, 0)
	for _, o := range s.order {
		for _, p := range o.Pets {
			out = append(out, p.TasksForDate(date)...)
		}
	}
	return out
}

type occurrence struct {
	task       *tasks.Task
	start, end time.Time
}

// DetectConflicts busca solapamientos [start, end) entre las tareas del día.
// Dos tareas de ancho cero en el mismo instante no chocan (start_j < end_i estricto);
// una de ancho cero dentro de otra sí.
func (s *System) DetectConflicts(date time.Time) []Conflict {
	occs := make([]occurrence, 0)
	for _, t := range s.TodaysTasks(date) {
		end, ok := t.End()
		if !ok {
			continue
		}
		occs = append(occs, occurrence{task: t, start: *t.DueAt, end: end})
	}

	sort.SliceStable(occs, func(i, j int) bool {
		return occs[i].start.Before(occs[j].start)
	})

	out := make([]Conflict, 0)
	for i := range occs {
		for j := i + 1; j < len(occs); j++ {
			if !occs[j].start.Before(occs[i].end) {
				// ordenado por start: no hay más solapes para i
				break
			}
			out = append(out, Conflict{First: occs[i].task, Second: occs[j].task})
		}
	}
	return out
}

// DetectExactTimeConflicts agrupa las tareas del día por DueAt exacto (ignora
// duración) y devuelve un warning por cada grupo de 2 o más.
func (s *System) DetectExactTimeConflicts(date time.Time) []string {
	type entry struct {
		owner, pet string
		task       *tasks.Task
	}

	groups := make(map[int64][]entry)
	keys := make([]int64, 0) // orden de primera aparición
	stamps := make(map[int64]time.Time)

	for _, o := range s.order {
		for _, p := range o.Pets {
			for _, t := range p.TasksForDate(date) {
				if t.DueAt == nil {
					continue
				}
				k := t.DueAt.UnixNano()
				if _, seen := groups[k]; !seen {
					keys = append(keys, k)
					stamps[k] = *t.DueAt
				}
				groups[k] = append(groups[k], entry{owner: o.Name, pet: p.Name, task: t})
			}
		}
	}

	out := make([]string, 0)
	for _, k := range keys {
		entries := groups[k]
		if len(entries) < 2 {
			continue
		}
		parts := make([]string, 0, len(entries))
		for _, e := range entries {
			parts = append(parts, fmt.Sprintf("%s/%s:%s (id=%s)", e.owner, e.pet, e.task.Title, e.task.ID))
		}
		out = append(out, fmt.Sprintf("Conflict at %s: %s", stamps[k].Format(ExactTimeLayout), strings.Join(parts, ", ")))
	}
	return out
}

// SortTasks ordena (estable) por DueAt asc y luego prioridad desc.
// Las tareas sin DueAt van al final.
func (s *System) SortTasks(in []*tasks.Task) []*tasks.Task {
	out := make([]*tasks.Task, len(in))
	copy(out, in)

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if c := compareDue(a, b); c != 0 {
			return c < 0
		}
		return a.Priority > b.Priority
	})
	return out
}

// SortByTime ordena (estable) solo por DueAt; sin DueAt al final.
func (s *System) SortByTime(in []*tasks.Task) []*tasks.Task {
	out := make([]*tasks.Task, len(in))
	copy(out, in)

	sort.SliceStable(out, func(i, j int) bool {
		return compareDue(out[i], out[j]) < 0
	})
	return out
}

func (s *System) FilterByStatus(in []*tasks.Task, status tasks.Status) []*tasks.Task {
	out := make([]*tasks.Task, 0)
	for _, t := range in {
		if t.Status == status {
			out = append(out, t)
		}
	}
	return out
}

// compareDue trata DueAt == nil como el máximo posible.
func compareDue(a, b *tasks.Task) int {
	switch {
	case a.DueAt == nil && b.DueAt == nil:
		return 0
	case a.DueAt == nil:
		return 1
	case b.DueAt == nil:
		return -1
	}
	return a.DueAt.Compare(*b.DueAt)
}
