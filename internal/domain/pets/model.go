package pets

import (
	"strings"
	"time"

	"pawpal-planner/internal/domain/tasks"

	"github.com/google/uuid"
)

// Pet representa una mascota y las tareas de cuidado que le pertenecen.
// La unicidad del nombre la controla el Owner, no la mascota.
type Pet struct {
	ID      string
	Name    string
	Species string
	Age     int
	Notes   string

	// Orden de inserción; una tarea pertenece a una sola mascota.
	Tasks []*tasks.Task
}

func New(name, species string, age int, notes string) *Pet {
	return &Pet{
		ID:      uuid.NewString(),
		Name:    strings.TrimSpace(name),
		Species: strings.TrimSpace(species),
		Age:     age,
		Notes:   strings.TrimSpace(notes),
		Tasks:   make([]*tasks.Task, 0),
	}
}

// AddTask adjunta la tarea a esta mascota (setea PetID) y la agrega al final.
// No deduplica por ID.
func (p *Pet) AddTask(t *tasks.Task) {
	t.PetID = p.ID
	p.Tasks = append(p.Tasks, t)
}

// RemoveTask elimina la primera tarea con ese ID.
func (p *Pet) RemoveTask(id string) bool {
	for i, t := range p.Tasks {
		if t.ID == id {
			p.Tasks = append(p.Tasks[:i], p.Tasks[i+1:]...)
			return true
		}
	}
	return false
}

func (p *Pet) Task(id string) (*tasks.Task, bool) {
	for _, t := range p.Tasks {
		if t.ID == id {
			return t, true
		}
	}
	return nil, false
}

// TasksForDate devuelve, en orden de inserción, las tareas que caen en date.
// Una tarea que falla al evaluarse se omite; el resto se sigue evaluando.
func (p *Pet) TasksForDate(date time.Time) []*tasks.Task {
	out := make([]*tasks.Task, 0)
	for _, t := range p.Tasks {
		if t == nil {
			continue
		}
		due, err := t.DueOn(date)
		if err != nil {
			continue
		}
		if due {
			out = append(out, t)
		}
	}
	return out
}
