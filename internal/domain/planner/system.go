package planner

import (
	"errors"
	"fmt"
	"strings"

	"pawpal-planner/internal/domain/owners"
	"pawpal-planner/internal/domain/pets"
	"pawpal-planner/internal/domain/tasks"
)

var (
	ErrDuplicateName = owners.ErrDuplicateName
	ErrNotFound      = errors.New("not found")

	ErrOwnerNotFound = fmt.Errorf("owner %w", ErrNotFound)
	ErrPetNotFound   = fmt.Errorf("pet %w", ErrNotFound)
	ErrTaskNotFound  = fmt.Errorf("task %w", ErrNotFound)

	ErrDuplicateTaskID = fmt.Errorf("task id %w", ErrDuplicateName)
)

// System es el registro en memoria de owners -> mascotas -> tareas.
// Los owners se indexan por nombre (único en todo el sistema).
//
// No es seguro para uso concurrente; ver Service.
type System struct {
	byName map[string]*owners.Owner
	order  []*owners.Owner // orden de registro
}

func NewSystem() *System {
	return &System{
		byName: make(map[string]*owners.Owner),
		order:  make([]*owners.Owner, 0),
	}
}

func (s *System) AddOwner(o *owners.Owner) error {
	if _, exists := s.byName[o.Name]; exists {
		return fmt.Errorf("%w: owner %q already exists", ErrDuplicateName, o.Name)
	}
	s.byName[o.Name] = o
	s.order = append(s.order, o)
	return nil
}

func (s *System) Owner(name string) (*owners.Owner, error) {
	o, ok := s.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrOwnerNotFound, name)
	}
	return o, nil
}

// Owners devuelve los owners en orden de registro.
func (s *System) Owners() []*owners.Owner {
	out := make([]*owners.Owner, len(s.order))
	copy(out, s.order)
	return out
}

// resolvePet busca primero por ID y después por nombre dentro del owner.
func resolvePet(o *owners.Owner, key string) (*pets.Pet, error) {
	if p, ok := o.PetByID(key); ok {
		return p, nil
	}
	if p, ok := o.Pet(key); ok {
		return p, nil
	}
	return nil, fmt.Errorf("%w: %q for owner %q", ErrPetNotFound, key, o.Name)
}

func (s *System) resolve(ownerName, petKey string) (*owners.Owner, *pets.Pet, error) {
	o, err := s.Owner(ownerName)
	if err != nil {
		return nil, nil, err
	}
	p, err := resolvePet(o, petKey)
	if err != nil {
		return nil, nil, err
	}
	return o, p, nil
}

// ScheduleTask adjunta task a la mascota petKey (ID o nombre) del owner.
// El ID de la tarea no puede repetirse dentro de la mascota.
func (s *System) ScheduleTask(ownerName, petKey string, task *tasks.Task) error {
	_, p, err := s.resolve(ownerName, petKey)
	if err != nil {
		return err
	}
	if _, dup := p.Task(task.ID); dup {
		return fmt.Errorf("%w: %q for pet %q", ErrDuplicateTaskID, task.ID, p.Name)
	}
	p.AddTask(task)
	return nil
}

// MarkTaskComplete marca la tarea como done. Si es diaria o semanal crea una
// tarea nueva (pending) un paso después: +1 día o +1 semana, sin importar
// Recurrence.Interval. Devuelve la tarea nueva o nil.
func (s *System) MarkTaskComplete(ownerName, petKey, taskID string) (*tasks.Task, error) {
	_, p, err := s.resolve(ownerName, petKey)
	if err != nil {
		return nil, err
	}

	t, ok := p.Task(taskID)
	if !ok {
		return nil, fmt.Errorf("%w: %q for pet %q", ErrTaskNotFound, taskID, p.Name)
	}

	t.MarkDone()

	next := rollForward(t)
	if next != nil {
		p.AddTask(next)
	}
	return next, nil
}

// rollForward arma la siguiente ocurrencia de t, o nil si no corresponde.
// TODO: usar Recurrence.Interval como paso cuando se unifique con NextOccurrence.
func rollForward(t *tasks.Task) *tasks.Task {
	if t.Recurrence == nil || t.DueAt == nil {
		return nil
	}

	var days int
	switch t.Recurrence.Frequency {
	case tasks.FrequencyDaily:
		days = 1
	case tasks.FrequencyWeekly:
		days = 7
	default:
		return nil
	}

	due := t.DueAt.AddDate(0, 0, days)
	rec := *t.Recurrence

	in := tasks.NewInput{
		Title:      t.Title,
		DueAt:      &due,
		Priority:   t.Priority,
		Recurrence: &rec,
	}
	if t.Duration != nil {
		d := *t.Duration
		in.Duration = &d
	}
	return tasks.New(in)
}

func (s *System) RemoveTask(ownerName, petKey, taskID string) error {
	_, p, err := s.resolve(ownerName, petKey)
	if err != nil {
		return err
	}
	if !p.RemoveTask(taskID) {
		return fmt.Errorf("%w: %q for pet %q", ErrTaskNotFound, taskID, p.Name)
	}
	return nil
}

func (s *System) RemovePet(ownerName, petName string) error {
	o, err := s.Owner(ownerName)
	if err != nil {
		return err
	}
	if !o.RemovePet(petName) {
		return fmt.Errorf("%w: %q for owner %q", ErrPetNotFound, petName, o.Name)
	}
	return nil
}

// FindPetByID resuelve la back-reference Task.PetID en todo el sistema.
func (s *System) FindPetByID(petID string) (*owners.Owner, *pets.Pet, bool) {
	if strings.TrimSpace(petID) == "" {
		return nil, nil, false
	}
	for _, o := range s.order {
		if p, ok := o.PetByID(petID); ok {
			return o, p, true
		}
	}
	return nil, nil, false
}
