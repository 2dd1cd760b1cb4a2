package planner

import (
	"errors"
	"strings"
	"sync"
	"time"

	"pawpal-planner/internal/domain/owners"
	"pawpal-planner/internal/domain/pets"
	"pawpal-planner/internal/domain/tasks"
	"pawpal-planner/internal/platform/logger"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

// Service envuelve System para uso desde varios requests a la vez:
// un único RWMutex para todo el sistema (el volumen de datos es chico).
// Lo que devuelve son copias profundas (tasks.Task.Clone), nunca punteros internos.
type Service struct {
	mu  sync.RWMutex
	sys *System
	log logger.Logger
	now func() time.Time
}

func NewService(sys *System, log logger.Logger) *Service {
	if sys == nil {
		sys = NewSystem()
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		sys: sys,
		log: log.With(map[string]any{"component": "planner"}),
		now: time.Now,
	}
}

// Now es el reloj del servicio (inyectable en tests).
func (s *Service) Now() time.Time {
	return s.now()
}

// -------------------------
// Snapshots
// -------------------------

type PetSnapshot struct {
	ID      string
	Name    string
	Species string
	Age     int
	Notes   string
	Tasks   []tasks.Task
}

type OwnerSnapshot struct {
	ID   string
	Name string
	Pets []PetSnapshot
}

type Completion struct {
	Completed tasks.Task
	Next      *tasks.Task
}

type ConflictPair struct {
	First  tasks.Task
	Second tasks.Task
}

type ConflictReport struct {
	Date     time.Time
	Pairs    []ConflictPair
	Warnings []string
}

func snapshotPet(p *pets.Pet) PetSnapshot {
	return PetSnapshot{
		ID:      p.ID,
		Name:    p.Name,
		Species: p.Species,
		Age:     p.Age,
		Notes:   p.Notes,
		Tasks:   copyTasks(p.Tasks),
	}
}

func snapshotOwner(o *owners.Owner) OwnerSnapshot {
	out := OwnerSnapshot{ID: o.ID, Name: o.Name, Pets: make([]PetSnapshot, 0, len(o.Pets))}
	for _, p := range o.Pets {
		out.Pets = append(out.Pets, snapshotPet(p))
	}
	return out
}

func copyTasks(in []*tasks.Task) []tasks.Task {
	out := make([]tasks.Task, 0, len(in))
	for _, t := range in {
		out = append(out, t.Clone())
	}
	return out
}

// -------------------------
// Mutaciones (write lock)
// -------------------------

func (s *Service) AddOwner(name string) (OwnerSnapshot, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return OwnerSnapshot{}, ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	o := owners.New(name)
	if err := s.sys.AddOwner(o); err != nil {
		s.log.Warn("add owner rejected", map[string]any{"owner": name, "error": err.Error()})
		return OwnerSnapshot{}, err
	}

	s.log.Info("owner added", map[string]any{"owner": name, "owner_id": o.ID})
	return snapshotOwner(o), nil
}

type AddPetInput struct {
	Name    string
	Species string
	Age     int
	Notes   string
}

func (s *Service) AddPet(ownerName string, in AddPetInput) (PetSnapshot, error) {
	if strings.TrimSpace(in.Name) == "" || in.Age < 0 {
		return PetSnapshot{}, ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	o, err := s.sys.Owner(ownerName)
	if err != nil {
		return PetSnapshot{}, err
	}

	p := pets.New(in.Name, in.Species, in.Age, in.Notes)
	if err := o.AddPet(p); err != nil {
		s.log.Warn("add pet rejected", map[string]any{"owner": ownerName, "pet": p.Name, "error": err.Error()})
		return PetSnapshot{}, err
	}

	s.log.Info("pet added", map[string]any{"owner": ownerName, "pet": p.Name, "pet_id": p.ID})
	return snapshotPet(p), nil
}

func (s *Service) ScheduleTask(ownerName, petKey string, in tasks.NewInput) (tasks.Task, error) {
	if strings.TrimSpace(in.Title) == "" {
		return tasks.Task{}, ErrInvalidInput
	}
	if in.Priority < 0 || in.Priority > tasks.PriorityHigh {
		return tasks.Task{}, ErrInvalidInput
	}
	if in.Recurrence != nil && in.Recurrence.Interval < 1 {
		return tasks.Task{}, ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t := tasks.New(in)
	if err := s.sys.ScheduleTask(ownerName, petKey, t); err != nil {
		s.log.Warn("schedule task rejected", map[string]any{"owner": ownerName, "pet": petKey, "error": err.Error()})
		return tasks.Task{}, err
	}

	s.log.Info("task scheduled", map[string]any{"owner": ownerName, "pet_id": t.PetID, "task_id": t.ID, "title": t.Title})
	return t.Clone(), nil
}

func (s *Service) CompleteTask(ownerName, petKey, taskID string) (Completion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := s.sys.MarkTaskComplete(ownerName, petKey, taskID)
	if err != nil {
		s.log.Warn("complete task rejected", map[string]any{"owner": ownerName, "pet": petKey, "task_id": taskID, "error": err.Error()})
		return Completion{}, err
	}

	_, p, _ := s.sys.resolve(ownerName, petKey)
	done, _ := p.Task(taskID)

	out := Completion{Completed: done.Clone()}
	fields := map[string]any{"owner": ownerName, "pet": p.Name, "task_id": taskID}
	if next != nil {
		cp := next.Clone()
		out.Next = &cp
		fields["next_task_id"] = next.ID
		fields["next_due_at"] = next.DueAt
	}
	s.log.Info("task completed", fields)
	return out, nil
}

func (s *Service) RemoveTask(ownerName, petKey, taskID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.sys.RemoveTask(ownerName, petKey, taskID); err != nil {
		return err
	}
	s.log.Info("task removed", map[string]any{"owner": ownerName, "pet": petKey, "task_id": taskID})
	return nil
}

func (s *Service) RemovePet(ownerName, petName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.sys.RemovePet(ownerName, petName); err != nil {
		return err
	}
	s.log.Info("pet removed", map[string]any{"owner": ownerName, "pet": petName})
	return nil
}

// -------------------------
// Consultas (read lock)
// -------------------------

func (s *Service) Owners() []OwnerSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := s.sys.Owners()
	out := make([]OwnerSnapshot, 0, len(all))
	for _, o := range all {
		out = append(out, snapshotOwner(o))
	}
	return out
}

func (s *Service) Owner(name string) (OwnerSnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, err := s.sys.Owner(name)
	if err != nil {
		return OwnerSnapshot{}, err
	}
	return snapshotOwner(o), nil
}

// AgendaOptions ajusta la agenda. El valor cero es "todas, por hora y prioridad".
type AgendaOptions struct {
	Status tasks.Status // vacío = cualquier estado
	ByTime bool         // true => SortByTime (ignora prioridad)
}

// Agenda devuelve las tareas del día ordenadas con SortTasks.
func (s *Service) Agenda(date time.Time) []tasks.Task {
	return s.AgendaWith(date, AgendaOptions{})
}

func (s *Service) AgendaWith(date time.Time, opts AgendaOptions) []tasks.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := s.sys.TodaysTasks(date)
	if opts.Status != "" {
		items = s.sys.FilterByStatus(items, opts.Status)
	}
	if opts.ByTime {
		return copyTasks(s.sys.SortByTime(items))
	}
	return copyTasks(s.sys.SortTasks(items))
}

func (s *Service) Conflicts(date time.Time) ConflictReport {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pairs := s.sys.DetectConflicts(date)
	out := ConflictReport{
		Date:     date,
		Pairs:    make([]ConflictPair, 0, len(pairs)),
		Warnings: s.sys.DetectExactTimeConflicts(date),
	}
	for _, c := range pairs {
		out.Pairs = append(out.Pairs, ConflictPair{First: c.First.Clone(), Second: c.Second.Clone()})
	}

	if len(out.Pairs) > 0 || len(out.Warnings) > 0 {
		s.log.Debug("conflicts detected", map[string]any{
			"date":     date.Format("2006-01-02"),
			"pairs":    len(out.Pairs),
			"warnings": len(out.Warnings),
		})
	}
	return out
}

// PetName resuelve la back-reference de una tarea para mostrarla.
func (s *Service) PetName(petID string) (owner, pet string, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, p, found := s.sys.FindPetByID(petID)
	if !found {
		return "", "", false
	}
	return o.Name, p.Name, true
}
