// Package seed carga owners, mascotas y tareas iniciales desde un archivo TOML.
package seed

import (
	"errors"
	"fmt"
	"strings"

	"pawpal-planner/internal/domain/planner"
	"pawpal-planner/internal/domain/tasks"
	"pawpal-planner/internal/platform/datetime"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
)

var ErrInvalidSeed = errors.New("invalid seed file")

var validate = validator.New()

type File struct {
	Owners []Owner `toml:"owners" validate:"dive"`
}

type Owner struct {
	Name string `toml:"name" validate:"required"`
	Pets []Pet  `toml:"pets" validate:"dive"`
}

type Pet struct {
	Name    string `toml:"name" validate:"required"`
	Species string `toml:"species"`
	Age     int    `toml:"age" validate:"gte=0"`
	Notes   string `toml:"notes"`
	Tasks   []Task `toml:"tasks" validate:"dive"`
}

// Task: fechas-hora como string (RFC3339 o YYYY-MM-DDTHH:MM).
type Task struct {
	ID              string `toml:"id"`
	Title           string `toml:"title" validate:"required"`
	StartAt         string `toml:"start_at"`
	DueAt           string `toml:"due_at"`
	DurationMinutes int    `toml:"duration_minutes" validate:"gte=0"`
	Priority        int    `toml:"priority" validate:"gte=0,lte=5"`
	Frequency       string `toml:"frequency" validate:"omitempty,oneof=daily weekly"`
	Interval        int    `toml:"interval" validate:"gte=0"`
}

// Summary cuenta lo que se cargó.
type Summary struct {
	Owners int
	Pets   int
	Tasks  int
}

func Load(path string) (*File, error) {
	var f File
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidSeed, path, err)
	}
	if err := validate.Struct(&f); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidSeed, path, err)
	}
	return &f, nil
}

func Parse(data string) (*File, error) {
	var f File
	if _, err := toml.Decode(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSeed, err)
	}
	if err := validate.Struct(&f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSeed, err)
	}
	return &f, nil
}

// Apply registra todo en el servicio, en orden. Se detiene en el primer error.
func Apply(svc *planner.Service, f *File) (Summary, error) {
	var sum Summary
	if f == nil {
		return sum, nil
	}

	for _, o := range f.Owners {
		if _, err := svc.AddOwner(o.Name); err != nil {
			return sum, fmt.Errorf("seed: owner %q: %w", o.Name, err)
		}
		sum.Owners++

		for _, p := range o.Pets {
			_, err := svc.AddPet(o.Name, planner.AddPetInput{
				Name:    p.Name,
				Species: p.Species,
				Age:     p.Age,
				Notes:   p.Notes,
			})
			if err != nil {
				return sum, fmt.Errorf("seed: pet %q of %q: %w", p.Name, o.Name, err)
			}
			sum.Pets++

			for _, t := range p.Tasks {
				in, err := t.toInput()
				if err != nil {
					return sum, fmt.Errorf("seed: task %q of %s/%s: %w", t.Title, o.Name, p.Name, err)
				}
				if _, err := svc.ScheduleTask(o.Name, p.Name, in); err != nil {
					return sum, fmt.Errorf("seed: task %q of %s/%s: %w", t.Title, o.Name, p.Name, err)
				}
				sum.Tasks++
			}
		}
	}
	return sum, nil
}

func (t Task) toInput() (tasks.NewInput, error) {
	due, err := datetime.ParseOptional(t.DueAt)
	if err != nil {
		return tasks.NewInput{}, err
	}
	start, err := datetime.ParseOptional(t.StartAt)
	if err != nil {
		return tasks.NewInput{}, err
	}

	in := tasks.NewInput{
		ID:       t.ID,
		Title:    t.Title,
		StartAt:  start,
		DueAt:    due,
		Duration: datetime.Minutes(t.DurationMinutes),
		Priority: t.Priority,
	}
	if f := strings.ToLower(strings.TrimSpace(t.Frequency)); f != "" {
		interval := t.Interval
		if interval == 0 {
			interval = 1
		}
		in.Recurrence = &tasks.Recurrence{Frequency: tasks.Frequency(f), Interval: interval}
	}
	return in, nil
}
