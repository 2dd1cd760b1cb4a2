package owners

import (
	"errors"
	"fmt"
	"strings"

	"pawpal-planner/internal/domain/pets"
	"pawpal-planner/internal/domain/tasks"

	"github.com/google/uuid"
)

var (
	ErrDuplicateName = errors.New("duplicate name")
)

// Owner agrupa las mascotas de una persona.
// Los nombres de mascota son únicos por owner (comparación exacta, case-sensitive).
type Owner struct {
	ID   string
	Name string
	Pets []*pets.Pet
}

func New(name string) *Owner {
	return &Owner{
		ID:   uuid.NewString(),
		Name: strings.TrimSpace(name),
		Pets: make([]*pets.Pet, 0),
	}
}

// AddPet agrega la mascota; falla con ErrDuplicateName si el nombre ya existe
// y en ese caso no modifica la lista.
func (o *Owner) AddPet(p *pets.Pet) error {
	if _, exists := o.Pet(p.Name); exists {
		return fmt.Errorf("%w: pet %q already exists for owner %q", ErrDuplicateName, p.Name, o.Name)
	}
	o.Pets = append(o.Pets, p)
	return nil
}

// RemovePet es idempotente: después de borrar, devuelve false.
func (o *Owner) RemovePet(name string) bool {
	for i, p := range o.Pets {
		if p.Name == name {
			o.Pets = append(o.Pets[:i], o.Pets[i+1:]...)
			return true
		}
	}
	return false
}

func (o *Owner) Pet(name string) (*pets.Pet, bool) {
	for _, p := range o.Pets {
		if p.Name == name {
			return p, true
		}
	}
	return nil, false
}

func (o *Owner) PetByID(id string) (*pets.Pet, bool) {
	for _, p := range o.Pets {
		if p.ID == id {
			return p, true
		}
	}
	return nil, false
}

// AllTasks aplana las tareas de todas las mascotas (mascotas en orden de alta,
// tareas en el orden de cada mascota).
func (o *Owner) AllTasks() []*tasks.Task {
	out := make([]*tasks.Task, 0)
	for _, p := range o.Pets {
		out = append(out, p.Tasks...)
	}
	return out
}
