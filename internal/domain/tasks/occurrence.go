package tasks

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidRecurrence = errors.New("invalid recurrence")
)

// DueOn indica si la tarea (o alguna de sus ocurrencias) cae en el día de date.
// Solo se mira año/mes/día de date; la hora se ignora.
//
// Reglas:
//   - sin DueAt nunca está pendiente
//   - sin recurrencia: mismo día que DueAt
//   - con recurrencia: date >= día base y se cumple el paso
//     (daily: días % interval == 0; weekly: (días / 7) % interval == 0)
//   - frecuencia desconocida: false
func (t *Task) DueOn(date time.Time) (bool, error) {
	if t.DueAt == nil {
		return false, nil
	}

	base := *t.DueAt
	if t.Recurrence == nil {
		return SameDay(base, date), nil
	}

	delta := DaysBetween(base, date)
	if delta < 0 {
		return false, nil
	}

	interval := t.Recurrence.Interval
	if interval < 1 {
		return false, fmt.Errorf("%w: task %s has interval %d", ErrInvalidRecurrence, t.ID, interval)
	}

	switch t.Recurrence.Frequency {
	case FrequencyDaily:
		return delta%interval == 0, nil
	case FrequencyWeekly:
		return (delta/7)%interval == 0, nil
	default:
		return false, nil
	}
}

// IsDueOn es DueOn tratando cualquier error como "no cae ese día".
func (t *Task) IsDueOn(date time.Time) bool {
	ok, err := t.DueOn(date)
	return err == nil && ok
}

// NextOccurrence calcula la próxima ocurrencia futura respecto de now,
// avanzando en pasos enteros de interval (días o semanas) y conservando la hora
// original. Si el día base todavía no llegó, devuelve DueAt tal cual.
func (t *Task) NextOccurrence(now time.Time) (time.Time, bool) {
	if t.DueAt == nil || t.Recurrence == nil {
		return time.Time{}, false
	}

	base := *t.DueAt
	interval := t.Recurrence.Interval
	if interval < 1 {
		return time.Time{}, false
	}

	days := DaysBetween(base, now)
	if days < 0 {
		return base, true
	}

	switch t.Recurrence.Frequency {
	case FrequencyDaily:
		steps := days/interval + 1
		return base.AddDate(0, 0, steps*interval), true
	case FrequencyWeekly:
		weeks := days / 7
		steps := weeks/interval + 1
		return base.AddDate(0, 0, 7*steps*interval), true
	default:
		return time.Time{}, false
	}
}

// SameDay compara solo la fecha de calendario (naive, sin normalizar zona).
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// DaysBetween devuelve la cantidad de días de calendario de from a to
// (negativo si to es anterior).
func DaysBetween(from, to time.Time) int {
	return int(civil(to).Sub(civil(from)) / (24 * time.Hour))
}

// civil lleva la fecha de calendario a medianoche UTC para restar sin DST.
func civil(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
