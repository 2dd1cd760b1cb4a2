// Package agenda corre el resumen diario del planner con un cron.
package agenda

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"pawpal-planner/internal/domain/planner"
	"pawpal-planner/internal/domain/tasks"
	"pawpal-planner/internal/platform/datetime"
	"pawpal-planner/internal/platform/logger"

	"github.com/robfig/cron/v3"
)

// Summary es el resultado de una corrida.
type Summary struct {
	Date      time.Time
	Tasks     int
	Pending   int
	Conflicts int
	Warnings  int
}

// Job publica en el log la agenda del día y sus conflictos.
type Job struct {
	svc      *planner.Service
	log      logger.Logger
	schedule string

	cron    *cron.Cron
	entryID cron.EntryID

	mu   sync.Mutex
	last Summary
	runs int
}

// New crea el job. schedule usa cron con segundos ("0 0 7 * * *").
func New(svc *planner.Service, log logger.Logger, schedule string) *Job {
	if log == nil {
		log = logger.Nop()
	}
	return &Job{
		svc:      svc,
		log:      log.With(map[string]any{"component": "agenda"}),
		schedule: strings.TrimSpace(schedule),
		cron:     cron.New(cron.WithSeconds()),
	}
}

// Start registra el job y arranca el scheduler. Con schedule vacío no hace nada.
func (j *Job) Start(runNow bool) error {
	if j.schedule == "" {
		j.log.Info("agenda job disabled", nil)
		return nil
	}

	id, err := j.cron.AddFunc(j.schedule, func() {
		j.RunOnce(j.svc.Now())
	})
	if err != nil {
		return fmt.Errorf("agenda: invalid schedule %q: %w", j.schedule, err)
	}
	j.entryID = id

	j.cron.Start()
	j.log.Info("agenda job started", map[string]any{"schedule": j.schedule})

	if runNow {
		j.RunOnce(j.svc.Now())
	}
	return nil
}

// Stop detiene el scheduler y espera a que termine la corrida en curso.
func (j *Job) Stop() {
	ctx := j.cron.Stop()
	<-ctx.Done()
	j.log.Info("agenda job stopped", nil)
}

// Next devuelve la próxima ejecución programada (zero si no está corriendo).
func (j *Job) Next() time.Time {
	if j.entryID == 0 {
		return time.Time{}
	}
	return j.cron.Entry(j.entryID).Next
}

// RunOnce arma el resumen de date y lo loguea.
func (j *Job) RunOnce(date time.Time) Summary {
	day := date.Format(datetime.DateLayout)
	items := j.svc.Agenda(date)
	report := j.svc.Conflicts(date)

	sum := Summary{
		Date:      date,
		Tasks:     len(items),
		Pending:   countStatus(items, tasks.StatusPending),
		Conflicts: len(report.Pairs),
		Warnings:  len(report.Warnings),
	}

	for _, t := range items {
		owner, pet, _ := j.svc.PetName(t.PetID)
		fields := map[string]any{
			"date":     day,
			"owner":    owner,
			"pet":      pet,
			"task_id":  t.ID,
			"title":    t.Title,
			"priority": t.Priority,
			"status":   string(t.Status),
		}
		if t.DueAt != nil {
			fields["due_at"] = t.DueAt.Format(datetime.MinuteLayout)
		}
		j.log.Info("agenda item", fields)
	}

	for _, p := range report.Pairs {
		j.log.Warn("overlapping tasks", map[string]any{
			"date":   day,
			"first":  p.First.Title,
			"second": p.Second.Title,
		})
	}
	for _, w := range report.Warnings {
		j.log.Warn(w, map[string]any{"date": day})
	}

	j.log.Info("agenda summary", map[string]any{
		"date":      day,
		"tasks":     sum.Tasks,
		"pending":   sum.Pending,
		"conflicts": sum.Conflicts,
		"warnings":  sum.Warnings,
	})

	j.mu.Lock()
	j.last = sum
	j.runs++
	j.mu.Unlock()

	return sum
}

// Last devuelve el resumen de la última corrida y cuántas hubo.
func (j *Job) Last() (Summary, int) {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.last, j.runs
}

func countStatus(items []tasks.Task, st tasks.Status) int {
	n := 0
	for _, t := range items {
		if t.Status == st {
			n++
		}
	}
	return n
}
