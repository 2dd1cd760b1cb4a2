// Package client es el cliente Go de la API HTTP del planner (lo usa pawpalctl).
package client

import (
	"context"
	"net/url"
	"time"

	"pawpal-planner/internal/platform/datetime"
	"pawpal-planner/internal/platform/httpclient"
)

type Task struct {
	ID              string     `json:"id"`
	PetID           string     `json:"pet_id"`
	Title           string     `json:"title"`
	StartAt         *time.Time `json:"start_at,omitempty"`
	DueAt           *time.Time `json:"due_at,omitempty"`
	DurationMinutes int        `json:"duration_minutes,omitempty"`
	Priority        int        `json:"priority"`
	Status          string     `json:"status"`
}

type AgendaItem struct {
	Task
	Owner string `json:"owner"`
	Pet   string `json:"pet"`
}

type Agenda struct {
	Date  string       `json:"date"`
	Tasks []AgendaItem `json:"tasks"`
}

type ConflictPair struct {
	First  Task `json:"first"`
	Second Task `json:"second"`
}

type Conflicts struct {
	Date     string         `json:"date"`
	Pairs    []ConflictPair `json:"pairs"`
	Warnings []string       `json:"warnings"`
}

type Completion struct {
	Completed Task  `json:"completed"`
	Next      *Task `json:"next,omitempty"`
}

type PlannerClient struct {
	http *httpclient.Client
}

func New(c *httpclient.Client) *PlannerClient {
	return &PlannerClient{http: c}
}

func dateQuery(date time.Time) url.Values {
	if date.IsZero() {
		return nil
	}
	return url.Values{"date": {date.Format(datetime.DateLayout)}}
}

// Agenda: date zero => el servidor usa su fecha actual.
func (c *PlannerClient) Agenda(ctx context.Context, date time.Time) (*Agenda, error) {
	var out Agenda
	if err := c.http.GetJSON(ctx, "/agenda", dateQuery(date), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *PlannerClient) Conflicts(ctx context.Context, date time.Time) (*Conflicts, error) {
	var out Conflicts
	if err := c.http.GetJSON(ctx, "/conflicts", dateQuery(date), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *PlannerClient) CompleteTask(ctx context.Context, owner, pet, taskID string) (*Completion, error) {
	path := "/owners/" + url.PathEscape(owner) + "/pets/" + url.PathEscape(pet) + "/tasks/" + url.PathEscape(taskID) + "/complete"

	var out Completion
	if err := c.http.PostJSON(ctx, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
