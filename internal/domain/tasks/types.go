package tasks

// Status define el estado de una tarea.
// @Enum pending, done, skipped
type Status string

const (
	StatusPending Status = "pending"
	StatusDone    Status = "done"
	StatusSkipped Status = "skipped"
)

// Frequency define el patrón de repetición soportado.
// @Enum daily, weekly
type Frequency string

const (
	FrequencyDaily  Frequency = "daily"
	FrequencyWeekly Frequency = "weekly"
)

const (
	PriorityLow     = 1
	PriorityDefault = 3
	PriorityHigh    = 5
)
