package entity

type TaskStatus string

const (
	StatusPending TaskStatus = "pending"
	StatusDone    TaskStatus = "done"
)

// IsValid reports whether s is one of the two persisted status values.
func (s TaskStatus) IsValid() bool {
	return s == StatusPending || s == StatusDone
}

// Task is the fixed-shape record produced by the repository. Field order
// matches the column order of the tasks table, so JSON bodies keep the
// task_id, task_title, task_status, created_at key order.
type Task struct {
	ID        int64      `json:"task_id"`
	Title     string     `json:"task_title"`
	Status    TaskStatus `json:"task_status"`
	CreatedAt string     `json:"created_at"`
}

type CreateTaskRequest struct {
	Title  string      `json:"task_title"`
	Status *TaskStatus `json:"task_status"` // optional, defaults to pending
}

// UpdateTaskRequest carries the optional subset of updatable fields.
// A nil pointer means the field was not supplied.
type UpdateTaskRequest struct {
	Title  *string     `json:"task_title"`
	Status *TaskStatus `json:"task_status"`
}
