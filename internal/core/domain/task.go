package domain

// Task is a board card as stored: dates and estimated time are kept as the
// free-form text the client sent, foreign keys are nullable and never
// validated against their target tables.
type Task struct {
	ID            int64
	Title         string
	Description   *string
	CreatedDate   *string
	DueDate       *string
	EstimatedTime *string
	PriorityID    *int64
	StatusID      *int64
	UserID        *int64
}

// TaskDetail enriches a task with the human-readable names behind its
// foreign keys. A name stays nil when the key is null or dangling.
type TaskDetail struct {
	Task
	PriorityName *string
	StatusName   *string
	UserName     *string
}

// TaskFilter narrows a task listing. At most one field is set.
type TaskFilter struct {
	StatusID *int64
	UserID   *int64
}

type CreateTaskInput struct {
	Title         string
	Description   string
	CreatedDate   string
	DueDate       string
	EstimatedTime string
	PriorityID    int64
	StatusID      int64
	UserID        int64
}
