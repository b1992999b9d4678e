package dto

// TaskItem is the raw list representation: stored values as-is, foreign
// keys unresolved.
type TaskItem struct {
	ID            int64   `json:"id"`
	Title         string  `json:"title"`
	Description   *string `json:"description"`
	CreatedDate   *string `json:"created_date"`
	DueDate       *string `json:"due_date"`
	EstimatedTime *string `json:"estimated_time"`
	PriorityID    *int64  `json:"fk_priority"`
	StatusID      *int64  `json:"fk_status"`
	UserID        *int64  `json:"fk_user"`
}

// TaskDetail is the single-task representation: dates re-rendered as
// DD/MM/YYYY and foreign keys replaced by their names, null when the key
// is null or points nowhere.
type TaskDetail struct {
	ID            int64   `json:"id"`
	Title         string  `json:"title"`
	Description   *string `json:"description"`
	CreatedDate   *string `json:"created_date"`
	DueDate       *string `json:"due_date"`
	EstimatedTime *string `json:"estimated_time"`
	Priority      *string `json:"priority"`
	Status        *string `json:"status"`
	User          *string `json:"user"`
}

// CreateTaskRequest requires every field to be present. Pointer fields
// with a required binding reject absent or null values while accepting
// any present value, including zero; nothing beyond presence is checked.
type CreateTaskRequest struct {
	Title         *string `json:"title" binding:"required"`
	Description   *string `json:"description" binding:"required"`
	CreatedDate   *string `json:"created_date" binding:"required"`
	DueDate       *string `json:"due_date" binding:"required"`
	EstimatedTime *string `json:"estimated_time" binding:"required"`
	PriorityID    *int64  `json:"fk_priority" binding:"required"`
	StatusID      *int64  `json:"fk_status" binding:"required"`
	UserID        *int64  `json:"fk_user" binding:"required"`
}

type UpdateTaskStatusRequest struct {
	StatusID *int64 `json:"status_id" binding:"required"`
}

// CreateTaskCategoryRequest rejects missing and zero ids; it does not
// check that either side exists.
type CreateTaskCategoryRequest struct {
	TaskID     int64 `json:"fk_task" binding:"required"`
	CategoryID int64 `json:"fk_category" binding:"required"`
}

type CreatedResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type StatusUpdatedResponse struct {
	ID       int64  `json:"id"`
	StatusID int64  `json:"fk_status"`
	Message  string `json:"message"`
}
