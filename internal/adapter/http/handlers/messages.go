package handlers

// Message keys for localized success responses; error keys live in
// pkg/apierrors.
const (
	msgLoginSuccess        = "loginSuccess"
	msgUserCreated         = "userCreated"
	msgTaskCreated         = "taskCreated"
	msgTaskDeleted         = "taskDeleted"
	msgStatusUpdated       = "statusUpdated"
	msgTaskCategoryCreated = "taskCategoryCreated"
)
