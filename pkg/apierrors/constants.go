package apierrors

const (
	MsgMissingCredentials = "missingCredentials"
	MsgInvalidCredentials = "invalidCredentials"
	MsgUserExists         = "userExists"
	MsgFailCreateUser     = "failCreateUser"
	MsgFailListUsers      = "failListUsers"

	MsgInvalidTaskID       = "invalidTaskID"
	MsgInvalidTaskPayload  = "invalidTaskPayload"
	MsgInvalidStatusFilter = "invalidStatusFilter"
	MsgInvalidUserFilter   = "invalidUserFilter"
	MsgTaskNotFound        = "taskNotFound"
	MsgStatusRequired      = "statusRequired"
	MsgFailListTasks       = "failListTasks"
	MsgFailCreateTask      = "failCreateTask"
	MsgFailDeleteTask      = "failDeleteTask"
	MsgFailUpdateStatus    = "failUpdateStatus"

	MsgInvalidTaskCategoryPayload = "invalidTaskCategoryPayload"
	MsgFailCreateTaskCategory     = "failCreateTaskCategory"
	MsgFailListTaskCategories     = "failListTaskCategories"
	MsgFailListCategories         = "failListCategories"
	MsgFailListPriorities         = "failListPriorities"
	MsgFailListStatuses           = "failListStatuses"

	MsgWeatherUnavailable = "weatherUnavailable"
)
