package botmsg

// Message keys resolved through the translation bundle.
const (
	MsgWelcome     = "welcome"
	MsgMenu        = "menu"
	MsgIdleHint    = "idleHint"
	MsgWizardBusy  = "wizardBusy"
	MsgCancelled   = "wizardCancelled"
	MsgTaskCreated = "taskCreated"

	MsgPromptTaskName        = "promptTaskName"
	MsgPromptTaskDescription = "promptTaskDescription"
	MsgPromptTaskPoints      = "promptTaskPoints"
	MsgPromptTaskDeadline    = "promptTaskDeadline"
	MsgTaskNameTaken         = "taskNameTaken"
	MsgInvalidPoints         = "invalidPoints"
	MsgInvalidDuration       = "invalidDuration"

	MsgTaskList      = "taskList"
	MsgTaskListEmpty = "taskListEmpty"
	MsgTaskCard      = "taskCard"
	MsgTaskNotFound  = "taskNotFound"
	MsgTaskSettled   = "taskSettled"
	MsgCheckOnTime   = "checkOnTime"
	MsgCheckLate     = "checkLate"

	MsgButtonAddTask   = "buttonAddTask"
	MsgButtonShowTasks = "buttonShowTasks"
	MsgButtonCancel    = "buttonCancel"
	MsgButtonBack      = "buttonBack"
	MsgButtonDone      = "buttonDone"

	MsgInvalidUpdatePayload = "invalidUpdatePayload"
	MsgInternalError        = "internalError"
)
