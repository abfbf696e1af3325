package domain

// CancelKeyword aborts the wizard from any step. It is matched
// case-insensitively on the trimmed text before any state validation; the
// transport maps localized cancel buttons onto it.
const CancelKeyword = "cancel"

// WizardStep is the state of a user's task-creation wizard. A session exists
// only while the step is not StepIdle.
type WizardStep int

const (
	StepIdle WizardStep = iota
	StepAwaitingName
	StepAwaitingDescription
	StepAwaitingPoints
	StepAwaitingDeadline
)

func (s WizardStep) String() string {
	switch s {
	case StepAwaitingName:
		return "awaiting_name"
	case StepAwaitingDescription:
		return "awaiting_description"
	case StepAwaitingPoints:
		return "awaiting_points"
	case StepAwaitingDeadline:
		return "awaiting_deadline"
	default:
		return "idle"
	}
}

// WizardSession is the partial task accumulated so far for one user. At most
// one session exists per user at any time.
type WizardSession struct {
	Step        WizardStep `json:"step"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Points      int64      `json:"points"`
}

// WizardStatus tells the surface which message to render after a wizard call.
type WizardStatus int

const (
	// WizardIdle: free text arrived while no session was active.
	WizardIdle WizardStatus = iota
	// WizardBusy: a new wizard was requested while one is already running.
	WizardBusy
	WizardPromptName
	WizardNameTaken
	WizardPromptDescription
	WizardPromptPoints
	WizardInvalidPoints
	WizardPromptDeadline
	WizardInvalidDuration
	WizardCancelled
	WizardCreated
)

// WizardReply is the outcome of one wizard interaction. Task is set only for
// WizardCreated.
type WizardReply struct {
	Status WizardStatus
	Task   *Task
}
