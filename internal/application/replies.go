package application

import "github.com/bnema/verbtrainer/internal/domain"

type RenderTarget int

const (
	SendNew RenderTarget = iota
	EditExisting
)

func (t RenderTarget) String() string {
	switch t {
	case EditExisting:
		return "edit_existing"
	default:
		return "send_new"
	}
}

type MessageKind string

const (
	MessageWelcome     MessageKind = "welcome"
	MessageHelp        MessageKind = "help"
	MessageSelection   MessageKind = "selection"
	MessageChallenge   MessageKind = "challenge"
	MessageResult      MessageKind = "result"
	MessageStopped     MessageKind = "stopped"
	MessageNudge       MessageKind = "nudge"
	MessageUnknownVerb MessageKind = "unknown_verb"
	MessageFailure     MessageKind = "failure"
)

type ActionKind string

const (
	ActionToggleGroup    ActionKind = "toggle_group"
	ActionStartPractice  ActionKind = "start_practice"
	ActionResetSelection ActionKind = "reset_selection"
	ActionStopPractice   ActionKind = "stop_practice"
)

// Action is a labelled choice offered back to the user. Transports decide how
// to present it.
type Action struct {
	Kind     ActionKind
	Group    domain.GroupID
	Label    string
	Selected bool
}

type GroupOption struct {
	ID         domain.GroupID
	Name       string
	NativeName string
	Selected   bool
}

type SelectionView struct {
	Groups        []GroupOption
	SelectedNames []string
}

type GradeView struct {
	Correct     bool
	Submitted   string
	Expected    string
	Verb        domain.VerbID
	Translation string
	Continues   bool
}

type Message struct {
	Kind      MessageKind
	Target    RenderTarget
	Text      string
	Actions   [][]Action
	Selection *SelectionView
	Challenge *domain.Challenge
	Grade     *GradeView
}

// Reply is everything produced for one Command. Only the first message may
// carry EditExisting. Alert is a transient notice that leaves the
// conversation untouched.
type Reply struct {
	Messages []Message
	Alert    string
}

func (r Reply) Empty() bool {
	return len(r.Messages) == 0 && r.Alert == ""
}

func singleReply(message Message) Reply {
	return Reply{Messages: []Message{message}}
}

// FailureReply is the generic "something went wrong" reply, also used by
// transports after recovering from a panic.
func FailureReply(target RenderTarget) Reply {
	return singleReply(Message{Kind: MessageFailure, Target: target, Text: failureText})
}
