package application

import "github.com/bnema/verbtrainer/internal/domain"

type CommandKind string

const (
	CommandStart          CommandKind = "start"
	CommandHelp           CommandKind = "help"
	CommandPractice       CommandKind = "practice"
	CommandToggleGroup    CommandKind = "toggle_group"
	CommandStartPractice  CommandKind = "start_practice"
	CommandResetSelection CommandKind = "reset_selection"
	CommandStopPractice   CommandKind = "stop_practice"
	CommandAnswer         CommandKind = "answer"
	CommandQuiz           CommandKind = "quiz"
	CommandUnknown        CommandKind = "unknown"
)

// Command is one inbound user action. Target tells the service whether the
// first reply message may replace the message the action came from.
type Command struct {
	Kind   CommandKind
	UserID domain.UserID
	Group  domain.GroupID
	Text   string
	Verb   domain.VerbID
	Target RenderTarget
}
