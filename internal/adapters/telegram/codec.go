package telegram

import (
	"strings"

	"github.com/bnema/verbtrainer/internal/application"
	"github.com/bnema/verbtrainer/internal/domain"
)

const (
	callbackTogglePrefix  = "toggle_"
	callbackStartPractice = "start_practice"
	callbackResetSelect   = "reset_selection"
	callbackStopPractice  = "stop_practice"
)

// CallbackData encodes an action as inline button callback data.
func CallbackData(action application.Action) string {
	switch action.Kind {
	case application.ActionToggleGroup:
		return callbackTogglePrefix + string(action.Group)
	case application.ActionStartPractice:
		return callbackStartPractice
	case application.ActionResetSelection:
		return callbackResetSelect
	case application.ActionStopPractice:
		return callbackStopPractice
	default:
		return string(action.Kind)
	}
}

// ParseCallback maps button callback data back to a command that edits the
// message carrying the button.
func ParseCallback(user domain.UserID, data string) application.Command {
	cmd := application.Command{Kind: application.CommandUnknown, UserID: user, Target: application.EditExisting}

	switch {
	case data == callbackStartPractice:
		cmd.Kind = application.CommandStartPractice
	case data == callbackResetSelect:
		cmd.Kind = application.CommandResetSelection
	case data == callbackStopPractice:
		cmd.Kind = application.CommandStopPractice
	case strings.HasPrefix(data, callbackTogglePrefix) && len(data) > len(callbackTogglePrefix):
		cmd.Kind = application.CommandToggleGroup
		cmd.Group = domain.GroupID(strings.TrimPrefix(data, callbackTogglePrefix))
	}

	return cmd
}

// ParseText maps a chat message to a command. Slash commands may carry a
// @botname suffix; any other text is an answer.
func ParseText(user domain.UserID, text string) application.Command {
	cmd := application.Command{Kind: application.CommandAnswer, UserID: user, Text: text, Target: application.SendNew}

	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "/") {
		return cmd
	}

	fields := strings.Fields(trimmed)
	name := strings.ToLower(strings.TrimPrefix(fields[0], "/"))
	if at := strings.IndexByte(name, '@'); at >= 0 {
		name = name[:at]
	}

	cmd.Text = ""
	switch name {
	case "start":
		cmd.Kind = application.CommandStart
	case "help":
		cmd.Kind = application.CommandHelp
	case "practice":
		cmd.Kind = application.CommandPractice
	case "quiz":
		cmd.Kind = application.CommandQuiz
		if len(fields) > 1 {
			cmd.Verb = domain.VerbID(fields[1])
		}
	default:
		cmd.Kind = application.CommandUnknown
		cmd.Text = trimmed
	}

	return cmd
}

// Keyboard renders action rows as an inline keyboard, or nil when there are none.
func Keyboard(rows [][]application.Action) *InlineKeyboardMarkup {
	keyboard := make([][]InlineKeyboardButton, 0, len(rows))
	for _, row := range rows {
		buttons := make([]InlineKeyboardButton, 0, len(row))
		for _, action := range row {
			buttons = append(buttons, InlineKeyboardButton{
				Text:         buttonLabel(action),
				CallbackData: CallbackData(action),
			})
		}
		if len(buttons) > 0 {
			keyboard = append(keyboard, buttons)
		}
	}

	if len(keyboard) == 0 {
		return nil
	}
	return &InlineKeyboardMarkup{InlineKeyboard: keyboard}
}

func buttonLabel(action application.Action) string {
	if action.Kind != application.ActionToggleGroup {
		return action.Label
	}
	if action.Selected {
		return "✅ " + action.Label
	}
	return "☐ " + action.Label
}
