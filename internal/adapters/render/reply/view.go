package reply

import (
	"fmt"
	"strings"

	"github.com/bnema/verbtrainer/internal/application"
	"github.com/bnema/verbtrainer/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const (
	checkedPrefix   = "✅ "
	uncheckedPrefix = "☐ "
)

func renderReply(r application.Reply, s styles) string {
	blocks := make([]string, 0, len(r.Messages)+1)

	if r.Alert != "" {
		blocks = append(blocks, s.alert.Render("⚠ "+r.Alert))
	}

	for i, msg := range r.Messages {
		block := renderMessage(msg, s)
		if i > 0 || len(blocks) > 0 {
			block = s.section.Render(block)
		}
		blocks = append(blocks, block)
	}

	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

func renderMessage(msg application.Message, s styles) string {
	lines := []string{messageStyle(msg, s).Render(msg.Text)}

	if actions := renderActions(msg.Actions, s); actions != "" {
		lines = append(lines, s.section.Render(actions))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func messageStyle(msg application.Message, s styles) lipgloss.Style {
	switch msg.Kind {
	case application.MessageChallenge, application.MessageSelection:
		return s.prompt
	case application.MessageResult:
		if msg.Grade != nil && msg.Grade.Correct {
			return s.correct
		}
		return s.wrong
	case application.MessageFailure:
		return s.failure
	case application.MessageNudge, application.MessageStopped, application.MessageUnknownVerb:
		return s.faint
	default:
		return s.text
	}
}

func renderActions(rows [][]application.Action, s styles) string {
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		parts := make([]string, 0, len(row))
		for _, action := range row {
			parts = append(parts, renderAction(action, s))
		}
		if len(parts) > 0 {
			lines = append(lines, strings.Join(parts, "   "))
		}
	}

	return strings.Join(lines, "\n")
}

func renderAction(action application.Action, s styles) string {
	label := action.Label
	style := s.action
	if action.Kind == application.ActionToggleGroup {
		if action.Selected {
			label = checkedPrefix + label
			style = s.selected
		} else {
			label = uncheckedPrefix + label
		}
	}

	return fmt.Sprintf("%s %s", style.Render(label), s.command.Render("("+ActionCommand(action)+")"))
}

// ActionCommand is the play-loop command that triggers action.
func ActionCommand(action application.Action) string {
	switch action.Kind {
	case application.ActionToggleGroup:
		return "/toggle " + string(action.Group)
	case application.ActionStartPractice:
		return "/go"
	case application.ActionResetSelection:
		return "/reset"
	case application.ActionStopPractice:
		return "/stop"
	default:
		return ""
	}
}

func renderVerb(verb domain.Verb, catalog domain.Catalog, s styles) string {
	title := string(verb.ID)
	if verb.Translation != "" {
		title = fmt.Sprintf("%s (%s)", verb.ID, verb.Translation)
	}
	lines := []string{s.title.Render(title)}

	for _, tense := range catalog.Tenses {
		forms, ok := verb.Conjugations[tense.ID]
		if !ok {
			continue
		}

		block := []string{s.tenseName.Render(tense.Name) + " " + s.header.Render(tense.NativeName)}
		for i, form := range forms {
			block = append(block, s.person.Render(domain.Person(i).Name())+s.form.Render(form))
		}
		lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, block...)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderStats(corpus *domain.Corpus, s styles) string {
	catalog := corpus.Catalog()
	lines := []string{
		s.title.Render("Verb corpus"),
		s.header.Render(fmt.Sprintf("verbs: %d", corpus.Len())),
		s.header.Render(fmt.Sprintf("tenses: %d", len(catalog.Tenses))),
		s.header.Render(fmt.Sprintf("challenges: %d", corpus.Len()*len(catalog.Tenses)*domain.PersonCount)),
	}

	groups := make([]string, 0, len(catalog.Groups))
	for _, group := range catalog.Groups {
		tenses := catalog.ResolveTenses([]domain.GroupID{group.ID})
		line := fmt.Sprintf("%-20s %d tenses, %d challenges", group.ID, len(tenses), corpus.Len()*len(tenses)*domain.PersonCount)
		if group.Hidden {
			line += " (hidden)"
		}
		groups = append(groups, s.text.Render(line))
	}
	lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, groups...)))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
