package cmd

import (
	"bufio"
	"fmt"
	"math/rand/v2"
	"strings"

	replyrender "github.com/bnema/verbtrainer/internal/adapters/render/reply"
	"github.com/bnema/verbtrainer/internal/application"
	"github.com/bnema/verbtrainer/internal/domain"
	"github.com/spf13/cobra"
)

const playUser domain.UserID = 1

func newPlayCmd(load appLoader) *cobra.Command {
	var seed uint64

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Practice conjugations in the terminal",
		Long: "Starts an interactive practice session on stdin/stdout.\n\n" +
			"Commands: /start /help /practice /toggle <group> /go /reset /stop /quiz [verb] /quit.\n" +
			"Any other line is an answer.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := load(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("seed") {
				app.random = rand.New(rand.NewPCG(seed, seed))
			}

			corpus, err := app.loadCorpus(cmd.Context())
			if err != nil {
				return err
			}
			service := app.newPracticeService(corpus)

			return runPlayLoop(cmd, service)
		},
	}
	cmd.Flags().Uint64Var(&seed, "seed", 0, "seed the challenge picker for a repeatable session")

	return cmd
}

func runPlayLoop(cmd *cobra.Command, service *application.PracticeService) error {
	if err := writeReply(cmd, service.Welcome(application.SendNew)); err != nil {
		return err
	}

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		if _, err := fmt.Fprint(cmd.ErrOrStderr(), "> "); err != nil {
			return err
		}
		if !scanner.Scan() {
			break
		}

		command, quit := parsePlayLine(playUser, scanner.Text())
		if quit {
			return nil
		}
		if command == nil {
			continue
		}

		if err := writeReply(cmd, service.Handle(cmd.Context(), *command)); err != nil {
			return err
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}

func writeReply(cmd *cobra.Command, r application.Reply) error {
	if r.Empty() {
		return nil
	}

	rendered, err := replyrender.Render(r)
	if err != nil {
		return fmt.Errorf("render reply: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered+"\n")
	return err
}

// parsePlayLine maps one input line to a command. A nil command means the
// line was blank.
func parsePlayLine(user domain.UserID, line string) (*application.Command, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return nil, false
	}

	command := application.Command{UserID: user, Target: application.SendNew}
	if !strings.HasPrefix(trimmed, "/") {
		command.Kind = application.CommandAnswer
		command.Text = line
		return &command, false
	}

	fields := strings.Fields(trimmed)
	arg := ""
	if len(fields) > 1 {
		arg = fields[1]
	}

	switch strings.ToLower(fields[0]) {
	case "/quit", "/exit":
		return nil, true
	case "/start":
		command.Kind = application.CommandStart
	case "/help":
		command.Kind = application.CommandHelp
	case "/practice":
		command.Kind = application.CommandPractice
	case "/toggle":
		command.Kind = application.CommandToggleGroup
		command.Group = domain.GroupID(arg)
	case "/go":
		command.Kind = application.CommandStartPractice
	case "/reset":
		command.Kind = application.CommandResetSelection
	case "/stop":
		command.Kind = application.CommandStopPractice
	case "/quiz":
		command.Kind = application.CommandQuiz
		command.Verb = domain.VerbID(arg)
	default:
		command.Kind = application.CommandUnknown
		command.Text = trimmed
	}

	return &command, false
}
