package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bnema/verbtrainer/internal/domain"
	"github.com/bnema/verbtrainer/internal/ports"
)

// PracticeService drives the per-user practice session:
// NoSession -> Selecting -> Active <-> Grading -> Active | Ended.
// Every operation holds the user's lock for its whole read-modify-write.
type PracticeService struct {
	corpus   *domain.Corpus
	store    ports.SessionStore
	selector *ChallengeSelector
	clock    ports.Clock
	logger   *slog.Logger
	locks    *userLocks
}

func NewPracticeService(corpus *domain.Corpus, store ports.SessionStore, selector *ChallengeSelector, clock ports.Clock, logger *slog.Logger) *PracticeService {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if selector == nil {
		selector = NewChallengeSelector(ports.SystemRandom{}, clock)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PracticeService{
		corpus:   corpus,
		store:    store,
		selector: selector,
		clock:    clock,
		logger:   logger,
		locks:    newUserLocks(),
	}
}

// Handle runs one command and always produces a reply. Errors never escape:
// an empty selection becomes an alert and anything else is logged and turned
// into the generic failure message.
func (s *PracticeService) Handle(ctx context.Context, cmd Command) Reply {
	reply, err := s.dispatch(ctx, cmd)
	if err == nil {
		return reply
	}

	if errors.Is(err, domain.ErrEmptySelection) {
		return Reply{Alert: emptySelectionText}
	}

	attrs := []any{
		"user_id", int64(cmd.UserID),
		"command", string(cmd.Kind),
		"error", err,
	}
	if errors.Is(err, domain.ErrNotFound) {
		s.logger.ErrorContext(ctx, "conjugation lookup failed after corpus validation", attrs...)
	} else {
		s.logger.ErrorContext(ctx, "command failed", attrs...)
	}

	return s.Failure(cmd.Target)
}

func (s *PracticeService) dispatch(ctx context.Context, cmd Command) (Reply, error) {
	switch cmd.Kind {
	case CommandStart:
		return s.Welcome(cmd.Target), nil
	case CommandHelp:
		return s.Help(cmd.Target), nil
	case CommandPractice:
		return s.RequestPractice(ctx, cmd.UserID, cmd.Target)
	case CommandToggleGroup:
		return s.ToggleGroup(ctx, cmd.UserID, cmd.Group, cmd.Target)
	case CommandStartPractice:
		return s.StartPractice(ctx, cmd.UserID, cmd.Target)
	case CommandResetSelection:
		return s.ResetSelection(ctx, cmd.UserID, cmd.Target)
	case CommandStopPractice:
		return s.StopPractice(ctx, cmd.UserID, cmd.Target)
	case CommandAnswer:
		return s.SubmitAnswer(ctx, cmd.UserID, cmd.Text, cmd.Target)
	case CommandQuiz:
		return s.Quiz(ctx, cmd.UserID, cmd.Verb, cmd.Target)
	default:
		return s.Unknown(ctx, cmd.UserID, cmd.Target)
	}
}

func (s *PracticeService) Welcome(target RenderTarget) Reply {
	return singleReply(Message{Kind: MessageWelcome, Target: target, Text: welcomeText})
}

func (s *PracticeService) Help(target RenderTarget) Reply {
	return singleReply(Message{Kind: MessageHelp, Target: target, Text: helpText})
}

func (s *PracticeService) Failure(target RenderTarget) Reply {
	return FailureReply(target)
}

// RequestPractice moves the user to Selecting with an empty selection. An
// outstanding challenge is kept: answering it grades once without continuing.
func (s *PracticeService) RequestPractice(ctx context.Context, user domain.UserID, target RenderTarget) (Reply, error) {
	defer s.locks.lock(user)()

	session, err := s.store.Reset(ctx, user)
	if err != nil {
		return Reply{}, fmt.Errorf("reset practice session: %w", err)
	}

	return singleReply(s.selectionMessage(session, target)), nil
}

func (s *PracticeService) ToggleGroup(ctx context.Context, user domain.UserID, group domain.GroupID, target RenderTarget) (Reply, error) {
	defer s.locks.lock(user)()

	session, found, err := s.loadSession(ctx, user)
	if err != nil {
		return Reply{}, err
	}
	if !found {
		return s.nudge(target), nil
	}
	if session.Active {
		return s.currentState(ctx, user, &session, target)
	}
	if _, ok := s.corpus.Catalog().Group(group); !ok {
		return singleReply(s.selectionMessage(session, target)), nil
	}

	session.ToggleGroup(group)
	session.UpdatedAt = s.clock.Now()
	if err := s.store.Save(ctx, session); err != nil {
		return Reply{}, fmt.Errorf("save practice session: %w", err)
	}

	return singleReply(s.selectionMessage(session, target)), nil
}

func (s *PracticeService) ResetSelection(ctx context.Context, user domain.UserID, target RenderTarget) (Reply, error) {
	defer s.locks.lock(user)()

	session, found, err := s.loadSession(ctx, user)
	if err != nil {
		return Reply{}, err
	}
	if !found {
		return s.nudge(target), nil
	}
	if session.Active {
		return s.currentState(ctx, user, &session, target)
	}

	session.ClearSelection()
	session.UpdatedAt = s.clock.Now()
	if err := s.store.Save(ctx, session); err != nil {
		return Reply{}, fmt.Errorf("save practice session: %w", err)
	}

	return singleReply(s.selectionMessage(session, target)), nil
}

// StartPractice fails with domain.ErrEmptySelection and leaves the session
// untouched when no group is selected.
func (s *PracticeService) StartPractice(ctx context.Context, user domain.UserID, target RenderTarget) (Reply, error) {
	defer s.locks.lock(user)()

	session, found, err := s.loadSession(ctx, user)
	if err != nil {
		return Reply{}, err
	}
	if !found {
		return s.nudge(target), nil
	}
	if session.Active {
		return s.currentState(ctx, user, &session, target)
	}
	if !session.HasSelection() {
		return Reply{}, domain.ErrEmptySelection
	}

	challenge, err := s.selector.SelectChallenge(s.corpus, session.SelectedGroups)
	if err != nil {
		return Reply{}, err
	}

	session.Active = true
	session.UpdatedAt = s.clock.Now()
	if err := s.store.Save(ctx, session); err != nil {
		return Reply{}, fmt.Errorf("save practice session: %w", err)
	}
	if err := s.store.PutChallenge(ctx, user, challenge); err != nil {
		return Reply{}, fmt.Errorf("store challenge: %w", err)
	}

	return singleReply(s.challengeMessage(challenge, target)), nil
}

// SubmitAnswer grades text against the outstanding challenge. Without one the
// user only gets the nudge and no state is created.
func (s *PracticeService) SubmitAnswer(ctx context.Context, user domain.UserID, text string, target RenderTarget) (Reply, error) {
	defer s.locks.lock(user)()

	challenge, err := s.store.GetChallenge(ctx, user)
	if err != nil {
		if errors.Is(err, domain.ErrNoChallenge) {
			return s.nudge(target), nil
		}
		return Reply{}, fmt.Errorf("load challenge: %w", err)
	}

	session, active, err := s.loadSession(ctx, user)
	if err != nil {
		return Reply{}, err
	}
	active = active && session.Active

	grade := GradeView{
		Correct:     domain.IsCorrect(text, challenge.Answer),
		Submitted:   strings.TrimSpace(text),
		Expected:    challenge.Answer,
		Verb:        challenge.Verb,
		Translation: challenge.Translation,
		Continues:   active,
	}
	result := Message{Kind: MessageResult, Target: target, Text: gradeText(grade), Grade: &grade}

	if !active {
		if err := s.store.ClearChallenge(ctx, user); err != nil {
			return Reply{}, fmt.Errorf("clear challenge: %w", err)
		}
		return singleReply(result), nil
	}

	// The next challenge replaces the graded one in a single write, so an
	// active session is never left without a challenge.
	next, err := s.selector.SelectChallenge(s.corpus, session.SelectedGroups)
	if err != nil {
		return Reply{}, err
	}
	if err := s.store.PutChallenge(ctx, user, next); err != nil {
		return Reply{}, fmt.Errorf("store challenge: %w", err)
	}

	return Reply{Messages: []Message{result, s.challengeMessage(next, SendNew)}}, nil
}

func (s *PracticeService) StopPractice(ctx context.Context, user domain.UserID, target RenderTarget) (Reply, error) {
	defer s.locks.lock(user)()

	if err := s.store.Delete(ctx, user); err != nil {
		return Reply{}, fmt.Errorf("delete practice session: %w", err)
	}

	return singleReply(Message{Kind: MessageStopped, Target: target, Text: stoppedText}), nil
}

// Quiz issues a single challenge for verb, or a random verb when verb is empty.
// It draws from the active selection when practice is running and from every
// tense otherwise. No session is created.
func (s *PracticeService) Quiz(ctx context.Context, user domain.UserID, verb domain.VerbID, target RenderTarget) (Reply, error) {
	defer s.locks.lock(user)()

	verb = domain.VerbID(strings.ToLower(strings.TrimSpace(string(verb))))
	if verb != "" {
		if _, ok := s.corpus.Verb(verb); !ok {
			return singleReply(Message{Kind: MessageUnknownVerb, Target: target, Text: unknownVerbText(verb)}), nil
		}
	}

	session, found, err := s.loadSession(ctx, user)
	if err != nil {
		return Reply{}, err
	}
	var groups []domain.GroupID
	if found && session.Active {
		groups = session.SelectedGroups
	}

	var challenge domain.Challenge
	if verb == "" {
		challenge, err = s.selector.SelectChallenge(s.corpus, groups)
	} else {
		challenge, err = s.selector.SelectForVerb(s.corpus, verb, groups)
	}
	if err != nil {
		return Reply{}, err
	}

	if err := s.store.PutChallenge(ctx, user, challenge); err != nil {
		return Reply{}, fmt.Errorf("store challenge: %w", err)
	}

	return singleReply(s.challengeMessage(challenge, target)), nil
}

// Unknown re-renders whatever the user is currently looking at.
func (s *PracticeService) Unknown(ctx context.Context, user domain.UserID, target RenderTarget) (Reply, error) {
	defer s.locks.lock(user)()

	session, found, err := s.loadSession(ctx, user)
	if err != nil {
		return Reply{}, err
	}
	if !found {
		return s.currentState(ctx, user, nil, target)
	}
	return s.currentState(ctx, user, &session, target)
}

// currentState must be called with the user's lock held.
func (s *PracticeService) currentState(ctx context.Context, user domain.UserID, session *domain.PracticeSession, target RenderTarget) (Reply, error) {
	if session != nil && !session.Active {
		return singleReply(s.selectionMessage(*session, target)), nil
	}

	challenge, err := s.store.GetChallenge(ctx, user)
	switch {
	case err == nil:
		return singleReply(s.challengeMessage(challenge, target)), nil
	case !errors.Is(err, domain.ErrNoChallenge):
		return Reply{}, fmt.Errorf("load challenge: %w", err)
	}

	return s.nudge(target), nil
}

func (s *PracticeService) loadSession(ctx context.Context, user domain.UserID) (domain.PracticeSession, bool, error) {
	session, err := s.store.Get(ctx, user)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			return domain.PracticeSession{}, false, nil
		}
		return domain.PracticeSession{}, false, fmt.Errorf("load practice session: %w", err)
	}

	return session, true, nil
}

func (s *PracticeService) nudge(target RenderTarget) Reply {
	return singleReply(Message{Kind: MessageNudge, Target: target, Text: nudgeText})
}

func (s *PracticeService) selectionMessage(session domain.PracticeSession, target RenderTarget) Message {
	catalog := s.corpus.Catalog()
	view := &SelectionView{}

	for _, id := range session.SelectedGroups {
		if group, ok := catalog.Group(id); ok {
			view.SelectedNames = append(view.SelectedNames, group.Name)
		}
	}

	actions := make([][]Action, 0, len(catalog.Groups)+1)
	for _, group := range catalog.VisibleGroups() {
		selected := session.IsSelected(group.ID)
		view.Groups = append(view.Groups, GroupOption{
			ID:         group.ID,
			Name:       group.Name,
			NativeName: group.NativeName,
			Selected:   selected,
		})
		actions = append(actions, []Action{{
			Kind:     ActionToggleGroup,
			Group:    group.ID,
			Label:    group.Name,
			Selected: selected,
		}})
	}
	actions = append(actions, []Action{
		{Kind: ActionStartPractice, Label: startPracticeLabel},
		{Kind: ActionResetSelection, Label: resetSelectionLabel},
	})

	return Message{
		Kind:      MessageSelection,
		Target:    target,
		Text:      selectionText(view.SelectedNames),
		Actions:   actions,
		Selection: view,
	}
}

func (s *PracticeService) challengeMessage(challenge domain.Challenge, target RenderTarget) Message {
	return Message{
		Kind:      MessageChallenge,
		Target:    target,
		Text:      challengeText(challenge),
		Actions:   [][]Action{{{Kind: ActionStopPractice, Label: stopPracticeLabel}}},
		Challenge: &challenge,
	}
}
