package application

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"

	"github.com/bnema/verbtrainer/internal/adapters/session/memory"
	"github.com/bnema/verbtrainer/internal/domain"
	"github.com/bnema/verbtrainer/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testUser domain.UserID = 42

func newTestService(t *testing.T, random *seqRandom) (*PracticeService, *memory.Store) {
	t.Helper()

	clock := fixedClock{now: testNow}
	store := memory.NewStore(clock)
	if random == nil {
		random = &seqRandom{}
	}
	service := NewPracticeService(testCorpus(t), store, NewChallengeSelector(random, clock), clock, discardLogger())

	return service, store
}

func TestWelcomeAndHelpAreStatic(t *testing.T) {
	t.Parallel()

	service, store := newTestService(t, nil)

	welcome := service.Handle(context.Background(), Command{Kind: CommandStart, UserID: testUser})
	require.Len(t, welcome.Messages, 1)
	assert.Equal(t, MessageWelcome, welcome.Messages[0].Kind)
	assert.Contains(t, welcome.Messages[0].Text, "/practice")

	help := service.Handle(context.Background(), Command{Kind: CommandHelp, UserID: testUser})
	require.Len(t, help.Messages, 1)
	assert.Equal(t, MessageHelp, help.Messages[0].Kind)
	assert.Contains(t, help.Messages[0].Text, "con y sin acentos")

	assert.Equal(t, 0, store.Len())
}

func TestRequestPracticeEmitsSelectionPrompt(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service, store := newTestService(t, nil)

	reply, err := service.RequestPractice(ctx, testUser, SendNew)
	require.NoError(t, err)
	require.Len(t, reply.Messages, 1)

	msg := reply.Messages[0]
	assert.Equal(t, MessageSelection, msg.Kind)
	assert.Equal(t, SendNew, msg.Target)
	assert.Contains(t, msg.Text, "Seleccionado: Nada seleccionado")
	require.NotNil(t, msg.Selection)
	require.Len(t, msg.Selection.Groups, 3)
	for _, group := range msg.Selection.Groups {
		assert.False(t, group.Selected)
		assert.NotEqual(t, domain.GroupAll, group.ID)
	}

	require.Len(t, msg.Actions, 4)
	assert.Equal(t, Action{Kind: ActionToggleGroup, Group: domain.GroupPresent, Label: "Presente"}, msg.Actions[0][0])
	assert.Equal(t, []Action{
		{Kind: ActionStartPractice, Label: "🎯 Empezar práctica"},
		{Kind: ActionResetSelection, Label: "🔄 Resetear"},
	}, msg.Actions[3])

	session, err := store.Get(ctx, testUser)
	require.NoError(t, err)
	assert.False(t, session.Active)
	assert.Empty(t, session.SelectedGroups)
}

func TestRequestPracticeResetsActiveSession(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service, store := newTestService(t, nil)
	require.NoError(t, store.Save(ctx, domain.PracticeSession{UserID: testUser, SelectedGroups: []domain.GroupID{domain.GroupPast}, Active: true}))

	_, err := service.RequestPractice(ctx, testUser, SendNew)
	require.NoError(t, err)

	session, err := store.Get(ctx, testUser)
	require.NoError(t, err)
	assert.False(t, session.Active)
	assert.Empty(t, session.SelectedGroups)
}

func TestToggleGroupFlipsMembership(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service, store := newTestService(t, nil)
	_, err := service.RequestPractice(ctx, testUser, SendNew)
	require.NoError(t, err)

	reply, err := service.ToggleGroup(ctx, testUser, domain.GroupPast, EditExisting)
	require.NoError(t, err)
	require.Len(t, reply.Messages, 1)
	assert.Equal(t, EditExisting, reply.Messages[0].Target)
	assert.Contains(t, reply.Messages[0].Text, "Seleccionado: Tiempos Pasados")
	assert.True(t, reply.Messages[0].Actions[1][0].Selected)

	_, err = service.ToggleGroup(ctx, testUser, domain.GroupPresent, EditExisting)
	require.NoError(t, err)
	reply, err = service.ToggleGroup(ctx, testUser, domain.GroupPresent, EditExisting)
	require.NoError(t, err)

	session, err := store.Get(ctx, testUser)
	require.NoError(t, err)
	assert.Equal(t, []domain.GroupID{domain.GroupPast}, session.SelectedGroups)
	assert.Equal(t, []string{"Tiempos Pasados"}, reply.Messages[0].Selection.SelectedNames)
}

func TestToggleUnknownGroupIsNoOp(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service, store := newTestService(t, nil)
	_, err := service.RequestPractice(ctx, testUser, SendNew)
	require.NoError(t, err)

	reply, err := service.ToggleGroup(ctx, testUser, "imperativo", EditExisting)
	require.NoError(t, err)
	require.Len(t, reply.Messages, 1)
	assert.Equal(t, MessageSelection, reply.Messages[0].Kind)

	session, err := store.Get(ctx, testUser)
	require.NoError(t, err)
	assert.Empty(t, session.SelectedGroups)
}

func TestResetSelectionClearsGroups(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service, store := newTestService(t, nil)
	_, err := service.RequestPractice(ctx, testUser, SendNew)
	require.NoError(t, err)
	_, err = service.ToggleGroup(ctx, testUser, domain.GroupPast, EditExisting)
	require.NoError(t, err)

	reply, err := service.ResetSelection(ctx, testUser, EditExisting)
	require.NoError(t, err)
	assert.Contains(t, reply.Messages[0].Text, "Nada seleccionado")

	session, err := store.Get(ctx, testUser)
	require.NoError(t, err)
	assert.False(t, session.HasSelection())
}

func TestStartPracticeWithEmptySelection(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service, store := newTestService(t, nil)
	_, err := service.RequestPractice(ctx, testUser, SendNew)
	require.NoError(t, err)

	_, err = service.StartPractice(ctx, testUser, EditExisting)
	require.ErrorIs(t, err, domain.ErrEmptySelection)

	reply := service.Handle(ctx, Command{Kind: CommandStartPractice, UserID: testUser, Target: EditExisting})
	assert.Empty(t, reply.Messages)
	assert.Equal(t, "¡Selecciona al menos un grupo de tiempos!", reply.Alert)

	session, err := store.Get(ctx, testUser)
	require.NoError(t, err)
	assert.False(t, session.Active)
	assert.Empty(t, session.SelectedGroups)

	_, err = store.GetChallenge(ctx, testUser)
	assert.ErrorIs(t, err, domain.ErrNoChallenge)
}

func TestStartPracticeWithPresentGroupAsksForPresente(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service, store := newTestService(t, &seqRandom{values: []int{1, 0, 1}})
	_, err := service.RequestPractice(ctx, testUser, SendNew)
	require.NoError(t, err)
	_, err = service.ToggleGroup(ctx, testUser, domain.GroupPresent, EditExisting)
	require.NoError(t, err)

	reply, err := service.StartPractice(ctx, testUser, EditExisting)
	require.NoError(t, err)
	require.Len(t, reply.Messages, 1)

	msg := reply.Messages[0]
	assert.Equal(t, MessageChallenge, msg.Kind)
	assert.Equal(t, EditExisting, msg.Target)
	require.NotNil(t, msg.Challenge)
	assert.Equal(t, domain.TenseID("presente"), msg.Challenge.Tense)
	assert.Equal(t, "🔤 Conjugar el verbo:\n\nhablar (говорить) en Presente para tú\n\nEscribe tu respuesta:", msg.Text)
	assert.Equal(t, [][]Action{{{Kind: ActionStopPractice, Label: "🛑 Parar práctica"}}}, msg.Actions)

	session, err := store.Get(ctx, testUser)
	require.NoError(t, err)
	assert.True(t, session.Active)

	stored, err := store.GetChallenge(ctx, testUser)
	require.NoError(t, err)
	assert.Equal(t, "hablas", stored.Answer)
}

func TestSubmitCorrectAnswerContinuesPractice(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service, store := newTestService(t, &seqRandom{values: []int{0, 0, 2}})
	require.NoError(t, store.Save(ctx, domain.PracticeSession{UserID: testUser, SelectedGroups: []domain.GroupID{domain.GroupPresent}, Active: true}))
	require.NoError(t, store.PutChallenge(ctx, testUser, domain.Challenge{
		Verb:        "hablar",
		Tense:       "presente",
		Person:      domain.PersonTu,
		Answer:      "hablas",
		Translation: "говорить",
		Groups:      []domain.GroupID{domain.GroupPresent},
	}))

	reply, err := service.SubmitAnswer(ctx, testUser, "HABLAS", SendNew)
	require.NoError(t, err)
	require.Len(t, reply.Messages, 2)

	result := reply.Messages[0]
	assert.Equal(t, MessageResult, result.Kind)
	require.NotNil(t, result.Grade)
	assert.True(t, result.Grade.Correct)
	assert.True(t, result.Grade.Continues)
	assert.Equal(t, "¡Correcto! ✅\n\nhablar (говорить) → hablas\n\nSiguiente pregunta:", result.Text)

	next := reply.Messages[1]
	assert.Equal(t, MessageChallenge, next.Kind)
	assert.Equal(t, SendNew, next.Target)
	require.NotNil(t, next.Challenge)
	assert.Equal(t, domain.TenseID("presente"), next.Challenge.Tense)

	session, err := store.Get(ctx, testUser)
	require.NoError(t, err)
	assert.True(t, session.Active)

	stored, err := store.GetChallenge(ctx, testUser)
	require.NoError(t, err)
	assert.Equal(t, next.Challenge.Answer, stored.Answer)
	assert.Equal(t, "come", stored.Answer)
}

func TestSubmitWrongAnswerWithoutActiveSession(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service, store := newTestService(t, nil)
	require.NoError(t, store.PutChallenge(ctx, testUser, domain.Challenge{Verb: "hablar", Answer: "hablé", Translation: "говорить"}))

	reply, err := service.SubmitAnswer(ctx, testUser, "  hablo ", SendNew)
	require.NoError(t, err)
	require.Len(t, reply.Messages, 1)
	assert.False(t, reply.Messages[0].Grade.Correct)
	assert.Equal(t, "❌ Incorrecto.\n\nTu respuesta: hablo\nRespuesta correcta: hablé\n\n¿Quieres intentar otro verbo? Usa /practice", reply.Messages[0].Text)

	_, err = store.GetChallenge(ctx, testUser)
	assert.ErrorIs(t, err, domain.ErrNoChallenge)
	assert.Equal(t, 0, store.Len())
}

func TestSubmitAnswerAcceptsMissingAccent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service, store := newTestService(t, nil)
	require.NoError(t, store.PutChallenge(ctx, testUser, domain.Challenge{Verb: "hablar", Answer: "hablé", Translation: "говорить"}))

	reply, err := service.SubmitAnswer(ctx, testUser, "hable", SendNew)
	require.NoError(t, err)
	require.Len(t, reply.Messages, 1)
	assert.True(t, reply.Messages[0].Grade.Correct)
	assert.Contains(t, reply.Messages[0].Text, "¿Quieres practicar otro verbo? Usa /practice")
}

func TestFreeTextWithoutSessionNudges(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service, store := newTestService(t, nil)

	reply := service.Handle(ctx, Command{Kind: CommandAnswer, UserID: testUser, Text: "hola"})
	require.Len(t, reply.Messages, 1)
	assert.Equal(t, MessageNudge, reply.Messages[0].Kind)
	assert.Equal(t, "¡Hola! 👋 Usa /practice para empezar a practicar conjugaciones de verbos.", reply.Messages[0].Text)

	_, err := store.Get(ctx, testUser)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	assert.Equal(t, 0, store.Len())
}

func TestFreeTextNudgeTouchesOnlyTheChallenge(t *testing.T) {
	store := mocks.NewMockSessionStore(t)
	service := NewPracticeService(testCorpus(t), store, NewChallengeSelector(&seqRandom{}, fixedClock{now: testNow}), fixedClock{now: testNow}, discardLogger())

	store.EXPECT().GetChallenge(mockAnyContext(), testUser).Return(domain.Challenge{}, domain.ErrNoChallenge).Once()

	reply, err := service.SubmitAnswer(context.Background(), testUser, "hola", SendNew)
	require.NoError(t, err)
	assert.Equal(t, MessageNudge, reply.Messages[0].Kind)
}

func TestStopThenFreeTextNudges(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service, store := newTestService(t, nil)
	_, err := service.RequestPractice(ctx, testUser, SendNew)
	require.NoError(t, err)
	_, err = service.ToggleGroup(ctx, testUser, domain.GroupPast, EditExisting)
	require.NoError(t, err)
	_, err = service.StartPractice(ctx, testUser, EditExisting)
	require.NoError(t, err)

	reply, err := service.StopPractice(ctx, testUser, EditExisting)
	require.NoError(t, err)
	require.Len(t, reply.Messages, 1)
	assert.Equal(t, MessageStopped, reply.Messages[0].Kind)
	assert.Equal(t, EditExisting, reply.Messages[0].Target)
	assert.Equal(t, 0, store.Len())

	reply = service.Handle(ctx, Command{Kind: CommandAnswer, UserID: testUser, Text: "hablé"})
	assert.Equal(t, MessageNudge, reply.Messages[0].Kind)
}

func TestStopWithoutSessionConfirms(t *testing.T) {
	t.Parallel()

	service, _ := newTestService(t, nil)

	reply := service.Handle(context.Background(), Command{Kind: CommandStopPractice, UserID: testUser})
	require.Len(t, reply.Messages, 1)
	assert.Equal(t, MessageStopped, reply.Messages[0].Kind)
}

func TestActionsWithoutSessionNudge(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cmd  Command
	}{
		{name: "toggle", cmd: Command{Kind: CommandToggleGroup, Group: domain.GroupPast}},
		{name: "reset", cmd: Command{Kind: CommandResetSelection}},
		{name: "start", cmd: Command{Kind: CommandStartPractice}},
		{name: "unknown", cmd: Command{Kind: CommandUnknown}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			service, store := newTestService(t, nil)
			tc.cmd.UserID = testUser

			reply := service.Handle(context.Background(), tc.cmd)
			require.Len(t, reply.Messages, 1)
			assert.Equal(t, MessageNudge, reply.Messages[0].Kind)
			assert.Equal(t, 0, store.Len())
		})
	}
}

func TestToggleWhileActiveRerendersChallenge(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service, store := newTestService(t, nil)
	_, err := service.RequestPractice(ctx, testUser, SendNew)
	require.NoError(t, err)
	_, err = service.ToggleGroup(ctx, testUser, domain.GroupPresent, EditExisting)
	require.NoError(t, err)
	started, err := service.StartPractice(ctx, testUser, EditExisting)
	require.NoError(t, err)

	reply, err := service.ToggleGroup(ctx, testUser, domain.GroupPast, EditExisting)
	require.NoError(t, err)
	require.Len(t, reply.Messages, 1)
	assert.Equal(t, started.Messages[0].Text, reply.Messages[0].Text)

	session, err := store.Get(ctx, testUser)
	require.NoError(t, err)
	assert.Equal(t, []domain.GroupID{domain.GroupPresent}, session.SelectedGroups)
}

func TestUnknownActionRerendersSelection(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service, _ := newTestService(t, nil)
	_, err := service.RequestPractice(ctx, testUser, SendNew)
	require.NoError(t, err)
	_, err = service.ToggleGroup(ctx, testUser, domain.GroupFutureConditional, EditExisting)
	require.NoError(t, err)

	reply := service.Handle(ctx, Command{Kind: CommandUnknown, UserID: testUser, Target: EditExisting})
	require.Len(t, reply.Messages, 1)
	assert.Equal(t, MessageSelection, reply.Messages[0].Kind)
	assert.Contains(t, reply.Messages[0].Text, "Futuro y Condicional")
}

func TestUnknownActionPrefersSelectionOverOutstandingChallenge(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service, store := newTestService(t, nil)
	_, err := service.RequestPractice(ctx, testUser, SendNew)
	require.NoError(t, err)
	_, err = service.ToggleGroup(ctx, testUser, domain.GroupPresent, EditExisting)
	require.NoError(t, err)
	_, err = service.StartPractice(ctx, testUser, EditExisting)
	require.NoError(t, err)
	_, err = service.RequestPractice(ctx, testUser, SendNew)
	require.NoError(t, err)

	reply := service.Handle(ctx, Command{Kind: CommandUnknown, UserID: testUser, Target: EditExisting})
	require.Len(t, reply.Messages, 1)
	assert.Equal(t, MessageSelection, reply.Messages[0].Kind)
	assert.NotEmpty(t, reply.Messages[0].Actions)

	_, err = store.GetChallenge(ctx, testUser)
	assert.NoError(t, err, "challenge is still answerable")
}

func TestSubmitAnswerReplacesChallengeInOneWrite(t *testing.T) {
	store := mocks.NewMockSessionStore(t)
	clock := fixedClock{now: testNow}
	service := NewPracticeService(testCorpus(t), store, NewChallengeSelector(&seqRandom{}, clock), clock, discardLogger())

	current := domain.Challenge{Verb: "hablar", Tense: "presente", Person: domain.PersonTu, Answer: "hablas"}
	session := domain.PracticeSession{UserID: testUser, SelectedGroups: []domain.GroupID{domain.GroupPresent}, Active: true}

	store.EXPECT().GetChallenge(mockAnyContext(), testUser).Return(current, nil).Once()
	store.EXPECT().Get(mockAnyContext(), testUser).Return(session, nil).Once()
	store.EXPECT().PutChallenge(mockAnyContext(), testUser, mock.Anything).Return(errors.New("disk full")).Once()

	reply := service.Handle(context.Background(), Command{Kind: CommandAnswer, UserID: testUser, Text: "hablas"})
	require.Len(t, reply.Messages, 1)
	assert.Equal(t, MessageFailure, reply.Messages[0].Kind)
	store.AssertNotCalled(t, "ClearChallenge", mock.Anything, mock.Anything)
}

func TestOutstandingChallengeSurvivesPracticeRequest(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service, store := newTestService(t, nil)
	_, err := service.RequestPractice(ctx, testUser, SendNew)
	require.NoError(t, err)
	_, err = service.ToggleGroup(ctx, testUser, domain.GroupPresent, EditExisting)
	require.NoError(t, err)
	started, err := service.StartPractice(ctx, testUser, EditExisting)
	require.NoError(t, err)

	_, err = service.RequestPractice(ctx, testUser, SendNew)
	require.NoError(t, err)

	reply, err := service.SubmitAnswer(ctx, testUser, started.Messages[0].Challenge.Answer, SendNew)
	require.NoError(t, err)
	require.Len(t, reply.Messages, 1)
	assert.True(t, reply.Messages[0].Grade.Correct)
	assert.False(t, reply.Messages[0].Grade.Continues)

	session, err := store.Get(ctx, testUser)
	require.NoError(t, err)
	assert.False(t, session.Active)
}

func TestQuiz(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service, store := newTestService(t, &seqRandom{values: []int{3, 2}})

	reply, err := service.Quiz(ctx, testUser, " Hablar ", SendNew)
	require.NoError(t, err)
	require.Len(t, reply.Messages, 1)
	require.NotNil(t, reply.Messages[0].Challenge)
	assert.Equal(t, domain.VerbID("hablar"), reply.Messages[0].Challenge.Verb)
	assert.Equal(t, domain.TenseID("preterito_indefinido"), reply.Messages[0].Challenge.Tense)
	assert.Equal(t, "habló", reply.Messages[0].Challenge.Answer)
	assert.Equal(t, 0, store.Len())

	graded, err := service.SubmitAnswer(ctx, testUser, "hablaba", SendNew)
	require.NoError(t, err)
	require.Len(t, graded.Messages, 1)
	assert.False(t, graded.Messages[0].Grade.Correct)
}

func TestQuizUnknownVerb(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service, store := newTestService(t, nil)

	reply := service.Handle(ctx, Command{Kind: CommandQuiz, UserID: testUser, Verb: "bailar"})
	require.Len(t, reply.Messages, 1)
	assert.Equal(t, MessageUnknownVerb, reply.Messages[0].Kind)
	assert.Contains(t, reply.Messages[0].Text, "bailar")

	_, err := store.GetChallenge(ctx, testUser)
	assert.ErrorIs(t, err, domain.ErrNoChallenge)
}

func TestHandleConvertsStoreFailureIntoGenericReply(t *testing.T) {
	store := mocks.NewMockSessionStore(t)
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	service := NewPracticeService(testCorpus(t), store, NewChallengeSelector(&seqRandom{}, fixedClock{now: testNow}), fixedClock{now: testNow}, logger)

	store.EXPECT().Reset(mockAnyContext(), testUser).Return(domain.PracticeSession{}, errors.New("boom")).Once()

	reply := service.Handle(context.Background(), Command{Kind: CommandPractice, UserID: testUser, Target: SendNew})
	require.Len(t, reply.Messages, 1)
	assert.Equal(t, MessageFailure, reply.Messages[0].Kind)
	assert.Equal(t, "¡Ups! Algo salió mal. Intenta de nuevo con /practice", reply.Messages[0].Text)
	assert.Contains(t, logs.String(), "command failed")
	assert.Contains(t, logs.String(), "user_id=42")
	assert.Contains(t, logs.String(), "boom")
}

func TestHandleLogsNotFoundAsInvariantViolation(t *testing.T) {
	store := mocks.NewMockSessionStore(t)
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	service := NewPracticeService(testCorpus(t), store, NewChallengeSelector(&seqRandom{}, fixedClock{now: testNow}), fixedClock{now: testNow}, logger)

	store.EXPECT().GetChallenge(mockAnyContext(), testUser).Return(domain.Challenge{}, domain.ErrNoChallenge).Once()
	store.EXPECT().Get(mockAnyContext(), testUser).Return(domain.PracticeSession{}, domain.ErrSessionNotFound).Once()

	reply := service.Handle(context.Background(), Command{Kind: CommandUnknown, UserID: testUser})
	assert.Equal(t, MessageNudge, reply.Messages[0].Kind)

	store.EXPECT().GetChallenge(mockAnyContext(), testUser).Return(domain.Challenge{}, domain.ErrNotFound).Once()
	store.EXPECT().Get(mockAnyContext(), testUser).Return(domain.PracticeSession{}, domain.ErrSessionNotFound).Once()

	reply = service.Handle(context.Background(), Command{Kind: CommandUnknown, UserID: testUser})
	assert.Equal(t, MessageFailure, reply.Messages[0].Kind)
	assert.Contains(t, logs.String(), "conjugation lookup failed")
}

func TestConcurrentUsersKeepSeparateSessions(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	clock := fixedClock{now: testNow}
	store := memory.NewStore(clock)
	service := NewPracticeService(testCorpus(t), store, NewChallengeSelector(nil, clock), clock, discardLogger())

	var wg sync.WaitGroup
	for i := 1; i <= 16; i++ {
		wg.Add(1)
		go func(user domain.UserID) {
			defer wg.Done()
			service.Handle(ctx, Command{Kind: CommandPractice, UserID: user})
			service.Handle(ctx, Command{Kind: CommandToggleGroup, UserID: user, Group: domain.GroupPast})
			service.Handle(ctx, Command{Kind: CommandStartPractice, UserID: user})
			for j := 0; j < 5; j++ {
				reply := service.Handle(ctx, Command{Kind: CommandAnswer, UserID: user, Text: "x"})
				assert.Len(t, reply.Messages, 2)
			}
		}(domain.UserID(i))
	}
	wg.Wait()

	assert.Equal(t, 16, store.Len())
	for i := 1; i <= 16; i++ {
		session, err := store.Get(ctx, domain.UserID(i))
		require.NoError(t, err)
		assert.True(t, session.Active)
		assert.Equal(t, []domain.GroupID{domain.GroupPast}, session.SelectedGroups)
	}
}
