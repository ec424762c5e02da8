package application

import (
	"fmt"

	"github.com/bnema/verbtrainer/internal/domain"
	"github.com/bnema/verbtrainer/internal/ports"
)

// ChallengeSelector draws verb, tense and person independently and uniformly.
// It keeps no state between calls beyond its Random source.
type ChallengeSelector struct {
	random ports.Random
	clock  ports.Clock
}

func NewChallengeSelector(random ports.Random, clock ports.Clock) *ChallengeSelector {
	if random == nil {
		random = ports.SystemRandom{}
	}
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &ChallengeSelector{random: random, clock: clock}
}

// SelectChallenge picks a challenge over the tenses of the given groups. When
// the groups resolve to no tense at all, every catalog tense is eligible.
func (s *ChallengeSelector) SelectChallenge(corpus *domain.Corpus, groupIDs []domain.GroupID) (domain.Challenge, error) {
	verbs := corpus.AllVerbIDs()
	if len(verbs) == 0 {
		return domain.Challenge{}, fmt.Errorf("select verb: %w: corpus is empty", domain.ErrNotFound)
	}

	verb := verbs[s.random.IntN(len(verbs))]

	return s.build(corpus, verb, groupIDs)
}

// SelectForVerb is SelectChallenge with the verb fixed.
func (s *ChallengeSelector) SelectForVerb(corpus *domain.Corpus, verb domain.VerbID, groupIDs []domain.GroupID) (domain.Challenge, error) {
	if _, ok := corpus.Verb(verb); !ok {
		return domain.Challenge{}, fmt.Errorf("select verb: %w: verb %q", domain.ErrNotFound, verb)
	}

	return s.build(corpus, verb, groupIDs)
}

func (s *ChallengeSelector) build(corpus *domain.Corpus, verb domain.VerbID, groupIDs []domain.GroupID) (domain.Challenge, error) {
	catalog := corpus.Catalog()

	tenses := catalog.ResolveTenses(groupIDs)
	if len(tenses) == 0 {
		tenses = catalog.TenseIDs()
	}

	tenseID := tenses[s.random.IntN(len(tenses))]
	person := domain.Person(s.random.IntN(domain.PersonCount))

	tense, ok := catalog.Tense(tenseID)
	if !ok {
		return domain.Challenge{}, fmt.Errorf("select tense: %w: tense %q", domain.ErrNotFound, tenseID)
	}

	answer, err := corpus.Conjugation(verb, tenseID, person)
	if err != nil {
		return domain.Challenge{}, fmt.Errorf("look up conjugation: %w", err)
	}

	var groups []domain.GroupID
	if len(groupIDs) > 0 {
		groups = append(groups, groupIDs...)
	}

	return domain.Challenge{
		Verb:        verb,
		Tense:       tenseID,
		Person:      person,
		Answer:      answer,
		TenseName:   tense.Name,
		PersonName:  person.Name(),
		Translation: corpus.Translation(verb),
		Groups:      groups,
		IssuedAt:    s.clock.Now(),
	}, nil
}
