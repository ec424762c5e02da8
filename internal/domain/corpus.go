package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

type VerbID string

type Verb struct {
	ID           VerbID
	Translation  string
	Conjugations map[TenseID][]string
}

// CorpusData is the raw shape of a corpus before validation: verb -> tense -> six
// forms, plus verb -> translation.
type CorpusData struct {
	Conjugations map[VerbID]map[TenseID][]string
	Translations map[VerbID]string
}

// Corpus is read-only after LoadCorpus returns and safe for concurrent use.
type Corpus struct {
	catalog Catalog
	verbs   map[VerbID]Verb
	ids     []VerbID
}

func LoadCorpus(catalog Catalog, conjugations map[VerbID]map[TenseID][]string, translations map[VerbID]string) (*Corpus, error) {
	if err := catalog.Validate(); err != nil {
		return nil, err
	}
	if len(conjugations) == 0 {
		return nil, fmt.Errorf("%w: corpus has no verbs", ErrInvalidData)
	}

	var problems []error
	verbs := make(map[VerbID]Verb, len(conjugations))
	ids := make([]VerbID, 0, len(conjugations))

	for id, tenses := range conjugations {
		if strings.TrimSpace(string(id)) == "" {
			problems = append(problems, errors.New("verb id is required"))
			continue
		}

		forms := make(map[TenseID][]string, len(catalog.Tenses))
		for _, tense := range catalog.Tenses {
			list, ok := tenses[tense.ID]
			if !ok {
				problems = append(problems, fmt.Errorf("verb %q: missing tense %q", id, tense.ID))
				continue
			}
			if len(list) != PersonCount {
				problems = append(problems, fmt.Errorf("verb %q tense %q: expected %d forms, got %d", id, tense.ID, PersonCount, len(list)))
				continue
			}
			for i, form := range list {
				if strings.TrimSpace(form) == "" {
					problems = append(problems, fmt.Errorf("verb %q tense %q: empty form for %s", id, tense.ID, Person(i).Name()))
				}
			}
			forms[tense.ID] = append([]string(nil), list...)
		}

		verbs[id] = Verb{ID: id, Translation: strings.TrimSpace(translations[id]), Conjugations: forms}
		ids = append(ids, id)
	}

	if len(problems) > 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidData, errors.Join(problems...))
	}

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return &Corpus{catalog: catalog, verbs: verbs, ids: ids}, nil
}

func (c *Corpus) Catalog() Catalog {
	return c.catalog
}

func (c *Corpus) Len() int {
	return len(c.ids)
}

// AllVerbIDs returns a sorted copy of the verb ids.
func (c *Corpus) AllVerbIDs() []VerbID {
	return append([]VerbID(nil), c.ids...)
}

func (c *Corpus) Verb(id VerbID) (Verb, bool) {
	verb, ok := c.verbs[id]
	return verb, ok
}

func (c *Corpus) Conjugation(verb VerbID, tense TenseID, person Person) (string, error) {
	v, ok := c.verbs[verb]
	if !ok {
		return "", fmt.Errorf("%w: verb %q", ErrNotFound, verb)
	}
	forms, ok := v.Conjugations[tense]
	if !ok {
		return "", fmt.Errorf("%w: verb %q tense %q", ErrNotFound, verb, tense)
	}
	if !person.Valid() {
		return "", fmt.Errorf("%w: verb %q tense %q person %d", ErrNotFound, verb, tense, int(person))
	}
	return forms[person], nil
}

// Translation falls back to the infinitive when no translation is known.
func (c *Corpus) Translation(verb VerbID) string {
	if v, ok := c.verbs[verb]; ok && v.Translation != "" {
		return v.Translation
	}
	return string(verb)
}
