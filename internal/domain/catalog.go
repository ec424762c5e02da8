package domain

import (
	"errors"
	"fmt"
	"strings"
)

type GroupID string

const (
	GroupPresent           GroupID = "present"
	GroupPast              GroupID = "past"
	GroupFutureConditional GroupID = "future_conditional"
	GroupAll               GroupID = "all"
)

type TenseGroup struct {
	ID         GroupID
	Name       string
	NativeName string
	Tenses     []TenseID
	// Hidden groups resolve like any other but are not offered for selection.
	Hidden bool
}

// Catalog is the static set of tenses and the tense groups built from them.
type Catalog struct {
	Tenses []Tense
	Groups []TenseGroup
}

func DefaultCatalog() Catalog {
	return Catalog{
		Tenses: []Tense{
			{ID: "presente", Name: "Presente", NativeName: "Настоящее время"},
			{ID: "preterito_perfecto", Name: "Pretérito Perfecto", NativeName: "Прошедшее совершенное"},
			{ID: "preterito_imperfecto", Name: "Pretérito Imperfecto", NativeName: "Прошедшее несовершенное"},
			{ID: "preterito_indefinido", Name: "Pretérito Indefinido", NativeName: "Простое прошедшее"},
			{ID: "condicional", Name: "Condicional", NativeName: "Условное наклонение"},
			{ID: "futuro", Name: "Futuro", NativeName: "Будущее время"},
		},
		Groups: []TenseGroup{
			{
				ID:         GroupPresent,
				Name:       "Presente",
				NativeName: "Настоящее время",
				Tenses:     []TenseID{"presente"},
			},
			{
				ID:         GroupPast,
				Name:       "Tiempos Pasados",
				NativeName: "Прошедшие времена",
				Tenses:     []TenseID{"preterito_perfecto", "preterito_imperfecto", "preterito_indefinido"},
			},
			{
				ID:         GroupFutureConditional,
				Name:       "Futuro y Condicional",
				NativeName: "Будущее и условное",
				Tenses:     []TenseID{"futuro", "condicional"},
			},
			{
				ID:         GroupAll,
				Name:       "Todos los tiempos",
				NativeName: "Все времена",
				Tenses:     []TenseID{"presente", "preterito_perfecto", "preterito_imperfecto", "preterito_indefinido", "condicional", "futuro"},
				Hidden:     true,
			},
		},
	}
}

func (c Catalog) Validate() error {
	var problems []error

	if len(c.Tenses) == 0 {
		problems = append(problems, errors.New("catalog has no tenses"))
	}

	tenses := make(map[TenseID]struct{}, len(c.Tenses))
	for _, tense := range c.Tenses {
		if strings.TrimSpace(string(tense.ID)) == "" {
			problems = append(problems, errors.New("tense id is required"))
			continue
		}
		if _, ok := tenses[tense.ID]; ok {
			problems = append(problems, fmt.Errorf("duplicate tense %q", tense.ID))
			continue
		}
		tenses[tense.ID] = struct{}{}
	}

	groups := make(map[GroupID]struct{}, len(c.Groups))
	for _, group := range c.Groups {
		if strings.TrimSpace(string(group.ID)) == "" {
			problems = append(problems, errors.New("group id is required"))
			continue
		}
		if _, ok := groups[group.ID]; ok {
			problems = append(problems, fmt.Errorf("duplicate group %q", group.ID))
			continue
		}
		groups[group.ID] = struct{}{}

		if len(group.Tenses) == 0 {
			problems = append(problems, fmt.Errorf("group %q has no tenses", group.ID))
		}
		for _, tense := range group.Tenses {
			if _, ok := tenses[tense]; !ok {
				problems = append(problems, fmt.Errorf("group %q references unknown tense %q", group.ID, tense))
			}
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidData, errors.Join(problems...))
	}

	return nil
}

func (c Catalog) Tense(id TenseID) (Tense, bool) {
	for _, tense := range c.Tenses {
		if tense.ID == id {
			return tense, true
		}
	}
	return Tense{}, false
}

func (c Catalog) Group(id GroupID) (TenseGroup, bool) {
	for _, group := range c.Groups {
		if group.ID == id {
			return group, true
		}
	}
	return TenseGroup{}, false
}

func (c Catalog) TenseIDs() []TenseID {
	ids := make([]TenseID, 0, len(c.Tenses))
	for _, tense := range c.Tenses {
		ids = append(ids, tense.ID)
	}
	return ids
}

// VisibleGroups returns the groups offered in the selection prompt, in catalog order.
func (c Catalog) VisibleGroups() []TenseGroup {
	groups := make([]TenseGroup, 0, len(c.Groups))
	for _, group := range c.Groups {
		if group.Hidden {
			continue
		}
		groups = append(groups, group)
	}
	return groups
}

// ResolveTenses returns the union of the member tenses of the given groups in
// catalog order. Unknown group ids contribute nothing.
func (c Catalog) ResolveTenses(groupIDs []GroupID) []TenseID {
	wanted := make(map[TenseID]struct{})
	for _, id := range groupIDs {
		group, ok := c.Group(id)
		if !ok {
			continue
		}
		for _, tense := range group.Tenses {
			wanted[tense] = struct{}{}
		}
	}

	resolved := make([]TenseID, 0, len(wanted))
	for _, tense := range c.Tenses {
		if _, ok := wanted[tense.ID]; ok {
			resolved = append(resolved, tense.ID)
		}
	}
	return resolved
}
