package domain

import "time"

// Challenge is one question: conjugate Verb in Tense for Person. Answer is the
// expected form.
type Challenge struct {
	Verb        VerbID
	Tense       TenseID
	Person      Person
	Answer      string
	TenseName   string
	PersonName  string
	Translation string
	Groups      []GroupID
	IssuedAt    time.Time
}

func (c Challenge) Clone() Challenge {
	c.Groups = append([]GroupID(nil), c.Groups...)
	return c
}
