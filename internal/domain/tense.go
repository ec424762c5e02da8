package domain

type TenseID string

type Tense struct {
	ID   TenseID
	Name string
	// NativeName is the tense name in the learner's own language.
	NativeName string
}

// PersonCount is the number of forms every tense carries, one per Person.
const PersonCount = 6

type Person int

const (
	PersonYo Person = iota
	PersonTu
	PersonEl
	PersonNosotros
	PersonVosotros
	PersonEllos
)

var personNames = [PersonCount]string{"yo", "tú", "él/ella", "nosotros", "vosotros", "ellos/ellas"}

var personNativeNames = [PersonCount]string{"я", "ты", "он/она", "мы", "вы", "они"}

func (p Person) Valid() bool {
	return p >= 0 && p < PersonCount
}

func (p Person) Name() string {
	if !p.Valid() {
		return ""
	}
	return personNames[p]
}

func (p Person) NativeName() string {
	if !p.Valid() {
		return ""
	}
	return personNativeNames[p]
}
