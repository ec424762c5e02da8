package application

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/bnema/verbtrainer/internal/domain"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 2, 14, 12, 0, 0, 0, time.UTC)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

// seqRandom replays values in order, reduced modulo n.
type seqRandom struct {
	values []int
	next   int
}

func (r *seqRandom) IntN(n int) int {
	if len(r.values) == 0 {
		return 0
	}
	v := r.values[r.next%len(r.values)]
	r.next++
	return v % n
}

func mockAnyContext() interface{} {
	return mock.Anything
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testCorpus(t *testing.T) *domain.Corpus {
	t.Helper()

	corpus, err := domain.LoadCorpus(domain.DefaultCatalog(), map[domain.VerbID]map[domain.TenseID][]string{
		"hablar": {
			"presente":             {"hablo", "hablas", "habla", "hablamos", "habláis", "hablan"},
			"preterito_perfecto":   {"he hablado", "has hablado", "ha hablado", "hemos hablado", "habéis hablado", "han hablado"},
			"preterito_imperfecto": {"hablaba", "hablabas", "hablaba", "hablábamos", "hablabais", "hablaban"},
			"preterito_indefinido": {"hablé", "hablaste", "habló", "hablamos", "hablasteis", "hablaron"},
			"condicional":          {"hablaría", "hablarías", "hablaría", "hablaríamos", "hablaríais", "hablarían"},
			"futuro":               {"hablaré", "hablarás", "hablará", "hablaremos", "hablaréis", "hablarán"},
		},
		"comer": {
			"presente":             {"como", "comes", "come", "comemos", "coméis", "comen"},
			"preterito_perfecto":   {"he comido", "has comido", "ha comido", "hemos comido", "habéis comido", "han comido"},
			"preterito_imperfecto": {"comía", "comías", "comía", "comíamos", "comíais", "comían"},
			"preterito_indefinido": {"comí", "comiste", "comió", "comimos", "comisteis", "comieron"},
			"condicional":          {"comería", "comerías", "comería", "comeríamos", "comeríais", "comerían"},
			"futuro":               {"comeré", "comerás", "comerá", "comeremos", "comeréis", "comerán"},
		},
	}, map[domain.VerbID]string{
		"hablar": "говорить",
		"comer":  "есть",
	})
	require.NoError(t, err)

	return corpus
}
