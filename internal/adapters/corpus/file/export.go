package file

import (
	"fmt"
	"io"

	"github.com/bnema/verbtrainer/internal/domain"
)

// Export writes the conjugations or the translations of data to w in format.
func Export(w io.Writer, data domain.CorpusData, format Format, translations bool) error {
	var payload any = verbsFromDomain(data.Conjugations)
	if translations {
		payload = translationsFromDomain(data.Translations)
	}

	encoded, err := encode(format, payload)
	if err != nil {
		return fmt.Errorf("encode corpus as %s: %w", format, err)
	}

	_, err = w.Write(encoded)
	return err
}

// ExportCorpus is Export for an already validated corpus.
func ExportCorpus(w io.Writer, corpus *domain.Corpus, format Format, translations bool) error {
	data := domain.CorpusData{
		Conjugations: make(map[domain.VerbID]map[domain.TenseID][]string, corpus.Len()),
		Translations: make(map[domain.VerbID]string, corpus.Len()),
	}
	for _, id := range corpus.AllVerbIDs() {
		verb, _ := corpus.Verb(id)
		data.Conjugations[id] = verb.Conjugations
		if verb.Translation != "" {
			data.Translations[id] = verb.Translation
		}
	}

	return Export(w, data, format, translations)
}
