package file

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bnema/verbtrainer/internal/domain"
	"github.com/bnema/verbtrainer/internal/ports"
)

const (
	defaultVerbsPath        = "data/verbs.json"
	defaultTranslationsPath = "data/translations.json"
)

//go:embed data/verbs.json data/translations.json
var defaultCorpus embed.FS

// Source reads a verbs file and an optional translations file. The format of
// each file follows its extension.
type Source struct {
	fsys             fs.FS
	verbsPath        string
	translationsPath string
}

var _ ports.CorpusSource = (*Source)(nil)

// Default returns the corpus bundled with the binary.
func Default() *Source {
	return &Source{fsys: defaultCorpus, verbsPath: defaultVerbsPath, translationsPath: defaultTranslationsPath}
}

// NewSource reads from the local filesystem. An empty translationsPath means
// every verb is shown untranslated.
func NewSource(verbsPath, translationsPath string) (*Source, error) {
	if verbsPath == "" {
		return nil, errors.New("verbs path is empty")
	}

	verbsPath, err := normalizePath(verbsPath)
	if err != nil {
		return nil, err
	}
	if translationsPath != "" {
		translationsPath, err = normalizePath(translationsPath)
		if err != nil {
			return nil, err
		}
	}

	return &Source{verbsPath: verbsPath, translationsPath: translationsPath}, nil
}

// NewFSSource reads both files from fsys.
func NewFSSource(fsys fs.FS, verbsPath, translationsPath string) *Source {
	return &Source{fsys: fsys, verbsPath: verbsPath, translationsPath: translationsPath}
}

func (s *Source) Load(ctx context.Context) (domain.CorpusData, error) {
	if err := ctx.Err(); err != nil {
		return domain.CorpusData{}, err
	}

	var verbs verbsSchema
	if err := s.readInto(s.verbsPath, &verbs); err != nil {
		return domain.CorpusData{}, fmt.Errorf("read verbs file: %w", err)
	}

	translations := translationsSchema{}
	if s.translationsPath != "" {
		if err := s.readInto(s.translationsPath, &translations); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return domain.CorpusData{}, fmt.Errorf("read translations file: %w", err)
			}
		}
	}

	if err := ctx.Err(); err != nil {
		return domain.CorpusData{}, err
	}

	return domain.CorpusData{
		Conjugations: verbs.toDomain(),
		Translations: translations.toDomain(),
	}, nil
}

func (s *Source) readInto(path string, out any) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	data, err := s.readFile(path)
	if err != nil {
		return err
	}

	if err := decode(format, data, out); err != nil {
		return fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}

	return nil
}

func (s *Source) readFile(path string) ([]byte, error) {
	if s.fsys != nil {
		return fs.ReadFile(s.fsys, path)
	}
	return os.ReadFile(path)
}

// LoadCorpus reads source and validates the result against catalog.
func LoadCorpus(ctx context.Context, source ports.CorpusSource, catalog domain.Catalog) (*domain.Corpus, error) {
	data, err := source.Load(ctx)
	if err != nil {
		return nil, err
	}

	corpus, err := domain.LoadCorpus(catalog, data.Conjugations, data.Translations)
	if err != nil {
		return nil, fmt.Errorf("validate corpus: %w", err)
	}

	return corpus, nil
}

func normalizePath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve corpus path: %w", err)
	}

	return filepath.Clean(absPath), nil
}
