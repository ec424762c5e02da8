package file

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bnema/verbtrainer/internal/domain"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// verbsSchema is verb -> tense -> six forms ordered yo..ellos/ellas.
type verbsSchema map[string]map[string][]string

type translationsSchema map[string]string

func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported corpus file extension %q", filepath.Ext(path))
	}
}

func ParseFormat(value string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(value))) {
	case FormatJSON:
		return FormatJSON, nil
	case FormatTOML:
		return FormatTOML, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported corpus format %q", value)
	}
}

func decode(format Format, data []byte, out any) error {
	switch format {
	case FormatJSON:
		return json.Unmarshal(data, out)
	case FormatTOML:
		return toml.Unmarshal(data, out)
	case FormatYAML:
		return yaml.Unmarshal(data, out)
	default:
		return fmt.Errorf("unsupported corpus format %q", format)
	}
}

func encode(format Format, in any) ([]byte, error) {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(in, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	case FormatTOML:
		return toml.Marshal(in)
	case FormatYAML:
		return yaml.Marshal(in)
	default:
		return nil, fmt.Errorf("unsupported corpus format %q", format)
	}
}

func (s verbsSchema) toDomain() map[domain.VerbID]map[domain.TenseID][]string {
	result := make(map[domain.VerbID]map[domain.TenseID][]string, len(s))
	for verb, tenses := range s {
		converted := make(map[domain.TenseID][]string, len(tenses))
		for tense, forms := range tenses {
			converted[domain.TenseID(tense)] = append([]string(nil), forms...)
		}
		result[domain.VerbID(strings.TrimSpace(verb))] = converted
	}
	return result
}

func (s translationsSchema) toDomain() map[domain.VerbID]string {
	result := make(map[domain.VerbID]string, len(s))
	for verb, translation := range s {
		result[domain.VerbID(strings.TrimSpace(verb))] = translation
	}
	return result
}

func verbsFromDomain(conjugations map[domain.VerbID]map[domain.TenseID][]string) verbsSchema {
	result := make(verbsSchema, len(conjugations))
	for verb, tenses := range conjugations {
		converted := make(map[string][]string, len(tenses))
		for tense, forms := range tenses {
			converted[string(tense)] = append([]string(nil), forms...)
		}
		result[string(verb)] = converted
	}
	return result
}

func translationsFromDomain(translations map[domain.VerbID]string) translationsSchema {
	result := make(translationsSchema, len(translations))
	for verb, translation := range translations {
		result[string(verb)] = translation
	}
	return result
}
