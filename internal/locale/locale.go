// Package locale builds message printers for the narrative text.
//
// Narrative strings are written in English in the code and double as message
// keys. Other languages are YAML files mapping those keys to translations.
package locale

import (
	"embed"
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v3"
)

//go:embed *.yaml
var translationsFS embed.FS

// translationFile represents the structure of a translation YAML file.
type translationFile struct {
	Messages map[string]string `yaml:"messages"`
}

// Supported lists the languages a printer can be built for.
var Supported = []language.Tag{language.English, language.Polish}

var files = map[language.Tag]string{
	language.Polish: "pl.yaml",
}

// NewCatalog builds a catalog holding every embedded translation. English
// has no entries: keys are printed as they are.
func NewCatalog() (*catalog.Builder, error) {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for tag, name := range files {
		content, err := translationsFS.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("failed to read embedded file %s: %w", name, err)
		}
		var file translationFile
		if err := yaml.Unmarshal(content, &file); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", name, err)
		}
		for key, msg := range file.Messages {
			if err := b.SetString(tag, key, msg); err != nil {
				return nil, fmt.Errorf("%s: set %q: %w", name, key, err)
			}
		}
	}
	return b, nil
}

// NewPrinter returns a printer for lang, e.g. "en" or "pl".
func NewPrinter(lang string) (*message.Printer, error) {
	tag, err := language.Parse(lang)
	if err != nil {
		return nil, fmt.Errorf("parse language %q: %w", lang, err)
	}
	_, index, confidence := language.NewMatcher(Supported).Match(tag)
	if confidence == language.No {
		return nil, fmt.Errorf("unsupported language %q", lang)
	}

	b, err := NewCatalog()
	if err != nil {
		return nil, err
	}
	return message.NewPrinter(Supported[index], message.Catalog(b)), nil
}

// English returns the English printer. It never fails.
func English() *message.Printer {
	return message.NewPrinter(language.English, message.Catalog(catalog.NewBuilder()))
}
