package outcome

import (
	_ "embed"
	"errors"
	"fmt"
	"slices"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed messages.yaml
var messagesYAML []byte

type catalog struct {
	tags    []language.Tag // tags[0] is the fallback
	tables  []map[Outcome]string
	matcher language.Matcher
}

var messages = mustLoadCatalog(messagesYAML)

func mustLoadCatalog(data []byte) *catalog {
	c, err := loadCatalog(data)
	if err != nil {
		panic(err)
	}
	return c
}

func loadCatalog(data []byte) (*catalog, error) {
	var raw struct {
		Fallback string                       `yaml:"fallback"`
		Messages map[string]map[string]string `yaml:"messages"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Join(ErrInvalidCatalog, err)
	}
	if _, ok := raw.Messages[raw.Fallback]; !ok {
		return nil, fmt.Errorf("%w: no messages for fallback language %q", ErrInvalidCatalog, raw.Fallback)
	}

	langs := make([]string, 0, len(raw.Messages))
	for lang := range raw.Messages {
		if lang != raw.Fallback {
			langs = append(langs, lang)
		}
	}
	slices.Sort(langs)
	langs = slices.Insert(langs, 0, raw.Fallback)

	c := &catalog{}
	for _, lang := range langs {
		tag, err := language.Parse(lang)
		if err != nil {
			return nil, errors.Join(ErrInvalidCatalog, err)
		}
		table := make(map[Outcome]string, len(raw.Messages[lang]))
		for name, text := range raw.Messages[lang] {
			o, err := Parse(name)
			if err != nil {
				return nil, fmt.Errorf("%w: language %q: %w", ErrInvalidCatalog, lang, err)
			}
			table[o] = text
		}
		if _, ok := table[GeneralFailure]; !ok {
			return nil, fmt.Errorf("%w: language %q has no GeneralFailure text", ErrInvalidCatalog, lang)
		}
		c.tags = append(c.tags, tag)
		c.tables = append(c.tables, table)
	}
	c.matcher = language.NewMatcher(c.tags)
	return c, nil
}

// Message returns end-user text for o in the best language matching the
// Accept-Language style preference list. Programmer errors and undefined
// values get the generic failure text so integration bugs never surface as
// actionable advice.
func Message(o Outcome, acceptLanguage string) string {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil {
		tags = nil
	}
	_, idx, _ := messages.matcher.Match(tags...)
	if idx < 0 || idx >= len(messages.tables) {
		idx = 0
	}
	table := messages.tables[idx]
	if o.IsProgrammerError() {
		return table[GeneralFailure]
	}
	if msg, ok := table[o]; ok {
		return msg
	}
	return table[GeneralFailure]
}
