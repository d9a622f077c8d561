// Package messages holds the console's message catalog.
package messages

import (
	"embed"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var locales embed.FS

// Message ids. Each must exist in locales/active.en.toml.
const (
	DoorsRefused   = "DoorsRefused"
	DoorsOpening   = "DoorsOpening"
	PodBayTitle    = "PodBayTitle"
	PodBayPrompt   = "PodBayPrompt"
	CrewTitle      = "CrewTitle"
	LogTitle       = "LogTitle"
	LogEmpty       = "LogEmpty"
	UnknownCommand = "UnknownCommand"
)

// Catalog localizes message ids for one locale, falling back to English.
type Catalog struct {
	localizer *i18n.Localizer
}

// NewBundle loads every embedded locale file.
func NewBundle() (*i18n.Bundle, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	entries, err := locales.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("read locales: %w", err)
	}
	for _, e := range entries {
		if _, err := bundle.LoadMessageFileFS(locales, "locales/"+e.Name()); err != nil {
			return nil, fmt.Errorf("load %s: %w", e.Name(), err)
		}
	}
	return bundle, nil
}

func New(bundle *i18n.Bundle, locale string) *Catalog {
	return &Catalog{localizer: i18n.NewLocalizer(bundle, locale, language.English.String())}
}

// Text localizes id with optional template data. An unknown id yields the id
// itself so a missing translation is visible rather than blank.
func (c *Catalog) Text(id string, data map[string]any) string {
	s, err := c.localizer.Localize(&i18n.LocalizeConfig{MessageID: id, TemplateData: data})
	if err != nil || s == "" {
		return id
	}
	return s
}
