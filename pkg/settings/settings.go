// Package settings holds the cleaning options record and its file-backed
// persistence.
//
// The persisted record is a JSON object with exactly two keys:
//
//	{"cleanHtml": true, "cleanMarkdown": false}
//
// Loading merges whatever keys are present over Defaults, so a missing or
// partial record still yields a complete Settings value.
package settings

import (
	"errors"
	"fmt"

	"github.com/jmylchreest/cleanup/pkg/cleaner"
)

// ErrUnknownField is returned when a field name does not match any setting.
var ErrUnknownField = errors.New("unknown setting")

// Settings configures which cleaners run on a selection.
type Settings struct {
	// CleanHTML removes HTML tags from the selection.
	CleanHTML bool `json:"cleanHtml" yaml:"cleanHtml"`

	// CleanMarkdown converts Markdown in the selection to plain text.
	CleanMarkdown bool `json:"cleanMarkdown" yaml:"cleanMarkdown"`
}

// Defaults returns the settings used when nothing has been persisted.
func Defaults() Settings {
	return Settings{
		CleanHTML:     true,
		CleanMarkdown: false,
	}
}

// Options converts the settings into cleaner options.
func (s Settings) Options() cleaner.Options {
	return cleaner.Options{
		HTML:     s.CleanHTML,
		Markdown: s.CleanMarkdown,
	}
}

// Field identifies a single setting.
type Field string

const (
	FieldCleanHTML     Field = "clean-html"
	FieldCleanMarkdown Field = "clean-markdown"
)

// FieldInfo describes a setting for display.
type FieldInfo struct {
	Field       Field  `json:"field" yaml:"field"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

var fields = []FieldInfo{
	{
		Field:       FieldCleanHTML,
		Name:        "Clean HTML",
		Description: "Will clear all HTML tags if enabled",
	},
	{
		Field:       FieldCleanMarkdown,
		Name:        "Clean Markdown",
		Description: "Will clear all Markdown formats if enabled",
	},
}

// Fields returns every setting in display order.
func Fields() []FieldInfo {
	out := make([]FieldInfo, len(fields))
	copy(out, fields)
	return out
}

// ParseField resolves a field by its identifier or its JSON key.
func ParseField(name string) (Field, error) {
	switch name {
	case string(FieldCleanHTML), "cleanHtml":
		return FieldCleanHTML, nil
	case string(FieldCleanMarkdown), "cleanMarkdown":
		return FieldCleanMarkdown, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownField, name)
	}
}

// Get returns the value of a field.
func (s Settings) Get(f Field) (bool, error) {
	switch f {
	case FieldCleanHTML:
		return s.CleanHTML, nil
	case FieldCleanMarkdown:
		return s.CleanMarkdown, nil
	default:
		return false, fmt.Errorf("%w: %s", ErrUnknownField, f)
	}
}

// Set changes the value of a field.
func (s *Settings) Set(f Field, value bool) error {
	switch f {
	case FieldCleanHTML:
		s.CleanHTML = value
	case FieldCleanMarkdown:
		s.CleanMarkdown = value
	default:
		return fmt.Errorf("%w: %s", ErrUnknownField, f)
	}
	return nil
}
