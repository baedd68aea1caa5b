// Package plugin wires the selection cleaner into a host editor.
//
// The host supplies an Editor (selection access), a Notifier (transient
// messages) and a SettingsStore. The plugin owns the settings record and
// hands a copy of it to every clean, so there is no shared global state.
package plugin

import (
	"errors"
	"fmt"
	"sync"

	"github.com/jmylchreest/cleanup/internal/logger"
	"github.com/jmylchreest/cleanup/pkg/cleaner"
	"github.com/jmylchreest/cleanup/pkg/settings"
)

// ErrUnknownCommand is returned by Run when no command has the given ID.
var ErrUnknownCommand = errors.New("unknown command")

// Editor is the text editing surface provided by the host.
type Editor interface {
	// Selection returns the currently selected text. It may be empty.
	Selection() string

	// ReplaceSelection replaces the selected text.
	ReplaceSelection(text string)
}

// Notifier shows transient messages to the user.
type Notifier interface {
	Notify(message string)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(message string)

// Notify calls f(message).
func (f NotifierFunc) Notify(message string) {
	f(message)
}

// SettingsStore loads and persists the settings record.
type SettingsStore interface {
	Load() (settings.Settings, error)
	Save(settings.Settings) error
}

// Plugin is the clean-up extension.
type Plugin struct {
	store     SettingsStore
	selection *cleaner.Selection

	mu       sync.RWMutex
	settings settings.Settings
	commands []Command
}

// Option configures a Plugin.
type Option func(*Plugin)

// WithSelection replaces the selection cleaner.
func WithSelection(s *cleaner.Selection) Option {
	return func(p *Plugin) {
		p.selection = s
	}
}

// New creates a plugin. Settings start at their defaults until Load is called.
func New(store SettingsStore, opts ...Option) *Plugin {
	p := &Plugin{
		store:     store,
		selection: cleaner.NewSelection(),
		settings:  settings.Defaults(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.registerCommands()
	return p
}

// Load reads the settings record once. On failure the defaults are kept
// and the error is returned for the host to report if it wishes.
func (p *Plugin) Load() error {
	loaded, err := p.store.Load()
	if err != nil {
		logger.Warn("failed to load settings, using defaults", "error", err)
		loaded = settings.Defaults()
	}

	p.mu.Lock()
	p.settings = loaded
	p.mu.Unlock()

	logger.Debug("settings loaded", "clean_html", loaded.CleanHTML, "clean_markdown", loaded.CleanMarkdown)
	return err
}

// Settings returns a copy of the current settings.
func (p *Plugin) Settings() settings.Settings {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.settings
}

// CleanSelection cleans the editor's selection using the current settings,
// writes the result back and shows "<N> rows cleaned", where N is the line
// count of the original selection. The notice is shown on every call, even
// when nothing changed.
func (p *Plugin) CleanSelection(editor Editor, notifier Notifier) *cleaner.Result {
	return p.CleanSelectionWith(editor, notifier, p.Settings())
}

// CleanSelectionWith is CleanSelection with explicit settings. The stored
// settings are not consulted or changed.
func (p *Plugin) CleanSelectionWith(editor Editor, notifier Notifier, s settings.Settings) *cleaner.Result {
	result := p.selection.CleanWithStats(editor.Selection(), s.Options())

	editor.ReplaceSelection(result.Content)
	if notifier != nil {
		notifier.Notify(result.Notice())
	}

	return result
}

// Toggle sets a field, then persists the whole record immediately.
// A persistence failure is logged and not returned; the in-memory value
// keeps the new state.
func (p *Plugin) Toggle(field settings.Field, value bool) error {
	p.mu.Lock()
	if err := p.settings.Set(field, value); err != nil {
		p.mu.Unlock()
		return err
	}
	snapshot := p.settings
	p.mu.Unlock()

	if err := p.store.Save(snapshot); err != nil {
		logger.Warn("failed to save settings", "field", field, "error", err)
	}
	return nil
}

// Reset restores the defaults and persists them.
func (p *Plugin) Reset() error {
	p.mu.Lock()
	p.settings = settings.Defaults()
	p.mu.Unlock()

	if err := p.store.Save(settings.Defaults()); err != nil {
		return fmt.Errorf("saving default settings: %w", err)
	}
	return nil
}
