package plugin

import (
	"fmt"

	"github.com/jmylchreest/cleanup/pkg/cleaner"
)

// Surface is where a command is reachable from.
type Surface string

const (
	SurfaceRibbon  Surface = "ribbon"
	SurfaceCommand Surface = "command"
)

// Command IDs registered by the plugin.
const (
	CommandRibbon           = "clean-up"
	CommandCleanUpSelection = "clean-up-selection"
)

// Command is an invocation surface for cleaning the current selection.
type Command struct {
	ID      string  `json:"id" yaml:"id"`
	Name    string  `json:"name" yaml:"name"`
	Icon    string  `json:"icon,omitempty" yaml:"icon,omitempty"`
	Surface Surface `json:"surface" yaml:"surface"`

	run func(Editor, Notifier) *cleaner.Result
}

func (p *Plugin) registerCommands() {
	p.commands = []Command{
		{
			ID:      CommandRibbon,
			Name:    "Clean Up",
			Icon:    "eraser",
			Surface: SurfaceRibbon,
			run:     p.CleanSelection,
		},
		{
			ID:      CommandCleanUpSelection,
			Name:    "Clean Up Selection",
			Surface: SurfaceCommand,
			run:     p.CleanSelection,
		},
	}
}

// Commands lists the registered commands.
func (p *Plugin) Commands() []Command {
	out := make([]Command, len(p.commands))
	copy(out, p.commands)
	return out
}

// Run executes the command with the given ID against editor.
func (p *Plugin) Run(id string, editor Editor, notifier Notifier) (*cleaner.Result, error) {
	for _, c := range p.commands {
		if c.ID == id {
			return c.run(editor, notifier), nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownCommand, id)
}
