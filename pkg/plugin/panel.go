package plugin

import (
	"github.com/jmylchreest/cleanup/pkg/settings"
)

// PanelHeading is the title of the settings panel.
const PanelHeading = "Settings for cleanable content."

// Toggle is a two-state control in the settings panel.
type Toggle struct {
	Field       settings.Field `json:"field" yaml:"field"`
	Name        string         `json:"name" yaml:"name"`
	Description string         `json:"description" yaml:"description"`
	Value       bool           `json:"value" yaml:"value"`
}

// Panel is the settings panel contents.
type Panel struct {
	Heading string   `json:"heading" yaml:"heading"`
	Toggles []Toggle `json:"toggles" yaml:"toggles"`
}

// Panel builds the settings panel from the current settings.
func (p *Plugin) Panel() Panel {
	current := p.Settings()

	panel := Panel{Heading: PanelHeading}
	for _, f := range settings.Fields() {
		value, _ := current.Get(f.Field)
		panel.Toggles = append(panel.Toggles, Toggle{
			Field:       f.Field,
			Name:        f.Name,
			Description: f.Description,
			Value:       value,
		})
	}
	return panel
}
