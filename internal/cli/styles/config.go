package styles

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// ConfigRenderer renders config command output.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// RenderPaths shows where the config, schema and database live.
func (r *ConfigRenderer) RenderPaths(configFile, schemaFile, dbFile string) string {
	icon := lipgloss.NewStyle().Foreground(r.theme.Accent)
	return fmt.Sprintf("\n  %s Config   %s\n  %s Schema   %s\n  %s Database %s\n",
		icon.Render(IconConfig), r.theme.Subtle.Render(configFile),
		icon.Render(IconInfo), r.theme.Subtle.Render(schemaFile),
		icon.Render(IconDatabase), r.theme.Subtle.Render(dbFile),
	)
}

// RenderEffective frames the effective TOML config.
func (r *ConfigRenderer) RenderEffective(source string, body []byte) string {
	header := r.theme.Subtle.Render("# effective configuration (" + source + ")")
	return header + "\n" + string(body)
}
