package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/tabshell/internal/cli/styles"
	"github.com/bnema/tabshell/internal/infrastructure/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect configuration",
	Long:  `Show where configuration and data live, print the effective settings, or emit the JSON schema.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show config, schema and database paths",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := GetApp()
		if app == nil {
			return fmt.Errorf("app not initialized")
		}
		schemaFile := ""
		if app.Dirs != nil {
			schemaFile = app.Dirs.SchemaFile()
		}
		renderer := styles.NewConfigRenderer(app.Theme)
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderPaths(app.ConfigFile, schemaFile, app.DatabaseFile()))
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as TOML",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := GetApp()
		if app == nil {
			return fmt.Errorf("app not initialized")
		}
		body, err := config.EncodeTOML(app.Config)
		if err != nil {
			return fmt.Errorf("encode config: %w", err)
		}
		renderer := styles.NewConfigRenderer(app.Theme)
		_, _ = fmt.Fprint(cmd.OutOrStdout(), renderer.RenderEffective(app.ConfigFile, body))
		return nil
	},
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema for the config file",
	RunE: func(cmd *cobra.Command, _ []string) error {
		schema, err := config.GenerateSchema()
		if err != nil {
			return fmt.Errorf("generate schema: %w", err)
		}
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), string(schema))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd, configShowCmd, configSchemaCmd)
}
