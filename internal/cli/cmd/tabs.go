package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/tabshell/internal/application/usecase"
	"github.com/bnema/tabshell/internal/cli/model"
	"github.com/bnema/tabshell/internal/cli/styles"
	"github.com/bnema/tabshell/internal/domain/entity"
)

var (
	tabsJSON  bool
	tabsPick  bool
	tabsClear bool
)

var tabsCmd = &cobra.Command{
	Use:   "tabs",
	Short: "Show the saved tab session",
	Long: `Show the tabs saved by the last browser run.

The marked tab is the one that was selected. With --pick an interactive
list opens and the chosen tab's URL is printed, which makes it easy to
hand a URL to another program:

  xdg-open "$(tabshell tabs --pick)"`,
	RunE: runTabs,
}

func init() {
	rootCmd.AddCommand(tabsCmd)
	tabsCmd.Flags().BoolVar(&tabsJSON, "json", false, "output the saved session as JSON")
	tabsCmd.Flags().BoolVar(&tabsPick, "pick", false, "choose a tab interactively and print its URL")
	tabsCmd.Flags().BoolVar(&tabsClear, "clear", false, "delete the saved session")
	tabsCmd.MarkFlagsMutuallyExclusive("json", "pick", "clear")
}

func runTabs(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	out := cmd.OutOrStdout()
	renderer := styles.NewSessionRenderer(app.Theme)

	if tabsClear {
		uc, err := app.ClearUseCase(app.Ctx())
		if err != nil {
			return err
		}
		if err := uc.Execute(app.Ctx()); err != nil {
			return err
		}
		_, _ = fmt.Fprintln(out, renderer.RenderCleared())
		return nil
	}

	uc, err := app.RestoreUseCase(app.Ctx())
	if err != nil {
		return err
	}
	state, err := uc.Execute(app.Ctx())
	if errors.Is(err, usecase.ErrSessionNotFound) {
		if !tabsPick {
			_, _ = fmt.Fprintln(out, renderer.RenderNoSession())
		}
		return nil
	}
	if err != nil {
		_, _ = fmt.Fprintln(cmd.ErrOrStderr(), renderer.RenderError(err))
		return err
	}

	switch {
	case tabsJSON:
		return writeSessionJSON(out, state)
	case tabsPick:
		return pickTab(out, app.Theme, state)
	default:
		_, _ = fmt.Fprintln(out, renderer.RenderSession(state))
		return nil
	}
}

func writeSessionJSON(w io.Writer, state *entity.SessionState) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(state)
}

func pickTab(w io.Writer, theme *styles.Theme, state *entity.SessionState) error {
	m := model.NewTabPickerModel(theme, state)
	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}
	picker, ok := final.(model.TabPickerModel)
	if !ok {
		return nil
	}
	if item, chosen := picker.Chosen(); chosen {
		_, _ = fmt.Fprintln(w, item.URL)
	}
	return nil
}
