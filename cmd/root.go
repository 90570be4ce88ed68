// Package cmd defines the phoenix command line interface.
package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/phoenix-pm/phoenix/internal/app"
	"github.com/phoenix-pm/phoenix/internal/database"
	"github.com/phoenix-pm/phoenix/internal/logging"
	"github.com/phoenix-pm/phoenix/internal/tui"
)

var rootCmd = &cobra.Command{
	Use:   "phoenix",
	Short: "Phoenix - a terminal task board",
	Long:  `Phoenix is a terminal task board: group tasks by section, status, priority, estimation or health, and move them with the keyboard.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := logging.Init(); err != nil {
			return fmt.Errorf("failed to initialize logging: %w", err)
		}

		db, err := database.InitDB(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}

		a, err := app.New(cmd.Context(), db)
		if err != nil {
			db.Close()
			return err
		}
		defer a.Close()

		model := tui.NewModel(tui.Deps{
			Repo:     a.Repo,
			Tasks:    a.Tasks,
			Sections: a.Sections,
			Configs:  a.Configs,
			Emitter:  a.Emitter,
			Session:  a.Session,
			Config:   a.Config,
			User:     a.User,
		})

		p := tea.NewProgram(model, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("failed to run program: %w", err)
		}
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}
