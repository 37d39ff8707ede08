package plan

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/dharmaretainer/AryaAI/internal/api"
	"github.com/dharmaretainer/AryaAI/internal/configuration"
	"github.com/dharmaretainer/AryaAI/internal/export"
	"github.com/dharmaretainer/AryaAI/internal/session"
	"github.com/dharmaretainer/AryaAI/internal/speech"
)

// NewCmd instantiates and returns the plan command.
func NewCmd(config *configuration.Config, client *api.Client) *cobra.Command {
	var opts struct {
		ExportDirectory string
	}
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Interactive travel planner",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			exportConfig := *config.Export
			if opts.ExportDirectory != "" {
				exportConfig.Directory = opts.ExportDirectory
			}

			m, err := New(
				ctx,
				client,
				session.NewStore(),
				speech.NewCommandBridge(config.Speech),
				export.NewExporter(&exportConfig),
			)
			if err != nil {
				return err
			}

			p := tea.NewProgram(
				m,
				tea.WithAltScreen(),
				tea.WithContext(ctx),
				tea.WithMouseCellMotion(),
			)
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("error running planner: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.ExportDirectory, "export-dir", "e", "", "Directory to write exported travel plans into")

	return cmd
}
