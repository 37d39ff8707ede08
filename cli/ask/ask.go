// Package ask implements the one-shot question command.
package ask

import (
	"strings"

	"github.com/buger/goterm"
	"github.com/spf13/cobra"

	"github.com/dharmaretainer/AryaAI/internal/api"
	"github.com/dharmaretainer/AryaAI/internal/cli"
	"github.com/dharmaretainer/AryaAI/internal/configuration"
	"github.com/dharmaretainer/AryaAI/internal/markdown"
)

// NewCmd instantiates and returns the ask command.
func NewCmd(config *configuration.Config, client *api.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "ask [question]",
		Short: "Ask a single travel question",
		RunE: func(cmd *cobra.Command, args []string) error {
			prompt := strings.TrimSpace(strings.Join(args, " "))
			if prompt == "" {
				input, err := cli.PromptUser()
				if err != nil {
					return err
				}
				prompt = strings.TrimSpace(input)
			}
			if prompt == "" {
				return nil
			}

			response, err := client.Prompt(cmd.Context(), prompt)
			if err != nil {
				cli.Warning("Error: Could not connect to server.")
				return nil
			}

			renderer, err := markdown.NewRenderer(goterm.Width())
			if err != nil {
				return err
			}
			cli.AIOutput(renderer.Render(response, -1))
			cli.AIOutput("\n")
			return nil
		},
	}
}
