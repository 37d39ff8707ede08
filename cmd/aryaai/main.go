package main

import (
	"github.com/spf13/cobra"

	"github.com/dharmaretainer/AryaAI/cli/admin"
	"github.com/dharmaretainer/AryaAI/cli/ask"
	"github.com/dharmaretainer/AryaAI/cli/plan"
	"github.com/dharmaretainer/AryaAI/internal/api"
	"github.com/dharmaretainer/AryaAI/internal/configuration"
)

const configFilepath = "~/.config/aryaai/config.json"

var rootCmd = &cobra.Command{
	Use:     "aryaai",
	Short:   "Your AI travel planner",
	Version: "1.0",
}

func main() {
	config, err := configuration.Parse(configFilepath)
	if err != nil {
		panic(err)
	}

	client := api.NewClient(config)

	rootCmd.AddCommand(plan.NewCmd(config, client))
	rootCmd.AddCommand(admin.NewCmd(config, client))
	rootCmd.AddCommand(ask.NewCmd(config, client))
	rootCmd.Execute()
}
