// Package admin renders the backend's usage dashboard in the terminal.
package admin

import (
	"context"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/dharmaretainer/AryaAI/internal/api"
	"github.com/dharmaretainer/AryaAI/internal/configuration"
	"github.com/dharmaretainer/AryaAI/internal/debug"
)

var log = debug.GetLogger()

// backend is the slice of the API client the dashboard needs.
type backend interface {
	Analytics(ctx context.Context) (*api.AnalyticsSnapshot, error)
	Queries(ctx context.Context) ([]api.QueryRecord, error)
}

// dashboard holds everything one render needs. The two feeds are fetched
// independently; either may be running on sample data.
type dashboard struct {
	analytics         *api.AnalyticsSnapshot
	queries           []api.QueryRecord
	analyticsDegraded bool
	queriesDegraded   bool
}

// NewCmd instantiates and returns the admin command.
func NewCmd(config *configuration.Config, client *api.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "admin",
		Short: "Usage analytics dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := promptCredentials(config, client); err != nil {
				return err
			}
			render(fetchDashboard(cmd.Context(), client))
			return nil
		},
	}
}

// promptCredentials asks for the admin password when the configuration does
// not carry one. The configured username is offered as the default.
func promptCredentials(config *configuration.Config, client *api.Client) error {
	if config.Admin != nil && config.Admin.Password != "" {
		return nil
	}

	username := "admin"
	if config.Admin != nil && config.Admin.Username != "" {
		username = config.Admin.Username
	}
	if err := survey.AskOne(&survey.Input{Message: "Admin username:", Default: username}, &username); err != nil {
		return err
	}
	var password string
	if err := survey.AskOne(&survey.Password{Message: "Admin password:"}, &password); err != nil {
		return err
	}
	client.SetCredentials(username, password)
	return nil
}

// fetchDashboard pulls both feeds. A failed fetch degrades that feed to its
// sample dataset instead of failing the whole report.
func fetchDashboard(ctx context.Context, client backend) *dashboard {
	d := &dashboard{}

	analytics, err := client.Analytics(ctx)
	if err != nil {
		log.Error("analytics fetch failed", "error", err)
		d.analytics = sampleAnalytics
		d.analyticsDegraded = true
	} else {
		d.analytics = analytics
	}

	queries, err := client.Queries(ctx)
	if err != nil {
		log.Error("query log fetch failed", "error", err)
		d.queries = sampleQueries
		d.queriesDegraded = true
	} else {
		d.queries = queries
	}

	return d
}
