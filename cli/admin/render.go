package admin

import (
	"fmt"

	"github.com/dharmaretainer/AryaAI/internal/api"
	"github.com/dharmaretainer/AryaAI/internal/cli"
)

// recentQueryCount is how many log entries the dashboard shows, newest first.
const recentQueryCount = 5

func render(d *dashboard) {
	cli.Title("AryaAI Admin Dashboard")

	cli.Heading("Overview")
	if d.analyticsDegraded {
		cli.Warning("Backend unreachable. Showing sample analytics.")
	}
	cli.Stat("Total queries", d.analytics.TotalQueries)
	fmt.Println()

	cli.Heading("Popular destinations")
	for rank, destination := range d.analytics.PopularDestinations {
		cli.Stat(fmt.Sprintf("%s %s", medalFor(rank), destination.Name), destination.Count)
	}
	fmt.Println()

	cli.Heading("Recent activity")
	for _, activity := range d.analytics.RecentActivity {
		cli.Stat(activity.Action, "")
		cli.Muted("  %s", activity.Time)
	}
	fmt.Println()

	cli.Separator()
	cli.Heading("Recent queries")
	if d.queriesDegraded {
		cli.Warning("Backend unreachable. Showing sample queries.")
	}
	for _, record := range lastQueries(d.queries, recentQueryCount) {
		cli.Stat(formatQuery(record), record.Status)
		cli.Muted("  %s", record.Timestamp)
	}
	cli.Separator()
}

// medalFor returns the podium medal for a rank, in server rank order.
func medalFor(rank int) string {
	switch rank {
	case 0:
		return "🥇"
	case 1:
		return "🥈"
	case 2:
		return "🥉"
	default:
		return "🏅"
	}
}

// lastQueries returns up to n of the newest records, newest first. The log
// arrives oldest first.
func lastQueries(records []api.QueryRecord, n int) []api.QueryRecord {
	if len(records) > n {
		records = records[len(records)-n:]
	}
	reversed := make([]api.QueryRecord, 0, len(records))
	for i := len(records) - 1; i >= 0; i-- {
		reversed = append(reversed, records[i])
	}
	return reversed
}

// formatQuery summarizes one log entry. Days arrives as a string or a number
// depending on the submission path, so it is printed as-is.
func formatQuery(record api.QueryRecord) string {
	return fmt.Sprintf("#%d %s, %v days, ₹%s", record.ID, record.Destination, record.Days, record.Budget)
}
