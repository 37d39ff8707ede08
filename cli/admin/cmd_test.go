package admin

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dharmaretainer/AryaAI/internal/api"
)

type stubBackend struct {
	analytics    *api.AnalyticsSnapshot
	analyticsErr error
	queries      []api.QueryRecord
	queriesErr   error
}

func (b *stubBackend) Analytics(context.Context) (*api.AnalyticsSnapshot, error) {
	return b.analytics, b.analyticsErr
}

func (b *stubBackend) Queries(context.Context) ([]api.QueryRecord, error) {
	return b.queries, b.queriesErr
}

func TestFetchDashboardUsesLiveData(t *testing.T) {
	backend := &stubBackend{
		analytics: &api.AnalyticsSnapshot{TotalQueries: 3},
		queries:   []api.QueryRecord{{ID: 1, Destination: "Goa"}},
	}

	d := fetchDashboard(context.Background(), backend)

	require.False(t, d.analyticsDegraded)
	require.False(t, d.queriesDegraded)
	require.Equal(t, 3, d.analytics.TotalQueries)
	require.Len(t, d.queries, 1)
}

func TestFetchDashboardFallsBackPerFeed(t *testing.T) {
	backend := &stubBackend{
		analyticsErr: errors.New("connection refused"),
		queries:      []api.QueryRecord{{ID: 7, Destination: "Kerala"}},
	}

	d := fetchDashboard(context.Background(), backend)

	// Analytics degrades to the sample dataset without failing the report.
	require.True(t, d.analyticsDegraded)
	require.Equal(t, 156, d.analytics.TotalQueries)
	require.Equal(t, "Goa", d.analytics.PopularDestinations[0].Name)
	require.Len(t, d.analytics.RecentActivity, 4)

	// The query feed fetched fine and stays live.
	require.False(t, d.queriesDegraded)
	require.Equal(t, "Kerala", d.queries[0].Destination)
}

func TestFetchDashboardFallsBackBothFeeds(t *testing.T) {
	backend := &stubBackend{
		analyticsErr: errors.New("connection refused"),
		queriesErr:   errors.New("connection refused"),
	}

	d := fetchDashboard(context.Background(), backend)

	require.True(t, d.analyticsDegraded)
	require.True(t, d.queriesDegraded)
	require.Len(t, d.queries, 2)
	require.Equal(t, "Kashmir", d.queries[1].Destination)
}

func TestMedalsFollowRankOrder(t *testing.T) {
	require.Equal(t, "🥇", medalFor(0))
	require.Equal(t, "🥈", medalFor(1))
	require.Equal(t, "🥉", medalFor(2))
	require.Equal(t, "🏅", medalFor(3))
	require.Equal(t, "🏅", medalFor(9))
}

func TestLastQueriesKeepsNewestFirst(t *testing.T) {
	records := []api.QueryRecord{
		{ID: 1}, {ID: 2}, {ID: 3}, {ID: 4}, {ID: 5}, {ID: 6}, {ID: 7},
	}

	recent := lastQueries(records, 5)

	require.Len(t, recent, 5)
	require.Equal(t, 7, recent[0].ID)
	require.Equal(t, 3, recent[4].ID)
}

func TestLastQueriesHandlesShortLogs(t *testing.T) {
	recent := lastQueries([]api.QueryRecord{{ID: 1}, {ID: 2}}, 5)
	require.Len(t, recent, 2)
	require.Equal(t, 2, recent[0].ID)
}

func TestFormatQueryPrintsMixedDayTypes(t *testing.T) {
	asString := formatQuery(api.QueryRecord{ID: 1, Destination: "Goa", Days: "5", Budget: "30000"})
	require.Equal(t, "#1 Goa, 5 days, ₹30000", asString)

	asNumber := formatQuery(api.QueryRecord{ID: 2, Destination: "Kashmir", Days: float64(7), Budget: "50000"})
	require.Equal(t, "#2 Kashmir, 7 days, ₹50000", asNumber)
}
