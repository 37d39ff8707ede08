package admin

import "github.com/dharmaretainer/AryaAI/internal/api"

// sampleAnalytics is shown when the analytics endpoint cannot be reached, so
// the dashboard always renders a complete report.
var sampleAnalytics = &api.AnalyticsSnapshot{
	TotalQueries: 156,
	PopularDestinations: []api.Destination{
		{Name: "Goa", Count: 45},
		{Name: "Kashmir", Count: 32},
		{Name: "Kerala", Count: 28},
		{Name: "Rajasthan", Count: 25},
		{Name: "Himachal Pradesh", Count: 22},
	},
	RecentActivity: []api.Activity{
		{Action: "Trip plan generated for Goa", Time: "2 minutes ago"},
		{Action: "Voice query about Kashmir", Time: "15 minutes ago"},
		{Action: "PDF downloaded for Kerala trip", Time: "1 hour ago"},
		{Action: "New user started planning", Time: "2 hours ago"},
	},
}

// sampleQueries backs the query log when its endpoint cannot be reached.
var sampleQueries = []api.QueryRecord{
	{
		ID:          1,
		Destination: "Goa",
		Days:        "5",
		Budget:      "30000",
		Preferences: "beaches, nightlife",
		Timestamp:   "2024-01-15 14:30",
		Status:      "completed",
	},
	{
		ID:          2,
		Destination: "Kashmir",
		Days:        "7",
		Budget:      "50000",
		Preferences: "snow, adventure",
		Timestamp:   "2024-01-15 13:45",
		Status:      "completed",
	},
}
