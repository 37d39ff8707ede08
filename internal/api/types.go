package api

import "fmt"

// TripRequest is a structured trip submission. All fields are entered as
// text; the backend interprets them.
type TripRequest struct {
	Destination string `json:"destination"`
	Days        string `json:"days"`
	Budget      string `json:"budget"`
	Preferences string `json:"preferences"`
}

// requiredFields, in validation order. The first empty one names the error.
var requiredFields = []struct {
	label string
	value func(*TripRequest) string
}{
	{"destination", func(r *TripRequest) string { return r.Destination }},
	{"days", func(r *TripRequest) string { return r.Days }},
	{"budget", func(r *TripRequest) string { return r.Budget }},
	{"preferences", func(r *TripRequest) string { return r.Preferences }},
}

// Validate returns an error naming the first missing field, or nil when all
// four fields are present.
func (r *TripRequest) Validate() error {
	for _, field := range requiredFields {
		if field.value(r) == "" {
			return fmt.Errorf("please enter your %s", field.label)
		}
	}
	return nil
}

// promptRequest is the spoken/free-text submission shape. It is never merged
// with a TripRequest payload.
type promptRequest struct {
	Prompt string `json:"prompt"`
}

// chatResponse is the backend's reply envelope.
type chatResponse struct {
	Response string `json:"response"`
}

// Destination is one entry of the popularity ranking, in server rank order.
type Destination struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Activity is one entry of the recent-activity feed.
type Activity struct {
	Action string `json:"action"`
	Time   string `json:"time"`
}

// AnalyticsSnapshot holds the backend's aggregate usage statistics.
// It is externally owned and never mutated locally.
type AnalyticsSnapshot struct {
	TotalQueries        int           `json:"totalQueries"`
	PopularDestinations []Destination `json:"popularDestinations"`
	RecentActivity      []Activity    `json:"recentActivity"`
}

// QueryRecord is one entry of the backend's query log.
// Days arrives as a string or a number depending on the submission path.
type QueryRecord struct {
	ID          int    `json:"id"`
	Destination string `json:"destination"`
	Days        any    `json:"days"`
	Budget      string `json:"budget"`
	Preferences string `json:"preferences"`
	Timestamp   string `json:"timestamp"`
	Status      string `json:"status"`
}
