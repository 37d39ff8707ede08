package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dharmaretainer/AryaAI/internal/configuration"
)

func newTestClient(serverURL string) *Client {
	return NewClient(&configuration.Config{
		ServerURL: serverURL,
		Admin:     &configuration.AdminConfig{Username: "admin", Password: "secret"},
	})
}

func TestPlanTripSendsStructuredPayload(t *testing.T) {
	var received map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/chat", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		json.NewEncoder(w).Encode(map[string]string{"response": "Day 1: arrive in Goa."})
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	reply, err := client.PlanTrip(context.Background(), &TripRequest{
		Destination: "Goa",
		Days:        "5",
		Budget:      "25000",
		Preferences: "beaches, seafood",
	})
	require.NoError(t, err)
	require.Equal(t, "Day 1: arrive in Goa.", reply)
	require.Equal(t, map[string]string{
		"destination": "Goa",
		"days":        "5",
		"budget":      "25000",
		"preferences": "beaches, seafood",
	}, received)
}

func TestPromptSendsOnlyPrompt(t *testing.T) {
	var received map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		json.NewEncoder(w).Encode(map[string]string{"response": "ok"})
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.Prompt(context.Background(), "plan a trip to Kerala")
	require.NoError(t, err)
	// The two submission shapes are never merged.
	require.Equal(t, map[string]string{"prompt": "plan a trip to Kerala"}, received)
}

func TestPostChatErrorOnBadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.Prompt(context.Background(), "hello")
	require.Error(t, err)
}

func TestAnalyticsDecodesSnapshot(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/admin/analytics", r.URL.Path)
		username, password, ok := r.BasicAuth()
		require.True(t, ok)
		require.Equal(t, "admin", username)
		require.Equal(t, "secret", password)
		json.NewEncoder(w).Encode(AnalyticsSnapshot{
			TotalQueries:        3,
			PopularDestinations: []Destination{{Name: "Goa", Count: 2}},
			RecentActivity:      []Activity{{Action: "Query for Goa", Time: "2 min ago"}},
		})
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	snapshot, err := client.Analytics(context.Background())
	require.NoError(t, err)
	require.Equal(t, 3, snapshot.TotalQueries)
	require.Len(t, snapshot.PopularDestinations, 1)
	require.Equal(t, "Goa", snapshot.PopularDestinations[0].Name)
}

func TestQueriesDecodesMixedDays(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":1,"destination":"Goa","days":5,"budget":"25000","preferences":"beaches","timestamp":"2024-01-15 14:30","status":"completed"},
			{"id":2,"destination":"Kashmir","days":"7","budget":"35000","preferences":"mountains","timestamp":"2024-01-15 13:45","status":"completed"}]`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	records, err := client.Queries(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Equal(t, "Goa", records[0].Destination)
	require.Equal(t, "Kashmir", records[1].Destination)
}

func TestTripRequestValidateNamesFirstMissingField(t *testing.T) {
	cases := []struct {
		request TripRequest
		want    string
	}{
		{TripRequest{}, "please enter your destination"},
		{TripRequest{Destination: "Goa"}, "please enter your days"},
		{TripRequest{Destination: "Goa", Days: "5"}, "please enter your budget"},
		{TripRequest{Destination: "Goa", Days: "5", Budget: "25000"}, "please enter your preferences"},
	}
	for _, c := range cases {
		err := c.request.Validate()
		require.Error(t, err)
		require.Equal(t, c.want, err.Error())
	}

	complete := TripRequest{Destination: "Goa", Days: "5", Budget: "25000", Preferences: "beaches"}
	require.NoError(t, complete.Validate())
}
