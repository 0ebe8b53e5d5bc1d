package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"sync/atomic"
	"time"
)

// ### Start - fixed configs (no change)
// These values define the deterministic stub feed payload and must match
// the expected results below.
// DO NOT MODIFY: Changing these will break the test's deterministic behavior.
const (
	expectedTotalSessions    = 150
	expectedTotalUsers       = 105
	expectedTotalBotSessions = 15
	expectedDeadClicks       = 15
	expectedWindowDays       = 3
)

// stubFeedBody is the provider export payload served to the dashboard
// server. Values are decimal strings, matching what the real provider sends.
const stubFeedBody = `[
  {
    "metricName": "Traffic",
    "information": [
      {"Device": "Mobile", "OS": "Android", "Country/Region": "United States",
       "totalSessionCount": "120", "distinctUserCount": "80",
       "totalBotSessionCount": "12", "pagesPerSessionPercentage": "3.4"},
      {"Device": "PC", "OS": "Windows", "Country/Region": "Germany",
       "totalSessionCount": "30", "distinctUserCount": "25",
       "totalBotSessionCount": "3", "pagesPerSessionPercentage": "2.6"}
    ]
  },
  {
    "metricName": "EngagementTime",
    "information": [
      {"Device": "Mobile", "totalTime": "300", "activeTime": "225"}
    ]
  },
  {
    "metricName": "DeadClickCount",
    "information": [
      {"Device": "Mobile", "subTotal": "10"},
      {"Device": "PC", "subTotal": "5"}
    ]
  }
]`

// ### End - fixed configs

type overviewResponse struct {
	WindowDays int `json:"windowDays"`
	Totals     struct {
		TotalSessions    int64 `json:"totalSessions"`
		TotalUsers       int64 `json:"totalUsers"`
		TotalBotSessions int64 `json:"totalBotSessions"`
	} `json:"totals"`
	TopCountries []struct {
		Label string  `json:"label"`
		Value float64 `json:"value"`
	} `json:"topCountries"`
	Trend struct {
		Synthetic bool `json:"synthetic"`
		Points    []struct {
			Label string  `json:"label"`
			Value float64 `json:"value"`
		} `json:"points"`
	} `json:"trend"`
}

type trafficResponse struct {
	DeviceBreakdowns []struct {
		DimensionValue string `json:"dimensionValue"`
		Sessions       int64  `json:"sessions"`
		Users          int64  `json:"users"`
	} `json:"deviceBreakdowns"`
}

type issuesResponse struct {
	TotalDeadClicks int64 `json:"totalDeadClicks"`
}

// main runs the e2e scenario: 001_dashboard_snapshot
//
// This scenario tests the end-to-end flow of feed retrieval, snapshot
// building, and dashboard serving. It hosts a stub metric feed with a
// deterministic export payload and verifies the three dashboard views
// against known expected values.
//
// Setup: run the dashboard server with feed.base_url pointed at this
// scenario's stub feed (http://localhost:9090) and BI_FEED_TOKEN set to
// any non-empty value, then run this scenario.
//
// What it tests:
//   - Feed retrieval via GET /export with numOfDays and dimension1..3 params
//   - Snapshot building from one complete feed response
//   - Snapshot reuse across the three dashboard views (one fetch, many reads)
//   - Dashboard serving via GET /dashboard/{overview,traffic,issues}
//
// Expected results:
//   - Overview totals: 150 sessions, 105 users, 15 bot sessions
//   - Top countries: United States (120) ranked above Germany (30)
//   - Traffic device breakdowns: Mobile 120/80, PC 30/25
//   - Issues: 15 dead clicks total
//   - A synthetic trend series is present on the overview
//   - The stub feed is fetched at most once while the snapshot is fresh
func main() {
	// these configs can be changed to run the scenario
	baseURL := "http://localhost:8080" // Base URL of the dashboard API server
	feedListenAddr := ":9090"          // Listen address for the stub metric feed
	waitTimeout := 30 * time.Second    // How long to wait for the dashboard server to come up

	var feedFetchCount int64

	// Host the stub metric feed.
	feedMux := http.NewServeMux()
	feedMux.HandleFunc("/export", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&feedFetchCount, 1)

		query := r.URL.Query()
		if query.Get("numOfDays") == "" || query.Get("dimension1") == "" {
			fmt.Fprintf(os.Stderr, "ERROR: stub feed called without expected query params: %s\n", r.URL.RawQuery)
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(stubFeedBody))
	})

	feedServer := &http.Server{Addr: feedListenAddr, Handler: feedMux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := feedServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Fprintf(os.Stderr, "ERROR: stub feed server failed: %v\n", err)
			os.Exit(1)
		}
	}()

	fmt.Println("Starting e2e scenario: 001_dashboard_snapshot")
	fmt.Printf("BASE_URL: %s\n", baseURL)
	fmt.Printf("FEED_LISTEN_ADDR: %s\n", feedListenAddr)
	fmt.Println()

	// Wait for the dashboard server to answer.
	if err := waitForServer(baseURL+"/dashboard/overview", waitTimeout); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: dashboard server did not come up: %v\n", err)
		os.Exit(1)
	}

	failures := 0

	// Overview view
	var overview overviewResponse
	if err := getJSON(baseURL+"/dashboard/overview", &overview); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: overview request failed: %v\n", err)
		os.Exit(1)
	}
	failures += check("overview windowDays", int64(expectedWindowDays), int64(overview.WindowDays))
	failures += check("overview totalSessions", expectedTotalSessions, overview.Totals.TotalSessions)
	failures += check("overview totalUsers", expectedTotalUsers, overview.Totals.TotalUsers)
	failures += check("overview totalBotSessions", expectedTotalBotSessions, overview.Totals.TotalBotSessions)
	if len(overview.TopCountries) < 2 {
		fmt.Fprintf(os.Stderr, "FAIL: overview topCountries: want at least 2 entries, got %d\n", len(overview.TopCountries))
		failures++
	} else {
		if overview.TopCountries[0].Label != "United States" {
			fmt.Fprintf(os.Stderr, "FAIL: overview topCountries[0]: want United States, got %s\n", overview.TopCountries[0].Label)
			failures++
		}
		if overview.TopCountries[1].Label != "Germany" {
			fmt.Fprintf(os.Stderr, "FAIL: overview topCountries[1]: want Germany, got %s\n", overview.TopCountries[1].Label)
			failures++
		}
	}
	if !overview.Trend.Synthetic || len(overview.Trend.Points) == 0 {
		fmt.Fprintf(os.Stderr, "FAIL: overview trend: want a non-empty synthetic series\n")
		failures++
	}

	// Traffic view
	var traffic trafficResponse
	if err := getJSON(baseURL+"/dashboard/traffic", &traffic); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: traffic request failed: %v\n", err)
		os.Exit(1)
	}
	if len(traffic.DeviceBreakdowns) != 2 {
		fmt.Fprintf(os.Stderr, "FAIL: traffic deviceBreakdowns: want 2 entries, got %d\n", len(traffic.DeviceBreakdowns))
		failures++
	} else {
		failures += check("traffic Mobile sessions", 120, traffic.DeviceBreakdowns[0].Sessions)
		failures += check("traffic Mobile users", 80, traffic.DeviceBreakdowns[0].Users)
		failures += check("traffic PC sessions", 30, traffic.DeviceBreakdowns[1].Sessions)
	}

	// Issues view
	var issues issuesResponse
	if err := getJSON(baseURL+"/dashboard/issues", &issues); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: issues request failed: %v\n", err)
		os.Exit(1)
	}
	failures += check("issues totalDeadClicks", expectedDeadClicks, issues.TotalDeadClicks)

	// One snapshot serves all three views while fresh.
	fetches := atomic.LoadInt64(&feedFetchCount)
	if fetches != 1 {
		fmt.Fprintf(os.Stderr, "FAIL: feed fetch count: want 1 while the snapshot is fresh, got %d\n", fetches)
		failures++
	}

	fmt.Println()
	fmt.Println("=== Statistics ===")
	fmt.Printf("Feed fetches observed: %d\n", fetches)
	fmt.Printf("Checks failed: %d\n", failures)

	if failures > 0 {
		fmt.Fprintf(os.Stderr, "ERROR: scenario failed with %d check failures\n", failures)
		os.Exit(1)
	}

	fmt.Println("Scenario completed successfully")
}

func check(name string, want, got int64) int {
	if want != got {
		fmt.Fprintf(os.Stderr, "FAIL: %s: want %d, got %d\n", name, want, got)
		return 1
	}
	fmt.Printf("OK: %s = %d\n", name, got)
	return 0
}

func waitForServer(url string, timeout time.Duration) error {
	client := &http.Client{Timeout: 5 * time.Second}
	deadline := time.Now().Add(timeout)

	for time.Now().Before(deadline) {
		resp, err := client.Get(url)
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode < 500 {
				return nil
			}
		}
		time.Sleep(time.Second)
	}

	return fmt.Errorf("no response from %s within %s", url, timeout)
}

func getJSON(url string, out any) error {
	client := &http.Client{Timeout: 10 * time.Second}

	resp, err := client.Get(url)
	if err != nil {
		return fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
