package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"behavior-insights/internal/models"
	"behavior-insights/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_ConfigurationMissing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		baseURL string
		token   string
	}{
		{name: "missing base URL", baseURL: "", token: "secret"},
		{name: "missing token", baseURL: "https://analytics.example.com", token: ""},
		{name: "whitespace token", baseURL: "https://analytics.example.com", token: "   "},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			client, err := NewHTTPClient(tt.baseURL, tt.token, time.Second)

			require.Error(t, err)
			assert.Nil(t, client)
			svcErr, ok := svcerrors.AsServiceError(err)
			require.True(t, ok)
			assert.Equal(t, "FEED_1000", svcErr.Code)
		})
	}
}

func TestHTTPClient_Fetch_Success(t *testing.T) {
	t.Parallel()

	var gotPath, gotAuth string
	var gotQuery map[string][]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{
				"metricName": "Traffic",
				"information": [
					{"Device": "Mobile", "totalSessionCount": "120", "distinctUserCount": 80},
					{"Device": "PC", "totalSessionCount": "30"}
				]
			},
			{
				"metricName": "DeadClickCount",
				"information": [
					{"Device": "Mobile", "subTotal": "12"}
				]
			}
		]`))
	}))
	defer server.Close()

	client, err := NewHTTPClient(server.URL, "secret", time.Second)
	require.NoError(t, err)

	groups, err := client.Fetch(context.Background(), 3, []string{models.DimensionDevice, models.DimensionOS, models.DimensionCountry})
	require.NoError(t, err)

	assert.Equal(t, "/export", gotPath)
	assert.Equal(t, "Bearer secret", gotAuth)
	assert.Equal(t, []string{"3"}, gotQuery["numOfDays"])
	assert.Equal(t, []string{"Device"}, gotQuery["dimension1"])
	assert.Equal(t, []string{"OS"}, gotQuery["dimension2"])
	assert.Equal(t, []string{"Country/Region"}, gotQuery["dimension3"])

	require.Len(t, groups, 2)
	assert.Equal(t, "Traffic", groups[0].Name)
	require.Len(t, groups[0].Records, 2)
	assert.Equal(t, "120", groups[0].Records[0].Field("totalSessionCount"))
	// Bare JSON numbers are coerced to their string form for the normalizer.
	assert.Equal(t, "80", groups[0].Records[0].Field("distinctUserCount"))
	assert.Equal(t, "DeadClickCount", groups[1].Name)
}

func TestHTTPClient_Fetch_NonSuccessStatus(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	client, err := NewHTTPClient(server.URL, "secret", time.Second)
	require.NoError(t, err)

	groups, err := client.Fetch(context.Background(), 3, []string{models.DimensionDevice})

	require.Error(t, err)
	assert.Nil(t, groups, "a failed fetch returns no groups at all")
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "FEED_9000", svcErr.Code)
	assert.True(t, svcErr.IsUnavailableError())
}

func TestHTTPClient_Fetch_NetworkFailure(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	client, err := NewHTTPClient(server.URL, "secret", time.Second)
	require.NoError(t, err)

	_, err = client.Fetch(context.Background(), 3, []string{models.DimensionDevice})

	require.Error(t, err)
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "FEED_9000", svcErr.Code)
}

func TestHTTPClient_Fetch_MalformedBody(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{name: "object instead of sequence", body: `{"metricName": "Traffic"}`},
		{name: "not json at all", body: `<html>maintenance</html>`},
		{name: "records not objects", body: `[{"metricName": "Traffic", "information": ["x"]}]`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client, err := NewHTTPClient(server.URL, "secret", time.Second)
			require.NoError(t, err)

			groups, err := client.Fetch(context.Background(), 3, []string{models.DimensionDevice})

			require.Error(t, err)
			assert.Nil(t, groups)
			svcErr, ok := svcerrors.AsServiceError(err)
			require.True(t, ok)
			assert.Equal(t, "FEED_9001", svcErr.Code)
		})
	}
}

func TestHTTPClient_Fetch_EmptySequence(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client, err := NewHTTPClient(server.URL, "secret", time.Second)
	require.NoError(t, err)

	groups, err := client.Fetch(context.Background(), 3, []string{models.DimensionDevice})

	require.NoError(t, err, "an empty feed is a valid feed")
	assert.Empty(t, groups)
}
