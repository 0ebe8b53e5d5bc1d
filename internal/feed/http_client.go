package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"behavior-insights/internal/models"
	"behavior-insights/internal/shared/loggers"
	"behavior-insights/internal/shared/metrics"
	"behavior-insights/internal/shared/svcerrors"
)

const (
	exportPath = "/export"

	// The provider accepts at most three dimension selectors per request.
	maxDimensions = 3

	maxResponseBytes = 8 * 1024 * 1024
)

type httpClient struct {
	baseURL string
	token   string
	client  *http.Client
}

// NewHTTPClient creates a feed client against the provider's data-export
// endpoint. It fails fast when the endpoint or credential is missing so a
// misconfigured deployment never issues a fetch.
func NewHTTPClient(baseURL, token string, timeout time.Duration) (Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errConfigurationMissing("feed base URL is required")
	}
	if strings.TrimSpace(token) == "" {
		return nil, errConfigurationMissing("feed API token is required")
	}

	return &httpClient{
		baseURL: baseURL,
		token:   token,
		client:  &http.Client{Timeout: timeout},
	}, nil
}

func (c *httpClient) Fetch(ctx context.Context, windowDays int, dimensions []string) ([]models.MetricGroup, error) {
	start := time.Now()
	groups, err := c.fetch(ctx, windowDays, dimensions)

	errorCode := metrics.ValueNoError
	if err != nil {
		if svcErr, ok := svcerrors.AsServiceError(err); ok {
			errorCode = svcErr.Code
		}
	}
	metricFeedFetchTotal.WithLabelValues(errorCode).Inc()
	metricFeedFetchDuration.WithLabelValues(errorCode).Observe(time.Since(start).Seconds())

	return groups, err
}

func (c *httpClient) fetch(ctx context.Context, windowDays int, dimensions []string) ([]models.MetricGroup, error) {
	requestURL := c.buildURL(windowDays, dimensions)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, errTransportFailed(err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	loggers.Ctx(ctx).Debug().
		Int(loggers.FieldWindowDays, windowDays).
		Str(loggers.FieldDimension, strings.Join(dimensions, ",")).
		Msg("fetching metric feed")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, errTransportFailed(err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errTransportFailed(fmt.Errorf("feed responded with status %d", resp.StatusCode))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, errTransportFailed(err)
	}

	return decodeGroups(body)
}

func (c *httpClient) buildURL(windowDays int, dimensions []string) string {
	query := url.Values{}
	query.Set("numOfDays", strconv.Itoa(windowDays))
	for i, dimension := range dimensions {
		if i >= maxDimensions {
			break
		}
		query.Set(fmt.Sprintf("dimension%d", i+1), dimension)
	}
	return c.baseURL + exportPath + "?" + query.Encode()
}

// wireGroup is the provider's group shape. Record values are weakly typed
// on the wire: usually strings, occasionally bare JSON numbers.
type wireGroup struct {
	MetricName  string           `json:"metricName"`
	Information []map[string]any `json:"information"`
}

// decodeGroups parses the feed body into metric groups, preserving the
// response order of groups and records. A body that is not a sequence of
// groups is a format error: the whole fetch is rejected and no partial
// result is returned. Individual field values, however, are coerced to
// strings here and left to the field normalizer downstream.
func decodeGroups(body []byte) ([]models.MetricGroup, error) {
	var wire []wireGroup
	if err := json.Unmarshal(body, &wire); err != nil {
		return nil, errFormatInvalid(err)
	}

	groups := make([]models.MetricGroup, 0, len(wire))
	for _, w := range wire {
		group := models.MetricGroup{
			Name:    w.MetricName,
			Records: make([]models.MetricRecord, 0, len(w.Information)),
		}
		for _, info := range w.Information {
			record := make(models.MetricRecord, len(info))
			for field, value := range info {
				record[field] = coerceString(value)
			}
			group.Records = append(group.Records, record)
		}
		groups = append(groups, group)
	}

	return groups, nil
}

// coerceString renders a wire value as a raw string for the normalizer.
// Unrepresentable values become the empty string, which normalizes to 0.
func coerceString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}
