package collector

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"

	"IndicatorScope/internal/model"
)

// DefaultWorldBankURL is the public World Bank API v2 root.
const DefaultWorldBankURL = "https://api.worldbank.org/v2"

// WorldBankFetcher implements Fetcher using the World Bank indicators API.
type WorldBankFetcher struct {
	BaseURL string
	Client  *http.Client
	Limiter *rate.Limiter
}

// NewWorldBankFetcher creates a fetcher with optional proxy support.
// requestsPerSecond <= 0 disables pacing.
func NewWorldBankFetcher(baseURL, proxyURL string, requestsPerSecond float64, timeout time.Duration) *WorldBankFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	if baseURL == "" {
		baseURL = DefaultWorldBankURL
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	limit := rate.Inf
	if requestsPerSecond > 0 {
		limit = rate.Limit(requestsPerSecond)
	}
	return &WorldBankFetcher{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
		Limiter: rate.NewLimiter(limit, 1),
	}
}

func (f *WorldBankFetcher) Name() string { return "worldbank" }

// wbObservation is one element of the second array in an API response.
type wbObservation struct {
	Date  string   `json:"date"`
	Value *float64 `json:"value"`
}

// wbMessage is returned in place of the page header when a request is rejected.
type wbMessage struct {
	Message []struct {
		ID    string `json:"id"`
		Key   string `json:"key"`
		Value string `json:"value"`
	} `json:"message"`
}

func (f *WorldBankFetcher) FetchSeries(ctx context.Context, country, indicator string, startYear, endYear int) (model.DataSeries, error) {
	u := fmt.Sprintf("%s/country/%s/indicator/%s?date=%d:%d&format=json&per_page=1000",
		f.BaseURL, url.PathEscape(country), url.PathEscape(indicator), startYear, endYear)

	if err := f.Limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("worldbank rate limit: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("worldbank fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("worldbank read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("worldbank: status %d, body: %s", resp.StatusCode, string(body))
	}
	return decodeWorldBank(body)
}

// decodeWorldBank parses a `[header, [observations...]]` document. Null
// values become model.MissingValue.
func decodeWorldBank(body []byte) (model.DataSeries, error) {
	var doc []json.RawMessage
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("worldbank decode: %w", err)
	}
	if len(doc) < 2 {
		if len(doc) == 1 {
			var msg wbMessage
			if err := json.Unmarshal(doc[0], &msg); err == nil && len(msg.Message) > 0 {
				return nil, fmt.Errorf("worldbank api error: %s", msg.Message[0].Value)
			}
		}
		return nil, fmt.Errorf("worldbank: error in request parameters")
	}

	var obs []wbObservation
	if err := json.Unmarshal(doc[1], &obs); err != nil {
		return nil, fmt.Errorf("worldbank decode observations: %w", err)
	}

	series := make(model.DataSeries, 0, len(obs))
	for _, o := range obs {
		year, err := strconv.Atoi(strings.TrimSpace(o.Date))
		if err != nil {
			return nil, fmt.Errorf("worldbank: bad date %q: %w", o.Date, err)
		}
		value := model.MissingValue
		if o.Value != nil {
			value = *o.Value
		}
		series = append(series, model.DataPoint{Year: year, Value: value})
	}
	return series, nil
}
