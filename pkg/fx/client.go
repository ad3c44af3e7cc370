package fx

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/tobenna/walletdash/pkg/models"
)

// StatusError carries the transport status of a failed FX call so the
// effect layer can normalize it through the shared error taxonomy.
// Status 0 means the request never produced a response.
type StatusError struct {
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("network failure: %s", e.Message)
	}
	return fmt.Sprintf("fx api returned %d: %s", e.Status, e.Message)
}

// Client is a thin wrapper over an exchangerate-style HTTP API.
// No caching, no retry; every call is a single request-response.
type Client struct {
	baseURL    string
	accessKey  string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates an FX client. A nil httpClient falls back to a client
// with a 10s timeout.
func NewClient(baseURL, accessKey string, httpClient *http.Client, logger *zap.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		accessKey:  accessKey,
		httpClient: httpClient,
		logger:     logger,
	}
}

type latestResponse struct {
	Success   bool               `json:"success"`
	Base      string             `json:"base"`
	Date      string             `json:"date"`
	Timestamp int64              `json:"timestamp"`
	Rates     map[string]float64 `json:"rates"`
}

type convertResponse struct {
	Success bool `json:"success"`
	Query   struct {
		From   string  `json:"from"`
		To     string  `json:"to"`
		Amount float64 `json:"amount"`
	} `json:"query"`
	Info struct {
		Timestamp int64   `json:"timestamp"`
		Rate      float64 `json:"rate"`
	} `json:"info"`
	Result float64 `json:"result"`
}

type timeseriesResponse struct {
	Success   bool                          `json:"success"`
	StartDate string                        `json:"start_date"`
	EndDate   string                        `json:"end_date"`
	Base      string                        `json:"base"`
	Rates     map[string]map[string]float64 `json:"rates"`
}

// Latest fetches the current rate table for a base currency.
func (c *Client) Latest(ctx context.Context, base models.Currency, symbols []models.Currency) (*models.ExchangeRateSnapshot, error) {
	query := url.Values{}
	query.Set("base", string(base))
	query.Set("symbols", joinCurrencies(symbols))

	var payload latestResponse
	if err := c.get(ctx, "/latest", query, &payload); err != nil {
		return nil, err
	}

	rates := make(map[models.Currency]float64, len(payload.Rates))
	for code, rate := range payload.Rates {
		rates[models.Currency(code)] = rate
	}
	return &models.ExchangeRateSnapshot{
		Base:      models.Currency(payload.Base),
		Rates:     rates,
		Date:      payload.Date,
		Timestamp: payload.Timestamp,
	}, nil
}

// Convert converts an amount between two currencies at the current rate.
func (c *Client) Convert(ctx context.Context, from, to models.Currency, amount float64) (*models.ConversionResult, error) {
	query := url.Values{}
	query.Set("from", string(from))
	query.Set("to", string(to))
	query.Set("amount", strconv.FormatFloat(amount, 'f', -1, 64))

	var payload convertResponse
	if err := c.get(ctx, "/convert", query, &payload); err != nil {
		return nil, err
	}

	return &models.ConversionResult{
		From:      models.Currency(payload.Query.From),
		To:        models.Currency(payload.Query.To),
		Amount:    payload.Query.Amount,
		Rate:      payload.Info.Rate,
		Result:    payload.Result,
		Timestamp: time.Unix(payload.Info.Timestamp, 0),
	}, nil
}

// Historical fetches a daily rate series for one symbol against a base.
func (c *Client) Historical(ctx context.Context, base, symbol models.Currency, start, end time.Time) ([]models.RatePoint, error) {
	query := url.Values{}
	query.Set("base", string(base))
	query.Set("symbols", string(symbol))
	query.Set("start_date", start.Format("2006-01-02"))
	query.Set("end_date", end.Format("2006-01-02"))

	var payload timeseriesResponse
	if err := c.get(ctx, "/timeseries", query, &payload); err != nil {
		return nil, err
	}

	points := make([]models.RatePoint, 0, len(payload.Rates))
	for date, bySymbol := range payload.Rates {
		points = append(points, models.RatePoint{Date: date, Rate: bySymbol[string(symbol)]})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Date < points[j].Date })
	return points, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	query.Set("access_key", c.accessKey)
	endpoint := c.baseURL + path + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return &StatusError{Status: 0, Message: err.Error()}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("fx request failed", zap.String("path", path), zap.Error(err))
		return &StatusError{Status: 0, Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &StatusError{Status: resp.StatusCode, Message: resp.Status}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &StatusError{Status: 0, Message: fmt.Sprintf("malformed response: %v", err)}
	}
	return nil
}

func joinCurrencies(symbols []models.Currency) string {
	codes := make([]string, len(symbols))
	for i, s := range symbols {
		codes[i] = string(s)
	}
	return strings.Join(codes, ",")
}
