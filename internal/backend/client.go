// Package backend provides a typed HTTP client for the hosted data service.
// The service exposes relational tables over a REST interface; this client
// wraps the wire protocol behind a small fluent query API so the data layer
// never builds URLs or headers by hand.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// ErrNotFound is returned by Query.Single when a row lookup matches nothing.
var ErrNotFound = errors.New("backend: row not found")

// Config captures the connection settings for the data service.
type Config struct {
	// BaseURL is the REST root of the service, e.g. https://proj.example.co/rest/v1.
	BaseURL string
	// APIKey is the anonymous key sent with every request.
	APIKey string
	// Timeout bounds each individual request. Defaults to 10s.
	Timeout time.Duration
	// Client lets tests inject a transport. Optional.
	Client *http.Client
	Logger *slog.Logger
}

// Client issues requests against the data service. It is safe for
// concurrent use.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
	logger  *slog.Logger
}

// NewClient validates the config and returns a ready client.
func NewClient(cfg Config) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		return nil, errors.New("backend base url is required")
	}
	if _, err := url.Parse(base); err != nil {
		return nil, fmt.Errorf("parse backend base url: %w", err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	hc := cfg.Client
	if hc == nil {
		hc = &http.Client{Timeout: timeout}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL: base,
		apiKey:  strings.TrimSpace(cfg.APIKey),
		client:  hc,
		logger:  logger,
	}, nil
}

// From starts a query against the named table.
func (c *Client) From(table string) *Query {
	return &Query{client: c, table: table, selectCols: "*"}
}

// Query accumulates filters and modifiers for a single table request.
// It is a one-shot builder; do not reuse after executing.
type Query struct {
	client     *Client
	table      string
	selectCols string
	filters    []filter
	orderBy    string
	orderDesc  bool
	limit      int
	single     bool
}

type filter struct {
	column string
	op     string
	value  string
}

// Select restricts the returned columns. Defaults to "*".
func (q *Query) Select(columns string) *Query {
	q.selectCols = columns
	return q
}

// Eq adds an equality filter.
func (q *Query) Eq(column string, value any) *Query {
	q.filters = append(q.filters, filter{column: column, op: "eq", value: fmt.Sprint(value)})
	return q
}

// Order sorts the result by column, ascending unless desc is set.
func (q *Query) Order(column string, desc bool) *Query {
	q.orderBy = column
	q.orderDesc = desc
	return q
}

// Limit caps the number of returned rows.
func (q *Query) Limit(n int) *Query {
	q.limit = n
	return q
}

// Single asks the service for exactly one row. Get then decodes into a
// struct pointer instead of a slice, and a miss yields ErrNotFound.
func (q *Query) Single() *Query {
	q.single = true
	return q
}

// Get executes the query and decodes the response body into dst. For list
// queries dst should be a pointer to a slice; with Single it should be a
// pointer to a struct.
func (q *Query) Get(ctx context.Context, dst any) error {
	req, err := q.newRequest(ctx, http.MethodGet, nil)
	if err != nil {
		return err
	}
	if q.single {
		req.Header.Set("Accept", "application/vnd.pgrst.object+json")
	}

	body, _, err := q.client.do(req)
	if err != nil {
		if q.single && isNoSingleRow(err) {
			return ErrNotFound
		}
		return err
	}

	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("decode %s response: %w", q.table, err)
	}
	return nil
}

// Count executes a HEAD request and returns the exact number of rows the
// query matches, without transferring row data.
func (q *Query) Count(ctx context.Context) (int, error) {
	req, err := q.newRequest(ctx, http.MethodHead, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Prefer", "count=exact")

	_, header, err := q.client.do(req)
	if err != nil {
		return 0, err
	}

	return parseContentRangeTotal(header.Get("Content-Range"))
}

// Insert writes one row. The record must marshal to a JSON object.
func (q *Query) Insert(ctx context.Context, record any) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode %s insert: %w", q.table, err)
	}
	req, err := q.newRequest(ctx, http.MethodPost, payload)
	if err != nil {
		return err
	}
	req.Header.Set("Prefer", "return=minimal")

	_, _, err = q.client.do(req)
	return err
}

// Update patches the rows matched by the query's filters.
func (q *Query) Update(ctx context.Context, record any) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode %s update: %w", q.table, err)
	}
	req, err := q.newRequest(ctx, http.MethodPatch, payload)
	if err != nil {
		return err
	}
	req.Header.Set("Prefer", "return=minimal")

	_, _, err = q.client.do(req)
	return err
}

// Delete removes the rows matched by the query's filters.
func (q *Query) Delete(ctx context.Context) error {
	req, err := q.newRequest(ctx, http.MethodDelete, nil)
	if err != nil {
		return err
	}
	_, _, err = q.client.do(req)
	return err
}

func (q *Query) newRequest(ctx context.Context, method string, body []byte) (*http.Request, error) {
	if strings.TrimSpace(q.table) == "" {
		return nil, errors.New("backend: table name is required")
	}

	params := url.Values{}
	if method == http.MethodGet || method == http.MethodHead {
		params.Set("select", q.selectCols)
	}
	for _, f := range q.filters {
		params.Add(f.column, f.op+"."+f.value)
	}
	if q.orderBy != "" {
		dir := "asc"
		if q.orderDesc {
			dir = "desc"
		}
		params.Set("order", q.orderBy+"."+dir)
	}
	if q.limit > 0 {
		params.Set("limit", strconv.Itoa(q.limit))
	}

	endpoint := q.client.baseURL + "/" + url.PathEscape(q.table)
	if encoded := params.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("create %s request: %w", q.table, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

func (c *Client) do(req *http.Request) ([]byte, http.Header, error) {
	if c.apiKey != "" {
		req.Header.Set("apikey", c.apiKey)
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("backend request %s %s: %w", req.Method, req.URL.Path, err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.logger.Warn("close backend response body", "error", cerr)
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("read backend response: %w", err)
	}

	c.logger.Debug("backend request",
		"method", req.Method,
		"path", req.URL.Path,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, resp.Header, decodeError(resp.StatusCode, body)
	}
	return body, resp.Header, nil
}

// Error is a structured failure reported by the data service.
type Error struct {
	Status  int
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details"`
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("backend %d", e.Status)
}

func decodeError(status int, body []byte) error {
	e := &Error{Status: status}
	if len(body) > 0 {
		// Best effort; the body may not be JSON on gateway errors.
		_ = json.Unmarshal(body, e)
	}
	if e.Message == "" {
		e.Message = strings.TrimSpace(string(body))
	}
	return e
}

// isNoSingleRow reports whether the service rejected a Single request
// because zero rows matched. The service signals this with a 406.
func isNoSingleRow(err error) bool {
	var be *Error
	return errors.As(err, &be) && be.Status == http.StatusNotAcceptable
}

func parseContentRangeTotal(header string) (int, error) {
	// Format is "0-24/315" or "*/0" for an empty table.
	_, total, ok := strings.Cut(header, "/")
	if !ok {
		return 0, fmt.Errorf("backend: malformed Content-Range %q", header)
	}
	n, err := strconv.Atoi(total)
	if err != nil {
		return 0, fmt.Errorf("backend: parse Content-Range total %q: %w", header, err)
	}
	return n, nil
}
