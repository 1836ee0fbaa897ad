// Package bitquery is a thin GraphQL client for the Bitquery streaming API.
//
// Its one method, Execute, never returns a Go error: every failure mode —
// missing credential, transport fault, non-200 status, empty body,
// undecodable JSON — is folded into the Err field of the returned Result.
// Callers branch on the envelope, not on an error value, which keeps the
// downstream normalizers total.
package bitquery

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultURL is the Bitquery streaming GraphQL endpoint.
const DefaultURL = "https://streaming.bitquery.io/graphql"

// errNoAPIKey is the degraded-mode envelope. The literal matches what
// existing consumers of this surface already grep for.
const errNoAPIKey = "BITQUERY_API_KEY not provided"

// requestTimeout bounds every upstream round trip. There are no retries;
// on timeout the caller gets the transport-failure envelope.
const requestTimeout = 30 * time.Second

// invalidJSONPreview caps how much of an undecodable body is quoted back.
const invalidJSONPreview = 200

// Result is the outcome of one query: exactly one of Data or Err is set.
type Result struct {
	Data map[string]any
	Err  string
}

// Errored reports whether the result carries an error envelope.
func (r Result) Errored() bool { return r.Err != "" }

// Doer abstracts the HTTP client so tests can count and fake round trips.
type Doer interface {
	Do(*http.Request) (*http.Response, error)
}

// Client executes GraphQL queries against a single Bitquery endpoint.
type Client struct {
	url    string
	apiKey string
	doer   Doer
	logger *slog.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithDoer replaces the default HTTP client. The replacement is expected to
// enforce its own timeout.
func WithDoer(d Doer) Option {
	return func(c *Client) { c.doer = d }
}

// WithLogger sets the logger used for per-request debug output.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// NewClient creates a Bitquery client. An empty apiKey is allowed and puts
// the client in degraded mode: Execute answers every call with the
// credential error envelope without touching the network.
func NewClient(url, apiKey string, opts ...Option) *Client {
	c := &Client{
		url:    url,
		apiKey: strings.TrimSpace(apiKey),
		doer: &http.Client{
			Timeout: requestTimeout,
		},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// graphqlRequest is the standard GraphQL request envelope. Variables are
// omitted from the body entirely when nil or empty.
type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

// Execute sends one GraphQL query and returns the decoded payload or an
// error envelope. It performs a single POST with no retries.
func (c *Client) Execute(ctx context.Context, query string, variables map[string]any) Result {
	if c.apiKey == "" {
		return Result{Err: errNoAPIKey}
	}

	log := c.logger.With(slog.String("request_id", uuid.NewString()))

	body, err := json.Marshal(graphqlRequest{Query: query, Variables: variables})
	if err != nil {
		return Result{Err: fmt.Sprintf("Request failed: %v", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return Result{Err: fmt.Sprintf("Request failed: %v", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	// Bitquery accepts different auth schemes depending on the account
	// plan; it is not documented which one a given key needs, so both
	// headers carry the same secret.
	req.Header.Set("X-API-KEY", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	log.DebugContext(ctx, "bitquery: executing query",
		slog.Int("body_bytes", len(body)),
		slog.Int("variables", len(variables)),
	)

	resp, err := c.doer.Do(req)
	if err != nil {
		log.WarnContext(ctx, "bitquery: request failed", slog.String("error", err.Error()))
		return Result{Err: fmt.Sprintf("Request failed: %v", err)}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{Err: fmt.Sprintf("Request failed: %v", err)}
	}

	if resp.StatusCode != http.StatusOK {
		log.WarnContext(ctx, "bitquery: non-200 response", slog.Int("status", resp.StatusCode))
		return Result{Err: fmt.Sprintf("HTTP %d: %s", resp.StatusCode, string(raw))}
	}

	if strings.TrimSpace(string(raw)) == "" {
		return Result{Err: "Empty response from API"}
	}

	// UseNumber keeps the upstream's arbitrary-precision amounts intact;
	// they are carried as decimal strings all the way out.
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var payload map[string]any
	if err := dec.Decode(&payload); err != nil {
		return Result{Err: fmt.Sprintf("Invalid JSON response: %s...", preview(raw))}
	}

	log.DebugContext(ctx, "bitquery: query succeeded", slog.Int("response_bytes", len(raw)))
	return Result{Data: payload}
}

func preview(raw []byte) string {
	if len(raw) <= invalidJSONPreview {
		return string(raw)
	}
	return string(raw[:invalidJSONPreview])
}
