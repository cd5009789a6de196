package users

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/alitto/pond/v2"
	"github.com/amp-labs/amp-state/envutil"
	"github.com/amp-labs/amp-state/errors"
	"github.com/amp-labs/amp-state/httpclient"
	"github.com/amp-labs/amp-state/task"
)

// DefaultEndpoint is the remote users collection fetched when no endpoint is
// configured. It can be overridden with the USERS_ENDPOINT environment
// variable or the WithEndpoint option.
const DefaultEndpoint = "https://jsonplaceholder.typicode.com/users"

// Fetcher retrieves the remote users list and dispatches the fetch
// lifecycle's intents. Build one with NewFetcher and reuse it; the
// underlying HTTP client pools connections.
type Fetcher struct {
	client    *http.Client
	endpoint  string
	lifecycle *task.Lifecycle[[]User]
}

// FetcherOption customizes a Fetcher.
type FetcherOption func(*Fetcher)

// WithClient replaces the default HTTP client.
func WithClient(client *http.Client) FetcherOption {
	return func(f *Fetcher) {
		f.client = client
	}
}

// WithEndpoint replaces the users collection URL.
func WithEndpoint(endpoint string) FetcherOption {
	return func(f *Fetcher) {
		f.endpoint = endpoint
	}
}

// NewFetcher builds a Fetcher with a pooled, DNS-caching HTTP client and the
// endpoint from the USERS_ENDPOINT environment variable, falling back to
// DefaultEndpoint.
func NewFetcher(options ...FetcherOption) *Fetcher {
	fetcher := &Fetcher{
		endpoint: envutil.String("USERS_ENDPOINT",
			envutil.Default(DefaultEndpoint)).
			ValueOrElse(DefaultEndpoint),
	}

	for _, option := range options {
		if option != nil {
			option(fetcher)
		}
	}

	if fetcher.client == nil {
		fetcher.client = httpclient.New(httpclient.EnableDNSCache)
	}

	fetcher.lifecycle = task.New(TaskName, fetcher.fetch)

	return fetcher
}

// Fetch starts one fetch lifecycle: a pending intent is dispatched before
// this method returns, the request runs on the background worker pool, and
// exactly one fulfilled or rejected intent follows. Concurrent fetches are
// not deduplicated; whichever resolves last wins the users list.
func (f *Fetcher) Fetch(ctx context.Context, d task.Dispatcher) pond.Task { //nolint:ireturn
	return f.lifecycle.Run(ctx, d)
}

// fetch performs the HTTP GET and decodes the response body. Transport
// failures, non-2xx statuses, malformed bodies, and invalid records all
// surface as a single error whose message becomes the rejected payload.
func (f *Fetcher) fetch(ctx context.Context) ([]User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("building users request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	rsp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching users: %w", err)
	}

	defer func() {
		_ = rsp.Body.Close()
	}()

	if rsp.StatusCode < http.StatusOK || rsp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%w: fetching users returned %s", errors.ErrBadStatus, rsp.Status)
	}

	var list []User
	if err := json.NewDecoder(rsp.Body).Decode(&list); err != nil {
		return nil, fmt.Errorf("decoding users response: %w", err)
	}

	if err := Validate(list); err != nil {
		return nil, err
	}

	return list, nil
}
