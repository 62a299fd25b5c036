// Package loot fetches masterlist documents and version listings from the
// upstream LOOT repositories on GitHub.
package loot

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"sort"
	"time"

	"github.com/cenkalti/backoff/v4"
	goversion "github.com/hashicorp/go-version"
	"github.com/loadstone/loadstone/internal/core/domain"
	"github.com/loadstone/loadstone/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	defaultRawBase = "https://raw.githubusercontent.com/loot"
	defaultAPIBase = "https://api.github.com/repos/loot"

	maxRetries     = 4
	initialBackoff = 500 * time.Millisecond
)

// versionBranch matches numeric dotted masterlist branches such as "v0.26"
// or "0.21".
var versionBranch = regexp.MustCompile(`^v?\d+(\.\d+)*$`)

// Client implements ports.MasterlistSource against the GitHub raw-content
// and REST endpoints.
type Client struct {
	http    *http.Client
	rawBase string
	apiBase string
	log     ports.Logger
}

// Option tweaks a Client; used by tests to point at a stub server.
type Option func(*Client)

// WithBaseURLs overrides the raw-content and API endpoints.
func WithBaseURLs(rawBase, apiBase string) Option {
	return func(c *Client) {
		c.rawBase = rawBase
		c.apiBase = apiBase
	}
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		c.http = h
	}
}

// NewClient creates a Client with bounded retries and a request timeout.
func NewClient(log ports.Logger, opts ...Option) *Client {
	c := &Client{
		http:    &http.Client{Timeout: 30 * time.Second},
		rawBase: defaultRawBase,
		apiBase: defaultAPIBase,
		log:     log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch downloads the raw masterlist for a game at an explicit version tag,
// retrying transient failures with exponential backoff. A 404 is permanent:
// the version does not exist, retrying cannot help.
func (c *Client) Fetch(ctx context.Context, game domain.Game, version string) ([]byte, error) {
	url := fmt.Sprintf("%s/%s/%s/masterlist.yaml", c.rawBase, game.Repo(), version)

	var body []byte
	op := func() error {
		var err error
		body, err = c.get(ctx, url)
		return err
	}
	if err := backoff.Retry(op, c.retryPolicy(ctx)); err != nil {
		wrapped := zerr.With(zerr.Wrap(err, "failed to fetch masterlist"), "game", game.String())
		return nil, zerr.With(wrapped, "version", version)
	}
	c.log.Debug("fetched masterlist", "game", game.String(), "version", version, "bytes", len(body))
	return body, nil
}

// Versions lists the masterlist version branches for a game, sorted
// descending by dotted-version comparison so "0.26" sorts above "0.9".
func (c *Client) Versions(ctx context.Context, game domain.Game) ([]string, error) {
	url := fmt.Sprintf("%s/%s/branches?per_page=100", c.apiBase, game.Repo())

	var body []byte
	op := func() error {
		var err error
		body, err = c.get(ctx, url)
		return err
	}
	if err := backoff.Retry(op, c.retryPolicy(ctx)); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to list masterlist branches"),
			"game", game.String())
	}

	var branches []struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(body, &branches); err != nil {
		return nil, zerr.Wrap(err, "failed to decode branch listing")
	}

	type tagged struct {
		name   string
		parsed *goversion.Version
	}
	versions := make([]tagged, 0, len(branches))
	for _, b := range branches {
		if !versionBranch.MatchString(b.Name) {
			continue
		}
		v, err := goversion.NewVersion(b.Name)
		if err != nil {
			continue
		}
		versions = append(versions, tagged{name: b.Name, parsed: v})
	}
	if len(versions) == 0 {
		return nil, zerr.With(zerr.Wrap(domain.ErrNoVersions, "failed to list masterlist versions"), "game", game.String())
	}

	sort.Slice(versions, func(i, j int) bool {
		if versions[i].parsed.Equal(versions[j].parsed) {
			return versions[i].name > versions[j].name
		}
		return versions[i].parsed.GreaterThan(versions[j].parsed)
	})

	names := make([]string, len(versions))
	for i, v := range versions {
		names[i] = v.name
	}
	return names, nil
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, backoff.Permanent(err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusOK:
		return io.ReadAll(resp.Body)
	case resp.StatusCode == http.StatusNotFound:
		return nil, backoff.Permanent(zerr.With(zerr.New("not found"), "url", url))
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		err := zerr.With(zerr.New("request rejected"), "url", url)
		return nil, backoff.Permanent(zerr.With(err, "status", resp.StatusCode))
	default:
		err := zerr.With(zerr.New("upstream error"), "url", url)
		return nil, zerr.With(err, "status", resp.StatusCode)
	}
}

func (c *Client) retryPolicy(ctx context.Context) backoff.BackOffContext {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = initialBackoff
	return backoff.WithContext(backoff.WithMaxRetries(policy, maxRetries), ctx)
}

var _ ports.MasterlistSource = (*Client)(nil)
