// Package netsuite implements the SuiteQL extraction client: token-based
// request signing, paginated query execution and row post-processing.
package netsuite

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/dghubble/oauth1"
)

const (
	defaultTimeout = 30 * time.Second
	defaultRetries = 3

	suiteQLPath = "/services/rest/query/v1/suiteql"
)

// Client executes signed SuiteQL queries against one NetSuite account.
type Client struct {
	accountID string
	baseURL   string
	http      *http.Client
	timeout   time.Duration
	retries   uint64
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the SuiteTalk base URL. Used for tests and
// sandbox deployments.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(u, "/")
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithRetries sets the transport retry budget per page request.
func WithRetries(n int) Option {
	return func(c *Client) {
		if n >= 0 {
			c.retries = uint64(n)
		}
	}
}

// NewClient creates a SuiteQL client signing every request with the given
// token-based auth material. The OAuth realm is the account id with dashes
// replaced by underscores, uppercased, as SuiteTalk requires.
func NewClient(accountID, consumerKey, consumerSecret, token, tokenSecret string, opts ...Option) *Client {
	cfg := oauth1.Config{
		ConsumerKey:    consumerKey,
		ConsumerSecret: consumerSecret,
		Realm:          strings.ToUpper(strings.ReplaceAll(accountID, "-", "_")),
		Signer:         &oauth1.HMAC256Signer{ConsumerSecret: consumerSecret},
	}

	c := &Client{
		accountID: accountID,
		baseURL:   fmt.Sprintf("https://%s.suitetalk.api.netsuite.com", strings.ToLower(accountID)),
		http:      cfg.Client(oauth1.NoContext, oauth1.NewToken(token, tokenSecret)),
		timeout:   defaultTimeout,
		retries:   defaultRetries,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// AccountID returns the NetSuite account id this client is bound to.
func (c *Client) AccountID() string {
	return c.accountID
}
