package glean

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/pkg/errors"
)

const (
	defaultTimeout = 30 * time.Second
	defaultRetries = 3

	bulkDocumentsPath = "/api/index/v1/bulkindexdocuments"
	bulkUsersPath     = "/api/index/v1/bulkindexusers"
)

// Client submits bulk uploads to one Glean account's indexing API.
type Client struct {
	datasource string
	token      string
	baseURL    string
	http       *http.Client
	timeout    time.Duration
	retries    uint64
	now        func() time.Time
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the indexing API base URL. Used for tests.
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

// WithRetries sets the transport retry budget per upload.
func WithRetries(n int) Option {
	return func(c *Client) {
		if n >= 0 {
			c.retries = uint64(n)
		}
	}
}

// WithClock overrides the upload id clock. Used for tests.
func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		c.now = now
	}
}

// NewClient creates an indexing client for the given Glean account.
func NewClient(account, token, datasource string, opts ...Option) *Client {
	c := &Client{
		datasource: datasource,
		token:      token,
		baseURL:    fmt.Sprintf("https://%s-be.glean.com", account),
		http:       &http.Client{},
		timeout:    defaultTimeout,
		retries:    defaultRetries,
		now:        time.Now,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// uploadID derives a batch identifier from the current time in milliseconds.
// Uniqueness per run is all that is required.
func (c *Client) uploadID() string {
	return strconv.FormatInt(c.now().UnixMilli(), 10)
}

// BulkIndexDocuments submits the full document set for one run as a single
// full-replace upload. A non-success response is fatal for the run and is
// surfaced as a SubmissionError.
func (c *Client) BulkIndexDocuments(ctx context.Context, docs []Document) error {
	upload := documentUpload{
		UploadID:           c.uploadID(),
		IsFirstPage:        true,
		IsLastPage:         true,
		ForceRestartUpload: true,
		Datasource:         c.datasource,
		Documents:          docs,
	}

	return c.post(ctx, c.baseURL+bulkDocumentsPath, upload)
}

// BulkIndexUsers submits the datasource user list as a single upload.
func (c *Client) BulkIndexUsers(ctx context.Context, users []User) error {
	upload := userUpload{
		UploadID:                      c.uploadID(),
		IsFirstPage:                   "true",
		IsLastPage:                    "true",
		ForceRestartUpload:            "true",
		Datasource:                    c.datasource,
		Users:                         users,
		DisableStaleDataDeletionCheck: "true",
	}

	return c.post(ctx, c.baseURL+bulkUsersPath, upload)
}

// post issues one bearer-authorized upload with bounded retry on transport
// failures. HTTP error statuses are never retried: a rejected batch stays
// rejected.
func (c *Client) post(ctx context.Context, url string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrap(err, "marshal upload payload")
	}

	op := func() error {
		reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
		defer cancel()

		req, err := http.NewRequestWithContext(reqCtx, http.MethodPost, url, bytes.NewReader(body))
		if err != nil {
			return backoff.Permanent(errors.Wrap(err, "build upload request"))
		}

		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+c.token)

		resp, err := c.http.Do(req)
		if err != nil {
			return errors.Wrap(err, "upload request")
		}

		defer func() {
			_ = resp.Body.Close()
		}()

		respBody, err := io.ReadAll(resp.Body)
		if err != nil {
			return errors.Wrap(err, "read upload response")
		}

		if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
			return backoff.Permanent(&SubmissionError{Status: resp.StatusCode, Body: string(respBody)})
		}

		return nil
	}

	bo := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), c.retries), ctx)

	return backoff.Retry(op, bo)
}
