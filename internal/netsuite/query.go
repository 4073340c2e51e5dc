package netsuite

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/cenkalti/backoff/v4"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

type queryPayload struct {
	Q string `json:"q"`
}

type pageLink struct {
	Rel  string `json:"rel"`
	Href string `json:"href"`
}

type queryEnvelope struct {
	Items []Row      `json:"items"`
	Links []pageLink `json:"links"`
}

// Run executes a SuiteQL query and follows continuation links until the
// result set is exhausted.
//
// A failure on the first page is fatal for the query and returns no rows.
// A failure mid-pagination stops the walk and returns the rows accumulated
// so far with partial set to true; the caller decides whether an incomplete
// set is acceptable.
func (c *Client) Run(ctx context.Context, query string) (rows []Row, partial bool, err error) {
	payload, err := json.Marshal(queryPayload{Q: query})
	if err != nil {
		return nil, false, errors.Wrap(err, "marshal suiteql payload")
	}

	page, err := c.postPage(ctx, c.baseURL+suiteQLPath, payload)
	if err != nil {
		return nil, false, err
	}

	rows = append(rows, page.Items...)

	// Pagination posts the same query payload to each "next" link.
	for next := nextLink(page.Links); next != ""; next = nextLink(page.Links) {
		page, err = c.postPage(ctx, next, payload)
		if err != nil {
			log.Warn().Err(err).Int("rows", len(rows)).Msg("suiteql pagination failed, keeping partial result")
			return rows, true, nil
		}

		rows = append(rows, page.Items...)
	}

	return rows, false, nil
}

// nextLink extracts the continuation link from a response envelope.
func nextLink(links []pageLink) string {
	for _, l := range links {
		if l.Rel == "next" {
			return l.Href
		}
	}

	return ""
}

// postPage issues one signed page request with bounded retry on transport
// failures. HTTP error statuses are not retried.
func (c *Client) postPage(ctx context.Context, url string, payload []byte) (*queryEnvelope, error) {
	var env queryEnvelope

	op := func() error {
		reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
		defer cancel()

		req, err := http.NewRequestWithContext(reqCtx, http.MethodPost, url, bytes.NewReader(payload))
		if err != nil {
			return backoff.Permanent(errors.Wrap(err, "build suiteql request"))
		}

		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Prefer", "transient, maxpagesize=1000")

		resp, err := c.http.Do(req)
		if err != nil {
			return errors.Wrap(err, "suiteql request")
		}

		defer func() {
			_ = resp.Body.Close()
		}()

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return errors.Wrap(err, "read suiteql response")
		}

		if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
			return backoff.Permanent(&RequestError{Status: resp.StatusCode, Body: string(body)})
		}

		dec := json.NewDecoder(bytes.NewReader(body))
		dec.UseNumber()

		env = queryEnvelope{}
		if err := dec.Decode(&env); err != nil {
			return backoff.Permanent(errors.Wrap(err, "decode suiteql response"))
		}

		return nil
	}

	bo := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), c.retries), ctx)
	if err := backoff.Retry(op, bo); err != nil {
		return nil, err
	}

	return &env, nil
}
