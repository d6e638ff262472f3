// Package api is the REST transport for the rentadmin backend.
//
// Every call is a fresh request/response round trip: the client keeps no
// cache and performs no retries, so failures propagate immediately to the
// caller. Authenticated requests carry "Authorization: Bearer <token>" from
// the injected session source; the token being absent fails the call with
// common.ErrUnauthorized before anything hits the wire.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/rentadmin/internal/client/session"
	"github.com/dmitrijs2005/rentadmin/internal/common"
	"github.com/dmitrijs2005/rentadmin/internal/logging"
)

const contentTypeJSON = "application/json"

type Client struct {
	baseURL string
	http    *http.Client
	tokens  session.Source
	log     logging.Logger
}

func New(baseURL string, tokens session.Source, log logging.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		tokens:  tokens,
		log:     log,
	}
}

// Get fetches path and decodes the JSON response into out.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.send(ctx, http.MethodGet, path, nil, "", out, true)
}

// PostJSON sends in as a JSON body and decodes the response into out
// (out may be nil).
func (c *Client) PostJSON(ctx context.Context, path string, in, out any) error {
	body, err := encodeJSON(in)
	if err != nil {
		return err
	}
	return c.send(ctx, http.MethodPost, path, body, contentTypeJSON, out, true)
}

// PostPublicJSON is PostJSON without the bearer token; only the login
// endpoint is unauthenticated.
func (c *Client) PostPublicJSON(ctx context.Context, path string, in, out any) error {
	body, err := encodeJSON(in)
	if err != nil {
		return err
	}
	return c.send(ctx, http.MethodPost, path, body, contentTypeJSON, out, false)
}

func (c *Client) PutJSON(ctx context.Context, path string, in, out any) error {
	body, err := encodeJSON(in)
	if err != nil {
		return err
	}
	return c.send(ctx, http.MethodPut, path, body, contentTypeJSON, out, true)
}

// Patch sends an empty-bodied PATCH, used for status-only transitions.
func (c *Client) Patch(ctx context.Context, path string, out any) error {
	return c.send(ctx, http.MethodPatch, path, nil, "", out, true)
}

func (c *Client) Delete(ctx context.Context, path string) error {
	return c.send(ctx, http.MethodDelete, path, nil, "", nil, true)
}

// PostForm sends a multipart/form-data body (user avatars, listing images).
func (c *Client) PostForm(ctx context.Context, path string, body *bytes.Buffer, contentType string, out any) error {
	return c.send(ctx, http.MethodPost, path, body, contentType, out, true)
}

func (c *Client) PutForm(ctx context.Context, path string, body *bytes.Buffer, contentType string, out any) error {
	return c.send(ctx, http.MethodPut, path, body, contentType, out, true)
}

func encodeJSON(in any) (io.Reader, error) {
	if in == nil {
		return nil, nil
	}
	data, err := json.Marshal(in)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}
	return bytes.NewReader(data), nil
}

func (c *Client) send(ctx context.Context, method, path string, body io.Reader, contentType string, out any, withAuth bool) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	requestID := uuid.NewString()
	req.Header.Set(common.RequestIDHeaderName, requestID)

	if withAuth {
		token, err := c.tokens.Token()
		if err != nil {
			return err
		}
		req.Header.Set(common.AuthHeaderName, common.AuthScheme+" "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error(ctx, "request failed", "method", method, "path", path, "request_id", requestID, "err", err)
		return fmt.Errorf("%s %s: %w", method, path, common.ErrUnavailable)
	}
	defer resp.Body.Close()

	if err := mapStatus(resp); err != nil {
		c.log.Warn(ctx, "request rejected", "method", method, "path", path,
			"request_id", requestID, "status", resp.StatusCode, "err", err)
		return err
	}

	c.log.Debug(ctx, "request ok", "method", method, "path", path, "request_id", requestID, "status", resp.StatusCode)

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
