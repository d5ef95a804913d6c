package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/mentorly-admin/internal/client/models"
	"github.com/dmitrijs2005/mentorly-admin/internal/common"
)

type envelope struct {
	Success    bool               `json:"success"`
	Message    string             `json:"message"`
	Data       json.RawMessage    `json:"data"`
	Pagination *models.Pagination `json:"pagination"`
}

// rest is the codec shared by AuthClient and Client.
type rest struct {
	baseURL string
	http    *http.Client
}

func newRest(baseURL string, hc *http.Client) rest {
	if hc == nil {
		hc = http.DefaultClient
	}
	return rest{baseURL: strings.TrimRight(baseURL, "/"), http: hc}
}

func (r *rest) newRequest(ctx context.Context, method, path string, query url.Values, in any) (*http.Request, error) {
	u := r.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}

// send performs req and returns the body of a 2xx answer.
func (r *rest) send(req *http.Request) ([]byte, error) {
	resp, err := r.http.Do(req)
	if err != nil {
		return nil, mapTransportError(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %w", ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{Status: resp.StatusCode, Message: serverMessage(data)}
	}
	return data, nil
}

// do sends a JSON request and decodes the data field of the answer into out.
func (r *rest) do(ctx context.Context, method, path string, query url.Values, in, out any) (*models.Pagination, error) {
	req, err := r.newRequest(ctx, method, path, query, in)
	if err != nil {
		return nil, err
	}

	data, err := r.send(req)
	if err != nil {
		return nil, err
	}

	return decode(data, out)
}

func decode(data []byte, out any) (*models.Pagination, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	if out != nil && len(env.Data) > 0 && string(env.Data) != "null" {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return nil, fmt.Errorf("decode response data: %w", err)
		}
	}
	return env.Pagination, nil
}

func serverMessage(data []byte) string {
	var env envelope
	if err := json.Unmarshal(data, &env); err == nil && env.Message != "" {
		return env.Message
	}
	return strings.TrimSpace(string(data))
}

func mapTransportError(err error) error {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	case errors.Is(err, common.ErrorUnauthorized):
		// the session layer gave up on the request
		return err
	default:
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
}

func setInt(q url.Values, key string, v int) {
	if v > 0 {
		q.Set(key, strconv.Itoa(v))
	}
}

func setString(q url.Values, key, v string) {
	if v != "" {
		q.Set(key, v)
	}
}

func pathID(prefix, id string) string {
	return prefix + "/" + url.PathEscape(id)
}

// Client is the session-aware API client.
type Client struct {
	rest
}

// NewClient returns a Client for baseURL. hc should carry a session.Transport.
func NewClient(baseURL string, hc *http.Client) *Client {
	return &Client{rest: newRest(baseURL, hc)}
}

// Ping checks that the API answers.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodGet, "/health", nil, nil, nil)
	return err
}

func list[T any](ctx context.Context, r *rest, path string, q url.Values) (*models.Page[T], error) {
	var items []T
	p, err := r.do(ctx, http.MethodGet, path, q, nil, &items)
	if err != nil {
		return nil, err
	}

	page := &models.Page[T]{Items: items}
	if p != nil {
		page.Pagination = *p
	}
	return page, nil
}
