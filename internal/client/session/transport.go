package session

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/mentorly-admin/internal/common"
	"github.com/google/uuid"
)

type ctxKey string

const retriedKey ctxKey = "retried"

// WithRetried marks requests made with ctx as already retried: a 401 on them
// is returned as is, without a refresh.
func WithRetried(ctx context.Context) context.Context {
	return context.WithValue(ctx, retriedKey, true)
}

func isRetried(ctx context.Context) bool {
	v, _ := ctx.Value(retriedKey).(bool)
	return v
}

var exemptPaths = []string{
	common.LoginPath,
	common.RegisterPath,
	common.LogoutPath,
	common.RefreshTokenPath,
}

func isExempt(path string) bool {
	for _, p := range exemptPaths {
		if strings.Contains(path, p) {
			return true
		}
	}
	return false
}

// Transport authorizes outbound requests with the session's bearer token and
// recovers from access-token expiry through its Manager.
type Transport struct {
	Base    http.RoundTripper
	Manager *Manager
}

// NewTransport wraps base, or http.DefaultTransport when base is nil.
func NewTransport(m *Manager, base http.RoundTripper) *Transport {
	return &Transport{Base: base, Manager: m}
}

func (t *Transport) base() http.RoundTripper {
	if t.Base != nil {
		return t.Base
	}
	return http.DefaultTransport
}

// RoundTrip sends req with the session token. A 401 on a non-exempt request
// renews the token and replays req once.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	out, err := replayable(req)
	if err != nil {
		return nil, err
	}

	token := t.Manager.AccessToken()
	authorize(out, token)
	if out.Header.Get(common.RequestIDHeaderName) == "" {
		out.Header.Set(common.RequestIDHeaderName, uuid.NewString())
	}

	resp, err := t.base().RoundTrip(out)
	if err != nil {
		return nil, err
	}

	ctx := out.Context()
	if resp.StatusCode != http.StatusUnauthorized || isExempt(out.URL.Path) || isRetried(ctx) {
		return resp, nil
	}

	newToken, leader, err := t.Manager.refresh(ctx, token)
	if err != nil {
		if leader {
			return resp, nil
		}
		discard(resp)
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%w: %w", ErrSessionExpired, err)
	}
	discard(resp)

	retry, err := rewind(WithRetried(ctx), out)
	if err != nil {
		return nil, err
	}
	authorize(retry, newToken)

	return t.base().RoundTrip(retry)
}

func authorize(req *http.Request, token string) {
	if token == "" {
		req.Header.Del(common.AuthorizationHeaderName)
		return
	}
	req.Header.Set(common.AuthorizationHeaderName, common.BearerValue(token))
}

// replayable clones req so that its body can be sent a second time.
func replayable(req *http.Request) (*http.Request, error) {
	out := req.Clone(req.Context())
	if req.Body == nil || req.Body == http.NoBody || req.GetBody != nil {
		return out, nil
	}

	data, err := io.ReadAll(req.Body)
	_ = req.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("buffer request body: %w", err)
	}

	out.GetBody = func() (io.ReadCloser, error) {
		return io.NopCloser(bytes.NewReader(data)), nil
	}
	out.Body, _ = out.GetBody()
	return out, nil
}

func rewind(ctx context.Context, req *http.Request) (*http.Request, error) {
	out := req.Clone(ctx)
	if req.GetBody == nil {
		return out, nil
	}
	body, err := req.GetBody()
	if err != nil {
		return nil, fmt.Errorf("rewind request body: %w", err)
	}
	out.Body = body
	return out, nil
}

func discard(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}
