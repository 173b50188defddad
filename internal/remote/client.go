// Package remote calls the remote task service's single RPC-style endpoint.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/oauth2"

	"github.com/adanyl0v/taskgate/internal/credential"
)

const (
	// Client identification headers expected by the remote service.
	AppName    = "taskgate"
	ClientType = "local-gateway"
	BundleID   = "dev.adanyl0v.taskgate"

	// DefaultTimeout bounds a single remote call.
	DefaultTimeout = 30 * time.Second

	apiPath = "/api/internal"

	genericRemoteError = "remote request failed"
)

type Caller interface {
	// Call sends {method, params} and returns the envelope on ok=true.
	Call(ctx context.Context, method string, params Params) (*Envelope, error)
}

type Client struct {
	logger      zerolog.Logger
	baseURL     string
	httpClient  *http.Client
	timeout     time.Duration
	invalidator credential.Invalidator
}

type Option func(*Client)

// WithTimeout sets the per-call timeout. Zero disables it.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// New returns a Client posting to baseURL (scheme and host, no path). The
// bearer header comes from resolver on every call. When resolver caches,
// a 401 from the remote drops the cached credential.
func New(logger zerolog.Logger, baseURL string, resolver credential.Resolver, opts ...Option) *Client {
	c := &Client{
		logger:  logger,
		baseURL: baseURL,
		httpClient: &http.Client{
			Transport: &oauth2.Transport{
				Source: credential.TokenSource(resolver),
				Base:   http.DefaultTransport,
			},
		},
		timeout: DefaultTimeout,
	}
	if inv, ok := resolver.(credential.Invalidator); ok {
		c.invalidator = inv
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Call posts to {baseURL}/api/internal?{method}. The method is appended as
// is, without query encoding; every method name this gateway sends is a
// plain identifier.
func (c *Client) Call(ctx context.Context, method string, params Params) (*Envelope, error) {
	if params == nil {
		params = Params{}
	}
	body, err := json.Marshal(request{Method: method, Params: params})
	if err != nil {
		return nil, fmt.Errorf("encode %s request: %w", method, err)
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+apiPath+"?"+method, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-App-Name", AppName)
	req.Header.Set("X-Client-Type", ClientType)
	req.Header.Set("X-Bundle-ID", BundleID)

	c.logger.Debug().Ctx(ctx).
		Str("method", method).
		Int("body_bytes", len(body)).
		Msg("calling remote")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, credential.ErrNoCredential) {
			return nil, unwrapURLError(err)
		}
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	if resp.StatusCode == http.StatusUnauthorized && c.invalidator != nil {
		c.logger.Warn().Ctx(ctx).
			Str("method", method).
			Msg("remote rejected credential, dropping cache")
		c.invalidator.Invalidate()
	}

	var envelope Envelope
	err = json.Unmarshal(raw, &envelope)
	if err != nil {
		c.logger.Error().Ctx(ctx).
			Err(err).
			Str("method", method).
			Int("status", resp.StatusCode).
			Msg("failed to parse remote response")
		return nil, fmt.Errorf("%w: %s returned status %d with non-JSON body",
			ErrInvalidResponse, method, resp.StatusCode)
	}

	if !envelope.OK {
		message := genericRemoteError
		if envelope.Error != nil && envelope.Error.Message != "" {
			message = envelope.Error.Message
		}
		c.logger.Warn().Ctx(ctx).
			Str("method", method).
			Int("status", resp.StatusCode).
			Str("error", message).
			Msg("remote reported failure")
		return nil, &RemoteError{Message: message, StatusCode: resp.StatusCode}
	}

	envelope.Raw = raw
	c.logger.Debug().Ctx(ctx).
		Str("method", method).
		Int("status", resp.StatusCode).
		Msg("remote call succeeded")
	return &envelope, nil
}

// unwrapURLError strips the *url.Error added by http.Client so the caller
// sees the resolver's own message.
func unwrapURLError(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return urlErr.Err
	}
	return err
}
