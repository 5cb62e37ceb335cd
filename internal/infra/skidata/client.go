// Package skidata talks to the ticketing authority that prices lifepass products
// and reports live device and kiosk slot state.
package skidata

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"lifepass-admin/internal/pkg/config"
	"lifepass-admin/internal/pkg/errs"
	"lifepass-admin/internal/pkg/jwt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	scopePricing = "pricing"
	scopeDevices = "devices"

	maxBodyBytes = 1 << 20
)

var (
	ErrUnreachable      = errs.New("skidata unreachable")
	ErrUnexpectedStatus = errs.New("skidata answered with an unexpected status")
	ErrMalformedPayload = errs.New("skidata payload is malformed")
	ErrNotFound         = errs.New("skidata resource not found")
)

type Client struct {
	http    *http.Client
	baseURL string
	tokens  *jwt.Service
	logger  *slog.Logger
	tracer  trace.Tracer
}

func NewClient(cfg config.SkiDataConfig, tokens *jwt.Service, logger *slog.Logger) *Client {
	return &Client{
		http:    &http.Client{Timeout: cfg.Timeout},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		tokens:  tokens,
		logger:  logger,
		tracer:  otel.Tracer("lifepass-admin/infra/skidata"),
	}
}

type response struct {
	status int
	body   []byte
}

// do sends one authenticated request. Only network failures are errors here;
// status handling is left to the caller.
func (c *Client) do(ctx context.Context, method, path, scope string, payload any) (*response, error) {
	ctx, span := c.tracer.Start(ctx, "skidata "+method, trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("http.method", method), attribute.String("http.path", path)))
	defer span.End()

	resp, err := c.send(ctx, method, path, scope, payload)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.Int("http.status_code", resp.status))
	if resp.status >= http.StatusInternalServerError {
		span.SetStatus(codes.Error, http.StatusText(resp.status))
	}
	return resp, nil
}

func (c *Client) send(ctx context.Context, method, path, scope string, payload any) (*response, error) {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, errs.Wrap(err, "encode skidata request")
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, errs.Wrap(err, "build skidata request")
	}
	token, err := c.tokens.GenerateToken(scope)
	if err != nil {
		return nil, errs.Wrap(err, "sign skidata token")
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errs.Mark(errs.Wrapf(err, "%s %s", method, path), ErrUnreachable)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, errs.Mark(errs.Wrapf(err, "read %s %s", method, path), ErrUnreachable)
	}

	c.logger.Debug("skidata call",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds())

	return &response{status: resp.StatusCode, body: raw}, nil
}

func unexpected(resp *response, path string) error {
	return errs.Mark(errs.Newf("%s: status %d", path, resp.status), ErrUnexpectedStatus)
}

func malformed(path, reason string) error {
	return errs.Mark(errs.Newf("%s: %s", path, reason), ErrMalformedPayload)
}
