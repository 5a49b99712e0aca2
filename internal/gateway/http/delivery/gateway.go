package delivery

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"courier-sync/internal/entities"
	"courier-sync/internal/pkg/config"
	retrierconfig "courier-sync/pkg/retrier"
	"courier-sync/pkg/retrier/backoff_adapter"
)

const serviceName = "delivery-service"

const (
	initialInterval = 200 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 10 * time.Second
	maxRetries      = 2
	randomization   = 0.5
	multiplier      = 2.0

	maxErrorBody = 1 << 10
)

type DeliveryGateway struct {
	baseURL        string
	client         doer
	retrier        retrier
	session        SessionProvider
	requestTimeout time.Duration
	probeTimeout   time.Duration
}

func New(cfg *config.Remote, client doer, session SessionProvider) *DeliveryGateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		MaxRetries:      maxRetries,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     IsTransient,
	}

	return &DeliveryGateway{
		baseURL:        strings.TrimRight(cfg.BaseURL, "/"),
		client:         client,
		retrier:        backoff_adapter.New(retryConfig),
		session:        session,
		requestTimeout: cfg.RequestTimeout,
		probeTimeout:   cfg.ProbeTimeout,
	}
}

// Send performs one attempt of a queued mutation and returns the response status.
// Retrying is the caller's business, so only a missing response is an error.
func (g *DeliveryGateway) Send(ctx context.Context, req entities.RemoteRequest) (int, error) {
	start := time.Now()

	ctx, cancel := context.WithTimeout(ctx, g.requestTimeout)
	defer cancel()

	code, _, err := g.do(ctx, req.Method, req.Endpoint, req.Payload)

	GatewayRequestDuration.WithLabelValues(serviceName, req.Operation.String(), codeLabel(code, err)).
		Observe(time.Since(start).Seconds())

	if err != nil {
		return 0, fmt.Errorf("gateway delivery, send %s %s: %w", req.Method, req.Endpoint, err)
	}
	return code, nil
}

// FetchStops returns the remote snapshot of the active itinerary.
func (g *DeliveryGateway) FetchStops(ctx context.Context) ([]entities.Stop, error) {
	var stops []remoteStop

	err := g.executeWithMetrics(ctx, "FetchStops", func(ctx context.Context) error {
		body, err := g.call(ctx, http.MethodGet, "/stops", nil)
		if err != nil {
			return err
		}
		return json.Unmarshal(body, &stops)
	})
	if err != nil {
		return nil, fmt.Errorf("gateway delivery, fetch stops: %w", err)
	}

	return toDomainList(stops), nil
}

// Optimize asks the remote for a nearest-neighbor order of the active itinerary.
func (g *DeliveryGateway) Optimize(ctx context.Context, start *entities.Coordinates) ([]entities.Stop, error) {
	payload, err := json.Marshal(fromStart(start))
	if err != nil {
		return nil, fmt.Errorf("gateway delivery, optimize: %w", err)
	}

	var stops []remoteStop
	err = g.executeWithMetrics(ctx, "Optimize", func(ctx context.Context) error {
		body, err := g.call(ctx, http.MethodPost, "/stops/optimize", payload)
		if err != nil {
			return err
		}
		return json.Unmarshal(body, &stops)
	})
	if err != nil {
		return nil, fmt.Errorf("gateway delivery, optimize: %w", err)
	}

	return toDomainList(stops), nil
}

// Ping probes the remote. Any HTTP answer counts as reachable.
func (g *DeliveryGateway) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, g.probeTimeout)
	defer cancel()

	if _, _, err := g.do(ctx, http.MethodHead, "/stops", nil); err != nil {
		return fmt.Errorf("gateway delivery, ping: %w", err)
	}
	return nil
}

func (g *DeliveryGateway) call(ctx context.Context, method, endpoint string, payload []byte) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, g.requestTimeout)
	defer cancel()

	code, body, err := g.do(ctx, method, endpoint, payload)
	if err != nil {
		return nil, err
	}
	if code < 200 || code >= 300 {
		if len(body) > maxErrorBody {
			body = body[:maxErrorBody]
		}
		return nil, &StatusError{Code: code, Body: strings.TrimSpace(string(body))}
	}
	return body, nil
}

func (g *DeliveryGateway) do(ctx context.Context, method, endpoint string, payload []byte) (int, []byte, error) {
	var reqBody io.Reader
	if len(payload) > 0 {
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+endpoint, reqBody)
	if err != nil {
		return 0, nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	session, err := g.session.GetSession(ctx)
	if err != nil {
		return 0, nil, fmt.Errorf("load session: %w", err)
	}
	if session != nil && session.Token != "" {
		req.Header.Set("Authorization", "Bearer "+session.Token)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return 0, nil, err
		}
		return 0, nil, fmt.Errorf("%w: %w", ErrNoResponse, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: read body: %w", ErrNoResponse, err)
	}
	return resp.StatusCode, body, nil
}

func (g *DeliveryGateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	code := errorCode(err)
	GatewayRequestDuration.WithLabelValues(serviceName, method, code).Observe(time.Since(start).Seconds())
	if attempt > 1 {
		GatewayRetriesTotal.WithLabelValues(serviceName, method, code).Inc()
	}

	return err
}

func codeLabel(code int, err error) string {
	if err != nil {
		return "NO_RESPONSE"
	}
	return strconv.Itoa(code)
}

func errorCode(err error) string {
	if err == nil {
		return "OK"
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return strconv.Itoa(statusErr.Code)
	}
	if errors.Is(err, ErrNoResponse) {
		return "NO_RESPONSE"
	}
	return "UNKNOWN"
}
