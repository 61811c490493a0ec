// Package gateway implements the storage gateway client over its HTTP
// resource API.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"

	"github.com/SaErPu/expense-tracker-web/internal/adapter/http/dto"
	"github.com/SaErPu/expense-tracker-web/internal/domain"
	"github.com/SaErPu/expense-tracker-web/internal/infrastructure/metrics"
)

// IdempotencyKeyHeader carries a per-mutation key so a duplicated submit
// cannot create two rows server-side. Mutations are never retried by this
// client; the key covers accidental double submission only.
const IdempotencyKeyHeader = "Idempotency-Key"

// Config holds gateway client settings.
type Config struct {
	BaseURL string
	Timeout time.Duration

	// Retry policy for reads. Writes are never retried: a failed
	// mutation surfaces as Failed and the user must re-invoke it.
	RetryInitialInterval time.Duration
	RetryMaxInterval     time.Duration
	RetryMaxElapsedTime  time.Duration
}

// Client is the HTTP implementation of usecase.ExpenseGateway.
type Client struct {
	cfg     Config
	http    *http.Client
	logger  zerolog.Logger
	metrics *metrics.Metrics
}

// NewClient creates a gateway client. The per-call timeout comes from
// cfg.Timeout; expiry is reported as a gateway failure.
func NewClient(cfg Config, logger zerolog.Logger, m *metrics.Metrics) *Client {
	return &Client{
		cfg:     cfg,
		http:    &http.Client{Timeout: cfg.Timeout},
		logger:  logger,
		metrics: m,
	}
}

// List fetches the full expense set.
func (c *Client) List(ctx context.Context) ([]domain.Expense, error) {
	var out []dto.Expense
	if err := c.read(ctx, "list", http.MethodGet, "/expenses", &out); err != nil {
		return nil, err
	}
	return dto.ToDomainList(out), nil
}

// Get fetches a single expense by ID.
func (c *Client) Get(ctx context.Context, id int64) (domain.Expense, error) {
	var out dto.Expense
	if err := c.read(ctx, "get", http.MethodGet, fmt.Sprintf("/expenses/%d", id), &out); err != nil {
		return domain.Expense{}, err
	}
	return out.ToDomain(), nil
}

// Create persists a draft expense and returns it with its server-assigned
// ID.
func (c *Client) Create(ctx context.Context, expense domain.Expense) (domain.Expense, error) {
	body := dto.FromDomain(expense)
	body.ID = nil // the server assigns the identifier

	var out dto.Expense
	if err := c.write(ctx, "create", http.MethodPost, "/expenses", body, &out); err != nil {
		return domain.Expense{}, err
	}
	return out.ToDomain(), nil
}

// Update replaces the expense with the given ID; the body carries the
// full expense including its ID.
func (c *Client) Update(ctx context.Context, id int64, expense domain.Expense) (domain.Expense, error) {
	var out dto.Expense
	err := c.write(ctx, "update", http.MethodPut, fmt.Sprintf("/expenses/%d", id), dto.FromDomain(expense), &out)
	if err != nil {
		return domain.Expense{}, err
	}
	return out.ToDomain(), nil
}

// Delete removes the expense with the given ID.
func (c *Client) Delete(ctx context.Context, id int64) error {
	return c.write(ctx, "delete", http.MethodDelete, fmt.Sprintf("/expenses/%d", id), nil, nil)
}

// read performs an idempotent GET with exponential backoff on transient
// failures.
func (c *Client) read(ctx context.Context, op, method, path string, out any) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.cfg.RetryInitialInterval
	b.MaxInterval = c.cfg.RetryMaxInterval
	b.MaxElapsedTime = c.cfg.RetryMaxElapsedTime

	first := true

	return backoff.Retry(func() error {
		if !first {
			c.metrics.GatewayRetries.Inc()
			c.logger.Debug().Str("op", op).Msg("retrying gateway read")
		}
		first = false

		retryable, err := c.attempt(ctx, op, method, path, nil, out, false)
		if err != nil && !retryable {
			return backoff.Permanent(err)
		}
		return err
	}, backoff.WithContext(b, ctx))
}

// write performs a mutation exactly once.
func (c *Client) write(ctx context.Context, op, method, path string, payload, out any) error {
	_, err := c.attempt(ctx, op, method, path, payload, out, true)
	return err
}

func (c *Client) attempt(ctx context.Context, op, method, path string, payload, out any, mutating bool) (retryable bool, err error) {
	var body []byte
	if payload != nil {
		body, err = json.Marshal(payload)
		if err != nil {
			return false, fmt.Errorf("encode request: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.cfg.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return false, fmt.Errorf("build request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if mutating {
		req.Header.Set(IdempotencyKeyHeader, ulid.Make().String())
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	c.metrics.GatewayDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())

	if err != nil {
		c.metrics.GatewayRequests.WithLabelValues(op, "error").Inc()
		return true, fmt.Errorf("%w: %s %s: %v", domain.ErrGatewayFailure, method, path, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		c.metrics.GatewayRequests.WithLabelValues(op, "success").Inc()
		if out != nil {
			if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
				return false, fmt.Errorf("%w: decode response: %v", domain.ErrGatewayFailure, err)
			}
		}
		return false, nil

	case resp.StatusCode == http.StatusNotFound:
		c.metrics.GatewayRequests.WithLabelValues(op, "not_found").Inc()
		return false, fmt.Errorf("%w: %s %s", domain.ErrExpenseNotFound, method, path)

	case resp.StatusCode >= 500:
		c.metrics.GatewayRequests.WithLabelValues(op, "error").Inc()
		return true, fmt.Errorf("%w: %s %s: status %d", domain.ErrGatewayFailure, method, path, resp.StatusCode)

	default:
		// 4xx other than 404: the request itself is wrong, retrying
		// cannot help.
		c.metrics.GatewayRequests.WithLabelValues(op, "error").Inc()
		return false, fmt.Errorf("%w: %s %s: status %d", domain.ErrGatewayFailure, method, path, resp.StatusCode)
	}
}
