// Package orders is the HTTP client of the Orders service, which owns the authoritative order
// status.
package orders

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"tracking/internal/adapters/out/remote"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/ports"
)

const serviceName = "orders"

type putStatusRequest struct {
	ActorID string `json:"actorId"`
	Status  string `json:"status"`
}

// Client implements ports.OrdersService.
type Client struct {
	remote *remote.Client
}

var _ ports.OrdersService = (*Client)(nil)

// NewClient creates an Orders service client rooted at baseURL. Every call is bounded
// by timeout and failures are reported to failures.
func NewClient(baseURL string, timeout time.Duration, failures remote.FailureRecorder, logger *slog.Logger) *Client {
	return &Client{remote: remote.NewClient(serviceName, baseURL, timeout, failures, logger)}
}

// PutOrderStatus mirrors a status change. A 2xx answer acknowledges it; 4xx answers are a
// refusal (false, nil); 5xx answers and transport failures are errors.
func (c *Client) PutOrderStatus(ctx context.Context, orderID kernel.UUID, actorID kernel.UUID, status string) (bool, error) {
	const op = "PutOrderStatus"

	path := "/orders/" + orderID.String() + "/status"
	body := putStatusRequest{ActorID: actorID.String(), Status: status}
	code, err := c.remote.Do(ctx, op, http.MethodPut, path, body, nil)
	if err != nil {
		return false, err
	}

	switch {
	case code >= 200 && code <= 299:
		return true, nil
	case code >= 400 && code <= 499:
		c.remote.Fail(ctx, op, &remote.StatusError{Method: http.MethodPut, Path: path, Code: code})
		return false, nil
	default:
		err = &remote.StatusError{Method: http.MethodPut, Path: path, Code: code}
		c.remote.Fail(ctx, op, err)
		return false, err
	}
}
