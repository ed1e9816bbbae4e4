// Package users is the HTTP client of the Users service, the identity source for vendor
// addresses and user types.
package users

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"tracking/internal/adapters/out/remote"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/ports"
)

const serviceName = "users"

// ErrEmptyUserType is the cause attached when a user lookup answers without a type.
var ErrEmptyUserType = errors.New("users service returned an empty user type")

type locationResponse struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

type userTypeResponse struct {
	Type string `json:"type"`
}

// Client implements ports.UsersService.
type Client struct {
	remote *remote.Client
}

var _ ports.UsersService = (*Client)(nil)

// NewClient creates a Users service client rooted at baseURL.
func NewClient(baseURL string, timeout time.Duration, failures remote.FailureRecorder, logger *slog.Logger) *Client {
	return &Client{remote: remote.NewClient(serviceName, baseURL, timeout, failures, logger)}
}

// GetVendorLocation returns nil without error when the service does not know the vendor.
func (c *Client) GetVendorLocation(ctx context.Context, vendorID kernel.UUID) (*kernel.Location, error) {
	const op = "GetVendorLocation"

	var body locationResponse
	path := "/vendors/" + vendorID.String() + "/location"
	code, err := c.remote.Do(ctx, op, http.MethodGet, path, nil, &body)
	if err != nil {
		return nil, err
	}

	switch {
	case code == http.StatusNotFound:
		return nil, nil
	case code < 200 || code > 299:
		err = &remote.StatusError{Method: http.MethodGet, Path: path, Code: code}
		c.remote.Fail(ctx, op, err)
		return nil, err
	case body.Latitude == nil || body.Longitude == nil:
		return nil, nil
	}

	location, err := kernel.NewLocation(*body.Latitude, *body.Longitude)
	if err != nil {
		c.remote.Fail(ctx, op, err)
		return nil, err
	}
	return &location, nil
}

// GetUserType reports known=false when the service does not know the user.
func (c *Client) GetUserType(ctx context.Context, userID kernel.UUID) (string, bool, error) {
	const op = "GetUserType"

	var body userTypeResponse
	path := "/users/" + userID.String() + "/type"
	code, err := c.remote.Do(ctx, op, http.MethodGet, path, nil, &body)
	if err != nil {
		return "", false, err
	}

	switch {
	case code == http.StatusNotFound:
		return "", false, nil
	case code < 200 || code > 299:
		err = &remote.StatusError{Method: http.MethodGet, Path: path, Code: code}
		c.remote.Fail(ctx, op, err)
		return "", false, err
	case body.Type == "":
		c.remote.Fail(ctx, op, ErrEmptyUserType)
		return "", false, ErrEmptyUserType
	}
	return body.Type, true, nil
}
