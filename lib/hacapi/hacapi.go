// Package hacapi is a client for an externally hosted Home Access
// Center scraping API, which performs the same portal scrape
// server-side and returns the records as JSON. It backs the lite app
// variant; the shapes mirror lib/scrapers/homeaccess.
package hacapi

import (
	"context"
	"fmt"
	"time"

	"hacview-backend/lib/scrapers/homeaccess"
	"hacview-backend/lib/telemetry"

	"github.com/go-resty/resty/v2"
)

type Client struct {
	Http *resty.Client
}

type ClientOptions struct {
	BaseUrl string
	// Timeout applies to every API request; zero means 30s.
	Timeout time.Duration
}

func NewClient(opts ClientOptions) *Client {
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = time.Second * 30
	}

	client := resty.New()
	client.SetBaseURL(opts.BaseUrl)
	client.SetTimeout(timeout)

	telemetry.InstrumentResty(client, "hacapi/http")

	return &Client{Http: client}
}

// Credentials are passed through to the API on every call; the API is
// stateless and performs its own portal login per request.
type Credentials struct {
	Username string
	Password string
}

func get[T any](ctx context.Context, c *Client, path string, creds Credentials) (T, error) {
	var out T
	res, err := c.Http.R().
		SetContext(ctx).
		SetQueryParam("username", creds.Username).
		SetQueryParam("password", creds.Password).
		SetResult(&out).
		Get(path)
	if err != nil {
		return out, err
	}
	if res.IsError() {
		return out, fmt.Errorf("%s: api responded with status %d", path, res.StatusCode())
	}
	return out, nil
}

func (c *Client) FetchInfo(ctx context.Context, creds Credentials) (homeaccess.StudentInfo, error) {
	return get[homeaccess.StudentInfo](ctx, c, "/api/info", creds)
}

func (c *Client) FetchCurrentClasses(ctx context.Context, creds Credentials) ([]homeaccess.Course, error) {
	return get[[]homeaccess.Course](ctx, c, "/api/currentclasses", creds)
}

func (c *Client) FetchSchedule(ctx context.Context, creds Credentials) ([]homeaccess.ScheduleEntry, error) {
	return get[[]homeaccess.ScheduleEntry](ctx, c, "/api/schedule", creds)
}
