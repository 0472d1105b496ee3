// Package homeaccess scrapes a Home Access Center portal, the ASP.NET
// student-information system used by the district. The portal has no
// API and no stable markup contract, so everything here is keyed on
// the element ids and CSS class markers the portal renders today.
package homeaccess

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"hacview-backend/lib/telemetry"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("scrapers/homeaccess")

var (
	// ErrLoginFailed means the portal served the login form back
	// after a credentialed POST.
	ErrLoginFailed = errors.New("the portal rejected the provided credentials")
	// ErrMissingElement means a required element id or class marker
	// was absent from a page that otherwise loaded fine.
	ErrMissingElement = errors.New("expected portal markup is missing")
)

const (
	loginPath        = "/HomeAccess/Account/LogOn?ReturnUrl=%2fHomeAccess%2f"
	registrationPath = "/HomeAccess/Content/Student/Registration.aspx"
	assignmentsPath  = "/HomeAccess/Content/Student/Assignments.aspx"
	schedulePath     = "/HomeAccess/Content/Student/Classes.aspx"
)

// the portal rejects logins from clients that don't look like a
// browser
const userAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_9_4) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/36.0.1985.125 Safari/537.36"

// Client holds one authenticated portal session. It is built per
// request and thrown away with it; nothing here is safe to share.
type Client struct {
	BaseUrl *url.URL
	Http    *resty.Client
}

type ClientOptions struct {
	BaseUrl string
	// Timeout applies to every portal request; zero means 30s.
	Timeout time.Duration
}

func NewClient(ctx context.Context, opts ClientOptions) (*Client, error) {
	baseUrl, err := url.Parse(opts.BaseUrl)
	if err != nil {
		return nil, err
	}

	timeout := opts.Timeout
	if timeout == 0 {
		timeout = time.Second * 30
	}

	client := resty.New()
	client.SetBaseURL(opts.BaseUrl)
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	client.SetCookieJar(jar)
	client.SetHeader("user-agent", userAgent)
	client.SetRedirectPolicy(resty.DomainCheckRedirectPolicy(baseUrl.Hostname()))
	client.SetTimeout(timeout)

	telemetry.InstrumentResty(client, "scrapers/homeaccess/http")

	return &Client{
		BaseUrl: baseUrl,
		Http:    client,
	}, nil
}

// Login establishes the portal session: it fetches the login form for
// its anti-forgery token, then POSTs the token together with the
// credentials and the fixed ASP.NET form flags the portal expects.
// The portal answers 200 either way, so success is checked by whether
// the response still contains the login form.
func (c *Client) Login(ctx context.Context, username, password string) error {
	ctx, span := tracer.Start(ctx, "client:Login")
	defer span.End()

	res, err := c.Http.R().
		SetContext(ctx).
		Get(loginPath)
	if err != nil {
		span.SetStatus(codes.Error, "failed to fetch login form")
		return err
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewBuffer(res.Body()))
	if err != nil {
		span.SetStatus(codes.Error, "failed to parse login form")
		return err
	}

	token := doc.Find(`input[name="__RequestVerificationToken"]`).AttrOr("value", "")
	if token == "" {
		span.SetStatus(codes.Error, "failed to find verification token")
		return fmt.Errorf("anti-forgery token: %w", ErrMissingElement)
	}

	res, err = c.Http.R().
		SetContext(ctx).
		SetHeader("X-Requested-With", "XMLHttpRequest").
		SetHeader("Origin", c.BaseUrl.Hostname()).
		SetHeader("Referer", strings.TrimSuffix(c.BaseUrl.String(), "/")+loginPath).
		SetHeader("__RequestVerificationToken", token).
		SetFormData(map[string]string{
			"__RequestVerificationToken": token,
			"SCKTY00328510CustomEnabled": "False",
			"SCKTY00436568CustomEnabled": "False",
			"Database":                   "10",
			"VerificationOption":         "UsernamePassword",
			"LogOnDetails.UserName":      username,
			"tempUN":                     "",
			"tempPW":                     "",
			"LogOnDetails.Password":      password,
		}).
		Post(loginPath)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to make login request")
		return err
	}

	doc, err = goquery.NewDocumentFromReader(bytes.NewBuffer(res.Body()))
	if err != nil {
		span.SetStatus(codes.Error, "failed to parse login response")
		return err
	}
	if len(doc.Find(`input[name="LogOnDetails.UserName"]`).Nodes) > 0 {
		span.SetStatus(codes.Error, ErrLoginFailed.Error())
		return ErrLoginFailed
	}

	return nil
}

func (c *Client) fetchDocument(ctx context.Context, path string) (*goquery.Document, error) {
	res, err := c.Http.R().
		SetContext(ctx).
		Get(path)
	if err != nil {
		return nil, err
	}
	return goquery.NewDocumentFromReader(bytes.NewBuffer(res.Body()))
}
