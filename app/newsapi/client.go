// Package newsapi implements a client for the NewsAPI top-headlines endpoint.
package newsapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Semior001/newsreader/app/news"
	"github.com/Semior001/newsreader/pkg/logx"
	"github.com/go-pkgz/requester"
	"github.com/go-pkgz/requester/middleware"
	"golang.org/x/exp/slog"
)

// DefaultBaseURL is the base URL of the public NewsAPI.
const DefaultBaseURL = "https://newsapi.org/v2/"

// maxErrorBody limits the amount of an unsuccessful response read for the error details.
const maxErrorBody = 64 * 1024

// Params defines parameters for the client.
type Params struct {
	BaseURL   string
	APIKey    string
	PageSize  int
	Timeout   time.Duration
	UserAgent string
}

// Request describes a top-headlines query.
type Request struct {
	Country  string
	Category string
	Page     int

	Query   string // full-text search
	Sources string // comma-separated source names or IDs
	SortBy  string // relevancy, publishedAt or popularity
}

// Client makes requests to NewsAPI.
type Client struct {
	log      *slog.Logger
	rq       *requester.Requester
	baseURL  string
	apiKey   string
	pageSize int
}

// NewClient makes a new Client.
func NewClient(lg *slog.Logger, p Params) *Client {
	if p.BaseURL == "" {
		p.BaseURL = DefaultBaseURL
	}

	if p.PageSize <= 0 {
		p.PageSize = news.DefaultPageSize
	}

	mws := []middleware.RoundTripperHandler{
		logx.LoggingRoundTripper(lg, logx.RoundTripperOpts{
			Level:         slog.LevelDebug,
			SecretHeaders: []string{"X-Api-Key", "Authorization"},
			SecretParams:  []string{"apiKey"},
		}),
	}

	if p.UserAgent != "" {
		mws = append(mws, middleware.Header("User-Agent", p.UserAgent))
	}

	return &Client{
		log:      lg,
		rq:       requester.New(http.Client{Timeout: p.Timeout}, mws...),
		baseURL:  p.BaseURL,
		apiKey:   p.APIKey,
		pageSize: p.PageSize,
	}
}

// URL builds the top-headlines URL for the given request.
// Empty optional parameters are omitted, all values are escaped.
func (c *Client) URL(req Request) string {
	q := url.Values{}
	setIf := func(k, v string) {
		if v != "" {
			q.Set(k, v)
		}
	}

	setIf("country", req.Country)
	setIf("category", req.Category)
	setIf("q", req.Query)
	setIf("sources", req.Sources)
	setIf("sortBy", req.SortBy)
	setIf("apiKey", c.apiKey)
	q.Set("pageSize", strconv.Itoa(c.pageSize))
	if req.Page > 0 {
		q.Set("page", strconv.Itoa(req.Page))
	}

	return strings.TrimSuffix(c.baseURL, "/") + "/top-headlines?" + q.Encode()
}

// TopHeadlines fetches and parses a single page of headlines.
func (c *Client) TopHeadlines(ctx context.Context, req Request) (news.Page, error) {
	body, err := c.Fetch(ctx, c.URL(req))
	if err != nil {
		return news.Page{}, err
	}

	articles, total, err := Parse(body)
	if err != nil {
		return news.Page{}, err
	}

	c.log.DebugCtx(ctx, "headlines fetched",
		slog.Int("page", req.Page),
		slog.Int("articles", len(articles)),
		slog.Int("total_results", total))

	return news.Page{
		Number:       req.Page,
		Size:         c.pageSize,
		TotalResults: total,
		Articles:     articles,
	}, nil
}

// Fetch makes a GET request to the given URL and returns the response body.
// Any failure, including a non-successful status, is returned as *TransportError.
func (c *Client) Fetch(ctx context.Context, u string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return "", &TransportError{Err: fmt.Errorf("build request: %w", err)}
	}

	resp, err := c.rq.Do(req)
	if err != nil {
		// url.Error carries the full url with the api key
		var uerr *url.Error
		if errors.As(err, &uerr) {
			err = uerr.Err
		}
		return "", &TransportError{Err: fmt.Errorf("do request: %w", err)}
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.log.WarnCtx(ctx, "failed to close response body", slog.Any("err", err))
		}
	}()

	ok := resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices
	if !ok {
		terr := &TransportError{StatusCode: resp.StatusCode}

		var apiErr struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		}
		if err := json.NewDecoder(io.LimitReader(resp.Body, maxErrorBody)).Decode(&apiErr); err == nil {
			terr.Code, terr.Message = apiErr.Code, apiErr.Message
		}

		return "", terr
	}

	bts, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &TransportError{StatusCode: resp.StatusCode, Err: fmt.Errorf("read body: %w", err)}
	}

	return string(bts), nil
}
