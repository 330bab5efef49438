package newsapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/Semior001/newsreader/app/news"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

const twoArticles = `{
	"status": "ok",
	"totalResults": 12,
	"articles": [
		{
			"source": {"id": "the-verge", "name": "The Verge"},
			"title": "First title",
			"description": "First <b>bold</b> description &amp; more",
			"url": "https://example.com/1"
		},
		{
			"source": {"id": null, "name": "Reuters"},
			"title": "Second title",
			"description": null,
			"url": "https://example.com/2"
		}
	]
}`

func TestClient_URL(t *testing.T) {
	cl := NewClient(slog.Default(), Params{BaseURL: "https://newsapi.example/v2/", APIKey: "key"})

	u, err := url.Parse(cl.URL(Request{Country: "us", Category: "sci & tech", Page: 2}))
	require.NoError(t, err)

	assert.Equal(t, "newsapi.example", u.Host)
	assert.Equal(t, "/v2/top-headlines", u.Path)
	assert.Equal(t, url.Values{
		"country":  {"us"},
		"category": {"sci & tech"},
		"apiKey":   {"key"},
		"pageSize": {"5"},
		"page":     {"2"},
	}, u.Query())

	t.Run("optional parameters", func(t *testing.T) {
		u, err := url.Parse(cl.URL(Request{Country: "us", Query: "go?lang", Sources: "bbc-news", SortBy: "popularity"}))
		require.NoError(t, err)

		q := u.Query()
		assert.Equal(t, "go?lang", q.Get("q"))
		assert.Equal(t, "bbc-news", q.Get("sources"))
		assert.Equal(t, "popularity", q.Get("sortBy"))
		assert.False(t, q.Has("page"))
		assert.False(t, q.Has("category"))
	})
}

func TestClient_TopHeadlines(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/top-headlines", r.URL.Path)
		assert.Equal(t, "us", r.URL.Query().Get("country"))
		assert.Equal(t, "technology", r.URL.Query().Get("category"))
		assert.Equal(t, "key", r.URL.Query().Get("apiKey"))
		assert.Equal(t, "5", r.URL.Query().Get("pageSize"))
		assert.Equal(t, "1", r.URL.Query().Get("page"))
		assert.Equal(t, "newsreader-test", r.Header.Get("User-Agent"))

		w.Header().Set("Content-Type", "application/json")
		_, err := w.Write([]byte(twoArticles))
		require.NoError(t, err)
	}))
	defer ts.Close()

	cl := NewClient(slog.Default(), Params{
		BaseURL:   ts.URL,
		APIKey:    "key",
		Timeout:   time.Second,
		UserAgent: "newsreader-test",
	})

	page, err := cl.TopHeadlines(context.Background(), Request{Country: "us", Category: "technology", Page: 1})
	require.NoError(t, err)

	assert.Equal(t, news.Page{
		Number:       1,
		Size:         5,
		TotalResults: 12,
		Articles: []news.Article{
			{
				Title:       "First title",
				Source:      "The Verge",
				Description: "First bold description & more",
				URL:         "https://example.com/1",
			},
			{
				Title:  "Second title",
				Source: "Reuters",
				URL:    "https://example.com/2",
			},
		},
	}, page)
	assert.Equal(t, 3, page.TotalPages())
}

func TestClient_TopHeadlines_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		check  func(t *testing.T, err error)
	}{
		{
			name:   "api error",
			status: http.StatusUnauthorized,
			body:   `{"status":"error","code":"apiKeyInvalid","message":"Your API key is invalid."}`,
			check: func(t *testing.T, err error) {
				var terr *TransportError
				require.True(t, errors.As(err, &terr))
				assert.Equal(t, http.StatusUnauthorized, terr.StatusCode)
				assert.Equal(t, "apiKeyInvalid", terr.Code)
				assert.Equal(t, "Your API key is invalid.", terr.Message)
			},
		},
		{
			name:   "server error without document",
			status: http.StatusBadGateway,
			body:   `<html>bad gateway</html>`,
			check: func(t *testing.T, err error) {
				var terr *TransportError
				require.True(t, errors.As(err, &terr))
				assert.Equal(t, http.StatusBadGateway, terr.StatusCode)
				assert.Empty(t, terr.Code)
				assert.EqualError(t, err, "newsapi responded with status 502")
			},
		},
		{
			name:   "error status in successful response",
			status: http.StatusOK,
			body:   `{"status":"error","code":"rateLimited","message":"slow down"}`,
			check: func(t *testing.T, err error) {
				var terr *TransportError
				require.True(t, errors.As(err, &terr))
				assert.Equal(t, "rateLimited", terr.Code)
			},
		},
		{
			name:   "malformed body",
			status: http.StatusOK,
			body:   `{"articles": [`,
			check: func(t *testing.T, err error) {
				var perr *ParseError
				require.True(t, errors.As(err, &perr))
				assert.Equal(t, "malformed document", perr.Reason)
			},
		},
		{
			name:   "missing articles",
			status: http.StatusOK,
			body:   `{"status":"ok","totalResults":3}`,
			check: func(t *testing.T, err error) {
				var perr *ParseError
				require.True(t, errors.As(err, &perr))
				assert.EqualError(t, err, "parse response: missing articles field")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, err := w.Write([]byte(tt.body))
				require.NoError(t, err)
			}))
			defer ts.Close()

			cl := NewClient(slog.Default(), Params{BaseURL: ts.URL, Timeout: time.Second})
			_, err := cl.TopHeadlines(context.Background(), Request{Country: "us", Page: 1})
			require.Error(t, err)
			tt.check(t, err)
		})
	}
}

func TestClient_Fetch_NetworkFailure(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	u := ts.URL
	ts.Close()

	cl := NewClient(slog.Default(), Params{BaseURL: u, APIKey: "secret", Timeout: time.Second})
	_, err := cl.Fetch(context.Background(), cl.URL(Request{Country: "us"}))
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "secret")

	var terr *TransportError
	require.True(t, errors.As(err, &terr))
	assert.Zero(t, terr.StatusCode)
	assert.Error(t, terr.Unwrap())
}

func TestParse(t *testing.T) {
	t.Run("empty page", func(t *testing.T) {
		articles, total, err := Parse(`{"status":"ok","totalResults":0,"articles":[]}`)
		require.NoError(t, err)
		assert.Empty(t, articles)
		assert.Zero(t, total)
	})

	t.Run("missing total results", func(t *testing.T) {
		_, _, err := Parse(`{"status":"ok","articles":[]}`)
		var perr *ParseError
		require.True(t, errors.As(err, &perr))
		assert.Equal(t, "missing totalResults field", perr.Reason)
	})
}

func TestPlainText(t *testing.T) {
	assert.Equal(t, "no markup", plainText("no markup"))
	assert.Equal(t, "one two", plainText("<p>one</p><p>two</p>"))
	assert.Equal(t, "Tom & Jerry", plainText("Tom &amp; Jerry"))
	assert.Equal(t, "inline bold text", plainText("inline <b>bold</b> text"))
}
