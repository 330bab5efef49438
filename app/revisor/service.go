// Package revisor contains services for retrieving extra details of articles.
package revisor

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/Semior001/newsreader/app/news"
	"golang.org/x/exp/slog"
)

// Details are the extra details of an article, extracted from its page.
type Details struct {
	Byline  string
	Excerpt string
	Summary string
}

// Service retrieves article pages and extracts details from them.
type Service struct {
	log       *slog.Logger
	cl        *http.Client
	extractor Extractor
	chatGPT   *ChatGPT // optional
}

// NewService creates new service, chatGPT may be nil to skip summaries.
func NewService(lg *slog.Logger, cl *http.Client, extractor Extractor, chatGPT *ChatGPT) *Service {
	return &Service{
		log:       lg,
		cl:        cl,
		extractor: extractor,
		chatGPT:   chatGPT,
	}
}

// Details fetches the article page and extracts its details.
func (s *Service) Details(ctx context.Context, a news.Article) (Details, error) {
	if a.URL == "" {
		return Details{}, errors.New("article has no url")
	}

	s.log.DebugCtx(ctx, "retrieving article details", slog.String("url", a.URL))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.URL, http.NoBody)
	if err != nil {
		return Details{}, fmt.Errorf("build request: %w", err)
	}

	resp, err := s.cl.Do(req)
	if err != nil {
		return Details{}, fmt.Errorf("do request: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			s.log.WarnCtx(ctx, "failed to close response body", slog.Any("err", err))
		}
	}()

	ok := resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices
	if !ok {
		return Details{}, fmt.Errorf("bad status code: %d", resp.StatusCode)
	}

	doc, err := s.extractor.Extract(resp.Body, a.URL)
	if err != nil {
		return Details{}, fmt.Errorf("extract article: %w", err)
	}

	if doc.Title == "" {
		doc.Title = a.Title
	}

	d := Details{Byline: doc.Byline, Excerpt: doc.Excerpt}

	if s.chatGPT == nil {
		return d, nil
	}

	if d.Summary, err = s.chatGPT.BulletPoints(ctx, doc); err != nil {
		return Details{}, fmt.Errorf("get bullet points: %w", err)
	}

	return d, nil
}
