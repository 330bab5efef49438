package revisor

import (
	"fmt"
	"io"
	"net/url"
	"regexp"
	"strings"

	"github.com/go-shiori/go-readability"
)

// Document is the readable content of an article page.
type Document struct {
	URL     string
	Title   string
	Byline  string
	Excerpt string
	Content string
}

// Extractor extracts readable content from HTML pages.
type Extractor struct{}

// NewExtractor creates new Extractor.
func NewExtractor() Extractor { return Extractor{} }

// Extract extracts article from an HTML page.
func (e Extractor) Extract(rd io.Reader, pageURL string) (Document, error) {
	u, _ := url.Parse(pageURL) // links stay relative if url is malformed

	doc, err := readability.FromReader(rd, u)
	if err != nil {
		return Document{}, fmt.Errorf("parse html: %w", err)
	}

	return Document{
		URL:     pageURL,
		Title:   e.sanitize(doc.Title),
		Byline:  e.sanitize(doc.Byline),
		Excerpt: e.sanitize(doc.Excerpt),
		Content: e.sanitize(doc.TextContent),
	}, nil
}

var spaces = regexp.MustCompile(`\s+`)

func (e Extractor) sanitize(s string) string {
	// nbsp
	s = strings.ReplaceAll(s, "\u00a0", " ")
	return strings.TrimSpace(spaces.ReplaceAllString(s, " "))
}
