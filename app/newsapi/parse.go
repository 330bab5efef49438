package newsapi

import (
	"encoding/json"
	"strings"

	"github.com/Semior001/newsreader/app/news"
	"github.com/samber/lo"
	"golang.org/x/net/html"
)

type articleJSON struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Source      struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"source"`
}

type responseJSON struct {
	Status       string         `json:"status"`
	Code         string         `json:"code"`
	Message      string         `json:"message"`
	TotalResults *int           `json:"totalResults"`
	Articles     *[]articleJSON `json:"articles"`
}

// Parse decodes the top-headlines response body into the list of articles
// and the total number of results across all pages.
func Parse(body string) (articles []news.Article, totalResults int, err error) {
	var resp responseJSON
	if err = json.Unmarshal([]byte(body), &resp); err != nil {
		return nil, 0, &ParseError{Reason: "malformed document", Err: err}
	}

	if resp.Status == "error" {
		return nil, 0, &TransportError{Code: resp.Code, Message: resp.Message}
	}

	if resp.Articles == nil {
		return nil, 0, &ParseError{Reason: "missing articles field"}
	}

	if resp.TotalResults == nil {
		return nil, 0, &ParseError{Reason: "missing totalResults field"}
	}

	articles = lo.Map(*resp.Articles, func(a articleJSON, _ int) news.Article {
		return news.Article{
			Title:       a.Title,
			Source:      a.Source.Name,
			Description: plainText(a.Description),
			URL:         a.URL,
		}
	})

	return articles, *resp.TotalResults, nil
}

// plainText strips the markup some publishers leave in descriptions.
func plainText(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return s
	}

	sb := &strings.Builder{}
	z := html.NewTokenizer(strings.NewReader(s))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return strings.Join(strings.Fields(sb.String()), " ")
		case html.TextToken:
			_, _ = sb.Write(z.Text())
		case html.StartTagToken, html.EndTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			switch string(name) {
			case "br", "p", "div", "li":
				_ = sb.WriteByte(' ')
			}
		}
	}
}
