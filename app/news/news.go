// Package news contains models of the headlines being read.
package news

// DefaultPageSize is the number of articles requested per page.
const DefaultPageSize = 5

// Article is a single headline.
type Article struct {
	Title       string `json:"title"`
	Source      string `json:"source"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

// Page is a single page of headlines, as returned by the API.
type Page struct {
	Number       int
	Size         int
	TotalResults int
	Articles     []Article
}

// TotalPages returns the number of pages for the page's result set.
func (p Page) TotalPages() int { return TotalPages(p.TotalResults, p.Size) }

// Empty returns true if the page contains no articles.
func (p Page) Empty() bool { return len(p.Articles) == 0 }

// Article returns the article by its 1-based index on the page.
func (p Page) Article(idx int) (Article, bool) {
	if idx < 1 || idx > len(p.Articles) || (p.Size > 0 && idx > p.Size) {
		return Article{}, false
	}
	return p.Articles[idx-1], true
}

// TotalPages returns ceil(totalResults / pageSize).
// Non-positive arguments yield zero pages.
func TotalPages(totalResults, pageSize int) int {
	if totalResults <= 0 || pageSize <= 0 {
		return 0
	}
	return (totalResults + pageSize - 1) / pageSize
}
