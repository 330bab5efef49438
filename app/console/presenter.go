package console

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/Semior001/newsreader/app/news"
	"github.com/Semior001/newsreader/app/revisor"
)

const divider = "---------------------------------------"

var tmplFuncs = template.FuncMap{
	"divider": func() string { return divider },
	"inc":     func(i int) int { return i + 1 },
}

var pageTmpl = template.Must(template.New("page").Funcs(tmplFuncs).Parse(
	`Page: {{.Number}} of {{.TotalPages}}
{{divider}}
{{range $i, $a := .Articles}}[{{inc $i}}] Title: {{$a.Title}}
    Source: {{$a.Source}}
    Description: {{$a.Description}}
    URL: {{$a.URL}}
{{divider}}
{{end}}`))

var detailsTmpl = template.Must(template.New("details").Parse(
	`Title: {{.Article.Title}}
Source: {{.Article.Source}}
Description: {{.Article.Description}}
URL: {{.Article.URL}}
{{with .Details}}{{if .Byline}}By: {{.Byline}}
{{end}}{{if .Excerpt}}Excerpt: {{.Excerpt}}
{{end}}{{if .Summary}}Summary:
{{.Summary}}
{{end}}{{end}}`))

// Presenter renders headlines to the console.
type Presenter struct {
	Out io.Writer
}

// Display prints the page listing.
func (p Presenter) Display(page news.Page) error {
	if page.Empty() {
		return p.Println("No news articles found.")
	}

	if err := pageTmpl.Execute(p.Out, page); err != nil {
		return fmt.Errorf("execute page template: %w", err)
	}

	return nil
}

// Details prints a single article with optional extra details.
func (p Presenter) Details(a news.Article, d *revisor.Details) error {
	data := struct {
		Article news.Article
		Details *revisor.Details
	}{Article: a, Details: d}

	if err := detailsTmpl.Execute(p.Out, data); err != nil {
		return fmt.Errorf("execute details template: %w", err)
	}

	return nil
}

// Menu prints the list of menu options.
func (p Presenter) Menu() error {
	return p.Println(
		"Menu:",
		"1. View Article Details",
		"2. Search News",
		"3. Sort News",
		"4. Filter by Source",
		"5. Exit",
	)
}

// Println prints each of the lines.
func (p Presenter) Println(lines ...string) error {
	if _, err := io.WriteString(p.Out, strings.Join(lines, "\n")+"\n"); err != nil {
		return fmt.Errorf("write to console: %w", err)
	}
	return nil
}
