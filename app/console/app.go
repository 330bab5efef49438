// Package console implements the interactive text interface for reading headlines.
package console

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/Semior001/newsreader/app/newsapi"
	"golang.org/x/exp/slog"
)

// App asks for the headlines to read, displays the first page
// and hands the session over to the menu.
type App struct {
	Logger    *slog.Logger
	Headlines Headlines
	Enricher  Enricher // optional
	In        io.Reader
	Out       io.Writer

	// presets, asked interactively if empty
	Country  string
	Category string
	Page     int
}

// Run runs the application until the user exits.
// Failures to fetch the headlines are reported to the user and are not returned.
func (a *App) Run(ctx context.Context) error {
	prompter := NewPrompter(a.In, a.Out)
	presenter := Presenter{Out: a.Out}

	sess, err := a.askSession(ctx, prompter)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("ask session parameters: %w", err)
	}

	if err = presenter.Println("", "Fetching news...", ""); err != nil {
		return err
	}

	page, err := a.Headlines.TopHeadlines(ctx, newsapi.Request{
		Country:  sess.Country,
		Category: sess.Category,
		Page:     sess.Page.Number,
	})
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return err
		}

		a.Logger.ErrorCtx(ctx, "failed to fetch headlines",
			slog.String("country", sess.Country),
			slog.String("category", sess.Category),
			slog.Int("page", sess.Page.Number),
			slog.Any("err", err))

		var terr *newsapi.TransportError
		if errors.As(err, &terr) {
			return presenter.Println("Error occurred while fetching news. Please try again later.")
		}

		return presenter.Println(fmt.Sprintf("An error occurred: %v", err))
	}

	sess.Page = page

	if err = presenter.Display(page); err != nil {
		return err
	}

	menu := &Menu{
		Logger:    a.Logger,
		Enricher:  a.Enricher,
		Prompter:  prompter,
		Presenter: presenter,
	}

	return menu.Run(ctx, sess)
}

func (a *App) askSession(ctx context.Context, p *Prompter) (sess Session, err error) {
	sess.Country, sess.Category, sess.Page.Number = a.Country, a.Category, a.Page

	if sess.Country == "" {
		if sess.Country, err = p.ReadLine(ctx, "Enter the country (e.g., us, uk):"); err != nil {
			return Session{}, err
		}
	}

	if sess.Category == "" {
		if sess.Category, err = p.ReadLine(ctx, "Enter the news category (e.g., business, technology):"); err != nil {
			return Session{}, err
		}
	}

	for sess.Page.Number < 1 {
		if sess.Page.Number, err = p.ReadInt(ctx, "Enter the page number:"); err != nil {
			return Session{}, err
		}
		if sess.Page.Number < 1 {
			if _, err = fmt.Fprintln(a.Out, "Page number must be positive."); err != nil {
				return Session{}, fmt.Errorf("write to console: %w", err)
			}
		}
	}

	return sess, nil
}
