package console

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/Semior001/newsreader/app/news"
	"github.com/Semior001/newsreader/app/newsapi"
	"github.com/Semior001/newsreader/app/revisor"
	"github.com/samber/lo"
	"golang.org/x/exp/slog"
)

//go:generate moq -out mock_headlines.go . Headlines
//go:generate moq -out mock_enricher.go . Enricher

// Headlines fetches pages of top headlines.
type Headlines interface {
	TopHeadlines(ctx context.Context, req newsapi.Request) (news.Page, error)
}

// Enricher provides extra details for an article.
type Enricher interface {
	Details(ctx context.Context, a news.Article) (revisor.Details, error)
}

// State is a state of the menu.
type State int

// Menu states.
const (
	StateMenu State = iota
	StateDetails
	StateSearch
	StateSort
	StateFilter
	StateExited
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StateDetails:
		return "details"
	case StateSearch:
		return "search"
	case StateSort:
		return "sort"
	case StateFilter:
		return "filter"
	case StateExited:
		return "exited"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Session holds the parameters of the headlines being browsed
// and the currently displayed page.
type Session struct {
	Country  string
	Category string
	Page     news.Page
}

// request returns a request for the session's page.
func (s Session) request() newsapi.Request {
	return newsapi.Request{Country: s.Country, Category: s.Category, Page: s.Page.Number}
}

type sortOption struct {
	Choice int
	Name   string
	SortBy string
}

var sortOptions = []sortOption{
	{Choice: 1, Name: "Relevance", SortBy: "relevancy"},
	{Choice: 2, Name: "Date", SortBy: "publishedAt"},
	{Choice: 3, Name: "Popularity", SortBy: "popularity"},
}

// Menu runs the interactive menu over a fetched page.
type Menu struct {
	Logger    *slog.Logger
	Enricher  Enricher // optional
	Prompter  *Prompter
	Presenter Presenter
}

// Run loops over the menu states until the user exits or the input ends.
func (m *Menu) Run(ctx context.Context, sess Session) error {
	handlers := m.handlers()

	for state := StateMenu; state != StateExited; {
		h, ok := handlers[state]
		if !ok {
			return fmt.Errorf("no handler for state %s", state)
		}

		next, err := h(ctx, sess)
		switch {
		case err == nil:
		case errors.Is(err, io.EOF):
			m.Logger.DebugCtx(ctx, "input closed, exiting")
			return nil
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			return err
		case state == StateMenu:
			return fmt.Errorf("show menu: %w", err)
		default:
			m.Logger.WarnCtx(ctx, "menu action failed",
				slog.String("state", state.String()), slog.Any("err", err))
			if perr := m.Presenter.Println(fmt.Sprintf("An error occurred: %v", err)); perr != nil {
				return perr
			}
			next = StateMenu
		}

		state = next
	}

	return nil
}

func (m *Menu) handlers() map[State]Handler {
	mws := []Middleware{RequestID(), Logger(m.Logger), Recover(m.Logger)}

	return map[State]Handler{
		StateMenu:    Handler(m.menu).With(mws...),
		StateDetails: Handler(m.details).With(mws...),
		StateSearch:  Handler(m.search).With(mws...),
		StateSort:    Handler(m.sort).With(mws...),
		StateFilter:  Handler(m.filter).With(mws...),
	}
}

func (m *Menu) menu(ctx context.Context, _ Session) (State, error) {
	if err := m.Presenter.Menu(); err != nil {
		return StateMenu, err
	}

	choice, err := m.Prompter.ReadInt(ctx, "Enter your choice:")
	if err != nil {
		return StateMenu, err
	}

	switch choice {
	case 1:
		return StateDetails, nil
	case 2:
		return StateSearch, nil
	case 3:
		return StateSort, nil
	case 4:
		return StateFilter, nil
	case 5:
		return StateExited, m.Presenter.Println("Exiting...")
	default:
		return StateExited, m.Presenter.Println("Invalid choice. Exiting...")
	}
}

func (m *Menu) details(ctx context.Context, sess Session) (State, error) {
	idx, err := m.Prompter.ReadInt(ctx, "Enter the index of the article to view details:")
	if err != nil {
		return StateMenu, err
	}

	article, ok := sess.Page.Article(idx)
	if !ok {
		return StateMenu, m.Presenter.Println("Invalid article index.")
	}

	var details *revisor.Details
	if m.Enricher != nil {
		d, err := m.Enricher.Details(ctx, article)
		if err != nil {
			m.Logger.WarnCtx(ctx, "failed to get article details",
				slog.String("url", article.URL), slog.Any("err", err))
			if err = m.Presenter.Println(fmt.Sprintf("Details are not available: %v", err)); err != nil {
				return StateMenu, err
			}
		} else {
			details = &d
		}
	}

	if err = m.Presenter.Details(article, details); err != nil {
		return StateMenu, err
	}

	if _, err = m.Prompter.ReadLine(ctx, "Press Enter to go back to the menu."); err != nil {
		return StateMenu, err
	}

	return StateMenu, nil
}

// search, sort and filter only prepare the request, fetching it is not implemented.

func (m *Menu) search(ctx context.Context, sess Session) (State, error) {
	q, err := m.Prompter.ReadLine(ctx, "Enter the search query:")
	if err != nil {
		return StateMenu, err
	}

	req := sess.request()
	req.Page, req.Query = 0, q

	m.Logger.DebugCtx(ctx, "search request prepared", slog.Any("request", req))
	return StateMenu, nil
}

func (m *Menu) sort(ctx context.Context, sess Session) (State, error) {
	lines := []string{"Select a sorting option:"}
	for _, opt := range sortOptions {
		lines = append(lines, fmt.Sprintf("%d. %s", opt.Choice, opt.Name))
	}

	if err := m.Presenter.Println(lines...); err != nil {
		return StateMenu, err
	}

	choice, err := m.Prompter.ReadInt(ctx, "Enter your choice:")
	if err != nil {
		return StateMenu, err
	}

	opt, ok := lo.Find(sortOptions, func(o sortOption) bool { return o.Choice == choice })
	if !ok {
		return StateMenu, m.Presenter.Println("Invalid sorting option.")
	}

	req := sess.request()
	req.SortBy = opt.SortBy

	m.Logger.DebugCtx(ctx, "sort request prepared", slog.Any("request", req))
	return StateMenu, nil
}

func (m *Menu) filter(ctx context.Context, sess Session) (State, error) {
	src, err := m.Prompter.ReadLine(ctx, "Enter the name or ID of the news source:")
	if err != nil {
		return StateMenu, err
	}

	req := sess.request()
	req.Page, req.Sources = 0, src

	m.Logger.DebugCtx(ctx, "filter request prepared", slog.Any("request", req))
	return StateMenu, nil
}
