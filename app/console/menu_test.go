package console

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/Semior001/newsreader/app/news"
	"github.com/Semior001/newsreader/app/revisor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

const menuText = "Menu:\n" +
	"1. View Article Details\n" +
	"2. Search News\n" +
	"3. Sort News\n" +
	"4. Filter by Source\n" +
	"5. Exit\n" +
	"Enter your choice:\n"

func TestMenu_Run_Exit(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "exit", input: "5\n1\n", want: menuText + "Exiting...\n"},
		{name: "unknown choice", input: "9\n1\n", want: menuText + "Invalid choice. Exiting...\n"},
		{name: "negative choice", input: "-1\n", want: menuText + "Invalid choice. Exiting...\n"},
		{name: "non-numeric then exit", input: "abc\n5\n",
			want: menuText + "Please enter a number.\nEnter your choice:\nExiting...\n"},
		{name: "end of input", input: "", want: menuText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, out := newTestMenu(tt.input, nil)
			require.NoError(t, m.Run(context.Background(), Session{Page: testPage(5, 12)}))
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestMenu_Run_Details(t *testing.T) {
	t.Run("valid index", func(t *testing.T) {
		m, out := newTestMenu("1\n2\n\n5\n", nil)
		require.NoError(t, m.Run(context.Background(), Session{Page: testPage(5, 12)}))

		assert.Equal(t, menuText+
			"Enter the index of the article to view details:\n"+
			"Title: title 2\n"+
			"Source: source 2\n"+
			"Description: description 2\n"+
			"URL: https://example.com/2\n"+
			"Press Enter to go back to the menu.\n"+
			menuText+
			"Exiting...\n", out.String())
	})

	for _, idx := range []string{"0", "6", "4"} {
		t.Run("invalid index "+idx, func(t *testing.T) {
			m, out := newTestMenu("1\n"+idx+"\n5\n", nil)
			sess := Session{Country: "us", Category: "technology", Page: testPage(3, 3)}

			require.NoError(t, m.Run(context.Background(), sess))

			assert.Equal(t, menuText+
				"Enter the index of the article to view details:\n"+
				"Invalid article index.\n"+
				menuText+
				"Exiting...\n", out.String())
			assert.Equal(t, "us", sess.Country)
			assert.Equal(t, 1, sess.Page.Number)
		})
	}

	t.Run("enriched", func(t *testing.T) {
		enricher := &EnricherMock{DetailsFunc: func(_ context.Context, a news.Article) (revisor.Details, error) {
			assert.Equal(t, "https://example.com/1", a.URL)
			return revisor.Details{Byline: "Jane Doe", Summary: "- first"}, nil
		}}

		m, out := newTestMenu("1\n1\n\n5\n", enricher)
		require.NoError(t, m.Run(context.Background(), Session{Page: testPage(5, 12)}))

		assert.Contains(t, out.String(), "URL: https://example.com/1\nBy: Jane Doe\nSummary:\n- first\n")
		assert.Len(t, enricher.DetailsCalls(), 1)
	})

	t.Run("enrichment failed", func(t *testing.T) {
		enricher := &EnricherMock{DetailsFunc: func(context.Context, news.Article) (revisor.Details, error) {
			return revisor.Details{}, errors.New("bad status code: 403")
		}}

		m, out := newTestMenu("1\n1\n\n5\n", enricher)
		require.NoError(t, m.Run(context.Background(), Session{Page: testPage(5, 12)}))

		assert.Contains(t, out.String(), "Details are not available: bad status code: 403\n"+
			"Title: title 1\n")
	})

	t.Run("panic recovered", func(t *testing.T) {
		enricher := &EnricherMock{DetailsFunc: func(context.Context, news.Article) (revisor.Details, error) {
			panic("oops")
		}}

		m, out := newTestMenu("1\n1\n5\n", enricher)
		require.NoError(t, m.Run(context.Background(), Session{Page: testPage(5, 12)}))

		assert.Contains(t, out.String(), "An error occurred: panic: oops\n"+menuText+"Exiting...\n")
	})
}

func TestMenu_Run_Stubs(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "search",
			input: "2\nelection results\n5\n",
			want:  menuText + "Enter the search query:\n" + menuText + "Exiting...\n",
		},
		{
			name:  "sort",
			input: "3\n2\n5\n",
			want: menuText + "Select a sorting option:\n1. Relevance\n2. Date\n3. Popularity\n" +
				"Enter your choice:\n" + menuText + "Exiting...\n",
		},
		{
			name:  "sort with invalid option",
			input: "3\n7\n5\n",
			want: menuText + "Select a sorting option:\n1. Relevance\n2. Date\n3. Popularity\n" +
				"Enter your choice:\nInvalid sorting option.\n" + menuText + "Exiting...\n",
		},
		{
			name:  "filter",
			input: "4\nbbc-news\n5\n",
			want:  menuText + "Enter the name or ID of the news source:\n" + menuText + "Exiting...\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, out := newTestMenu(tt.input, nil)
			require.NoError(t, m.Run(context.Background(), Session{Country: "us", Page: testPage(5, 12)}))
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestMenu_Run_Canceled(t *testing.T) {
	rd, wr := io.Pipe()
	defer wr.Close()

	out := &bytes.Buffer{}
	m := &Menu{
		Logger:    slog.Default(),
		Prompter:  NewPrompter(rd, out),
		Presenter: Presenter{Out: out},
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := m.Run(ctx, Session{Page: testPage(1, 1)})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "menu", StateMenu.String())
	assert.Equal(t, "exited", StateExited.String())
	assert.Equal(t, "state(42)", State(42).String())
}

func newTestMenu(input string, enricher Enricher) (*Menu, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return &Menu{
		Logger:    slog.Default(),
		Enricher:  enricher,
		Prompter:  NewPrompter(strings.NewReader(input), out),
		Presenter: Presenter{Out: out},
	}, out
}
