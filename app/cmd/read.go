// Package cmd contains commands for the application.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Semior001/newsreader/app/console"
	"github.com/Semior001/newsreader/app/newsapi"
	"github.com/Semior001/newsreader/app/revisor"
	"github.com/Semior001/newsreader/pkg/logx"
	"github.com/go-pkgz/requester"
	"golang.org/x/exp/slog"
	"golang.org/x/sync/errgroup"
)

// Read is a command to read headlines interactively.
type Read struct {
	NewsAPI struct {
		BaseURL  string        `long:"base-url" env:"BASE_URL" default:"https://newsapi.org/v2/" description:"base url of NewsAPI"`
		Key      string        `long:"key" env:"KEY" description:"NewsAPI key"`
		PageSize int           `long:"page-size" env:"PAGE_SIZE" default:"5" description:"number of articles per page"`
		Timeout  time.Duration `long:"timeout" env:"TIMEOUT" default:"30s" description:"timeout for requests"`
	} `group:"newsapi" namespace:"newsapi" env-namespace:"NEWSAPI"`

	Country  string `long:"country" description:"country of headlines, asked if empty"`
	Category string `long:"category" description:"category of headlines, asked if empty"`
	Page     int    `long:"page" description:"page number, asked if empty"`

	Details struct {
		Extract bool          `long:"extract" env:"EXTRACT" description:"extract byline and excerpt from article pages"`
		Timeout time.Duration `long:"timeout" env:"TIMEOUT" default:"15s" description:"timeout for article page requests"`

		OpenAI struct {
			Token     string        `long:"token" env:"TOKEN" description:"OpenAI token, enables article summaries"`
			MaxTokens int           `long:"max-tokens" env:"MAX_TOKENS" default:"500" description:"max tokens for OpenAI"`
			Timeout   time.Duration `long:"timeout" env:"TIMEOUT" default:"1m" description:"timeout for OpenAI calls"`
		} `group:"openai" namespace:"openai" env-namespace:"OPENAI"`
	} `group:"details" namespace:"details" env-namespace:"DETAILS"`

	Version string `no-flag:"true"`
}

// Execute runs the command.
func (r Read) Execute(_ []string) error {
	lg := slog.Default()

	app := &console.App{
		Logger: lg.With(slog.String("prefix", "console")),
		Headlines: newsapi.NewClient(lg.With(slog.String("prefix", "newsapi")), newsapi.Params{
			BaseURL:   r.NewsAPI.BaseURL,
			APIKey:    r.NewsAPI.Key,
			PageSize:  r.NewsAPI.PageSize,
			Timeout:   r.NewsAPI.Timeout,
			UserAgent: "newsreader/" + r.Version,
		}),
		In:       os.Stdin,
		Out:      os.Stdout,
		Country:  r.Country,
		Category: r.Category,
		Page:     r.Page,
	}

	if r.NewsAPI.Key == "" {
		lg.Warn("newsapi key is not set, requests will be rejected")
	}

	if svc := r.makeRevisor(lg); svc != nil {
		app.Enricher = svc
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	ewg, ctx := errgroup.WithContext(ctx)
	ewg.Go(func() error {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		defer signal.Stop(sig)

		select {
		case sig := <-sig:
			lg.Warn("caught signal, stopping", slog.String("signal", sig.String()))
			stop()
			return ctx.Err()
		case <-ctx.Done():
			return ctx.Err()
		}
	})
	ewg.Go(func() error {
		// stops signal listener as soon as the user exits
		defer stop()

		if err := app.Run(ctx); err != nil {
			return fmt.Errorf("run console: %w", err)
		}
		return nil
	})

	if err := ewg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	return nil
}

// makeRevisor returns nil if article details are not requested.
func (r Read) makeRevisor(lg *slog.Logger) *revisor.Service {
	if !r.Details.Extract && r.Details.OpenAI.Token == "" {
		return nil
	}

	var gpt *revisor.ChatGPT
	if r.Details.OpenAI.Token != "" {
		gpt = revisor.NewChatGPT(
			lg.With(slog.String("prefix", "chatgpt")),
			&http.Client{Timeout: r.Details.OpenAI.Timeout},
			r.Details.OpenAI.Token,
			r.Details.OpenAI.MaxTokens,
		)
	}

	rq := requester.New(
		http.Client{Timeout: r.Details.Timeout},
		logx.LoggingRoundTripper(lg.With(slog.String("prefix", "pages")), logx.RoundTripperOpts{
			Level: slog.LevelDebug,
		}),
	)

	return revisor.NewService(
		lg.With(slog.String("prefix", "revisor")),
		rq.Client(),
		revisor.NewExtractor(),
		gpt,
	)
}
