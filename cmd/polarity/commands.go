package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jessevdk/go-flags"
	"github.com/jonboulle/clockwork"

	"github.com/tsawler/polarity"
	"github.com/tsawler/polarity/internal/batch"
	"github.com/tsawler/polarity/internal/cfg"
	"github.com/tsawler/polarity/internal/server"
)

func addCommands(parser *flags.Parser, e *env) error {
	commands := []struct {
		name, short, long string
		data              any
	}{
		{"classify", "Classify web articles",
			"Fetch each article URL and classify its text. Prompts for a URL when none is given.",
			&classifyCommand{env: e}},
		{"text", "Classify text",
			"Classify the text given as arguments, or standard input when there are none.",
			&textCommand{env: e}},
		{"batch", "Classify many web articles",
			"Fetch and classify URLs from arguments, a file or standard input, then print a summary.",
			&batchCommand{env: e}},
		{"feed", "Classify the items of an RSS or Atom feed",
			"Fetch a feed and classify the content of each item, then print a summary.",
			&feedCommand{env: e}},
		{"serve", "Run the HTTP API",
			"Serve POST /api/classify, GET /health and GET /.",
			&serveCommand{env: e}},
		{"version", "Print the version", "Print the version and exit.",
			&versionCommand{env: e}},
	}

	for _, c := range commands {
		if _, err := parser.AddCommand(c.name, c.short, c.long, c.data); err != nil {
			return fmt.Errorf("failed to add command %s: %w", c.name, err)
		}
	}
	return nil
}

type classifyCommand struct {
	env *env

	Sentences bool `long:"sentences" description:"Also classify each sentence"`
	Args      struct {
		URLs []string `positional-arg-name:"URL"`
	} `positional-args:"yes"`
}

func (c *classifyCommand) Execute(_ []string) error {
	analyzer, err := c.env.analyzer()
	if err != nil {
		return err
	}
	client, err := c.env.client()
	if err != nil {
		return err
	}

	urls := c.Args.URLs
	if len(urls) == 0 {
		url, err := c.env.prompt("Article URL: ")
		if err != nil {
			return err
		}
		urls = []string{url}
	}

	ctx := context.Background()
	for i, url := range urls {
		if i > 0 {
			fmt.Fprintln(c.env.out)
		}
		text := ""
		if url != "" {
			text = client.Text(ctx, url)
		}
		if _, err := c.env.report(analyzer, text, url, c.Sentences); err != nil {
			return err
		}
	}
	return nil
}

type textCommand struct {
	env *env

	Sentences bool `long:"sentences" description:"Also classify each sentence"`
	Args      struct {
		Words []string `positional-arg-name:"TEXT"`
	} `positional-args:"yes"`
}

func (c *textCommand) Execute(_ []string) error {
	analyzer, err := c.env.analyzer()
	if err != nil {
		return err
	}

	source, text := "arguments", strings.Join(c.Args.Words, " ")
	if len(c.Args.Words) == 0 {
		data, err := io.ReadAll(c.env.in)
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
		source, text = "standard input", string(data)
	}

	_, err = c.env.report(analyzer, text, source, c.Sentences)
	return err
}

type batchCommand struct {
	env *env

	Workers int    `long:"workers" short:"w" env:"POLARITY_WORKERS" default:"4" description:"Number of articles fetched concurrently"`
	File    string `long:"file" short:"f" description:"File with one URL per line"`
	Args    struct {
		URLs []string `positional-arg-name:"URL"`
	} `positional-args:"yes"`
}

func (c *batchCommand) Execute(_ []string) error {
	urls, err := c.targets()
	if err != nil {
		return err
	}
	if len(urls) == 0 {
		return errors.New("no URLs given")
	}

	analyzer, err := c.env.analyzer()
	if err != nil {
		return err
	}
	client, err := c.env.client()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slog.Info("Starting batch", "urls", len(urls), "workers", c.Workers)
	results, err := batch.NewRunner(analyzer, client, c.Workers).Run(ctx, urls)
	if err != nil {
		return fmt.Errorf("batch interrupted: %w", err)
	}

	for _, r := range results {
		fmt.Fprintf(c.env.out, "URL: %s\n", r.Target)
		if r.Analysis == nil {
			err = polarity.WriteNoVerdict(c.env.out, r.Target)
		} else {
			err = polarity.WriteReport(c.env.out, r.Analysis)
		}
		if err != nil {
			return err
		}
		fmt.Fprintln(c.env.out)
	}
	return polarity.WriteSummary(c.env.out, batch.Summarize(results))
}

func (c *batchCommand) targets() ([]string, error) {
	urls := append([]string(nil), c.Args.URLs...)

	if c.File != "" {
		f, err := os.Open(c.File)
		if err != nil {
			return nil, fmt.Errorf("failed to open URL file: %w", err)
		}
		defer f.Close()
		lines, err := readLines(f)
		if err != nil {
			return nil, err
		}
		urls = append(urls, lines...)
	}

	if len(urls) == 0 {
		return readLines(c.env.in)
	}
	return urls, nil
}

type feedCommand struct {
	env *env

	Limit     int  `long:"limit" short:"n" default:"0" description:"Classify at most this many items (0 for all)"`
	Sentences bool `long:"sentences" description:"Also classify each sentence"`
	Args      struct {
		URL string `positional-arg-name:"FEED_URL" required:"yes"`
	} `positional-args:"yes"`
}

func (c *feedCommand) Execute(_ []string) error {
	analyzer, err := c.env.analyzer()
	if err != nil {
		return err
	}
	client, err := c.env.client()
	if err != nil {
		return err
	}

	items, err := client.Feed(context.Background(), c.Args.URL)
	if err != nil {
		return err
	}
	if c.Limit > 0 && len(items) > c.Limit {
		items = items[:c.Limit]
	}

	analyses := make([]*polarity.Analysis, 0, len(items))
	for _, item := range items {
		fmt.Fprintf(c.env.out, "Title: %s\nLink: %s\n", item.Title, item.Link)
		analysis, err := c.env.report(analyzer, item.Text, item.Link, c.Sentences)
		if err != nil {
			return err
		}
		analyses = append(analyses, analysis)
		fmt.Fprintln(c.env.out)
	}
	return polarity.WriteSummary(c.env.out, polarity.Summarize(analyses))
}

type serveCommand struct {
	env *env

	Addr     string        `long:"addr" env:"POLARITY_ADDR" default:":8080" description:"HTTP listen address"`
	Rate     float64       `long:"rate" env:"POLARITY_RATE" default:"5" description:"Requests per second allowed per client on /api (0 disables)"`
	Burst    int           `long:"burst" env:"POLARITY_BURST" default:"10" description:"Burst size for the rate limit"`
	CacheTTL time.Duration `long:"cache-ttl" env:"POLARITY_CACHE_TTL" default:"10m" description:"How long fetched articles are cached (0 disables)"`
}

func (c *serveCommand) Execute(_ []string) error {
	analyzer, err := c.env.analyzer()
	if err != nil {
		return err
	}
	client, err := c.env.client()
	if err != nil {
		return err
	}

	var cache *server.ArticleCache
	if c.CacheTTL > 0 {
		cache = server.NewArticleCache(c.CacheTTL, clockwork.NewRealClock())
	}

	if !c.env.opts.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	handler := server.NewHandler(analyzer, client, cache, cfg.GetVersion())
	router := server.NewServer(handler, server.Config{RatePerSecond: c.Rate, Burst: c.Burst})

	httpServer := &http.Server{
		Addr:         c.Addr,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: c.env.opts.Timeout + 30*time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrChan := make(chan error, 1)
	go func() {
		slog.Info("Starting HTTP server", "addr", c.Addr, "version", cfg.GetVersion())
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	select {
	case sig := <-sigChan:
		slog.Info("Received signal", "signal", sig.String())
	case err := <-serverErrChan:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("HTTP server shutdown error: %w", err)
	}
	slog.Info("HTTP server stopped")
	return nil
}

type versionCommand struct {
	env *env
}

func (c *versionCommand) Execute(_ []string) error {
	_, err := fmt.Fprintf(c.env.out, "polarity %s\n", cfg.GetVersion())
	return err
}
