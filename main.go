package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v2"
)

func main() {
	newApp().RunAndExitOnError()
}

func newApp() *cli.App {
	app := &cli.App{
		Name:  "twitterlookup",
		Usage: "typed lookups of tweets and users against the Twitter API v2",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "configuration file to load (e.g. .env, .dev.env); environment variables override it",
				Value: DEFAULT_CONFIG_FILE,
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log verbosity (error, warn, info, debug)",
				Value:   "info",
				EnvVars: []string{ENV_LOG_LEVEL},
			},
			&cli.BoolFlag{
				Name:  "print-metrics",
				Usage: "log the request counters collected during this run",
			},
		},
		Before: func(cctx *cli.Context) error {
			configFile := cctx.String("config")
			loadErr := loadConfigFile(configFile)
			configLogger(resolveLogLevel(cctx.String("log-level"), cctx.IsSet("log-level")), os.Stderr)
			logConfigLoad(configFile, loadErr)
			return nil
		},
		After: func(cctx *cli.Context) error {
			if cctx.Bool("print-metrics") {
				logMetrics(prometheus.DefaultGatherer)
			}
			return nil
		},
	}
	app.Commands = []*cli.Command{
		{
			Name:      "tweet",
			Usage:     "look up a tweet by id",
			ArgsUsage: "<tweet id>",
			Flags: append([]cli.Flag{
				&cli.StringFlag{Name: "expansions", Usage: "comma-separated expansions, e.g. author_id,attachments.media_keys"},
				&cli.StringFlag{Name: "tweet-fields", Usage: "comma-separated tweet fields"},
				&cli.StringFlag{Name: "media-fields", Usage: "comma-separated media fields"},
				&cli.StringFlag{Name: "poll-fields", Usage: "comma-separated poll fields"},
				&cli.StringFlag{Name: "place-fields", Usage: "comma-separated place fields"},
				&cli.StringFlag{Name: "user-fields", Usage: "comma-separated user fields for expanded users"},
			}, lookupFlags()...),
			Action: runTweet,
		},
		{
			Name:      "user",
			Usage:     "look up an account by id or username",
			ArgsUsage: "<user id | @username>",
			Flags: append([]cli.Flag{
				&cli.BoolFlag{Name: "by-username", Usage: "treat the argument as a username even if it is numeric"},
				&cli.StringFlag{Name: "expansions", Usage: "comma-separated expansions (pinned_tweet_id)"},
				&cli.StringFlag{Name: "user-fields", Usage: "comma-separated user fields"},
				&cli.StringFlag{Name: "tweet-fields", Usage: "comma-separated tweet fields for the pinned tweet"},
			}, lookupFlags()...),
			Action: runUser,
		},
		{
			Name:  "requests",
			Usage: "list recent lookups from the audit log",
			Flags: []cli.Flag{
				&cli.IntFlag{Name: "limit", Value: DEFAULT_RECENT_REQUESTS_LIMIT},
				&cli.StringFlag{Name: "id", Usage: "only lookups of this tweet or user id (ignores --limit)"},
			},
			Action: runRequests,
		},
		{
			Name:  "stats",
			Usage: "summarize success rate and latency of recent lookups",
			Flags: []cli.Flag{
				&cli.IntFlag{Name: "days", Value: DEFAULT_STATS_DAYS},
			},
			Action: runStats,
		},
		{
			Name:  "prune",
			Usage: "delete audit log records older than --days and compact the database",
			Flags: []cli.Flag{
				&cli.IntFlag{Name: "days", Value: DEFAULT_CLEANUP_DAYS},
			},
			Action: runPrune,
		},
	}
	return app
}

func lookupFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{Name: "all", Usage: "request every public field and expansion"},
		&cli.BoolFlag{Name: "notify", Usage: "forward a summary to the configured Telegram chats"},
	}
}

func runTweet(cctx *cli.Context) error {
	id := cctx.Args().First()
	if id == "" {
		return fmt.Errorf("need to provide tweet id as an argument")
	}

	lookup, err := tweetSelection{
		All:         cctx.Bool("all"),
		Expansions:  cctx.String("expansions"),
		TweetFields: cctx.String("tweet-fields"),
		MediaFields: cctx.String("media-fields"),
		PollFields:  cctx.String("poll-fields"),
		PlaceFields: cctx.String("place-fields"),
		UserFields:  cctx.String("user-fields"),
	}.Lookup()
	if err != nil {
		return err
	}

	return withApplication(func(app *Application) error {
		_, err := app.LookupTweet(cctx.Context, id, lookup, cctx.Bool("notify"))
		return err
	})
}

func runUser(cctx *cli.Context) error {
	idOrUsername := cctx.Args().First()
	if idOrUsername == "" {
		return fmt.Errorf("need to provide user id or username as an argument")
	}

	lookup, err := userSelection{
		All:         cctx.Bool("all"),
		Expansions:  cctx.String("expansions"),
		UserFields:  cctx.String("user-fields"),
		TweetFields: cctx.String("tweet-fields"),
	}.Lookup()
	if err != nil {
		return err
	}

	return withApplication(func(app *Application) error {
		_, err := app.LookupUser(cctx.Context, idOrUsername, cctx.Bool("by-username"), lookup, cctx.Bool("notify"))
		return err
	})
}

func runRequests(cctx *cli.Context) error {
	return withApplication(func(app *Application) error {
		_, err := app.RecentRequests(cctx.String("id"), cctx.Int("limit"))
		return err
	})
}

func runStats(cctx *cli.Context) error {
	return withApplication(func(app *Application) error {
		_, err := app.RequestStats(cctx.Int("days"))
		return err
	})
}

func runPrune(cctx *cli.Context) error {
	return withApplication(func(app *Application) error {
		_, err := app.Prune(cctx.Int("days"))
		return err
	})
}

func withApplication(run func(app *Application) error) error {
	container, err := BuildContainer()
	if err != nil {
		return fmt.Errorf("failed to build container: %w", err)
	}

	return container.Invoke(func(app *Application) error {
		defer app.Shutdown()
		return run(app)
	})
}

// loadConfigFile runs before the logger is configured, so the outcome is
// reported afterwards by logConfigLoad.
func loadConfigFile(configFile string) error {
	if configFile == "" {
		return nil
	}
	return godotenv.Load(configFile)
}

func logConfigLoad(configFile string, loadErr error) {
	switch {
	case configFile == "":
		slog.Debug("no config file specified, using environment variables only")
	case loadErr != nil:
		slog.Debug("config file not loaded, continuing with environment variables", "file", configFile, "error", loadErr)
	default:
		slog.Debug("loaded configuration", "file", configFile)
	}
}

// resolveLogLevel gives the flag (or the process environment) precedence
// over a log_level that only appears in the config file. Flag env vars are
// resolved before the config file is loaded, hence the second lookup.
func resolveLogLevel(flagValue string, flagSet bool) string {
	if flagSet {
		return flagValue
	}
	if level := os.Getenv(ENV_LOG_LEVEL); level != "" {
		return level
	}
	return flagValue
}

func configLogger(level string, writer io.Writer) *slog.Logger {
	var logLevel slog.Level
	switch strings.ToLower(level) {
	case "error":
		logLevel = slog.LevelError
	case "warn":
		logLevel = slog.LevelWarn
	case "debug":
		logLevel = slog.LevelDebug
	default:
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(writer, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)
	return logger
}

// logMetrics writes every twitterapi_* sample gathered in this process.
func logMetrics(gatherer prometheus.Gatherer) {
	families, err := gatherer.Gather()
	if err != nil {
		slog.Warn("failed to gather metrics", "error", err)
		return
	}
	for _, family := range families {
		if !strings.HasPrefix(family.GetName(), "twitterapi_") {
			continue
		}
		for _, metric := range family.GetMetric() {
			attrs := []any{"metric", family.GetName()}
			for _, label := range metric.GetLabel() {
				attrs = append(attrs, label.GetName(), label.GetValue())
			}
			switch {
			case metric.GetCounter() != nil:
				attrs = append(attrs, "value", metric.GetCounter().GetValue())
			case metric.GetHistogram() != nil:
				attrs = append(attrs, "count", metric.GetHistogram().GetSampleCount(), "sum_seconds", metric.GetHistogram().GetSampleSum())
			}
			slog.Info("metrics", attrs...)
		}
	}
}
