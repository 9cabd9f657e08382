package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"unicode"

	"github.com/grutapig/twitterlookup/twitterapi"
)

type Application struct {
	config          *Config
	twitterAPI      *twitterapi.TwitterAPIService
	loggingService  *LoggingService
	telegramService *TelegramService
	formatter       *NotificationFormatter
	cleanupService  *CleanupService
	out             io.Writer
}

func NewApplication(
	config *Config,
	twitterAPI *twitterapi.TwitterAPIService,
	loggingService *LoggingService,
	telegramService *TelegramService,
	formatter *NotificationFormatter,
	cleanupService *CleanupService,
) *Application {
	return &Application{
		config:          config,
		twitterAPI:      twitterAPI,
		loggingService:  loggingService,
		telegramService: telegramService,
		formatter:       formatter,
		cleanupService:  cleanupService,
		out:             os.Stdout,
	}
}

// LookupTweet fetches one tweet, prints it as JSON and optionally forwards a
// summary to Telegram.
func (app *Application) LookupTweet(ctx context.Context, id string, lookup twitterapi.TweetLookup, notify bool) (*twitterapi.Tweet, error) {
	tweet, err := app.twitterAPI.GetTweet(ctx, id, lookup)
	if err != nil {
		return nil, err
	}

	if err := app.printJSON(tweet); err != nil {
		return nil, err
	}

	if notify {
		app.notify(RESOURCE_TYPE_TWEET, tweet.ID, app.formatter.FormatTweet(tweet))
	}
	return tweet, nil
}

// LookupUser fetches one account. Anything that is not a numeric id is
// looked up as a username.
func (app *Application) LookupUser(ctx context.Context, idOrUsername string, byUsername bool, lookup twitterapi.UserLookup, notify bool) (*twitterapi.User, error) {
	var user *twitterapi.User
	var err error
	if byUsername || !isNumericID(idOrUsername) {
		user, err = app.twitterAPI.GetUserByUsername(ctx, idOrUsername, lookup)
	} else {
		user, err = app.twitterAPI.GetUser(ctx, idOrUsername, lookup)
	}
	if err != nil {
		return nil, err
	}

	if err := app.printJSON(user); err != nil {
		return nil, err
	}

	if notify {
		app.notify(RESOURCE_TYPE_USER, user.ID, app.formatter.FormatUser(user))
	}
	return user, nil
}

// RecentRequests prints the audit log, newest first. With a resourceID only
// the lookups of that tweet or user are listed, oldest first.
func (app *Application) RecentRequests(resourceID string, limit int) ([]RequestLogModel, error) {
	var requests []RequestLogModel
	var err error
	if resourceID != "" {
		requests, err = app.loggingService.GetRequestsByResource(resourceID)
	} else {
		requests, err = app.loggingService.GetRecentRequests(limit)
	}
	if err != nil {
		return nil, fmt.Errorf("error recent requests: %w", err)
	}

	for _, r := range requests {
		status := "ok"
		if !r.IsSuccess {
			status = "failed: " + r.ErrorMessage
		}
		fmt.Fprintf(app.out, "%s  %-18s %-22s %3d %6dms  %s\n",
			r.RequestedAt.Format("2006-01-02 15:04:05"), r.Endpoint, r.ResourceID, r.StatusCode, r.DurationMS, status)
	}
	return requests, nil
}

// RequestStats prints success rate and latency of the last days of lookups.
func (app *Application) RequestStats(days int) (map[string]interface{}, error) {
	if days <= 0 {
		return nil, fmt.Errorf("days should be positive: %d", days)
	}
	stats, err := app.loggingService.GetRequestStats(days)
	if err != nil {
		return nil, fmt.Errorf("error request stats: %w", err)
	}
	stats["days"] = days
	if err := app.printJSON(stats); err != nil {
		return nil, err
	}
	return stats, nil
}

// Prune deletes audit rows older than days and prints what is left.
func (app *Application) Prune(days int) (map[string]interface{}, error) {
	stats, err := app.cleanupService.Run(days)
	if err != nil {
		return nil, fmt.Errorf("error prune: %w", err)
	}
	if err := app.printJSON(stats); err != nil {
		return nil, err
	}
	return stats, nil
}

func (app *Application) Shutdown() {
	if err := app.loggingService.Close(); err != nil {
		slog.Warn("failed to close logging database", "error", err)
	}
}

// notify never fails the lookup; a missing Telegram setup is only logged.
func (app *Application) notify(resourceType, resourceID, message string) {
	err := app.telegramService.SendMessage(resourceType, resourceID, message)
	switch {
	case errors.Is(err, ErrTelegramDisabled):
		slog.Warn("notify requested but telegram is not configured", "env", ENV_TELEGRAM_API_KEY)
	case err != nil:
		slog.Error("failed to send telegram notification", "resource_type", resourceType, "id", resourceID, "error", err)
	default:
		slog.Info("telegram notification sent", "resource_type", resourceType, "id", resourceID, "chats", len(app.telegramService.GetRegisteredChats()))
	}
}

func (app *Application) printJSON(v any) error {
	encoder := json.NewEncoder(app.out)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("error print result: %w", err)
	}
	return nil
}

func isNumericID(s string) bool {
	if s == "" {
		return false
	}
	return strings.IndexFunc(s, func(r rune) bool { return !unicode.IsDigit(r) }) == -1
}
