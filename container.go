package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/grutapig/twitterlookup/twitterapi"
	"go.uber.org/dig"
)

type Config struct {
	TwitterBearerToken  string
	TwitterAPIBaseURL   string
	ProxyDSN            string
	TelegramAPIKey      string
	TelegramAdminChatID string
	LoggingDBPath       string
}

func ProvideConfig() (*Config, error) {
	bearerToken := os.Getenv(ENV_TWITTER_BEARER_TOKEN)
	if bearerToken == "" {
		return nil, fmt.Errorf("bearer token should be set .env: %s", ENV_TWITTER_BEARER_TOKEN)
	}

	baseURL := os.Getenv(ENV_TWITTER_API_BASE_URL)
	if baseURL == "" {
		baseURL = twitterapi.DefaultBaseURL
	}

	loggingDBPath := os.Getenv(ENV_LOGGING_DATABASE_PATH)
	if loggingDBPath == "" {
		loggingDBPath = DEFAULT_LOGGING_DATABASE_PATH
	}

	return &Config{
		TwitterBearerToken:  bearerToken,
		TwitterAPIBaseURL:   baseURL,
		ProxyDSN:            os.Getenv(ENV_PROXY_DSN),
		TelegramAPIKey:      os.Getenv(ENV_TELEGRAM_API_KEY),
		TelegramAdminChatID: os.Getenv(ENV_TELEGRAM_ADMIN_CHAT_ID),
		LoggingDBPath:       loggingDBPath,
	}, nil
}

func ProvideLogger() *slog.Logger {
	return slog.Default()
}

func ProvideLoggingService(config *Config) (*LoggingService, error) {
	return NewLoggingService(config.LoggingDBPath)
}

func ProvideTwitterAPI(config *Config, logger *slog.Logger, loggingService *LoggingService) (*twitterapi.TwitterAPIService, error) {
	return twitterapi.NewTwitterAPIService(
		config.TwitterBearerToken,
		config.TwitterAPIBaseURL,
		config.ProxyDSN,
		twitterapi.WithLogger(logger.With("component", "twitterapi")),
		twitterapi.WithRecorder(loggingService),
	)
}

func ProvideNotificationFormatter() *NotificationFormatter {
	return NewNotificationFormatter()
}

func ProvideTelegramService(config *Config, loggingService *LoggingService) (*TelegramService, error) {
	return NewTelegramService(config.TelegramAPIKey, config.ProxyDSN, config.TelegramAdminChatID, loggingService)
}

func ProvideCleanupService(loggingService *LoggingService) *CleanupService {
	return NewCleanupService(loggingService)
}

func BuildContainer() (*dig.Container, error) {
	container := dig.New()

	if err := container.Provide(ProvideConfig); err != nil {
		return nil, fmt.Errorf("failed to provide config: %w", err)
	}

	if err := container.Provide(ProvideLogger); err != nil {
		return nil, fmt.Errorf("failed to provide logger: %w", err)
	}

	if err := container.Provide(ProvideLoggingService); err != nil {
		return nil, fmt.Errorf("failed to provide logging service: %w", err)
	}

	if err := container.Provide(ProvideTwitterAPI); err != nil {
		return nil, fmt.Errorf("failed to provide Twitter API: %w", err)
	}

	if err := container.Provide(ProvideNotificationFormatter); err != nil {
		return nil, fmt.Errorf("failed to provide notification formatter: %w", err)
	}

	if err := container.Provide(ProvideTelegramService); err != nil {
		return nil, fmt.Errorf("failed to provide Telegram service: %w", err)
	}

	if err := container.Provide(ProvideCleanupService); err != nil {
		return nil, fmt.Errorf("failed to provide cleanup service: %w", err)
	}

	if err := container.Provide(NewApplication); err != nil {
		return nil, fmt.Errorf("failed to provide application: %w", err)
	}

	return container, nil
}
