package main

import (
	"bytes"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/grutapig/twitterlookup/twitterapi"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProvideConfig(t *testing.T) {
	t.Setenv(ENV_TWITTER_BEARER_TOKEN, "token")
	t.Setenv(ENV_TWITTER_API_BASE_URL, "")
	t.Setenv(ENV_LOGGING_DATABASE_PATH, "")
	t.Setenv(ENV_TELEGRAM_ADMIN_CHAT_ID, "1001")

	config, err := ProvideConfig()
	require.NoError(t, err)
	assert.Equal(t, "token", config.TwitterBearerToken)
	assert.Equal(t, twitterapi.DefaultBaseURL, config.TwitterAPIBaseURL)
	assert.Equal(t, DEFAULT_LOGGING_DATABASE_PATH, config.LoggingDBPath)
	assert.Equal(t, "1001", config.TelegramAdminChatID)
}

func TestProvideConfig_MissingToken(t *testing.T) {
	t.Setenv(ENV_TWITTER_BEARER_TOKEN, "")

	_, err := ProvideConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), ENV_TWITTER_BEARER_TOKEN)
}

func TestBuildContainer(t *testing.T) {
	t.Setenv(ENV_TWITTER_BEARER_TOKEN, "token")
	t.Setenv(ENV_LOGGING_DATABASE_PATH, filepath.Join(t.TempDir(), "container.db"))
	t.Setenv(ENV_TELEGRAM_API_KEY, "")
	t.Setenv(ENV_PROXY_DSN, "")

	container, err := BuildContainer()
	require.NoError(t, err)

	err = container.Invoke(func(app *Application) error {
		defer app.Shutdown()
		assert.NotNil(t, app.twitterAPI)
		assert.False(t, app.telegramService.Enabled())
		_, err := app.RecentRequests("", 5)
		return err
	})
	assert.NoError(t, err)
}

func TestBuildContainer_MissingToken(t *testing.T) {
	t.Setenv(ENV_TWITTER_BEARER_TOKEN, "")

	err := withApplication(func(app *Application) error {
		t.Fatal("application should not be built")
		return nil
	})
	assert.Error(t, err)
}

func restoreDefaultLogger(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() {
		slog.SetDefault(original)
	})
}

func TestConfigLogger(t *testing.T) {
	var buf bytes.Buffer
	restoreDefaultLogger(t)
	logger := configLogger("WARN", &buf)

	logger.Info("hidden")
	logger.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestLogMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()
	counter := prometheus.NewCounterVec(prometheus.CounterOpts{Name: "twitterapi_test_total"}, []string{"endpoint"})
	registry.MustRegister(counter)
	counter.WithLabelValues("tweets").Add(3)

	var buf bytes.Buffer
	restoreDefaultLogger(t)
	configLogger("info", &buf)

	logMetrics(registry)
	assert.Contains(t, buf.String(), "metric=twitterapi_test_total")
	assert.Contains(t, buf.String(), "endpoint=tweets")
	assert.Contains(t, buf.String(), "value=3")
}
