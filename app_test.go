package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/grutapig/twitterlookup/twitterapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testApplication struct {
	app     *Application
	out     *bytes.Buffer
	bot     *fakeBot
	logging *LoggingService

	pathsMutex sync.Mutex
	paths      []string
}

func setupTestApplication(t *testing.T, chatIDs string) *testApplication {
	ta := &testApplication{
		out:     &bytes.Buffer{},
		bot:     &fakeBot{},
		logging: setupTestLoggingDB(t),
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ta.pathsMutex.Lock()
		ta.paths = append(ta.paths, r.URL.Path)
		ta.pathsMutex.Unlock()
		switch r.URL.Path {
		case "/2/tweets/1263145271946551300":
			w.Write(loadTestFixture(t, "tweet_full.json"))
		case "/2/users/2244994945", "/2/users/by/username/TwitterDev":
			w.Write(loadTestFixture(t, "user_full.json"))
		default:
			w.WriteHeader(http.StatusNotFound)
			w.Write(loadTestFixture(t, "not_found.json"))
		}
	}))
	t.Cleanup(server.Close)

	api, err := twitterapi.NewTwitterAPIService("test-token", server.URL+"/2", "", twitterapi.WithRecorder(ta.logging))
	require.NoError(t, err)

	telegramService, err := NewTelegramService("key", "", chatIDs, ta.logging)
	require.NoError(t, err)
	telegramService.sender = ta.bot

	ta.app = NewApplication(&Config{}, api, ta.logging, telegramService, NewNotificationFormatter(), NewCleanupService(ta.logging))
	ta.app.out = ta.out
	return ta
}

func TestApplication_LookupTweet(t *testing.T) {
	ta := setupTestApplication(t, "1001")

	tweet, err := ta.app.LookupTweet(context.Background(), "1263145271946551300", twitterapi.TweetLookup{}, true)
	require.NoError(t, err)
	assert.Equal(t, "1263145271946551300", tweet.ID)

	var printed map[string]any
	require.NoError(t, json.Unmarshal(ta.out.Bytes(), &printed))
	assert.Equal(t, "1263145271946551300", printed["id"])
	assert.Contains(t, ta.out.String(), "https://developer.twitter.com/en/docs/twitter-api")

	require.Len(t, ta.bot.sent, 1)
	assert.Contains(t, ta.bot.sent[0].Text, "(@TwitterDev)")

	requests, err := ta.logging.GetRecentRequests(10)
	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.True(t, requests[0].IsSuccess)
	assert.Equal(t, twitterapi.EndpointTweet, requests[0].Endpoint)

	notifications, err := ta.logging.GetNotificationsByResource("1263145271946551300")
	require.NoError(t, err)
	assert.Len(t, notifications, 1)
}

func TestApplication_LookupTweetNotFound(t *testing.T) {
	ta := setupTestApplication(t, "1001")

	_, err := ta.app.LookupTweet(context.Background(), "1", twitterapi.TweetLookup{}, true)
	require.Error(t, err)

	var requestErr *twitterapi.RequestFailedError
	require.ErrorAs(t, err, &requestErr)
	assert.Equal(t, http.StatusNotFound, requestErr.StatusCode)
	assert.Empty(t, ta.out.String())
	assert.Empty(t, ta.bot.sent)

	requests, err := ta.logging.GetRecentRequests(10)
	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.False(t, requests[0].IsSuccess)
}

func TestApplication_LookupTweetNotifyWithoutChats(t *testing.T) {
	ta := setupTestApplication(t, "")

	_, err := ta.app.LookupTweet(context.Background(), "1263145271946551300", twitterapi.TweetLookup{}, true)
	require.NoError(t, err)
	assert.Empty(t, ta.bot.sent)
}

func TestApplication_LookupUser(t *testing.T) {
	ta := setupTestApplication(t, "1001")
	ctx := context.Background()

	user, err := ta.app.LookupUser(ctx, "2244994945", false, twitterapi.UserLookup{}, false)
	require.NoError(t, err)
	assert.Equal(t, "TwitterDev", user.Username)

	_, err = ta.app.LookupUser(ctx, "TwitterDev", false, twitterapi.UserLookup{}, false)
	require.NoError(t, err)

	_, err = ta.app.LookupUser(ctx, "@TwitterDev", true, twitterapi.UserLookup{}, true)
	require.NoError(t, err)

	ta.pathsMutex.Lock()
	defer ta.pathsMutex.Unlock()
	assert.Equal(t, []string{
		"/2/users/2244994945",
		"/2/users/by/username/TwitterDev",
		"/2/users/by/username/TwitterDev",
	}, ta.paths)
	require.Len(t, ta.bot.sent, 1)
	assert.Contains(t, ta.bot.sent[0].Text, "Open profile")
}

func TestApplication_RecentRequestsAndPrune(t *testing.T) {
	ta := setupTestApplication(t, "")
	ctx := context.Background()

	_, err := ta.app.LookupTweet(ctx, "1263145271946551300", twitterapi.TweetLookup{}, false)
	require.NoError(t, err)
	_, err = ta.app.LookupTweet(ctx, "1", twitterapi.TweetLookup{}, false)
	require.Error(t, err)
	ta.out.Reset()

	requests, err := ta.app.RecentRequests("", 10)
	require.NoError(t, err)
	assert.Len(t, requests, 2)
	assert.Contains(t, ta.out.String(), "1263145271946551300")
	assert.Contains(t, ta.out.String(), "failed: ")
	ta.out.Reset()

	requests, err = ta.app.RecentRequests("1", 10)
	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.False(t, requests[0].IsSuccess)
	assert.NotContains(t, ta.out.String(), "1263145271946551300")
	ta.out.Reset()

	stats, err := ta.app.RequestStats(7)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats["total_requests"])
	assert.Equal(t, int64(1), stats["failed_requests"])

	var printedStats map[string]any
	require.NoError(t, json.Unmarshal(ta.out.Bytes(), &printedStats))
	assert.Equal(t, float64(50), printedStats["success_rate"])
	assert.Equal(t, float64(7), printedStats["days"])
	ta.out.Reset()

	_, err = ta.app.RequestStats(0)
	assert.Error(t, err)

	stats, err = ta.app.Prune(30)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats["request_logs"])

	var printed map[string]any
	require.NoError(t, json.Unmarshal(ta.out.Bytes(), &printed))
	assert.Equal(t, float64(2), printed["request_logs"])

	_, err = ta.app.Prune(-5)
	assert.Error(t, err)
}

func TestIsNumericID(t *testing.T) {
	assert.True(t, isNumericID("2244994945"))
	assert.False(t, isNumericID("TwitterDev"))
	assert.False(t, isNumericID("@123"))
	assert.False(t, isNumericID(""))
}
