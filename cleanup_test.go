package main

import (
	"context"
	"testing"
	"time"

	"github.com/grutapig/twitterlookup/twitterapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanupService_Run(t *testing.T) {
	loggingService := setupTestLoggingDB(t)
	for _, id := range []string{"1", "2", "3"} {
		require.NoError(t, loggingService.RecordRequest(context.Background(), twitterapi.RequestRecord{
			Endpoint:   twitterapi.EndpointTweet,
			ResourceID: id,
			StatusCode: 200,
			StartedAt:  time.Now(),
		}))
	}
	require.NoError(t, loggingService.db.Model(&RequestLogModel{}).
		Where("resource_id IN ?", []string{"1", "2"}).
		Update("created_at", time.Now().AddDate(0, 0, -10)).Error)

	stats, err := NewCleanupService(loggingService).Run(7)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats["request_logs"])
	assert.Equal(t, int64(0), stats["notification_logs"])
}

func TestCleanupService_RunNegativeDays(t *testing.T) {
	loggingService := setupTestLoggingDB(t)

	_, err := NewCleanupService(loggingService).Run(-1)
	assert.Error(t, err)
}
