package twitterapi

import (
	"errors"
	"testing"

	"github.com/google/go-querystring/query"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTweetLookupQuery(t *testing.T) {
	t.Run("CommaJoinedInOrder", func(t *testing.T) {
		values, err := query.Values(TweetLookup{
			Expansions:  []Expansion{ExpansionMediaKeys, ExpansionAuthorID},
			TweetFields: []TweetField{TweetFieldPublicMetrics, TweetFieldCreatedAt, TweetFieldAttachments},
			MediaFields: []MediaField{MediaFieldDurationMS, MediaFieldWidth},
		})
		require.NoError(t, err)

		assert.Equal(t, "attachments.media_keys,author_id", values.Get("expansions"))
		assert.Equal(t, "public_metrics,created_at,attachments", values.Get("tweet.fields"))
		assert.Equal(t, "duration_ms,width", values.Get("media.fields"))
	})

	t.Run("EmptySelectionsOmitted", func(t *testing.T) {
		values, err := query.Values(TweetLookup{PollFields: []PollField{PollFieldOptions}})
		require.NoError(t, err)

		assert.Equal(t, "options", values.Get("poll.fields"))
		for _, key := range []string{"expansions", "tweet.fields", "media.fields", "place.fields", "user.fields"} {
			_, ok := values[key]
			assert.False(t, ok, key)
		}
	})

	t.Run("NothingSelected", func(t *testing.T) {
		values, err := query.Values(TweetLookup{})
		require.NoError(t, err)
		assert.Equal(t, "", values.Encode())
	})
}

func TestUserLookupQuery(t *testing.T) {
	values, err := query.Values(UserLookup{
		Expansions: []UserExpansion{UserExpansionPinnedTweetID},
		UserFields: AllUserFields,
	})
	require.NoError(t, err)

	assert.Equal(t, "pinned_tweet_id", values.Get("expansions"))
	assert.Equal(t, "created_at,description,entities,id,location,name,pinned_tweet_id,profile_image_url,protected,public_metrics,url,username,verified,withheld", values.Get("user.fields"))
	_, ok := values["tweet.fields"]
	assert.False(t, ok)
}

func TestParseTokens(t *testing.T) {
	t.Run("KeepsOrderAndSkipsBlanks", func(t *testing.T) {
		fields, err := ParseTokens([]string{"lang", "", "author_id"}, AllTweetFields)
		require.NoError(t, err)
		assert.Equal(t, []TweetField{TweetFieldLang, TweetFieldAuthorID}, fields)
	})

	t.Run("UnknownToken", func(t *testing.T) {
		_, err := ParseTokens([]string{"width", "colour"}, AllMediaFields)
		require.Error(t, err)

		var enumErr *UnknownEnumValueError
		require.True(t, errors.As(err, &enumErr))
		assert.Equal(t, "media field", enumErr.Enum)
		assert.Equal(t, "colour", enumErr.Value)
	})

	t.Run("Expansions", func(t *testing.T) {
		expansions, err := ParseTokens([]string{"geo.place_id", "referenced_tweets.id"}, AllExpansions)
		require.NoError(t, err)
		assert.Equal(t, []Expansion{ExpansionPlaceID, ExpansionReferencedTweetsID}, expansions)
	})
}
