package main

import (
	"errors"
	"testing"

	"github.com/grutapig/twitterlookup/twitterapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, splitList("a, b,,c "))
	assert.Nil(t, splitList(""))
	assert.Nil(t, splitList(" , "))
}

func TestTweetSelection_Lookup(t *testing.T) {
	lookup, err := tweetSelection{
		Expansions:  "author_id, attachments.media_keys",
		TweetFields: "created_at,public_metrics",
		MediaFields: "url",
	}.Lookup()
	require.NoError(t, err)

	assert.Equal(t, []twitterapi.Expansion{twitterapi.ExpansionAuthorID, twitterapi.ExpansionMediaKeys}, lookup.Expansions)
	assert.Equal(t, []twitterapi.TweetField{twitterapi.TweetFieldCreatedAt, twitterapi.TweetFieldPublicMetrics}, lookup.TweetFields)
	assert.Len(t, lookup.MediaFields, 1)
	assert.Empty(t, lookup.PollFields)
	assert.Empty(t, lookup.PlaceFields)
	assert.Empty(t, lookup.UserFields)
}

func TestTweetSelection_LookupUnknownToken(t *testing.T) {
	_, err := tweetSelection{TweetFields: "created_at,favourites"}.Lookup()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--tweet-fields")
	assert.True(t, errors.Is(err, twitterapi.ErrUnknownEnumValue))
}

func TestTweetSelection_LookupAll(t *testing.T) {
	lookup, err := tweetSelection{All: true, TweetFields: "ignored"}.Lookup()
	require.NoError(t, err)

	assert.Equal(t, twitterapi.AllExpansions, lookup.Expansions)
	assert.Equal(t, twitterapi.AllUserFields, lookup.UserFields)
	assert.Contains(t, lookup.TweetFields, twitterapi.TweetFieldPublicMetrics)
	assert.NotContains(t, lookup.TweetFields, twitterapi.TweetFieldNonPublicMetrics)
	assert.NotContains(t, lookup.TweetFields, twitterapi.TweetFieldOrganicMetrics)
	assert.NotContains(t, lookup.TweetFields, twitterapi.TweetFieldPromotedMetrics)
	assert.Len(t, lookup.TweetFields, len(twitterapi.AllTweetFields)-3)
}

func TestUserSelection_Lookup(t *testing.T) {
	lookup, err := userSelection{
		Expansions: "pinned_tweet_id",
		UserFields: "description,entities",
	}.Lookup()
	require.NoError(t, err)
	assert.Equal(t, []twitterapi.UserExpansion{twitterapi.UserExpansionPinnedTweetID}, lookup.Expansions)
	assert.Len(t, lookup.UserFields, 2)
	assert.Empty(t, lookup.TweetFields)

	_, err = userSelection{Expansions: "author_id"}.Lookup()
	assert.Error(t, err)

	lookup, err = userSelection{All: true}.Lookup()
	require.NoError(t, err)
	assert.Equal(t, twitterapi.AllUserExpansions, lookup.Expansions)
	assert.Equal(t, twitterapi.AllUserFields, lookup.UserFields)
}
