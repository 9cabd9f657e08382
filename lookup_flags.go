package main

import (
	"fmt"
	"strings"

	"github.com/grutapig/twitterlookup/twitterapi"
)

// splitList turns "a, b,,c" into [a b c].
func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func parseSelection[T ~string](flag, value string, known []T) ([]T, error) {
	tokens, err := twitterapi.ParseTokens(splitList(value), known)
	if err != nil {
		return nil, fmt.Errorf("invalid --%s: %w", flag, err)
	}
	return tokens, nil
}

type tweetSelection struct {
	All         bool
	Expansions  string
	TweetFields string
	MediaFields string
	PollFields  string
	PlaceFields string
	UserFields  string
}

func (s tweetSelection) Lookup() (twitterapi.TweetLookup, error) {
	if s.All {
		return twitterapi.TweetLookup{
			Expansions:  twitterapi.AllExpansions,
			TweetFields: publicTweetFields(),
			MediaFields: twitterapi.AllMediaFields,
			PollFields:  twitterapi.AllPollFields,
			PlaceFields: twitterapi.AllPlaceFields,
			UserFields:  twitterapi.AllUserFields,
		}, nil
	}

	var lookup twitterapi.TweetLookup
	var err error
	if lookup.Expansions, err = parseSelection("expansions", s.Expansions, twitterapi.AllExpansions); err != nil {
		return lookup, err
	}
	if lookup.TweetFields, err = parseSelection("tweet-fields", s.TweetFields, twitterapi.AllTweetFields); err != nil {
		return lookup, err
	}
	if lookup.MediaFields, err = parseSelection("media-fields", s.MediaFields, twitterapi.AllMediaFields); err != nil {
		return lookup, err
	}
	if lookup.PollFields, err = parseSelection("poll-fields", s.PollFields, twitterapi.AllPollFields); err != nil {
		return lookup, err
	}
	if lookup.PlaceFields, err = parseSelection("place-fields", s.PlaceFields, twitterapi.AllPlaceFields); err != nil {
		return lookup, err
	}
	if lookup.UserFields, err = parseSelection("user-fields", s.UserFields, twitterapi.AllUserFields); err != nil {
		return lookup, err
	}
	return lookup, nil
}

type userSelection struct {
	All         bool
	Expansions  string
	UserFields  string
	TweetFields string
}

func (s userSelection) Lookup() (twitterapi.UserLookup, error) {
	if s.All {
		return twitterapi.UserLookup{
			Expansions:  twitterapi.AllUserExpansions,
			UserFields:  twitterapi.AllUserFields,
			TweetFields: publicTweetFields(),
		}, nil
	}

	var lookup twitterapi.UserLookup
	var err error
	if lookup.Expansions, err = parseSelection("expansions", s.Expansions, twitterapi.AllUserExpansions); err != nil {
		return lookup, err
	}
	if lookup.UserFields, err = parseSelection("user-fields", s.UserFields, twitterapi.AllUserFields); err != nil {
		return lookup, err
	}
	if lookup.TweetFields, err = parseSelection("tweet-fields", s.TweetFields, twitterapi.AllTweetFields); err != nil {
		return lookup, err
	}
	return lookup, nil
}

// publicTweetFields leaves out the owner-only metrics, which an app-only
// bearer token is refused.
func publicTweetFields() []twitterapi.TweetField {
	fields := make([]twitterapi.TweetField, 0, len(twitterapi.AllTweetFields))
	for _, field := range twitterapi.AllTweetFields {
		switch field {
		case twitterapi.TweetFieldNonPublicMetrics, twitterapi.TweetFieldOrganicMetrics, twitterapi.TweetFieldPromotedMetrics:
			continue
		}
		fields = append(fields, field)
	}
	return fields
}
