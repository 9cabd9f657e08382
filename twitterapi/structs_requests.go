package twitterapi

import (
	"net/http"
	"time"
)

// TweetLookup selects the optional attributes and side tables of GET
// /tweets/{id}.
type TweetLookup struct {
	Expansions  []Expansion  `url:"expansions,comma,omitempty"`
	TweetFields []TweetField `url:"tweet.fields,comma,omitempty"`
	MediaFields []MediaField `url:"media.fields,comma,omitempty"`
	PollFields  []PollField  `url:"poll.fields,comma,omitempty"`
	PlaceFields []PlaceField `url:"place.fields,comma,omitempty"`
	UserFields  []UserField  `url:"user.fields,comma,omitempty"`
}

// UserLookup selects the optional attributes of GET /users/{id} and
// /users/by/username/{username}. TweetFields apply to the pinned tweet.
type UserLookup struct {
	Expansions  []UserExpansion `url:"expansions,comma,omitempty"`
	UserFields  []UserField     `url:"user.fields,comma,omitempty"`
	TweetFields []TweetField    `url:"tweet.fields,comma,omitempty"`
}

type APIResponse struct {
	StatusCode int
	Headers    http.Header
	RawBody    []byte
}

func (r *APIResponse) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// RequestRecord describes one finished lookup for a RequestRecorder.
type RequestRecord struct {
	Endpoint   string
	ResourceID string
	URL        string
	StatusCode int
	Duration   time.Duration
	Err        error
	StartedAt  time.Time
}

const (
	EndpointTweet          = "tweets"
	EndpointUser           = "users"
	EndpointUserByUsername = "users/by/username"
)
