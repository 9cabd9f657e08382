package twitterapi

import (
	"encoding/json"
	"fmt"
	"time"
)

// ProfileURL is the website of an account. The API sends a plain string
// unless the entities field was requested, in which case the t.co link
// resolves to a URL entity.
type ProfileURL interface {
	String() string
	profileURL()
}

type RawURL string

func (u RawURL) String() string { return string(u) }
func (RawURL) profileURL()      {}

type ResolvedURL struct {
	URL URL
}

// String prefers the expanded form.
func (u ResolvedURL) String() string {
	if u.URL.ExpandedURL != "" {
		return u.URL.ExpandedURL
	}
	return u.URL.URL
}

func (ResolvedURL) profileURL() {}

func (u ResolvedURL) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.URL)
}

// Description is an account bio with the entities found in it.
type Description struct {
	Text     string   `json:"text"`
	Entities Entities `json:"entities"`
}

type User struct {
	ID              string                      `json:"id"`
	Name            string                      `json:"name"`
	Username        string                      `json:"username"`
	CreatedAt       Optional[time.Time]         `json:"created_at"`
	Description     Optional[Description]       `json:"description"`
	Location        Optional[string]            `json:"location"`
	PinnedTweetID   Optional[string]            `json:"pinned_tweet_id"`
	ProfileImageURL Optional[string]            `json:"profile_image_url"`
	Protected       Optional[bool]              `json:"protected"`
	PublicMetrics   Optional[UserPublicMetrics] `json:"public_metrics"`
	URL             Optional[ProfileURL]        `json:"url"`
	Verified        Optional[bool]              `json:"verified"`
	Withheld        Optional[Withheld]          `json:"withheld"`

	// Joined from includes.tweets.
	PinnedTweet Optional[*Tweet] `json:"pinned_tweet"`
}

// AssembleUser builds a User from the data object of a response and its
// optional includes object.
func AssembleUser(data, includesRaw []byte) (*User, error) {
	inc, err := parseIncludes(includesRaw)
	if err != nil {
		return nil, err
	}
	return assembleUser(data, inc)
}

func assembleUser(data []byte, inc *includes) (*User, error) {
	u := &User{}
	var err error
	if u.ID, err = readRequired(data, asString, "id"); err != nil {
		return nil, err
	}
	if u.Name, err = readRequired(data, asString, "name"); err != nil {
		return nil, err
	}
	if u.Username, err = readRequired(data, asString, "username"); err != nil {
		return nil, err
	}
	if u.CreatedAt, err = readOptional(data, asTime, "created_at"); err != nil {
		return nil, err
	}
	if u.Description, err = readDescription(data); err != nil {
		return nil, err
	}
	if u.Location, err = readOptional(data, asString, "location"); err != nil {
		return nil, err
	}
	if u.PinnedTweetID, err = readOptional(data, asString, "pinned_tweet_id"); err != nil {
		return nil, err
	}
	if u.ProfileImageURL, err = readOptional(data, asString, "profile_image_url"); err != nil {
		return nil, err
	}
	if u.Protected, err = readOptional(data, asBool, "protected"); err != nil {
		return nil, err
	}
	if u.PublicMetrics, err = readOptional(data, asObject(ParseUserPublicMetrics), "public_metrics"); err != nil {
		return nil, err
	}
	if u.URL, err = readProfileURL(data); err != nil {
		return nil, err
	}
	if u.Verified, err = readOptional(data, asBool, "verified"); err != nil {
		return nil, err
	}
	if u.Withheld, err = readOptional(data, asObject(ParseWithheld), "withheld"); err != nil {
		return nil, err
	}

	u.PinnedTweet = joinOne(inc.tweets, u.PinnedTweetID)
	return u, nil
}

func readDescription(data []byte) (Optional[Description], error) {
	text, err := readOptional(data, asString, "description")
	if err != nil || !text.IsSet() {
		return None[Description](), err
	}
	entities, err := readOptional(data, asObject(ParseEntities), "entities", "description")
	if err != nil {
		return None[Description](), err
	}
	return Some(Description{Text: text.MustGet(), Entities: entities.OrElse(Entities{})}), nil
}

// readProfileURL returns the resolved entity when entities.url.urls was sent
// and the plain string otherwise.
func readProfileURL(data []byte) (Optional[ProfileURL], error) {
	resolved, err := readOptional(data, asObjects(ParseURL), "entities", "url", "urls")
	if err != nil {
		return None[ProfileURL](), err
	}
	if urls, ok := resolved.Get(); ok && len(urls) > 0 {
		return Some[ProfileURL](ResolvedURL{URL: urls[0]}), nil
	}

	raw, err := readOptional(data, asString, "url")
	if err != nil || !raw.IsSet() {
		return None[ProfileURL](), err
	}
	return Some[ProfileURL](RawURL(raw.MustGet())), nil
}

// ParseUserResponse splits a GET /users/{id} body into data and includes and
// assembles the user.
func ParseUserResponse(body []byte) (*User, error) {
	data, includesRaw, err := splitEnvelope(body)
	if err != nil {
		return nil, err
	}
	user, err := AssembleUser(data, includesRaw)
	if err != nil {
		return nil, fmt.Errorf("error assemble user: %w", err)
	}
	return user, nil
}
