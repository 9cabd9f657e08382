package twitterapi

import (
	"fmt"
	"time"
)

type ReferenceType string

const (
	ReferenceTypeRetweeted ReferenceType = "retweeted"
	ReferenceTypeQuoted    ReferenceType = "quoted"
	ReferenceTypeRepliedTo ReferenceType = "replied_to"
)

// ReferencedTweet points at a retweeted, quoted or replied-to tweet. Tweet is
// only filled when the referenced_tweets.id expansion brought it back.
type ReferencedTweet struct {
	Type  ReferenceType    `json:"type"`
	ID    string           `json:"id"`
	Tweet Optional[*Tweet] `json:"tweet"`
}

func ParseReferencedTweet(raw []byte) (ReferencedTweet, error) {
	var r ReferencedTweet
	var err error
	if r.Type, err = readRequired(raw, asEnum("reference type", ReferenceTypeRetweeted, ReferenceTypeQuoted, ReferenceTypeRepliedTo), "type"); err != nil {
		return ReferencedTweet{}, err
	}
	if r.ID, err = readRequired(raw, asString, "id"); err != nil {
		return ReferencedTweet{}, err
	}
	return r, nil
}

type Tweet struct {
	ID                 string                           `json:"id"`
	Text               string                           `json:"text"`
	AuthorID           Optional[string]                 `json:"author_id"`
	ConversationID     Optional[string]                 `json:"conversation_id"`
	CreatedAt          Optional[time.Time]              `json:"created_at"`
	InReplyToUserID    Optional[string]                 `json:"in_reply_to_user_id"`
	Lang               Optional[string]                 `json:"lang"`
	Source             Optional[string]                 `json:"source"`
	PossiblySensitive  Optional[bool]                   `json:"possibly_sensitive"`
	ReplySettings      Optional[string]                 `json:"reply_settings"`
	Attachments        Optional[Attachments]            `json:"attachments"`
	ContextAnnotations Optional[[]ContextAnnotation]    `json:"context_annotations"`
	Entities           Optional[Entities]               `json:"entities"`
	Geo                Optional[Geo]                    `json:"geo"`
	PublicMetrics      Optional[TweetPublicMetrics]     `json:"public_metrics"`
	NonPublicMetrics   Optional[TweetNonPublicMetrics]  `json:"non_public_metrics"`
	OrganicMetrics     Optional[TweetEngagementMetrics] `json:"organic_metrics"`
	PromotedMetrics    Optional[TweetEngagementMetrics] `json:"promoted_metrics"`
	ReferencedTweets   Optional[[]ReferencedTweet]      `json:"referenced_tweets"`
	Withheld           Optional[Withheld]               `json:"withheld"`

	// Joined from includes.
	Author         Optional[*User]   `json:"author"`
	InReplyToUser  Optional[*User]   `json:"in_reply_to_user"`
	MentionedUsers Optional[[]*User] `json:"mentioned_users"`
	Media          Optional[[]Media] `json:"media"`
	Polls          Optional[[]Poll]  `json:"polls"`
	Place          Optional[Place]   `json:"place"`
}

// IsPossiblySensitive reads an absent flag as false. Use PossiblySensitive to
// tell "not requested" apart.
func (t *Tweet) IsPossiblySensitive() bool {
	return t.PossiblySensitive.OrElse(false)
}

// AssembleTweet builds a Tweet from the data object of a response and its
// optional includes object.
func AssembleTweet(data, includesRaw []byte) (*Tweet, error) {
	inc, err := parseIncludes(includesRaw)
	if err != nil {
		return nil, err
	}
	return assembleTweet(data, inc)
}

func assembleTweet(data []byte, inc *includes) (*Tweet, error) {
	t := &Tweet{}
	var err error
	if t.ID, err = readRequired(data, asString, "id"); err != nil {
		return nil, err
	}
	if t.Text, err = readRequired(data, asString, "text"); err != nil {
		return nil, err
	}
	if t.AuthorID, err = readOptional(data, asString, "author_id"); err != nil {
		return nil, err
	}
	if t.ConversationID, err = readOptional(data, asString, "conversation_id"); err != nil {
		return nil, err
	}
	if t.CreatedAt, err = readOptional(data, asTime, "created_at"); err != nil {
		return nil, err
	}
	if t.InReplyToUserID, err = readOptional(data, asString, "in_reply_to_user_id"); err != nil {
		return nil, err
	}
	if t.Lang, err = readOptional(data, asString, "lang"); err != nil {
		return nil, err
	}
	if t.Source, err = readOptional(data, asString, "source"); err != nil {
		return nil, err
	}
	if t.PossiblySensitive, err = readOptional(data, asBool, "possibly_sensitive"); err != nil {
		return nil, err
	}
	if t.ReplySettings, err = readOptional(data, asString, "reply_settings"); err != nil {
		return nil, err
	}
	if t.Attachments, err = readOptional(data, asObject(ParseAttachments), "attachments"); err != nil {
		return nil, err
	}
	if t.ContextAnnotations, err = readOptional(data, asObjects(ParseContextAnnotation), "context_annotations"); err != nil {
		return nil, err
	}
	if t.Entities, err = readOptional(data, asObject(ParseEntities), "entities"); err != nil {
		return nil, err
	}
	if t.Geo, err = readOptional(data, asObject(ParseGeo), "geo"); err != nil {
		return nil, err
	}
	if t.PublicMetrics, err = readOptional(data, asObject(ParseTweetPublicMetrics), "public_metrics"); err != nil {
		return nil, err
	}
	if t.NonPublicMetrics, err = readOptional(data, asObject(ParseTweetNonPublicMetrics), "non_public_metrics"); err != nil {
		return nil, err
	}
	if t.OrganicMetrics, err = readOptional(data, asObject(ParseTweetEngagementMetrics), "organic_metrics"); err != nil {
		return nil, err
	}
	if t.PromotedMetrics, err = readOptional(data, asObject(ParseTweetEngagementMetrics), "promoted_metrics"); err != nil {
		return nil, err
	}
	if t.ReferencedTweets, err = readOptional(data, asObjects(ParseReferencedTweet), "referenced_tweets"); err != nil {
		return nil, err
	}
	if t.Withheld, err = readOptional(data, asObject(ParseWithheld), "withheld"); err != nil {
		return nil, err
	}

	t.join(inc)
	return t, nil
}

func (t *Tweet) join(inc *includes) {
	attachments := t.Attachments.OrElse(Attachments{})
	t.Media = joinAll(inc.media, attachments.MediaKeys)
	t.Polls = joinAll(inc.polls, attachments.PollIDs)

	t.Author = joinOne(inc.users, t.AuthorID)
	t.InReplyToUser = joinOne(inc.users, t.InReplyToUserID)
	t.MentionedUsers = inc.mentionedUsers(t.Entities.OrElse(Entities{}).Mentions)

	if geo, ok := t.Geo.Get(); ok {
		t.Place = joinOne(inc.places, geo.PlaceID)
	}

	if refs, ok := t.ReferencedTweets.Get(); ok {
		for i := range refs {
			refs[i].Tweet = joinOne(inc.tweets, Some(refs[i].ID))
		}
	}
}

// ParseTweetResponse splits a GET /tweets/{id} body into data and includes
// and assembles the tweet.
func ParseTweetResponse(body []byte) (*Tweet, error) {
	data, includesRaw, err := splitEnvelope(body)
	if err != nil {
		return nil, err
	}
	tweet, err := AssembleTweet(data, includesRaw)
	if err != nil {
		return nil, fmt.Errorf("error assemble tweet: %w", err)
	}
	return tweet, nil
}
