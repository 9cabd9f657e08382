package twitterapi

// Field and expansion tokens accepted by the lookup endpoints. Selections are
// sent comma-joined in the order given; an empty selection omits the
// parameter.

type TweetField string

const (
	TweetFieldAttachments        TweetField = "attachments"
	TweetFieldAuthorID           TweetField = "author_id"
	TweetFieldContextAnnotations TweetField = "context_annotations"
	TweetFieldConversationID     TweetField = "conversation_id"
	TweetFieldCreatedAt          TweetField = "created_at"
	TweetFieldEntities           TweetField = "entities"
	TweetFieldGeo                TweetField = "geo"
	TweetFieldID                 TweetField = "id"
	TweetFieldInReplyToUserID    TweetField = "in_reply_to_user_id"
	TweetFieldLang               TweetField = "lang"
	TweetFieldNonPublicMetrics   TweetField = "non_public_metrics"
	TweetFieldPublicMetrics      TweetField = "public_metrics"
	TweetFieldOrganicMetrics     TweetField = "organic_metrics"
	TweetFieldPromotedMetrics    TweetField = "promoted_metrics"
	TweetFieldPossiblySensitive  TweetField = "possibly_sensitive"
	TweetFieldReferencedTweets   TweetField = "referenced_tweets"
	TweetFieldReplySettings      TweetField = "reply_settings"
	TweetFieldSource             TweetField = "source"
	TweetFieldText               TweetField = "text"
	TweetFieldWithheld           TweetField = "withheld"
)

var AllTweetFields = []TweetField{
	TweetFieldAttachments, TweetFieldAuthorID, TweetFieldContextAnnotations,
	TweetFieldConversationID, TweetFieldCreatedAt, TweetFieldEntities,
	TweetFieldGeo, TweetFieldID, TweetFieldInReplyToUserID, TweetFieldLang,
	TweetFieldNonPublicMetrics, TweetFieldPublicMetrics, TweetFieldOrganicMetrics,
	TweetFieldPromotedMetrics, TweetFieldPossiblySensitive, TweetFieldReferencedTweets,
	TweetFieldReplySettings, TweetFieldSource, TweetFieldText, TweetFieldWithheld,
}

// Expansion asks the API to fill a side table for a relation of the tweet.
type Expansion string

const (
	ExpansionAuthorID                 Expansion = "author_id"
	ExpansionReferencedTweetsID       Expansion = "referenced_tweets.id"
	ExpansionInReplyToUserID          Expansion = "in_reply_to_user_id"
	ExpansionMediaKeys                Expansion = "attachments.media_keys"
	ExpansionPollIDs                  Expansion = "attachments.poll_ids"
	ExpansionPlaceID                  Expansion = "geo.place_id"
	ExpansionMentionsUsername         Expansion = "entities.mentions.username"
	ExpansionReferencedTweetsAuthorID Expansion = "referenced_tweets.id.author_id"
)

var AllExpansions = []Expansion{
	ExpansionAuthorID, ExpansionReferencedTweetsID, ExpansionInReplyToUserID,
	ExpansionMediaKeys, ExpansionPollIDs, ExpansionPlaceID,
	ExpansionMentionsUsername, ExpansionReferencedTweetsAuthorID,
}

type MediaField string

const (
	MediaFieldDurationMS      MediaField = "duration_ms"
	MediaFieldHeight          MediaField = "height"
	MediaFieldMediaKey        MediaField = "media_key"
	MediaFieldPreviewImageURL MediaField = "preview_image_url"
	MediaFieldType            MediaField = "type"
	MediaFieldURL             MediaField = "url"
	MediaFieldWidth           MediaField = "width"
	MediaFieldPublicMetrics   MediaField = "public_metrics"
	MediaFieldAltText         MediaField = "alt_text"
)

var AllMediaFields = []MediaField{
	MediaFieldDurationMS, MediaFieldHeight, MediaFieldMediaKey,
	MediaFieldPreviewImageURL, MediaFieldType, MediaFieldURL, MediaFieldWidth,
	MediaFieldPublicMetrics, MediaFieldAltText,
}

type PollField string

const (
	PollFieldDurationMinutes PollField = "duration_minutes"
	PollFieldEndDatetime     PollField = "end_datetime"
	PollFieldID              PollField = "id"
	PollFieldOptions         PollField = "options"
	PollFieldVotingStatus    PollField = "voting_status"
)

var AllPollFields = []PollField{
	PollFieldDurationMinutes, PollFieldEndDatetime, PollFieldID,
	PollFieldOptions, PollFieldVotingStatus,
}

type PlaceField string

const (
	PlaceFieldContainedWithin PlaceField = "contained_within"
	PlaceFieldCountry         PlaceField = "country"
	PlaceFieldCountryCode     PlaceField = "country_code"
	PlaceFieldFullName        PlaceField = "full_name"
	PlaceFieldGeo             PlaceField = "geo"
	PlaceFieldID              PlaceField = "id"
	PlaceFieldName            PlaceField = "name"
	PlaceFieldPlaceType       PlaceField = "place_type"
)

var AllPlaceFields = []PlaceField{
	PlaceFieldContainedWithin, PlaceFieldCountry, PlaceFieldCountryCode,
	PlaceFieldFullName, PlaceFieldGeo, PlaceFieldID, PlaceFieldName,
	PlaceFieldPlaceType,
}

type UserField string

const (
	UserFieldCreatedAt       UserField = "created_at"
	UserFieldDescription     UserField = "description"
	UserFieldEntities        UserField = "entities"
	UserFieldID              UserField = "id"
	UserFieldLocation        UserField = "location"
	UserFieldName            UserField = "name"
	UserFieldPinnedTweetID   UserField = "pinned_tweet_id"
	UserFieldProfileImageURL UserField = "profile_image_url"
	UserFieldProtected       UserField = "protected"
	UserFieldPublicMetrics   UserField = "public_metrics"
	UserFieldURL             UserField = "url"
	UserFieldUsername        UserField = "username"
	UserFieldVerified        UserField = "verified"
	UserFieldWithheld        UserField = "withheld"
)

var AllUserFields = []UserField{
	UserFieldCreatedAt, UserFieldDescription, UserFieldEntities, UserFieldID,
	UserFieldLocation, UserFieldName, UserFieldPinnedTweetID,
	UserFieldProfileImageURL, UserFieldProtected, UserFieldPublicMetrics,
	UserFieldURL, UserFieldUsername, UserFieldVerified, UserFieldWithheld,
}

// UserExpansion is the expansion set of the user lookup endpoints.
type UserExpansion string

const (
	UserExpansionPinnedTweetID UserExpansion = "pinned_tweet_id"
)

var AllUserExpansions = []UserExpansion{UserExpansionPinnedTweetID}

// ParseTokens maps raw strings (flags, config) onto a closed token set,
// keeping their order. Blank entries are skipped.
func ParseTokens[T ~string](values []string, known []T) ([]T, error) {
	tokens := make([]T, 0, len(values))
	for _, value := range values {
		if value == "" {
			continue
		}
		found := false
		for _, k := range known {
			if string(k) == value {
				tokens = append(tokens, k)
				found = true
				break
			}
		}
		if !found {
			return nil, &UnknownEnumValueError{Enum: tokenKind(known), Value: value}
		}
	}
	return tokens, nil
}

func tokenKind[T ~string](known []T) string {
	switch any(known).(type) {
	case []TweetField:
		return "tweet field"
	case []Expansion:
		return "expansion"
	case []MediaField:
		return "media field"
	case []PollField:
		return "poll field"
	case []PlaceField:
		return "place field"
	case []UserField:
		return "user field"
	case []UserExpansion:
		return "user expansion"
	default:
		return "token"
	}
}
