package twitterapi

// Engagement counters. Each struct is all-or-nothing: it is only built when
// the API returned the enclosing metrics object.

type TweetPublicMetrics struct {
	RetweetCount    int           `json:"retweet_count"`
	ReplyCount      int           `json:"reply_count"`
	LikeCount       int           `json:"like_count"`
	QuoteCount      int           `json:"quote_count"`
	BookmarkCount   Optional[int] `json:"bookmark_count"`
	ImpressionCount Optional[int] `json:"impression_count"`
}

func ParseTweetPublicMetrics(raw []byte) (TweetPublicMetrics, error) {
	var m TweetPublicMetrics
	var err error
	if m.RetweetCount, err = readRequired(raw, asInt, "retweet_count"); err != nil {
		return TweetPublicMetrics{}, err
	}
	if m.ReplyCount, err = readRequired(raw, asInt, "reply_count"); err != nil {
		return TweetPublicMetrics{}, err
	}
	if m.LikeCount, err = readRequired(raw, asInt, "like_count"); err != nil {
		return TweetPublicMetrics{}, err
	}
	if m.QuoteCount, err = readRequired(raw, asInt, "quote_count"); err != nil {
		return TweetPublicMetrics{}, err
	}
	if m.BookmarkCount, err = readOptional(raw, asInt, "bookmark_count"); err != nil {
		return TweetPublicMetrics{}, err
	}
	if m.ImpressionCount, err = readOptional(raw, asInt, "impression_count"); err != nil {
		return TweetPublicMetrics{}, err
	}
	return m, nil
}

// TweetNonPublicMetrics is only returned to the tweet owner.
type TweetNonPublicMetrics struct {
	ImpressionCount   int           `json:"impression_count"`
	URLLinkClicks     Optional[int] `json:"url_link_clicks"`
	UserProfileClicks int           `json:"user_profile_clicks"`
}

func ParseTweetNonPublicMetrics(raw []byte) (TweetNonPublicMetrics, error) {
	var m TweetNonPublicMetrics
	var err error
	if m.ImpressionCount, err = readRequired(raw, asInt, "impression_count"); err != nil {
		return TweetNonPublicMetrics{}, err
	}
	if m.URLLinkClicks, err = readOptional(raw, asInt, "url_link_clicks"); err != nil {
		return TweetNonPublicMetrics{}, err
	}
	if m.UserProfileClicks, err = readRequired(raw, asInt, "user_profile_clicks"); err != nil {
		return TweetNonPublicMetrics{}, err
	}
	return m, nil
}

// TweetEngagementMetrics is the shape of both organic_metrics and
// promoted_metrics.
type TweetEngagementMetrics struct {
	ImpressionCount   int           `json:"impression_count"`
	LikeCount         int           `json:"like_count"`
	ReplyCount        int           `json:"reply_count"`
	RetweetCount      int           `json:"retweet_count"`
	URLLinkClicks     Optional[int] `json:"url_link_clicks"`
	UserProfileClicks int           `json:"user_profile_clicks"`
}

func ParseTweetEngagementMetrics(raw []byte) (TweetEngagementMetrics, error) {
	var m TweetEngagementMetrics
	var err error
	if m.ImpressionCount, err = readRequired(raw, asInt, "impression_count"); err != nil {
		return TweetEngagementMetrics{}, err
	}
	if m.LikeCount, err = readRequired(raw, asInt, "like_count"); err != nil {
		return TweetEngagementMetrics{}, err
	}
	if m.ReplyCount, err = readRequired(raw, asInt, "reply_count"); err != nil {
		return TweetEngagementMetrics{}, err
	}
	if m.RetweetCount, err = readRequired(raw, asInt, "retweet_count"); err != nil {
		return TweetEngagementMetrics{}, err
	}
	if m.URLLinkClicks, err = readOptional(raw, asInt, "url_link_clicks"); err != nil {
		return TweetEngagementMetrics{}, err
	}
	if m.UserProfileClicks, err = readRequired(raw, asInt, "user_profile_clicks"); err != nil {
		return TweetEngagementMetrics{}, err
	}
	return m, nil
}

type UserPublicMetrics struct {
	FollowersCount int           `json:"followers_count"`
	FollowingCount int           `json:"following_count"`
	TweetCount     int           `json:"tweet_count"`
	ListedCount    int           `json:"listed_count"`
	LikeCount      Optional[int] `json:"like_count"`
}

func ParseUserPublicMetrics(raw []byte) (UserPublicMetrics, error) {
	var m UserPublicMetrics
	var err error
	if m.FollowersCount, err = readRequired(raw, asInt, "followers_count"); err != nil {
		return UserPublicMetrics{}, err
	}
	if m.FollowingCount, err = readRequired(raw, asInt, "following_count"); err != nil {
		return UserPublicMetrics{}, err
	}
	if m.TweetCount, err = readRequired(raw, asInt, "tweet_count"); err != nil {
		return UserPublicMetrics{}, err
	}
	if m.ListedCount, err = readRequired(raw, asInt, "listed_count"); err != nil {
		return UserPublicMetrics{}, err
	}
	if m.LikeCount, err = readOptional(raw, asInt, "like_count"); err != nil {
		return UserPublicMetrics{}, err
	}
	return m, nil
}
