package main

import (
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/grutapig/twitterlookup/twitterapi"
)

type NotificationFormatter struct{}

func NewNotificationFormatter() *NotificationFormatter {
	return &NotificationFormatter{}
}

// FormatTweet renders a tweet summary in Telegram HTML. Only attributes that
// were fetched are shown.
func (nf *NotificationFormatter) FormatTweet(tweet *twitterapi.Tweet) string {
	var b strings.Builder

	author := "user"
	if user, ok := tweet.Author.Get(); ok {
		author = user.Username
		fmt.Fprintf(&b, "🐦 <b>%s</b> (@%s)\n", html.EscapeString(user.Name), html.EscapeString(user.Username))
	} else {
		b.WriteString("🐦 <b>Tweet</b>\n")
	}

	fmt.Fprintf(&b, "\n💬 <i>%s</i>\n", html.EscapeString(nf.truncateText(tweet.Text, 280)))

	if metrics, ok := tweet.PublicMetrics.Get(); ok {
		fmt.Fprintf(&b, "\n📊 ❤️ %d | 🔁 %d | 💬 %d | ✍️ %d", metrics.LikeCount, metrics.RetweetCount, metrics.ReplyCount, metrics.QuoteCount)
		if impressions, ok := metrics.ImpressionCount.Get(); ok {
			fmt.Fprintf(&b, " | 👁 %d", impressions)
		}
		b.WriteString("\n")
	}

	if media, ok := tweet.Media.Get(); ok && len(media) > 0 {
		kinds := make([]string, 0, len(media))
		for _, m := range media {
			kinds = append(kinds, string(m.Type))
		}
		fmt.Fprintf(&b, "🖼 <b>Media:</b> %s\n", strings.Join(kinds, ", "))
	}

	if polls, ok := tweet.Polls.Get(); ok {
		for _, poll := range polls {
			b.WriteString("🗳 <b>Poll:</b>\n")
			for _, option := range poll.Options {
				fmt.Fprintf(&b, "  %d. %s - %d\n", option.Position, html.EscapeString(option.Label), option.Votes)
			}
		}
	}

	if place, ok := tweet.Place.Get(); ok {
		fmt.Fprintf(&b, "📍 %s\n", html.EscapeString(place.FullName))
	}

	if tweet.IsPossiblySensitive() {
		b.WriteString("⚠️ <b>Possibly sensitive</b>\n")
	}

	if createdAt, ok := tweet.CreatedAt.Get(); ok {
		fmt.Fprintf(&b, "⏰ %s\n", nf.formatTime(createdAt))
	}

	fmt.Fprintf(&b, "🔗 <a href=\"https://twitter.com/%s/status/%s\">Open tweet</a>", author, tweet.ID)
	return b.String()
}

// FormatUser renders a profile summary in Telegram HTML.
func (nf *NotificationFormatter) FormatUser(user *twitterapi.User) string {
	var b strings.Builder

	fmt.Fprintf(&b, "👤 <b>%s</b> (@%s)", html.EscapeString(user.Name), html.EscapeString(user.Username))
	if user.Verified.OrElse(false) {
		b.WriteString(" ✅")
	}
	if user.Protected.OrElse(false) {
		b.WriteString(" 🔒")
	}
	b.WriteString("\n")

	if description, ok := user.Description.Get(); ok && description.Text != "" {
		fmt.Fprintf(&b, "\n<i>%s</i>\n", html.EscapeString(nf.truncateText(description.Text, 200)))
	}

	if metrics, ok := user.PublicMetrics.Get(); ok {
		fmt.Fprintf(&b, "\n📊 <b>Followers:</b> %d | <b>Following:</b> %d | <b>Tweets:</b> %d\n",
			metrics.FollowersCount, metrics.FollowingCount, metrics.TweetCount)
	}

	if location, ok := user.Location.Get(); ok && location != "" {
		fmt.Fprintf(&b, "📍 %s\n", html.EscapeString(location))
	}

	if profileURL, ok := user.URL.Get(); ok && profileURL.String() != "" {
		fmt.Fprintf(&b, "🌐 %s\n", html.EscapeString(profileURL.String()))
	}

	if pinned, ok := user.PinnedTweet.Get(); ok {
		fmt.Fprintf(&b, "📌 <i>%s</i>\n", html.EscapeString(nf.truncateText(pinned.Text, 120)))
	}

	if createdAt, ok := user.CreatedAt.Get(); ok {
		fmt.Fprintf(&b, "⏰ Joined %s\n", nf.formatTime(createdAt))
	}

	fmt.Fprintf(&b, "🔗 <a href=\"https://twitter.com/%s\">Open profile</a>", user.Username)
	return b.String()
}

func (nf *NotificationFormatter) truncateText(text string, maxLength int) string {
	runes := []rune(text)
	if len(runes) <= maxLength {
		return text
	}
	return string(runes[:maxLength-3]) + "..."
}

func (nf *NotificationFormatter) formatTime(t time.Time) string {
	return t.UTC().Format("2006-01-02 15:04 UTC")
}
