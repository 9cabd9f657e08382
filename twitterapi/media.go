package twitterapi

type MediaType string

const (
	MediaTypeAnimatedGIF MediaType = "animated_gif"
	MediaTypePhoto       MediaType = "photo"
	MediaTypeVideo       MediaType = "video"
)

// Media is an entry of includes.media, attached to a tweet through
// attachments.media_keys.
type Media struct {
	MediaKey        string           `json:"media_key"`
	Type            MediaType        `json:"type"`
	Width           Optional[int]    `json:"width"`
	Height          Optional[int]    `json:"height"`
	DurationMS      Optional[int]    `json:"duration_ms"`
	PreviewImageURL Optional[string] `json:"preview_image_url"`
	URL             Optional[string] `json:"url"`
	AltText         Optional[string] `json:"alt_text"`
	ViewCount       Optional[int]    `json:"view_count"`
}

func ParseMedia(raw []byte) (Media, error) {
	var m Media
	var err error
	if m.MediaKey, err = readRequired(raw, asString, "media_key"); err != nil {
		return Media{}, err
	}
	if m.Type, err = readRequired(raw, asEnum("media type", MediaTypeAnimatedGIF, MediaTypePhoto, MediaTypeVideo), "type"); err != nil {
		return Media{}, err
	}
	if m.Width, err = readOptional(raw, asInt, "width"); err != nil {
		return Media{}, err
	}
	if m.Height, err = readOptional(raw, asInt, "height"); err != nil {
		return Media{}, err
	}
	if m.DurationMS, err = readOptional(raw, asInt, "duration_ms"); err != nil {
		return Media{}, err
	}
	if m.PreviewImageURL, err = readOptional(raw, asString, "preview_image_url"); err != nil {
		return Media{}, err
	}
	if m.URL, err = readOptional(raw, asString, "url"); err != nil {
		return Media{}, err
	}
	if m.AltText, err = readOptional(raw, asString, "alt_text"); err != nil {
		return Media{}, err
	}
	if m.ViewCount, err = readOptional(raw, asInt, "public_metrics", "view_count"); err != nil {
		return Media{}, err
	}
	return m, nil
}
