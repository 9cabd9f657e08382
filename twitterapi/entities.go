package twitterapi

import (
	"fmt"
	"unicode/utf8"
)

// Span is a [Start, End) range of code points inside the parent text.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

func (s Span) Valid(textLength int) bool {
	return s.Start >= 0 && s.Start < s.End && s.End <= textLength
}

func parseSpan(raw []byte) (Span, error) {
	start, err := readRequired(raw, asInt, "start")
	if err != nil {
		return Span{}, err
	}
	end, err := readRequired(raw, asInt, "end")
	if err != nil {
		return Span{}, err
	}
	return Span{Start: start, End: end}, nil
}

type Annotation struct {
	Span
	Probability    float64 `json:"probability"`
	Type           string  `json:"type"`
	NormalizedText string  `json:"normalized_text"`
}

func ParseAnnotation(raw []byte) (Annotation, error) {
	span, err := parseSpan(raw)
	if err != nil {
		return Annotation{}, err
	}
	probability, err := readRequired(raw, asFloat, "probability")
	if err != nil {
		return Annotation{}, err
	}
	annotationType, err := readRequired(raw, asString, "type")
	if err != nil {
		return Annotation{}, err
	}
	normalizedText, err := readRequired(raw, asString, "normalized_text")
	if err != nil {
		return Annotation{}, err
	}
	return Annotation{Span: span, Probability: probability, Type: annotationType, NormalizedText: normalizedText}, nil
}

type CashTag struct {
	Span
	Tag string `json:"tag"`
}

func ParseCashTag(raw []byte) (CashTag, error) {
	span, tag, err := parseTag(raw)
	return CashTag{Span: span, Tag: tag}, err
}

type HashTag struct {
	Span
	Tag string `json:"tag"`
}

func ParseHashTag(raw []byte) (HashTag, error) {
	span, tag, err := parseTag(raw)
	return HashTag{Span: span, Tag: tag}, err
}

func parseTag(raw []byte) (Span, string, error) {
	span, err := parseSpan(raw)
	if err != nil {
		return Span{}, "", err
	}
	tag, err := readRequired(raw, asString, "tag")
	if err != nil {
		return Span{}, "", err
	}
	return span, tag, nil
}

type Mention struct {
	Span
	Username string           `json:"username"`
	ID       Optional[string] `json:"id"`
}

// ParseMention reads `username`, falling back to the older `tag` key.
func ParseMention(raw []byte) (Mention, error) {
	span, err := parseSpan(raw)
	if err != nil {
		return Mention{}, err
	}
	username, err := readOptional(raw, asString, "username")
	if err != nil {
		return Mention{}, err
	}
	if !username.IsSet() {
		tag, err := readRequired(raw, asString, "tag")
		if err != nil {
			return Mention{}, malformed([]string{"username"}, nil)
		}
		username = Some(tag)
	}
	id, err := readOptional(raw, asString, "id")
	if err != nil {
		return Mention{}, err
	}
	return Mention{Span: span, Username: username.MustGet(), ID: id}, nil
}

type URL struct {
	Span
	URL         string           `json:"url"`
	ExpandedURL string           `json:"expanded_url"`
	DisplayURL  string           `json:"display_url"`
	UnwoundURL  Optional[string] `json:"unwound_url"`
	Title       Optional[string] `json:"title"`
	Description Optional[string] `json:"description"`
	Status      Optional[int]    `json:"status"`
}

func ParseURL(raw []byte) (URL, error) {
	span, err := parseSpan(raw)
	if err != nil {
		return URL{}, err
	}
	u := URL{Span: span}
	if u.URL, err = readRequired(raw, asString, "url"); err != nil {
		return URL{}, err
	}
	if u.ExpandedURL, err = readRequired(raw, asString, "expanded_url"); err != nil {
		return URL{}, err
	}
	if u.DisplayURL, err = readRequired(raw, asString, "display_url"); err != nil {
		return URL{}, err
	}
	if u.UnwoundURL, err = readOptional(raw, asString, "unwound_url"); err != nil {
		return URL{}, err
	}
	if u.Title, err = readOptional(raw, asString, "title"); err != nil {
		return URL{}, err
	}
	if u.Description, err = readOptional(raw, asString, "description"); err != nil {
		return URL{}, err
	}
	if u.Status, err = readOptional(raw, asInt, "status"); err != nil {
		return URL{}, err
	}
	return u, nil
}

// Entities groups the span lists of a text. Each list is independently
// absent, empty or populated.
type Entities struct {
	Annotations Optional[[]Annotation] `json:"annotations"`
	CashTags    Optional[[]CashTag]    `json:"cashtags"`
	HashTags    Optional[[]HashTag]    `json:"hashtags"`
	Mentions    Optional[[]Mention]    `json:"mentions"`
	URLs        Optional[[]URL]        `json:"urls"`
}

func ParseEntities(raw []byte) (Entities, error) {
	var e Entities
	var err error
	if e.Annotations, err = readOptional(raw, asObjects(ParseAnnotation), "annotations"); err != nil {
		return Entities{}, err
	}
	if e.CashTags, err = readOptional(raw, asObjects(ParseCashTag), "cashtags"); err != nil {
		return Entities{}, err
	}
	if e.HashTags, err = readOptional(raw, asObjects(ParseHashTag), "hashtags"); err != nil {
		return Entities{}, err
	}
	if e.Mentions, err = readOptional(raw, asObjects(ParseMention), "mentions"); err != nil {
		return Entities{}, err
	}
	if e.URLs, err = readOptional(raw, asObjects(ParseURL), "urls"); err != nil {
		return Entities{}, err
	}
	return e, nil
}

type SpanError struct {
	Kind  string
	Index int
	Span  Span
	Limit int
}

func (e SpanError) Error() string {
	return fmt.Sprintf("%s[%d] span [%d,%d) outside text of length %d", e.Kind, e.Index, e.Span.Start, e.Span.End, e.Limit)
}

// CheckSpans reports every span that does not satisfy
// 0 <= start < end <= len(text), counting code points.
func (e Entities) CheckSpans(text string) []SpanError {
	limit := utf8.RuneCountInString(text)
	var errs []SpanError
	check := func(kind string, spans []Span) {
		for i, span := range spans {
			if !span.Valid(limit) {
				errs = append(errs, SpanError{Kind: kind, Index: i, Span: span, Limit: limit})
			}
		}
	}
	check("annotations", spansOf(e.Annotations, func(a Annotation) Span { return a.Span }))
	check("cashtags", spansOf(e.CashTags, func(c CashTag) Span { return c.Span }))
	check("hashtags", spansOf(e.HashTags, func(h HashTag) Span { return h.Span }))
	check("mentions", spansOf(e.Mentions, func(m Mention) Span { return m.Span }))
	check("urls", spansOf(e.URLs, func(u URL) Span { return u.Span }))
	return errs
}

func spansOf[T any](list Optional[[]T], span func(T) Span) []Span {
	items, _ := list.Get()
	spans := make([]Span, 0, len(items))
	for _, item := range items {
		spans = append(spans, span(item))
	}
	return spans
}
