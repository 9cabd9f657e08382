package twitterapi

import "strings"

// includes indexes the side tables of a response by identifier. A nil table
// means the API did not send it, which is different from sending it empty.
type includes struct {
	media       map[string]Media
	polls       map[string]Poll
	places      map[string]Place
	users       map[string]*User
	usersByName map[string]*User
	tweets      map[string]*Tweet
}

// parseIncludes builds the index. Included users are parsed without side
// tables and included tweets are joined against every table but tweets, so
// joins never go deeper than one level.
func parseIncludes(raw []byte) (*includes, error) {
	inc := &includes{}
	if raw == nil {
		return inc, nil
	}

	media, err := readOptional(raw, asObjects(ParseMedia), "media")
	if err != nil {
		return nil, annotate([]string{"includes"}, err)
	}
	if items, ok := media.Get(); ok {
		inc.media = make(map[string]Media, len(items))
		for _, m := range items {
			if _, dup := inc.media[m.MediaKey]; !dup {
				inc.media[m.MediaKey] = m
			}
		}
	}

	polls, err := readOptional(raw, asObjects(ParsePoll), "polls")
	if err != nil {
		return nil, annotate([]string{"includes"}, err)
	}
	if items, ok := polls.Get(); ok {
		inc.polls = make(map[string]Poll, len(items))
		for _, p := range items {
			if _, dup := inc.polls[p.ID]; !dup {
				inc.polls[p.ID] = p
			}
		}
	}

	places, err := readOptional(raw, asObjects(ParsePlace), "places")
	if err != nil {
		return nil, annotate([]string{"includes"}, err)
	}
	if items, ok := places.Get(); ok {
		inc.places = make(map[string]Place, len(items))
		for _, p := range items {
			if _, dup := inc.places[p.ID]; !dup {
				inc.places[p.ID] = p
			}
		}
	}

	users, err := readOptional(raw, asObjects(func(data []byte) (*User, error) {
		return assembleUser(data, &includes{})
	}), "users")
	if err != nil {
		return nil, annotate([]string{"includes"}, err)
	}
	if items, ok := users.Get(); ok {
		inc.users = make(map[string]*User, len(items))
		inc.usersByName = make(map[string]*User, len(items))
		for _, u := range items {
			if _, dup := inc.users[u.ID]; !dup {
				inc.users[u.ID] = u
				inc.usersByName[strings.ToLower(u.Username)] = u
			}
		}
	}

	nested := &includes{
		media:       inc.media,
		polls:       inc.polls,
		places:      inc.places,
		users:       inc.users,
		usersByName: inc.usersByName,
	}
	tweets, err := readOptional(raw, asObjects(func(data []byte) (*Tweet, error) {
		return assembleTweet(data, nested)
	}), "tweets")
	if err != nil {
		return nil, annotate([]string{"includes"}, err)
	}
	if items, ok := tweets.Get(); ok {
		inc.tweets = make(map[string]*Tweet, len(items))
		for _, t := range items {
			if _, dup := inc.tweets[t.ID]; !dup {
				inc.tweets[t.ID] = t
			}
		}
	}
	return inc, nil
}

// joinAll looks every id up in table, keeping the order of ids and skipping
// ids the table does not hold. The result is absent unless both the table
// and the id list came back.
func joinAll[T any](table map[string]T, ids Optional[[]string]) Optional[[]T] {
	keys, ok := ids.Get()
	if !ok || table == nil {
		return None[[]T]()
	}
	joined := make([]T, 0, len(keys))
	for _, key := range keys {
		if item, ok := table[key]; ok {
			joined = append(joined, item)
		}
	}
	return Some(joined)
}

func joinOne[T any](table map[string]T, id Optional[string]) Optional[T] {
	key, ok := id.Get()
	if !ok || table == nil {
		return None[T]()
	}
	item, ok := table[key]
	if !ok {
		return None[T]()
	}
	return Some(item)
}

func (inc *includes) mentionedUsers(mentions Optional[[]Mention]) Optional[[]*User] {
	items, ok := mentions.Get()
	if !ok || inc.usersByName == nil {
		return None[[]*User]()
	}
	joined := make([]*User, 0, len(items))
	for _, m := range items {
		if u, ok := inc.usersByName[strings.ToLower(m.Username)]; ok {
			joined = append(joined, u)
		}
	}
	return Some(joined)
}
