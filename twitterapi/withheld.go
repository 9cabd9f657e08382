package twitterapi

// Withheld describes a takedown of a tweet or an account.
type Withheld struct {
	Copyright    Optional[bool]   `json:"copyright"`
	CountryCodes []string         `json:"country_codes"`
	Scope        Optional[string] `json:"scope"`
}

func ParseWithheld(raw []byte) (Withheld, error) {
	var w Withheld
	var err error
	if w.Copyright, err = readOptional(raw, asBool, "copyright"); err != nil {
		return Withheld{}, err
	}
	if w.CountryCodes, err = readRequired(raw, asStrings, "country_codes"); err != nil {
		return Withheld{}, err
	}
	if w.Scope, err = readOptional(raw, asString, "scope"); err != nil {
		return Withheld{}, err
	}
	return w, nil
}

type Attachments struct {
	MediaKeys Optional[[]string] `json:"media_keys"`
	PollIDs   Optional[[]string] `json:"poll_ids"`
}

func ParseAttachments(raw []byte) (Attachments, error) {
	var a Attachments
	var err error
	if a.MediaKeys, err = readOptional(raw, asStrings, "media_keys"); err != nil {
		return Attachments{}, err
	}
	if a.PollIDs, err = readOptional(raw, asStrings, "poll_ids"); err != nil {
		return Attachments{}, err
	}
	return a, nil
}
