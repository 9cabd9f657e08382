package twitterapi

import (
	"fmt"
	"time"

	"github.com/buger/jsonparser"
)

type VotingStatus string

const (
	VotingStatusOpen   VotingStatus = "open"
	VotingStatusClosed VotingStatus = "closed"
)

// PollOption positions are 1-based and always match the option's index in
// Poll.Options.
type PollOption struct {
	Position int    `json:"position"`
	Label    string `json:"label"`
	Votes    int    `json:"votes"`
}

type Poll struct {
	ID              string                 `json:"id"`
	Options         []PollOption           `json:"options"`
	DurationMinutes Optional[int]          `json:"duration_minutes"`
	EndDatetime     Optional[time.Time]    `json:"end_datetime"`
	VotingStatus    Optional[VotingStatus] `json:"voting_status"`
}

func ParsePoll(raw []byte) (Poll, error) {
	var p Poll
	var err error
	if p.ID, err = readRequired(raw, asString, "id"); err != nil {
		return Poll{}, err
	}
	if p.Options, err = readRequired(raw, asPollOptions, "options"); err != nil {
		return Poll{}, err
	}
	if p.DurationMinutes, err = readOptional(raw, asInt, "duration_minutes"); err != nil {
		return Poll{}, err
	}
	if p.EndDatetime, err = readOptional(raw, asTime, "end_datetime"); err != nil {
		return Poll{}, err
	}
	if p.VotingStatus, err = readOptional(raw, asEnum("voting status", VotingStatusOpen, VotingStatusClosed), "voting_status"); err != nil {
		return Poll{}, err
	}
	return p, nil
}

// asPollOptions numbers options by their order in the array; a position sent
// by the server has to agree with it.
func asPollOptions(value []byte, dataType jsonparser.ValueType) ([]PollOption, error) {
	raws, err := asArray(asObject(func(raw []byte) ([]byte, error) { return raw, nil }))(value, dataType)
	if err != nil {
		return nil, err
	}

	options := make([]PollOption, 0, len(raws))
	for i, raw := range raws {
		option, err := parsePollOption(raw, i+1)
		if err != nil {
			return nil, annotate([]string{fmt.Sprintf("[%d]", i)}, err)
		}
		options = append(options, option)
	}
	return options, nil
}

func parsePollOption(raw []byte, position int) (PollOption, error) {
	label, err := readRequired(raw, asString, "label")
	if err != nil {
		return PollOption{}, err
	}
	votes, err := readRequired(raw, asInt, "votes")
	if err != nil {
		return PollOption{}, err
	}
	wirePosition, err := readOptional(raw, asInt, "position")
	if err != nil {
		return PollOption{}, err
	}
	if p, ok := wirePosition.Get(); ok && p != position {
		return PollOption{}, malformed([]string{"position"}, fmt.Errorf("got %d, want %d", p, position))
	}
	return PollOption{Position: position, Label: label, Votes: votes}, nil
}
