package livefeed

import (
	"bytes"
	"strconv"
)

// StatBundle is the per-player statistics block of the feed.
type StatBundle struct {
	Games    GamesStats   `json:"games"`
	Offsides *int         `json:"offsides"`
	Shots    ShotStats    `json:"shots"`
	Goals    GoalStats    `json:"goals"`
	Passes   PassStats    `json:"passes"`
	Tackles  TackleStats  `json:"tackles"`
	Duels    DuelStats    `json:"duels"`
	Dribbles DribbleStats `json:"dribbles"`
	Fouls    FoulStats    `json:"fouls"`
	Cards    CardStats    `json:"cards"`
	Penalty  PenaltyStats `json:"penalty"`
}

type GamesStats struct {
	Minutes    *int      `json:"minutes"`
	Number     *int      `json:"number"`
	Position   string    `json:"position"`
	Rating     FeedValue `json:"rating"`
	Captain    bool      `json:"captain"`
	Substitute bool      `json:"substitute"`
}

type ShotStats struct {
	Total *int `json:"total"`
	On    *int `json:"on"`
}

type GoalStats struct {
	Total    *int `json:"total"`
	Conceded *int `json:"conceded"`
	Assists  *int `json:"assists"`
	Saves    *int `json:"saves"`
}

type PassStats struct {
	Total    *int      `json:"total"`
	Key      *int      `json:"key"`
	Accuracy FeedValue `json:"accuracy"`
}

type TackleStats struct {
	Total         *int `json:"total"`
	Blocks        *int `json:"blocks"`
	Interceptions *int `json:"interceptions"`
}

type DuelStats struct {
	Total *int `json:"total"`
	Won   *int `json:"won"`
}

type DribbleStats struct {
	Attempts *int `json:"attempts"`
	Success  *int `json:"success"`
	Past     *int `json:"past"`
}

type FoulStats struct {
	Drawn     *int `json:"drawn"`
	Committed *int `json:"committed"`
}

type CardStats struct {
	Yellow *int `json:"yellow"`
	Red    *int `json:"red"`
}

type PenaltyStats struct {
	Won       *int `json:"won"`
	Committed *int `json:"commited"`
	Scored    *int `json:"scored"`
	Missed    *int `json:"missed"`
	Saved     *int `json:"saved"`
}

// FeedValue holds a scalar the feed sends as a number, a string or null.
// The raw text is kept; numeric coercion happens in numparse.
type FeedValue struct {
	Text  string
	Valid bool
}

func Text(value string) FeedValue {
	return FeedValue{Text: value, Valid: true}
}

func (v *FeedValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*v = FeedValue{}
		return nil
	}
	if data[0] == '"' {
		text, err := strconv.Unquote(string(data))
		if err != nil {
			return err
		}
		*v = FeedValue{Text: text, Valid: true}
		return nil
	}
	*v = FeedValue{Text: string(data), Valid: true}
	return nil
}

func (v FeedValue) MarshalJSON() ([]byte, error) {
	if !v.Valid {
		return []byte("null"), nil
	}
	return []byte(strconv.Quote(v.Text)), nil
}
