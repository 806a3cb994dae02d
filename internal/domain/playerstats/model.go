package playerstats

import (
	"github.com/riskibarqy/livematch/internal/domain/livefeed"
	"github.com/riskibarqy/livematch/internal/platform/numparse"
)

// PlayerStatistics is the aggregate record of one match participant.
type PlayerStatistics struct {
	ID            string
	FixtureID     int64
	ParticipantID string
	Figures       Figures
}

// Figures is the comparable payload of PlayerStatistics. Rating is decimal
// text, empty when the feed has not rated the player.
type Figures struct {
	Minutes          int    `json:"minutes"`
	Position         string `json:"position"`
	Rating           string `json:"rating"`
	Captain          bool   `json:"captain"`
	Substitute       bool   `json:"substitute"`
	Offsides         int    `json:"offsides"`
	ShotsTotal       int    `json:"shots_total"`
	ShotsOn          int    `json:"shots_on"`
	GoalsTotal       int    `json:"goals_total"`
	GoalsConceded    int    `json:"goals_conceded"`
	Assists          int    `json:"assists"`
	Saves            int    `json:"saves"`
	PassesTotal      int    `json:"passes_total"`
	PassesKey        int    `json:"passes_key"`
	PassesAccuracy   int    `json:"passes_accuracy"`
	TacklesTotal     int    `json:"tackles_total"`
	Blocks           int    `json:"blocks"`
	Interceptions    int    `json:"interceptions"`
	DuelsTotal       int    `json:"duels_total"`
	DuelsWon         int    `json:"duels_won"`
	DribbleAttempts  int    `json:"dribble_attempts"`
	DribbleSuccess   int    `json:"dribble_success"`
	DribblePast      int    `json:"dribble_past"`
	FoulsDrawn       int    `json:"fouls_drawn"`
	FoulsCommitted   int    `json:"fouls_committed"`
	YellowCards      int    `json:"yellow_cards"`
	RedCards         int    `json:"red_cards"`
	PenaltyWon       int    `json:"penalty_won"`
	PenaltyCommitted int    `json:"penalty_committed"`
	PenaltyScored    int    `json:"penalty_scored"`
	PenaltyMissed    int    `json:"penalty_missed"`
	PenaltySaved     int    `json:"penalty_saved"`
}

// Apply overwrites the figures and reports whether anything changed.
func (s *PlayerStatistics) Apply(f Figures) bool {
	if s.Figures == f {
		return false
	}
	s.Figures = f
	return true
}

// FiguresFromBundle converts one feed bundle. Missing counters become zero;
// an unparsable rating or pass accuracy is left at its zero value.
func FiguresFromBundle(b livefeed.StatBundle) Figures {
	f := Figures{
		Minutes:          numparse.IntOrZero(b.Games.Minutes),
		Position:         b.Games.Position,
		Captain:          b.Games.Captain,
		Substitute:       b.Games.Substitute,
		Offsides:         numparse.IntOrZero(b.Offsides),
		ShotsTotal:       numparse.IntOrZero(b.Shots.Total),
		ShotsOn:          numparse.IntOrZero(b.Shots.On),
		GoalsTotal:       numparse.IntOrZero(b.Goals.Total),
		GoalsConceded:    numparse.IntOrZero(b.Goals.Conceded),
		Assists:          numparse.IntOrZero(b.Goals.Assists),
		Saves:            numparse.IntOrZero(b.Goals.Saves),
		PassesTotal:      numparse.IntOrZero(b.Passes.Total),
		PassesKey:        numparse.IntOrZero(b.Passes.Key),
		TacklesTotal:     numparse.IntOrZero(b.Tackles.Total),
		Blocks:           numparse.IntOrZero(b.Tackles.Blocks),
		Interceptions:    numparse.IntOrZero(b.Tackles.Interceptions),
		DuelsTotal:       numparse.IntOrZero(b.Duels.Total),
		DuelsWon:         numparse.IntOrZero(b.Duels.Won),
		DribbleAttempts:  numparse.IntOrZero(b.Dribbles.Attempts),
		DribbleSuccess:   numparse.IntOrZero(b.Dribbles.Success),
		DribblePast:      numparse.IntOrZero(b.Dribbles.Past),
		FoulsDrawn:       numparse.IntOrZero(b.Fouls.Drawn),
		FoulsCommitted:   numparse.IntOrZero(b.Fouls.Committed),
		YellowCards:      numparse.IntOrZero(b.Cards.Yellow),
		RedCards:         numparse.IntOrZero(b.Cards.Red),
		PenaltyWon:       numparse.IntOrZero(b.Penalty.Won),
		PenaltyCommitted: numparse.IntOrZero(b.Penalty.Committed),
		PenaltyScored:    numparse.IntOrZero(b.Penalty.Scored),
		PenaltyMissed:    numparse.IntOrZero(b.Penalty.Missed),
		PenaltySaved:     numparse.IntOrZero(b.Penalty.Saved),
	}
	if b.Games.Rating.Valid {
		if rating, ok := numparse.Decimal(b.Games.Rating.Text); ok {
			f.Rating = rating
		}
	}
	if b.Passes.Accuracy.Valid {
		if accuracy, ok := numparse.Int(b.Passes.Accuracy.Text); ok {
			f.PassesAccuracy = accuracy
		}
	}
	return f
}
