// Package domain holds the in-memory game state built from the live feed.
// A Game is owned by a single ingestion loop; nothing here locks.
package domain

import "time"

// Game is the root aggregate for one feed session. Team pointers stay nil
// until the roster message lands; Actions is append-only.
type Game struct {
	Status          GameStatus   `json:"status"`
	CurrentPeriod   int          `json:"currentPeriod"`
	PeriodType      PeriodType   `json:"periodType"`
	PeriodStatus    PeriodStatus `json:"periodStatus"`
	Clock           string       `json:"clock"`
	ShotClock       string       `json:"shotClock"`
	ClockRunning    bool         `json:"clockRunning"`
	Possession      Possession   `json:"possession"`
	PossessionArrow Possession   `json:"possessionArrow"`
	HomeTeam        *Team        `json:"homeTeam"`
	AwayTeam        *Team        `json:"awayTeam"`
	Actions         []Action     `json:"actions"`
}

// NewGame constructs an empty, not-yet-ready Game.
func NewGame() *Game {
	return &Game{Actions: make([]Action, 0)}
}

// IsReady reports whether both rosters have been loaded.
func (g *Game) IsReady() bool {
	return g.HomeTeam != nil && g.AwayTeam != nil
}

// TeamByNumber returns the home or away team with the given feed number.
// Safe to call before rosters load; the bool is false when neither matches.
func (g *Game) TeamByNumber(number int) (*Team, bool) {
	if g.HomeTeam != nil && g.HomeTeam.Number == number {
		return g.HomeTeam, true
	}
	if g.AwayTeam != nil && g.AwayTeam.Number == number {
		return g.AwayTeam, true
	}
	return nil, false
}

// AppendAction appends an action to the log. Actions are never mutated or
// removed once appended.
func (g *Game) AppendAction(action Action) {
	g.Actions = append(g.Actions, action)
}

// Action is one immutable entry in the play-by-play log. Team and player
// references are feed identifiers resolved lazily against the Game; a failed
// resolution (e.g. an action arriving before rosters) is not an error.
type Action struct {
	Number         int        `json:"number"`
	TeamNumber     int        `json:"teamNumber"`
	PlayerNumber   int        `json:"playerNumber"`
	Clock          string     `json:"clock"`
	ShotClock      string     `json:"shotClock"`
	Timestamp      time.Time  `json:"timestamp"`
	Period         int        `json:"period"`
	PeriodType     PeriodType `json:"periodType"`
	Type           ActionType `json:"type"`
	SubType        string     `json:"subType"`
	Qualifiers     []string   `json:"qualifiers,omitempty"`
	Value          string     `json:"value,omitempty"`
	PreviousAction int        `json:"previousAction,omitempty"`
	X              float64    `json:"x"`
	Y              float64    `json:"y"`
	Area           string     `json:"area,omitempty"`
	Success        bool       `json:"success"`
}

// HasQualifier reports whether the action carries the given qualifier tag.
func (a Action) HasQualifier(tag string) bool {
	for _, q := range a.Qualifiers {
		if q == tag {
			return true
		}
	}
	return false
}

// Team returns the acting team, resolved against the game.
func (a Action) Team(g *Game) (*Team, bool) {
	return g.TeamByNumber(a.TeamNumber)
}

// Player returns the acting player, resolved against the game. Player number
// zero is the feed's convention for team-attributed actions.
func (a Action) Player(g *Game) (*Player, bool) {
	if a.PlayerNumber == 0 {
		return nil, false
	}
	team, ok := g.TeamByNumber(a.TeamNumber)
	if !ok {
		return nil, false
	}
	return team.PlayerByNumber(a.PlayerNumber)
}
