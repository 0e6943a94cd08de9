package domain

// Team is one side of the game. Created once by the roster message and
// mutated in place afterwards; never replaced.
type Team struct {
	Number      int                `json:"number"`
	Name        string             `json:"name"`
	Code        string             `json:"code"`
	LongCode    string             `json:"longCode"`
	IsHome      bool               `json:"isHome"`
	Players     map[int]*Player    `json:"players"`
	Stats       TeamStats          `json:"stats"`
	PeriodStats map[int]*TeamStats `json:"periodStats,omitempty"`
	Score       *TeamScore         `json:"score,omitempty"`
}

// PlayerByNumber returns the rostered player with the given feed number.
func (t *Team) PlayerByNumber(number int) (*Player, bool) {
	player, ok := t.Players[number]
	return player, ok
}

// PlayerByShirt returns the first rostered player wearing the given shirt
// number. Shirt numbers are strings on the feed ("00" and "0" differ).
func (t *Team) PlayerByShirt(shirt string) (*Player, bool) {
	for _, player := range t.Players {
		if player.Shirt == shirt {
			return player, true
		}
	}
	return nil, false
}

// PeriodStatsFor returns the per-period stats record, creating it on demand.
func (t *Team) PeriodStatsFor(period int) *TeamStats {
	if t.PeriodStats == nil {
		t.PeriodStats = make(map[int]*TeamStats)
	}
	stats, ok := t.PeriodStats[period]
	if !ok {
		stats = &TeamStats{}
		t.PeriodStats[period] = stats
	}
	return stats
}

// TeamScore is the feed's score snapshot for one team.
type TeamScore struct {
	Score             int `json:"score"`
	TimeoutsRemaining int `json:"timeoutsRemaining"`
	Fouls             int `json:"fouls"`
	TeamFouls         int `json:"teamFouls"`
}

// Player is one rostered player. The instance is created with the roster and
// kept for the session; stat updates mutate Stats in place so external
// references stay valid.
type Player struct {
	Number    int         `json:"number"`
	FirstName string      `json:"firstName"`
	LastName  string      `json:"lastName"`
	Height    float64     `json:"height"`
	Shirt     string      `json:"shirt"`
	Position  string      `json:"position"`
	Starter   bool        `json:"starter"`
	Captain   bool        `json:"captain"`
	Active    bool        `json:"active"`
	Stats     PlayerStats `json:"stats"`
}

// FullName returns "First Last", tolerating a missing half.
func (p *Player) FullName() string {
	switch {
	case p.FirstName == "":
		return p.LastName
	case p.LastName == "":
		return p.FirstName
	default:
		return p.FirstName + " " + p.LastName
	}
}
