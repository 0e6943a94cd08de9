package domain

// PlayerStats holds cumulative per-player counters. Box score updates carry
// authoritative totals, so fields are overwritten, never accumulated.
type PlayerStats struct {
	Assists                       int     `json:"assists"`
	Blocks                        int     `json:"blocks"`
	BlocksReceived                int     `json:"blocksReceived"`
	Efficiency                    float64 `json:"efficiency"`
	FastBreakPointsMade           int     `json:"fastBreakPointsMade"`
	FieldGoalsAttempted           int     `json:"fieldGoalsAttempted"`
	FieldGoalsEffectivePercentage float64 `json:"fieldGoalsEffectivePercentage"`
	FieldGoalsMade                int     `json:"fieldGoalsMade"`
	FieldGoalsPercentage          float64 `json:"fieldGoalsPercentage"`
	FoulsCoachDisqualifying       int     `json:"foulsCoachDisqualifying"`
	FoulsOn                       int     `json:"foulsOn"`
	FoulsPersonal                 int     `json:"foulsPersonal"`
	FoulsTechnical                int     `json:"foulsTechnical"`
	FreeThrowsAttempted           int     `json:"freeThrowsAttempted"`
	FreeThrowsMade                int     `json:"freeThrowsMade"`
	FreeThrowsPercentage          float64 `json:"freeThrowsPercentage"`
	Minus                         int     `json:"minus"`
	Minutes                       float64 `json:"minutes"`
	Plus                          int     `json:"plus"`
	PlusMinusPoints               float64 `json:"plusMinusPoints"`
	Points                        int     `json:"points"`
	PointsFastBreak               int     `json:"pointsFastBreak"`
	PointsFromTurnovers           int     `json:"pointsFromTurnovers"`
	PointsInThePaint              int     `json:"pointsInThePaint"`
	PointsInThePaintMade          int     `json:"pointsInThePaintMade"`
	PointsSecondChance            int     `json:"pointsSecondChance"`
	ReboundsDefensive             int     `json:"reboundsDefensive"`
	ReboundsOffensive             int     `json:"reboundsOffensive"`
	ReboundsTotal                 int     `json:"reboundsTotal"`
	SecondChancePointsAttempted   int     `json:"secondChancePointsAttempted"`
	SecondChancePointsMade        int     `json:"secondChancePointsMade"`
	Steals                        int     `json:"steals"`
	ThreePointersAttempted        int     `json:"threePointersAttempted"`
	ThreePointersMade             int     `json:"threePointersMade"`
	ThreePointersPercentage       float64 `json:"threePointersPercentage"`
	Turnovers                     int     `json:"turnovers"`
	TurnoversPercentage           float64 `json:"turnoversPercentage"`
	TwoPointersAttempted          int     `json:"twoPointersAttempted"`
	TwoPointersMade               int     `json:"twoPointersMade"`
	TwoPointersPercentage         float64 `json:"twoPointersPercentage"`
}

// TeamStats holds cumulative per-team counters, either for the whole game or
// for a single period. Overwrite semantics match PlayerStats.
type TeamStats struct {
	Assists                 int     `json:"assists"`
	BenchPoints             int     `json:"benchPoints"`
	BiggestLead             int     `json:"biggestLead"`
	BiggestScoringRun       int     `json:"biggestScoringRun"`
	Blocks                  int     `json:"blocks"`
	BlocksReceived          int     `json:"blocksReceived"`
	Efficiency              float64 `json:"efficiency"`
	FastBreakPointsMade     int     `json:"fastBreakPointsMade"`
	FieldGoalsAttempted     int     `json:"fieldGoalsAttempted"`
	FieldGoalsMade          int     `json:"fieldGoalsMade"`
	FieldGoalsPercentage    float64 `json:"fieldGoalsPercentage"`
	FoulsOn                 int     `json:"foulsOn"`
	FoulsPersonal           int     `json:"foulsPersonal"`
	FoulsTeam               int     `json:"foulsTeam"`
	FoulsTechnical          int     `json:"foulsTechnical"`
	FreeThrowsAttempted     int     `json:"freeThrowsAttempted"`
	FreeThrowsMade          int     `json:"freeThrowsMade"`
	FreeThrowsPercentage    float64 `json:"freeThrowsPercentage"`
	LeadChanges             int     `json:"leadChanges"`
	Minutes                 float64 `json:"minutes"`
	OffensiveRebounds       int     `json:"offensiveRebounds"`
	Points                  int     `json:"points"`
	PointsFastBreak         int     `json:"pointsFastBreak"`
	PointsFromTurnovers     int     `json:"pointsFromTurnovers"`
	PointsInThePaint        int     `json:"pointsInThePaint"`
	PointsInThePaintMade    int     `json:"pointsInThePaintMade"`
	PointsSecondChance      int     `json:"pointsSecondChance"`
	ReboundsDefensive       int     `json:"reboundsDefensive"`
	ReboundsPersonal        int     `json:"reboundsPersonal"`
	ReboundsTeam            int     `json:"reboundsTeam"`
	ReboundsTeamDefensive   int     `json:"reboundsTeamDefensive"`
	ReboundsTeamOffensive   int     `json:"reboundsTeamOffensive"`
	ReboundsTotal           int     `json:"reboundsTotal"`
	ReboundsTotalDefensive  int     `json:"reboundsTotalDefensive"`
	ReboundsTotalOffensive  int     `json:"reboundsTotalOffensive"`
	SecondChancePointsMade  int     `json:"secondChancePointsMade"`
	Steals                  int     `json:"steals"`
	ThreePointersAttempted  int     `json:"threePointersAttempted"`
	ThreePointersMade       int     `json:"threePointersMade"`
	ThreePointersPercentage float64 `json:"threePointersPercentage"`
	TimeLeading             float64 `json:"timeLeading"`
	TimesScoreLevel         int     `json:"timesScoreLevel"`
	Turnovers               int     `json:"turnovers"`
	TurnoversTeam           int     `json:"turnoversTeam"`
	TwoPointersAttempted    int     `json:"twoPointersAttempted"`
	TwoPointersMade         int     `json:"twoPointersMade"`
	TwoPointersPercentage   float64 `json:"twoPointersPercentage"`
}
