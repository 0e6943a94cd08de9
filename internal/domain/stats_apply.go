package domain

import (
	"strings"
	"unicode"

	"github.com/courtside-live/livestats/internal/extract"
)

// NormalizeStatKey folds a wire stat field name to its canonical form. Box
// score payloads prefix stat fields with a lowercase "s" ("sPoints"); the
// prefix is stripped and the first letter lowered so both "sPoints" and
// "points" resolve to "points".
func NormalizeStatKey(key string) string {
	key = strings.TrimSpace(key)
	if len(key) >= 2 && key[0] == 's' && unicode.IsUpper(rune(key[1])) {
		key = key[1:]
	}
	if key == "" {
		return key
	}
	runes := []rune(key)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}

// ApplyField overwrites one stat field by normalized wire name, coercing the
// raw value. The bool is false for names the record does not carry.
func (s *PlayerStats) ApplyField(name string, value any) bool {
	switch NormalizeStatKey(name) {
	case "assists":
		s.Assists = extract.AsInt(value)
	case "blocks":
		s.Blocks = extract.AsInt(value)
	case "blocksReceived":
		s.BlocksReceived = extract.AsInt(value)
	case "efficiency":
		s.Efficiency = extract.AsFloat(value)
	case "fastBreakPointsMade":
		s.FastBreakPointsMade = extract.AsInt(value)
	case "fieldGoalsAttempted":
		s.FieldGoalsAttempted = extract.AsInt(value)
	case "fieldGoalsEffectivePercentage":
		s.FieldGoalsEffectivePercentage = extract.AsFloat(value)
	case "fieldGoalsMade":
		s.FieldGoalsMade = extract.AsInt(value)
	case "fieldGoalsPercentage":
		s.FieldGoalsPercentage = extract.AsFloat(value)
	case "foulsCoachDisqualifying":
		s.FoulsCoachDisqualifying = extract.AsInt(value)
	case "foulsOn":
		s.FoulsOn = extract.AsInt(value)
	case "foulsPersonal":
		s.FoulsPersonal = extract.AsInt(value)
	case "foulsTechnical":
		s.FoulsTechnical = extract.AsInt(value)
	case "freeThrowsAttempted":
		s.FreeThrowsAttempted = extract.AsInt(value)
	case "freeThrowsMade":
		s.FreeThrowsMade = extract.AsInt(value)
	case "freeThrowsPercentage":
		s.FreeThrowsPercentage = extract.AsFloat(value)
	case "minus":
		s.Minus = extract.AsInt(value)
	case "minutes":
		s.Minutes = extract.AsFloat(value)
	case "plus":
		s.Plus = extract.AsInt(value)
	case "plusMinusPoints":
		s.PlusMinusPoints = extract.AsFloat(value)
	case "points":
		s.Points = extract.AsInt(value)
	case "pointsFastBreak":
		s.PointsFastBreak = extract.AsInt(value)
	case "pointsFromTurnovers":
		s.PointsFromTurnovers = extract.AsInt(value)
	case "pointsInThePaint":
		s.PointsInThePaint = extract.AsInt(value)
	case "pointsInThePaintMade":
		s.PointsInThePaintMade = extract.AsInt(value)
	case "pointsSecondChance":
		s.PointsSecondChance = extract.AsInt(value)
	case "reboundsDefensive":
		s.ReboundsDefensive = extract.AsInt(value)
	case "reboundsOffensive":
		s.ReboundsOffensive = extract.AsInt(value)
	case "reboundsTotal":
		s.ReboundsTotal = extract.AsInt(value)
	case "secondChancePointsAttempted":
		s.SecondChancePointsAttempted = extract.AsInt(value)
	case "secondChancePointsMade":
		s.SecondChancePointsMade = extract.AsInt(value)
	case "steals":
		s.Steals = extract.AsInt(value)
	case "threePointersAttempted":
		s.ThreePointersAttempted = extract.AsInt(value)
	case "threePointersMade":
		s.ThreePointersMade = extract.AsInt(value)
	case "threePointersPercentage":
		s.ThreePointersPercentage = extract.AsFloat(value)
	case "turnovers":
		s.Turnovers = extract.AsInt(value)
	case "turnoversPercentage":
		s.TurnoversPercentage = extract.AsFloat(value)
	case "twoPointersAttempted":
		s.TwoPointersAttempted = extract.AsInt(value)
	case "twoPointersMade":
		s.TwoPointersMade = extract.AsInt(value)
	case "twoPointersPercentage":
		s.TwoPointersPercentage = extract.AsFloat(value)
	default:
		return false
	}
	return true
}

// ApplyField overwrites one team stat field by normalized wire name.
func (s *TeamStats) ApplyField(name string, value any) bool {
	switch NormalizeStatKey(name) {
	case "assists":
		s.Assists = extract.AsInt(value)
	case "benchPoints":
		s.BenchPoints = extract.AsInt(value)
	case "biggestLead":
		s.BiggestLead = extract.AsInt(value)
	case "biggestScoringRun":
		s.BiggestScoringRun = extract.AsInt(value)
	case "blocks":
		s.Blocks = extract.AsInt(value)
	case "blocksReceived":
		s.BlocksReceived = extract.AsInt(value)
	case "efficiency":
		s.Efficiency = extract.AsFloat(value)
	case "fastBreakPointsMade":
		s.FastBreakPointsMade = extract.AsInt(value)
	case "fieldGoalsAttempted":
		s.FieldGoalsAttempted = extract.AsInt(value)
	case "fieldGoalsMade":
		s.FieldGoalsMade = extract.AsInt(value)
	case "fieldGoalsPercentage", "fieldGoalPercentage":
		s.FieldGoalsPercentage = extract.AsFloat(value)
	case "foulsOn":
		s.FoulsOn = extract.AsInt(value)
	case "foulsPersonal":
		s.FoulsPersonal = extract.AsInt(value)
	case "foulsTeam":
		s.FoulsTeam = extract.AsInt(value)
	case "foulsTechnical":
		s.FoulsTechnical = extract.AsInt(value)
	case "freeThrowsAttempted":
		s.FreeThrowsAttempted = extract.AsInt(value)
	case "freeThrowsMade":
		s.FreeThrowsMade = extract.AsInt(value)
	case "freeThrowsPercentage":
		s.FreeThrowsPercentage = extract.AsFloat(value)
	case "leadChanges":
		s.LeadChanges = extract.AsInt(value)
	case "minutes":
		s.Minutes = extract.AsFloat(value)
	case "offensiveRebounds":
		s.OffensiveRebounds = extract.AsInt(value)
	case "points":
		s.Points = extract.AsInt(value)
	case "pointsFastBreak":
		s.PointsFastBreak = extract.AsInt(value)
	case "pointsFromTurnovers":
		s.PointsFromTurnovers = extract.AsInt(value)
	case "pointsInThePaint":
		s.PointsInThePaint = extract.AsInt(value)
	case "pointsInThePaintMade":
		s.PointsInThePaintMade = extract.AsInt(value)
	case "pointsSecondChance":
		s.PointsSecondChance = extract.AsInt(value)
	case "reboundsDefensive":
		s.ReboundsDefensive = extract.AsInt(value)
	case "reboundsPersonal":
		s.ReboundsPersonal = extract.AsInt(value)
	case "reboundsTeam":
		s.ReboundsTeam = extract.AsInt(value)
	case "reboundsTeamDefensive":
		s.ReboundsTeamDefensive = extract.AsInt(value)
	case "reboundsTeamOffensive":
		s.ReboundsTeamOffensive = extract.AsInt(value)
	case "reboundsTotal":
		s.ReboundsTotal = extract.AsInt(value)
	case "reboundsTotalDefensive":
		s.ReboundsTotalDefensive = extract.AsInt(value)
	case "reboundsTotalOffensive":
		s.ReboundsTotalOffensive = extract.AsInt(value)
	case "secondChancePointsMade":
		s.SecondChancePointsMade = extract.AsInt(value)
	case "steals":
		s.Steals = extract.AsInt(value)
	case "threePointersAttempted":
		s.ThreePointersAttempted = extract.AsInt(value)
	case "threePointersMade":
		s.ThreePointersMade = extract.AsInt(value)
	case "threePointersPercentage":
		s.ThreePointersPercentage = extract.AsFloat(value)
	case "timeLeading":
		s.TimeLeading = extract.AsFloat(value)
	case "timesScoreLevel":
		s.TimesScoreLevel = extract.AsInt(value)
	case "turnovers":
		s.Turnovers = extract.AsInt(value)
	case "turnoversTeam":
		s.TurnoversTeam = extract.AsInt(value)
	case "twoPointersAttempted":
		s.TwoPointersAttempted = extract.AsInt(value)
	case "twoPointersMade":
		s.TwoPointersMade = extract.AsInt(value)
	case "twoPointersPercentage":
		s.TwoPointersPercentage = extract.AsFloat(value)
	default:
		return false
	}
	return true
}
