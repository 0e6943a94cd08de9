// Package compose renders actions and stat lines as display text. It is a
// pure consumer of the domain model: composition never mutates state and an
// unrecognized action type yields an empty string rather than an error.
package compose

import (
	"fmt"
	"strings"

	"github.com/courtside-live/livestats/internal/domain"
)

// expansions maps the feed's squashed sub-type and qualifier tokens to
// readable phrases.
var expansions = map[string]string{
	"tipin":              "tip in",
	"alleyoop":           "alley oop",
	"drivinglayup":       "driving layup",
	"hookshot":           "hook shot",
	"floatingjumpshot":   "floating jumpshot",
	"stepbackjumpshot":   "stepback jumpshot",
	"pullupjumpshot":     "pull up jumpshot",
	"turnaroundjumpshot": "turn around jumpshot",
	"wrongbasket":        "wrong basket",
	"1freethrow":         "one free throw",
	"2freethrow":         "two free throws",
	"3freethrow":         "three free throws",
	"oneandone":          "one and one",
	"flagrant1":          "flagrant 1",
	"flagrant2":          "flagrant 2",
	"looseball":          "loose ball",
	"classa":             "class A",
	"classb":             "class B",
	"benchclassb":        "bench class B",
	"coachclassb":        "coach class B",
	"coachindirect":      "coach indirect",
	"contactdeadball":    "dead ball contact",
}

var scoringLiterals = map[domain.ActionType]string{
	domain.ActionTwoPoint:   "two point",
	domain.ActionThreePoint: "three point",
}

var freeThrowQualifiers = []string{"1freethrow", "2freethrow", "3freethrow", "oneandone"}

type composeFunc func(domain.Action, *domain.Game) string

var composers = map[domain.ActionType]composeFunc{
	domain.ActionGame: func(a domain.Action, _ *domain.Game) string {
		return fmt.Sprintf("Game has %sed.", a.SubType)
	},
	domain.ActionPeriod: func(a domain.Action, _ *domain.Game) string {
		return fmt.Sprintf("Period %d has %sed.", a.Period, a.SubType)
	},
	domain.ActionTwoPoint:   composeScoringPlay,
	domain.ActionThreePoint: composeScoringPlay,
	domain.ActionFreeThrow:  composeFreeThrow,
	domain.ActionAssist: func(a domain.Action, g *domain.Game) string {
		return composeSimple(a, g, "Assist")
	},
	domain.ActionBlock: func(a domain.Action, g *domain.Game) string {
		return composeSimple(a, g, "Block")
	},
	domain.ActionSteal: func(a domain.Action, g *domain.Game) string {
		return composeSimple(a, g, "Steal")
	},
	domain.ActionTurnover: func(a domain.Action, g *domain.Game) string {
		return composeSimple(a, g, "Turnover")
	},
	domain.ActionRebound:   composeRebound,
	domain.ActionFoulDrawn: composeFoulDrawn,
	domain.ActionFoul:      composeFoul,
	domain.ActionTimeout:   composeTimeout,
}

// ActionMessage renders one action against the current game state. The
// result is empty for action types without a composer; callers drop it.
func ActionMessage(action domain.Action, game *domain.Game) string {
	composer, ok := composers[action.Type]
	if !ok {
		return ""
	}
	message := composer(action, game)
	if message == "" {
		return ""
	}
	return fmt.Sprintf("[P%d %s #%d] %s", action.Period, action.Clock, action.Number, message)
}

func expand(token string) string {
	if expanded, ok := expansions[token]; ok {
		return expanded
	}
	return token
}

// titleize capitalizes each word of a phrase the way scoreboard copy reads.
func titleize(phrase string) string {
	words := strings.Fields(phrase)
	for i, word := range words {
		if word == strings.ToLower(word) {
			words[i] = strings.ToUpper(word[:1]) + word[1:]
		}
	}
	return strings.Join(words, " ")
}

func playerString(action domain.Action, game *domain.Game) string {
	player, ok := action.Player(game)
	if !ok {
		return ""
	}
	code := ""
	if team, ok := action.Team(game); ok {
		code = team.Code
	}
	return fmt.Sprintf("%s [%s]", player.FullName(), code)
}

func teamName(action domain.Action, game *domain.Game) string {
	team, ok := action.Team(game)
	if !ok {
		return ""
	}
	return team.Name
}

func composeScoringPlay(action domain.Action, game *domain.Game) string {
	player := playerString(action, game)
	if player == "" {
		return ""
	}
	verb := "made"
	if !action.Success {
		verb = "missed"
	}
	return fmt.Sprintf("%s %s a %s %s.", player, verb, scoringLiterals[action.Type], expand(action.SubType))
}

func composeFreeThrow(action domain.Action, game *domain.Game) string {
	player := playerString(action, game)
	if player == "" || action.SubType == "" {
		return ""
	}
	verb := "made"
	if !action.Success {
		verb = "missed"
	}
	// Sub-type encodes position in the trip, e.g. "1of2".
	current := action.SubType[:1]
	given := action.SubType[len(action.SubType)-1:]
	return fmt.Sprintf("%s %s free throw %s of %s.", player, verb, current, given)
}

func composeSimple(action domain.Action, game *domain.Game, kind string) string {
	player := playerString(action, game)
	if player == "" {
		return ""
	}
	return fmt.Sprintf("%s by %s.", kind, player)
}

func composeRebound(action domain.Action, game *domain.Game) string {
	name := playerString(action, game)
	if action.PlayerNumber == 0 || name == "" {
		if name = teamName(action, game); name == "" {
			return ""
		}
	}
	return fmt.Sprintf("%s rebound by %s.", titleize(action.SubType), name)
}

func composeFoulDrawn(action domain.Action, game *domain.Game) string {
	player := playerString(action, game)
	if player == "" {
		return ""
	}
	return fmt.Sprintf("Foul drawn by %s.", player)
}

func composeFoul(action domain.Action, game *domain.Game) string {
	var name string
	if action.PlayerNumber == 0 {
		team, ok := action.Team(game)
		if !ok {
			return ""
		}
		switch action.SubType {
		case "coachTechnical":
			name = team.Name + " coach"
		case "benchTechnical":
			name = team.Name + " bench"
		default:
			name = team.Name
		}
	} else {
		if name = playerString(action, game); name == "" {
			return ""
		}
	}

	response := fmt.Sprintf("%s foul on %s.", titleize(expand(strings.ToLower(action.SubType))), name)

	remaining := make([]string, 0, len(action.Qualifiers))
	remaining = append(remaining, action.Qualifiers...)
	for _, kind := range freeThrowQualifiers {
		if idx := indexOf(remaining, kind); idx >= 0 {
			remaining = append(remaining[:idx], remaining[idx+1:]...)
			response += fmt.Sprintf(" Shooting %s.", expand(kind))
			break
		}
	}
	if len(remaining) > 0 {
		response += fmt.Sprintf(" Foul classified as %s.", expand(remaining[0]))
	}
	return response
}

func composeTimeout(action domain.Action, game *domain.Game) string {
	if action.TeamNumber == 0 {
		if action.SubType == "commercial" {
			return "MEDIA TIMEOUT."
		}
		return "Timeout taken by the officials."
	}
	name := teamName(action, game)
	if name == "" {
		return ""
	}
	duration := "30s"
	if action.SubType == "full" {
		duration = "60s"
	}
	return fmt.Sprintf("%s timeout taken by %s.", duration, name)
}

func indexOf(list []string, value string) int {
	for i, item := range list {
		if item == value {
			return i
		}
	}
	return -1
}
