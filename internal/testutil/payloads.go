// Package testutil builds feed message payloads shaped like the wire
// format: nested string-keyed maps as json.Unmarshal would produce them.
package testutil

// StatusMessage is a representative status payload.
func StatusMessage() map[string]any {
	return map[string]any{
		"type":   "status",
		"status": "INPROGRESS",
		"period": map[string]any{
			"current":    2,
			"periodType": "REGULAR",
			"status":     "STARTED",
		},
		"clock":           "05:33",
		"shotClock":       "24",
		"clockRunning":    true,
		"possession":      1,
		"possessionArrow": 2,
	}
}

// RosterMessage builds a teams payload with one home and one away team.
func RosterMessage() map[string]any {
	return map[string]any{
		"type": "teams",
		"teams": []any{
			TeamEntry(1, "Dragons", "DRA", true, []any{
				PlayerRecord(4, "Ava", "Stone", "23"),
				PlayerRecord(5, "Mia", "Reyes", "10"),
			}),
			TeamEntry(2, "Comets", "COM", false, []any{
				PlayerRecord(7, "Zoe", "Park", "3"),
			}),
		},
	}
}

// TeamEntry builds one roster team entry.
func TeamEntry(number int, name, code string, home bool, players []any) map[string]any {
	return map[string]any{
		"teamNumber": number,
		"detail": map[string]any{
			"teamName":         name,
			"teamCode":         code,
			"teamCodeLong":     name,
			"isHomeCompetitor": home,
		},
		"players": players,
	}
}

// PlayerRecord builds one roster player record.
func PlayerRecord(pno int, first, family, shirt string) map[string]any {
	return map[string]any{
		"pno":             pno,
		"firstName":       first,
		"familyName":      family,
		"height":          1.85,
		"shirtNumber":     shirt,
		"playingPosition": "G",
		"starter":         true,
		"captain":         false,
		"active":          true,
	}
}

// BoxScoreMessage builds a boxscore payload for one team with the given
// per-player stat records.
func BoxScoreMessage(teamNumber int, players ...map[string]any) map[string]any {
	records := make([]any, 0, len(players))
	for _, p := range players {
		records = append(records, p)
	}
	return map[string]any{
		"type": "boxscore",
		"teams": []any{map[string]any{
			"teamNumber": teamNumber,
			"total": map[string]any{
				"sPoints":  10,
				"sAssists": 3,
			},
			"players": records,
		}},
	}
}

// PlayerStatsRecord builds one boxscore player record from wire field names.
func PlayerStatsRecord(pno int, fields map[string]any) map[string]any {
	record := map[string]any{"pno": pno}
	for k, v := range fields {
		record[k] = v
	}
	return record
}

// PlayByPlayMessage wraps action entries in a playbyplay payload.
func PlayByPlayMessage(actions ...map[string]any) map[string]any {
	entries := make([]any, 0, len(actions))
	for _, a := range actions {
		entries = append(entries, a)
	}
	return map[string]any{
		"type":    "playbyplay",
		"actions": entries,
	}
}

// ActionEntry builds one play-by-play action entry.
func ActionEntry(number, teamNumber, pno int, actionType, subType string) map[string]any {
	return map[string]any{
		"actionNumber": number,
		"teamNumber":   teamNumber,
		"pno":          pno,
		"clock":        "07:12",
		"shotClock":    "18",
		"timeActual":   "2024-02-09T19:05:22.1",
		"period":       1,
		"periodType":   "REGULAR",
		"actionType":   actionType,
		"subType":      subType,
		"qualifiers":   []any{},
		"x":            31.5,
		"y":            12.0,
		"area":         "paint",
		"success":      true,
	}
}
