package engine

import (
	"errors"
	"fmt"

	"github.com/courtside-live/livestats/internal/domain"
	"github.com/courtside-live/livestats/internal/extract"
	"github.com/courtside-live/livestats/internal/logging"
	"github.com/courtside-live/livestats/internal/timeutil"
)

// handlePing records the feed's heartbeat timestamp. No effect on the game.
func (e *Engine) handlePing(msg map[string]any) error {
	raw, ok := extract.Value(msg, "timestamp")
	if !ok {
		return errors.New("ping: missing timestamp")
	}
	ts, err := timeutil.ParseTimestamp(extract.AsString(raw))
	if err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	e.lastHeartbeat = ts
	return nil
}

// handleStatus overwrites the game's clock and status block from the message.
func (e *Engine) handleStatus(msg map[string]any) error {
	game := e.game
	game.Status = domain.ParseGameStatus(extract.String(msg, "status"))
	game.CurrentPeriod = extract.Int(msg, "period.current")
	game.PeriodType = domain.ParsePeriodType(extract.String(msg, "period.periodType"))
	game.PeriodStatus = domain.ParsePeriodStatus(extract.String(msg, "period.status"))
	game.Clock = extract.String(msg, "clock")
	game.ShotClock = extract.String(msg, "shotClock")
	game.ClockRunning = extract.Bool(msg, "clockRunning")
	game.Possession = domain.Possession(extract.Int(msg, "possession"))
	game.PossessionArrow = domain.Possession(extract.Int(msg, "possessionArrow"))

	e.applyScores(extract.List(msg, "scores"))
	return nil
}

// applyScores folds the per-team score snapshots into existing teams. Scores
// arriving before the roster are dropped; the next status message restates them.
func (e *Engine) applyScores(scores []any) {
	for _, raw := range scores {
		entry, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		team, ok := e.game.TeamByNumber(extract.Int(entry, "teamNumber"))
		if !ok {
			continue
		}
		team.Score = &domain.TeamScore{
			Score:             extract.Int(entry, "score"),
			TimeoutsRemaining: extract.Int(entry, "timeoutsRemaining"),
			Fouls:             extract.Int(entry, "fouls"),
			TeamFouls:         extract.Int(entry, "teamFouls"),
		}
	}
}

// handleTeams builds both rosters. Each team slot is assigned exactly once;
// a repeated roster message never replaces an existing team.
func (e *Engine) handleTeams(msg map[string]any) error {
	entries := extract.List(msg, "teams")
	if entries == nil {
		return errors.New("teams: missing teams list")
	}

	for _, raw := range entries {
		entry, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		team := buildTeam(entry)
		if team.IsHome {
			if e.game.HomeTeam == nil {
				e.game.HomeTeam = team
			}
		} else {
			if e.game.AwayTeam == nil {
				e.game.AwayTeam = team
			}
		}
	}

	if e.game.IsReady() {
		logging.Info(e.logger, "rosters loaded, game ready",
			logging.FieldTeamNumber, e.game.HomeTeam.Number,
			"away_team_number", e.game.AwayTeam.Number,
		)
	}
	return nil
}

func buildTeam(entry map[string]any) *domain.Team {
	team := &domain.Team{
		Number:   extract.Int(entry, "teamNumber"),
		Name:     extract.String(entry, "detail.teamName"),
		Code:     extract.String(entry, "detail.teamCode"),
		LongCode: extract.String(entry, "detail.teamCodeLong"),
		IsHome:   extract.Bool(entry, "detail.isHomeCompetitor"),
		Players:  make(map[int]*domain.Player),
	}
	for _, raw := range extract.List(entry, "players") {
		record, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		player := buildPlayer(record)
		// Duplicate numbers within one roster overwrite the earlier entry.
		team.Players[player.Number] = player
	}
	return team
}

func buildPlayer(record map[string]any) *domain.Player {
	return &domain.Player{
		Number:    extract.Int(record, "pno"),
		FirstName: extract.String(record, "firstName"),
		LastName:  extract.String(record, "familyName"),
		Height:    extract.Float(record, "height"),
		Shirt:     extract.String(record, "shirtNumber"),
		Position:  extract.String(record, "playingPosition"),
		Starter:   extract.Bool(record, "starter"),
		Captain:   extract.Bool(record, "captain"),
		Active:    extract.Bool(record, "active"),
	}
}

// handleBoxScore overwrites player and team counters with the cumulative
// totals in the snapshot. A team entry naming a team that has not been
// rostered fails that entry; an unknown player or stat field is logged and
// skipped so the rest of the snapshot still applies.
func (e *Engine) handleBoxScore(msg map[string]any) error {
	entries := extract.List(msg, "teams")
	if entries == nil {
		return errors.New("boxscore: missing teams list")
	}

	var errs []error
	for _, raw := range entries {
		entry, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		number := extract.Int(entry, "teamNumber")
		team, ok := e.game.TeamByNumber(number)
		if !ok {
			errs = append(errs, fmt.Errorf("boxscore: team %d not rostered", number))
			continue
		}
		e.applyTeamBoxScore(team, entry)
	}
	return errors.Join(errs...)
}

func (e *Engine) applyTeamBoxScore(team *domain.Team, entry map[string]any) {
	if total, ok := extract.Value(entry, "total"); ok {
		if fields, ok := total.(map[string]any); ok {
			e.applyTeamStats(&team.Stats, team.Number, fields)
		}
	}

	for _, raw := range extract.List(entry, "periods") {
		fields, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		period := extract.Int(fields, "period")
		if period <= 0 {
			continue
		}
		e.applyTeamStats(team.PeriodStatsFor(period), team.Number, fields)
	}

	for _, raw := range extract.List(entry, "players") {
		record, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		number := extract.Int(record, "pno")
		player, ok := team.PlayerByNumber(number)
		if !ok {
			logging.Warn(e.logger, "boxscore for unknown player",
				logging.FieldTeamNumber, team.Number,
				logging.FieldPlayerNum, number,
			)
			continue
		}
		for name, value := range record {
			if name == "pno" {
				continue
			}
			if !player.Stats.ApplyField(name, value) {
				logging.Debug(e.logger, "unknown player stat field",
					logging.FieldField, name,
					logging.FieldPlayerNum, number,
				)
			}
		}
	}
}

func (e *Engine) applyTeamStats(stats *domain.TeamStats, teamNumber int, fields map[string]any) {
	for name, value := range fields {
		if name == "period" {
			continue
		}
		if _, nested := value.(map[string]any); nested {
			continue
		}
		if _, nested := value.([]any); nested {
			continue
		}
		if !stats.ApplyField(name, value) {
			logging.Debug(e.logger, "unknown team stat field",
				logging.FieldField, name,
				logging.FieldTeamNumber, teamNumber,
			)
		}
	}
}

// handlePlayByPlay appends each action in the batch to the game log. One
// malformed action is logged and skipped without discarding its siblings.
func (e *Engine) handlePlayByPlay(msg map[string]any) error {
	entries := extract.List(msg, "actions")
	if entries == nil {
		return errors.New("playbyplay: missing actions list")
	}

	var errs []error
	for _, raw := range entries {
		entry, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		action, err := parseAction(entry)
		if err != nil {
			errs = append(errs, err)
			logging.Warn(e.logger, "dropping malformed action",
				logging.FieldActionNum, extract.Int(entry, "actionNumber"),
				"error", err,
			)
			continue
		}

		e.game.AppendAction(action)
		e.metrics.RecordAction(string(action.Type))
		e.emit(action)
	}
	return errors.Join(errs...)
}

func (e *Engine) emit(action domain.Action) {
	if e.composer == nil || e.lineSink == nil {
		return
	}
	if line := e.composer(action, e.game); line != "" {
		e.lineSink(line)
	}
}

func parseAction(entry map[string]any) (domain.Action, error) {
	code := extract.String(entry, "actionType")
	actionType, ok := domain.ParseActionType(code)
	if !ok {
		return domain.Action{}, fmt.Errorf("unrecognized action type %q", code)
	}

	return domain.Action{
		Number:         extract.Int(entry, "actionNumber"),
		TeamNumber:     extract.Int(entry, "teamNumber"),
		PlayerNumber:   extract.Int(entry, "pno"),
		Clock:          extract.String(entry, "clock"),
		ShotClock:      extract.String(entry, "shotClock"),
		Timestamp:      extract.Time(entry, "timeActual"),
		Period:         extract.Int(entry, "period"),
		PeriodType:     domain.ParsePeriodType(extract.String(entry, "periodType")),
		Type:           actionType,
		SubType:        extract.String(entry, "subType"),
		Qualifiers:     extract.Strings(entry, "qualifiers"),
		Value:          extract.String(entry, "value"),
		PreviousAction: extract.Int(entry, "previousAction"),
		X:              extract.Float(entry, "x"),
		Y:              extract.Float(entry, "y"),
		Area:           extract.String(entry, "area"),
		Success:        extract.Bool(entry, "success"),
	}, nil
}

// handleSetup is a reserved extension point.
func (e *Engine) handleSetup(map[string]any) error { return nil }

// handleMatchInformation is a reserved extension point.
func (e *Engine) handleMatchInformation(map[string]any) error { return nil }
