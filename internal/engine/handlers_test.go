package engine

import (
	"testing"
	"time"

	"github.com/courtside-live/livestats/internal/domain"
	"github.com/courtside-live/livestats/internal/metrics"
	"github.com/courtside-live/livestats/internal/testutil"
)

func TestHandlePing(t *testing.T) {
	e := newTestEngine(t)

	e.Receive(map[string]any{"type": "ping", "timestamp": "2024-02-09T19:05:22.84-05"})
	want := time.Date(2024, 2, 9, 19, 5, 22, 840000000, time.FixedZone("", -5*3600))
	if !e.LastHeartbeat().Equal(want) {
		t.Fatalf("heartbeat = %v, want %v", e.LastHeartbeat(), want)
	}
}

func TestHandlePingMissingTimestamp(t *testing.T) {
	recorder := metrics.NewRecorder()
	e := New(Config{Logger: testutil.DiscardLogger(), Metrics: recorder})

	e.Receive(map[string]any{"type": "ping"})
	if !e.LastHeartbeat().IsZero() {
		t.Fatal("heartbeat should stay unset")
	}
	if recorder.HandlerErrors("ping") != 1 {
		t.Fatalf("handler errors = %d, want 1", recorder.HandlerErrors("ping"))
	}
}

func TestHandleStatus(t *testing.T) {
	e := newTestEngine(t)
	e.Receive(testutil.StatusMessage())

	game := e.Game()
	if game.Status != domain.StatusInProgress {
		t.Fatalf("status = %q", game.Status)
	}
	if game.CurrentPeriod != 2 || game.PeriodType != domain.PeriodRegular || game.PeriodStatus != domain.PeriodStarted {
		t.Fatalf("period block wrong: %+v", game)
	}
	if game.Clock != "05:33" || game.ShotClock != "24" || !game.ClockRunning {
		t.Fatalf("clock block wrong: %+v", game)
	}
	if game.Possession != domain.PossessionHome || game.PossessionArrow != domain.PossessionAway {
		t.Fatalf("possession wrong: %+v", game)
	}
}

func TestHandleStatusToleratesMissingFields(t *testing.T) {
	e := newTestEngine(t)
	e.Receive(testutil.StatusMessage())

	// A sparse status message overwrites with zero values, never crashes.
	e.Receive(map[string]any{"type": "status"})
	game := e.Game()
	if game.Status != domain.StatusUnknown || game.CurrentPeriod != 0 || game.ClockRunning {
		t.Fatalf("sparse status should zero fields: %+v", game)
	}
}

func TestHandleStatusScores(t *testing.T) {
	e := newTestEngine(t)
	e.Receive(testutil.RosterMessage())

	msg := testutil.StatusMessage()
	msg["scores"] = []any{
		map[string]any{"teamNumber": 1, "score": 44, "timeoutsRemaining": 2, "fouls": 3, "teamFouls": 5},
		map[string]any{"teamNumber": 9, "score": 1},
	}
	e.Receive(msg)

	score := e.Game().HomeTeam.Score
	if score == nil || score.Score != 44 || score.TimeoutsRemaining != 2 || score.TeamFouls != 5 {
		t.Fatalf("home score snapshot wrong: %+v", score)
	}
	if e.Game().AwayTeam.Score != nil {
		t.Fatal("away team got no score entry")
	}
}

func TestHandleTeams(t *testing.T) {
	e := newTestEngine(t)
	e.Receive(testutil.RosterMessage())

	game := e.Game()
	if !game.IsReady() {
		t.Fatal("both rosters should be loaded")
	}

	home := game.HomeTeam
	if home.Number != 1 || home.Name != "Dragons" || home.Code != "DRA" || !home.IsHome {
		t.Fatalf("home team wrong: %+v", home)
	}
	if len(home.Players) != 2 {
		t.Fatalf("home roster size = %d, want 2", len(home.Players))
	}

	player, ok := home.PlayerByNumber(4)
	if !ok {
		t.Fatal("player 4 missing")
	}
	if player.FirstName != "Ava" || player.LastName != "Stone" || player.Shirt != "23" {
		t.Fatalf("player fields wrong: %+v", player)
	}
	if !player.Starter || !player.Active || player.Captain {
		t.Fatalf("player flags wrong: %+v", player)
	}
	if player.Stats != (domain.PlayerStats{}) {
		t.Fatal("fresh player should have zeroed stats")
	}
}

func TestHandleTeamsNeverReplaces(t *testing.T) {
	e := newTestEngine(t)
	e.Receive(testutil.RosterMessage())

	home := e.Game().HomeTeam
	player, _ := home.PlayerByNumber(4)

	e.Receive(testutil.RosterMessage())
	if e.Game().HomeTeam != home {
		t.Fatal("team reference must never be replaced")
	}
	again, _ := e.Game().HomeTeam.PlayerByNumber(4)
	if again != player {
		t.Fatal("player identity must survive a repeated roster")
	}
}

func TestHandleTeamsDuplicatePlayerNumbers(t *testing.T) {
	e := newTestEngine(t)
	msg := map[string]any{
		"type": "teams",
		"teams": []any{
			testutil.TeamEntry(1, "Dragons", "DRA", true, []any{
				testutil.PlayerRecord(4, "Ava", "Stone", "23"),
				testutil.PlayerRecord(4, "Noa", "Klein", "8"),
			}),
			testutil.TeamEntry(2, "Comets", "COM", false, nil),
		},
	}
	e.Receive(msg)

	home := e.Game().HomeTeam
	if len(home.Players) != 1 {
		t.Fatalf("roster size = %d, want 1", len(home.Players))
	}
	player, _ := home.PlayerByNumber(4)
	if player.LastName != "Klein" {
		t.Fatalf("later duplicate should win, got %q", player.LastName)
	}
}

func TestHandleBoxScoreOverwrites(t *testing.T) {
	e := newTestEngine(t)
	e.Receive(testutil.RosterMessage())

	update := func() map[string]any {
		return testutil.BoxScoreMessage(1,
			testutil.PlayerStatsRecord(4, map[string]any{
				"sPoints":        float64(10),
				"sAssists":       float64(4),
				"sReboundsTotal": float64(6),
			}),
		)
	}

	e.Receive(update())
	player, _ := e.Game().HomeTeam.PlayerByNumber(4)
	if player.Stats.Points != 10 || player.Stats.Assists != 4 || player.Stats.ReboundsTotal != 6 {
		t.Fatalf("stats wrong after first update: %+v", player.Stats)
	}
	if e.Game().HomeTeam.Stats.Points != 10 || e.Game().HomeTeam.Stats.Assists != 3 {
		t.Fatalf("team totals wrong: %+v", e.Game().HomeTeam.Stats)
	}

	before := player.Stats
	e.Receive(update())
	if player.Stats != before {
		t.Fatalf("identical update must be a no-op: %+v vs %+v", player.Stats, before)
	}
}

func TestHandleBoxScorePreservesPlayerIdentity(t *testing.T) {
	e := newTestEngine(t)
	e.Receive(testutil.RosterMessage())

	player, _ := e.Game().HomeTeam.PlayerByNumber(4)
	e.Receive(testutil.BoxScoreMessage(1,
		testutil.PlayerStatsRecord(4, map[string]any{"sPoints": float64(21)}),
	))

	// The held reference observes the update in place.
	if player.Stats.Points != 21 {
		t.Fatalf("held reference sees %d points, want 21", player.Stats.Points)
	}
}

func TestHandleBoxScoreUnknownPlayerIgnored(t *testing.T) {
	e := newTestEngine(t)
	e.Receive(testutil.RosterMessage())

	e.Receive(testutil.BoxScoreMessage(1,
		testutil.PlayerStatsRecord(99, map[string]any{"sPoints": float64(50)}),
		testutil.PlayerStatsRecord(4, map[string]any{"sPoints": float64(7)}),
	))

	player, _ := e.Game().HomeTeam.PlayerByNumber(4)
	if player.Stats.Points != 7 {
		t.Fatal("known player in the same batch must still apply")
	}
}

func TestHandleBoxScoreUnrosteredTeamFails(t *testing.T) {
	recorder := metrics.NewRecorder()
	e := New(Config{Logger: testutil.DiscardLogger(), Metrics: recorder})

	e.Receive(testutil.BoxScoreMessage(1))
	if recorder.HandlerErrors("boxscore") != 1 {
		t.Fatalf("handler errors = %d, want 1", recorder.HandlerErrors("boxscore"))
	}
}

func TestHandleBoxScorePeriodStats(t *testing.T) {
	e := newTestEngine(t)
	e.Receive(testutil.RosterMessage())

	msg := map[string]any{
		"type": "boxscore",
		"teams": []any{map[string]any{
			"teamNumber": 1,
			"periods": []any{
				map[string]any{"period": 1, "sPoints": float64(18)},
				map[string]any{"period": 2, "sPoints": float64(26)},
			},
		}},
	}
	e.Receive(msg)

	home := e.Game().HomeTeam
	if home.PeriodStatsFor(1).Points != 18 || home.PeriodStatsFor(2).Points != 26 {
		t.Fatalf("period stats wrong: %+v", home.PeriodStats)
	}
}

func TestHandlePlayByPlayBatch(t *testing.T) {
	e := newTestEngine(t)
	e.Receive(testutil.RosterMessage())

	e.Receive(testutil.PlayByPlayMessage(
		testutil.ActionEntry(10, 1, 4, "2pt", "layup"),
		testutil.ActionEntry(11, 2, 7, "rebound", "defensive"),
	))
	e.Receive(testutil.PlayByPlayMessage(
		testutil.ActionEntry(12, 1, 5, "3pt", "pullupjumpshot"),
	))

	actions := e.Game().Actions
	if len(actions) != 3 {
		t.Fatalf("expected 3 actions, got %d", len(actions))
	}
	for i := 1; i < len(actions); i++ {
		if actions[i].Number < actions[i-1].Number {
			t.Fatalf("action numbers must be non-decreasing: %v", actions)
		}
	}
	if actions[0].Type != domain.ActionTwoPoint || actions[2].Type != domain.ActionThreePoint {
		t.Fatalf("action types wrong: %+v", actions)
	}
}

func TestHandlePlayByPlayMalformedActionIsolated(t *testing.T) {
	recorder := metrics.NewRecorder()
	e := New(Config{Logger: testutil.DiscardLogger(), Metrics: recorder})
	e.Receive(testutil.RosterMessage())

	e.Receive(testutil.PlayByPlayMessage(
		testutil.ActionEntry(1, 1, 4, "2pt", "layup"),
		testutil.ActionEntry(2, 1, 4, "quadrupledunk", ""),
		testutil.ActionEntry(3, 2, 7, "steal", ""),
	))

	actions := e.Game().Actions
	if len(actions) != 2 {
		t.Fatalf("expected 2 surviving actions, got %d", len(actions))
	}
	if actions[0].Number != 1 || actions[1].Number != 3 {
		t.Fatalf("wrong survivors: %+v", actions)
	}
	if recorder.HandlerErrors("playbyplay") != 1 {
		t.Fatalf("batch with a bad action should count one handler error")
	}
}

func TestHandlePlayByPlayParsesActionFields(t *testing.T) {
	e := newTestEngine(t)
	e.Receive(testutil.RosterMessage())

	entry := testutil.ActionEntry(21, 1, 4, "foul", "personal")
	entry["qualifiers"] = []any{"2freethrow", "shooting"}
	entry["previousAction"] = float64(20)
	entry["value"] = "2"
	entry["success"] = false
	e.Receive(testutil.PlayByPlayMessage(entry))

	action := e.Game().Actions[0]
	if action.Number != 21 || action.TeamNumber != 1 || action.PlayerNumber != 4 {
		t.Fatalf("identifiers wrong: %+v", action)
	}
	if action.Type != domain.ActionFoul || action.SubType != "personal" {
		t.Fatalf("type wrong: %+v", action)
	}
	if !action.HasQualifier("2freethrow") || !action.HasQualifier("shooting") {
		t.Fatalf("qualifiers wrong: %+v", action.Qualifiers)
	}
	if action.PreviousAction != 20 || action.Value != "2" || action.Success {
		t.Fatalf("optional fields wrong: %+v", action)
	}
	if action.Clock != "07:12" || action.Period != 1 || action.X != 31.5 || action.Area != "paint" {
		t.Fatalf("spatial fields wrong: %+v", action)
	}
	if action.Timestamp.IsZero() {
		t.Fatal("timestamp should parse")
	}
}

func TestPlayByPlayEmitsComposedLines(t *testing.T) {
	var lines []string
	e := New(Config{
		Logger:  testutil.DiscardLogger(),
		Metrics: metrics.NewRecorder(),
		Composer: func(a domain.Action, _ *domain.Game) string {
			if a.Type == domain.ActionSteal {
				return ""
			}
			return string(a.Type)
		},
		LineSink: func(line string) { lines = append(lines, line) },
	})
	e.Receive(testutil.RosterMessage())

	e.Receive(testutil.PlayByPlayMessage(
		testutil.ActionEntry(1, 1, 4, "2pt", "layup"),
		testutil.ActionEntry(2, 2, 7, "steal", ""),
	))

	if len(lines) != 1 || lines[0] != "two-point" {
		t.Fatalf("lines = %v", lines)
	}
}

func TestSetupAndMatchInformationAreNoOps(t *testing.T) {
	recorder := metrics.NewRecorder()
	e := New(Config{Logger: testutil.DiscardLogger(), Metrics: recorder})

	e.Receive(map[string]any{"type": "setup", "anything": 1})
	e.Receive(map[string]any{"type": "matchInformation", "venue": "arena"})

	if recorder.HandlerErrors("setup") != 0 || recorder.HandlerErrors("matchinformation") != 0 {
		t.Fatal("reserved handlers must not fail")
	}
	if recorder.Messages("setup") != 1 || recorder.Messages("matchinformation") != 1 {
		t.Fatal("reserved handlers still count as processed")
	}
}
