package domain

import "testing"

func TestParseActionType(t *testing.T) {
	tests := []struct {
		code   string
		want   ActionType
		wantOK bool
	}{
		{"2pt", ActionTwoPoint, true},
		{"3pt", ActionThreePoint, true},
		{"2PT", ActionTwoPoint, true},
		{"twopt", ActionTwoPoint, true},
		{"freethrow", ActionFreeThrow, true},
		{"freeThrow", ActionFreeThrow, true},
		{"jumpball", ActionJumpBall, true},
		{"foulon", ActionFoulDrawn, true},
		{"possessionchange", ActionPossessionChange, true},
		{"clock", ActionClock, true},
		{"game", ActionGame, true},
		{" rebound ", ActionRebound, true},
		{"dunkcontest", ActionUnknown, false},
		{"", ActionUnknown, false},
	}

	for _, tc := range tests {
		t.Run(tc.code, func(t *testing.T) {
			got, ok := ParseActionType(tc.code)
			if ok != tc.wantOK || got != tc.want {
				t.Fatalf("ParseActionType(%q) = %q, %v; want %q, %v", tc.code, got, ok, tc.want, tc.wantOK)
			}
		})
	}
}

func TestParseGameStatus(t *testing.T) {
	tests := []struct {
		value string
		want  GameStatus
	}{
		{"INPROGRESS", StatusInProgress},
		{"inprogress", StatusInProgress},
		{"INTERUPTTED", StatusInterrupted},
		{"FINISHED", StatusFinished},
		{"CANCELED", StatusCancelled},
		{"bogus", StatusUnknown},
		{"", StatusUnknown},
	}

	for _, tc := range tests {
		if got := ParseGameStatus(tc.value); got != tc.want {
			t.Fatalf("ParseGameStatus(%q) = %q, want %q", tc.value, got, tc.want)
		}
	}
}

func TestParsePeriodType(t *testing.T) {
	if got := ParsePeriodType("OVERTIME"); got != PeriodOvertime {
		t.Fatalf("got %q", got)
	}
	for _, value := range []string{"REGULAR", "", "junk"} {
		if got := ParsePeriodType(value); got != PeriodRegular {
			t.Fatalf("ParsePeriodType(%q) = %q, want REGULAR", value, got)
		}
	}
}

func TestParsePeriodStatus(t *testing.T) {
	if got := ParsePeriodStatus("started"); got != PeriodStarted {
		t.Fatalf("got %q", got)
	}
	if got := ParsePeriodStatus("nonsense"); got != "" {
		t.Fatalf("unknown status should be empty, got %q", got)
	}
}
