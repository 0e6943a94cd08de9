package engine

import "testing"

func TestNormalizeTag(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"boxscore", "boxscore"},
		{"boxScore", "boxscore"},
		{"BoxScore", "boxscore"},
		{"box_score", "boxscore"},
		{"box-score", "boxscore"},
		{"Play By Play", "playbyplay"},
		{"match_information", "matchinformation"},
		{"  ping  ", "ping"},
	}
	for _, tc := range tests {
		if got := NormalizeTag(tc.in); got != tc.want {
			t.Fatalf("NormalizeTag(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestKindForTag(t *testing.T) {
	tests := []struct {
		tag    string
		want   Kind
		wantOK bool
	}{
		{"ping", KindPing, true},
		{"heartbeat", KindPing, true},
		{"HeartBeat", KindPing, true},
		{"status", KindStatus, true},
		{"teams", KindTeams, true},
		{"boxScore", KindBoxScore, true},
		{"playByPlay", KindPlayByPlay, true},
		{"setup", KindSetup, true},
		{"matchInformation", KindMatchInformation, true},
		{"scoreboard", "", false},
		{"", "", false},
	}
	for _, tc := range tests {
		t.Run(tc.tag, func(t *testing.T) {
			got, ok := KindForTag(tc.tag)
			if ok != tc.wantOK || got != tc.want {
				t.Fatalf("KindForTag(%q) = %q, %v; want %q, %v", tc.tag, got, ok, tc.want, tc.wantOK)
			}
		})
	}
}

// Every routed kind must have a handler in the dispatch table.
func TestHandlerTableComplete(t *testing.T) {
	e := New(Config{})
	for _, kind := range Kinds() {
		if e.handlers[kind] == nil {
			t.Fatalf("kind %q has no handler", kind)
		}
	}
	if len(e.handlers) != len(Kinds()) {
		t.Fatalf("handler table has %d entries, want %d", len(e.handlers), len(Kinds()))
	}
}
