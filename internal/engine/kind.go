package engine

import "strings"

// Kind is the closed set of message kinds the dispatcher routes.
type Kind string

const (
	KindPing             Kind = "ping"
	KindStatus           Kind = "status"
	KindTeams            Kind = "teams"
	KindBoxScore         Kind = "boxscore"
	KindPlayByPlay       Kind = "playbyplay"
	KindSetup            Kind = "setup"
	KindMatchInformation Kind = "matchinformation"
)

// Kinds returns every routed message kind.
func Kinds() []Kind {
	return []Kind{
		KindPing,
		KindStatus,
		KindTeams,
		KindBoxScore,
		KindPlayByPlay,
		KindSetup,
		KindMatchInformation,
	}
}

var kindAliases = map[string]Kind{
	"ping":             KindPing,
	"heartbeat":        KindPing,
	"status":           KindStatus,
	"teams":            KindTeams,
	"boxscore":         KindBoxScore,
	"playbyplay":       KindPlayByPlay,
	"setup":            KindSetup,
	"matchinformation": KindMatchInformation,
}

// KindForTag normalizes a wire type tag and resolves it to a Kind. The bool
// is false for tags the dispatcher does not route.
func KindForTag(tag string) (Kind, bool) {
	kind, ok := kindAliases[NormalizeTag(tag)]
	return kind, ok
}

// NormalizeTag folds a wire type tag to its canonical handler key: lowercase
// with word-boundary characters removed, so "boxScore", "box_score" and
// "box-score" all resolve to "boxscore".
func NormalizeTag(tag string) string {
	var b strings.Builder
	b.Grow(len(tag))
	for _, r := range strings.ToLower(strings.TrimSpace(tag)) {
		switch r {
		case '_', '-', ' ', '.':
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
