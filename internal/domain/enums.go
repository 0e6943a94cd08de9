package domain

import "strings"

// GameStatus mirrors the feed's game lifecycle states.
type GameStatus string

const (
	StatusUnknown     GameStatus = ""
	StatusReady       GameStatus = "READY"
	StatusWarmup      GameStatus = "WARMUP"
	StatusPrematch    GameStatus = "PREMATCH"
	StatusAnthem      GameStatus = "ANTHEM"
	StatusOnCourt     GameStatus = "ONCOURT"
	StatusCountdown   GameStatus = "COUNTDOWN"
	StatusInProgress  GameStatus = "INPROGRESS"
	StatusPeriodBreak GameStatus = "PERIODBREAK"
	StatusInterrupted GameStatus = "INTERRUPTED"
	StatusCancelled   GameStatus = "CANCELLED"
	StatusFinished    GameStatus = "FINISHED"
	StatusProtested   GameStatus = "PROTESTED"
	StatusComplete    GameStatus = "COMPLETE"
	StatusRescheduled GameStatus = "RESCHEDULED"
	StatusDelayed     GameStatus = "DELAYED"
)

var gameStatusByWire = map[string]GameStatus{
	"READY":       StatusReady,
	"WARMUP":      StatusWarmup,
	"PREMATCH":    StatusPrematch,
	"ANTHEM":      StatusAnthem,
	"ONCOURT":     StatusOnCourt,
	"COUNTDOWN":   StatusCountdown,
	"INPROGRESS":  StatusInProgress,
	"PERIODBREAK": StatusPeriodBreak,
	"INTERRUPTED": StatusInterrupted,
	// Some feed builds ship this misspelling.
	"INTERUPTTED": StatusInterrupted,
	"CANCELLED":   StatusCancelled,
	"CANCELED":    StatusCancelled,
	"FINISHED":    StatusFinished,
	"PROTESTED":   StatusProtested,
	"COMPLETE":    StatusComplete,
	"RESCHEDULED": StatusRescheduled,
	"DELAYED":     StatusDelayed,
}

// ParseGameStatus maps a wire status string to a GameStatus.
// Unrecognized values yield StatusUnknown.
func ParseGameStatus(value string) GameStatus {
	if status, ok := gameStatusByWire[strings.ToUpper(strings.TrimSpace(value))]; ok {
		return status
	}
	return StatusUnknown
}

// PeriodType distinguishes regulation play from overtime.
type PeriodType string

const (
	PeriodRegular  PeriodType = "REGULAR"
	PeriodOvertime PeriodType = "OVERTIME"
)

// ParsePeriodType maps a wire period type to a PeriodType, defaulting to regular.
func ParsePeriodType(value string) PeriodType {
	if strings.EqualFold(strings.TrimSpace(value), string(PeriodOvertime)) {
		return PeriodOvertime
	}
	return PeriodRegular
}

// PeriodStatus tracks the lifecycle of the current period.
type PeriodStatus string

const (
	PeriodPending   PeriodStatus = "PENDING"
	PeriodStarted   PeriodStatus = "STARTED"
	PeriodEnded     PeriodStatus = "ENDED"
	PeriodConfirmed PeriodStatus = "CONFIRMED"
)

var periodStatusByWire = map[string]PeriodStatus{
	"PENDING":   PeriodPending,
	"STARTED":   PeriodStarted,
	"ENDED":     PeriodEnded,
	"CONFIRMED": PeriodConfirmed,
}

// ParsePeriodStatus maps a wire period status to a PeriodStatus.
func ParsePeriodStatus(value string) PeriodStatus {
	if status, ok := periodStatusByWire[strings.ToUpper(strings.TrimSpace(value))]; ok {
		return status
	}
	return ""
}

// Possession indicates which side holds the ball (or the possession arrow).
type Possession int

const (
	PossessionNone Possession = 0
	PossessionHome Possession = 1
	PossessionAway Possession = 2
)

// ActionType tags one logged game event.
type ActionType string

const (
	ActionUnknown          ActionType = ""
	ActionGame             ActionType = "game"
	ActionPeriod           ActionType = "period"
	ActionClock            ActionType = "clock"
	ActionTwoPoint         ActionType = "two-point"
	ActionThreePoint       ActionType = "three-point"
	ActionFreeThrow        ActionType = "free-throw"
	ActionJumpBall         ActionType = "jump-ball"
	ActionAssist           ActionType = "assist"
	ActionBlock            ActionType = "block"
	ActionRebound          ActionType = "rebound"
	ActionFoul             ActionType = "foul"
	ActionFoulDrawn        ActionType = "foul-drawn"
	ActionTimeout          ActionType = "timeout"
	ActionSteal            ActionType = "steal"
	ActionTurnover         ActionType = "turnover"
	ActionSubstitution     ActionType = "substitution"
	ActionPossessionChange ActionType = "possession-change"
)

// The feed abbreviates scoring codes with digits ("2pt", "3pt"). Codes are
// folded to lowercase and digits substituted before the table lookup.
var actionCodeDigits = strings.NewReplacer("2", "two", "3", "three")

var actionTypeByCode = map[string]ActionType{
	"game":             ActionGame,
	"period":           ActionPeriod,
	"clock":            ActionClock,
	"twopt":            ActionTwoPoint,
	"threept":          ActionThreePoint,
	"freethrow":        ActionFreeThrow,
	"jumpball":         ActionJumpBall,
	"assist":           ActionAssist,
	"block":            ActionBlock,
	"rebound":          ActionRebound,
	"foul":             ActionFoul,
	"foulon":           ActionFoulDrawn,
	"timeout":          ActionTimeout,
	"steal":            ActionSteal,
	"turnover":         ActionTurnover,
	"substitution":     ActionSubstitution,
	"possessionchange": ActionPossessionChange,
}

// ParseActionType maps a wire action code to an ActionType.
// The bool is false for codes the table does not recognize.
func ParseActionType(code string) (ActionType, bool) {
	key := actionCodeDigits.Replace(strings.ToLower(strings.TrimSpace(code)))
	actionType, ok := actionTypeByCode[key]
	return actionType, ok
}
