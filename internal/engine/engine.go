// Package engine ingests decoded feed messages and maintains the game state.
// Messages are processed one at a time in arrival order; the engine is the
// sole mutator of its Game, so nothing here locks.
package engine

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/courtside-live/livestats/internal/domain"
	"github.com/courtside-live/livestats/internal/extract"
	"github.com/courtside-live/livestats/internal/logging"
	"github.com/courtside-live/livestats/internal/metrics"
)

// Listener observes the live game state after a message of its kind has been
// processed. Listeners run synchronously in registration order and see the
// mutable Game as of that moment, not a snapshot.
type Listener func(*domain.Game)

// Composer renders one action as display text. It is a pure consumer of the
// state model; an empty result is discarded.
type Composer func(domain.Action, *domain.Game) string

type handlerFunc func(msg map[string]any) error

// Config carries the engine's collaborators.
type Config struct {
	Logger   *slog.Logger
	Metrics  *metrics.Recorder
	Debug    bool
	Composer Composer
	LineSink func(string)
}

// Engine dispatches feed messages to per-kind handlers and notifies
// subscribed listeners after each one.
type Engine struct {
	game          *domain.Game
	logger        *slog.Logger
	metrics       *metrics.Recorder
	debug         bool
	composer      Composer
	lineSink      func(string)
	lastHeartbeat time.Time
	handlers      map[Kind]handlerFunc
	listeners     map[Kind][]Listener
}

// New constructs an Engine with an empty, not-yet-ready Game.
func New(cfg Config) *Engine {
	e := &Engine{
		game:      domain.NewGame(),
		logger:    cfg.Logger,
		metrics:   cfg.Metrics,
		debug:     cfg.Debug,
		composer:  cfg.Composer,
		lineSink:  cfg.LineSink,
		listeners: make(map[Kind][]Listener),
	}
	e.handlers = map[Kind]handlerFunc{
		KindPing:             e.handlePing,
		KindStatus:           e.handleStatus,
		KindTeams:            e.handleTeams,
		KindBoxScore:         e.handleBoxScore,
		KindPlayByPlay:       e.handlePlayByPlay,
		KindSetup:            e.handleSetup,
		KindMatchInformation: e.handleMatchInformation,
	}
	return e
}

// Game returns the live game state owned by the engine.
func (e *Engine) Game() *domain.Game {
	return e.game
}

// LastHeartbeat returns the timestamp of the most recent ping message.
func (e *Engine) LastHeartbeat() time.Time {
	return e.lastHeartbeat
}

// Subscribe registers a listener for one message kind. Listeners are invoked
// after every processed message of that kind, whether or not its handler
// succeeded. There is no unsubscribe.
func (e *Engine) Subscribe(kind Kind, listener Listener) {
	if listener == nil {
		return
	}
	e.listeners[kind] = append(e.listeners[kind], listener)
}

// SubscribeAll registers a listener for every message kind.
func (e *Engine) SubscribeAll(listener Listener) {
	for _, kind := range Kinds() {
		e.Subscribe(kind, listener)
	}
}

// Receive processes one decoded message: route by normalized type tag, run
// the handler inside a failure boundary, then fan out to listeners. Handler
// errors are logged and swallowed; ingestion always continues.
func (e *Engine) Receive(msg map[string]any) {
	tag := extract.String(msg, "type")
	kind, ok := KindForTag(tag)
	if !ok {
		e.metrics.RecordUnknownType(NormalizeTag(tag))
		logging.Warn(e.logger, "unknown message type", logging.FieldMessageType, tag)
		return
	}

	start := time.Now()
	err := e.handlers[kind](msg)
	e.metrics.RecordMessage(string(kind), time.Since(start), err)
	if err != nil {
		args := []any{logging.FieldMessageType, string(kind)}
		if e.debug {
			args = append(args, "payload", fmt.Sprintf("%v", msg))
		}
		logging.Error(e.logger, "message handling failed", err, args...)
	}

	e.notify(kind)
}

func (e *Engine) notify(kind Kind) {
	for _, listener := range e.listeners[kind] {
		e.invoke(kind, listener)
	}
}

// invoke runs one listener with a panic boundary so a failing subscriber
// cannot take down ingestion or starve later subscribers.
func (e *Engine) invoke(kind Kind, listener Listener) {
	panicked := true
	defer func() {
		if panicked {
			if r := recover(); r != nil {
				logging.Error(e.logger, "listener panicked", fmt.Errorf("%v", r),
					logging.FieldMessageType, string(kind))
			}
		}
		e.metrics.RecordListener(string(kind), panicked)
	}()
	listener(e.game)
	panicked = false
}
