// Package game implements the snake round: grid rules, food placement, the
// snake body and the Playing/Paused/Over state machine that drives them one
// tick at a time. It knows nothing about terminals; the platform feeds it
// input frames and draws its screen buffer.
package game

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/highscore"
)

// State is the round lifecycle state.
type State int

const (
	StatePlaying State = iota
	StatePaused
	StateOver
)

func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateOver:
		return "over"
	default:
		return "unknown"
	}
}

// EndReason tells why a round reached StateOver.
type EndReason string

const (
	EndNone   EndReason = ""
	EndWall   EndReason = "wall"
	EndSelf   EndReason = "self"
	EndNoRoom EndReason = "no_room" // food could not be placed
)

// StepResult is returned by Round.Step after each tick.
type StepResult struct {
	State  State
	Ate    bool      // Food was consumed this tick
	Reason EndReason // Set once the round is over
}

// Round owns one play session: snake, food, score and state.
// It is not safe for concurrent use; the platform loop is its only owner.
type Round struct {
	cfg    config.SnakeConfig
	grid   core.Grid
	start  Direction
	rng    *rand.Rand
	placer *FoodPlacer
	scores highscore.Store
	logger *log.Logger

	tick      uint64
	snake     *Snake
	food      Food
	score     int
	highScore int
	state     State
	reason    EndReason
	newRecord bool
	saveErr   error
}

// NewRound validates cfg and starts a fresh round in StatePlaying.
// scores may be nil, in which case the high score lives in memory only.
// logger may be nil to disable logging.
func NewRound(cfg config.SnakeConfig, seed int64, scores highscore.Store, logger *log.Logger) (*Round, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	start, err := ParseDirection(cfg.Start.Heading)
	if err != nil {
		return nil, err
	}
	if scores == nil {
		scores = highscore.NewMemoryStore(0)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	grid := core.NewGrid(cfg.Grid.Width, cfg.Grid.Height)
	rng := rand.New(rand.NewSource(seed))
	placer, err := NewFoodPlacer(grid, cfg.SafeMargin, cfg.Food.MaxAttempts, rng)
	if err != nil {
		return nil, err
	}

	r := &Round{
		cfg:    cfg,
		grid:   grid,
		start:  start,
		rng:    rng,
		placer: placer,
		scores: scores,
		logger: logger,
	}
	if err := r.Restart(); err != nil {
		return nil, err
	}
	return r, nil
}

// Restart replaces the snake, food and score with fresh ones and reloads
// the high score. The round is Playing afterwards.
func (r *Round) Restart() error {
	r.tick = 0
	r.score = 0
	r.state = StatePlaying
	r.reason = EndNone
	r.newRecord = false
	r.saveErr = nil
	r.snake = NewSnake(r.grid.Center(), r.cfg.Start.Length, r.start)
	r.food = Food{}
	r.highScore = r.loadHighScore()

	cell, err := r.placer.Place(r.snake)
	if err != nil {
		r.end(EndNoRoom)
		return fmt.Errorf("game: placing first food: %w", err)
	}
	r.food = Food{Cell: cell, Present: true}

	r.logger.Debug("round started", "head", r.snake.Head(), "food", cell, "high_score", r.highScore)
	return nil
}

// loadHighScore reads the persisted record, treating any failure as 0.
func (r *Round) loadHighScore() int {
	hs, err := r.scores.Load()
	if err != nil {
		r.logger.Warn("high score unreadable, starting from 0", "error", err)
		return 0
	}
	return max(hs, 0)
}

// Step advances the round by one tick.
//
// While Playing the order is: pause toggle, steering, move, food, respawn,
// collision. Paused rounds only react to the pause toggle. Over rounds only
// react to restart. An error is returned only when food cannot be placed;
// the round is then Over.
func (r *Round) Step(in core.InputFrame) (StepResult, error) {
	if r.state == StateOver {
		if in.Has(core.ActionRestart) {
			if err := r.Restart(); err != nil {
				return r.result(false), err
			}
		}
		return r.result(false), nil
	}

	if in.PauseToggled() {
		r.togglePause()
	}
	if r.state == StatePaused {
		return r.result(false), nil
	}

	if d, ok := directionFromAction(in.Direction); ok {
		r.snake.SetPendingDirection(d)
	}

	r.tick++
	head := r.snake.Advance()

	ate := r.food.Present && head == r.food.Cell
	if ate {
		r.score++
		r.food.Present = false
	}
	r.snake.Settle(ate)

	if !r.food.Present {
		cell, err := r.placer.Place(r.snake)
		if err != nil {
			r.end(EndNoRoom)
			return r.result(ate), fmt.Errorf("game: respawning food at tick %d: %w", r.tick, err)
		}
		r.food = Food{Cell: cell, Present: true}
	}

	switch {
	case !r.grid.InBounds(head):
		r.end(EndWall)
	case r.snake.HitsSelf():
		r.end(EndSelf)
	}

	return r.result(ate), nil
}

func (r *Round) result(ate bool) StepResult {
	return StepResult{State: r.state, Ate: ate, Reason: r.reason}
}

// togglePause flips between Playing and Paused.
func (r *Round) togglePause() {
	switch r.state {
	case StatePlaying:
		r.state = StatePaused
	case StatePaused:
		r.state = StatePlaying
	}
	r.logger.Debug("pause toggled", "state", r.state, "tick", r.tick)
}

// end moves the round to StateOver and persists a new record.
// Only a score strictly greater than the loaded high score is saved.
func (r *Round) end(reason EndReason) {
	r.state = StateOver
	r.reason = reason

	if r.score > r.highScore {
		r.newRecord = true
		r.highScore = r.score
		if err := r.scores.Save(r.score); err != nil {
			r.saveErr = err
			r.logger.Warn("could not save high score", "score", r.score, "error", err)
		}
	}

	r.logger.Info("round over",
		"reason", reason,
		"score", r.score,
		"length", r.snake.Len(),
		"ticks", r.tick,
		"new_record", r.newRecord,
	)
}

// State returns the current lifecycle state.
func (r *Round) State() State {
	return r.state
}

// Score returns the food eaten this round.
func (r *Round) Score() int {
	return r.score
}

// HighScore returns the best score known to this round.
func (r *Round) HighScore() int {
	return r.highScore
}

// Reason returns why the round ended, or EndNone.
func (r *Round) Reason() EndReason {
	return r.reason
}

// NewRecord reports whether the finished round beat the stored high score.
func (r *Round) NewRecord() bool {
	return r.newRecord
}

// SaveErr returns the error of the last failed high score save, if any.
func (r *Round) SaveErr() error {
	return r.saveErr
}

// Grid returns the playfield dimensions.
func (r *Round) Grid() core.Grid {
	return r.grid
}

// Ticks returns the number of simulation steps taken this round.
func (r *Round) Ticks() uint64 {
	return r.tick
}

// SnakeLen returns the current body length.
func (r *Round) SnakeLen() int {
	return r.snake.Len()
}

// TickRate returns the configured ticks per second.
func (r *Round) TickRate() int {
	return r.cfg.TickRate
}
