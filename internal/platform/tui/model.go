package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/game"
	"github.com/vovakirdan/tui-snake/internal/highscore"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// phase is the top-level screen of a session.
type phase int

const (
	phaseStart phase = iota // Title screen, waiting for any key
	phaseRound              // A round is running (playing, paused or over)
)

// Options configures a session model.
type Options struct {
	Game    config.SnakeConfig
	Runtime core.RuntimeConfig

	// Scores persists the high score. Nil keeps it in memory.
	Scores highscore.Store

	// History records finished rounds. Nil disables history.
	History *storage.Store

	// Player is stored with each finished round.
	Player string

	// ScreenshotDir receives Ctrl+S dumps. Empty means ~/.snake/screenshots.
	ScreenshotDir string

	Logger *log.Logger
}

// Model is the Bubble Tea model for one snake session:
// start screen, then rounds until the player quits.
type Model struct {
	opts       Options
	screen     *core.Screen
	keys       KeyMap
	help       help.Model
	round      *game.Round
	phase      phase
	inputFrame core.InputFrame
	loop       int // Current tick chain
	recorded   bool
	quitting   bool
	err        error
}

// NewModel creates a session model showing the start screen.
func NewModel(opts Options) (Model, error) {
	if err := opts.Game.Validate(); err != nil {
		return Model{}, err
	}
	if opts.Runtime.ScreenW <= 0 || opts.Runtime.ScreenH <= 0 {
		def := core.DefaultConfig()
		opts.Runtime.ScreenW, opts.Runtime.ScreenH = def.ScreenW, def.ScreenH
	}
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = opts.Game.TickRate
	}
	// Use time-based seed if not specified
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}
	if opts.Scores == nil {
		opts.Scores = highscore.NewMemoryStore(0)
	}
	if opts.Player == "" {
		opts.Player = "local"
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = opts.Runtime.ScreenW

	return Model{
		opts:       opts,
		screen:     core.NewScreen(opts.Runtime.ScreenW, max(opts.Runtime.ScreenH-footerHeight, 1)),
		keys:       DefaultKeyMap(),
		help:       h,
		inputFrame: core.NewInputFrame(),
	}, nil
}

// footerHeight is the help line below the game screen.
const footerHeight = 1

// Init shows the start screen; the tick loop starts with the first round.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global keys
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}

	if m.phase == phaseStart {
		// Any other key starts a round
		return m.startRound()
	}

	// Esc only leaves a paused round
	if action == core.ActionBack {
		if m.round.State() == game.StatePaused {
			m.opts.Logger.Debug("back to start screen", "score", m.round.Score())
			m.phase = phaseStart
			m.round = nil
			m.loop++
		}
		return m, nil
	}

	m.inputFrame.Set(action)
	return m, nil
}

// startRound creates a fresh round and starts a new tick chain.
func (m Model) startRound() (tea.Model, tea.Cmd) {
	seed := m.opts.Runtime.Seed + int64(m.loop)
	round, err := game.NewRound(m.opts.Game, seed, m.opts.Scores, m.opts.Logger)
	if err != nil {
		m.opts.Logger.Error("cannot start round", "error", err)
		m.err = err
		m.quitting = true
		return m, tea.Quit
	}

	m.round = round
	m.phase = phaseRound
	m.recorded = false
	m.inputFrame.Clear()
	m.loop++
	return m, tickCmd(m.opts.Runtime.TickRate, m.loop)
}

// handleResize processes window resize events.
// The round keeps its state; rendering adapts to the new size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.opts.Runtime.ScreenW = msg.Width
	m.opts.Runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-footerHeight, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Loop != m.loop || m.phase != phaseRound {
		return m, nil
	}
	next := tickCmd(m.opts.Runtime.TickRate, m.loop)

	// Freeze while the board cannot be shown
	if !m.round.FitsScreen(m.screen.Width(), m.screen.Height()) {
		m.inputFrame.Clear()
		return m, next
	}

	wasOver := m.round.State() == game.StateOver
	result, err := m.round.Step(m.inputFrame)
	m.inputFrame.Clear()
	if err != nil {
		m.opts.Logger.Error("round ended early", "error", err)
	}

	if wasOver && result.State != game.StateOver {
		m.recorded = false
	}
	if result.State == game.StateOver && !m.recorded {
		m.recordRound()
		m.recorded = true
	}

	return m, next
}

// recordRound stores the finished round in the history, best effort.
func (m *Model) recordRound() {
	if m.opts.History == nil || m.round.Score() == 0 {
		return
	}
	_, err := m.opts.History.RecordRound(storage.RoundRecord{
		Score:  m.round.Score(),
		Length: m.round.SnakeLen(),
		Ticks:  m.round.Ticks(),
		Reason: string(m.round.Reason()),
		Player: m.opts.Player,
	})
	if err != nil {
		m.opts.Logger.Warn("could not record round", "error", err)
	}
}

// draw renders the current phase into the screen buffer.
func (m Model) draw() {
	if m.phase == phaseRound && m.round != nil {
		m.round.Render(m.screen)
		return
	}
	high, err := m.opts.Scores.Load()
	if err != nil {
		high = 0
	}
	game.RenderStartScreen(m.screen, high)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.draw()

	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.opts.Logger.Warn("no home directory for screenshots", "error", err)
			return
		}
		dir = filepath.Join(home, ".snake", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.opts.Logger.Warn("could not create screenshot directory", "dir", dir, "error", err)
		return
	}

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("snake_%s.txt", timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("could not save screenshot", "path", path, "error", err)
		return
	}
	m.opts.Logger.Info("screenshot saved", "path", path)
}

var footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.draw()
	return RenderScreen(m.screen) + "\n" + footerStyle.Render(m.help.View(m.keys))
}

// Err returns the error that ended the session, if any.
func (m Model) Err() error {
	return m.err
}

// Round returns the active round, or nil on the start screen.
func (m Model) Round() *game.Round {
	return m.round
}

// Run starts the Bubble Tea program with the given options.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok {
		return fm.Err()
	}
	return nil
}
