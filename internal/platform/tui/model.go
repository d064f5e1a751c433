package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-hockey/internal/config"
	"github.com/vovakirdan/tui-hockey/internal/core"
	"github.com/vovakirdan/tui-hockey/internal/storage"
)

// Model is the Bubble Tea model for running the game.
type Model struct {
	game       Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keys       *KeyMapper
	inputFrame core.MultiInputFrame
	gameState  core.GameState
	profiles   config.Profiles
	logger     *log.Logger
	scoreboard *ScoreboardModel // non-nil while the scoreboard overlay is open
	quitting   bool
	saved      bool // Whether the current game over has been persisted
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithModelLogger routes persistence warnings to l.
func WithModelLogger(l *log.Logger) ModelOption {
	return func(m *Model) { m.logger = l }
}

// WithProfiles sets the difficulty labels shown on the scoreboard.
func WithProfiles(p config.Profiles) ModelOption {
	return func(m *Model) { m.profiles = p }
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game Game, store *storage.Store, cfg core.RuntimeConfig, opts ...ModelOption) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if store != nil {
		cfg.HighScores = store
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		keys:       NewKeyMapper(),
		inputFrame: core.NewMultiInputFrame(),
		profiles:   config.DefaultHockeyConfig().AI.Profiles,
	}
	for _, opt := range opts {
		opt(&m)
	}
	if m.logger == nil {
		m.logger = log.New(io.Discard)
	}

	m.game.Reset(m.config)
	m.gameState = m.game.State()
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.scoreboard != nil {
			return m.updateScoreboard(msg)
		}
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.scoreboard == nil {
			m.keys.MapMouseToMultiFrame(msg, &m.inputFrame)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case "tab":
		m.openScoreboard()
		return m, nil
	}

	if m.keys.MapKeyToMultiFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// openScoreboard shows the scoreboard, pausing a running match first.
func (m *Model) openScoreboard() {
	if !m.gameState.GameOver && !m.gameState.Paused {
		pause := core.NewMultiInputFrame()
		pause.Update(core.Player1, func(f *core.InputFrame) { f.Set(core.ActionPause) })
		m.gameState = m.game.Step(pause).State
	}
	sb := NewScoreboardModel(m.store, m.game.ID(), m.profiles, m.config.ScreenW, m.config.ScreenH)
	m.scoreboard = &sb
	m.inputFrame.Clear()
}

// updateScoreboard forwards input to the scoreboard overlay.
func (m Model) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scoreboard.Update(msg)
	sb, ok := next.(ScoreboardModel)
	if !ok {
		return m, nil
	}

	switch {
	case sb.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case sb.IsGoingBack():
		m.scoreboard = nil
		return m, nil
	}
	m.scoreboard = &sb
	return m, cmd
}

// handleResize processes window resize events. The match keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.game.Resize(msg.Width, msg.Height)

	if m.scoreboard != nil {
		return m.updateScoreboard(msg)
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.scoreboard != nil {
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	switch {
	case m.gameState.GameOver && !m.saved:
		m.persist()
		m.saved = true
	case !m.gameState.GameOver:
		m.saved = false
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// persist records a finished match. Failures never stop the game.
func (m *Model) persist() {
	if m.store == nil || m.gameState.Summary == nil {
		return
	}
	sum := *m.gameState.Summary

	if _, err := m.store.SaveMatch(sum); err != nil {
		m.logger.Warn("could not save match", "error", err)
	}
	if m.gameState.Ranked && m.gameState.Score > 0 {
		//nolint:errcheck // Best-effort save, game continues regardless
		m.store.SaveScore(m.game.ID(), m.gameState.Score, sum.Difficulty)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.screen.Clear()
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.scoreboard != nil {
		return m.scoreboard.View()
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// ProgramOptions are the Bubble Tea options every game session runs with.
func ProgramOptions() []tea.ProgramOption {
	return []tea.ProgramOption{
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Hover steers the paddle, not only drags
	}
}

// Run starts the Bubble Tea program with the given model.
func Run(game Game, store *storage.Store, cfg core.RuntimeConfig, opts ...ModelOption) error {
	model := NewModel(game, store, cfg, opts...)

	p := tea.NewProgram(model, ProgramOptions()...)

	_, err := p.Run()
	return err
}
