package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MarcelZelent/FunGame/internal/core"
	"github.com/MarcelZelent/FunGame/internal/env"
	"github.com/MarcelZelent/FunGame/internal/storage"
)

// Model is the Bubble Tea model running one FunGame session. It owns the
// tick loop and input mapping; the env owns all game rules. Pausing is a
// presentation concern: the model simply stops stepping.
type Model struct {
	env        *env.Env
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	paused     bool
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether score has been saved for the current game over
}

// NewModel creates a new Bubble Tea model around an environment.
func NewModel(e *env.Env, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		env:        e,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init starts the first episode and the tick loop.
func (m Model) Init() tea.Cmd {
	m.env.Reset(m.config.Seed)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	// Back to menu is only meaningful for SSH sessions with a wrapper
	if m.inputFrame.Has(core.ActionBack) && (m.env.Done() || m.paused) {
		m.backToMenu = true
	}

	return m, nil
}

// handleTick advances the simulation by one tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// Restart is only accepted while the episode is over
	if m.inputFrame.Has(core.ActionRestart) && m.env.Done() {
		m.config.Seed = time.Now().UnixNano()
		m.env.Reset(m.config.Seed)
		m.paused = false
		m.scoreSaved = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	if m.inputFrame.Has(core.ActionPause) && !m.env.Done() {
		m.paused = !m.paused
	}

	if m.paused || m.env.Done() {
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	action := env.ActionNone
	if m.inputFrame.Has(core.ActionFlap) {
		action = env.ActionFlap
	}

	// Step never fails here: the episode is running by the check above
	result, err := m.env.Step(action)
	if err == nil && result.Terminated {
		m.saveScore()
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveScore persists the episode score once per game over.
func (m *Model) saveScore() {
	if m.scoreSaved || m.store == nil || m.env.Score() == 0 {
		m.scoreSaved = true
		return
	}
	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SaveScore(m.env.Score())
	m.scoreSaved = true
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	drawWorld(m.screen, m.env)

	if m.paused {
		drawCenteredMessage(m.screen, "PAUSED", "Press P to resume")
	}
	if m.env.Done() {
		drawCenteredMessage(m.screen, "GAME OVER",
			fmt.Sprintf("Score: %d  |  Press R to restart", m.env.Score()))
	}

	return RenderScreen(m.screen)
}

// BackToMenu reports whether the user asked to leave the game view.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// IsQuitting reports whether the user asked to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program with the given model.
func Run(e *env.Env, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(e, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
