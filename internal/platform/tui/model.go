package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vdmtrv/brickout/internal/audio"
	"github.com/vdmtrv/brickout/internal/config"
	"github.com/vdmtrv/brickout/internal/core"
	"github.com/vdmtrv/brickout/internal/storage"
	"github.com/vdmtrv/brickout/internal/world"
)

// Options configures a game session.
type Options struct {
	GameConfig config.Config
	Runtime    core.RuntimeConfig
	Theme      Theme
	Difficulty string         // Preset name recorded with the score
	Scores     *storage.Store // May be nil; the game runs without persistence
	Sounds     *audio.Engine  // May be nil to disable audio entirely
	Logger     *log.Logger
}

// Model is the Bubble Tea model driving one game session.
type Model struct {
	world      *world.World
	screen     *core.Screen
	bg         *Background
	keys       *KeyMapper
	opts       Options
	inputFrame core.InputFrame
	highScore  int
	scoreSaved bool
	startedAt  time.Time
	quitting   bool
	err        error
}

// NewModel creates a model for the given session options.
func NewModel(opts Options) Model {
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}

	m := Model{
		world:      world.New(opts.GameConfig, opts.Runtime, opts.Logger),
		screen:     core.NewScreen(opts.Runtime.ScreenW, opts.Runtime.ScreenH),
		bg:         NewBackground(opts.Theme),
		keys:       NewKeyMapper(),
		opts:       opts,
		inputFrame: core.NewInputFrame(),
		startedAt:  time.Now(),
	}
	m.loadHighScore()
	return m
}

func (m *Model) loadHighScore() {
	if m.opts.Scores == nil {
		return
	}
	if high, err := m.opts.Scores.HighScore(); err == nil {
		m.highScore = high
	}
}

// Err returns the fatal error that ended the session, if any.
func (m Model) Err() error {
	return m.err
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.Runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleResize adapts to the new terminal size. The playfield dimensions
// are baked into the world, so a resize mid-game restarts the round.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.opts.Runtime.ScreenW = msg.Width
	m.opts.Runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if m.world.Phase == world.PhasePlaying {
		m.world = world.New(m.opts.GameConfig, m.opts.Runtime, m.opts.Logger)
		m.startedAt = time.Now()
	}
	return m, nil
}

// handleTick advances the simulation by one fixed step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	dt := 1.0 / float64(m.opts.Runtime.TickRate)
	m.bg.Advance(dt)

	wasTerminal := m.world.Phase == world.PhaseGameOver || m.world.Phase == world.PhaseWon

	events, err := m.world.Step(dt, m.inputFrame)
	if err != nil {
		m.err = err
		m.quitting = true
		return m, tea.Quit
	}
	m.inputFrame.Clear()

	m.playSounds(events)

	switch m.world.Phase {
	case world.PhaseGameOver, world.PhaseWon:
		if !m.scoreSaved {
			m.saveScore()
			m.scoreSaved = true
		}
	case world.PhasePlaying:
		if wasTerminal {
			// A restart just happened; arm saving for the new round.
			m.scoreSaved = false
			m.startedAt = time.Now()
		}
	}

	return m, tickCmd(m.opts.Runtime.TickRate)
}

func (m *Model) playSounds(events []world.Event) {
	if m.opts.Sounds == nil {
		return
	}
	for _, ev := range events {
		switch ev {
		case world.EventWallBounce:
			m.opts.Sounds.WallBounce()
		case world.EventPaddleHit:
			m.opts.Sounds.PaddleHit()
		case world.EventBlockBreak:
			m.opts.Sounds.BlockBreak()
		case world.EventGameOver:
			m.opts.Sounds.GameOver()
		case world.EventWin:
			m.opts.Sounds.Win()
		}
	}
}

// saveScore records the finished round. Best effort: a storage failure
// never interrupts play.
func (m *Model) saveScore() {
	if m.opts.Scores == nil || m.world.Score == 0 {
		return
	}
	entry := storage.ScoreEntry{
		Score:      m.world.Score,
		Difficulty: m.opts.Difficulty,
		Duration:   int(time.Since(m.startedAt).Seconds()),
		Won:        m.world.Phase == world.PhaseWon,
	}
	if _, err := m.opts.Scores.SaveScore(entry); err != nil && m.opts.Logger != nil {
		m.opts.Logger.Warn("could not save score", "err", err)
	}
	m.loadHighScore()
}

// View renders the current frame.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	DrawWorld(m.world, m.screen, m.bg, m.highScore)
	return RenderScreen(m.screen)
}

// Run starts a game session and blocks until it ends. Returns the fatal
// simulation error, if one occurred.
func Run(opts Options) error {
	model := NewModel(opts)

	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return err
	}

	if m, ok := final.(Model); ok && m.Err() != nil {
		return m.Err()
	}
	return nil
}
