// Package tui provides the Bubble Tea front end for the snake engine.
// It owns the terminal UI loop, the size prompt, input mapping and restarts.
package tui

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

type phase int

const (
	phaseSize phase = iota
	phasePlaying
	phaseOver
)

// Options configures a Model.
type Options struct {
	Config  core.RuntimeConfig // Size 0 asks for the size first
	Keymap  core.Keymap        // Zero value means core.DefaultKeymap
	MaxSize int
	Logger  *log.Logger
}

// Model is the Bubble Tea model for one snake session.
// One accepted key is one engine step; there is no tick.
type Model struct {
	game    registry.Game
	config  core.RuntimeConfig
	maxSize int
	logger  *log.Logger

	keys   *KeyMapper
	help   help.Model
	input  textinput.Model
	screen *core.Screen

	phase     phase
	state     core.GameState
	sizeErr   string
	games     int
	err       error
	quitting  bool
	fixedSeed bool
}

// NewModel creates a model for game. When opts.Config.Size is set the game
// starts immediately; otherwise the size prompt is shown.
func NewModel(game registry.Game, opts Options) Model {
	if opts.MaxSize <= 0 {
		opts.MaxSize = core.MaxBoardSize
	}
	if opts.Keymap.Policy() == "" {
		opts.Keymap = core.DefaultKeymap()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	input := textinput.New()
	input.Placeholder = fmt.Sprintf("1-%d", opts.MaxSize)
	input.CharLimit = len(strconv.Itoa(opts.MaxSize))
	input.Width = 8
	input.Prompt = "Enter table size: "
	input.Focus()

	m := Model{
		game:      game,
		config:    opts.Config,
		maxSize:   opts.MaxSize,
		logger:    logger,
		keys:      NewKeyMapper(opts.Keymap),
		help:      help.New(),
		input:     input,
		screen:    core.NewScreen(0, 0),
		phase:     phaseSize,
		fixedSeed: opts.Config.Seed != 0,
	}

	if m.config.Size > 0 {
		m.start()
	}
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	if m.err != nil {
		return tea.Quit
	}
	if m.phase == phaseSize {
		return textinput.Blink
	}
	return nil
}

// start resets the game with the current config and enters play.
func (m *Model) start() {
	if m.config.Seed == 0 || (m.games > 0 && !m.fixedSeed) {
		m.config.Seed = time.Now().UnixNano()
	}
	if err := m.game.Reset(m.config); err != nil {
		m.err = err
		return
	}
	m.screen.Resize(m.config.Size, m.config.Size)
	m.state = m.game.State()
	m.games++
	m.phase = phasePlaying

	m.logger.Info("game started",
		"session", sessionOf(m.game),
		"variant", m.game.ID(),
		"size", m.config.Size,
		"seed", m.config.Seed,
	)
	if m.state.GameOver {
		m.finish()
	}
}

func (m *Model) finish() {
	m.phase = phaseOver
	m.logger.Info("game over",
		"session", sessionOf(m.game),
		"cause", m.state.Cause,
		"score", m.state.Score,
		"length", m.state.Length,
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.phase == phaseSize {
			return m.handleSizeKey(msg)
		}
		return m.handleKey(msg)
	}

	if m.phase == phaseSize {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleSizeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.quitting = true
		return m, tea.Quit

	case tea.KeyEnter:
		size, err := strconv.Atoi(strings.TrimSpace(m.input.Value()))
		if err != nil || size < 1 || size > m.maxSize {
			m.sizeErr = fmt.Sprintf("size must be a number between 1 and %d", m.maxSize)
			m.input.Reset()
			return m, nil
		}
		m.sizeErr = ""
		m.config.Size = size
		m.start()
		if m.err != nil {
			return m, tea.Quit
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleKey processes keyboard input during and after play.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "?" {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch {
	case action == core.ActionRestart:
		if m.phase == phaseOver {
			m.start()
			if m.err != nil {
				return m, tea.Quit
			}
		}

	case action.IsDirection() && m.phase == phasePlaying:
		res, err := m.game.Step(action)
		if err != nil {
			m.err = err
			return m, tea.Quit
		}
		m.state = res.State
		if m.state.GameOver {
			m.finish()
		}
	}

	return m, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(titleStyle.Render("S N A K E"))
	b.WriteString("  ")
	b.WriteString(hintStyle.Render(m.game.Title()))
	b.WriteString("\n\n")

	if m.phase == phaseSize {
		b.WriteString(m.input.View())
		b.WriteString("\n")
		if m.sizeErr != "" {
			b.WriteString(errorStyle.Render(m.sizeErr))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(hintStyle.Render("enter: start • esc: quit"))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(scoreStyle.Render(m.statusLine()))
	b.WriteString("\n")

	m.game.Render(m.screen)
	b.WriteString(boardStyle.Render(RenderScreen(m.screen)))
	b.WriteString("\n")

	if m.phase == phaseOver {
		b.WriteString(gameOverStyle.Render("GAME OVER!"))
		if m.state.Cause != core.CauseNone {
			b.WriteString(hintStyle.Render(fmt.Sprintf("  (%s)", m.state.Cause)))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys.Keys()))
	b.WriteString("\n")
	return b.String()
}

// State returns the state of the last game played.
func (m Model) State() core.GameState {
	return m.state
}

// Games returns how many games were started, restarts included.
func (m Model) Games() int {
	return m.games
}

// Err returns the error that stopped the model, if any.
func (m Model) Err() error {
	return m.err
}

// snapshotter is implemented by games that expose a full state snapshot.
type snapshotter interface {
	Snapshot() snake.Snapshot
}

// statusLine describes the running game. Games with snapshots also report
// steps taken, heading and free cells.
func (m Model) statusLine() string {
	line := fmt.Sprintf("Score: %d   Length: %d", m.state.Score, m.state.Length)
	if g, ok := m.game.(snapshotter); ok {
		snap := g.Snapshot()
		line += fmt.Sprintf("   Steps: %d   Heading: %s   Free: %d", snap.Steps, snap.Dir, snap.Free)
	}
	return line
}

func sessionOf(g registry.Game) string {
	if s, ok := g.(interface{ SessionID() string }); ok {
		return s.SessionID()
	}
	return ""
}

// Result summarizes a finished TUI session.
type Result struct {
	State core.GameState
	Games int
}

// Run starts the Bubble Tea program for game.
func Run(game registry.Game, opts Options) (Result, error) {
	p := tea.NewProgram(
		NewModel(game, opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return Result{}, err
	}

	m, ok := finalModel.(Model)
	if !ok {
		return Result{}, nil
	}
	return Result{State: m.State(), Games: m.Games()}, m.Err()
}
