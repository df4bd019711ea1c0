// Package tui renders the countdown in the terminal: a full-screen Bubble
// Tea program that ticks the clock by measured elapsed time, toggles pause
// on space, and quits on q/esc/ctrl+c.
package tui

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jhenders/tock/internal/clock"
	"github.com/jhenders/tock/internal/countdown"
	"github.com/jhenders/tock/internal/duration"
	"github.com/jhenders/tock/internal/notify"
)

// timeUp is swapped out in tests.
var timeUp = notify.TimeUp

// tickMsg is the frame tick. Elapsed time is measured against the model's
// clock rather than taken from the message, so ticks are deterministic in
// tests.
type tickMsg time.Time

// Options configure a timer run.
type Options struct {
	Duration time.Duration
	FPS      int
	DVD      bool
	Notify   bool
}

var (
	readoutStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	pausedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Model is the Bubble Tea model for the countdown display.
type Model struct {
	cd   *countdown.Clock
	clk  clock.Clock
	opts Options
	keys keyMap
	help help.Model

	lastTick time.Time
	blink    time.Duration // time accumulated since expiry, drives the flash
	notified bool
	quitting bool

	width  int
	height int

	// DVD mode position and velocity, in cells.
	x, y   int
	vx, vy int
}

// NewModel creates a model driven by the system clock.
func NewModel(opts Options) Model {
	return newModel(opts, clock.System)
}

func newModel(opts Options, clk clock.Clock) Model {
	if opts.FPS <= 0 {
		opts.FPS = 30
	}
	m := Model{
		cd:       countdown.New(opts.Duration),
		clk:      clk,
		opts:     opts,
		keys:     defaultKeys,
		help:     help.New(),
		lastTick: clk.Now(),
	}
	if opts.DVD {
		m.vx, m.vy = 2, 1
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return m.tickCmd()
}

func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.opts.FPS), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Pause):
			m.cd.TogglePause()
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tickMsg:
		now := m.clk.Now()
		elapsed := now.Sub(m.lastTick)
		m.lastTick = now

		m.cd.Tick(elapsed)
		if m.cd.State() == countdown.Expired {
			m.blink += elapsed
			if !m.notified {
				m.notified = true
				if m.opts.Notify {
					if err := timeUp(); err != nil {
						slog.Warn("expiry notification failed", "error", err)
					}
				}
			}
		}
		if m.opts.DVD {
			m = m.advanceBounce()
		}
		return m, m.tickCmd()
	}

	return m, nil
}

// advanceBounce moves the readout one velocity step, reflecting off the
// edges of the readout area.
func (m Model) advanceBounce() Model {
	readout := renderBig(duration.Format(m.cd.Remaining()))
	maxX := m.width - lipgloss.Width(readout)
	maxY := m.readoutHeight() - lipgloss.Height(readout)
	if maxX <= 0 || maxY <= 0 {
		return m
	}

	m.x += m.vx
	if m.x <= 0 {
		m.x = 0
		m.vx = abs(m.vx)
	} else if m.x >= maxX {
		m.x = maxX
		m.vx = -abs(m.vx)
	}

	m.y += m.vy
	if m.y <= 0 {
		m.y = 0
		m.vy = abs(m.vy)
	} else if m.y >= maxY {
		m.y = maxY
		m.vy = -abs(m.vy)
	}
	return m
}

// readoutHeight is the display area above the help footer.
func (m Model) readoutHeight() int {
	if m.height > 1 {
		return m.height - 1
	}
	return m.height
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	style := readoutStyle
	if m.cd.State() == countdown.Paused {
		style = pausedStyle
	}

	body := style.Render(renderBig(duration.Format(m.cd.Remaining())))
	if m.cd.State() == countdown.Expired && !m.blinkVisible() {
		body = ""
	}

	hx, hy := lipgloss.Center, lipgloss.Center
	if m.opts.DVD {
		hx, hy = m.bouncePosition()
	}
	area := lipgloss.Place(m.width, m.readoutHeight(), hx, hy, body)

	return lipgloss.JoinVertical(lipgloss.Left, area, m.help.View(m.keys))
}

// blinkVisible flashes the expired readout on a one-second cycle with a
// half-second duty.
func (m Model) blinkVisible() bool {
	return m.blink%time.Second < 500*time.Millisecond
}

// bouncePosition converts the cell position into the fractional positions
// lipgloss.Place expects.
func (m Model) bouncePosition() (lipgloss.Position, lipgloss.Position) {
	readout := renderBig(duration.Format(m.cd.Remaining()))
	maxX := m.width - lipgloss.Width(readout)
	maxY := m.readoutHeight() - lipgloss.Height(readout)
	if maxX <= 0 || maxY <= 0 {
		return lipgloss.Center, lipgloss.Center
	}
	return lipgloss.Position(float64(m.x) / float64(maxX)),
		lipgloss.Position(float64(m.y) / float64(maxY))
}

// Expired reports whether the countdown has finished. The program keeps
// running after expiry until the user quits explicitly.
func (m Model) Expired() bool {
	return m.cd.State() == countdown.Expired
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
