package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/gezhuang0717/FYS4150-Project-4/internal/ising"
)

const (
	canvasWidth     = 40
	canvasHeight    = 20
	historyCapacity = 600
	temperatureStep = 0.1
	minTemperature  = 0.1
)

type TickMsg time.Time

// Live is a Bubble Tea model that sweeps an engine on every tick and draws
// the lattice next to running observables.
type Live struct {
	cfg           ising.Config
	engine        *ising.Model
	canvas        *Canvas
	sweeps        int
	sweepsPerTick int
	frame         time.Duration
	running       bool
	epsHistory    []float64
	magHistory    []float64
	err           error
}

// NewLive builds the engine for cfg. sweepsPerTick and fps below 1 are
// raised to 1.
func NewLive(cfg ising.Config, sweepsPerTick, fps int) (Live, error) {
	engine, err := ising.New(cfg)
	if err != nil {
		return Live{}, err
	}
	return Live{
		cfg:           cfg,
		engine:        engine,
		canvas:        NewCanvas(canvasWidth, canvasHeight),
		sweepsPerTick: max(1, sweepsPerTick),
		frame:         time.Second / time.Duration(max(1, fps)),
		running:       true,
		epsHistory:    make([]float64, 0, historyCapacity),
		magHistory:    make([]float64, 0, historyCapacity),
	}, nil
}

func (m Live) tick() tea.Cmd {
	return tea.Tick(m.frame, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Live) Init() tea.Cmd {
	return m.tick()
}

// Update handles keys and advances the engine on ticks.
func (m Live) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.reset()
		case "+", "=":
			m.setTemperature(m.engine.Temperature() + temperatureStep)
		case "-", "_":
			m.setTemperature(math.Max(minTemperature, m.engine.Temperature()-temperatureStep))
		case "t":
			NextTheme()
		}
	case TickMsg:
		if m.running {
			m.step()
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Live) step() {
	for k := 0; k < m.sweepsPerTick; k++ {
		m.engine.Sweep()
	}
	m.sweeps += m.sweepsPerTick
	m.epsHistory = appendCapped(m.epsHistory, m.engine.EnergyPerSite())
	m.magHistory = appendCapped(m.magHistory, math.Abs(m.engine.MagnetizationPerSite()))
}

func (m *Live) setTemperature(T float64) {
	engine, err := m.engine.AtTemperature(T)
	if err != nil {
		m.err = err
		return
	}
	m.engine = engine
	m.err = nil
}

// reset rebuilds the engine from the initial configuration.
func (m *Live) reset() {
	engine, err := ising.New(m.cfg)
	if err != nil {
		m.err = err
		return
	}
	m.engine = engine
	m.sweeps = 0
	m.epsHistory = m.epsHistory[:0]
	m.magHistory = m.magHistory[:0]
	m.err = nil
}

func appendCapped(h []float64, v float64) []float64 {
	h = append(h, v)
	if len(h) > historyCapacity {
		h = h[1:]
	}
	return h
}

// Engine returns the engine currently being swept.
func (m Live) Engine() *ising.Model { return m.engine }

// Sweeps returns the number of sweeps since the last reset.
func (m Live) Sweeps() int { return m.sweeps }

// View renders the lattice and the stats panel.
func (m Live) View() string {
	m.canvas.DrawLattice(m.engine.Spins())
	lattice := latticeStyle().Render(strings.TrimRight(m.canvas.String(), "\n"))

	var s strings.Builder
	L := m.engine.Size()
	s.WriteString(titleStyle().Render(fmt.Sprintf("ISING %d×%d", L, L)) + "\n")

	status := "SWEEPING"
	if !m.running {
		status = "PAUSED"
	}
	s.WriteString(statusStyle(m.running).Render(status) + "\n\n")

	s.WriteString(Row("T", fmt.Sprintf("%.3f", m.engine.Temperature())))
	s.WriteString(Row("sweeps", fmt.Sprintf("%d", m.sweeps)))
	s.WriteString(Row("ε", fmt.Sprintf("%+.4f", m.engine.EnergyPerSite())))
	s.WriteString(Row("|m|", fmt.Sprintf("%.4f", math.Abs(m.engine.MagnetizationPerSite()))))

	rate := m.engine.AcceptanceRate()
	if math.IsNaN(rate) {
		rate = 0
	}
	s.WriteString(Row("accepted", ProgressBar(rate, 16)+fmt.Sprintf(" %.1f%%", 100*rate)))

	if len(m.epsHistory) > 1 {
		s.WriteString("\n" + asciigraph.Plot(m.epsHistory,
			asciigraph.Height(5),
			asciigraph.Width(36),
			asciigraph.Caption("ε per site"),
		) + "\n")
	}
	if len(m.magHistory) > 1 {
		s.WriteString("\n" + asciigraph.Plot(m.magHistory,
			asciigraph.Height(5),
			asciigraph.Width(36),
			asciigraph.Caption("|m| per site"),
		) + "\n")
	}

	if m.err != nil {
		s.WriteString("\n" + statusStyle(false).Render(m.err.Error()) + "\n")
	}

	s.WriteString(helpStyle().Render("SP:Pause R:Reset +/-:Temperature T:Theme Q:Quit"))

	return lipgloss.JoinHorizontal(lipgloss.Top, lattice, statsStyle().Render(s.String()))
}
