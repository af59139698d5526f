package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/rodsim/internal/physics"
	"github.com/san-kum/rodsim/internal/scenario"
	"github.com/san-kum/rodsim/internal/viz"
)

const (
	historyCapacity = 240
	powerStep       = 10.0
	barWidth        = 40
)

type TickMsg time.Time

// Model drives a scenario from bubbletea's tick loop. Each TickMsg advances
// the simulation by the wall time since the previous one.
type Model struct {
	sc       *scenario.Scenario
	step     time.Duration
	last     time.Time
	history  []float64
	width    int
	quitting bool
}

func NewModel(sc *scenario.Scenario) Model {
	return Model{
		sc:      sc,
		step:    sc.Sim.Step(),
		history: make([]float64, 0, historyCapacity),
		width:   80,
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.step, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		heater := m.sc.Heater
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case " ", "h":
			if heater.On() {
				heater.TurnOff()
			} else {
				heater.TurnOn()
			}
		case "up", "+", "=":
			heater.SetPower(heater.Power() + powerStep)
		case "down", "-":
			p := heater.Power() - powerStep
			if p < 0 {
				p = 0
			}
			heater.SetPower(p)
		case "r":
			m.sc.Rod.SetTemperature(physics.ReferenceTemperature)
			m.history = m.history[:0]
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case TickMsg:
		now := time.Time(msg)
		delta := 0.0
		if !m.last.IsZero() {
			delta = now.Sub(m.last).Seconds()
		}
		m.last = now
		m.sc.Sim.Tick(delta)

		m.history = append(m.history, m.sc.Rod.Measure().Celsius)
		if len(m.history) > historyCapacity {
			m.history = m.history[1:]
		}
		return m, m.tick()
	}
	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	rod, heater := m.sc.Rod, m.sc.Heater
	meas := rod.Measure()

	status := viz.StatusOff.Render("OFF")
	if heater.On() {
		status = viz.StatusOn.Render("ON")
	}

	name := m.sc.Material.Name()
	if name == "" {
		name = "custom"
	}

	var s strings.Builder
	s.WriteString(viz.Title.Render(fmt.Sprintf("ROD %s  %.2fm x %.3fm", strings.ToUpper(name), rod.STPLength(), rod.STPDiameter())) + "\n\n")

	stats := []string{
		viz.Metric("elapsed", fmt.Sprintf("%.2f s", m.sc.Sim.Elapsed())),
		viz.Metric("heat", fmt.Sprintf("%.3f J", meas.Heat)),
		viz.Metric("temperature", fmt.Sprintf("%.4f °C", meas.Celsius)),
		viz.Metric("length expansion", fmt.Sprintf("%.6f mm", meas.LengthExpansion*1000)),
		viz.Metric("diameter expansion", fmt.Sprintf("%.6f mm", meas.DiameterExpansion*1000)),
		viz.Metric("volume", fmt.Sprintf("%.6e m³", meas.Volume)),
		viz.Metric("heater", fmt.Sprintf("%s  %.0f W", status, heater.Power())),
		"",
		viz.ThermoBar(meas.Celsius, 0, 100, barWidth),
	}
	s.WriteString(viz.Panel.Render(strings.Join(stats, "\n")) + "\n")

	if len(m.history) > 1 {
		w := m.width - 12
		if w < 20 {
			w = 20
		}
		s.WriteString(viz.GraphStyle.Render(viz.Plot(m.history, "temperature (°C)", w, 6)) + "\n")
	}

	help := "space/h: heater  ↑/↓: power  r: reset  q: quit"
	s.WriteString(lipgloss.NewStyle().MarginTop(1).Render(viz.KeyHint.Render(help)))
	return s.String()
}

// Run starts the live view in the alternate screen.
func Run(sc *scenario.Scenario) error {
	p := tea.NewProgram(NewModel(sc), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
