// Package tui is the live terminal view: a bubbletea tick loop driving
// the simulation driver, with asciigraph trajectory plots and live
// parameter tuning.
package tui

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/popsim/internal/driver"
	"github.com/san-kum/popsim/internal/integrate"
	"github.com/san-kum/popsim/internal/model"
)

const (
	graphWidth  = 64
	graphHeight = 8
)

var (
	headerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	statusStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	warnStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
	labelStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	activeParamStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	helpStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

// ParamStore is the shared parameter set: the TUI is its single writer,
// the driver reads a fresh snapshot on every tick.
type ParamStore struct {
	mu sync.RWMutex
	p  model.Params
}

func NewParamStore(p model.Params) *ParamStore {
	return &ParamStore{p: p.Clone()}
}

func (s *ParamStore) Get() model.Params {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.p.Clone()
}

func (s *ParamStore) Replace(p model.Params) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.p = p.Clone()
}

func (s *ParamStore) SetParam(name string, v float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.p[name] = v
}

type TickMsg time.Time

// Model contains the driver, the shared parameters, and UI selection
// state.
type Model struct {
	drv       *driver.Driver
	store     *ParamStore
	paramKeys []string
	selected  int
	lastErr   string
	showHelp  bool
}

// NewModel seeds a driver for the kind and wires it to a live parameter
// store.
func NewModel(kind model.Kind, params model.Params, speed int) (Model, error) {
	store := NewParamStore(params)
	drv, err := driver.New(kind, store.Get)
	if err != nil {
		return Model{}, err
	}
	drv.SetSpeed(speed)
	drv.Start()
	return Model{
		drv:       drv,
		store:     store,
		paramKeys: sortedKeys(params),
	}, nil
}

func sortedKeys(p model.Params) []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (m Model) Init() tea.Cmd {
	return tick(m.drv.Interval())
}

func tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles input events and forwards timer ticks to the driver.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			if m.drv.Running() {
				m.drv.Pause()
			} else {
				m.drv.Start()
			}
		case "s":
			if _, err := m.drv.StepOnce(); err != nil {
				m.lastErr = err.Error()
			}
		case "r":
			m.reset(m.drv.Kind())
		case "m":
			m.cycleModel()
		case "tab":
			m.cycleParam()
		case "up", "k":
			m.adjustParam(1.05)
		case "down", "j":
			m.adjustParam(0.95)
		case "right", "l":
			m.drv.SetSpeed(m.drv.Speed() + 5)
		case "left", "h":
			m.drv.SetSpeed(m.drv.Speed() - 5)
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if _, err := m.drv.Tick(); err != nil {
			m.lastErr = err.Error()
		}
		return m, tick(m.drv.Interval())
	}
	return m, nil
}

func (m *Model) cycleModel() {
	kinds := model.Kinds()
	for i, k := range kinds {
		if k == m.drv.Kind() {
			m.reset(kinds[(i+1)%len(kinds)])
			return
		}
	}
}

// reset swaps the store to the kind's defaults and reseeds the driver.
func (m *Model) reset(kind model.Kind) {
	p, err := model.Defaults(kind)
	if err != nil {
		m.lastErr = err.Error()
		return
	}
	m.store.Replace(p)
	m.paramKeys = sortedKeys(p)
	m.selected = 0
	m.lastErr = ""
	if err := m.drv.Reset(kind); err != nil {
		m.lastErr = err.Error()
		return
	}
	m.drv.Start()
}

func (m *Model) cycleParam() {
	if len(m.paramKeys) == 0 {
		return
	}
	m.selected = (m.selected + 1) % len(m.paramKeys)
}

// adjustParam tunes the selected parameter in the live store; the driver
// picks it up on the very next tick.
func (m *Model) adjustParam(factor float64) {
	if len(m.paramKeys) == 0 {
		return
	}
	key := m.paramKeys[m.selected]
	p := m.store.Get()
	m.store.SetParam(key, p[key]*factor)
}

// View renders the trajectory plots and the stats panel.
func (m Model) View() string {
	mdl := m.drv.Model()
	traj := m.drv.Trajectory()
	p := m.store.Get()

	var s strings.Builder
	s.WriteString(headerStyle.Render(strings.ToUpper(string(mdl.Kind()))) + "  ")
	if m.drv.Running() {
		s.WriteString(statusStyle.Render("RUNNING"))
	} else {
		s.WriteString(statusStyle.Render("PAUSED"))
	}
	s.WriteString("\n\n")

	for i, label := range mdl.Labels() {
		series := make([]float64, len(traj))
		for j, pt := range traj {
			series[j] = pt.State[i]
		}
		if len(series) > 1 {
			chart := asciigraph.Plot(series,
				asciigraph.Height(graphHeight),
				asciigraph.Width(graphWidth),
				asciigraph.Caption(label),
			)
			s.WriteString(graphStyle.Render(chart) + "\n")
		}
	}

	last := m.drv.Last()
	s.WriteString(labelStyle.Render("Time") + valueStyle.Render(fmt.Sprintf("%.2f", last.Time)) + "\n")
	for i, label := range mdl.Labels() {
		s.WriteString(labelStyle.Render(label) + valueStyle.Render(fmt.Sprintf("%.3f", last.State[i])) + "\n")
	}
	s.WriteString(labelStyle.Render("Speed") + valueStyle.Render(fmt.Sprintf("%d (%v/tick)", m.drv.Speed(), m.drv.Interval())) + "\n")
	s.WriteString(labelStyle.Render("Substeps") + valueStyle.Render(fmt.Sprintf("%d", integrate.Substeps(p.TimeStep(), p.Dt()))) + "\n")
	if n := m.drv.InvalidTicks(); n > 0 {
		s.WriteString(warnStyle.Render(fmt.Sprintf("rejected ticks: %d (%s)", n, m.lastErr)) + "\n")
	}

	s.WriteString("\nPARAMETERS\n")
	for i, k := range m.paramKeys {
		line := fmt.Sprintf("%-10s %.4g", k, p[k])
		if i == m.selected {
			s.WriteString(activeParamStyle.Render("> "+line) + "\n")
		} else {
			s.WriteString("  " + labelStyle.Render(line) + "\n")
		}
	}

	if m.showHelp {
		s.WriteString(helpStyle.Render("\nSP:Play/Pause  S:Step  R:Reset  M:Model  Tab:Param  ↑↓:Tune  ←→:Speed  Q:Quit"))
	} else {
		s.WriteString(helpStyle.Render("\n?:Help  Q:Quit"))
	}
	return s.String()
}

// Run starts the live view for the given kind and parameters.
func Run(kind model.Kind, params model.Params, speed int) error {
	m, err := NewModel(kind, params, speed)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m)
	_, err = p.Run()
	return err
}
