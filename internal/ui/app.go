package ui

import (
	"context"
	"time"

	"codeberg.org/mutker/filterdash/internal/errors"
	"codeberg.org/mutker/filterdash/internal/health"
	"codeberg.org/mutker/filterdash/internal/logger"
	"codeberg.org/mutker/filterdash/internal/series"
	tea "github.com/charmbracelet/bubbletea"
)

// Source supplies the reading for each refresh.
type Source interface {
	Reading() (health.Reading, error)
}

// Refresher computes frames from a source.
type Refresher struct {
	Source    Source
	Evaluator health.Evaluator
	Builder   *series.Builder
}

// Refresh reads, evaluates and builds one frame for r. Any failure is
// returned in Frame.Err so the caller can still draw something.
func (rf Refresher) Refresh(r series.Range) Frame {
	errFactory := errors.New()
	f := Frame{Range: r, NearTermLimit: rf.Builder.NearTermLimit(), At: time.Now()}

	reading, err := rf.Source.Reading()
	if err != nil {
		f.Err = errFactory.Wrap(errors.ErrRefresh, err)
		return f
	}

	m, err := rf.Evaluator.Evaluate(reading)
	if err != nil {
		f.Err = err
		return f
	}

	points, err := rf.Builder.Build(m, r)
	if err != nil {
		f.Err = err
		return f
	}

	f.Metrics = m
	f.Points = points
	return f
}

type tickMsg time.Time

func tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Model is the bubbletea model.
type Model struct {
	refresher Refresher
	theme     Theme
	interval  time.Duration
	log       logger.Logger

	rng    series.Range
	frame  Frame
	width  int
	height int
}

// NewModel creates a dashboard model and computes its first frame.
func NewModel(rf Refresher, th Theme, interval time.Duration, r series.Range) Model {
	m := Model{
		refresher: rf,
		theme:     th,
		interval:  interval,
		log:       logger.For("ui"),
		rng:       r,
	}
	return m.refresh()
}

// Frame returns the most recently computed frame.
func (m Model) Frame() Frame {
	return m.frame
}

// Range returns the selected chart range.
func (m Model) Range() series.Range {
	return m.rng
}

func (m Model) refresh() Model {
	m.frame = m.refresher.Refresh(m.rng)

	if err := m.frame.Err; err != nil {
		var appErr errors.Error
		if errors.As(err, &appErr) {
			m.log.ErrorWithCode(appErr).Msg("Refresh failed")
		} else {
			m.log.Error().Err(err).Msg("Refresh failed")
		}
		return m
	}

	if m.frame.Metrics.Clamped {
		m.log.Warn().
			Int("current_uses", m.frame.Metrics.CurrentUses).
			Int("max_uses", m.frame.Metrics.MaxUses).
			Msg("Usage count out of range, clamped")
	}
	m.log.Debug().
		Str("range", m.rng.String()).
		Float64("life_pct", m.frame.Metrics.LifePercent()).
		Int("points", len(m.frame.Points)).
		Msg("Dashboard refreshed")

	return m
}

func (m Model) Init() tea.Cmd {
	return tick(m.interval)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return m.refresh(), tick(m.interval)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "1":
			m.rng = series.NearTerm
		case "2":
			m.rng = series.FullRated
		case "3":
			m.rng = series.Projected
		case "tab", "right", "l":
			m.rng = m.rng.Next()
		case "r":
		default:
			return m, nil
		}
		return m.refresh(), nil
	}

	return m, nil
}

func (m Model) View() string {
	help := m.theme.label().Render("1/2/3 or tab: range · r: refresh · q: quit")
	return Render(m.frame, m.theme, m.width) + "\n" + help
}

// Run starts the interactive dashboard and blocks until it exits or ctx is
// cancelled.
func Run(ctx context.Context, m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil && errors.Is(err, tea.ErrProgramKilled) {
			return nil
		}
		return errors.New().Wrap(errors.ErrRunUI, err)
	}
	return nil
}
