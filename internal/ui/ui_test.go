package ui_test

import (
	stderrors "errors"
	"strings"
	"testing"
	"time"

	"codeberg.org/mutker/filterdash/internal/errors"
	"codeberg.org/mutker/filterdash/internal/health"
	"codeberg.org/mutker/filterdash/internal/series"
	"codeberg.org/mutker/filterdash/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticSource struct {
	reading health.Reading
	err     error
}

func (s *staticSource) Reading() (health.Reading, error) {
	return s.reading, s.err
}

func exampleReading() health.Reading {
	return health.Reading{
		MaxUses:     50,
		CurrentUses: 42,
		PressurePSI: 55,
		Components: []health.Component{
			{Name: "Pump Status", Status: health.StatusOK},
			{Name: "Ultrasonic", Status: health.StatusCheck},
			{Name: "Mystery", Status: "FOO"},
		},
		KPIs: []health.QualityKPI{{Title: "TDS", Unit: "ppm", Before: 280, After: 15}},
		System: health.SystemInfo{
			Uptime:      292*time.Hour + 32*time.Minute,
			FlowRateGPM: 1.2,
			Firmware:    "v2.1.3",
		},
	}
}

func newRefresher(t *testing.T, src ui.Source) ui.Refresher {
	t.Helper()
	b, err := series.NewBuilder()
	require.NoError(t, err)
	model, err := health.NewModel(health.DefaultThresholds())
	require.NoError(t, err)
	return ui.Refresher{Source: src, Evaluator: model, Builder: b}
}

func dark(t *testing.T) ui.Theme {
	t.Helper()
	th, err := ui.NewTheme("dark")
	require.NoError(t, err)
	return th
}

func key(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestRefresh(t *testing.T) {
	f := newRefresher(t, &staticSource{reading: exampleReading()}).Refresh(series.Projected)
	require.NoError(t, f.Err)

	assert.Equal(t, series.Projected, f.Range)
	assert.Equal(t, health.LifeCritical, f.Metrics.LifeStatus)
	require.Len(t, f.Points, 11)
	assert.Equal(t, series.Point{X: 50, Y: 0}, f.Points[10])
	assert.False(t, f.At.IsZero())
}

func TestRefreshErrors(t *testing.T) {
	f := newRefresher(t, &staticSource{err: stderrors.New("sensor offline")}).Refresh(series.FullRated)
	require.Error(t, f.Err)
	assert.True(t, errors.HasCode(f.Err, errors.ErrRefresh))

	bad := exampleReading()
	bad.MaxUses = 0
	f = newRefresher(t, &staticSource{reading: bad}).Refresh(series.FullRated)
	assert.True(t, errors.HasCode(f.Err, health.ErrInvalidConfiguration))
	assert.Empty(t, f.Points)

	f = newRefresher(t, &staticSource{reading: exampleReading()}).Refresh(series.Range(7))
	assert.True(t, errors.HasCode(f.Err, series.ErrInvalidSelector))
}

func TestRender(t *testing.T) {
	f := newRefresher(t, &staticSource{reading: exampleReading()}).Refresh(series.FullRated)
	out := ui.Render(f, dark(t), 110)

	for _, want := range []string{
		"Smart Water Filter",
		"16% Remaining",
		"42 Uses",
		"42 / 50 uses",
		"CRITICAL",
		"55 PSI",
		"1.2 GPM",
		"12d 4h 32m",
		"v2.1.3",
		"Pump Status",
		"● OK",
		"● CHECK",
		"● FOO",
		"280 ppm",
		"94.6% reduction",
		"●",
		"└",
	} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "Refresh failed")
}

func TestRenderRangeLabels(t *testing.T) {
	r := exampleReading()
	r.MaxUses = 120
	r.CurrentUses = 30

	f := newRefresher(t, &staticSource{reading: r}).Refresh(series.FullRated)
	require.NoError(t, f.Err)
	assert.Equal(t, 10, f.NearTermLimit)

	out := ui.Render(f, dark(t), 140)
	assert.Contains(t, out, "1-10 Uses")
	assert.Contains(t, out, "1-120 Uses")
	assert.NotContains(t, out, "1-50 Uses")
}

func TestRenderError(t *testing.T) {
	f := ui.Frame{Range: series.FullRated, Err: errors.New().New(errors.ErrInvalidSelector)}
	out := ui.Render(f, dark(t), 0)

	assert.Contains(t, out, "Refresh failed")
	assert.Contains(t, out, "Invalid range selector")
	assert.NotContains(t, out, "Remaining")
}

func TestModelRangeKeys(t *testing.T) {
	m := ui.NewModel(newRefresher(t, &staticSource{reading: exampleReading()}), dark(t), time.Second, series.FullRated)
	assert.Len(t, m.Frame().Points, 10)

	next, cmd := m.Update(key("1"))
	assert.Nil(t, cmd)
	m = next.(ui.Model)
	assert.Equal(t, series.NearTerm, m.Range())
	for _, p := range m.Frame().Points {
		assert.LessOrEqual(t, p.X, 10)
	}

	next, _ = m.Update(key("3"))
	m = next.(ui.Model)
	assert.Equal(t, series.Projected, m.Range())
	assert.Len(t, m.Frame().Points, 11)

	next, _ = m.Update(key("tab"))
	m = next.(ui.Model)
	assert.Equal(t, series.NearTerm, m.Range())

	next, _ = m.Update(key("2"))
	m = next.(ui.Model)
	assert.Equal(t, series.FullRated, m.Range())
}

func TestModelPicksUpNewReadings(t *testing.T) {
	src := &staticSource{reading: exampleReading()}
	m := ui.NewModel(newRefresher(t, src), dark(t), time.Second, series.FullRated)
	assert.Equal(t, 42, m.Frame().Metrics.CurrentUses)

	src.reading.CurrentUses = 10
	next, cmd := m.Update(key("r"))
	assert.Nil(t, cmd)
	m = next.(ui.Model)
	assert.Equal(t, 10, m.Frame().Metrics.CurrentUses)
	assert.Equal(t, health.LifeHealthy, m.Frame().Metrics.LifeStatus)

	src.reading.CurrentUses = 60
	m = ui.NewModel(newRefresher(t, src), dark(t), time.Second, series.FullRated)
	assert.True(t, m.Frame().Metrics.Clamped)
	assert.Equal(t, 50, m.Frame().Metrics.CurrentUses)
}

func TestModelQuit(t *testing.T) {
	m := ui.NewModel(newRefresher(t, &staticSource{reading: exampleReading()}), dark(t), time.Second, series.FullRated)

	for _, k := range []string{"q", "ctrl+c"} {
		_, cmd := m.Update(key(k))
		require.NotNil(t, cmd, k)
		assert.IsType(t, tea.QuitMsg{}, cmd())
	}
}

func TestModelWindowSize(t *testing.T) {
	m := ui.NewModel(newRefresher(t, &staticSource{reading: exampleReading()}), dark(t), time.Second, series.FullRated)

	next, cmd := m.Update(tea.WindowSizeMsg{Width: 140, Height: 50})
	assert.Nil(t, cmd)
	view := next.(ui.Model).View()
	assert.Contains(t, view, "q: quit")
	assert.True(t, strings.Contains(view, "16% Remaining"))
}

func TestTheme(t *testing.T) {
	th := dark(t)
	assert.Equal(t, th.Good, th.Color(health.TagGood))
	assert.Equal(t, th.Bad, th.Color(health.TagBad))
	assert.Equal(t, th.Neutral, th.Color(health.ColorTag(99)))

	light, err := ui.NewTheme("light")
	require.NoError(t, err)
	assert.NotEqual(t, th.Good, light.Good)

	_, err = ui.NewTheme("neon")
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrInvalidTheme))
}
