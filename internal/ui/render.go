package ui

import (
	"fmt"
	"strings"
	"time"

	"codeberg.org/mutker/filterdash/internal/health"
	"codeberg.org/mutker/filterdash/internal/series"
	"github.com/charmbracelet/lipgloss"
)

const (
	defaultWidth  = 110
	minWidth      = 72
	chartHeight   = 10
	progressWidth = 24
)

// Frame is everything one refresh produced.
type Frame struct {
	Metrics       health.Metrics
	Points        []series.Point
	Range         series.Range
	NearTermLimit int
	At            time.Time

	// Err is set when the refresh failed; Metrics and Points are then empty.
	Err error
}

// Render lays out a frame as dashboard text of roughly the given width.
func Render(f Frame, th Theme, width int) string {
	if width <= 0 {
		width = defaultWidth
	}
	if width < minWidth {
		width = minWidth
	}

	header := renderHeader(th)
	if f.Err != nil {
		return lipgloss.JoinVertical(lipgloss.Left, header, renderError(f.Err, th, width-2))
	}

	sideW := width / 3
	mainW := width - sideW - 1

	main := lipgloss.JoinVertical(lipgloss.Left,
		renderKPIs(f.Metrics.KPIs, th, mainW),
		renderChart(f, th, mainW),
	)
	side := lipgloss.JoinVertical(lipgloss.Left,
		renderFilterStatus(f.Metrics, th, sideW),
		renderSystemInfo(f.Metrics, th, sideW),
		renderComponents(f.Metrics.Components, th, sideW),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		lipgloss.JoinHorizontal(lipgloss.Top, main, " ", side),
	)
}

func renderHeader(th Theme) string {
	title := th.title().Render("Smart Water Filter")
	sub := th.label().Render("Real-time monitoring of your water system.")
	return lipgloss.JoinVertical(lipgloss.Left, title, sub, "")
}

func renderError(err error, th Theme, width int) string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		th.Tag(health.TagBad).Render("Refresh failed"),
		th.label().Width(width-4).Render(err.Error()),
	)
	return th.panel().BorderForeground(th.Bad).Width(width).Render(body)
}

func renderKPIs(kpis []health.KPIView, th Theme, width int) string {
	if len(kpis) == 0 {
		return ""
	}

	cardW := width/len(kpis) - 2
	cards := make([]string, 0, len(kpis))
	for _, k := range kpis {
		before := th.Tag(health.TagBad).Render(formatQuantity(k.Before, k.Unit))
		after := th.Tag(health.TagGood).Render(formatQuantity(k.After, k.Unit))
		body := lipgloss.JoinVertical(lipgloss.Left,
			th.label().Render(truncate(k.Title, cardW-4)),
			before+th.label().Render(" → ")+after,
			th.label().Render("BEFORE → AFTER"),
			th.label().Render(fmt.Sprintf("%.1f%% reduction", k.ReductionPct)),
		)
		cards = append(cards, th.panel().Width(cardW).Render(body))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func renderChart(f Frame, th Theme, width int) string {
	m := f.Metrics
	inner := width - 4

	tabs := make([]string, 0, len(series.Ranges))
	for i, r := range series.Ranges {
		label := fmt.Sprintf("%d %s", i+1, r.Label(f.NearTermLimit, m.MaxUses))
		if r == f.Range {
			tabs = append(tabs, th.activeTab().Render(label))
		} else {
			tabs = append(tabs, th.tab().Render(label))
		}
	}
	tabRow := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	title := th.title().Render("Filter Life Degradation")
	pad := inner - lipgloss.Width(title) - lipgloss.Width(tabRow)
	if pad < 1 {
		pad = 1
	}

	lifeStyle := th.Tag(m.LifeStatus.Tag())
	status := lipgloss.JoinVertical(lipgloss.Left,
		th.label().Render("Current Status"),
		th.value().Render(formatPercent(m.LifePercent())+" Remaining")+
			"  "+th.Tag(health.TagBad).UnsetBold().Render(fmt.Sprintf("%d Uses", m.CurrentUses)),
	)

	body := lipgloss.JoinVertical(lipgloss.Left,
		title+strings.Repeat(" ", pad)+tabRow,
		"",
		status,
		"",
		th.label().Render("Filter Life %"),
		lineChart(f.Points, inner, chartHeight, lifeStyle, th.label()),
		th.label().Render("Number of Uses"),
	)

	return th.panel().Width(width - 2).Render(body)
}

func renderFilterStatus(m health.Metrics, th Theme, width int) string {
	inner := width - 4
	bar := progressBar(m.LifeRemaining(), min(progressWidth, inner), th.Tag(m.LifeStatus.Tag()), th.label())

	body := lipgloss.JoinVertical(lipgloss.Left,
		th.title().Render("Filter Status"),
		row(th, inner, "Current Usage", th.value().Render(fmt.Sprintf("%d / %d uses", m.CurrentUses, m.MaxUses))),
		row(th, inner, "Life Remaining", th.value().Render(formatPercent(m.LifePercent()))),
		bar,
		row(th, inner, "Status", th.Tag(m.LifeStatus.Tag()).Render(m.LifeStatus.String())),
	)

	return th.panel().Width(width - 2).Render(body)
}

func renderSystemInfo(m health.Metrics, th Theme, width int) string {
	inner := width - 4
	pressure := th.Tag(m.PressureStatus.Tag()).Render(fmt.Sprintf("%s PSI", formatNumber(m.PressurePSI)))

	body := lipgloss.JoinVertical(lipgloss.Left,
		th.title().Render("System Information"),
		row(th, inner, "Uptime", th.value().Render(formatUptime(m.System.Uptime))),
		row(th, inner, "Flow Rate", th.value().Render(fmt.Sprintf("%s GPM", formatNumber(m.System.FlowRateGPM)))),
		row(th, inner, "Water Pressure", pressure),
		row(th, inner, "Firmware Version", th.value().Render(orDash(m.System.Firmware))),
	)

	return th.panel().Width(width - 2).Render(body)
}

func renderComponents(components []health.ComponentView, th Theme, width int) string {
	inner := width - 4
	lines := []string{th.title().Render("Component Status")}
	for _, c := range components {
		style := th.Tag(c.Tag)
		status := style.UnsetBold().Render("●") + " " + style.Render(orDash(string(c.Status)))
		lines = append(lines, row(th, inner, c.Name, status))
	}
	if len(components) == 0 {
		lines = append(lines, th.label().Render("No components reported"))
	}

	return th.panel().Width(width - 2).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// row renders a label on the left and a value flush right.
func row(th Theme, width int, label, value string) string {
	l := th.label().Render(label)
	gap := width - lipgloss.Width(l) - lipgloss.Width(value)
	if gap < 1 {
		gap = 1
	}
	return l + strings.Repeat(" ", gap) + value
}

func progressBar(fraction float64, width int, fill, empty lipgloss.Style) string {
	if width < 1 {
		width = 1
	}
	filled := clampInt(int(fraction*float64(width)+0.5), 0, width)
	return fill.Render(strings.Repeat("█", filled)) + empty.Render(strings.Repeat("░", width-filled))
}

func formatPercent(pct float64) string {
	return fmt.Sprintf("%.0f%%", pct)
}

func formatNumber(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.1f", v)
}

func formatQuantity(v float64, unit string) string {
	if unit == "" {
		return formatNumber(v)
	}
	if strings.HasPrefix(unit, "°") {
		return formatNumber(v) + unit
	}
	return formatNumber(v) + " " + unit
}

// formatUptime renders a duration as "12d 4h 32m".
func formatUptime(d time.Duration) string {
	if d <= 0 {
		return "-"
	}
	days := int(d / (24 * time.Hour))
	d -= time.Duration(days) * 24 * time.Hour
	hours := int(d / time.Hour)
	d -= time.Duration(hours) * time.Hour
	mins := int(d / time.Minute)

	if days > 0 {
		return fmt.Sprintf("%dd %dh %dm", days, hours, mins)
	}
	return fmt.Sprintf("%dh %dm", hours, mins)
}

func truncate(s string, n int) string {
	if n <= 1 || lipgloss.Width(s) <= n {
		return s
	}
	r := []rune(s)
	if len(r) > n-1 {
		r = r[:n-1]
	}
	return string(r) + "…"
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
