package ui

import (
	"fmt"
	"math"
	"strings"

	"codeberg.org/mutker/filterdash/internal/series"
	"github.com/charmbracelet/lipgloss"
)

const (
	markPoint = '●'
	markLine  = '·'
	axisWidth = 4 // "100│"
)

// lineChart plots points in order, joining consecutive points with dots.
// Points are drawn in the order given, so a live point appended after the
// baseline is joined back from the last anchor.
//
//	105│●
//	   │ ·●··
//	 53│      ●·
//	   │         ●··●
//	  0│               ●
//	   └────────────────
//	   -1          Uses 51
func lineChart(points []series.Point, width, height int, style, axis lipgloss.Style) string {
	if height < 3 {
		height = 3
	}
	plotW := width - axisWidth
	if plotW < 10 {
		plotW = 10
	}

	win := series.Extent(points)
	grid := make([][]rune, height)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", plotW))
	}

	toCell := func(x, y float64) (int, int) {
		col := int(math.Round((x - win.XMin) / (win.XMax - win.XMin) * float64(plotW-1)))
		row := int(math.Round((y - win.YMin) / (win.YMax - win.YMin) * float64(height-1)))
		return clampInt(col, 0, plotW-1), clampInt(row, 0, height-1)
	}

	for i := 1; i < len(points); i++ {
		a, b := points[i-1], points[i]
		c0, r0 := toCell(float64(a.X), a.Y)
		c1, r1 := toCell(float64(b.X), b.Y)
		steps := max(abs(c1-c0), abs(r1-r0)) * 2
		for s := 1; s < steps; s++ {
			f := float64(s) / float64(steps)
			c := int(math.Round(float64(c0) + f*float64(c1-c0)))
			r := int(math.Round(float64(r0) + f*float64(r1-r0)))
			if grid[r][c] == ' ' {
				grid[r][c] = markLine
			}
		}
	}
	for _, p := range points {
		c, r := toCell(float64(p.X), p.Y)
		grid[r][c] = markPoint
	}

	var sb strings.Builder
	for row := height - 1; row >= 0; row-- {
		label := "   "
		if row == height-1 || row == 0 || row == (height-1)/2 {
			yVal := win.YMin + float64(row)/float64(height-1)*(win.YMax-win.YMin)
			label = fmt.Sprintf("%3.0f", yVal)
		}
		sb.WriteString(axis.Render(label + "│"))
		for _, ch := range grid[row] {
			if ch == ' ' {
				sb.WriteRune(' ')
			} else {
				sb.WriteString(style.Render(string(ch)))
			}
		}
		sb.WriteString("\n")
	}

	sb.WriteString(axis.Render("   └" + strings.Repeat("─", plotW)))
	sb.WriteString("\n")

	left := fmt.Sprintf("%.0f", win.XMin)
	right := fmt.Sprintf("Uses %.0f", win.XMax)
	gap := plotW - len(left) - len(right) + 1
	if gap < 1 {
		gap = 1
	}
	sb.WriteString(axis.Render("   " + left + strings.Repeat(" ", gap) + right))

	return sb.String()
}

func clampInt(v, lo, hi int) int {
	switch {
	case v < lo:
		return lo
	case v > hi:
		return hi
	default:
		return v
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
