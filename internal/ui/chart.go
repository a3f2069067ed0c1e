package ui

import (
	"fmt"
	"strings"

	"finwatch/internal/api"
)

// chartPoint is one aligned (date, close, volume) triple.
type chartPoint struct {
	date   string
	close  float64
	volume float64
}

const (
	priceRows  = 8
	volumeRows = 3
)

// chartPoints pairs the chart's parallel arrays index-wise: the same index
// is the same trading day. Mismatched lengths are truncated to the shortest
// so a malformed response can never misalign the axes.
func chartPoints(c api.Chart) []chartPoint {
	n := len(c.Dates)
	if len(c.Closes) < n {
		n = len(c.Closes)
	}
	if len(c.Volumes) < n {
		n = len(c.Volumes)
	}
	points := make([]chartPoint, n)
	for i := 0; i < n; i++ {
		points[i] = chartPoint{date: c.Dates[i], close: c.Closes[i], volume: c.Volumes[i]}
	}
	return points
}

// scaleTo maps v from [lo, hi] onto 0..levels-1. A degenerate range maps
// everything to the top level so a flat series still draws.
func scaleTo(v, lo, hi float64, levels int) int {
	if hi <= lo {
		return levels - 1
	}
	idx := int((v - lo) / (hi - lo) * float64(levels-1))
	if idx < 0 {
		idx = 0
	}
	if idx >= levels {
		idx = levels - 1
	}
	return idx
}

// renderChart draws the close series and the volume series as two
// independently scaled blocks sharing the date axis: column i in both blocks
// is the same trading day. Price spans its own min..max; volume spans
// 0..max.
func renderChart(c api.Chart, width int) string {
	points := chartPoints(c)
	if len(points) == 0 {
		return dimStyle.Render("  (no chart data)") + "\n"
	}

	// One column per point; drop the oldest when the terminal is narrower
	// than the series.
	if len(points) > width {
		points = points[len(points)-width:]
	}

	minClose, maxClose := points[0].close, points[0].close
	var maxVolume float64
	for _, p := range points {
		if p.close < minClose {
			minClose = p.close
		}
		if p.close > maxClose {
			maxClose = p.close
		}
		if p.volume > maxVolume {
			maxVolume = p.volume
		}
	}

	var b strings.Builder

	// Price block, top row first.
	for row := priceRows - 1; row >= 0; row-- {
		b.WriteString("  ")
		for _, p := range points {
			if scaleTo(p.close, minClose, maxClose, priceRows) >= row {
				b.WriteString(priceStyle.Render("█"))
			} else {
				b.WriteString(" ")
			}
		}
		switch row {
		case priceRows - 1:
			b.WriteString(dimStyle.Render(fmt.Sprintf(" %.2f", maxClose)))
		case 0:
			b.WriteString(dimStyle.Render(fmt.Sprintf(" %.2f", minClose)))
		}
		b.WriteString("\n")
	}

	// Volume block below, its own scale from zero.
	for row := volumeRows - 1; row >= 0; row-- {
		b.WriteString("  ")
		for _, p := range points {
			if maxVolume > 0 && scaleTo(p.volume, 0, maxVolume, volumeRows) >= row {
				b.WriteString(volumeStyle.Render("▄"))
			} else {
				b.WriteString(" ")
			}
		}
		if row == volumeRows-1 {
			b.WriteString(dimStyle.Render(fmt.Sprintf(" vol %s", formatVolume(maxVolume))))
		}
		b.WriteString("\n")
	}

	// Shared date axis: first and last date of the visible window.
	first, last := points[0].date, points[len(points)-1].date
	gap := len(points) - len(first) - len(last)
	if gap < 1 {
		b.WriteString("  " + dimStyle.Render(first) + "\n")
	} else {
		b.WriteString("  " + dimStyle.Render(first+strings.Repeat(" ", gap)+last) + "\n")
	}

	return b.String()
}

func formatVolume(v float64) string {
	switch {
	case v >= 1e9:
		return fmt.Sprintf("%.1fB", v/1e9)
	case v >= 1e6:
		return fmt.Sprintf("%.1fM", v/1e6)
	case v >= 1e3:
		return fmt.Sprintf("%.1fK", v/1e3)
	default:
		return fmt.Sprintf("%.0f", v)
	}
}
