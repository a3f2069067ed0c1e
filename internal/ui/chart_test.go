package ui

import (
	"strings"
	"testing"

	"finwatch/internal/api"
)

func TestChartPointsAlignment(t *testing.T) {
	c := api.Chart{
		Dates:   []string{"2024-01-01", "2024-01-02"},
		Closes:  []float64{10, 12},
		Volumes: []float64{100, 200},
	}

	points := chartPoints(c)
	if len(points) != 2 {
		t.Fatalf("len(points) = %d, want 2", len(points))
	}
	want := []chartPoint{
		{date: "2024-01-01", close: 10, volume: 100},
		{date: "2024-01-02", close: 12, volume: 200},
	}
	for i, p := range points {
		if p != want[i] {
			t.Errorf("points[%d] = %+v, want %+v", i, p, want[i])
		}
	}
}

func TestChartPointsTruncatesMismatchedArrays(t *testing.T) {
	c := api.Chart{
		Dates:   []string{"2024-01-01", "2024-01-02", "2024-01-03"},
		Closes:  []float64{10, 12},
		Volumes: []float64{100, 200, 300},
	}

	points := chartPoints(c)
	if len(points) != 2 {
		t.Fatalf("len(points) = %d, want truncation to shortest array", len(points))
	}
	if points[1].date != "2024-01-02" || points[1].close != 12 || points[1].volume != 200 {
		t.Errorf("points[1] = %+v, alignment broken after truncation", points[1])
	}
}

func TestScaleTo(t *testing.T) {
	tests := []struct {
		name       string
		v, lo, hi  float64
		levels     int
		want       int
	}{
		{"bottom of range", 10, 10, 20, 8, 0},
		{"top of range", 20, 10, 20, 8, 7},
		{"midpoint", 15, 10, 20, 8, 3},
		{"flat series draws at top", 10, 10, 10, 8, 7},
		{"below range clamps", 5, 10, 20, 8, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := scaleTo(tt.v, tt.lo, tt.hi, tt.levels); got != tt.want {
				t.Errorf("scaleTo(%v, %v, %v, %d) = %d, want %d", tt.v, tt.lo, tt.hi, tt.levels, got, tt.want)
			}
		})
	}
}

func TestRenderChartAxes(t *testing.T) {
	c := api.Chart{
		Dates:   []string{"2024-01-01", "2024-01-02"},
		Closes:  []float64{10, 12},
		Volumes: []float64{100, 200},
	}

	out := renderChart(c, 60)
	// Both value axes carry their own scale labels; the date axis is shared.
	if !strings.Contains(out, "12.00") || !strings.Contains(out, "10.00") {
		t.Errorf("chart missing price axis labels:\n%s", out)
	}
	if !strings.Contains(out, "vol 200") {
		t.Errorf("chart missing volume axis label:\n%s", out)
	}
	if !strings.Contains(out, "2024-01-01") {
		t.Errorf("chart missing date axis:\n%s", out)
	}
}

func TestRenderChartEmptySeries(t *testing.T) {
	out := renderChart(api.Chart{}, 60)
	if !strings.Contains(out, "no chart data") {
		t.Errorf("empty chart = %q, want placeholder", out)
	}
}
