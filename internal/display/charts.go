package display

import (
	"fmt"
	"strings"

	"github.com/dyike/symplacheck/internal/models"
)

// barWidth is the width of the longest bar in a chart.
const barWidth = 40

// Bar is one bar within a group: a query-type series and its value.
type Bar struct {
	Series string
	Value  float64
}

// BarGroup collects the bars sharing one combined "version event-id"
// label.
type BarGroup struct {
	Label string
	Bars  []Bar
}

// LatencyGroups builds chart data for API call latency per
// (version, event, type) combination, grouped in first-seen order.
func LatencyGroups(results []models.FetchResult) []BarGroup {
	return buildGroups(results, func(r models.FetchResult) float64 {
		return r.CallLatency.Seconds()
	})
}

// RecordGroups builds chart data for total possible records per
// (version, event, type) combination.
func RecordGroups(results []models.FetchResult) []BarGroup {
	return buildGroups(results, func(r models.FetchResult) float64 {
		return float64(r.TotalPossible)
	})
}

func buildGroups(results []models.FetchResult, value func(models.FetchResult) float64) []BarGroup {
	var groups []BarGroup
	index := make(map[string]int)

	for _, r := range results {
		label := r.Label()
		i, ok := index[label]
		if !ok {
			i = len(groups)
			index[label] = i
			groups = append(groups, BarGroup{Label: label})
		}
		groups[i].Bars = append(groups[i].Bars, Bar{
			Series: r.Type.DisplayName(),
			Value:  value(r),
		})
	}

	return groups
}

// RenderBarChart renders a grouped horizontal bar chart. Bars are scaled
// against the chart-wide maximum; unit is appended to each value.
func RenderBarChart(title, unit string, groups []BarGroup) string {
	var max float64
	for _, g := range groups {
		for _, b := range g.Bars {
			if b.Value > max {
				max = b.Value
			}
		}
	}

	var out strings.Builder
	out.WriteString(headerStyle.Render(title) + "\n")

	for _, g := range groups {
		out.WriteString(g.Label + "\n")
		for _, b := range g.Bars {
			out.WriteString(fmt.Sprintf("  %-13s %s %s\n",
				b.Series,
				renderBar(b.Series, b.Value, max),
				dimStyle.Render(formatValue(b.Value)+unit),
			))
		}
	}

	return panelStyle.Render(strings.TrimRight(out.String(), "\n"))
}

func renderBar(series string, value, max float64) string {
	width := 0
	if max > 0 {
		width = int(value / max * barWidth)
	}
	if width == 0 && value > 0 {
		width = 1
	}

	bar := strings.Repeat("█", width)
	switch series {
	case models.QueryParticipants.DisplayName():
		return participantsBarStyle.Render(bar)
	default:
		return ordersBarStyle.Render(bar)
	}
}

func formatValue(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.2f", v)
}
