package display

import (
	"fmt"
	"strings"

	"github.com/dyike/symplacheck/internal/models"
)

// RenderEvents shows the fetched events table or its empty state.
func RenderEvents(events models.Table) {
	fmt.Println(Title("📋 Fetched Events"))
	if events.Empty() {
		Warning("No events fetched. Check your token and API version, then run 'Fetch events'.")
		return
	}
	fmt.Println(RenderTable(events))
	fmt.Println(dimStyle.Render(fmt.Sprintf("%d events", events.Len())))
}

// RenderResult shows one fetch result: identifying fields, both latency
// measurements, the pagination summary, and the records table.
func RenderResult(index int, result models.FetchResult) {
	var header strings.Builder
	header.WriteString(fmt.Sprintf("📄 Result %d\n", index))
	header.WriteString(fmt.Sprintf("Event ID:     %s\n", result.EventID))
	header.WriteString(fmt.Sprintf("Type:         %s\n", result.Type.DisplayName()))
	header.WriteString(fmt.Sprintf("API Version:  %s\n", result.Version))
	header.WriteString(fmt.Sprintf("API call:     %.2f seconds\n", result.CallLatency.Seconds()))
	header.WriteString(fmt.Sprintf("Processing:   %.2f seconds", result.ProcessingLatency.Seconds()))
	if summary := result.Pagination.Summary(); summary != "" {
		header.WriteString("\nPagination:   " + summary)
	}

	fmt.Println(panelStyle.Render(header.String()))
	fmt.Println(RenderTable(result.Records))
}

// RenderAggregate shows the aggregate statistics across all results.
func RenderAggregate(stats models.AggregateStats) {
	fmt.Println(Title("📈 Summary Statistics"))
	fmt.Printf("Average API call time:   %.2f seconds\n", stats.MeanCallSeconds)
	fmt.Printf("Average processing time: %.2f seconds\n", stats.MeanProcessingSeconds)
	fmt.Printf("Total records fetched:   %d\n", stats.TotalRecordsFetched)
}

// RenderCharts shows the two grouped bar charts derived from the results:
// call latency and total possible records.
func RenderCharts(results []models.FetchResult) {
	fmt.Println(Title("📊 Charts"))
	fmt.Println(RenderBarChart("API Call Times by Event and Type", "s", LatencyGroups(results)))
	fmt.Println(RenderBarChart("Total Possible Records by Event and Type", "", RecordGroups(results)))
}
