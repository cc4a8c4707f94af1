package models

import "strconv"

// SummaryColumns is the header of the combined results summary, in export
// order.
var SummaryColumns = []string{
	"Combined Event ID",
	"API Version",
	"Type",
	"API Call Time (s)",
	"Processing Time (s)",
	"Total Records",
	"Total Records in Event",
}

// SummaryTable flattens all fetch results into one table, one row per
// result in insertion order. It backs both the summary CSV export and the
// aggregate statistics view.
func SummaryTable(results []FetchResult) Table {
	if len(results) == 0 {
		return Table{}
	}

	rows := make([][]string, 0, len(results))
	for _, r := range results {
		rows = append(rows, []string{
			r.Label(),
			string(r.Version),
			r.Type.DisplayName(),
			strconv.FormatFloat(r.CallLatency.Seconds(), 'f', -1, 64),
			strconv.FormatFloat(r.ProcessingLatency.Seconds(), 'f', -1, 64),
			strconv.Itoa(r.Records.Len()),
			strconv.Itoa(r.TotalPossible),
		})
	}

	return Table{Columns: SummaryColumns, Rows: rows}
}

// AggregateStats holds the statistics shown under the results view.
type AggregateStats struct {
	MeanCallSeconds       float64
	MeanProcessingSeconds float64
	TotalRecordsFetched   int
}

// Aggregate computes mean latencies and the sum of records actually
// returned across all results. Total possible records are deliberately not
// summed here: only the first page of each collection is ever fetched, so
// the two counts can differ.
func Aggregate(results []FetchResult) AggregateStats {
	var stats AggregateStats
	if len(results) == 0 {
		return stats
	}

	var callTotal, processTotal float64
	for _, r := range results {
		callTotal += r.CallLatency.Seconds()
		processTotal += r.ProcessingLatency.Seconds()
		stats.TotalRecordsFetched += r.Records.Len()
	}
	stats.MeanCallSeconds = callTotal / float64(len(results))
	stats.MeanProcessingSeconds = processTotal / float64(len(results))
	return stats
}
