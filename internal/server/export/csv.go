// Package export renders profit report rows for download. The aggregation
// itself happens in the report service; renderers only format its output.
package export

import (
	"encoding/csv"
	"io"
	"strconv"
)

// Row is one rendered report line: an entry with its per-row profit and the
// resolved category name.
type Row struct {
	Revenue  float64
	Cost     float64
	Date     int64
	Profit   float64
	Category string
}

// WriteCSV renders rows as "revenue,cost,date,profit,category" lines with a
// header.
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"revenue", "cost", "date", "profit", "category"}); err != nil {
		return err
	}

	for _, r := range rows {
		record := []string{
			strconv.FormatFloat(r.Revenue, 'f', -1, 64),
			strconv.FormatFloat(r.Cost, 'f', -1, 64),
			strconv.FormatInt(r.Date, 10),
			strconv.FormatFloat(r.Profit, 'f', -1, 64),
			r.Category,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
