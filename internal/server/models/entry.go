package models

// Entry is one revenue/cost record inside a year. Date is a Unix timestamp;
// a zero or invalid value is replaced with the server time at write.
// FileID is optional, YearID and CategoryID must reference existing rows.
type Entry struct {
	ID         int64   `json:"id"`
	Revenue    float64 `json:"revenue"`
	Cost       float64 `json:"cost"`
	Date       int64   `json:"date"`
	FileID     *int64  `json:"file_id,omitempty"`
	YearID     int64   `json:"year_id"`
	CategoryID int64   `json:"category_id"`
}

// EntryPatch lists the fields an update may touch. A nil field is left
// unchanged; a set field fully replaces the stored value.
type EntryPatch struct {
	Revenue    *float64 `json:"revenue,omitempty"`
	Cost       *float64 `json:"cost,omitempty"`
	Date       *int64   `json:"date,omitempty"`
	FileID     *int64   `json:"file_id,omitempty"`
	CategoryID *int64   `json:"category_id,omitempty"`
}

// ProfitReport is the aggregation result for one year. External renderers
// consume it verbatim.
type ProfitReport struct {
	TotalRevenue float64 `json:"total_revenue"`
	TotalCost    float64 `json:"total_cost"`
	Profit       float64 `json:"profit"`
}
