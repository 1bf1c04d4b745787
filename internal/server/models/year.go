package models

// Year is a reporting period. The calendar year value is unique across the
// system, enforced both by a pre-insert check and a storage constraint.
type Year struct {
	ID   int64 `json:"id"`
	Year int   `json:"year"`
}
