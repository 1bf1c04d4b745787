package models

// Category labels entries. Lifecycle is independent of years and entries.
type Category struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	ShortDescription string `json:"short_description,omitempty"`
}

// CategoryPatch lists the fields an update may touch. A nil field is left
// unchanged.
type CategoryPatch struct {
	Name             *string `json:"name,omitempty"`
	ShortDescription *string `json:"short_description,omitempty"`
}
