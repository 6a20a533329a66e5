package models

// ActivityLog is one occurrence of a named activity on a date. Names are
// matched by exact string equality when grouping; (name, date) pairs are not
// unique at the store layer.
type ActivityLog struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Date      string `json:"date"` // YYYY-MM-DD format
	Completed bool   `json:"completed"`
}
