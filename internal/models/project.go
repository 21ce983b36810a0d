package models

// Project is generated by the extended preset only. The team back-populates
// each member's current-project set at allocation time; the record itself is
// retained for bookkeeping and statistics.
type Project struct {
	ProjectID string
	OwnerID   string
	Phase     string
	Budget    int
	Team      []string
}
