package models

// Organization represents a tenant: the administrative boundary grouping
// departments, offices, and users. Built once per tenant at startup and
// never mutated; every user in the tenant holds a reference to it.
type Organization struct {
	OrgID       string
	Departments []string
	// OfficeCount is the number of physical offices; zero means the
	// tenant has none.
	OfficeCount int

	// Descriptive fields, extended preset only.
	Region      string
	Country     string
	FoundedYear int
	Size        string
	Industry    string
}
