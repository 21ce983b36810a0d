package models

// Role names that appear across the generator. The full role enumeration
// lives in the taxonomy; these are the ones branching logic keys on.
const (
	RoleEmployee         = "employee"
	RoleManager          = "manager"
	RoleAdmin            = "admin"
	RoleHelpdesk         = "helpdesk"
	RoleCustomer         = "customer"
	RoleProjectManager   = "projectManager"
	RoleLegalOfficer     = "legalOfficer"
	RoleFinancialOfficer = "financialOfficer"
	RoleAuditor          = "auditor"
	RoleConsultant       = "consultant"
	RoleDirector         = "director"
)

// User is a subject entity. Scalar fields use the empty string for absence;
// the serializer renders those as the "none" sentinel. Cross-references
// (supervisor, supervisee, recipients) are user ids resolved against the
// population, not object pointers, so the mutual supervisor/supervisee links
// never form an ownership cycle.
type User struct {
	UserID string
	Role   string
	Org    *Organization

	Department string
	Office     string
	Position   string

	// Projects collects both project-team memberships and owned document
	// ids (ownership bookkeeping).
	Projects StringSet

	// Supervisor is the id of the next-more-senior member of this user's
	// (tenant, department) group, empty for the most senior member.
	// Supervisee is the inverse edge set.
	Supervisor string
	Supervisee StringSet

	PayrollingPermissions bool
	Registered            bool

	// Extended preset attributes, sampled once at construction.
	SecurityClearance  string
	Experience         int
	CustomerTier       string
	Region             string
	Country            string
	City               string
	TimeZone           string
	WorkingHours       string
	TemporaryAccess    StringSet
	DelegatedAuthority StringSet
	CurrentProjects    StringSet
	PastProjects       StringSet
	Certifications     StringSet
	IsActive           bool
	LastLogin          string
	ContractType       string
	BudgetAuthority    int
}

// NewUser creates a user with empty relationship sets. Department, office
// and position default to absent.
func NewUser(userID, role string, org *Organization) *User {
	return &User{
		UserID:             userID,
		Role:               role,
		Org:                org,
		Projects:           NewStringSet(),
		Supervisee:         NewStringSet(),
		TemporaryAccess:    NewStringSet(),
		DelegatedAuthority: NewStringSet(),
		CurrentProjects:    NewStringSet(),
		PastProjects:       NewStringSet(),
		Certifications:     NewStringSet(),
	}
}

// Tenant returns the owning organization's id.
func (u *User) Tenant() string {
	return u.Org.OrgID
}
