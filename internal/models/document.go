package models

// Document approval statuses that gate reviewer/approver assignment.
const (
	ApprovalPending  = "pending"
	ApprovalApproved = "approved"
)

// Document is a resource entity. Tenant and department are copied verbatim
// from the owner at creation; office is re-derived from the owner tenant's
// office count and is deliberately independent of the owner's own office.
// All cross-references are ids into the population.
type Document struct {
	DocID   string
	Type    string
	OwnerID string

	Tenant     string
	Department string
	Office     string

	Confidential         bool
	ContainsPersonalInfo bool

	// Recipients holds user ids entitled to receive the document.
	Recipients StringSet

	// Extended preset attributes.
	SecurityLevel          string
	CreatedDate            string
	ExpiryDate             string
	ProjectID              string
	Version                string
	Size                   int
	Format                 string
	Language               string
	Region                 string
	Country                string
	ApprovalStatus         string
	Reviewers              StringSet
	Approvers              StringSet
	RelatedDocuments       StringSet
	Tags                   StringSet
	ComplianceRequirements StringSet
	RetentionPeriod        int
	IsArchived             bool
	LastModified           string
	AccessCount            int
	Priority               string
}

// NewDocument creates a document owned by the given user, inheriting tenant
// and department from the owner. Office assignment is left to the caller.
func NewDocument(docID, docType string, owner *User) *Document {
	return &Document{
		DocID:                  docID,
		Type:                   docType,
		OwnerID:                owner.UserID,
		Tenant:                 owner.Tenant(),
		Department:             owner.Department,
		Recipients:             NewStringSet(),
		Reviewers:              NewStringSet(),
		Approvers:              NewStringSet(),
		RelatedDocuments:       NewStringSet(),
		Tags:                   NewStringSet(),
		ComplianceRequirements: NewStringSet(),
	}
}
