// Package abac serializes a generated population to the line-oriented .abac
// attribute-rule text format: one userAttrib line per user, one
// resourceAttrib line per document, the static rule catalog, and for the
// extended preset a trailing statistics block.
package abac

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/wolfeidau/abacgen/internal/models"
	"github.com/wolfeidau/abacgen/internal/population"
)

const sectionDivider = "#------------------------------------------------------------\n"

// Writer renders populations for one preset configuration.
type Writer struct {
	cfg *population.Config
}

// NewWriter returns a writer for the given configuration.
func NewWriter(cfg *population.Config) *Writer {
	return &Writer{cfg: cfg}
}

// Write renders the full artifact to out. Output is deterministic for a
// fixed population: entities are written in generation order and set-valued
// attributes in lexical order.
func (w *Writer) Write(out io.Writer, pop *population.Population) error {
	bw := bufio.NewWriter(out)

	w.writeHeader(bw, pop)

	bw.WriteString(sectionDivider)
	bw.WriteString("# User Attribute Data\n")
	bw.WriteString(sectionDivider)
	bw.WriteString("\n")
	for _, u := range pop.Users {
		bw.WriteString(w.UserLine(u))
		bw.WriteString("\n")
	}

	bw.WriteString("\n")
	bw.WriteString(sectionDivider)
	bw.WriteString("# Resource Attribute Data\n")
	bw.WriteString(sectionDivider)
	bw.WriteString("\n")
	for _, d := range pop.Documents {
		bw.WriteString(w.DocumentLine(d))
		bw.WriteString("\n")
	}

	bw.WriteString("\n")
	bw.WriteString(sectionDivider)
	if w.cfg.Extended {
		bw.WriteString("# Enhanced ABAC Rules\n")
	} else {
		bw.WriteString("# ABAC Rules\n")
	}
	bw.WriteString(sectionDivider)
	bw.WriteString("\n")
	if w.cfg.Extended {
		bw.WriteString(extendedRules)
		w.writeStatistics(bw, pop)
	} else {
		bw.WriteString(basicRules)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write artifact: %w", err)
	}
	return nil
}

func (w *Writer) writeHeader(bw *bufio.Writer, pop *population.Population) {
	if w.cfg.Extended {
		bw.WriteString("# Enhanced ABAC policy for comprehensive document management system.\n")
		bw.WriteString("# Generated with extended attributes, roles, and complex relationships.\n")
		fmt.Fprintf(bw, "# Large dataset: %d users and %d documents\n\n", len(pop.Users), len(pop.Documents))
		return
	}
	bw.WriteString("# ABAC policy for document management system.\n\n")
}

func (w *Writer) writeStatistics(bw *bufio.Writer, pop *population.Population) {
	tax := w.cfg.Taxonomy

	bw.WriteString("\n")
	bw.WriteString(sectionDivider)
	bw.WriteString("# Statistics\n")
	bw.WriteString(sectionDivider)
	bw.WriteString("\n")
	fmt.Fprintf(bw, "# Total Users: %d\n", len(pop.Users))
	fmt.Fprintf(bw, "# Total Documents: %d\n", len(pop.Documents))
	fmt.Fprintf(bw, "# Total Organizations: %d\n", len(pop.Organizations))
	fmt.Fprintf(bw, "# Total Rules: %d\n", ExtendedRuleCount)
	fmt.Fprintf(bw, "# Document Types: %d\n", len(tax.DocumentTypes))
	fmt.Fprintf(bw, "# User Roles: %d\n", len(tax.Roles))
	fmt.Fprintf(bw, "# Security Levels: %d\n", len(tax.SecurityLevels))
	fmt.Fprintf(bw, "# Regions: %d\n", len(tax.Regions))
}

// UserLine renders one userAttrib line. Absent scalars become the "none"
// sentinel at this boundary only.
func (w *Writer) UserLine(u *models.User) string {
	attrs := []string{
		"role=" + u.Role,
		"position=" + orNone(u.Position),
		"tenant=" + u.Tenant(),
		"department=" + orNone(u.Department),
		"office=" + orNone(u.Office),
		"registered=" + formatBool(u.Registered),
		"projects=" + formatSet(u.Projects),
		"supervisor=" + orNone(u.Supervisor),
		"supervisee=" + formatSet(u.Supervisee),
		"payrollingPermissions=" + formatBool(u.PayrollingPermissions),
	}
	if w.cfg.Extended {
		attrs = append(attrs,
			"securityClearance="+u.SecurityClearance,
			"experience="+strconv.Itoa(u.Experience),
			"customerTier="+orNone(u.CustomerTier),
			"region="+u.Region,
			"country="+u.Country,
			"city="+u.City,
			"timeZone="+u.TimeZone,
			"workingHours="+u.WorkingHours,
			"temporaryAccess="+formatSet(u.TemporaryAccess),
			"delegatedAuthority="+formatSet(u.DelegatedAuthority),
			"currentProjects="+formatSet(u.CurrentProjects),
			"pastProjects="+formatSet(u.PastProjects),
			"certifications="+formatSet(u.Certifications),
			"isActive="+formatBool(u.IsActive),
			"lastLogin="+u.LastLogin,
			"contractType="+u.ContractType,
			"budgetAuthority="+strconv.Itoa(u.BudgetAuthority),
		)
	}
	return fmt.Sprintf("userAttrib(%s, %s)", u.UserID, strings.Join(attrs, ", "))
}

// DocumentLine renders one resourceAttrib line.
func (w *Writer) DocumentLine(d *models.Document) string {
	attrs := []string{
		"type=" + d.Type,
		"owner=" + d.OwnerID,
		"tenant=" + d.Tenant,
		"department=" + orNone(d.Department),
		"office=" + orNone(d.Office),
		"recipients=" + formatSet(d.Recipients),
		"isConfidential=" + formatBool(d.Confidential),
		"containsPersonalInfo=" + formatBool(d.ContainsPersonalInfo),
	}
	if w.cfg.Extended {
		attrs = append(attrs,
			"securityLevel="+d.SecurityLevel,
			"createdDate="+d.CreatedDate,
			"expiryDate="+orNone(d.ExpiryDate),
			"projectId="+orNone(d.ProjectID),
			"version="+d.Version,
			"size="+strconv.Itoa(d.Size),
			"format="+d.Format,
			"language="+d.Language,
			"region="+d.Region,
			"country="+d.Country,
			"approvalStatus="+d.ApprovalStatus,
			"reviewers="+formatSet(d.Reviewers),
			"approvers="+formatSet(d.Approvers),
			"relatedDocuments="+formatSet(d.RelatedDocuments),
			"tags="+formatSet(d.Tags),
			"complianceRequirements="+formatSet(d.ComplianceRequirements),
			"retentionPeriod="+strconv.Itoa(d.RetentionPeriod),
			"isArchived="+formatBool(d.IsArchived),
			"lastModified="+d.LastModified,
			"accessCount="+strconv.Itoa(d.AccessCount),
			"priority="+d.Priority,
		)
	}
	return fmt.Sprintf("resourceAttrib(%s, %s)", d.DocID, strings.Join(attrs, ", "))
}

func formatBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}

func formatSet(s models.StringSet) string {
	return "{" + strings.Join(s.Sorted(), " ") + "}"
}

func orNone(s string) string {
	if s == "" {
		return "none"
	}
	return s
}
