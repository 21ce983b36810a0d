package population

import (
	"fmt"

	"github.com/wolfeidau/abacgen/internal/models"
)

// buildDocuments creates the resource population. Each document gets a
// uniformly random owner; tenant and department are inherited verbatim from
// the owner while the office is re-derived from the owner tenant's office
// count, independent of the owner's own office assignment. The basic preset
// resolves recipients inline at construction; the extended preset defers
// them to a second pass.
func (g *Generator) buildDocuments() {
	tax := g.cfg.Taxonomy

	for i := 0; i < g.cfg.Documents; i++ {
		owner := choice(g.rng, g.pop.Users)

		doc := models.NewDocument(fmt.Sprintf("doc%d", i), choice(g.rng, tax.DocumentTypes), owner)
		doc.Confidential = probability(g.rng, g.cfg.ConfidentialProb)
		doc.ContainsPersonalInfo = probability(g.rng, g.cfg.PersonalInfoProb)

		if n := g.pop.Organizations[doc.Tenant].OfficeCount; n > 0 {
			doc.Office = officeID(doc.Tenant, randRange(g.rng, 1, n))
		}

		if g.cfg.Extended {
			g.sampleDocumentAttributes(doc)
		} else {
			g.resolveBasicRecipients(doc)
		}

		g.pop.Documents = append(g.pop.Documents, doc)

		if (i+1)%progressEvery == 0 {
			g.log.Debug().Int("generated", i+1).Int("total", g.cfg.Documents).Msg("generating documents")
		}
	}
}

// sampleDocumentAttributes fills the extended descriptive block, every field
// drawn independently with no cross-document coordination.
func (g *Generator) sampleDocumentAttributes(doc *models.Document) {
	tax := g.cfg.Taxonomy
	owner := g.pop.UserByID(doc.OwnerID)

	doc.SecurityLevel = choice(g.rng, tax.SecurityLevels)
	doc.CreatedDate = g.cfg.Now.AddDate(0, 0, -randRange(g.rng, 0, 365)).Format("2006-01-02")
	if probability(g.rng, g.cfg.ExpiryProb) {
		doc.ExpiryDate = g.cfg.Now.AddDate(0, 0, randRange(g.rng, 30, 3650)).Format("2006-01-02")
	}
	if probability(g.rng, g.cfg.ProjectAssocProb) {
		doc.ProjectID = fmt.Sprintf("proj%d", randRange(g.rng, 1, 200))
	}
	doc.Version = fmt.Sprintf("%d.%d", randRange(g.rng, 1, 10), randRange(g.rng, 0, 9))
	doc.Size = randRange(g.rng, 1, 10000)
	doc.Format = choice(g.rng, tax.DocumentFormats)
	doc.Language = choice(g.rng, tax.Languages)
	doc.Region = owner.Region
	doc.Country = owner.Country
	doc.ApprovalStatus = choice(g.rng, tax.ApprovalStatuses)
	for _, tag := range sample(g.rng, tax.DocumentTags, randRange(g.rng, 1, 4)) {
		doc.Tags.Add(tag)
	}
	for _, req := range sample(g.rng, tax.ComplianceReqs, randRange(g.rng, 0, 3)) {
		doc.ComplianceRequirements.Add(req)
	}
	doc.RetentionPeriod = randRange(g.rng, 1, 10)
	doc.IsArchived = probability(g.rng, g.cfg.ArchivedProb)
	doc.LastModified = g.cfg.Now.AddDate(0, 0, -randRange(g.rng, 0, 60)).Format("2006-01-02")
	doc.AccessCount = randRange(g.rng, 0, 1000)
	doc.Priority = choice(g.rng, tax.Priorities)
}
