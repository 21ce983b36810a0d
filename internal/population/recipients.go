package population

import (
	"github.com/wolfeidau/abacgen/internal/models"
)

// resolveBasicRecipients populates a document's recipient set at
// construction time: every user assigned to the document's exact office
// when it has one, otherwise 5 random users from the document's tenant;
// plus 3 more random tenant users either way. Set semantics dedupe any
// overlap.
func (g *Generator) resolveBasicRecipients(doc *models.Document) {
	if doc.Office != "" {
		for _, u := range g.pop.UsersInOffice(doc.Office) {
			doc.Recipients.Add(u.UserID)
		}
	} else {
		for _, u := range sample(g.rng, g.pop.UsersInTenant(doc.Tenant), 5) {
			doc.Recipients.Add(u.UserID)
		}
	}

	for _, u := range sample(g.rng, g.pop.UsersInTenant(doc.Tenant), 3) {
		doc.Recipients.Add(u.UserID)
	}
}

// resolveRecipients is the extended preset's second pass, run after all
// documents exist: a leading slice of same-office users, a random sample of
// same-tenant users, and a random sample of same-department users.
func (g *Generator) resolveRecipients() {
	for i, doc := range g.pop.Documents {
		if doc.Office != "" {
			officeUsers := g.pop.UsersInOffice(doc.Office)
			if len(officeUsers) > 0 {
				n := randRange(g.rng, 1, min(5, len(officeUsers)))
				for _, u := range officeUsers[:n] {
					doc.Recipients.Add(u.UserID)
				}
			}
		}

		if tenantUsers := g.pop.UsersInTenant(doc.Tenant); len(tenantUsers) > 0 {
			for _, u := range sample(g.rng, tenantUsers, randRange(g.rng, 1, 8)) {
				doc.Recipients.Add(u.UserID)
			}
		}

		if deptUsers := g.pop.UsersInDepartment(doc.Department); len(deptUsers) > 0 {
			for _, u := range sample(g.rng, deptUsers, randRange(g.rng, 1, 5)) {
				doc.Recipients.Add(u.UserID)
			}
		}

		if (i+1)%progressEvery == 0 {
			g.log.Debug().Int("resolved", i+1).Int("total", len(g.pop.Documents)).Msg("resolving recipients")
		}
	}
}

// approverRoles may approve documents.
var approverRoles = map[string]bool{
	models.RoleManager:  true,
	models.RoleDirector: true,
	models.RoleAdmin:    true,
}

// resolveDocumentRelationships assigns reviewers and approvers to documents
// in an approval workflow state, and sparse related-document links between
// documents. Extended preset only.
func (g *Generator) resolveDocumentRelationships() {
	docIDs := make([]string, 0, len(g.pop.Documents))
	for _, doc := range g.pop.Documents {
		docIDs = append(docIDs, doc.DocID)
	}

	for _, doc := range g.pop.Documents {
		if doc.ApprovalStatus == models.ApprovalPending || doc.ApprovalStatus == models.ApprovalApproved {
			var reviewers, approvers []string
			for _, u := range g.pop.UsersInDepartment(doc.Department) {
				if u.UserID != doc.OwnerID {
					reviewers = append(reviewers, u.UserID)
				}
				if approverRoles[u.Role] {
					approvers = append(approvers, u.UserID)
				}
			}
			if len(reviewers) > 0 {
				for _, id := range sample(g.rng, reviewers, randRange(g.rng, 1, 3)) {
					doc.Reviewers.Add(id)
				}
			}
			if len(approvers) > 0 {
				for _, id := range sample(g.rng, approvers, randRange(g.rng, 1, 2)) {
					doc.Approvers.Add(id)
				}
			}
		}

		if probability(g.rng, g.cfg.RelatedDocProb) && len(docIDs) > 1 {
			others := make([]string, 0, len(docIDs)-1)
			for _, id := range docIDs {
				if id != doc.DocID {
					others = append(others, id)
				}
			}
			for _, id := range sample(g.rng, others, randRange(g.rng, 1, 2)) {
				doc.RelatedDocuments.Add(id)
			}
		}
	}
}
