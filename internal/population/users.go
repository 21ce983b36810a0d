package population

import (
	"fmt"

	"github.com/wolfeidau/abacgen/internal/models"
)

// specializedRole pairs an id prefix with a role name and its configured
// pool size.
type specializedRole struct {
	prefix string
	role   string
	count  int
}

// buildUsers produces the full user population in batches: generic
// employees, specialized-role staff, then customers. Generic employees are
// additionally indexed by (tenant, department) for hierarchy resolution.
func (g *Generator) buildUsers() {
	g.buildEmployees()
	g.buildSpecializedStaff()
	g.buildCustomers()

	g.log.Debug().Int("count", len(g.pop.Users)).Msg("users built")
}

func (g *Generator) buildEmployees() {
	tax := g.cfg.Taxonomy

	for i := 0; i < g.cfg.Users; i++ {
		tenant := choice(g.rng, tax.Tenants)
		org := g.pop.Organizations[tenant]

		position := choice(g.rng, tax.ValidPositions(org.OfficeCount))

		u := models.NewUser(fmt.Sprintf("user%d", i), models.RoleEmployee, org)
		u.Position = position
		if org.OfficeCount > 0 {
			u.Office = officeID(tenant, randRange(g.rng, 1, org.OfficeCount))
		}
		u.Department = choice(g.rng, org.Departments)

		g.sampleExtendedAttributes(u)
		g.pop.AddUser(u)
		g.pop.AddToDeptGroup(u)

		if (i+1)%progressEvery == 0 {
			g.log.Debug().Int("generated", i+1).Int("total", g.cfg.Users).Msg("generating employees")
		}
	}
}

// buildSpecializedStaff generates the role-specific pools. The basic preset
// only has helpdesk operators and application admins, and assigns them no
// department; the extended preset adds the remaining pools and gives every
// specialized user a department.
func (g *Generator) buildSpecializedStaff() {
	tax := g.cfg.Taxonomy

	pools := []specializedRole{
		{prefix: "hdop", role: models.RoleHelpdesk, count: g.cfg.HelpdeskOperators},
		{prefix: "admin", role: models.RoleAdmin, count: g.cfg.ApplicationAdmins},
	}
	if g.cfg.Extended {
		pools = append(pools,
			specializedRole{prefix: "pm", role: models.RoleProjectManager, count: g.cfg.ProjectManagers},
			specializedRole{prefix: "legal", role: models.RoleLegalOfficer, count: g.cfg.LegalOfficers},
			specializedRole{prefix: "finance", role: models.RoleFinancialOfficer, count: g.cfg.FinancialOfficers},
			specializedRole{prefix: "audit", role: models.RoleAuditor, count: g.cfg.Auditors},
			specializedRole{prefix: "cons", role: models.RoleConsultant, count: g.cfg.Consultants},
		)
	}

	for _, pool := range pools {
		for i := 0; i < pool.count; i++ {
			tenant := choice(g.rng, tax.Tenants)
			org := g.pop.Organizations[tenant]

			u := models.NewUser(fmt.Sprintf("%s%d", pool.prefix, i), pool.role, org)
			if g.cfg.Extended {
				u.Department = choice(g.rng, org.Departments)
			}

			g.sampleExtendedAttributes(u)
			g.pop.AddUser(u)
		}
	}
}

func (g *Generator) buildCustomers() {
	tax := g.cfg.Taxonomy
	if g.cfg.Customers > 0 && len(tax.CustomerTenants) == 0 {
		return
	}

	for i := 0; i < g.cfg.Customers; i++ {
		tenant := choice(g.rng, tax.CustomerTenants)
		org := g.pop.Organizations[tenant]

		u := models.NewUser(fmt.Sprintf("cstmr%d", i), models.RoleCustomer, org)
		u.Department = choice(g.rng, org.Departments)

		g.sampleExtendedAttributes(u)
		g.pop.AddUser(u)
	}
}

// sampleExtendedAttributes fills the extended attribute block, each field
// drawn independently at construction time with no cross-user coordination.
// No-op for the basic preset.
func (g *Generator) sampleExtendedAttributes(u *models.User) {
	if !g.cfg.Extended {
		return
	}
	tax := g.cfg.Taxonomy

	u.SecurityClearance = choice(g.rng, tax.SecurityLevels)
	u.Experience = randRange(g.rng, 0, 30)
	if u.Role == models.RoleCustomer {
		u.CustomerTier = choice(g.rng, tax.CustomerTiers)
	}
	u.Region = u.Org.Region
	u.Country = u.Org.Country
	u.City = choice(g.rng, tax.CitiesFor(u.Country))
	u.TimeZone = choice(g.rng, tax.TimeZones)

	start := randRange(g.rng, 7, 10)
	end := start + randRange(g.rng, 8, 10)
	u.WorkingHours = fmt.Sprintf("%02d:00-%02d:00", start, end)

	for _, cert := range sample(g.rng, tax.Certificates, randRange(g.rng, 0, 3)) {
		u.Certifications.Add(cert)
	}

	u.IsActive = probability(g.rng, g.cfg.ActiveProb)
	u.LastLogin = g.cfg.Now.AddDate(0, 0, -randRange(g.rng, 0, 30)).Format("2006-01-02")
	u.ContractType = choice(g.rng, tax.ContractTypes)
	if u.Role == models.RoleManager || u.Role == models.RoleDirector {
		u.BudgetAuthority = randRange(g.rng, 0, 10000000)
	}
}
