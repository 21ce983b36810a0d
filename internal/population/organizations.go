package population

import (
	"github.com/wolfeidau/abacgen/internal/models"
	"github.com/wolfeidau/abacgen/internal/taxonomy"
)

// buildOrganizations creates one organization per tenant and customer
// tenant. Department lists and office counts are deterministic lookups from
// the taxonomy; extended customer tenants draw their office count here,
// before any organization is constructed, matching the fixed draw order.
func (g *Generator) buildOrganizations() {
	tax := g.cfg.Taxonomy

	officeCounts := make(map[string]int, len(tax.OfficeCounts))
	for tenant, n := range tax.OfficeCounts {
		officeCounts[tenant] = n
	}
	if g.cfg.Extended {
		for _, tenant := range tax.CustomerTenants {
			officeCounts[tenant] = randRange(g.rng, g.cfg.CustomerOfficesMin, g.cfg.CustomerOfficesMax)
		}
	}

	build := func(tenant string) {
		org := &models.Organization{
			OrgID:       tenant,
			Departments: tax.Departments[tenant],
			OfficeCount: officeCounts[tenant],
		}
		if g.cfg.Extended {
			org.Region = choice(g.rng, tax.Regions)
			org.Country = choice(g.rng, tax.Countries[org.Region])
			org.FoundedYear = randRange(g.rng, 1950, 2020)
			org.Size = choice(g.rng, tax.OrgSizes)
			org.Industry = taxonomy.Industry(tenant)
		}
		g.pop.Organizations[tenant] = org
	}

	for _, tenant := range tax.Tenants {
		build(tenant)
	}
	for _, tenant := range tax.CustomerTenants {
		build(tenant)
	}

	g.log.Debug().Int("count", len(g.pop.Organizations)).Msg("organizations built")
}
