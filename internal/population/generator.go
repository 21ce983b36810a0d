package population

import (
	"fmt"
	"math/rand"

	"github.com/rs/zerolog"
)

// progressEvery controls how often bulk stages emit progress logs.
const progressEvery = 1000

// Generator runs the pipeline: organizations, users, hierarchy, projects,
// documents, recipients. Single-threaded by design; the one shared arena is
// mutated strictly stage by stage.
type Generator struct {
	cfg *Config
	rng *rand.Rand
	pop *Population
	log zerolog.Logger
}

// NewGenerator creates a generator for the given configuration. The
// configuration must already be validated.
func NewGenerator(cfg *Config, logger zerolog.Logger) *Generator {
	return &Generator{
		cfg: cfg,
		rng: rand.New(rand.NewSource(cfg.Seed)),
		pop: NewPopulation(),
		log: logger,
	}
}

// Run builds the full population and returns the arena. The pipeline order
// is fixed; every stage consumes the materialized output of the previous
// ones.
func (g *Generator) Run() (*Population, error) {
	if err := g.cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	g.buildOrganizations()
	g.buildUsers()
	g.resolveHierarchy()
	if g.cfg.Extended {
		g.allocateProjects()
		g.assignPastProjects()
		g.assignTemporaryAccess()
		g.assignDelegation()
	}
	g.buildDocuments()
	if g.cfg.Extended {
		g.resolveRecipients()
		g.resolveDocumentRelationships()
	}
	g.closeOwnership()

	g.log.Info().
		Int("organizations", len(g.pop.Organizations)).
		Int("users", len(g.pop.Users)).
		Int("projects", len(g.pop.Projects)).
		Int("documents", len(g.pop.Documents)).
		Msg("population generated")

	return g.pop, nil
}

// officeID renders the synthetic office identifier for office k of a tenant.
func officeID(tenant string, k int) string {
	return fmt.Sprintf("%sOffice%d", tenant, k)
}

// closeOwnership adds every document id to its owner's projects set. This is
// ownership bookkeeping, distinct from project-team membership.
func (g *Generator) closeOwnership() {
	for _, doc := range g.pop.Documents {
		g.pop.UserByID(doc.OwnerID).Projects.Add(doc.DocID)
	}
}
