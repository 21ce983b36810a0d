package population

import (
	"fmt"

	"github.com/wolfeidau/abacgen/internal/models"
)

// allocateProjects generates the configured number of projects, each with a
// random owner, phase, budget, and a 3-20 member team sampled without
// replacement from the whole population. Team membership back-populates
// every member's current-project and project sets. Extended preset only.
func (g *Generator) allocateProjects() {
	tax := g.cfg.Taxonomy

	for i := 0; i < g.cfg.Projects; i++ {
		projectID := fmt.Sprintf("proj%d", i)
		project := &models.Project{
			ProjectID: projectID,
			OwnerID:   choice(g.rng, g.pop.Users).UserID,
			Phase:     choice(g.rng, tax.ProjectPhases),
			Budget:    randRange(g.rng, 10000, 10000000),
		}

		team := sample(g.rng, g.pop.Users, randRange(g.rng, 3, 20))
		for _, member := range team {
			member.CurrentProjects.Add(projectID)
			member.Projects.Add(projectID)
			project.Team = append(project.Team, member.UserID)
		}

		g.pop.Projects = append(g.pop.Projects, project)

		if (i+1)%100 == 0 {
			g.log.Debug().Int("generated", i+1).Int("total", g.cfg.Projects).Msg("generating projects")
		}
	}
}

// assignPastProjects attaches 1-5 synthetic past-project ids to users with
// probability PastProjectProb. The id space is disjoint from real project
// ids. Extended preset only.
func (g *Generator) assignPastProjects() {
	for _, u := range g.pop.Users {
		if !probability(g.rng, g.cfg.PastProjectProb) {
			continue
		}
		n := randRange(g.rng, 1, 5)
		for i := 0; i < n; i++ {
			u.PastProjects.Add(fmt.Sprintf("pastProj%d", randRange(g.rng, 1, 500)))
		}
	}
}
