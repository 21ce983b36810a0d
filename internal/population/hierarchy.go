package population

import (
	"fmt"
	"sort"

	"github.com/wolfeidau/abacgen/internal/models"
)

// naturallyRegistered are the roles registered regardless of supervisory
// status in the extended preset.
var naturallyRegistered = map[string]bool{
	models.RoleManager:        true,
	models.RoleDirector:       true,
	models.RoleProjectManager: true,
}

// payrollingByRole are the roles that get payrolling permission
// unconditionally in the extended preset.
var payrollingByRole = map[string]bool{
	models.RoleManager:          true,
	models.RoleAdmin:            true,
	models.RoleFinancialOfficer: true,
}

// resolveHierarchy derives the supervision chains and the attributes that
// depend on them: registration and payrolling permission.
func (g *Generator) resolveHierarchy() {
	g.buildSupervisorChains()
	g.deriveRegistered()
	g.assignPayrolling()

	g.log.Debug().Msg("hierarchy resolved")
}

// buildSupervisorChains sorts every (tenant, department) group by descending
// position rank (stable, so ties keep insertion order) and links each member
// to its predecessor. The result is a single linear chain per department:
// the highest-ranked member has no supervisor, the lowest no supervisee.
// Groups with at most one member produce no edges.
func (g *Generator) buildSupervisorChains() {
	ranks := g.cfg.Taxonomy.PositionRanks

	g.pop.DeptGroups(func(_ GroupKey, members []*models.User) {
		sort.SliceStable(members, func(i, j int) bool {
			return ranks[members[i].Position] > ranks[members[j].Position]
		})
		for i := 1; i < len(members); i++ {
			members[i].Supervisor = members[i-1].UserID
			members[i-1].Supervisee.Add(members[i].UserID)
		}
	})
}

// deriveRegistered sets the registered flag. Basic preset: registered iff
// the user supervises someone. Extended preset: supervisors and naturally
// registered roles are always registered, everyone else with a fixed
// probability.
func (g *Generator) deriveRegistered() {
	for _, u := range g.pop.Users {
		switch {
		case u.Supervisee.Len() > 0:
			u.Registered = true
		case g.cfg.Extended && naturallyRegistered[u.Role]:
			u.Registered = true
		case g.cfg.Extended:
			u.Registered = probability(g.rng, g.cfg.RegisteredProb)
		default:
			u.Registered = false
		}
	}
}

// assignPayrolling forces exactly one uniformly chosen member per non-empty
// (tenant, department) group to have payrolling permission, then flips the
// rest independently: probability PayrollingProb in the basic preset;
// unconditionally for privileged roles, else probability PayrollingProb, in
// the extended preset.
func (g *Generator) assignPayrolling() {
	g.pop.DeptGroups(func(_ GroupKey, members []*models.User) {
		if len(members) == 0 {
			return
		}
		choice(g.rng, members).PayrollingPermissions = true
		for _, u := range members {
			if g.cfg.Extended && payrollingByRole[u.Role] {
				u.PayrollingPermissions = true
				continue
			}
			if probability(g.rng, g.cfg.PayrollingProb) {
				u.PayrollingPermissions = true
			}
		}
	})
}

// assignDelegation lets supervisory-role users delegate authority to a
// same-department peer: for each manager, director, or project manager,
// with probability DelegationProb one uniformly chosen peer gains the
// delegator's id in its delegated-authority set. Extended preset only.
func (g *Generator) assignDelegation() {
	for _, u := range g.pop.Users {
		if !naturallyRegistered[u.Role] {
			continue
		}
		if !probability(g.rng, g.cfg.DelegationProb) {
			continue
		}
		var peers []*models.User
		for _, peer := range g.pop.Users {
			if peer.Department == u.Department && peer != u {
				peers = append(peers, peer)
			}
		}
		if len(peers) == 0 {
			continue
		}
		choice(g.rng, peers).DelegatedAuthority.Add(u.UserID)
	}
}

// assignTemporaryAccess attaches 1-3 synthetic resource ids to a fifth of
// the population, drawn from a fixed id space independent of any real
// document. Extended preset only.
func (g *Generator) assignTemporaryAccess() {
	for _, u := range g.pop.Users {
		if !probability(g.rng, g.cfg.TempAccessProb) {
			continue
		}
		n := randRange(g.rng, 1, 3)
		for i := 0; i < n; i++ {
			u.TemporaryAccess.Add(fmt.Sprintf("tempRes%d", randRange(g.rng, 1, 100)))
		}
	}
}
