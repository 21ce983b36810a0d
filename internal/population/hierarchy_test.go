package population

import (
	"math/rand"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/wolfeidau/abacgen/internal/models"
	"github.com/wolfeidau/abacgen/internal/taxonomy"
)

// chainFixture builds a generator holding one tenant, one department, and
// the given users in insertion order.
func chainFixture(t *testing.T, positions ...string) (*Generator, []*models.User) {
	t.Helper()

	cfg := &Config{
		Preset: PresetBasic,
		Taxonomy: &taxonomy.Taxonomy{
			PositionRanks: map[string]int{
				"junior": 1,
				"mid":    2,
				"senior": 3,
			},
		},
	}
	g := &Generator{
		cfg: cfg,
		rng: rand.New(rand.NewSource(1)),
		pop: NewPopulation(),
		log: zerolog.Nop(),
	}

	org := &models.Organization{OrgID: "acme", Departments: []string{"acmeSales"}}
	g.pop.Organizations["acme"] = org

	users := make([]*models.User, 0, len(positions))
	for i, pos := range positions {
		u := models.NewUser(string(rune('a'+i)), models.RoleEmployee, org)
		u.Department = "acmeSales"
		u.Position = pos
		g.pop.AddUser(u)
		g.pop.AddToDeptGroup(u)
		users = append(users, u)
	}
	return g, users
}

func TestSupervisorChainOrderedByRank(t *testing.T) {
	// Insertion order senior, junior, mid must produce the chain
	// senior -> mid -> junior.
	g, users := chainFixture(t, "senior", "junior", "mid")
	senior, junior, mid := users[0], users[1], users[2]

	g.buildSupervisorChains()

	require.Empty(t, senior.Supervisor)
	require.Equal(t, senior.UserID, mid.Supervisor)
	require.Equal(t, mid.UserID, junior.Supervisor)

	require.Equal(t, []string{mid.UserID}, senior.Supervisee.Sorted())
	require.Equal(t, []string{junior.UserID}, mid.Supervisee.Sorted())
	require.Zero(t, junior.Supervisee.Len())
}

func TestSupervisorChainStableOnTies(t *testing.T) {
	g, users := chainFixture(t, "mid", "mid", "mid")

	g.buildSupervisorChains()

	// Equal ranks keep insertion order.
	require.Empty(t, users[0].Supervisor)
	require.Equal(t, users[0].UserID, users[1].Supervisor)
	require.Equal(t, users[1].UserID, users[2].Supervisor)
}

func TestSupervisorChainSingletonGroup(t *testing.T) {
	g, users := chainFixture(t, "senior")

	g.buildSupervisorChains()

	require.Empty(t, users[0].Supervisor)
	require.Zero(t, users[0].Supervisee.Len())
}

func TestRegisteredBasicRequiresSupervisee(t *testing.T) {
	g, users := chainFixture(t, "senior", "junior")

	g.buildSupervisorChains()
	g.deriveRegistered()

	require.True(t, users[0].Registered)
	require.False(t, users[1].Registered)
}

func TestRegisteredExtendedNaturalRoles(t *testing.T) {
	g, users := chainFixture(t, "senior")
	g.cfg.Extended = true
	g.cfg.RegisteredProb = 0

	pm := models.NewUser("pm0", models.RoleProjectManager, g.pop.Organizations["acme"])
	g.pop.AddUser(pm)

	g.deriveRegistered()

	require.True(t, pm.Registered)
	// No supervisee, not a natural role, probability pinned to zero.
	require.False(t, users[0].Registered)
}

func TestPayrollingAtLeastOnePerGroup(t *testing.T) {
	g, users := chainFixture(t, "senior", "junior", "mid", "mid", "junior")
	g.cfg.PayrollingProb = 0

	g.assignPayrolling()

	var granted int
	for _, u := range users {
		if u.PayrollingPermissions {
			granted++
		}
	}
	require.Equal(t, 1, granted, "exactly one member forced with probability zero")
}

func TestSupervisorSuperviseeInverse(t *testing.T) {
	cfg := BasicConfig()
	cfg.Users = 300
	cfg.Documents = 0
	cfg.HelpdeskOperators = 10
	cfg.ApplicationAdmins = 10
	cfg.Customers = 10

	pop, err := NewGenerator(cfg, zerolog.Nop()).Run()
	require.NoError(t, err)

	for _, a := range pop.Users {
		if a.Supervisor != "" {
			b := pop.UserByID(a.Supervisor)
			require.NotNil(t, b, "supervisor %s of %s not in population", a.Supervisor, a.UserID)
			require.True(t, b.Supervisee.Contains(a.UserID),
				"%s missing from supervisee set of its supervisor %s", a.UserID, b.UserID)

			// Supervisor must be same tenant and department, with
			// strictly higher rank or an earlier tie.
			require.Equal(t, a.Tenant(), b.Tenant())
			require.Equal(t, a.Department, b.Department)
			ranks := cfg.Taxonomy.PositionRanks
			require.GreaterOrEqual(t, ranks[b.Position], ranks[a.Position])
		}
		for id := range a.Supervisee {
			c := pop.UserByID(id)
			require.NotNil(t, c)
			require.Equal(t, a.UserID, c.Supervisor)
		}
	}
}
