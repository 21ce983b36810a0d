// Package population implements the generative data model: organizations,
// users, supervision hierarchies, projects, documents, and the cross
// references between them. Generation is a strict pipeline; each stage
// consumes the fully materialized output of the earlier ones through a
// single Population arena threaded stage to stage.
package population

import (
	"github.com/wolfeidau/abacgen/internal/models"
)

// GroupKey identifies a (tenant, department) group, the unit of hierarchy
// resolution and payrolling assignment.
type GroupKey struct {
	Tenant     string
	Department string
}

// Population is the arena holding every generated entity. Entities
// cross-reference each other by id into this arena, never by bidirectional
// pointers. Mutation happens strictly in pipeline order with a single
// thread of control.
type Population struct {
	Organizations map[string]*models.Organization
	Users         []*models.User
	Documents     []*models.Document
	Projects      []*models.Project

	usersByID map[string]*models.User

	// Generic employees grouped by (tenant, department). Group iteration
	// must not depend on Go map order, so insertion order of keys is
	// recorded separately.
	deptGroups map[GroupKey][]*models.User
	groupOrder []GroupKey

	usersByRole map[string][]*models.User
}

// NewPopulation returns an empty arena.
func NewPopulation() *Population {
	return &Population{
		Organizations: make(map[string]*models.Organization),
		usersByID:     make(map[string]*models.User),
		deptGroups:    make(map[GroupKey][]*models.User),
		usersByRole:   make(map[string][]*models.User),
	}
}

// AddUser appends a user to the arena and indexes it by id and role.
func (p *Population) AddUser(u *models.User) {
	p.Users = append(p.Users, u)
	p.usersByID[u.UserID] = u
	p.usersByRole[u.Role] = append(p.usersByRole[u.Role], u)
}

// AddToDeptGroup indexes a user into its (tenant, department) group for
// later hierarchy resolution.
func (p *Population) AddToDeptGroup(u *models.User) {
	key := GroupKey{Tenant: u.Tenant(), Department: u.Department}
	if _, exists := p.deptGroups[key]; !exists {
		p.groupOrder = append(p.groupOrder, key)
	}
	p.deptGroups[key] = append(p.deptGroups[key], u)
}

// UserByID resolves a user id against the arena, nil if absent.
func (p *Population) UserByID(id string) *models.User {
	return p.usersByID[id]
}

// UsersByRole returns the users generated with the given role, in insertion
// order.
func (p *Population) UsersByRole(role string) []*models.User {
	return p.usersByRole[role]
}

// DeptGroups walks every (tenant, department) group in first-insertion
// order. The callback receives a mutable slice; hierarchy resolution sorts
// it in place.
func (p *Population) DeptGroups(fn func(key GroupKey, members []*models.User)) {
	for _, key := range p.groupOrder {
		fn(key, p.deptGroups[key])
	}
}

// UsersInTenant returns all users of a tenant, in insertion order.
func (p *Population) UsersInTenant(tenant string) []*models.User {
	var out []*models.User
	for _, u := range p.Users {
		if u.Tenant() == tenant {
			out = append(out, u)
		}
	}
	return out
}

// UsersInOffice returns all users assigned to the exact office id, in
// insertion order.
func (p *Population) UsersInOffice(office string) []*models.User {
	var out []*models.User
	for _, u := range p.Users {
		if u.Office == office {
			out = append(out, u)
		}
	}
	return out
}

// UsersInDepartment returns all users with the exact department string, in
// insertion order. Department names are tenant-prefixed, so this is
// effectively tenant-scoped.
func (p *Population) UsersInDepartment(department string) []*models.User {
	var out []*models.User
	for _, u := range p.Users {
		if u.Department == department {
			out = append(out, u)
		}
	}
	return out
}
