package staff

import (
	"slices"

	"staffdir/internal/mdast"
	"staffdir/internal/models"
)

// Known roles, emitted first and in this order.
const (
	RoleInstructor        = "Instructor"
	RoleTeachingAssistant = "Teaching Assistant"
	RoleTutor             = "Tutor"
)

// RoleOrder lists the roles whose sections always come first.
var RoleOrder = []string{RoleInstructor, RoleTeachingAssistant, RoleTutor}

var rolePlurals = map[string]string{
	RoleInstructor:        "Instructors",
	RoleTeachingAssistant: "Teaching Assistants",
	RoleTutor:             "Tutors",
}

// RoleGroup is the people sharing one role, in input order.
type RoleGroup struct {
	Role    string
	Members []models.Person
}

// Roster groups people by role, keeping roles in first-seen order.
type Roster struct {
	groups []RoleGroup
	index  map[string]int
}

// GroupByRole partitions people by role in a single pass.
func GroupByRole(people []models.Person) *Roster {
	r := &Roster{index: make(map[string]int)}

	for _, p := range people {
		role := p.RoleOrDefault()

		i, ok := r.index[role]
		if !ok {
			i = len(r.groups)
			r.index[role] = i
			r.groups = append(r.groups, RoleGroup{Role: role})
		}

		r.groups[i].Members = append(r.groups[i].Members, p)
	}

	return r
}

// Roles returns the distinct roles in first-seen order.
func (r *Roster) Roles() []string {
	roles := make([]string, len(r.groups))
	for i, g := range r.groups {
		roles[i] = g.Role
	}

	return roles
}

// Members returns the people with the given role.
func (r *Roster) Members(role string) []models.Person {
	i, ok := r.index[role]
	if !ok {
		return nil
	}

	return r.groups[i].Members
}

// Len returns the number of people across all groups.
func (r *Roster) Len() int {
	n := 0
	for _, g := range r.groups {
		n += len(g.Members)
	}

	return n
}

// Sections returns the non-empty groups in output order: the known roles
// from RoleOrder first, then every other role in first-seen order.
func (r *Roster) Sections() []RoleGroup {
	sections := make([]RoleGroup, 0, len(r.groups))

	for _, role := range RoleOrder {
		if members := r.Members(role); len(members) > 0 {
			sections = append(sections, RoleGroup{Role: role, Members: members})
		}
	}

	for _, g := range r.groups {
		if !slices.Contains(RoleOrder, g.Role) {
			sections = append(sections, g)
		}
	}

	return sections
}

// HeadingText returns the section title for count members of role.
func HeadingText(role string, count int) string {
	if count == 1 {
		return role
	}

	if plural, ok := rolePlurals[role]; ok {
		return plural
	}

	return role + "s"
}

// Build renders the whole roster: one depth-2 heading per role section,
// each followed by the cards of its members.
func Build(people []models.Person) []mdast.Node {
	roster := GroupByRole(people)
	nodes := make([]mdast.Node, 0, roster.Len()+len(roster.groups))

	for _, section := range roster.Sections() {
		nodes = append(nodes, mdast.NewHeadingText(2, HeadingText(section.Role, len(section.Members))))

		for _, p := range section.Members {
			nodes = append(nodes, BuildCard(p))
		}
	}

	return nodes
}
