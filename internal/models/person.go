// Package models defines the roster records consumed by the staff directive.
package models

import (
	"fmt"
	"strconv"
)

// DefaultRole is the group assigned to records without a role.
const DefaultRole = "Staff"

// Record keys as they appear in roster files.
const (
	KeyName        = "name"
	KeyRole        = "role"
	KeyWebsite     = "website"
	KeyPronouns    = "pronouns"
	KeyEmail       = "email"
	KeyOfficeHours = "office-hours"
	KeyAboutMe     = "about-me"
	KeyPhoto       = "photo"
)

// Person represents one staff member listed on the roster.
// Empty strings mean the field was absent.
type Person struct {
	Name        string        `json:"name"`
	Role        string        `json:"role,omitempty"`
	Website     string        `json:"website,omitempty"`
	Pronouns    string        `json:"pronouns,omitempty"`
	Email       string        `json:"email,omitempty"`
	OfficeHours []OfficeHours `json:"-"`
	AboutMe     string        `json:"about-me,omitempty"`
	Photo       string        `json:"photo,omitempty"`
}

// RoleOrDefault returns the role used for grouping.
func (p Person) RoleOrDefault() string {
	if p.Role == "" {
		return DefaultRole
	}

	return p.Role
}

// HasPhoto reports whether the card uses the photo layout.
func (p Person) HasPhoto() bool {
	return p.Photo != ""
}

// PersonFromMap converts one decoded roster mapping into a Person.
// Unknown keys are ignored and scalar values are stringified.
func PersonFromMap(m map[string]any) Person {
	p := Person{
		Name:     scalarString(m[KeyName]),
		Role:     scalarString(m[KeyRole]),
		Website:  scalarString(m[KeyWebsite]),
		Pronouns: scalarString(m[KeyPronouns]),
		Email:    scalarString(m[KeyEmail]),
		AboutMe:  scalarString(m[KeyAboutMe]),
		Photo:    scalarString(m[KeyPhoto]),
	}

	switch hours := m[KeyOfficeHours].(type) {
	case nil:
	case []any:
		p.OfficeHours = make([]OfficeHours, 0, len(hours))
		for _, h := range hours {
			p.OfficeHours = append(p.OfficeHours, ParseOfficeHours(h))
		}
	default:
		p.OfficeHours = []OfficeHours{ParseOfficeHours(hours)}
	}

	return p
}

// scalarString renders a decoded scalar as text. Nil, false and non-scalar
// values yield the empty string.
func scalarString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case int:
		return strconv.Itoa(s)
	case int64:
		return strconv.FormatInt(s, 10)
	case uint64:
		return strconv.FormatUint(s, 10)
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case bool:
		if s {
			return "true"
		}

		return ""
	case fmt.Stringer:
		return s.String()
	default:
		return ""
	}
}
