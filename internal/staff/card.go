// Package staff turns a roster into document nodes grouped by role.
package staff

import (
	"staffdir/internal/mdast"
	"staffdir/internal/models"
)

// Card layout classes interpreted by the renderer stylesheet.
const (
	ClassCard        = "staff-person-card"
	ClassCardNoPhoto = "staff-person-card-no-photo"
	ClassPhoto       = "staff-person-photo"
	ClassInfo        = "staff-person-info"
)

// InvalidOfficeHoursText replaces office-hours entries of unknown shape.
const InvalidOfficeHoursText = "Invalid office hours format"

// BuildCard assembles the card for one person.
func BuildCard(p models.Person) mdast.Div {
	info := cardInfo(p)

	if !p.HasPhoto() {
		return mdast.NewDiv(ClassCardNoPhoto, info...)
	}

	return mdast.NewDiv(ClassCard,
		mdast.NewDiv(ClassPhoto, mdast.NewImage(p.Photo, "Photo of "+p.Name)),
		mdast.NewDiv(ClassInfo, info...),
	)
}

func cardInfo(p models.Person) []mdast.Node {
	var name mdast.Node = mdast.NewText(p.Name)
	if p.Website != "" {
		name = mdast.NewLink(p.Name, p.Website)
	}

	info := []mdast.Node{mdast.NewHeading(3, name)}

	if p.Pronouns != "" {
		info = append(info, mdast.NewParagraph(mdast.NewText(p.Pronouns)))
	}

	if p.Email != "" {
		info = append(info, mdast.NewParagraph(mdast.NewLink(p.Email, "mailto:"+p.Email)))
	}

	if len(p.OfficeHours) > 0 {
		items := make([]mdast.ListItem, 0, len(p.OfficeHours))
		for _, h := range p.OfficeHours {
			items = append(items, officeHoursItem(h))
		}

		info = append(info,
			mdast.NewParagraph(mdast.NewStrong("Office Hours:")),
			mdast.NewList(false, items...),
		)
	}

	if p.AboutMe != "" {
		info = append(info, mdast.NewParagraph(
			mdast.NewStrong("About Me: "),
			mdast.NewText(p.AboutMe),
		))
	}

	return info
}

func officeHoursItem(h models.OfficeHours) mdast.ListItem {
	switch v := h.(type) {
	case models.ScheduledHours:
		content := []mdast.Node{mdast.NewStrong(v.When)}

		if v.Where != "" {
			content = append(content, mdast.NewText(", "), mdast.NewText(v.Where))
		}

		if v.Link != "" {
			content = append(content,
				mdast.NewText(" ("),
				mdast.NewLink("Join", v.Link),
				mdast.NewText(")"),
			)
		}

		return mdast.NewListItem(mdast.NewParagraph(content...))
	case models.LegacyHours:
		return mdast.NewListItem(mdast.NewParagraph(mdast.NewText(v.Text)))
	default:
		return mdast.NewListItem(mdast.NewParagraph(mdast.NewText(InvalidOfficeHoursText)))
	}
}
