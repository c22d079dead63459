package models

// Office-hours mapping keys.
const (
	KeyWhen  = "when"
	KeyWhere = "where"
	KeyLink  = "link"
)

// OfficeHours is one availability slot. It is one of ScheduledHours,
// LegacyHours or InvalidHours.
type OfficeHours interface {
	isOfficeHours()
}

// ScheduledHours is the structured form: when, plus optional place and join link.
type ScheduledHours struct {
	When  string
	Where string
	Link  string
}

// LegacyHours is the older free-text form, rendered verbatim.
type LegacyHours struct {
	Text string
}

// InvalidHours marks an entry of any other shape.
type InvalidHours struct{}

func (ScheduledHours) isOfficeHours() {}
func (LegacyHours) isOfficeHours()    {}
func (InvalidHours) isOfficeHours()   {}

// ParseOfficeHours classifies one decoded office-hours entry.
// A mapping needs a non-empty "when" to count as scheduled.
func ParseOfficeHours(v any) OfficeHours {
	switch entry := v.(type) {
	case map[string]any:
		when := scalarString(entry[KeyWhen])
		if when == "" {
			return InvalidHours{}
		}

		return ScheduledHours{
			When:  when,
			Where: scalarString(entry[KeyWhere]),
			Link:  scalarString(entry[KeyLink]),
		}
	case string:
		return LegacyHours{Text: entry}
	default:
		return InvalidHours{}
	}
}
