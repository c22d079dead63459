package staff

import (
	"errors"
	"fmt"

	"staffdir/internal/logger"
	"staffdir/internal/mdast"
	"staffdir/internal/models"
	"staffdir/internal/roster"
)

// DirectiveName is the name documentation hosts invoke the directive by.
const DirectiveName = "staff"

// PluginName identifies the plugin that registers the directive.
const PluginName = "Staff Directive"

// ErrMissingArgument is returned when the directive runs without a roster path.
var ErrMissingArgument = errors.New("staff directive requires a roster file argument")

// ArgSpec describes the directive's positional argument.
type ArgSpec struct {
	Type     string `json:"type"`
	Required bool   `json:"required"`
}

// OptionSpec describes one named directive option.
type OptionSpec struct {
	Type string `json:"type"`
	Doc  string `json:"doc,omitempty"`
}

// Directive is the host-facing registration of the roster renderer.
type Directive struct {
	Name    string                `json:"name"`
	Doc     string                `json:"doc"`
	Arg     ArgSpec               `json:"arg"`
	Options map[string]OptionSpec `json:"options"`

	log *logger.Logger
}

// Plugin groups the directives exposed to a documentation host.
type Plugin struct {
	Name       string       `json:"name"`
	Directives []*Directive `json:"directives"`
}

// NewDirective creates the staff directive. A nil logger discards output.
func NewDirective(log *logger.Logger) *Directive {
	if log == nil {
		log = logger.Discard()
	}

	return &Directive{
		Name:    DirectiveName,
		Doc:     "Staff directive presents a listing of staff information based on a YAML file",
		Arg:     ArgSpec{Type: "string", Required: true},
		Options: map[string]OptionSpec{},
		log:     log.With("directive", DirectiveName),
	}
}

// NewPlugin returns the plugin registration holding the staff directive.
func NewPlugin(log *logger.Logger) Plugin {
	return Plugin{Name: PluginName, Directives: []*Directive{NewDirective(log)}}
}

// Run loads the roster file named by arg and builds its nodes.
func (d *Directive) Run(arg string) ([]mdast.Node, error) {
	if arg == "" {
		return nil, ErrMissingArgument
	}

	people, err := roster.Load(arg)
	if err != nil {
		return nil, fmt.Errorf("staff directive: %w", err)
	}

	return d.RunRecords(people), nil
}

// RunRecords builds nodes for records a host has already loaded.
func (d *Directive) RunRecords(people []models.Person) []mdast.Node {
	nodes := Build(people)

	d.log.Debug("Built staff roster",
		"people", len(people),
		"roles", len(GroupByRole(people).Roles()),
		"nodes", len(nodes),
		"invalid_office_hours", countInvalidOfficeHours(people),
	)

	return nodes
}

func countInvalidOfficeHours(people []models.Person) int {
	n := 0

	for _, p := range people {
		for _, h := range p.OfficeHours {
			if _, ok := h.(models.InvalidHours); ok {
				n++
			}
		}
	}

	return n
}
