package manifest

import (
	"fmt"
	"strings"
)

// Component is a custom element declaration lifted out of its module.
type Component struct {
	TagName            string
	Name               string
	ModulePath         string
	DefinitionPath     string
	TypeDefinitionPath string
	Deprecated         Value

	Members       []Member
	Events        []Member
	Attributes    []Member
	Slots         []Member
	CSSProperties []Member
	CSSParts      []Member
	CSSStates     []Member
}

// Extractor lists components and their derived member surfaces. The compare
// engine depends on this capability rather than walking manifests itself.
type Extractor interface {
	ListComponents(m *Manifest) []Component
	ListEventsWithResolvedType(c Component) []Member
	ListPublicMethods(c Component) []Member
	ListPublicProperties(c Component) []Member
}

// defaultEventType is the type reported for events that declare none.
const defaultEventType = "CustomEvent"

// Normalizer is the default Extractor for the Custom Elements Manifest format.
type Normalizer struct{}

var _ Extractor = Normalizer{}

// ListComponents returns every custom element declaration in manifest order.
func (Normalizer) ListComponents(m *Manifest) []Component {
	if m == nil {
		return nil
	}
	var components []Component
	for _, mod := range m.Modules {
		for _, decl := range mod.Declarations {
			if !decl.CustomElement && decl.TagName == "" {
				continue
			}
			components = append(components, Component{
				TagName:            decl.TagName,
				Name:               decl.Name,
				ModulePath:         decl.ModulePath,
				DefinitionPath:     decl.DefinitionPath,
				TypeDefinitionPath: decl.TypeDefinitionPath,
				Deprecated:         decl.Deprecated,
				Members:            decl.Members,
				Events:             decl.Events,
				Attributes:         decl.Attributes,
				Slots:              decl.Slots,
				CSSProperties:      decl.CSSProperties,
				CSSParts:           decl.CSSParts,
				CSSStates:          decl.CSSStates,
			})
		}
	}
	return components
}

// ListEventsWithResolvedType returns the named events of c. Events without a
// declared type are reported as CustomEvent.
func (Normalizer) ListEventsWithResolvedType(c Component) []Member {
	var events []Member
	for _, event := range c.Events {
		if event.Name == "" {
			continue
		}
		event.Types = cloneTypes(event.Types)
		if event.Types[TypeSrcDeclared] == "" {
			event.Types[TypeSrcDeclared] = defaultEventType
		}
		events = append(events, event)
	}
	return events
}

// ListPublicMethods returns the public instance and static methods of c with
// their signature as the type, so parameter and return type changes are
// visible to type comparison.
func (Normalizer) ListPublicMethods(c Component) []Member {
	var methods []Member
	for _, member := range c.Members {
		if member.Kind != "method" || !isPublic(member) {
			continue
		}
		member.Types = cloneTypes(member.Types)
		member.Types[TypeSrcDeclared] = methodSignature(member)
		methods = append(methods, member)
	}
	return methods
}

// ListPublicProperties returns the public, non-static fields of c.
func (Normalizer) ListPublicProperties(c Component) []Member {
	var properties []Member
	for _, member := range c.Members {
		if member.Kind != "field" || member.Static || !isPublic(member) {
			continue
		}
		properties = append(properties, member)
	}
	return properties
}

func isPublic(m Member) bool {
	switch m.Privacy {
	case "private", "protected":
		return false
	}
	return !strings.HasPrefix(m.Name, "#")
}

func methodSignature(m Member) string {
	params := make([]string, 0, len(m.Parameters))
	for _, p := range m.Parameters {
		param := p.Name
		if p.Type != nil && p.Type.Text != "" {
			optional := ""
			if p.Optional {
				optional = "?"
			}
			param += fmt.Sprintf("%s: %s", optional, p.Type.Text)
		}
		if p.Default.IsSet() {
			param += " = " + p.Default.String()
		}
		params = append(params, param)
	}

	returns := "void"
	if m.Return != nil && m.Return.Type != nil && m.Return.Type.Text != "" {
		returns = m.Return.Type.Text
	}
	return fmt.Sprintf("(%s) => %s", strings.Join(params, ", "), returns)
}

func cloneTypes(types map[string]string) map[string]string {
	clone := make(map[string]string, len(types)+1)
	for k, v := range types {
		clone[k] = v
	}
	return clone
}
