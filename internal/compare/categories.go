package compare

import (
	"fmt"
	"strings"

	"github.com/wc-toolkit/cem-changelog/manifest"
)

// componentAPI is the api of records about a component as a whole.
const componentAPI = "component"

// surface describes one member collection of a component.
type surface struct {
	label   string
	members func(manifest.Extractor, manifest.Component) []manifest.Member
	// Only properties expose a backing field name distinct from their public name.
	compareFieldName bool
}

// surfaces are compared in this order for every component present on both sides.
var surfaces = []surface{
	{label: "CSS variables", members: func(_ manifest.Extractor, c manifest.Component) []manifest.Member {
		return c.CSSProperties
	}},
	{label: "CSS states", members: func(_ manifest.Extractor, c manifest.Component) []manifest.Member {
		return c.CSSStates
	}},
	{label: "CSS parts", members: func(_ manifest.Extractor, c manifest.Component) []manifest.Member {
		return c.CSSParts
	}},
	{label: "attributes", members: func(_ manifest.Extractor, c manifest.Component) []manifest.Member {
		return c.Attributes
	}},
	{label: "events", members: manifest.Extractor.ListEventsWithResolvedType},
	{label: "methods", members: manifest.Extractor.ListPublicMethods},
	{label: "properties", members: manifest.Extractor.ListPublicProperties, compareFieldName: true},
	{label: "slots", members: func(_ manifest.Extractor, c manifest.Component) []manifest.Member {
		return c.Slots
	}},
}

const (
	componentRemovedMsg = "This component has been removed in the new manifest."
	componentAddedMsg   = "This component has been added in the new manifest."
)

func classNameChanged(oldName, newName string) string {
	return fmt.Sprintf("The class name has changed from `%s` to `%s`.", oldName, newName)
}

func modulePathChanged(path string) string {
	return fmt.Sprintf("The module path has changed to \"%s\".", path)
}

func definitionPathChanged(path string) string {
	return fmt.Sprintf("The definition path where this is defined has changed to \"%s\".", path)
}

func typeDefinitionPathChanged(path string) string {
	return fmt.Sprintf("The type path has changed to \"%s\".", path)
}

func componentDeprecationChanged(suffix string) string {
	return "The deprecation status has changed." + suffix
}

func membersAdded(label string, names []string) string {
	return fmt.Sprintf("The following %s have been added: %s", label, quoteNames(names))
}

func membersRemoved(label string, names []string) string {
	return fmt.Sprintf("The following %s have been removed: %s", label, quoteNames(names))
}

func memberDeprecationChanged(label, name, suffix string) string {
	return fmt.Sprintf("The deprecation status for %s \"%s\" has changed.%s", label, name, suffix)
}

func defaultValueChanged(label, name string, oldValue, newValue manifest.Value) string {
	return fmt.Sprintf("The default value for %s \"%s\" has changed from `%s` to `%s`.", label, name, oldValue, newValue)
}

func typeChanged(name, oldType, newType string) string {
	return fmt.Sprintf("The type for \"%s\" has changed from `%s` to `%s`.", name, oldType, newType)
}

func fieldNameChanged(label, name, oldField, newField string) string {
	return fmt.Sprintf("The field name for %s \"%s\" has changed from `%s` to `%s`.", label, name, oldField, newField)
}

func quoteNames(names []string) string {
	quoted := make([]string, len(names))
	for i, name := range names {
		quoted[i] = "`" + name + "`"
	}
	return strings.Join(quoted, ", ")
}
