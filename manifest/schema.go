// Package manifest models the Custom Elements Manifest format and extracts the
// component surfaces the changelog engine compares.
package manifest

import (
	"encoding/json"
	"sort"
)

// Manifest is the root of a custom-elements.json document.
type Manifest struct {
	SchemaVersion string   `json:"schemaVersion,omitempty"`
	Readme        string   `json:"readme,omitempty"`
	Modules       []Module `json:"modules"`
}

// Module is one JavaScript module described by the manifest.
type Module struct {
	Kind         string        `json:"kind,omitempty"`
	Path         string        `json:"path"`
	Declarations []Declaration `json:"declarations,omitempty"`
	Exports      []Export      `json:"exports,omitempty"`
}

type Export struct {
	Kind        string     `json:"kind"`
	Name        string     `json:"name"`
	Declaration *Reference `json:"declaration,omitempty"`
}

type Reference struct {
	Name   string `json:"name"`
	Module string `json:"module,omitempty"`
}

// Declaration is a class, function, mixin or variable declared by a module.
// Only custom element declarations are considered components.
type Declaration struct {
	Kind          string `json:"kind"`
	Name          string `json:"name"`
	TagName       string `json:"tagName,omitempty"`
	CustomElement bool   `json:"customElement,omitempty"`
	Description   string `json:"description,omitempty"`
	Summary       string `json:"summary,omitempty"`

	Superclass *Reference `json:"superclass,omitempty"`

	Members       []Member `json:"members,omitempty"`
	Events        []Member `json:"events,omitempty"`
	Attributes    []Member `json:"attributes,omitempty"`
	Slots         []Member `json:"slots,omitempty"`
	CSSProperties []Member `json:"cssProperties,omitempty"`
	CSSParts      []Member `json:"cssParts,omitempty"`
	CSSStates     []Member `json:"cssStates,omitempty"`

	Deprecated Value `json:"deprecated"`

	// Paths added by manifest post-processors; absent in plain analyzer output.
	ModulePath         string `json:"modulePath,omitempty"`
	DefinitionPath     string `json:"definitionPath,omitempty"`
	TypeDefinitionPath string `json:"typeDefinitionPath,omitempty"`
}

// TypeRef is the `{ "text": ... }` object used for every type in the format.
type TypeRef struct {
	Text string `json:"text"`
}

type Parameter struct {
	Name     string   `json:"name"`
	Type     *TypeRef `json:"type,omitempty"`
	Default  Value    `json:"default"`
	Optional bool     `json:"optional,omitempty"`
}

type Return struct {
	Type *TypeRef `json:"type,omitempty"`
}

// Member is one element of any component surface: a class field or method,
// an event, an attribute, a slot, or a CSS custom property, part or state.
type Member struct {
	Kind        string      `json:"kind,omitempty"`
	Name        string      `json:"name"`
	FieldName   string      `json:"fieldName,omitempty"`
	Description string      `json:"description,omitempty"`
	Privacy     string      `json:"privacy,omitempty"`
	Static      bool        `json:"static,omitempty"`
	Default     Value       `json:"default"`
	Deprecated  Value       `json:"deprecated"`
	Parameters  []Parameter `json:"parameters,omitempty"`
	Return      *Return     `json:"return,omitempty"`

	// Types holds the text of every type-like field keyed by its JSON name,
	// e.g. "type", "parsedType" or "expandedType".
	Types map[string]string `json:"-"`
}

// TypeText resolves the member type from the src field, falling back to the
// declared "type". It returns "" when neither is present.
func (m Member) TypeText(src string) string {
	if text := m.Types[src]; text != "" {
		return text
	}
	return m.Types[TypeSrcDeclared]
}

// TypeSrcDeclared is the key of the type written by the manifest analyzer.
const TypeSrcDeclared = "type"

// TypeSrcParsed is the default key of post-processed type text.
const TypeSrcParsed = "parsedType"

func (m *Member) UnmarshalJSON(data []byte) error {
	type plain Member
	var decoded plain
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		var ref TypeRef
		// Non-object fields simply fail to decode and are skipped.
		if err := json.Unmarshal(fields[k], &ref); err != nil || ref.Text == "" {
			continue
		}
		if decoded.Types == nil {
			decoded.Types = map[string]string{}
		}
		decoded.Types[k] = ref.Text
	}

	*m = Member(decoded)
	return nil
}

func (m Member) MarshalJSON() ([]byte, error) {
	type plain Member
	data, err := json.Marshal(plain(m))
	if err != nil || len(m.Types) == 0 {
		return data, err
	}
	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}
	for k, text := range m.Types {
		fields[k] = TypeRef{Text: text}
	}
	return json.Marshal(fields)
}
