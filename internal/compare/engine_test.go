package compare

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wc-toolkit/cem-changelog/manifest"
)

const testTag = "test-component"

func testManifest(decls ...manifest.Declaration) *manifest.Manifest {
	return &manifest.Manifest{
		SchemaVersion: "1.0.0",
		Modules:       []manifest.Module{{Kind: "javascript-module", Path: "test", Declarations: decls}},
	}
}

func element(tag, name string, mutate ...func(*manifest.Declaration)) manifest.Declaration {
	d := manifest.Declaration{Kind: "class", Name: name, TagName: tag, CustomElement: true}
	for _, m := range mutate {
		m(&d)
	}
	return d
}

func testComponent(mutate ...func(*manifest.Declaration)) manifest.Declaration {
	return element(testTag, "TestComponent", mutate...)
}

func field(name, typ string) manifest.Member {
	m := manifest.Member{Kind: "field", Name: name}
	if typ != "" {
		m.Types = map[string]string{manifest.TypeSrcDeclared: typ}
	}
	return m
}

func withMembers(members ...manifest.Member) func(*manifest.Declaration) {
	return func(d *manifest.Declaration) { d.Members = members }
}

func compareWith(t *testing.T, config Config, oldManifest, newManifest *manifest.Manifest) Result {
	t.Helper()
	result, err := NewEngine(config, manifest.Normalizer{}).Compare(oldManifest, newManifest)
	require.NoError(t, err)
	return result
}

func containsMessage(messages []string, substr string) bool {
	for _, m := range messages {
		if strings.Contains(m, substr) {
			return true
		}
	}
	return false
}

func TestCompareIdenticalManifestsHasNoChanges(t *testing.T) {
	t.Parallel()

	m := testManifest(
		testComponent(withMembers(field("value", "string"), manifest.Member{Kind: "method", Name: "focus"})),
		element("other-component", "OtherComponent", func(d *manifest.Declaration) {
			d.CSSProperties = []manifest.Member{{Name: "--color", Default: manifest.StringValue("blue")}}
			d.Deprecated = manifest.StringValue("use test-component")
		}),
	)

	result := compareWith(t, Config{}, m, m)

	assert.Empty(t, result.Changelog.BreakingChanges)
	assert.Empty(t, result.Changelog.FeatureChanges)
	assert.Empty(t, result.RawData.BreakingChanges)
	assert.Empty(t, result.RawData.FeatureChanges)
}

func TestCompareRejectsMissingManifests(t *testing.T) {
	t.Parallel()

	engine := NewEngine(Config{}, manifest.Normalizer{})
	m := testManifest(testComponent())

	for _, tc := range []struct {
		name     string
		old, new *manifest.Manifest
	}{
		{name: "old missing", new: m},
		{name: "new missing", old: m},
		{name: "both missing"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := engine.Compare(tc.old, tc.new)
			require.ErrorIs(t, err, ErrManifestsRequired)
			assert.EqualError(t, err, "Both old and new manifests must be provided.")

			var invalid *InvalidInputError
			assert.True(t, errors.As(err, &invalid))
		})
	}
}

func TestCompareRejectsManifestsWithoutComponents(t *testing.T) {
	t.Parallel()

	empty := &manifest.Manifest{Modules: []manifest.Module{}}
	plainClass := testManifest(manifest.Declaration{Kind: "class", Name: "NotAnElement"})
	m := testManifest(testComponent())

	engine := NewEngine(Config{}, manifest.Normalizer{})
	for _, pair := range [][2]*manifest.Manifest{{empty, m}, {m, empty}, {plainClass, m}} {
		_, err := engine.Compare(pair[0], pair[1])
		require.ErrorIs(t, err, ErrComponentsRequired)
		assert.EqualError(t, err, "Both old and new manifests must have components.")
	}
}

func TestCompareComponentAddedAndRemoved(t *testing.T) {
	t.Parallel()

	oldManifest := testManifest(testComponent(), element("old-component", "OldComponent"))
	newManifest := testManifest(testComponent(), element("new-component", "NewComponent"))

	result := compareWith(t, Config{}, oldManifest, newManifest)

	assert.Equal(t, map[string][]string{
		"old-component": {"This component has been removed in the new manifest."},
	}, result.Changelog.BreakingChanges)
	assert.Equal(t, map[string][]string{
		"new-component": {"This component has been added in the new manifest."},
	}, result.Changelog.FeatureChanges)
	assert.Equal(t, []ChangeRecord{{API: "component", ChangeType: ChangeRemoved, Name: "OldComponent"}},
		result.RawData.BreakingChanges["old-component"])
	assert.Equal(t, []ChangeRecord{{API: "component", ChangeType: ChangeAdded, Name: "NewComponent"}},
		result.RawData.FeatureChanges["new-component"])
	assert.NotContains(t, result.Changelog.BreakingChanges, testTag)
	assert.NotContains(t, result.Changelog.FeatureChanges, testTag)
}

func TestCompareDuplicateTagsLastDeclarationWins(t *testing.T) {
	t.Parallel()

	oldManifest := testManifest(testComponent(withMembers(field("a", "string"))))
	newManifest := testManifest(
		testComponent(withMembers(field("stale", "string"))),
		testComponent(withMembers(field("a", "string"))),
	)

	result := compareWith(t, Config{}, oldManifest, newManifest)

	assert.Empty(t, result.Changelog.BreakingChanges)
	assert.Empty(t, result.Changelog.FeatureChanges)
}

func TestCompareComponentLevelFields(t *testing.T) {
	t.Parallel()

	oldManifest := testManifest(testComponent(func(d *manifest.Declaration) {
		d.ModulePath = "src/old.js"
		d.DefinitionPath = "src/old-define.js"
		d.TypeDefinitionPath = "src/old.d.ts"
	}))
	newManifest := testManifest(element(testTag, "RenamedComponent", func(d *manifest.Declaration) {
		d.ModulePath = "src/new.js"
		d.DefinitionPath = "src/new-define.js"
		d.TypeDefinitionPath = "src/new.d.ts"
		d.Deprecated = manifest.StringValue("use renamed-component")
	}))

	result := compareWith(t, Config{IncludeDeprecationMessages: true}, oldManifest, newManifest)

	assert.Equal(t, []string{
		"The class name has changed from `TestComponent` to `RenamedComponent`.",
		`The module path has changed to "src/new.js".`,
		`The definition path where this is defined has changed to "src/new-define.js".`,
		`The type path has changed to "src/new.d.ts".`,
	}, result.Changelog.BreakingChanges[testTag])
	assert.Equal(t, []string{"The deprecation status has changed. use renamed-component"},
		result.Changelog.FeatureChanges[testTag])

	assert.Equal(t, []ChangeRecord{
		{API: "component", ChangeType: ChangeName, Name: testTag, OldValue: "TestComponent", NewValue: "RenamedComponent"},
		{API: "component", ChangeType: ChangeModulePath, Name: testTag, OldValue: "src/old.js", NewValue: "src/new.js"},
		{API: "component", ChangeType: ChangeDefinitionPath, Name: testTag, OldValue: "src/old-define.js", NewValue: "src/new-define.js"},
		{API: "component", ChangeType: ChangeTypeDefinitionPath, Name: testTag, OldValue: "src/old.d.ts", NewValue: "src/new.d.ts"},
	}, result.RawData.BreakingChanges[testTag])
	assert.Equal(t, []ChangeRecord{
		{API: "component", ChangeType: ChangeDeprecation, Name: testTag, OldValue: nil, NewValue: "use renamed-component"},
	}, result.RawData.FeatureChanges[testTag])
}

func TestCompareEverySurfaceReportsAddedAndRemovedMembers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		label string
		set   func(d *manifest.Declaration, names ...string)
	}{
		{"CSS variables", func(d *manifest.Declaration, names ...string) { d.CSSProperties = named("", names) }},
		{"CSS states", func(d *manifest.Declaration, names ...string) { d.CSSStates = named("", names) }},
		{"CSS parts", func(d *manifest.Declaration, names ...string) { d.CSSParts = named("", names) }},
		{"attributes", func(d *manifest.Declaration, names ...string) { d.Attributes = named("", names) }},
		{"events", func(d *manifest.Declaration, names ...string) { d.Events = named("", names) }},
		{"methods", func(d *manifest.Declaration, names ...string) { d.Members = named("method", names) }},
		{"properties", func(d *manifest.Declaration, names ...string) { d.Members = named("field", names) }},
		{"slots", func(d *manifest.Declaration, names ...string) { d.Slots = named("", names) }},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.label, func(t *testing.T) {
			t.Parallel()

			oldManifest := testManifest(testComponent(func(d *manifest.Declaration) { tc.set(d, "kept", "gone") }))
			newManifest := testManifest(testComponent(func(d *manifest.Declaration) { tc.set(d, "kept", "fresh", "extra") }))

			result := compareWith(t, Config{}, oldManifest, newManifest)

			assert.Equal(t, []string{"The following " + tc.label + " have been added: `fresh`, `extra`"},
				result.Changelog.FeatureChanges[testTag])
			assert.Equal(t, []string{"The following " + tc.label + " have been removed: `gone`"},
				result.Changelog.BreakingChanges[testTag])
			assert.Equal(t, []ChangeRecord{
				{API: tc.label, ChangeType: ChangeAdded, Name: "fresh"},
				{API: tc.label, ChangeType: ChangeAdded, Name: "extra"},
			}, result.RawData.FeatureChanges[testTag])
			assert.Equal(t, []ChangeRecord{{API: tc.label, ChangeType: ChangeRemoved, Name: "gone"}},
				result.RawData.BreakingChanges[testTag])
		})
	}
}

func named(kind string, names []string) []manifest.Member {
	members := make([]manifest.Member, len(names))
	for i, name := range names {
		members[i] = manifest.Member{Kind: kind, Name: name}
	}
	return members
}

func TestComparePropertyTypeChange(t *testing.T) {
	t.Parallel()

	oldManifest := testManifest(testComponent(withMembers(field("prop", "string"))))
	newManifest := testManifest(testComponent(withMembers(field("prop", "number"))))

	result := compareWith(t, Config{}, oldManifest, newManifest)

	assert.Equal(t, []string{"The type for \"prop\" has changed from `string` to `number`."},
		result.Changelog.BreakingChanges[testTag])
	assert.Equal(t, []ChangeRecord{
		{API: "properties", ChangeType: ChangeTypeChanged, Name: "prop", OldValue: "string", NewValue: "number"},
	}, result.RawData.BreakingChanges[testTag])
	assert.NotContains(t, result.Changelog.FeatureChanges, testTag)
}

func TestCompareMethodSignatureChange(t *testing.T) {
	t.Parallel()

	method := func(returns, param string) manifest.Member {
		return manifest.Member{
			Kind:       "method",
			Name:       "testMethod",
			Return:     &manifest.Return{Type: &manifest.TypeRef{Text: returns}},
			Parameters: []manifest.Parameter{{Name: "param", Type: &manifest.TypeRef{Text: param}}},
		}
	}
	oldManifest := testManifest(testComponent(withMembers(method("string", "number"))))
	newManifest := testManifest(testComponent(withMembers(method("number", "string"))))

	result := compareWith(t, Config{}, oldManifest, newManifest)

	assert.Equal(t, []string{
		"The type for \"testMethod\" has changed from `(param: number) => string` to `(param: string) => number`.",
	}, result.Changelog.BreakingChanges[testTag])
}

func TestCompareTypeChangesAsNonBreaking(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(typ string) func(*manifest.Declaration)
	}{
		{"property", func(typ string) func(*manifest.Declaration) {
			return withMembers(field("prop", typ))
		}},
		// Methods follow the configured classification like every other surface.
		{"method", func(typ string) func(*manifest.Declaration) {
			return withMembers(manifest.Member{Kind: "method", Name: "run", Return: &manifest.Return{Type: &manifest.TypeRef{Text: typ}}})
		}},
		{"event", func(typ string) func(*manifest.Declaration) {
			return func(d *manifest.Declaration) {
				d.Events = []manifest.Member{{Name: "change", Types: map[string]string{"type": "CustomEvent<" + typ + ">"}}}
			}
		}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			oldManifest := testManifest(testComponent(tc.mutate("string")))
			newManifest := testManifest(testComponent(tc.mutate("number")))

			result := compareWith(t, Config{TypeChangesAsNonBreaking: LevelFeature}, oldManifest, newManifest)

			assert.NotContains(t, result.Changelog.BreakingChanges, testTag)
			assert.NotContains(t, result.RawData.BreakingChanges, testTag)
			require.Len(t, result.Changelog.FeatureChanges[testTag], 1)
			assert.Contains(t, result.Changelog.FeatureChanges[testTag][0], "has changed from `")
			require.Len(t, result.RawData.FeatureChanges[testTag], 1)
			assert.Equal(t, ChangeTypeChanged, result.RawData.FeatureChanges[testTag][0].ChangeType)
		})
	}
}

func TestCompareDefaultValueChange(t *testing.T) {
	t.Parallel()

	withDefault := func(value string) func(*manifest.Declaration) {
		return withMembers(manifest.Member{Kind: "field", Name: "prop", Default: manifest.StringValue(value)})
	}
	oldManifest := testManifest(testComponent(withDefault("old-value")))
	newManifest := testManifest(testComponent(withDefault("new-value")))
	expected := "The default value for properties \"prop\" has changed from `old-value` to `new-value`."
	record := ChangeRecord{API: "properties", ChangeType: ChangeDefaultValue, Name: "prop", OldValue: "old-value", NewValue: "new-value"}

	t.Run("breaking by default", func(t *testing.T) {
		result := compareWith(t, Config{}, oldManifest, newManifest)
		assert.Equal(t, []string{expected}, result.Changelog.BreakingChanges[testTag])
		assert.Equal(t, []ChangeRecord{record}, result.RawData.BreakingChanges[testTag])
		assert.NotContains(t, result.Changelog.FeatureChanges, testTag)
	})

	// The structured record is filed in the same bucket as its sentence rather
	// than always under breaking changes.
	t.Run("record follows sentence when non-breaking", func(t *testing.T) {
		result := compareWith(t, Config{DefaultValuesAsNonBreaking: LevelFeature}, oldManifest, newManifest)
		assert.Equal(t, []string{expected}, result.Changelog.FeatureChanges[testTag])
		assert.Equal(t, []ChangeRecord{record}, result.RawData.FeatureChanges[testTag])
		assert.NotContains(t, result.Changelog.BreakingChanges, testTag)
		assert.NotContains(t, result.RawData.BreakingChanges, testTag)
	})
}

func TestCompareDefaultValueAddedIsAChange(t *testing.T) {
	t.Parallel()

	oldManifest := testManifest(testComponent(withMembers(manifest.Member{Kind: "field", Name: "prop"})))
	newManifest := testManifest(testComponent(withMembers(manifest.Member{Kind: "field", Name: "prop", Default: manifest.StringValue("x")})))

	result := compareWith(t, Config{}, oldManifest, newManifest)

	assert.Equal(t, []string{"The default value for properties \"prop\" has changed from `undefined` to `x`."},
		result.Changelog.BreakingChanges[testTag])
	assert.Equal(t, []ChangeRecord{
		{API: "properties", ChangeType: ChangeDefaultValue, Name: "prop", OldValue: nil, NewValue: "x"},
	}, result.RawData.BreakingChanges[testTag])
}

func TestCompareDeprecationMessages(t *testing.T) {
	t.Parallel()

	oldManifest := testManifest(testComponent(withMembers(
		manifest.Member{Kind: "field", Name: "prop", Deprecated: manifest.BoolValue(false)})))
	newManifest := testManifest(testComponent(withMembers(
		manifest.Member{Kind: "field", Name: "prop", Deprecated: manifest.StringValue("Use newProp instead")})))

	t.Run("included when configured", func(t *testing.T) {
		result := compareWith(t, Config{IncludeDeprecationMessages: true}, oldManifest, newManifest)
		assert.Equal(t, []string{`The deprecation status for properties "prop" has changed. Use newProp instead`},
			result.Changelog.FeatureChanges[testTag])
		assert.Equal(t, []ChangeRecord{
			{API: "properties", ChangeType: ChangeDeprecation, Name: "prop", OldValue: false, NewValue: "Use newProp instead"},
		}, result.RawData.FeatureChanges[testTag])
	})

	t.Run("omitted by default", func(t *testing.T) {
		result := compareWith(t, Config{}, oldManifest, newManifest)
		assert.Equal(t, []string{`The deprecation status for properties "prop" has changed.`},
			result.Changelog.FeatureChanges[testTag])
		assert.NotContains(t, result.Changelog.BreakingChanges, testTag)
	})

	t.Run("boolean deprecation has no message", func(t *testing.T) {
		deprecated := testManifest(testComponent(withMembers(
			manifest.Member{Kind: "field", Name: "prop", Deprecated: manifest.BoolValue(true)})))
		result := compareWith(t, Config{IncludeDeprecationMessages: true}, oldManifest, deprecated)
		assert.Equal(t, []string{`The deprecation status for properties "prop" has changed.`},
			result.Changelog.FeatureChanges[testTag])
	})
}

func TestCompareCSSVariableDefaultChangeAndAddition(t *testing.T) {
	t.Parallel()

	oldManifest := testManifest(testComponent(func(d *manifest.Declaration) {
		d.CSSProperties = []manifest.Member{{Name: "--color", Default: manifest.StringValue("blue")}}
	}))
	newManifest := testManifest(testComponent(func(d *manifest.Declaration) {
		d.CSSProperties = []manifest.Member{
			{Name: "--color", Default: manifest.StringValue("red")},
			{Name: "--size", Default: manifest.StringValue("1rem")},
		}
	}))

	result := compareWith(t, Config{}, oldManifest, newManifest)

	assert.Equal(t, []string{"The default value for CSS variables \"--color\" has changed from `blue` to `red`."},
		result.Changelog.BreakingChanges[testTag])
	assert.Equal(t, []string{"The following CSS variables have been added: `--size`"},
		result.Changelog.FeatureChanges[testTag])
}

func TestCompareFieldNameOnlyForProperties(t *testing.T) {
	t.Parallel()

	oldManifest := testManifest(testComponent(func(d *manifest.Declaration) {
		d.Members = []manifest.Member{{Kind: "field", Name: "value", FieldName: "_value"}}
		d.Attributes = []manifest.Member{{Name: "value", FieldName: "value"}}
	}))
	newManifest := testManifest(testComponent(func(d *manifest.Declaration) {
		d.Members = []manifest.Member{{Kind: "field", Name: "value", FieldName: "_internalValue"}}
		d.Attributes = []manifest.Member{{Name: "value", FieldName: "currentValue"}}
	}))

	result := compareWith(t, Config{}, oldManifest, newManifest)

	assert.Equal(t, []string{"The field name for properties \"value\" has changed from `_value` to `_internalValue`."},
		result.Changelog.BreakingChanges[testTag])
	assert.Equal(t, []ChangeRecord{
		{API: "properties", ChangeType: ChangeName, Name: "value", OldValue: "_value", NewValue: "_internalValue"},
	}, result.RawData.BreakingChanges[testTag])
}

func TestCompareTypeSource(t *testing.T) {
	t.Parallel()

	member := func(types map[string]string) func(*manifest.Declaration) {
		return withMembers(manifest.Member{Kind: "field", Name: "variant", Types: types})
	}
	oldManifest := testManifest(testComponent(member(map[string]string{
		"type": "Variant", "parsedType": "'a' | 'b'", "expandedType": "'a' | 'b'",
	})))
	newManifest := testManifest(testComponent(member(map[string]string{
		"type": "Variant", "parsedType": "'a' | 'b' | 'c'", "expandedType": "'a' | 'b'",
	})))

	t.Run("parsed type by default", func(t *testing.T) {
		result := compareWith(t, Config{}, oldManifest, newManifest)
		assert.Equal(t, []string{"The type for \"variant\" has changed from `'a' | 'b'` to `'a' | 'b' | 'c'`."},
			result.Changelog.BreakingChanges[testTag])
	})

	t.Run("declared type", func(t *testing.T) {
		result := compareWith(t, Config{TypeSrc: "type"}, oldManifest, newManifest)
		assert.Empty(t, result.Changelog.BreakingChanges)
	})

	t.Run("custom source", func(t *testing.T) {
		result := compareWith(t, Config{TypeSrc: "expandedType"}, oldManifest, newManifest)
		assert.Empty(t, result.Changelog.BreakingChanges)
	})

	t.Run("unknown source falls back to declared type", func(t *testing.T) {
		changed := testManifest(testComponent(member(map[string]string{"type": "string"})))
		result := compareWith(t, Config{TypeSrc: "missing"}, oldManifest, changed)
		assert.Equal(t, []string{"The type for \"variant\" has changed from `Variant` to `string`."},
			result.Changelog.BreakingChanges[testTag])
	})
}

func TestCompareOrdersChangesBySurface(t *testing.T) {
	t.Parallel()

	oldManifest := testManifest(testComponent(func(d *manifest.Declaration) {
		d.Slots = []manifest.Member{{Name: "footer"}}
		d.Members = []manifest.Member{field("b", "string"), field("a", "string"), {Kind: "method", Name: "open"}}
		d.Events = []manifest.Member{{Name: "close"}}
		d.Attributes = []manifest.Member{{Name: "open"}}
		d.CSSParts = []manifest.Member{{Name: "base"}}
		d.CSSStates = []manifest.Member{{Name: "active"}}
		d.CSSProperties = []manifest.Member{{Name: "--gap"}}
	}))
	newManifest := testManifest(element(testTag, "Renamed", func(d *manifest.Declaration) {
		d.Members = []manifest.Member{field("a", "number"), field("b", "number")}
	}))

	result := compareWith(t, Config{}, oldManifest, newManifest)

	assert.Equal(t, []string{
		"The class name has changed from `TestComponent` to `Renamed`.",
		"The following CSS variables have been removed: `--gap`",
		"The following CSS states have been removed: `active`",
		"The following CSS parts have been removed: `base`",
		"The following attributes have been removed: `open`",
		"The following events have been removed: `close`",
		"The following methods have been removed: `open`",
		"The type for \"a\" has changed from `string` to `number`.",
		"The type for \"b\" has changed from `string` to `number`.",
		"The following slots have been removed: `footer`",
	}, result.Changelog.BreakingChanges[testTag])
}

func TestCompareKeepsProseAndRecordsInStep(t *testing.T) {
	t.Parallel()

	oldManifest := testManifest(
		testComponent(withMembers(field("a", "string"), field("b", "string"))),
		element("quiet-component", "Quiet"),
	)
	newManifest := testManifest(
		testComponent(func(d *manifest.Declaration) {
			d.Members = []manifest.Member{field("a", "number"), field("c", "string")}
			d.Deprecated = manifest.BoolValue(true)
		}),
		element("quiet-component", "Quiet"),
	)

	result := compareWith(t, Config{}, oldManifest, newManifest)

	for tag, messages := range result.Changelog.BreakingChanges {
		assert.NotEmpty(t, messages)
		assert.NotEmpty(t, result.RawData.BreakingChanges[tag])
	}
	for tag, messages := range result.Changelog.FeatureChanges {
		assert.NotEmpty(t, messages)
		assert.NotEmpty(t, result.RawData.FeatureChanges[tag])
	}
	assert.Len(t, result.RawData.BreakingChanges, len(result.Changelog.BreakingChanges))
	assert.Len(t, result.RawData.FeatureChanges, len(result.Changelog.FeatureChanges))
	assert.NotContains(t, result.Changelog.BreakingChanges, "quiet-component")
	assert.NotContains(t, result.RawData.FeatureChanges, "quiet-component")
}

func TestEngineDoesNotLeakBetweenCalls(t *testing.T) {
	t.Parallel()

	engine := NewEngine(Config{}, manifest.Normalizer{})
	oldManifest := testManifest(testComponent(), element("old-component", "OldComponent"))
	newManifest := testManifest(testComponent())

	first, err := engine.Compare(oldManifest, newManifest)
	require.NoError(t, err)
	require.Contains(t, first.Changelog.BreakingChanges, "old-component")

	second, err := engine.Compare(newManifest, newManifest)
	require.NoError(t, err)
	assert.Empty(t, second.Changelog.BreakingChanges)
	assert.Empty(t, second.RawData.BreakingChanges)
	assert.Len(t, first.Changelog.BreakingChanges["old-component"], 1)
}

func TestCompareParsedManifests(t *testing.T) {
	t.Parallel()

	oldManifest, err := manifest.Parse([]byte(`{
  "modules": [{
    "path": "test",
    "declarations": [{
      "kind": "class", "name": "TestComponent", "tagName": "test-component", "customElement": true,
      "members": [{ "kind": "field", "name": "prop", "type": { "text": "string" } }],
      "events": [{ "name": "change", "type": { "text": "CustomEvent<string>" } }]
    }]
  }]
}`))
	require.NoError(t, err)
	newManifest, err := manifest.Parse([]byte(`{
  "modules": [{
    "path": "test",
    "declarations": [{
      "kind": "class", "name": "TestComponent", "tagName": "test-component", "customElement": true,
      "members": [{ "kind": "field", "name": "prop", "type": { "text": "number" } }],
      "events": [{ "name": "change", "type": { "text": "CustomEvent<number>" } }]
    }]
  }]
}`))
	require.NoError(t, err)

	result := compareWith(t, Config{}, oldManifest, newManifest)

	assert.True(t, containsMessage(result.Changelog.BreakingChanges[testTag], `The type for "change" has changed from`))
	assert.True(t, containsMessage(result.Changelog.BreakingChanges[testTag], `The type for "prop" has changed from`))
}
